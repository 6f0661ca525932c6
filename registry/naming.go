package registry

import (
	"fmt"
	"path"
	"reflect"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NamingStrategy defines built-in schema naming conventions.
// Use these with WithNaming to control how schema names are derived
// from Go types.
type NamingStrategy int

const (
	// NamingDefault uses "package.TypeName" format.
	// Example: models.User
	NamingDefault NamingStrategy = iota

	// NamingPascalCase uses "PackageTypeName" format.
	// Example: models.User -> ModelsUser
	NamingPascalCase

	// NamingCamelCase uses "packageTypeName" format.
	// Example: models.User -> modelsUser
	NamingCamelCase

	// NamingSnakeCase uses "package_type_name" format.
	// Example: models.User -> models_user
	NamingSnakeCase

	// NamingKebabCase uses "package-type-name" format.
	// Example: models.User -> models-user
	NamingKebabCase

	// NamingTypeOnly uses just "TypeName" without package.
	// Example: models.User -> User
	// Warning: may collide across same-named types in different packages;
	// collisions are disambiguated with the full package path.
	NamingTypeOnly

	// NamingFullPath uses the full package path.
	// Example: models.User -> github.com_org_models_User
	NamingFullPath
)

// anonymousTypeName is the schema name used for anonymous struct types.
const anonymousTypeName = "AnonymousType"

// NameContext provides type metadata for custom naming templates and
// functions. All fields are populated before being passed to templates or
// custom naming functions.
type NameContext struct {
	// Type is the Go type name without package (e.g., "User").
	Type string

	// TypeSanitized is Type with generic brackets and other characters that
	// are problematic in $ref URIs replaced with underscores.
	TypeSanitized string

	// Package is the package base name (e.g., "models").
	Package string

	// PackagePath is the full import path (e.g., "github.com/org/models").
	PackagePath string

	// PackagePathSanitized is PackagePath with slashes replaced
	// (e.g., "github.com_org_models").
	PackagePathSanitized string

	// IsAnonymous indicates if this is an anonymous struct type.
	IsAnonymous bool

	// Kind is the reflect.Kind as a string (e.g., "struct").
	Kind string
}

// NameFunc is the signature for custom schema naming functions.
// The function receives a NameContext with complete type metadata and
// returns the desired schema name.
type NameFunc func(ctx NameContext) string

// namer handles schema name derivation with configurable strategies.
// Name derivation is deterministic: the same type always produces the
// same name for a given configuration.
type namer struct {
	strategy NamingStrategy
	template *template.Template
	fn       NameFunc
}

func newNamer() *namer {
	return &namer{strategy: NamingDefault}
}

// name derives the schema name for a type.
// Priority: custom function > template > built-in strategy.
func (n *namer) name(t reflect.Type) string {
	ctx := buildNameContext(t)

	if n.fn != nil {
		return n.fn(ctx)
	}

	if n.template != nil {
		var buf strings.Builder
		if err := n.template.Execute(&buf, ctx); err != nil {
			// Fall back to default on template error
			return defaultName(ctx)
		}
		return sanitizeSchemaName(buf.String())
	}

	return n.applyStrategy(ctx)
}

// disambiguate rebuilds a name from the full package path. Used when two
// distinct types derive the same schema name.
func (n *namer) disambiguate(t reflect.Type) string {
	ctx := buildNameContext(t)
	if ctx.PackagePathSanitized == "" {
		return ctx.TypeSanitized
	}
	return ctx.PackagePathSanitized + "_" + ctx.TypeSanitized
}

func buildNameContext(t reflect.Type) NameContext {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	typeName := t.Name()
	pkgPath := t.PkgPath()

	return NameContext{
		Type:                 typeName,
		TypeSanitized:        sanitizeSchemaName(typeName),
		Package:              path.Base(pkgPath),
		PackagePath:          pkgPath,
		PackagePathSanitized: sanitizePath(pkgPath),
		IsAnonymous:          typeName == "",
		Kind:                 t.Kind().String(),
	}
}

func (n *namer) applyStrategy(ctx NameContext) string {
	if ctx.IsAnonymous {
		return anonymousTypeName
	}

	switch n.strategy {
	case NamingPascalCase:
		return toPascalCase(ctx.Package) + toPascalCase(ctx.TypeSanitized)

	case NamingCamelCase:
		return toCamelCase(ctx.Package) + toPascalCase(ctx.TypeSanitized)

	case NamingSnakeCase:
		base := toSnakeCase(ctx.Package)
		typePart := toSnakeCase(ctx.TypeSanitized)
		if base == "" {
			return typePart
		}
		return base + "_" + typePart

	case NamingKebabCase:
		base := toKebabCase(ctx.Package)
		typePart := toKebabCase(ctx.TypeSanitized)
		if base == "" {
			return typePart
		}
		return base + "-" + typePart

	case NamingTypeOnly:
		return ctx.TypeSanitized

	case NamingFullPath:
		if ctx.PackagePathSanitized == "" {
			return ctx.TypeSanitized
		}
		return ctx.PackagePathSanitized + "_" + ctx.TypeSanitized

	default: // NamingDefault
		return defaultName(ctx)
	}
}

// defaultName generates the default package.TypeName format.
func defaultName(ctx NameContext) string {
	if ctx.IsAnonymous {
		return anonymousTypeName
	}
	if ctx.Package == "" {
		return ctx.TypeSanitized
	}
	return ctx.Package + "." + ctx.TypeSanitized
}

// sanitizePath replaces path separators with underscores.
// Example: "github.com/org/models" -> "github.com_org_models"
func sanitizePath(s string) string {
	return strings.ReplaceAll(s, "/", "_")
}

// sanitizeSchemaName replaces characters that are problematic in $ref URIs.
// This matters most for generic types, which include brackets.
// Example: "Response[User]" -> "Response_User"
func sanitizeSchemaName(name string) string {
	name = strings.ReplaceAll(name, "[", "_")
	name = strings.ReplaceAll(name, "]", "_")
	name = strings.ReplaceAll(name, ",", "_")
	name = strings.ReplaceAll(name, " ", "_")
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	return strings.TrimSuffix(name, "_")
}

// toPascalCase converts a string to PascalCase.
// Separators (underscore, hyphen, dot, slash) trigger capitalization of the
// next letter. Example: "user_profile" -> "UserProfile"
func toPascalCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	capitalizeNext := true

	for _, r := range s {
		if r == '_' || r == '-' || r == '.' || r == '/' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// toCamelCase converts a string to camelCase.
func toCamelCase(s string) string {
	pascal := toPascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// toSnakeCase converts a string to snake_case.
// Example: "UserProfile" -> "user_profile"
func toSnakeCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else if r == '-' || r == '.' || r == '/' {
			result.WriteRune('_')
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// toKebabCase converts a string to kebab-case.
func toKebabCase(s string) string {
	return strings.ReplaceAll(toSnakeCase(s), "_", "-")
}

// templateFuncs returns the function map available in naming templates.
func templateFuncs() template.FuncMap {
	// Use golang.org/x/text/cases for proper title casing (strings.Title is deprecated)
	titleCaser := cases.Title(language.English)

	return template.FuncMap{
		"pascal":     toPascalCase,
		"camel":      toCamelCase,
		"snake":      toSnakeCase,
		"kebab":      toKebabCase,
		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
		"title":      titleCaser.String,
		"sanitize":   sanitizeSchemaName,
		"trimPrefix": strings.TrimPrefix,
		"trimSuffix": strings.TrimSuffix,
		"replace":    strings.ReplaceAll,
	}
}

// parseNameTemplate parses and validates a schema name template.
// The template is validated by executing it with a sample context.
func parseNameTemplate(tmpl string) (*template.Template, error) {
	t, err := template.New("schemaName").Funcs(templateFuncs()).Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("registry: invalid schema name template: %w", err)
	}

	ctx := NameContext{
		Type:                 "TestType",
		TypeSanitized:        "TestType",
		Package:              "testpkg",
		PackagePath:          "github.com/test/testpkg",
		PackagePathSanitized: "github.com_test_testpkg",
		Kind:                 "struct",
	}
	var buf strings.Builder
	if err := t.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("registry: schema name template execution failed: %w", err)
	}

	return t, nil
}
