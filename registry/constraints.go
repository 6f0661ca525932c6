package registry

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/oasbridge/schemareg/mapper"
	"github.com/oasbridge/schemareg/schema"
)

// Constraint is a single validation-constraint fact with a kind tag and a raw
// value. Values are carried as strings (their declared-annotation form) and
// parsed when translated into schema keywords. Facts with an unrecognized
// kind are silently ignored, which keeps the registry forward compatible with
// newer constraint sources.
type Constraint struct {
	Kind  string
	Value string
}

// Recognized constraint kinds. The set mirrors the schema keywords the
// registry can translate to.
const (
	ConstraintMinimum          = "minimum"
	ConstraintMaximum          = "maximum"
	ConstraintExclusiveMinimum = "exclusiveMinimum"
	ConstraintExclusiveMaximum = "exclusiveMaximum"
	ConstraintMultipleOf       = "multipleOf"
	ConstraintMinLength        = "minLength"
	ConstraintMaxLength        = "maxLength"
	ConstraintPattern          = "pattern"
	ConstraintMinItems         = "minItems"
	ConstraintMaxItems         = "maxItems"
	ConstraintUniqueItems      = "uniqueItems"
	ConstraintEnum             = "enum"
	ConstraintDefault          = "default"
	ConstraintDescription      = "description"
	ConstraintFormat           = "format"
	ConstraintDeprecated       = "deprecated"
)

// ConstraintSource yields validation-constraint facts for a struct field.
// Implementations must be pure: the same field always yields the same facts.
type ConstraintSource interface {
	ConstraintsFor(field reflect.StructField) []Constraint
}

// OASTagSource reads constraint facts from oas struct tags, e.g.
//
//	Count int `json:"count" oas:"minimum=1,maximum=10"`
//
// The "required" key is excluded: required-ness is structural and handled by
// the mapper, not a per-node constraint.
type OASTagSource struct{}

// ConstraintsFor implements ConstraintSource.
func (OASTagSource) ConstraintsFor(field reflect.StructField) []Constraint {
	tag := field.Tag.Get("oas")
	if tag == "" {
		return nil
	}

	opts := mapper.ParseOASTag(tag)
	constraints := make([]Constraint, 0, len(opts))
	for key, value := range opts {
		if key == "required" {
			continue
		}
		constraints = append(constraints, Constraint{Kind: key, Value: value})
	}
	return constraints
}

var _ ConstraintSource = OASTagSource{}

// applyConstraints translates constraint facts into schema keywords on s.
// Unrecognized kinds and unparseable values are ignored.
func applyConstraints(s *schema.Schema, constraints []Constraint) {
	for _, c := range constraints {
		applyConstraint(s, c)
	}
}

func applyConstraint(s *schema.Schema, c Constraint) {
	switch c.Kind {
	case ConstraintMinimum:
		if f, err := strconv.ParseFloat(c.Value, 64); err == nil {
			s.Minimum = &f
		}

	case ConstraintMaximum:
		if f, err := strconv.ParseFloat(c.Value, 64); err == nil {
			s.Maximum = &f
		}

	case ConstraintExclusiveMinimum:
		if f, err := strconv.ParseFloat(c.Value, 64); err == nil {
			s.ExclusiveMinimum = &f
		}

	case ConstraintExclusiveMaximum:
		if f, err := strconv.ParseFloat(c.Value, 64); err == nil {
			s.ExclusiveMaximum = &f
		}

	case ConstraintMultipleOf:
		if f, err := strconv.ParseFloat(c.Value, 64); err == nil {
			s.MultipleOf = &f
		}

	case ConstraintMinLength:
		if n, err := strconv.Atoi(c.Value); err == nil {
			s.MinLength = &n
		}

	case ConstraintMaxLength:
		if n, err := strconv.Atoi(c.Value); err == nil {
			s.MaxLength = &n
		}

	case ConstraintPattern:
		s.Pattern = c.Value

	case ConstraintMinItems:
		if n, err := strconv.Atoi(c.Value); err == nil {
			s.MinItems = &n
		}

	case ConstraintMaxItems:
		if n, err := strconv.Atoi(c.Value); err == nil {
			s.MaxItems = &n
		}

	case ConstraintUniqueItems:
		s.UniqueItems = c.Value == "true"

	case ConstraintEnum:
		// Pipe-separated enum values
		values := strings.Split(c.Value, "|")
		s.Enum = make([]any, len(values))
		for i, v := range values {
			s.Enum[i] = strings.TrimSpace(v)
		}

	case ConstraintDefault:
		s.Default = parseDefaultValue(c.Value, s.Type)

	case ConstraintDescription:
		s.Description = c.Value

	case ConstraintFormat:
		s.Format = c.Value

	case ConstraintDeprecated:
		s.Deprecated = c.Value == "true"
	}
	// Unrecognized kinds fall through untouched.
}

// parseDefaultValue attempts to parse a default value string based on the
// schema type it attaches to.
func parseDefaultValue(value string, schemaType string) any {
	switch schemaType {
	case "integer":
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	case "number":
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	case "boolean":
		return value == "true"
	}

	return value
}
