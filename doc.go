// Package schemareg provides schema generation and caching for API document assembly.
//
// schemareg bridges Go's runtime type model and the JSON-Schema document model:
// given a reflect.Type, optionally paired with a parameter-binding context, it
// produces a schema describing the type's serialized form, memoizes the result,
// and maintains an index of named schemas for $ref resolution inside a larger
// API-description document.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - schema: the JSON-Schema data model shared by every layer
//   - mapper: the pluggable reflection-based type-to-schema primitive
//   - registry: the caching service, customization pipeline, and reference registry
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/oasbridge/schemareg
//
// # Quick Start
//
// Create a registry and request schemas for your types:
//
//	reg, err := registry.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	s := reg.GetOrCreateSchema(reflect.TypeOf(Widget{}), nil)
//	refs := reg.SchemasByRef() // name -> schema, for components.schemas
//
// A Registry is scoped to one document-generation session and is safe for
// concurrent use. Repeated calls for the same type return the identical
// cached schema. See the registry package documentation for the
// customization pipeline, naming strategies, and configuration options.
//
// # Parameter Binding
//
// When a type is bound as an operation parameter, pass a ParameterContext to
// receive an adjusted copy of the schema (description, default, nullability,
// and validation constraints applied) without disturbing the cached base:
//
//	pctx := &registry.ParameterContext{Name: "limit", Source: registry.BindingQuery, Default: 25}
//	s := reg.GetOrCreateSchema(reflect.TypeOf(0), pctx)
//
// # Document Output
//
// The accumulated reference registry serializes to the components section of
// an API document via Registry.ComponentsJSON and Registry.ComponentsYAML.
package schemareg
