// Package registry provides schema generation and caching for API document
// assembly.
//
// A Registry bridges Go's runtime type model and the schema document model:
// given a reflect.Type (optionally paired with a parameter-binding context)
// it produces a JSON-Schema-shaped document describing the type's serialized
// form, memoizes the result, and maintains a secondary index of named schemas
// for $ref resolution in the surrounding document.
//
// # Usage
//
//	reg, err := registry.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	s := reg.GetOrCreateSchema(reflect.TypeOf(Widget{}), nil)
//	refs := reg.SchemasByRef() // name → schema, for components.schemas
//
// # Customization pipeline
//
// Generation delegates to a pluggable mapper (see the mapper package) with a
// hook invoked once per visited type node. The hook is an ordered pipeline:
//
//  1. Binary override: file uploads, byte streams, and piped readers always
//     render as {type: string, format: binary}, at any nesting depth.
//  2. Format enrichment: time.Time, uuid.UUID, and []byte get their
//     type/format vocabulary.
//  3. Constraint application: validation facts declared on struct fields
//     (oas tags by default) translate into schema keywords.
//  4. Name assignment: plain named struct schemas receive a deterministic
//     schema name and become linkable through the reference registry.
//
// Additional stages can be appended with WithStage.
//
// # Concurrency
//
// A Registry is safe for concurrent use. Cache population is single-flight
// per key, so racing requests for the same type share one generation. The
// reference registry uses last-write-wins overwrite, which is sound because
// generation is deterministic per type.
package registry
