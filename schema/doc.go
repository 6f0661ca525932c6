// Package schema defines the JSON Schema data model shared by the mapper and
// the registry.
//
// The package deliberately uses a single typed representation for every stage
// of schema handling: generation, caching, parameter adjustment, and document
// emission all operate on *Schema. Adjustments to cached schemas are expressed
// as Clone-then-mutate, never as in-place mutation of a shared value.
//
// The vocabulary covers the subset of OAS 3.x / JSON Schema keywords the
// registry produces: type, format, properties, items, additionalProperties,
// required, enum, the numeric/string/array constraint keywords, and the OAS
// nullable/readOnly/writeOnly/deprecated extensions.
package schema
