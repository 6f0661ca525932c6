// Package mapper converts Go types to schemas via reflection.
//
// The mapper owns recursive descent: it walks struct fields (honoring json
// tags and embedding), slice and array elements, and map values, producing a
// schema for each node it visits. Customization is layered on through a visit
// hook (see Config.Visit) invoked once per node, which is how the registry
// package applies binary overrides, format enrichment, validation constraints,
// and schema naming without the mapper knowing about any of them.
package mapper
