package schema

import "reflect"

// equalSchemas implements Equal and EqualIgnoreID. Comparison is structural:
// pointer-valued constraints compare by value, nested schemas recursively.
func equalSchemas(a, b *Schema, ignoreID bool) bool {
	if a == nil || b == nil {
		return a == b
	}

	left, right := a, b
	if ignoreID {
		left = a.Clone()
		right = b.Clone()
		left.Walk(func(s *Schema) { s.SchemaID = "" })
		right.Walk(func(s *Schema) { s.SchemaID = "" })
	}

	return reflect.DeepEqual(left, right)
}
