package mapper

import (
	"reflect"

	"github.com/oasbridge/schemareg/schema"
)

// Node describes a single type node visited during traversal.
type Node struct {
	// Type is the visited type with pointer indirection removed.
	Type reflect.Type

	// Field is the struct field that declared this node, when the node was
	// reached as a struct property. Nil for root, element, and map value nodes.
	Field *reflect.StructField

	// Root is true for the type the Map call was invoked with.
	Root bool
}

// VisitFunc observes and optionally replaces the schema produced for a node.
// It is invoked exactly once per visited type node, after the mapper's default
// inference for that node and before the node is attached to its parent.
// Returning a different *schema.Schema replaces the node's schema wholesale.
type VisitFunc func(Node, *schema.Schema) *schema.Schema

// Config carries the hooks a Mapper is invoked with.
type Config struct {
	// Visit is called once per visited node. May be nil.
	Visit VisitFunc

	// RefName names a type when the mapper must emit a $ref instead of
	// expanding it (currently only for cyclic types). When nil, the type's
	// String() form is used.
	RefName func(reflect.Type) string
}

func (c Config) refName(t reflect.Type) string {
	if c.RefName != nil {
		return c.RefName(t)
	}
	return t.String()
}

// Mapper converts Go types to schemas. Implementations own recursive descent
// into struct fields, slice elements, and map values, and invoke the
// configured visit hook once per visited type node.
//
// Map must be a pure function of its inputs: implementations hold no state
// across calls, so concurrent Map invocations are safe.
type Mapper interface {
	Map(t reflect.Type, cfg Config) *schema.Schema
}
