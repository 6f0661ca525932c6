package registry

import (
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/oasbridge/schemareg/mapper"
	"github.com/oasbridge/schemareg/schema"
)

// Stage is one step of the customization pipeline. Stages run in order for
// every visited type node; each receives the schema produced so far and
// returns the schema to continue with, possibly a replacement.
type Stage = mapper.VisitFunc

// composeStages chains stages into a single visit hook.
func composeStages(stages ...Stage) mapper.VisitFunc {
	return func(n mapper.Node, s *schema.Schema) *schema.Schema {
		for _, stage := range stages {
			s = stage(n, s)
		}
		return s
	}
}

// binaryOverrideStage replaces whatever schema was inferred for a
// binary-carrying type with the fixed binary-string form. Running first in
// the pipeline guarantees a consistent binary representation at any nesting
// depth and keeps later stages from decorating a schema that is about to be
// discarded.
func binaryOverrideStage() Stage {
	return func(n mapper.Node, s *schema.Schema) *schema.Schema {
		if n.Type == fileHeaderListType {
			return binaryArraySchema()
		}
		if _, ok := binaryTypes[n.Type]; ok {
			return binarySchema()
		}
		return s
	}
}

var (
	timeType = reflect.TypeOf(time.Time{})
	uuidType = reflect.TypeOf(uuid.UUID{})
)

// formatStage injects type/format vocabulary for recognized scalar types that
// the mapper's default inference renders structurally: temporal types,
// identifiers, and raw byte payloads.
func formatStage() Stage {
	return func(n mapper.Node, s *schema.Schema) *schema.Schema {
		switch {
		case n.Type == timeType:
			return &schema.Schema{Type: "string", Format: "date-time"}

		case n.Type == uuidType:
			return &schema.Schema{Type: "string", Format: "uuid"}

		case n.Type.Kind() == reflect.Slice && n.Type.Elem().Kind() == reflect.Uint8:
			return &schema.Schema{Type: "string", Format: "byte"}
		}
		return s
	}
}

// constraintStage translates validation-constraint facts declared on the
// visited node's struct field into schema keywords. Nodes not reached through
// a struct field carry no declared constraints.
func constraintStage(src ConstraintSource) Stage {
	return func(n mapper.Node, s *schema.Schema) *schema.Schema {
		if s == nil || s.Ref != "" || n.Field == nil || src == nil {
			return s
		}
		applyConstraints(s, src.ConstraintsFor(*n.Field))
		return s
	}
}

// namingStage assigns a deterministic schema name to plain named struct
// schemas so they become linkable through the reference registry. It runs
// last so earlier overrides can never erase an assigned name.
func (r *Registry) namingStage() Stage {
	return func(n mapper.Node, s *schema.Schema) *schema.Schema {
		if s == nil || s.Ref != "" || s.Type != "object" {
			return s
		}
		if n.Type.Kind() != reflect.Struct || n.Type.Name() == "" {
			return s
		}
		s.SchemaID = r.nameForType(n.Type)
		return s
	}
}
