package mapper

import (
	"reflect"
	"slices"

	"github.com/oasbridge/schemareg/schema"
)

// ReflectMapper is the default Mapper. It derives schemas from Go types via
// reflection: structs become objects keyed by json tag, slices and arrays
// become arrays, maps become objects with additionalProperties, and scalar
// kinds map to the usual type/format pairs.
//
// Cyclic struct types are not expanded indefinitely: when a type is revisited
// while still being expanded, a $ref node is emitted for it instead.
type ReflectMapper struct{}

// NewReflectMapper returns the default reflection-based mapper.
func NewReflectMapper() *ReflectMapper {
	return &ReflectMapper{}
}

// Map implements Mapper. Traversal state is per-call, so a single
// ReflectMapper may be shared by concurrent callers.
func (m *ReflectMapper) Map(t reflect.Type, cfg Config) *schema.Schema {
	if t == nil {
		return nil
	}
	w := &walker{cfg: cfg, expanding: make(map[reflect.Type]bool)}
	return w.mapType(t, nil, true)
}

// walker holds the per-call traversal state.
type walker struct {
	cfg       Config
	expanding map[reflect.Type]bool
}

func (w *walker) mapType(t reflect.Type, field *reflect.StructField, root bool) *schema.Schema {
	nullable := false
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
		nullable = true
	}

	var s *schema.Schema
	switch t.Kind() {
	case reflect.Struct:
		if w.expanding[t] {
			s = &schema.Schema{Ref: schema.RefTo(w.cfg.refName(t))}
		} else {
			w.expanding[t] = true
			s = w.structSchema(t)
			delete(w.expanding, t)
		}

	case reflect.Slice, reflect.Array:
		s = &schema.Schema{
			Type:  "array",
			Items: w.mapType(t.Elem(), nil, false),
		}

	case reflect.Map:
		// Only string-keyed maps have an object rendering; others degrade to
		// an unconstrained object.
		s = &schema.Schema{Type: "object"}
		if t.Key().Kind() == reflect.String {
			s.AdditionalProperties = w.mapType(t.Elem(), nil, false)
		}

	default:
		s = primitiveSchema(t)
	}

	if w.cfg.Visit != nil {
		s = w.cfg.Visit(Node{Type: t, Field: field, Root: root}, s)
	}

	if s != nil && nullable {
		s.Nullable = true
	}
	return s
}

// structSchema reflects on a struct type to produce an object schema.
func (w *walker) structSchema(t reflect.Type) *schema.Schema {
	properties := make(map[string]*schema.Schema)
	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		// Embedded structs are inlined into the parent object. Inlining
		// applies even when the embedded type itself is unexported: json
		// promotes the exported fields of an unexported embedded struct.
		if field.Anonymous {
			ft := field.Type
			for ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				embedded := w.mapType(ft, nil, false)
				if embedded == nil || embedded.Ref != "" {
					continue
				}
				for name, prop := range embedded.Properties {
					if _, exists := properties[name]; !exists {
						properties[name] = prop
					}
				}
				for _, req := range embedded.Required {
					if !slices.Contains(required, req) {
						required = append(required, req)
					}
				}
				continue
			}
			// Embedded non-struct fields fall through: exported ones
			// serialize under the type name like regular fields, and
			// unexported ones are dropped by the exported check below.
		}

		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		name, jsonOpts := ParseJSONTag(jsonTag)
		if name == "" {
			name = field.Name
		}

		fieldSchema := w.mapType(field.Type, &field, false)
		if fieldSchema == nil {
			continue
		}
		properties[name] = fieldSchema

		if fieldRequired(field, jsonOpts) {
			required = append(required, name)
		}
	}

	return &schema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// primitiveSchema maps scalar kinds to type/format pairs.
func primitiveSchema(t reflect.Type) *schema.Schema {
	switch t.Kind() {
	case reflect.String:
		return &schema.Schema{Type: "string"}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return &schema.Schema{Type: "integer", Format: "int32"}

	case reflect.Int64, reflect.Uint64:
		return &schema.Schema{Type: "integer", Format: "int64"}

	case reflect.Float32:
		return &schema.Schema{Type: "number", Format: "float"}

	case reflect.Float64:
		return &schema.Schema{Type: "number", Format: "double"}

	case reflect.Bool:
		return &schema.Schema{Type: "boolean"}

	case reflect.Interface:
		// any accepts anything
		return &schema.Schema{}

	default:
		// chan, func, unsafe pointers: nothing sensible to say
		return &schema.Schema{}
	}
}
