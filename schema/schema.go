package schema

// Schema represents a JSON Schema fragment using OAS 3.x vocabulary.
//
// A single Schema type is used uniformly throughout schemareg: the mapper
// produces it, the registry caches it, and the document assembler emits it.
// Values stored in the registry cache are shared; callers must treat them as
// read-only and use Clone before any mutation.
type Schema struct {
	// JSON Schema Core
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`

	// Type validation
	Type string `yaml:"type,omitempty" json:"type,omitempty"`
	Enum []any  `yaml:"enum,omitempty" json:"enum,omitempty"`

	// Numeric validation
	MultipleOf       *float64 `yaml:"multipleOf,omitempty" json:"multipleOf,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	ExclusiveMaximum *float64 `yaml:"exclusiveMaximum,omitempty" json:"exclusiveMaximum,omitempty"`
	Minimum          *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	ExclusiveMinimum *float64 `yaml:"exclusiveMinimum,omitempty" json:"exclusiveMinimum,omitempty"`

	// String validation
	MaxLength *int   `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinLength *int   `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	Pattern   string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Array validation
	Items       *Schema `yaml:"items,omitempty" json:"items,omitempty"`
	MaxItems    *int    `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	MinItems    *int    `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	UniqueItems bool    `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`

	// Object validation
	Properties           map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	AdditionalProperties *Schema            `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`
	Required             []string           `yaml:"required,omitempty" json:"required,omitempty"`

	// OAS specific extensions
	Nullable   bool `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	ReadOnly   bool `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly  bool `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"`
	Deprecated bool `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	// Format (e.g. "date-time", "uuid", "binary")
	Format string `yaml:"format,omitempty" json:"format,omitempty"`

	Example any `yaml:"example,omitempty" json:"example,omitempty"`

	// SchemaID is the stable name assigned to composite object schemas for
	// cross-referencing in the registry. It is internal bookkeeping and is
	// never emitted: external output references the schema by $ref instead.
	SchemaID string `yaml:"-" json:"-"`
}

// Clone returns a deep copy of the schema. The copy shares no pointers with
// the original, so mutating it cannot leak back into a cached value.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}

	out := *s

	out.MultipleOf = cloneFloat(s.MultipleOf)
	out.Maximum = cloneFloat(s.Maximum)
	out.ExclusiveMaximum = cloneFloat(s.ExclusiveMaximum)
	out.Minimum = cloneFloat(s.Minimum)
	out.ExclusiveMinimum = cloneFloat(s.ExclusiveMinimum)
	out.MaxLength = cloneInt(s.MaxLength)
	out.MinLength = cloneInt(s.MinLength)
	out.MaxItems = cloneInt(s.MaxItems)
	out.MinItems = cloneInt(s.MinItems)

	if s.Enum != nil {
		out.Enum = make([]any, len(s.Enum))
		copy(out.Enum, s.Enum)
	}
	if s.Required != nil {
		out.Required = make([]string, len(s.Required))
		copy(out.Required, s.Required)
	}

	out.Items = s.Items.Clone()
	out.AdditionalProperties = s.AdditionalProperties.Clone()

	if s.Properties != nil {
		out.Properties = make(map[string]*Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = prop.Clone()
		}
	}

	return &out
}

// Walk visits the schema and every nested subschema in depth-first order.
// Property subschemas are visited in unspecified order.
func (s *Schema) Walk(visit func(*Schema)) {
	if s == nil {
		return
	}
	visit(s)
	s.Items.Walk(visit)
	s.AdditionalProperties.Walk(visit)
	for _, prop := range s.Properties {
		prop.Walk(visit)
	}
}

// Equal reports whether two schemas are structurally equal. The internal
// SchemaID is part of the comparison; use EqualIgnoreID to compare only the
// emitted vocabulary.
func (s *Schema) Equal(other *Schema) bool {
	return equalSchemas(s, other, false)
}

// EqualIgnoreID reports whether two schemas are structurally equal ignoring
// the internal schema name on every node.
func (s *Schema) EqualIgnoreID(other *Schema) bool {
	return equalSchemas(s, other, true)
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

// Float returns a pointer to v. Convenience for building constraint values.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v. Convenience for building constraint values.
func Int(v int) *int { return &v }
