package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func widgetSchema() *Schema {
	return &Schema{
		Type:     "object",
		SchemaID: "main.Widget",
		Required: []string{"name", "count"},
		Properties: map[string]*Schema{
			"name": {Type: "string"},
			"count": {
				Type:    "integer",
				Format:  "int32",
				Minimum: Float(1),
				Maximum: Float(10),
			},
			"tags": {
				Type:  "array",
				Items: &Schema{Type: "string", MinLength: Int(1)},
			},
		},
	}
}

func TestSchema_Clone(t *testing.T) {
	t.Run("nil receiver", func(t *testing.T) {
		var s *Schema
		assert.Nil(t, s.Clone())
	})

	t.Run("copy is structurally equal", func(t *testing.T) {
		orig := widgetSchema()
		clone := orig.Clone()
		assert.True(t, orig.Equal(clone))
	})

	t.Run("mutating the copy does not touch the original", func(t *testing.T) {
		orig := widgetSchema()
		clone := orig.Clone()

		clone.Description = "adjusted"
		*clone.Properties["count"].Minimum = 5
		clone.Properties["name"].Type = "integer"
		clone.Required[0] = "changed"
		clone.Properties["tags"].Items.MinLength = Int(99)

		assert.Empty(t, orig.Description)
		assert.Equal(t, float64(1), *orig.Properties["count"].Minimum)
		assert.Equal(t, "string", orig.Properties["name"].Type)
		assert.Equal(t, "name", orig.Required[0])
		assert.Equal(t, 1, *orig.Properties["tags"].Items.MinLength)
	})

	t.Run("copy shares no pointers", func(t *testing.T) {
		orig := widgetSchema()
		clone := orig.Clone()

		assert.NotSame(t, orig.Properties["count"], clone.Properties["count"])
		assert.NotSame(t, orig.Properties["count"].Minimum, clone.Properties["count"].Minimum)
		assert.NotSame(t, orig.Properties["tags"].Items, clone.Properties["tags"].Items)
	})
}

func TestSchema_Equal(t *testing.T) {
	t.Run("nil handling", func(t *testing.T) {
		var a, b *Schema
		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(&Schema{}))
		assert.False(t, (&Schema{}).Equal(nil))
	})

	t.Run("differing constraint values are unequal", func(t *testing.T) {
		a := widgetSchema()
		b := widgetSchema()
		b.Properties["count"].Maximum = Float(11)
		assert.False(t, a.Equal(b))
	})

	t.Run("schema id participates in Equal", func(t *testing.T) {
		a := widgetSchema()
		b := widgetSchema()
		b.SchemaID = "other.Widget"
		assert.False(t, a.Equal(b))
		assert.True(t, a.EqualIgnoreID(b))
	})

	t.Run("EqualIgnoreID ignores nested ids too", func(t *testing.T) {
		a := widgetSchema()
		b := widgetSchema()
		b.Properties["name"].SchemaID = "nested"
		assert.True(t, a.EqualIgnoreID(b))
	})
}

func TestSchema_Walk(t *testing.T) {
	s := widgetSchema()
	s.AdditionalProperties = &Schema{Type: "string"}

	var visited int
	s.Walk(func(*Schema) { visited++ })

	// root + 3 properties + items + additionalProperties
	assert.Equal(t, 6, visited)
}

func TestRefHelpers(t *testing.T) {
	ref := RefTo("models.User")
	require.Equal(t, "#/components/schemas/models.User", ref)
	assert.Equal(t, "models.User", RefName(ref))
	assert.Empty(t, RefName("#/definitions/models.User"))
	assert.Empty(t, RefName(""))
}
