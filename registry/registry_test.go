package registry

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oasbridge/schemareg/mapper"
	"github.com/oasbridge/schemareg/schema"
)

// Widget is the canonical test model: a plain composite type with a
// constrained numeric property.
type Widget struct {
	Name  string `json:"name"`
	Count int    `json:"count" oas:"minimum=1,maximum=10"`
}

func newRegistry(t *testing.T, opts ...Option) *Registry {
	t.Helper()
	r, err := New(opts...)
	require.NoError(t, err)
	return r
}

func TestRegistry_WidgetScenario(t *testing.T) {
	r := newRegistry(t)

	s := r.GetOrCreateSchema(reflect.TypeOf(Widget{}), nil)
	require.NotNil(t, s)

	assert.Equal(t, "registry.Widget", s.SchemaID)
	assert.Equal(t, "object", s.Type)

	require.Contains(t, s.Properties, "name")
	assert.Equal(t, "string", s.Properties["name"].Type)

	count := s.Properties["count"]
	require.NotNil(t, count)
	assert.Equal(t, "integer", count.Type)
	require.NotNil(t, count.Minimum)
	require.NotNil(t, count.Maximum)
	assert.Equal(t, float64(1), *count.Minimum)
	assert.Equal(t, float64(10), *count.Maximum)

	refs := r.SchemasByRef()
	require.Contains(t, refs, "registry.Widget")
	assert.True(t, refs["registry.Widget"].Equal(s))
}

func TestRegistry_Determinism(t *testing.T) {
	r := newRegistry(t)

	first := r.GetOrCreateSchema(reflect.TypeOf(Widget{}), nil)
	second := r.GetOrCreateSchema(reflect.TypeOf(Widget{}), nil)

	// Cache hit: the same published value, not a regeneration.
	assert.Same(t, first, second)
	assert.True(t, first.Equal(second))
}

func TestRegistry_PointerAndValueShareEntry(t *testing.T) {
	r := newRegistry(t)

	byValue := r.GetOrCreateSchema(reflect.TypeOf(Widget{}), nil)
	byPointer := r.GetOrCreateSchema(reflect.TypeOf(&Widget{}), nil)

	assert.Same(t, byValue, byPointer)
}

func TestRegistry_NilType(t *testing.T) {
	r := newRegistry(t)

	s := r.GetOrCreateSchema(nil, nil)
	require.NotNil(t, s)
	assert.True(t, s.Equal(&schema.Schema{}))
}

// nilMapper simulates a mapping primitive that cannot decompose the type.
type nilMapper struct{}

func (nilMapper) Map(reflect.Type, mapper.Config) *schema.Schema { return nil }

func TestRegistry_EmptyResultSafety(t *testing.T) {
	t.Run("mapper yields nothing", func(t *testing.T) {
		r := newRegistry(t, WithMapper(nilMapper{}))

		s := r.GetOrCreateSchema(reflect.TypeOf(Widget{}), nil)
		require.NotNil(t, s)
		assert.True(t, s.Equal(&schema.Schema{}))
	})

	t.Run("undecomposable kind", func(t *testing.T) {
		r := newRegistry(t)

		s := r.GetOrCreateSchema(reflect.TypeOf(make(chan int)), nil)
		require.NotNil(t, s)
		assert.Empty(t, s.Type)
	})
}

func TestRegistry_ParameterAdjustment(t *testing.T) {
	r := newRegistry(t)

	base := r.GetOrCreateSchema(reflect.TypeOf(0), nil)
	require.NotNil(t, base)

	pctx := &ParameterContext{
		Name:        "limit",
		Source:      BindingQuery,
		Required:    false,
		Default:     25,
		Description: "Maximum number of results",
		Constraints: []Constraint{
			{Kind: ConstraintMinimum, Value: "1"},
			{Kind: ConstraintMaximum, Value: "100"},
		},
	}
	adjusted := r.GetOrCreateSchema(reflect.TypeOf(0), pctx)
	require.NotNil(t, adjusted)

	t.Run("parameter facts are rendered", func(t *testing.T) {
		assert.Equal(t, 25, adjusted.Default)
		assert.Equal(t, "Maximum number of results", adjusted.Description)
		assert.True(t, adjusted.Nullable)
		require.NotNil(t, adjusted.Minimum)
		assert.Equal(t, float64(1), *adjusted.Minimum)
		require.NotNil(t, adjusted.Maximum)
		assert.Equal(t, float64(100), *adjusted.Maximum)
	})

	t.Run("cached base entry is untouched", func(t *testing.T) {
		assert.Nil(t, base.Default)
		assert.Empty(t, base.Description)
		assert.False(t, base.Nullable)
		assert.Nil(t, base.Minimum)

		// The type-only entry observed by other callers is also unchanged.
		again := r.GetOrCreateSchema(reflect.TypeOf(0), nil)
		assert.Same(t, base, again)
	})

	t.Run("path parameters are never nullable", func(t *testing.T) {
		s := r.GetOrCreateSchema(reflect.TypeOf(""), &ParameterContext{
			Name:   "id",
			Source: BindingPath,
		})
		require.NotNil(t, s)
		assert.False(t, s.Nullable)
	})
}

func TestRegistry_CacheKeyDerivation(t *testing.T) {
	type unit struct {
		Value string `json:"value"`
	}

	r := newRegistry(t)

	plain := r.GetOrCreateSchema(reflect.TypeOf(unit{}), nil)

	t.Run("property-backed binding shares the type entry", func(t *testing.T) {
		fromProperty := r.GetOrCreateSchema(reflect.TypeOf(unit{}), &ParameterContext{
			Name:         "unit",
			Source:       BindingQuery,
			FromProperty: true,
			Required:     true,
		})
		// Adjusted copy, same underlying structure.
		assert.NotSame(t, plain, fromProperty)
		assert.True(t, plain.Equal(fromProperty))
	})

	t.Run("bare parameter gets its own slot with an identical base", func(t *testing.T) {
		bare := r.GetOrCreateSchema(reflect.TypeOf(unit{}), &ParameterContext{
			Name:     "unit",
			Source:   BindingQuery,
			Required: true,
		})
		assert.True(t, plain.Equal(bare))
	})

	t.Run("parameter facts never leak into the shared entry", func(t *testing.T) {
		r.GetOrCreateSchema(reflect.TypeOf(unit{}), &ParameterContext{
			Name:        "unit",
			Source:      BindingQuery,
			Default:     "x",
			Description: "bare override",
		})

		shared := r.GetOrCreateSchema(reflect.TypeOf(unit{}), nil)
		assert.Nil(t, shared.Default)
		assert.Empty(t, shared.Description)
	})
}

func TestRegistry_NestedCompositeRegistration(t *testing.T) {
	type Leaf struct {
		Label string `json:"label"`
	}
	type Branch struct {
		Leaf Leaf `json:"leaf"`
	}

	r := newRegistry(t)
	s := r.GetOrCreateSchema(reflect.TypeOf(Branch{}), nil)
	require.NotNil(t, s)

	refs := r.SchemasByRef()
	assert.Contains(t, refs, "registry.Branch")
	assert.Contains(t, refs, "registry.Leaf")
	assert.Equal(t, "registry.Leaf", s.Properties["leaf"].SchemaID)
}

func TestRegistry_CyclicType(t *testing.T) {
	r := newRegistry(t)

	s := r.GetOrCreateSchema(reflect.TypeOf(treeNode{}), nil)
	require.NotNil(t, s)
	assert.Equal(t, "registry.treeNode", s.SchemaID)

	children := s.Properties["children"]
	require.NotNil(t, children)
	require.NotNil(t, children.Items)
	assert.Equal(t, schema.RefTo("registry.treeNode"), children.Items.Ref)

	refs := r.SchemasByRef()
	assert.Contains(t, refs, "registry.treeNode")
}

type treeNode struct {
	Value    string      `json:"value"`
	Children []*treeNode `json:"children,omitempty"`
}

func TestRegistry_SchemaRef(t *testing.T) {
	r := newRegistry(t)
	assert.Equal(t, "#/components/schemas/registry.Widget", r.SchemaRef("registry.Widget"))
}

func TestRegistry_CustomStage(t *testing.T) {
	r := newRegistry(t, WithStage(func(n mapper.Node, s *schema.Schema) *schema.Schema {
		if s != nil && n.Root {
			s.Title = "stamped"
		}
		return s
	}))

	s := r.GetOrCreateSchema(reflect.TypeOf(Widget{}), nil)
	require.NotNil(t, s)
	assert.Equal(t, "stamped", s.Title)
	// Nested nodes are not the root.
	assert.Empty(t, s.Properties["name"].Title)
}
