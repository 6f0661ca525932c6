package mapper

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseJSONTag(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		wantName string
		wantOpts []string
	}{
		{"empty", "", "", nil},
		{"name only", "count", "count", nil},
		{"name with omitempty", "count,omitempty", "count", []string{"omitempty"}},
		{"options only", ",omitempty", "", []string{"omitempty"}},
		{"multiple options", "count,omitempty,string", "count", []string{"omitempty", "string"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, opts := ParseJSONTag(tt.tag)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantOpts, opts)
		})
	}
}

func TestParseOASTag(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, ParseOASTag(""))
	})

	t.Run("key-value pairs", func(t *testing.T) {
		opts := ParseOASTag("minimum=1,maximum=10,description=How many")
		assert.Equal(t, "1", opts["minimum"])
		assert.Equal(t, "10", opts["maximum"])
		assert.Equal(t, "How many", opts["description"])
	})

	t.Run("bare keys are boolean flags", func(t *testing.T) {
		opts := ParseOASTag("deprecated,minLength=2")
		assert.Equal(t, "true", opts["deprecated"])
		assert.Equal(t, "2", opts["minLength"])
	})

	t.Run("whitespace is trimmed", func(t *testing.T) {
		opts := ParseOASTag(" pattern=^a+$ , maxLength=5 ")
		assert.Equal(t, "^a+$", opts["pattern"])
		assert.Equal(t, "5", opts["maxLength"])
	})
}

func TestFieldRequired(t *testing.T) {
	type sample struct {
		Plain     string  `json:"plain"`
		Omitempty string  `json:"omitempty_field,omitempty"`
		Pointer   *string `json:"pointer"`
		Forced    *string `json:"forced" oas:"required=true"`
		Relaxed   string  `json:"relaxed" oas:"required=false"`
	}

	st := reflect.TypeOf(sample{})
	get := func(name string) reflect.StructField {
		f, ok := st.FieldByName(name)
		assert.True(t, ok)
		return f
	}

	tests := []struct {
		field string
		want  bool
	}{
		{"Plain", true},
		{"Omitempty", false},
		{"Pointer", false},
		{"Forced", true},
		{"Relaxed", false},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			f := get(tt.field)
			_, opts := ParseJSONTag(f.Tag.Get("json"))
			assert.Equal(t, tt.want, fieldRequired(f, opts))
		})
	}
}
