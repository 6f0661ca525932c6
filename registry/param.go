package registry

import "github.com/oasbridge/schemareg/schema"

// BindingSource identifies where a parameter's value is bound from.
type BindingSource string

const (
	// BindingQuery binds from the query string.
	BindingQuery BindingSource = "query"
	// BindingPath binds from a path segment. Path parameters are always required.
	BindingPath BindingSource = "path"
	// BindingHeader binds from a request header.
	BindingHeader BindingSource = "header"
	// BindingForm binds from form data.
	BindingForm BindingSource = "form"
	// BindingBody binds from the request body.
	BindingBody BindingSource = "body"
)

// ParameterContext describes how a schema's value is bound at an API
// boundary. It is read-only input to schema requests: the context itself is
// never cached, only its effect on an independent copy of the schema.
type ParameterContext struct {
	// Name is the parameter's name as declared on the handler.
	Name string

	// Source is where the value is bound from.
	Source BindingSource

	// FromProperty is true when the binding is backed by model-property
	// metadata rather than a bare handler parameter. Property-backed bindings
	// share the property type's cache entry; bare parameters get their own
	// cache slot so parameter-specific shape cannot leak across usages.
	FromProperty bool

	// Required marks the parameter as mandatory. Ignored for path bindings,
	// which are always required.
	Required bool

	// Default is the value applied when the parameter is absent.
	Default any

	// Description documents the parameter.
	Description string

	// Constraints are parameter-level constraint facts applied on top of the
	// type's declared constraints.
	Constraints []Constraint
}

// identity returns the parameter component of the cache key, or "" when the
// context does not denote a genuine bare parameter.
func (p *ParameterContext) identity() string {
	if p == nil || p.FromProperty || p.Name == "" {
		return ""
	}
	return string(p.Source) + ":" + p.Name
}

// required reports effective required-ness: path bindings are always required.
func (p *ParameterContext) required() bool {
	return p.Required || p.Source == BindingPath
}

// applyParameterContext renders parameter-level facts into schema vocabulary.
// The schema must be an independent copy: cached entries are never adjusted
// in place.
func applyParameterContext(s *schema.Schema, p *ParameterContext) {
	if p.Description != "" {
		s.Description = p.Description
	}
	if p.Default != nil {
		s.Default = p.Default
	}
	if !p.required() {
		s.Nullable = true
	}
	applyConstraints(s, p.Constraints)
}
