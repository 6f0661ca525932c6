package registry

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sync"

	"go.yaml.in/yaml/v4"

	"github.com/oasbridge/schemareg/mapper"
	"github.com/oasbridge/schemareg/schema"
)

// Registry is the schema generation and caching service. It owns the schema
// cache and the reference registry for one document-generation session and is
// safe for use by concurrent callers.
//
// Schemas returned without a ParameterContext are shared cached values and
// must be treated as read-only; use Clone before mutating. Requests carrying
// a ParameterContext always receive an independent copy.
type Registry struct {
	mapper mapper.Mapper
	namer  *namer
	logger Logger

	// visit is the composed customization pipeline passed to the mapper.
	visit mapper.VisitFunc

	cache *schemaCache
	refs  *refRegistry

	// Name bookkeeping: which name each type resolved to, and which type owns
	// each name. Guarded separately from the cache because naming happens
	// inside generation.
	namesMu    sync.Mutex
	nameByType map[reflect.Type]string
	typeByName map[string]reflect.Type
}

// New creates a Registry. The zero configuration uses the reflection mapper,
// "package.TypeName" naming, oas-tag constraint facts, and no logging.
// An error is returned only for invalid configuration, such as a malformed
// naming template.
func New(opts ...Option) (*Registry, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.templateError != nil {
		return nil, fmt.Errorf("registry: configuration error: %w", cfg.templateError)
	}

	n := newNamer()
	n.strategy = cfg.namingStrategy
	n.template = cfg.nameTemplate
	n.fn = cfg.nameFunc

	r := &Registry{
		mapper:     cfg.mapper,
		namer:      n,
		logger:     cfg.logger,
		cache:      newSchemaCache(),
		refs:       newRefRegistry(),
		nameByType: make(map[reflect.Type]string),
		typeByName: make(map[string]reflect.Type),
	}

	stages := []Stage{
		binaryOverrideStage(),
		formatStage(),
		constraintStage(cfg.constraints),
		r.namingStage(),
	}
	stages = append(stages, cfg.extraStages...)
	r.visit = composeStages(stages...)

	r.preseedBinarySchemas()
	return r, nil
}

// GetOrCreateSchema returns the schema for t, generating and caching it on
// first request. pctx may be nil.
//
// When pctx denotes a genuine bare parameter (not backed by property
// metadata), the cache key includes the parameter's identity so the parameter
// may carry its own shape; property-backed and context-free requests share
// the type's entry. When pctx is non-nil, parameter-level facts are rendered
// onto an independent copy; the cached entry is never touched.
//
// The result is never nil: types the mapper cannot decompose yield an empty
// schema.
func (r *Registry) GetOrCreateSchema(t reflect.Type, pctx *ParameterContext) *schema.Schema {
	if t == nil {
		return &schema.Schema{}
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	key := schemaKey{typ: t, param: pctx.identity()}
	base := r.cache.getOrCreate(key, func() *schema.Schema {
		return r.generate(t)
	})

	r.installRefs(base)

	if pctx == nil {
		return base
	}

	adjusted := base.Clone()
	applyParameterContext(adjusted, pctx)
	return adjusted
}

// SchemasByRef returns the reference registry's current contents: every
// schema name observed so far mapped to its materialized schema. The map is
// a snapshot owned by the caller; the schema values remain shared and
// read-only.
func (r *Registry) SchemasByRef() map[string]*schema.Schema {
	return r.refs.snapshot()
}

// SchemaRef returns the $ref string for a named schema, using the
// components/schemas layout.
func (r *Registry) SchemaRef(name string) string {
	return schema.RefTo(name)
}

// generate produces the schema for a cache miss by running the mapper with
// the customization pipeline. A nil result from the mapper degrades to an
// empty schema rather than an error: this is a best-effort rendering layer.
func (r *Registry) generate(t reflect.Type) *schema.Schema {
	r.logger.Debug("generating schema", "type", t.String())

	s := r.mapper.Map(t, mapper.Config{
		Visit:   r.visit,
		RefName: r.nameForType,
	})
	if s == nil {
		r.logger.Debug("mapper produced no schema", "type", t.String())
		return &schema.Schema{}
	}
	return s
}

// installRefs walks a generated schema and installs every named node into the
// reference registry, so nested composite schemas resolve by $ref as well as
// the root.
func (r *Registry) installRefs(s *schema.Schema) {
	s.Walk(func(node *schema.Schema) {
		if node.SchemaID != "" {
			r.refs.addOrUpdate(node.SchemaID, node)
		}
	})
}

// nameForType resolves the stable schema name for a type. The first
// resolution derives the name from the configured strategy; later calls
// return the recorded name. When two distinct types derive the same name, the
// later type's name is rebuilt from its full package path, with a numeric
// suffix if needed, so neither schema silently overwrites the other.
func (r *Registry) nameForType(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	r.namesMu.Lock()
	defer r.namesMu.Unlock()

	if name, ok := r.nameByType[t]; ok {
		return name
	}

	name := r.namer.name(t)
	if existing, taken := r.typeByName[name]; taken && existing != t {
		// The disambiguated form can itself be taken when custom naming
		// already emits full-path names; retry with numeric suffixes until
		// the candidate is free.
		base := r.namer.disambiguate(t)
		renamed := base
		for i := 2; ; i++ {
			owner, clash := r.typeByName[renamed]
			if !clash || owner == t {
				break
			}
			renamed = fmt.Sprintf("%s%d", base, i)
		}
		r.logger.Warn("schema name collision",
			"name", name,
			"type", t.String(),
			"existing", existing.String(),
			"renamed", renamed)
		name = renamed
	}

	r.nameByType[t] = name
	r.typeByName[name] = t
	return name
}

// componentsDoc shapes registry contents as an OAS components fragment.
type componentsDoc struct {
	Components componentsSchemas `json:"components" yaml:"components"`
}

type componentsSchemas struct {
	Schemas map[string]*schema.Schema `json:"schemas" yaml:"schemas"`
}

// ComponentsJSON marshals the reference registry as a components/schemas
// document fragment in JSON. Internal schema names are not emitted; schemas
// are keyed by name and cross-reference each other by $ref.
func (r *Registry) ComponentsJSON() ([]byte, error) {
	data, err := json.MarshalIndent(componentsDoc{
		Components: componentsSchemas{Schemas: r.SchemasByRef()},
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("registry: failed to marshal components: %w", err)
	}
	return data, nil
}

// ComponentsYAML marshals the reference registry as a components/schemas
// document fragment in YAML.
func (r *Registry) ComponentsYAML() ([]byte, error) {
	data, err := yaml.Marshal(componentsDoc{
		Components: componentsSchemas{Schemas: r.SchemasByRef()},
	})
	if err != nil {
		return nil, fmt.Errorf("registry: failed to marshal components: %w", err)
	}
	return data, nil
}
