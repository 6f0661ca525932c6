package registry

import (
	"text/template"

	"github.com/oasbridge/schemareg/mapper"
)

// Option configures a Registry instance.
// Options are applied when creating a new Registry with New().
type Option func(*config)

// config holds registry configuration applied via options.
type config struct {
	namingStrategy NamingStrategy
	nameTemplate   *template.Template
	nameFunc       NameFunc
	templateError  error

	mapper      mapper.Mapper
	constraints ConstraintSource
	extraStages []Stage
	logger      Logger
}

// defaultConfig returns the configuration used when no options are given:
// "package.TypeName" naming, the reflection mapper, oas-tag constraint facts,
// and no logging.
func defaultConfig() *config {
	return &config{
		namingStrategy: NamingDefault,
		mapper:         mapper.NewReflectMapper(),
		constraints:    OASTagSource{},
		logger:         NopLogger{},
	}
}

// WithNaming sets a built-in schema naming strategy.
// The default is NamingDefault which produces "package.TypeName" format.
// Setting a strategy clears any previously set template or custom function.
func WithNaming(strategy NamingStrategy) Option {
	return func(cfg *config) {
		cfg.namingStrategy = strategy
		cfg.nameTemplate = nil
		cfg.nameFunc = nil
		cfg.templateError = nil
	}
}

// WithNameTemplate sets a custom Go text/template for schema naming.
// The template receives a NameContext with type metadata. Available template
// functions: pascal, camel, snake, kebab, upper, lower, title, sanitize,
// trimPrefix, trimSuffix, replace.
//
// Example:
//
//	WithNameTemplate(`{{pascal .Package}}{{pascal .Type}}`)
//
// Template parse errors are returned by New(). Setting a template clears any
// previously set custom function.
func WithNameTemplate(tmpl string) Option {
	return func(cfg *config) {
		t, err := parseNameTemplate(tmpl)
		if err != nil {
			cfg.templateError = err
			cfg.nameTemplate = nil
			return
		}
		cfg.nameTemplate = t
		cfg.nameFunc = nil
		cfg.templateError = nil
	}
}

// WithNameFunc sets a custom function for schema naming.
// Setting a custom function clears any previously set template.
func WithNameFunc(fn NameFunc) Option {
	return func(cfg *config) {
		cfg.nameFunc = fn
		cfg.nameTemplate = nil
		cfg.templateError = nil
	}
}

// WithMapper replaces the type→schema mapping primitive. The default is the
// reflection mapper. Custom mappers must invoke the configured visit hook
// once per visited type node, or the customization pipeline will not run.
func WithMapper(m mapper.Mapper) Option {
	return func(cfg *config) {
		if m != nil {
			cfg.mapper = m
		}
	}
}

// WithConstraintSource replaces the validation-constraint-fact source.
// The default reads oas struct tags. Passing nil disables constraint
// application entirely.
func WithConstraintSource(src ConstraintSource) Option {
	return func(cfg *config) {
		cfg.constraints = src
	}
}

// WithStage appends a custom stage to the customization pipeline. Custom
// stages run after the built-in stages (binary override, format enrichment,
// constraint application, name assignment), once per visited type node.
// Stages must be pure functions of their inputs.
func WithStage(stage Stage) Option {
	return func(cfg *config) {
		if stage != nil {
			cfg.extraStages = append(cfg.extraStages, stage)
		}
	}
}

// WithLogger sets the logger. The default is NopLogger.
// Use NewSlogAdapter to plug in a log/slog logger.
func WithLogger(logger Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
