package merge

import (
	"context"
	"strings"

	"github.com/jonwraymond/styleops/observe"
	"github.com/jonwraymond/styleops/style"
	"github.com/jonwraymond/styleops/stylesheet"
)

// Registration is the outcome of resolving one fragment sequence.
//
// RulesToInsert is nil when the canonical key was already registered; the
// identifier is then reused and nothing needs compiling.
type Registration struct {
	Identifier    string
	Key           string
	Fragments     style.Sequence
	RulesToInsert *style.RuleSet
}

// Hit reports whether the registration reuses an existing identifier.
func (r *Registration) Hit() bool {
	return r.RulesToInsert == nil
}

// Engine merges fragments against one Stylesheet.
//
// Contract:
//   - Concurrency: safe for concurrent use. Resolving the same rules from
//     several goroutines mints one identifier and one stylesheet entry.
//     ComputeRegistration followed by Apply is not atomic; use
//     ResolveToIdentifier when other goroutines share the Stylesheet.
//   - Errors: no operation fails. Empty input resolves to "".
type Engine struct {
	sheet   *stylesheet.Stylesheet
	logger  observe.Logger
	metrics observe.Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. By default the stylesheet's logger is used.
func WithLogger(logger observe.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics records registration hits and misses.
func WithMetrics(metrics observe.Metrics) Option {
	return func(e *Engine) {
		if metrics != nil {
			e.metrics = metrics
		}
	}
}

// NewEngine creates an Engine bound to sheet. A nil sheet gets a fresh
// Stylesheet with the default configuration.
func NewEngine(sheet *stylesheet.Stylesheet, opts ...Option) *Engine {
	if sheet == nil {
		sheet = stylesheet.New()
	}
	e := &Engine{
		sheet:   sheet,
		logger:  sheet.Config().Logger,
		metrics: observe.NoopMetrics(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = observe.NopLogger()
	}
	return e
}

// Stylesheet returns the registry the engine writes to.
func (e *Engine) Stylesheet() *stylesheet.Stylesheet {
	return e.sheet
}

// Flatten resolves fragments into one rule set. Later values override
// earlier ones; an overridden property keeps its first position.
func (e *Engine) Flatten(fragments style.Sequence) *style.RuleSet {
	rules := style.NewRuleSet()
	e.flatten(fragments, rules, make(map[string]bool))
	return rules
}

// flatten writes into rules. expanding holds the identifiers currently being
// expanded so an identifier whose fragments mention itself terminates.
func (e *Engine) flatten(fragments style.Sequence, rules *style.RuleSet, expanding map[string]bool) {
	for _, fragment := range fragments {
		switch f := fragment.(type) {
		case style.ClassName:
			id := string(f)
			if expanding[id] {
				continue
			}
			source, ok := e.sheet.FragmentsFor(id)
			if !ok {
				continue
			}
			expanding[id] = true
			e.flatten(source, rules, expanding)
			delete(expanding, id)

		case style.Sequence:
			e.flatten(f, rules, expanding)

		case style.Props:
			extractProps(f, rules)
		}
	}
}

func extractProps(props style.Props, rules *style.RuleSet) {
	for _, name := range props.Keys() {
		value := props[name]
		switch {
		case name == style.SelectorsKey, value == nil:
			// skipped
		case name == "margin", name == "padding":
			expandQuads(rules, name, value)
		case name == style.DisplayNameKey, IsAllowedProperty(name):
			rules.Set(name, value)
		}
	}
}

// expandQuads expands a margin or padding shorthand into its four sides.
// Only the first four space-separated tokens are used; a missing or empty
// side falls back like CSS: right to top, bottom to top, left to right.
func expandQuads(rules *style.RuleSet, name string, value any) {
	parts := []any{value}
	if s, ok := value.(string); ok {
		tokens := strings.Split(s, " ")
		parts = make([]any, len(tokens))
		for i, t := range tokens {
			parts[i] = t
		}
	}

	side := func(indexes ...int) any {
		for _, i := range indexes {
			if i < len(parts) && parts[i] != "" {
				return parts[i]
			}
		}
		return parts[0]
	}

	rules.Set(name+"Top", parts[0])
	rules.Set(name+"Right", side(1, 0))
	rules.Set(name+"Bottom", side(2, 0))
	rules.Set(name+"Left", side(3, 1, 0))
}

// ComputeRegistration classifies args and resolves them to a Registration
// without touching the registry's entries. It reports false when the input
// contributes no properties.
func (e *Engine) ComputeRegistration(ctx context.Context, args ...any) (*Registration, bool) {
	return e.computeRegistration(ctx, style.ClassifyAll(args...))
}

func (e *Engine) computeRegistration(ctx context.Context, fragments style.Sequence) (*Registration, bool) {
	rules := e.Flatten(fragments)
	key, ok := rules.CanonicalKey()
	if !ok {
		return nil, false
	}
	return e.registration(ctx, fragments, rules, key), true
}

// registration looks key up and mints a new identifier on a miss. rules
// loses its display name on a miss.
func (e *Engine) registration(ctx context.Context, fragments style.Sequence, rules *style.RuleSet, key string) *Registration {
	if id, found := e.sheet.IdentifierForKey(key); found {
		e.metrics.RecordRegistration(ctx, e.sheet.Meta(id, rules), true)
		return &Registration{Identifier: id, Key: key, Fragments: fragments}
	}

	var prefix string
	if name, ok := rules.Get(style.DisplayNameKey); ok {
		prefix = style.FormatValue(name)
		rules.Delete(style.DisplayNameKey)
	}
	id := e.sheet.NewIdentifier(prefix)
	e.metrics.RecordRegistration(ctx, e.sheet.Meta(id, rules), false)

	return &Registration{
		Identifier:    id,
		Key:           key,
		Fragments:     fragments,
		RulesToInsert: rules,
	}
}

// Apply compiles and records a new registration. Hits are a no-op.
func (e *Engine) Apply(ctx context.Context, reg *Registration) {
	if reg == nil || reg.Hit() {
		return
	}

	handle := e.sheet.Compile(ctx, reg.Identifier, reg.RulesToInsert)
	e.sheet.Record(reg.Identifier, reg.Key, reg.Fragments, reg.RulesToInsert, handle)

	e.logger.WithStyle(e.sheet.Meta(reg.Identifier, reg.RulesToInsert)).Debug(ctx, "style registered",
		observe.Field{Key: "key", Value: reg.Key},
		observe.Field{Key: "compiled", Value: handle != nil},
	)
}

// ResolveToIdentifier merges args into one registered identifier.
// It returns "" when args contribute no properties.
func (e *Engine) ResolveToIdentifier(ctx context.Context, args ...any) string {
	return e.resolve(ctx, style.ClassifyAll(args...))
}

// resolve registers fragments through Stylesheet.Register, so concurrent
// merges of one rule set share a single identifier and stylesheet entry.
func (e *Engine) resolve(ctx context.Context, fragments style.Sequence) string {
	rules := e.Flatten(fragments)
	key, ok := rules.CanonicalKey()
	if !ok {
		return ""
	}
	return e.sheet.Register(key, func() string {
		reg := e.registration(ctx, fragments, rules, key)
		e.Apply(ctx, reg)
		return reg.Identifier
	})
}
