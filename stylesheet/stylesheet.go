package stylesheet

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/jonwraymond/styleops/observe"
	"github.com/jonwraymond/styleops/style"
)

// InsertedRule is one entry of the insertion log.
type InsertedRule struct {
	Identifier string
	Rules      *style.RuleSet
}

type entry struct {
	fragments style.Sequence
	rules     *style.RuleSet
	handle    Handle
}

// Stylesheet is the registry of issued identifiers and their rules.
//
// Contract:
//   - Concurrency: safe for concurrent use. State changes happen under one
//     lock; the compiler, OnInsertRule and reset callbacks run outside it.
//     Register serializes find-or-create per canonical key.
//   - Ownership: rule sets handed out by RulesFor, InsertedRules and
//     OnInsertRule are copies.
//   - Errors: no operation fails. Compiler failures are logged and swallowed.
type Stylesheet struct {
	mu              sync.Mutex
	cfg             Config
	counter         int
	keyToIdentifier map[string]string
	entries         map[string]entry
	inserted        []InsertedRule
	onReset         []func()
	scope           *RenderScope
	registering     singleflight.Group
}

// New creates a Stylesheet with DefaultConfig updated by opts.
func New(opts ...Option) *Stylesheet {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Stylesheet{
		cfg:             cfg,
		keyToIdentifier: make(map[string]string),
		entries:         make(map[string]entry),
	}
}

// Configure applies opts on top of the current configuration.
func (s *Stylesheet) Configure(opts ...Option) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, opt := range opts {
		opt(&s.cfg)
	}
}

// Config returns a copy of the current configuration.
func (s *Stylesheet) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// NewIdentifier issues "{namespace-}{prefix}-{n}" and advances the counter.
// An empty prefix uses the configured default.
func (s *Stylesheet) NewIdentifier(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prefix == "" {
		prefix = s.cfg.DefaultPrefix
	}

	var b strings.Builder
	if s.cfg.Namespace != "" {
		b.WriteString(s.cfg.Namespace)
		b.WriteByte('-')
	}
	b.WriteString(prefix)
	b.WriteByte('-')
	b.WriteString(strconv.Itoa(s.counter))
	s.counter++

	return b.String()
}

// OnReset registers fn to run after every Reset, in registration order.
func (s *Stylesheet) OnReset(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onReset = append(s.onReset, fn)
}

// Register runs register for key and returns the identifier it produced.
// Concurrent calls for the same key share one register call, so a rule set
// is looked up, minted and recorded at most once while a call is in flight.
// register must not call Register with the same key.
func (s *Stylesheet) Register(key string, register func() string) string {
	v, _, _ := s.registering.Do(key, func() (any, error) {
		return register(), nil
	})
	id, _ := v.(string)
	return id
}

// IdentifierForKey returns the identifier registered under a canonical key.
func (s *Stylesheet) IdentifierForKey(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.keyToIdentifier[key]
	return id, ok
}

// FragmentsFor returns the source fragments recorded for identifier.
func (s *Stylesheet) FragmentsFor(identifier string) (style.Sequence, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[identifier]
	return e.fragments, ok
}

// HandleFor returns the compiled handle recorded for identifier.
// It reports false when the identifier is unknown or was never compiled.
func (s *Stylesheet) HandleFor(identifier string) (Handle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[identifier]
	if !ok || e.handle == nil {
		return nil, false
	}
	return e.handle, true
}

// RulesFor returns a copy of the rule set recorded for identifier.
func (s *Stylesheet) RulesFor(identifier string) (*style.RuleSet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[identifier]
	if !ok {
		return nil, false
	}
	return e.rules.Clone(), true
}

// Record stores a registration, replacing any entry under identifier.
func (s *Stylesheet) Record(identifier, key string, fragments style.Sequence, rules *style.RuleSet, handle Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyToIdentifier[key] = identifier
	s.entries[identifier] = entry{fragments: fragments, rules: rules, handle: handle}
}

// Compile logs rules under identifier and, unless the injection mode is
// InjectionNone, asks the compiler for a handle. The returned handle is nil
// when compilation is skipped or fails.
func (s *Stylesheet) Compile(ctx context.Context, identifier string, rules *style.RuleSet) Handle {
	cfg := s.Config()
	meta := s.meta(cfg, identifier, rules)

	var handle Handle
	if cfg.InjectionMode != InjectionNone && cfg.Compiler != nil {
		res := invoke(withMeta(ctx, meta), cfg.Compiler, identifier, rules)
		if res.Succeeded() {
			handle = res.Handle
		} else {
			cfg.Logger.WithStyle(meta).Debug(ctx, "native style compile skipped",
				observe.Field{Key: "error", Value: res.Err.Error()},
				observe.Field{Key: "mode", Value: cfg.InjectionMode.String()},
			)
		}
	}

	s.mu.Lock()
	s.inserted = append(s.inserted, InsertedRule{Identifier: identifier, Rules: rules})
	s.mu.Unlock()

	if cfg.OnInsertRule != nil {
		cfg.OnInsertRule(rules.Clone())
	}

	return handle
}

// Rules serializes the insertion log as ".{identifier}{declarations}" blocks
// in insertion order. Empty rule sets contribute nothing.
func (s *Stylesheet) Rules() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b strings.Builder
	for _, r := range s.inserted {
		if r.Rules.Len() == 0 {
			continue
		}
		b.WriteByte('.')
		b.WriteString(r.Identifier)
		b.WriteByte('{')
		b.WriteString(r.Rules.Declarations())
		b.WriteByte('}')
	}
	return b.String()
}

// InsertedRules returns a copy of the insertion log.
func (s *Stylesheet) InsertedRules() []InsertedRule {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]InsertedRule, len(s.inserted))
	for i, r := range s.inserted {
		out[i] = InsertedRule{Identifier: r.Identifier, Rules: r.Rules.Clone()}
	}
	return out
}

// Len returns the number of recorded identifiers.
func (s *Stylesheet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Reset clears the insertion log, the counter and both mappings, then runs
// the reset callbacks in registration order.
func (s *Stylesheet) Reset() {
	s.mu.Lock()
	s.inserted = nil
	s.counter = 0
	s.entries = make(map[string]entry)
	s.keyToIdentifier = make(map[string]string)
	callbacks := make([]func(), len(s.onReset))
	copy(callbacks, s.onReset)
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// ResetKeys forgets which canonical key maps to which identifier so the next
// merge of any rule set mints a fresh identifier. Entries, handles, the
// insertion log and the counter are kept.
func (s *Stylesheet) ResetKeys() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyToIdentifier = make(map[string]string)
}

// Meta describes identifier for telemetry.
func (s *Stylesheet) Meta(identifier string, rules *style.RuleSet) observe.StyleMeta {
	return s.meta(s.Config(), identifier, rules)
}

func (s *Stylesheet) meta(cfg Config, identifier string, rules *style.RuleSet) observe.StyleMeta {
	prefix := identifier
	if cfg.Namespace != "" {
		prefix = strings.TrimPrefix(prefix, cfg.Namespace+"-")
	}
	if i := strings.LastIndexByte(prefix, '-'); i >= 0 {
		prefix = prefix[:i]
	}
	return observe.StyleMeta{
		Identifier: identifier,
		Namespace:  cfg.Namespace,
		Prefix:     prefix,
		Properties: rules.Len(),
	}
}
