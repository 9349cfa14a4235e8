package stylesheet

import (
	"fmt"
	"strings"

	"github.com/jonwraymond/styleops/observe"
	"github.com/jonwraymond/styleops/style"
)

// DefaultPrefix is the identifier prefix used when no display name is given.
const DefaultPrefix = "css"

// InjectionMode controls whether and how Compile invokes the native compiler.
type InjectionMode int

const (
	// InjectionNone skips native compilation. Rules are only logged.
	InjectionNone InjectionMode = iota

	// InjectionInsertNode compiles each rule set as soon as it is inserted.
	InjectionInsertNode

	// InjectionAppendChild compiles rule sets for batched appending.
	InjectionAppendChild
)

// String returns the canonical name of the mode.
func (m InjectionMode) String() string {
	switch m {
	case InjectionNone:
		return "none"
	case InjectionInsertNode:
		return "insert-node"
	case InjectionAppendChild:
		return "append-child"
	default:
		return fmt.Sprintf("InjectionMode(%d)", int(m))
	}
}

// ParseInjectionMode parses a mode name. It accepts none, insert,
// insert-node, append, append-child and the numeric forms 0, 1 and 2.
// Matching is case-insensitive.
func ParseInjectionMode(s string) (InjectionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "0":
		return InjectionNone, nil
	case "insert", "insert-node", "insertnode", "1":
		return InjectionInsertNode, nil
	case "append", "append-child", "appendchild", "2":
		return InjectionAppendChild, nil
	default:
		return InjectionNone, fmt.Errorf("%w: %q", ErrInvalidInjectionMode, s)
	}
}

// Config configures a Stylesheet.
type Config struct {
	// InjectionMode selects whether Compile calls Compiler.
	// Default: InjectionInsertNode.
	InjectionMode InjectionMode

	// DefaultPrefix is used by NewIdentifier when no prefix is passed.
	// Default: "css".
	DefaultPrefix string

	// Namespace, when set, is prepended to every identifier.
	Namespace string

	// OnInsertRule is invoked synchronously with every inserted rule set.
	OnInsertRule func(rules *style.RuleSet)

	// Compiler produces native style handles. Nil disables compilation.
	Compiler Compiler

	// Logger receives compile failures at debug level.
	Logger observe.Logger
}

// DefaultConfig returns the configuration a Stylesheet starts with.
func DefaultConfig() Config {
	return Config{
		InjectionMode: InjectionInsertNode,
		DefaultPrefix: DefaultPrefix,
		Logger:        observe.NopLogger(),
	}
}

// Option updates one part of a Config.
type Option func(*Config)

// WithInjectionMode sets the injection mode.
func WithInjectionMode(mode InjectionMode) Option {
	return func(c *Config) { c.InjectionMode = mode }
}

// WithDefaultPrefix sets the fallback identifier prefix.
// An empty prefix restores DefaultPrefix.
func WithDefaultPrefix(prefix string) Option {
	return func(c *Config) {
		if prefix == "" {
			prefix = DefaultPrefix
		}
		c.DefaultPrefix = prefix
	}
}

// WithNamespace sets the identifier namespace. Empty clears it.
func WithNamespace(namespace string) Option {
	return func(c *Config) { c.Namespace = namespace }
}

// WithOnInsertRule sets the insert callback. Nil clears it.
func WithOnInsertRule(fn func(rules *style.RuleSet)) Option {
	return func(c *Config) { c.OnInsertRule = fn }
}

// WithCompiler sets the native compiler. Nil disables compilation.
func WithCompiler(compiler Compiler) Option {
	return func(c *Config) { c.Compiler = compiler }
}

// WithLogger sets the logger. Nil restores the no-op logger.
func WithLogger(logger observe.Logger) Option {
	return func(c *Config) {
		if logger == nil {
			logger = observe.NopLogger()
		}
		c.Logger = logger
	}
}

// WithConfig replaces the whole configuration. Empty DefaultPrefix and nil
// Logger fall back to their defaults.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		if cfg.DefaultPrefix == "" {
			cfg.DefaultPrefix = DefaultPrefix
		}
		if cfg.Logger == nil {
			cfg.Logger = observe.NopLogger()
		}
		*c = cfg
	}
}
