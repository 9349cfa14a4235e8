package cache

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/jonwraymond/styleops/style"
	"github.com/jonwraymond/styleops/stylesheet"
)

// CompilerMiddleware puts a Cache in front of a stylesheet.Compiler.
type CompilerMiddleware struct {
	cache  Cache
	keyer  Keyer
	policy Policy
	group  singleflight.Group
}

// NewCompilerMiddleware creates a new compiler middleware.
// If keyer is nil, DefaultKeyer is used.
func NewCompilerMiddleware(cache Cache, keyer Keyer, policy Policy) (*CompilerMiddleware, error) {
	if cache == nil {
		return nil, ErrNilCache
	}
	if keyer == nil {
		keyer = NewDefaultKeyer()
	}
	return &CompilerMiddleware{
		cache:  cache,
		keyer:  keyer,
		policy: policy,
	}, nil
}

// Compile returns the cached handle for rules or compiles them.
// On cache hit, the compiler is not called.
// Concurrent misses for the same rules share one compile.
// Errors are NOT cached.
func (m *CompilerMiddleware) Compile(
	ctx context.Context,
	compiler stylesheet.Compiler,
	identifier string,
	rules *style.RuleSet,
) (stylesheet.Handle, error) {
	if !m.policy.ShouldCache() {
		return compiler.Compile(ctx, identifier, rules)
	}

	key, err := m.keyer.Key(rules)
	if err != nil || ValidateKey(key) != nil {
		return compiler.Compile(ctx, identifier, rules)
	}

	if cached, ok := m.cache.Get(ctx, key); ok {
		return cached, nil
	}

	handle, err, _ := m.group.Do(key, func() (any, error) {
		if cached, ok := m.cache.Get(ctx, key); ok {
			return cached, nil
		}

		handle, err := compiler.Compile(ctx, identifier, rules)
		if err != nil {
			return nil, err
		}

		if ttl := m.policy.EffectiveTTL(0); ttl > 0 {
			_ = m.cache.Set(ctx, key, handle, ttl)
		}
		return handle, nil
	})
	return handle, err
}

// Wrap returns compiler with caching applied.
func (m *CompilerMiddleware) Wrap(compiler stylesheet.Compiler) (stylesheet.Compiler, error) {
	if compiler == nil {
		return nil, ErrNilCompiler
	}
	return stylesheet.CompilerFunc(func(ctx context.Context, identifier string, rules *style.RuleSet) (stylesheet.Handle, error) {
		return m.Compile(ctx, compiler, identifier, rules)
	}), nil
}

// BindReset clears cache whenever sheet is reset.
func BindReset(sheet *stylesheet.Stylesheet, cache Cache) error {
	if cache == nil {
		return ErrNilCache
	}
	sheet.OnReset(func() {
		_ = cache.Clear(context.Background())
	})
	return nil
}
