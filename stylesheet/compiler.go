package stylesheet

import (
	"context"
	"fmt"

	"github.com/jonwraymond/styleops/observe"
	"github.com/jonwraymond/styleops/style"
)

// Handle is an opaque compiled native style.
type Handle any

// Compiler turns a finished rule set into a native style handle.
//
// Contract:
// - Errors: unsupported property values are reported as errors. Panics are
// recovered by the Stylesheet and treated the same way.
// - Ownership: rules must not be retained or mutated.
type Compiler interface {
	Compile(ctx context.Context, identifier string, rules *style.RuleSet) (Handle, error)
}

// CompilerFunc adapts a function to Compiler.
type CompilerFunc func(ctx context.Context, identifier string, rules *style.RuleSet) (Handle, error)

// Compile calls f.
func (f CompilerFunc) Compile(ctx context.Context, identifier string, rules *style.RuleSet) (Handle, error) {
	return f(ctx, identifier, rules)
}

// CompileResult is the outcome of one native compile: a handle or a reason.
type CompileResult struct {
	Handle Handle
	Err    error
}

// Succeeded reports whether the compile produced a handle.
func (r CompileResult) Succeeded() bool {
	return r.Err == nil
}

// invoke runs the compiler, converting panics and missing handles into failures.
func invoke(ctx context.Context, c Compiler, identifier string, rules *style.RuleSet) CompileResult {
	handle, err := safeCompile(ctx, c, identifier, rules)
	if err != nil {
		return CompileResult{Err: err}
	}
	if handle == nil {
		return CompileResult{Err: ErrNoHandle}
	}
	return CompileResult{Handle: handle}
}

// safeCompile calls c, reporting a panic as ErrCompilerPanic.
func safeCompile(ctx context.Context, c Compiler, identifier string, rules *style.RuleSet) (handle Handle, err error) {
	defer func() {
		if p := recover(); p != nil {
			handle, err = nil, fmt.Errorf("%w: %v", ErrCompilerPanic, p)
		}
	}()
	return c.Compile(ctx, identifier, rules)
}

type metaKey struct{}

func withMeta(ctx context.Context, meta observe.StyleMeta) context.Context {
	return context.WithValue(ctx, metaKey{}, meta)
}

// metaFrom returns the style metadata Compile attached to ctx, or a minimal
// one built from the arguments.
func metaFrom(ctx context.Context, identifier string, rules *style.RuleSet) observe.StyleMeta {
	if meta, ok := ctx.Value(metaKey{}).(observe.StyleMeta); ok {
		return meta
	}
	return observe.StyleMeta{Identifier: identifier, Properties: rules.Len()}
}

// Instrument wraps compiler with the observe compile middleware, adding a
// span, compile metrics and a log line per call. A panic in compiler is
// recorded as an ErrCompilerPanic failure.
func Instrument(compiler Compiler, mw *observe.Middleware) Compiler {
	if compiler == nil || mw == nil {
		return compiler
	}

	wrapped := mw.Wrap(func(ctx context.Context, meta observe.StyleMeta, rules *style.RuleSet) (any, error) {
		return safeCompile(ctx, compiler, meta.Identifier, rules)
	})

	return CompilerFunc(func(ctx context.Context, identifier string, rules *style.RuleSet) (Handle, error) {
		return wrapped(ctx, metaFrom(ctx, identifier, rules), rules)
	})
}
