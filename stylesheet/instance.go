package stylesheet

import (
	"sync"
	"sync/atomic"
)

// RenderScope identifies one rendering context, such as a server render
// pass. The process-wide instance is bound to the scope that was current
// when it was built.
type RenderScope struct {
	name string
	id   uint64
}

var scopeSeq atomic.Uint64

// NewRenderScope creates a scope distinct from every other scope.
func NewRenderScope(name string) *RenderScope {
	return &RenderScope{name: name, id: scopeSeq.Add(1)}
}

// Name returns the scope name.
func (r *RenderScope) Name() string { return r.name }

var (
	instanceMu sync.Mutex
	instance   *Stylesheet
	current    = NewRenderScope("root")
)

// EnterScope makes scope the current render scope. The next call to
// Instance replaces any instance bound to a different scope.
func EnterScope(scope *RenderScope) {
	if scope == nil {
		return
	}
	instanceMu.Lock()
	defer instanceMu.Unlock()
	current = scope
}

// CurrentScope returns the current render scope.
func CurrentScope() *RenderScope {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	return current
}

// Instance returns the process-wide Stylesheet, building it on first use
// from LoadConfig. An instance left over from a previous render scope is
// discarded and replaced by a fresh one that shares no state with it.
//
// Configuration that cannot be loaded falls back to DefaultConfig.
func Instance() *Stylesheet {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	if instance == nil || instance.scope != current {
		cfg, err := LoadConfig("")
		if err != nil {
			cfg = DefaultConfig()
		}
		instance = New(WithConfig(cfg))
		instance.scope = current
	}
	return instance
}
