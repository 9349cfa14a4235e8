package stylesheet

import "errors"

var (
	// ErrInvalidInjectionMode indicates an injection mode name that cannot be parsed.
	ErrInvalidInjectionMode = errors.New("stylesheet: invalid injection mode")

	// ErrCompilerPanic indicates the native compiler panicked.
	ErrCompilerPanic = errors.New("stylesheet: native compiler panicked")

	// ErrNoHandle indicates a compiler reported success without a handle.
	ErrNoHandle = errors.New("stylesheet: compiler returned no handle")
)
