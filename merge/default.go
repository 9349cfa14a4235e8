package merge

import (
	"context"

	"github.com/jonwraymond/styleops/stylesheet"
)

// Default returns an Engine bound to the process-wide stylesheet.
func Default() *Engine {
	return NewEngine(stylesheet.Instance())
}

// Styles merges args against the process-wide stylesheet.
func Styles(args ...any) string {
	return Default().Styles(context.Background(), args...)
}

// StyleSets resolves sets against the process-wide stylesheet.
func StyleSets(sets ...*StyleSet) ProcessedStyleSet {
	return Default().StyleSets(context.Background(), sets...)
}

// ResolveToIdentifier resolves args against the process-wide stylesheet.
func ResolveToIdentifier(args ...any) string {
	return Default().ResolveToIdentifier(context.Background(), args...)
}
