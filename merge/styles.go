package merge

import (
	"context"
	"slices"
	"strings"

	"github.com/jonwraymond/styleops/style"
)

// styleParts splits fragments into static class tokens and literal props.
type styleParts struct {
	classes []string
	objects style.Sequence
}

// extractStyleParts walks fragments in order. Space-separated class lists
// are split, registered identifiers are replaced by the fragments they were
// registered with, unknown tokens are kept once in first-seen order and
// literal props are collected.
func (e *Engine) extractStyleParts(fragments style.Sequence) styleParts {
	var parts styleParts
	expanding := make(map[string]bool)

	var walk func(style.Sequence)
	token := func(name string) {
		if expanding[name] {
			return
		}
		if source, ok := e.sheet.FragmentsFor(name); ok {
			expanding[name] = true
			walk(source)
			delete(expanding, name)
			return
		}
		if !slices.Contains(parts.classes, name) {
			parts.classes = append(parts.classes, name)
		}
	}
	walk = func(seq style.Sequence) {
		for _, fragment := range seq {
			switch f := fragment.(type) {
			case style.ClassName:
				for _, name := range strings.Split(string(f), " ") {
					if name != "" {
						token(name)
					}
				}
			case style.Sequence:
				walk(f)
			case style.Props:
				parts.objects = append(parts.objects, f)
			}
		}
	}

	walk(fragments)
	return parts
}

// Styles merges args into a class string: static class tokens first, then
// the identifier the literal props resolve to.
//
//	e.Styles(ctx, "foo", style.Props{"color": "white"}) // "foo css-0"
func (e *Engine) Styles(ctx context.Context, args ...any) string {
	parts := e.extractStyleParts(style.ClassifyAll(args...))

	classes := parts.classes
	if len(parts.objects) > 0 {
		if id := e.resolve(ctx, parts.objects); id != "" {
			classes = append(classes, id)
		}
	}
	return strings.Join(classes, " ")
}
