package merge

import (
	"context"
	"strings"

	"github.com/jonwraymond/styleops/style"
)

// Slot is one named style group of a StyleSet. Style holds any input
// Styles accepts: props, class strings, fragments or slices of them.
type Slot struct {
	Name  string
	Style any
}

// SubComponentStyle styles a nested component. It is either a plain
// *StyleSet or a StyleFunc computed from the component's props.
type SubComponentStyle interface {
	ResolveStyleSet(props any) *StyleSet
}

// StyleFunc computes a StyleSet from component props.
type StyleFunc func(props any) *StyleSet

// ResolveStyleSet calls f.
func (f StyleFunc) ResolveStyleSet(props any) *StyleSet {
	return f(props)
}

// StyleSet is an ordered collection of named slots plus nested
// sub-component styles.
type StyleSet struct {
	Slots              []Slot
	SubComponentStyles map[string]SubComponentStyle
}

// ResolveStyleSet returns s; a plain StyleSet ignores props.
func (s *StyleSet) ResolveStyleSet(any) *StyleSet {
	return s
}

// Style returns the style of the named slot.
func (s *StyleSet) Style(name string) (any, bool) {
	if s == nil {
		return nil, false
	}
	for _, slot := range s.Slots {
		if slot.Name == name {
			return slot.Style, true
		}
	}
	return nil, false
}

// ConcatStyleSets combines sets without resolving anything. Slots are
// unioned in first-seen order and a slot present in several sets collects
// their styles in input order. Nil sets are skipped.
//
// Sub-component styles with the same name are combined too: plain sets are
// concatenated directly, and if any of them is a StyleFunc the result is a
// StyleFunc that evaluates each input with the given props and concatenates
// the outputs.
func ConcatStyleSets(sets ...*StyleSet) *StyleSet {
	merged := &StyleSet{}
	index := make(map[string]int)
	subs := make(map[string][]SubComponentStyle)

	for _, set := range sets {
		if set == nil {
			continue
		}
		for _, slot := range set.Slots {
			i, ok := index[slot.Name]
			if !ok {
				index[slot.Name] = len(merged.Slots)
				merged.Slots = append(merged.Slots, slot)
				continue
			}
			merged.Slots[i].Style = concatStyles(merged.Slots[i].Style, slot.Style)
		}
		for name, sub := range set.SubComponentStyles {
			if sub != nil {
				subs[name] = append(subs[name], sub)
			}
		}
	}

	if len(subs) > 0 {
		merged.SubComponentStyles = make(map[string]SubComponentStyle, len(subs))
		for name, list := range subs {
			merged.SubComponentStyles[name] = concatSubComponent(list)
		}
	}
	return merged
}

// concatStyles appends next to prev, flattening one level of []any.
func concatStyles(prev, next any) any {
	if prev == nil {
		return next
	}
	out := append([]any(nil), asList(prev)...)
	return append(out, asList(next)...)
}

func asList(v any) []any {
	if list, ok := v.([]any); ok {
		return list
	}
	return []any{v}
}

func concatSubComponent(list []SubComponentStyle) SubComponentStyle {
	plain := make([]*StyleSet, 0, len(list))
	for _, sub := range list {
		set, ok := sub.(*StyleSet)
		if !ok {
			return StyleFunc(func(props any) *StyleSet {
				resolved := make([]*StyleSet, 0, len(list))
				for _, sub := range list {
					resolved = append(resolved, sub.ResolveStyleSet(props))
				}
				return ConcatStyleSets(resolved...)
			})
		}
		plain = append(plain, set)
	}
	return ConcatStyleSets(plain...)
}

// ProcessedStyleSet maps each slot to its class string.
type ProcessedStyleSet struct {
	// ClassNames holds the class string of every slot.
	ClassNames map[string]string

	// Slots lists slot names in first-seen order.
	Slots []string

	// SubComponentStyles holds the concatenated sub-component styles.
	// It is never nil.
	SubComponentStyles map[string]SubComponentStyle
}

// ClassName returns the class string of slot, or "".
func (p ProcessedStyleSet) ClassName(slot string) string {
	return p.ClassNames[slot]
}

// StyleSet converts p back into a StyleSet so it can be merged again.
func (p ProcessedStyleSet) StyleSet() *StyleSet {
	set := &StyleSet{SubComponentStyles: p.SubComponentStyles}
	for _, name := range p.Slots {
		set.Slots = append(set.Slots, Slot{Name: name, Style: p.ClassNames[name]})
	}
	return set
}

// StyleSets concatenates sets and resolves every slot to a class string.
// Each slot registers under its own name as display name, in slot order.
func (e *Engine) StyleSets(ctx context.Context, sets ...*StyleSet) ProcessedStyleSet {
	merged := ConcatStyleSets(sets...)

	out := ProcessedStyleSet{
		ClassNames:         make(map[string]string, len(merged.Slots)),
		SubComponentStyles: merged.SubComponentStyles,
	}
	if out.SubComponentStyles == nil {
		out.SubComponentStyles = make(map[string]SubComponentStyle)
	}

	for _, slot := range merged.Slots {
		parts := e.extractStyleParts(style.ClassifyAll(slot.Style))

		fragments := make(style.Sequence, 0, len(parts.objects)+1)
		fragments = append(fragments, style.Props{style.DisplayNameKey: slot.Name})
		fragments = append(fragments, parts.objects...)

		id := e.resolve(ctx, fragments)
		if id == "" {
			continue
		}

		out.ClassNames[slot.Name] = strings.Join(append(parts.classes, id), " ")
		out.Slots = append(out.Slots, slot.Name)
	}
	return out
}
