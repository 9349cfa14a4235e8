package style

import (
	"iter"
	"sort"
	"strconv"
	"strings"
)

// RuleSet is an insertion-ordered mapping from property name to value.
//
// Overwriting an existing property updates the value in place; its position
// is the first time it was set. The zero value is not usable; use NewRuleSet.
type RuleSet struct {
	keys   []string
	values map[string]any
}

// NewRuleSet creates an empty RuleSet.
func NewRuleSet() *RuleSet {
	return &RuleSet{values: make(map[string]any)}
}

// RuleSetOf builds a RuleSet from alternating name/value pairs.
// A trailing name without a value is ignored.
func RuleSetOf(pairs ...any) *RuleSet {
	r := NewRuleSet()
	for i := 0; i+1 < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			continue
		}
		r.Set(name, pairs[i+1])
	}
	return r
}

// Set assigns value to name.
func (r *RuleSet) Set(name string, value any) {
	if _, ok := r.values[name]; !ok {
		r.keys = append(r.keys, name)
	}
	r.values[name] = value
}

// Get returns the value for name.
func (r *RuleSet) Get(name string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.values[name]
	return v, ok
}

// Delete removes name and its position.
func (r *RuleSet) Delete(name string) {
	if _, ok := r.values[name]; !ok {
		return
	}
	delete(r.values, name)
	for i, k := range r.keys {
		if k == name {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of properties. A nil RuleSet is empty.
func (r *RuleSet) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Keys returns the property names in insertion order.
func (r *RuleSet) Keys() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// All iterates properties in insertion order.
func (r *RuleSet) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if r == nil {
			return
		}
		for _, k := range r.keys {
			if !yield(k, r.values[k]) {
				return
			}
		}
	}
}

// Map returns a copy of the properties as a plain map.
func (r *RuleSet) Map() map[string]any {
	out := make(map[string]any, r.Len())
	for k, v := range r.All() {
		out[k] = v
	}
	return out
}

// Clone returns an independent copy.
func (r *RuleSet) Clone() *RuleSet {
	c := NewRuleSet()
	for k, v := range r.All() {
		c.Set(k, v)
	}
	return c
}

// CanonicalKey derives the deduplication key for the rule set.
//
// Properties with nil values are skipped. Pairs are emitted in sorted name
// order as name:"value"; with the value quoted, so the key depends only on
// the final name/value set and separators inside values cannot collide. It
// returns false when there is nothing to register.
func (r *RuleSet) CanonicalKey() (string, bool) {
	if r.Len() == 0 {
		return "", false
	}

	names := make([]string, 0, len(r.keys))
	for _, k := range r.keys {
		if r.values[k] != nil {
			names = append(names, k)
		}
	}
	if len(names) == 0 {
		return "", false
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(strconv.Quote(FormatValue(r.values[name])))
		b.WriteByte(';')
	}
	return b.String(), true
}

// Declarations renders the rule set as kebab-case declarations in insertion
// order, e.g. "background-color:red;color:white;".
func (r *RuleSet) Declarations() string {
	var b strings.Builder
	for k, v := range r.All() {
		if v == nil {
			continue
		}
		b.WriteString(Kebab(k))
		b.WriteByte(':')
		b.WriteString(declarationValue(v))
		b.WriteByte(';')
	}
	return b.String()
}

var declarationReplacer = strings.NewReplacer(`"`, "", ",", ";")

func declarationValue(v any) string {
	return declarationReplacer.Replace(FormatValue(v))
}
