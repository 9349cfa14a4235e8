package cache

import (
	"errors"
	"regexp"
	"testing"

	"github.com/jonwraymond/styleops/style"
)

var keyPattern = regexp.MustCompile(`^native:[0-9a-f]{16}$`)

func TestKeyer_DeterministicForConstructionOrder(t *testing.T) {
	keyer := NewDefaultKeyer()

	rules1 := style.RuleSetOf("color", "red", "backgroundColor", "blue", "left", 1)
	rules2 := style.RuleSetOf("left", 1, "color", "red", "backgroundColor", "blue")

	key1, err := keyer.Key(rules1)
	if err != nil {
		t.Fatalf("Key() error = %v", err)
	}
	key2, err := keyer.Key(rules2)
	if err != nil {
		t.Fatalf("Key() error = %v", err)
	}

	if key1 != key2 {
		t.Errorf("Keys should be equal for same content:\n  key1=%s\n  key2=%s", key1, key2)
	}
	if !keyPattern.MatchString(key1) {
		t.Errorf("key %q does not match %s", key1, keyPattern)
	}
}

func TestKeyer_NestedValues(t *testing.T) {
	keyer := NewDefaultKeyer()

	a := style.RuleSetOf(
		"shadowOffset", map[string]any{"width": 1, "height": 2},
		"transform", []any{style.Props{"scale": 2}, style.Props{"rotate": "45deg"}},
	)
	b := style.RuleSetOf(
		"transform", []any{style.Props{"scale": 2}, style.Props{"rotate": "45deg"}},
		"shadowOffset", map[string]any{"height": 2, "width": 1},
	)
	reordered := style.RuleSetOf(
		"shadowOffset", map[string]any{"width": 1, "height": 2},
		"transform", []any{style.Props{"rotate": "45deg"}, style.Props{"scale": 2}},
	)

	keyA, _ := keyer.Key(a)
	keyB, _ := keyer.Key(b)
	keyR, _ := keyer.Key(reordered)

	if keyA != keyB {
		t.Errorf("nested maps should be canonicalized: %s != %s", keyA, keyB)
	}
	if keyA == keyR {
		t.Error("list order should change the key")
	}
}

func TestKeyer_DifferentValuesDifferentKeys(t *testing.T) {
	keyer := NewDefaultKeyer()

	tests := []struct {
		name string
		a, b *style.RuleSet
	}{
		{"value", style.RuleSetOf("color", "red"), style.RuleSetOf("color", "blue")},
		{"property", style.RuleSetOf("left", 1), style.RuleSetOf("right", 1)},
		{"type", style.RuleSetOf("zIndex", 1), style.RuleSetOf("zIndex", "1")},
		{"extra property", style.RuleSetOf("left", 1), style.RuleSetOf("left", 1, "top", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ka, _ := keyer.Key(tt.a)
			kb, _ := keyer.Key(tt.b)
			if ka == kb {
				t.Errorf("expected different keys, both %s", ka)
			}
		})
	}
}

func TestKeyer_EmptyRules(t *testing.T) {
	keyer := NewDefaultKeyer()
	for _, rules := range []*style.RuleSet{nil, style.NewRuleSet()} {
		if _, err := keyer.Key(rules); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("expected ErrInvalidKey, got %v", err)
		}
	}
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "null"},
		{"sorted map", map[string]any{"b": 1, "a": "x"}, `{"a":"x","b":1}`},
		{"props", style.Props{"z": true, "m": nil}, `{"m":null,"z":true}`},
		{"slice", []any{2, "a", map[string]any{"k": 1}}, `[2,"a",{"k":1}]`},
		{"props slice", []style.Props{{"b": 1, "a": 2}}, `[{"a":2,"b":1}]`},
		{"scalar", 1.5, "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := canonicalize(tt.in)
			if err != nil {
				t.Fatalf("canonicalize() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("canonicalize() = %s, want %s", got, tt.want)
			}
		})
	}
}
