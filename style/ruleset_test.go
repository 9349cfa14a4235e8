package style

import (
	"reflect"
	"testing"
)

func TestRuleSet_OverwriteKeepsPosition(t *testing.T) {
	r := NewRuleSet()
	r.Set("backgroundColor", "red")
	r.Set("color", "black")
	r.Set("backgroundColor", "green")

	want := []string{"backgroundColor", "color"}
	if got := r.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if v, _ := r.Get("backgroundColor"); v != "green" {
		t.Errorf("backgroundColor = %v, want green", v)
	}
}

func TestRuleSet_Delete(t *testing.T) {
	r := RuleSetOf("displayName", "root", "color", "red")
	r.Delete("displayName")
	r.Delete("missing")

	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
	if _, ok := r.Get("displayName"); ok {
		t.Error("displayName should be deleted")
	}
}

func TestRuleSet_NilIsEmpty(t *testing.T) {
	var r *RuleSet
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
	if _, ok := r.CanonicalKey(); ok {
		t.Error("nil rule set should have no key")
	}
	if r.Keys() != nil {
		t.Error("nil rule set should have nil keys")
	}
}

func TestRuleSet_CloneIsIndependent(t *testing.T) {
	r := RuleSetOf("color", "red")
	c := r.Clone()
	c.Set("color", "blue")

	if v, _ := r.Get("color"); v != "red" {
		t.Errorf("original mutated: color = %v", v)
	}
}

func TestCanonicalKey_IndependentOfConstructionOrder(t *testing.T) {
	a := RuleSetOf("backgroundColor", "red", "color", "white")
	b := RuleSetOf("color", "white", "backgroundColor", "red")

	ka, ok := a.CanonicalKey()
	if !ok {
		t.Fatal("expected key")
	}
	kb, _ := b.CanonicalKey()
	if ka != kb {
		t.Errorf("keys differ:\n  a=%s\n  b=%s", ka, kb)
	}
}

func TestCanonicalKey_DiffersByValue(t *testing.T) {
	a, _ := RuleSetOf("color", "white").CanonicalKey()
	b, _ := RuleSetOf("color", "black").CanonicalKey()
	if a == b {
		t.Errorf("expected different keys, both %q", a)
	}
}

func TestCanonicalKey_SkipsNilValues(t *testing.T) {
	if _, ok := RuleSetOf("fontFamily", nil).CanonicalKey(); ok {
		t.Error("rule set with only nil values should have no key")
	}

	a, _ := RuleSetOf("color", "red", "fontFamily", nil).CanonicalKey()
	b, _ := RuleSetOf("color", "red").CanonicalKey()
	if a != b {
		t.Errorf("nil values should not affect key: %q vs %q", a, b)
	}
}

func TestDeclarations(t *testing.T) {
	tests := []struct {
		name  string
		rules *RuleSet
		want  string
	}{
		{
			name:  "insertion order and kebab case",
			rules: RuleSetOf("marginTop", 4, "marginRight", 8, "backgroundColor", "red"),
			want:  "margin-top:4;margin-right:8;background-color:red;",
		},
		{
			name:  "float values",
			rules: RuleSetOf("opacity", 0.5),
			want:  "opacity:0.5;",
		},
		{
			name:  "list separators become semicolons",
			rules: RuleSetOf("transform", []any{map[string]any{"scale": 2}}),
			want:  "transform:[{scale:2}];",
		},
		{
			name:  "empty",
			rules: NewRuleSet(),
			want:  "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rules.Declarations(); got != tc.want {
				t.Errorf("Declarations() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestKebab(t *testing.T) {
	tests := map[string]string{
		"color":                  "color",
		"backgroundColor":        "background-color",
		"borderBottomLeftRadius": "border-bottom-left-radius",
	}
	for in, want := range tests {
		if got := Kebab(in); got != want {
			t.Errorf("Kebab(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"red", "red"},
		{4, "4"},
		{int64(12), "12"},
		{1.5, "1.5"},
		{float64(10), "10"},
		{true, "true"},
		{nil, ""},
		{[]any{"a", 1}, `["a",1]`},
	}
	for _, tc := range tests {
		if got := FormatValue(tc.in); got != tc.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCanonicalKey_SeparatorsInValues(t *testing.T) {
	packed, _ := RuleSetOf("color", "red;fontSize:12").CanonicalKey()
	split, _ := RuleSetOf("color", "red", "fontSize", 12).CanonicalKey()

	if packed == split {
		t.Errorf("distinct rule sets share key %q", packed)
	}
	if want := `color:"red";fontSize:"12";`; split != want {
		t.Errorf("CanonicalKey() = %q, want %q", split, want)
	}
}
