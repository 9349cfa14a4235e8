package cache

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/jonwraymond/styleops/style"
)

// Keyer derives cache keys from resolved rule sets.
//
// Contract:
// - Determinism: equal rules must produce the same key regardless of the
// order properties were set in.
// - Concurrency: implementations must be safe for concurrent use.
type Keyer interface {
	Key(rules *style.RuleSet) (string, error)
}

// DefaultKeyer hashes canonical JSON with xxhash.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a new default keyer.
func NewDefaultKeyer() *DefaultKeyer {
	return &DefaultKeyer{}
}

// Key generates a deterministic cache key.
// Format: native:<16 hex chars of xxhash64(canonical JSON(rules))>
func (k *DefaultKeyer) Key(rules *style.RuleSet) (string, error) {
	if rules.Len() == 0 {
		return "", fmt.Errorf("%w: empty rule set", ErrInvalidKey)
	}

	canonical, err := canonicalize(rules.Map())
	if err != nil {
		return "", fmt.Errorf("cache: failed to canonicalize rules: %w", err)
	}

	return fmt.Sprintf("native:%016x", xxhash.Sum64(canonical)), nil
}

// canonicalize produces a deterministic JSON representation of v.
// Maps are sorted by key at every depth.
func canonicalize(v any) ([]byte, error) {
	switch val := v.(type) {
	case nil:
		return []byte("null"), nil
	case map[string]any:
		return canonicalizeMap(val)
	case style.Props:
		return canonicalizeMap(val)
	case []any:
		return canonicalizeSlice(val)
	case []style.Props:
		items := make([]any, len(val))
		for i, p := range val {
			items[i] = p
		}
		return canonicalizeSlice(items)
	default:
		return json.Marshal(v)
	}
}

func canonicalizeMap(m map[string]any) ([]byte, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := []byte("{")
	for i, k := range keys {
		if i > 0 {
			result = append(result, ',')
		}

		keyBytes, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		result = append(result, keyBytes...)
		result = append(result, ':')

		valBytes, err := canonicalize(m[k])
		if err != nil {
			return nil, err
		}
		result = append(result, valBytes...)
	}
	result = append(result, '}')

	return result, nil
}

func canonicalizeSlice(s []any) ([]byte, error) {
	result := []byte("[")
	for i, v := range s {
		if i > 0 {
			result = append(result, ',')
		}

		valBytes, err := canonicalize(v)
		if err != nil {
			return nil, err
		}
		result = append(result, valBytes...)
	}
	result = append(result, ']')

	return result, nil
}

var _ Keyer = (*DefaultKeyer)(nil)
