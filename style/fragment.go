package style

import "sort"

// Reserved property names.
const (
	// SelectorsKey holds nested selector rules. It is never a leaf property.
	SelectorsKey = "selectors"

	// DisplayNameKey carries the identifier prefix hint for a registration.
	DisplayNameKey = "displayName"
)

// Fragment is one unit of style input.
//
// The variant is closed: Props, ClassName and Sequence are the only
// implementations. A nil Fragment is the falsy value and is ignored.
type Fragment interface {
	isFragment()
}

// Props is a literal style-property mapping.
type Props map[string]any

// ClassName is a previously issued identifier or a static class token.
type ClassName string

// Sequence is an ordered list of fragments.
type Sequence []Fragment

func (Props) isFragment()     {}
func (ClassName) isFragment() {}
func (Sequence) isFragment()  {}

// Keys returns the property names in sorted order.
func (p Props) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Classify converts loosely typed style input into a Fragment.
// Falsy input (nil, bools, empty strings, nil maps) and unsupported types
// classify to nil.
func Classify(v any) Fragment {
	switch val := v.(type) {
	case nil:
		return nil
	case bool:
		return nil
	case Fragment:
		return normalize(val)
	case string:
		if val == "" {
			return nil
		}
		return ClassName(val)
	case map[string]any:
		if val == nil {
			return nil
		}
		return Props(val)
	case []any:
		return classifySlice(len(val), func(i int) any { return val[i] })
	case []string:
		return classifySlice(len(val), func(i int) any { return val[i] })
	case []Props:
		return classifySlice(len(val), func(i int) any { return val[i] })
	case []map[string]any:
		return classifySlice(len(val), func(i int) any { return val[i] })
	case []Fragment:
		return classifySlice(len(val), func(i int) any { return val[i] })
	default:
		return nil
	}
}

// ClassifyAll classifies each argument, dropping the falsy ones.
func ClassifyAll(args ...any) Sequence {
	seq := make(Sequence, 0, len(args))
	for _, arg := range args {
		if f := Classify(arg); f != nil {
			seq = append(seq, f)
		}
	}
	return seq
}

// normalize maps typed-but-falsy fragments to nil.
func normalize(f Fragment) Fragment {
	switch val := f.(type) {
	case Props:
		if val == nil {
			return nil
		}
	case ClassName:
		if val == "" {
			return nil
		}
	case Sequence:
		if val == nil {
			return nil
		}
		return classifySlice(len(val), func(i int) any { return val[i] })
	}
	return f
}

func classifySlice(n int, at func(int) any) Fragment {
	seq := make(Sequence, 0, n)
	for i := 0; i < n; i++ {
		if f := Classify(at(i)); f != nil {
			seq = append(seq, f)
		}
	}
	return seq
}
