// Package configtree implements the layered-configuration tree model:
// deep copy, canonical structural equality, and the deep-merge algorithm
// with name-keyed list reconciliation.
package configtree

// Tree is one configuration document decoded from YAML, JSON, or TOML.
// Values are nested Tree mappings, []any sequences, or scalars
// (string, bool, numeric types, nil).
type Tree map[string]any

// nameKey is the distinguished mapping key used as merge identity
// for list elements.
const nameKey = "name"

// Copy returns a deep copy of the tree. Mutating the copy never
// affects the original, and vice versa.
func (t Tree) Copy() Tree {
	if t == nil {
		return Tree{}
	}
	out := make(Tree, len(t))
	for k, v := range t {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch v := v.(type) {
	case Tree:
		return v.Copy()
	case map[string]any:
		return Tree(v).Copy()
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = copyValue(item)
		}
		return out
	default:
		// Scalars are immutable; share as-is.
		return v
	}
}

// Mapping converts a value to a Tree if it is a mapping.
func Mapping(v any) (Tree, bool) {
	switch m := v.(type) {
	case Tree:
		return m, true
	case map[string]any:
		return Tree(m), true
	default:
		return nil, false
	}
}

// itemName returns the `name` value of a mapping list element, if the
// element is a mapping and carries a string name.
func itemName(v any) (string, bool) {
	m, ok := Mapping(v)
	if !ok {
		return "", false
	}
	name, ok := m[nameKey].(string)
	return name, ok
}

// Equal reports canonical structural equality between two values.
// Mappings compare by key set and recursive value equality, sequences
// compare positionally, and numbers compare by numeric value so that a
// YAML `1` equals a JSON `1.0`. Values of different kinds are unequal.
func Equal(a, b any) bool {
	if am, ok := Mapping(a); ok {
		bm, ok := Mapping(b)
		if !ok || len(am) != len(bm) {
			return false
		}
		for k, av := range am {
			bv, exists := bm[k]
			if !exists || !Equal(av, bv) {
				return false
			}
		}
		return true
	}

	if as, ok := a.([]any); ok {
		bs, ok := b.([]any)
		if !ok || len(as) != len(bs) {
			return false
		}
		for i := range as {
			if !Equal(as[i], bs[i]) {
				return false
			}
		}
		return true
	}

	if af, ok := Number(a); ok {
		bf, bok := Number(b)
		return bok && af == bf
	}

	return a == b
}

// Number widens any numeric type the YAML, JSON, and TOML decoders
// produce to float64.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// Normalize rewrites every nested mapping to the Tree type so that
// trees from different decoders share one shape. The input is not
// modified; the result is a deep copy.
func Normalize(v any) any {
	switch v := v.(type) {
	case Tree:
		out := make(Tree, len(v))
		for k, val := range v {
			out[k] = Normalize(val)
		}
		return out
	case map[string]any:
		return Normalize(Tree(v))
	case map[any]any:
		out := make(Tree, len(v))
		for k, val := range v {
			key, ok := k.(string)
			if !ok {
				continue
			}
			out[key] = Normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Normalize(item)
		}
		return out
	case []map[string]any:
		// go-toml produces typed slices for arrays of tables.
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Normalize(item)
		}
		return out
	default:
		return v
	}
}
