package configtree

// Merge combines an environment override tree with a base tree, the
// override taking precedence. The result is always a fresh tree: neither
// input is mutated, and no sub-tree is shared with either input.
//
// Per key present in the override:
//   - Mappings merge recursively into the corresponding base mapping,
//     which is created empty when absent.
//   - Sequences reconcile element-wise: a mapping element carrying a
//     `name` field merges into the base element with the same name, or is
//     appended when no such element exists. Any other element is appended
//     only if the base sequence holds no structurally equal element
//     (set semantics, see Equal).
//   - Scalars and nulls overwrite the base value unconditionally.
//
// Keys absent from the override are left untouched. Merging with either
// side empty yields a deep copy of the other side.
func Merge(override, base Tree) Tree {
	out := base.Copy()
	mergeInto(override, out)
	return out
}

// mergeInto applies override onto dst in place. dst must be owned by the
// caller; values taken from override are deep-copied before insertion.
func mergeInto(override, dst Tree) {
	for key, value := range override {
		if m, ok := Mapping(value); ok {
			node, ok := Mapping(dst[key])
			if !ok {
				node = Tree{}
			}
			mergeInto(m, node)
			dst[key] = node
			continue
		}

		if seq, ok := value.([]any); ok {
			existing, _ := dst[key].([]any)
			dst[key] = mergeSequence(seq, existing)
			continue
		}

		dst[key] = value
	}
}

// mergeSequence reconciles an override sequence against a base sequence
// already owned by the destination tree.
func mergeSequence(override, base []any) []any {
	out := base
	for _, item := range override {
		name, named := itemName(item)
		if named {
			idx := findNamed(out, name)
			if idx >= 0 {
				target, _ := Mapping(out[idx])
				src, _ := Mapping(item)
				mergeInto(src, target)
				out[idx] = target
				continue
			}
			out = append(out, copyValue(item))
			continue
		}

		if !containsEqual(out, item) {
			out = append(out, copyValue(item))
		}
	}
	return out
}

func findNamed(seq []any, name string) int {
	for i, item := range seq {
		if n, ok := itemName(item); ok && n == name {
			return i
		}
	}
	return -1
}

func containsEqual(seq []any, v any) bool {
	for _, item := range seq {
		if Equal(item, v) {
			return true
		}
	}
	return false
}
