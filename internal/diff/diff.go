// Package diff computes the structural difference between two merged
// configuration trees. Sequences compare order-insensitively: named
// elements pair by their `name` field, unnamed elements by structural
// equality, so pure reordering produces no changes.
package diff

import (
	"fmt"
	"sort"

	"github.com/thoreinstein/cfgctl/internal/configtree"
)

// Op classifies one difference.
type Op string

const (
	// OpModified marks a value change at a path present in both trees.
	OpModified Op = "modified"
	// OpAdded marks an item present only in the right tree.
	OpAdded Op = "added"
	// OpRemoved marks an item present only in the left tree.
	OpRemoved Op = "removed"
)

// Change is one difference between the left and right tree.
type Change struct {
	Op   Op     `json:"op"`
	Path string `json:"path"`
	Old  any    `json:"old,omitempty"`
	New  any    `json:"new,omitempty"`
}

// Compare returns the differences between the left and right trees.
// An empty slice means the trees are structurally equal. Output order
// is deterministic (lexical by key, sequence order within lists).
func Compare(left, right configtree.Tree) []Change {
	var out []Change
	compareMapping("", left, right, &out)
	return out
}

func compareMapping(path string, left, right configtree.Tree, out *[]Change) {
	for _, key := range sortedKeys(left) {
		childPath := joinKey(path, key)
		rv, exists := right[key]
		if !exists {
			*out = append(*out, Change{Op: OpRemoved, Path: childPath, Old: left[key]})
			continue
		}
		compareValue(childPath, left[key], rv, out)
	}

	for _, key := range sortedKeys(right) {
		if _, exists := left[key]; !exists {
			*out = append(*out, Change{Op: OpAdded, Path: joinKey(path, key), New: right[key]})
		}
	}
}

func compareValue(path string, left, right any, out *[]Change) {
	if lm, ok := configtree.Mapping(left); ok {
		if rm, ok := configtree.Mapping(right); ok {
			compareMapping(path, lm, rm, out)
			return
		}
	}

	if ls, ok := left.([]any); ok {
		if rs, ok := right.([]any); ok {
			compareSequence(path, ls, rs, out)
			return
		}
	}

	if !configtree.Equal(left, right) {
		*out = append(*out, Change{Op: OpModified, Path: path, Old: left, New: right})
	}
}

func compareSequence(path string, left, right []any, out *[]Change) {
	rightMatched := make([]bool, len(right))

	for i, lv := range left {
		if name, ok := name(lv); ok {
			j := findNamed(right, name)
			if j >= 0 {
				rightMatched[j] = true
				lm, _ := configtree.Mapping(lv)
				rm, _ := configtree.Mapping(right[j])
				compareMapping(fmt.Sprintf("%s[%s]", path, name), lm, rm, out)
				continue
			}
			*out = append(*out, Change{Op: OpRemoved, Path: fmt.Sprintf("%s[%s]", path, name), Old: lv})
			continue
		}

		if j := findEqual(right, lv); j >= 0 {
			rightMatched[j] = true
			continue
		}
		*out = append(*out, Change{Op: OpRemoved, Path: fmt.Sprintf("%s[%d]", path, i), Old: lv})
	}

	for j, rv := range right {
		if rightMatched[j] {
			continue
		}
		if n, ok := name(rv); ok {
			if findNamed(left, n) >= 0 {
				continue // already compared above
			}
			*out = append(*out, Change{Op: OpAdded, Path: fmt.Sprintf("%s[%s]", path, n), New: rv})
			continue
		}
		if findEqual(left, rv) < 0 {
			*out = append(*out, Change{Op: OpAdded, Path: fmt.Sprintf("%s[%d]", path, j), New: rv})
		}
	}
}

func name(v any) (string, bool) {
	m, ok := configtree.Mapping(v)
	if !ok {
		return "", false
	}
	n, ok := m["name"].(string)
	return n, ok
}

func findNamed(seq []any, want string) int {
	for i, v := range seq {
		if n, ok := name(v); ok && n == want {
			return i
		}
	}
	return -1
}

func findEqual(seq []any, want any) int {
	for i, v := range seq {
		if configtree.Equal(v, want) {
			return i
		}
	}
	return -1
}

func sortedKeys(t configtree.Tree) []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func joinKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
