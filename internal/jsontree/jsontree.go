// Package jsontree reads and creates dot-separated paths inside decoded JSON
// values.
//
// Dataset records arrive as untyped map[string]any trees and keep fields the
// toolkit never models. Grouping keys and merged-output insertion points are
// both expressed as dot paths (for example "data.video.claInfo.captionInfos"),
// so the traversal and creation logic lives here once instead of being
// repeated as ad-hoc map indexing at every call site.
package jsontree

import (
	"fmt"
	"strings"
)

// Get walks path through nested map[string]any values and returns the value
// at the final segment. The second return is false when any segment is
// missing or when an intermediate value is not an object.
func Get(root any, path string) (any, bool) {
	current := root
	for _, key := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// GetString returns the value at path rendered as a string. Scalars are
// formatted with their JSON representation (json.Number prints verbatim).
// Returns "" and false when the path is absent or resolves to nil.
func GetString(root any, path string) (string, bool) {
	value, ok := Get(root, path)
	if !ok || value == nil {
		return "", false
	}
	if s, isString := value.(string); isString {
		return s, true
	}
	return fmt.Sprint(value), true
}

// Ensure creates every segment of path as a nested object under root and
// returns the object at the final segment. A segment that already exists but
// is not an object is replaced with an empty one.
func Ensure(root map[string]any, path string) map[string]any {
	current := root
	for _, key := range strings.Split(path, ".") {
		next, ok := current[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[key] = next
		}
		current = next
	}
	return current
}

// Slice returns the value at path as a []any, or nil when the path is absent
// or holds a non-array value.
func Slice(root any, path string) []any {
	value, ok := Get(root, path)
	if !ok {
		return nil
	}
	arr, _ := value.([]any)
	return arr
}
