package query

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// FilterShapeError reports a value inside a JSON-like filter object that
// cannot be flattened into a condition binding.
type FilterShapeError struct {
	Path  string
	Value any
}

func (e *FilterShapeError) Error() string {
	return fmt.Sprintf("filter field %q: unsupported value of type %T", e.Path, e.Value)
}

// Flatten walks a nested key/value structure and calls emit once per leaf
// with the dotted field path, the binding name derived from it (dots
// replaced by underscores, NFC-normalized) and the leaf value. Keys are
// visited in sorted order so output is deterministic.
//
// Supported leaves are nil, bool, string, every integer and float kind,
// json.Number, and []any holding supported leaves. A map[string]any value
// recurses into a dotted path; anything else fails with a
// *FilterShapeError naming the offending path.
func Flatten(filter map[string]any, emit func(path, name string, value any)) error {
	return flatten(nil, filter, emit)
}

func flatten(prefix []string, obj map[string]any, emit func(path, name string, value any)) error {
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		path := make([]string, len(prefix), len(prefix)+1)
		copy(path, prefix)
		path = append(path, key)
		value := obj[key]

		if nested, ok := value.(map[string]any); ok {
			if err := flatten(path, nested, emit); err != nil {
				return err
			}
			continue
		}

		dotted := strings.Join(path, ".")
		if !isBindable(value) {
			return &FilterShapeError{Path: dotted, Value: value}
		}
		emit(dotted, bindName(dotted), value)
	}
	return nil
}

// bindName turns a dotted field path into a placeholder-safe binding name.
func bindName(path string) string {
	return norm.NFC.String(strings.ReplaceAll(path, ".", "_"))
}

func isBindable(value any) bool {
	switch v := value.(type) {
	case nil, bool, string, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	case []any:
		for _, elem := range v {
			if !isBindable(elem) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
