package search

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/poiesic/rinkside/core"
)

// GetField resolves a dot-separated path such as "owner.name" inside record.
// Each step must land on an associative value (or a list, indexed by a
// decimal key). A missing key, a non-associative intermediate value, an empty
// path or a falsy result all yield "".
func GetField(record map[string]any, path string) any {
	if record == nil || path == "" {
		return ""
	}

	var current any = record
	for _, key := range strings.Split(path, ".") {
		next, ok := lookup(current, key)
		if !ok {
			return ""
		}
		current = next
	}

	if isFalsy(current) {
		return ""
	}
	return current
}

func lookup(v any, key string) (any, bool) {
	switch m := v.(type) {
	case map[string]any:
		next, ok := m[key]
		return next, ok
	case core.Record:
		next, ok := m[key]
		return next, ok
	case map[string]string:
		next, ok := m[key]
		return next, ok
	case nil:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		next := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !next.IsValid() {
			return nil, false
		}
		return next.Interface(), true
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	default:
		return nil, false
	}
}

func isFalsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case json.Number:
		f, err := x.Float64()
		return err == nil && (f == 0 || math.IsNaN(f))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0 || math.IsNaN(rv.Float())
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Text renders a field value as searchable text. Strings pass through,
// numbers use their shortest decimal form, bools become "true"/"false" and
// fmt.Stringer values use String. Nested maps and collections render as ""
// so they never produce accidental matches.
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		return x.String()
	case fmt.Stringer:
		return x.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	default:
		return ""
	}
}

// isScalar reports whether v takes part in default (all fields) matching:
// text and numbers only.
func isScalar(v any) bool {
	switch v.(type) {
	case string, json.Number:
		return true
	case nil, bool:
		return false
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
