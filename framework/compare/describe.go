package compare

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

const maxDescribedBytes = 16

// Describe renders a value the way failure messages show it. Strings are quoted, nil is
// "<null>", times use RFC 3339, byte slices show their length and a hex prefix, slices and maps
// are rendered element by element, and anything else uses its String method or fmt's "%+v".
func Describe(value interface{}) string {
	if isNil(value) {
		return "<null>"
	}
	switch v := value.(type) {
	case string:
		return strconv.Quote(v)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case json.RawMessage:
		return string(v)
	case []byte:
		return describeBytes(v)
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts = append(parts, Describe(rv.Index(i).Interface()))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Map:
		parts := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			parts = append(parts, Describe(iter.Key().Interface())+": "+Describe(iter.Value().Interface()))
		}
		sort.Strings(parts)
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return fmt.Sprintf("%+v", value)
}

func describeBytes(data []byte) string {
	if len(data) <= maxDescribedBytes {
		return fmt.Sprintf("%d bytes (%x)", len(data), data)
	}
	return fmt.Sprintf("%d bytes (%x...)", len(data), data[:maxDescribedBytes])
}

// typeName returns a readable name for the static type T, including interface types.
func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func formatPointer(p uintptr) string {
	return "0x" + strconv.FormatUint(uint64(p), 16)
}
