package services

import (
	"encoding/json"
	"math"
	"reflect"
	"regexp"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

// mergePatch overlays the non-null keys of patch onto current and decodes the
// result into out, which must point at a zero value. Keys replace whole
// values; nested objects and arrays are not merged. Scalars are coerced
// leniently so "43.5" becomes 43.5 and unparseable input becomes zero.
func mergePatch(current interface{}, patch map[string]interface{}, out interface{}) error {
	base := map[string]interface{}{}
	data, err := json.Marshal(current)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, &base); err != nil {
		return err
	}

	for k, v := range patch {
		if v == nil {
			continue
		}
		base[k] = v
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       lenientScalars,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(base)
}

func lenientScalars(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if data == nil {
		return nil, nil
	}

	switch to.Kind() {
	case reflect.Float32, reflect.Float64:
		return toNumber(data), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int64(toNumber(data)), nil
	case reflect.Bool:
		return cast.ToBool(data), nil
	case reflect.String:
		switch from.Kind() {
		case reflect.Map, reflect.Slice, reflect.Array:
			return "", nil
		}
		return cast.ToString(data), nil
	case reflect.Struct, reflect.Map:
		if from.Kind() != reflect.Map && from.Kind() != reflect.Struct {
			return reflect.Zero(to).Interface(), nil
		}
	case reflect.Slice:
		if from.Kind() == reflect.Slice || from.Kind() == reflect.Array {
			break
		}
		// Only plain scalars are lifted into one-element slices
		if from.Kind() == reflect.Map || to.Elem().Kind() == reflect.Struct {
			return reflect.MakeSlice(to, 0, 0).Interface(), nil
		}
	}
	return data, nil
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// toNumber coerces v to a finite float. Strings keep their leading numeric
// prefix ("43.50 UYU" is 43.5). Unparseable and non-finite values become 0.
func toNumber(v interface{}) float64 {
	var f float64
	if s, ok := v.(string); ok {
		f = cast.ToFloat64(leadingNumber.FindString(strings.TrimSpace(s)))
	} else {
		f = cast.ToFloat64(v)
	}
	return finiteOrZero(f)
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// stringField reads a key as a string, or "" when absent.
func stringField(m map[string]interface{}, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	return cast.ToString(v)
}

// without returns a copy of m lacking the given keys.
func without(m map[string]interface{}, keys ...string) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}
