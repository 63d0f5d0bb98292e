package modelv

// The built-in coercers validate in a "type-like" way. They are careful never
// to let garbage in, while still accepting values that are very likely to be
// correct with a minor change ("true" instead of true, "1" for an int). They
// never make a best guess when the guess risks corrupting data.

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Coercer converts an input value to its canonical target type or fails with
// a ValidationError naming the offending key. Coercers are pure and must be
// idempotent on their own output type.
type Coercer func(key string, v any) (any, error)

// CoercerRegistry maps primitive kinds to their coercion functions.
type CoercerRegistry map[Kind]Coercer

// builtinCoercers is process-wide read-only configuration, built once and
// passed by reference into the type-expression validator.
var builtinCoercers = CoercerRegistry{
	KindBool:   coerceBool,
	KindString: coerceString,
	KindInt:    coerceInt,
	KindFloat:  coerceFloat,
	KindTime:   coerceTime,
}

// Coercers returns the built-in registry. Callers must treat it as read-only.
func Coercers() CoercerRegistry { return builtinCoercers }

var (
	truthyWords = map[string]struct{}{"yes": {}, "true": {}, "y": {}, "t": {}}
	falsyWords  = map[string]struct{}{"no": {}, "false": {}, "n": {}, "f": {}}
)

func coerceBool(key string, v any) (any, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		l := strings.ToLower(t)
		if _, ok := truthyWords[l]; ok {
			return true, nil
		}
		if _, ok := falsyWords[l]; ok {
			return false, nil
		}
	}
	return nil, newTypeError(key, v, "bool")
}

func coerceString(key string, v any) (any, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case bool:
		if t {
			return "true", nil
		}
		return "false", nil
	case json.Number:
		return t.String(), nil
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(t).Int(), 10), nil
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(t).Uint(), 10), nil
	case float32, float64:
		return strconv.FormatFloat(reflect.ValueOf(t).Float(), 'g', -1, 64), nil
	}
	return nil, newTypeError(key, v, "string")
}

func coerceInt(key string, v any) (any, error) {
	switch t := v.(type) {
	case int, int8, int16, int32, int64:
		return reflect.ValueOf(t).Int(), nil
	case uint, uint8, uint16, uint32:
		return int64(reflect.ValueOf(t).Uint()), nil
	case uint64:
		if t <= math.MaxInt64 {
			return int64(t), nil
		}
	case json.Number:
		// Integral JSON numbers only; "1.5" keeps its number-ness but is not
		// int compatible.
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
	case string:
		if i, err := strconv.ParseInt(t, 10, 64); err == nil {
			return i, nil
		}
	}
	return nil, newTypeError(key, v, "int")
}

func coerceFloat(key string, v any) (any, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case json.Number:
		if f, err := strconv.ParseFloat(t.String(), 64); err == nil {
			return f, nil
		}
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f, nil
		}
	}
	// Go ints do not satisfy float.
	return nil, newTypeError(key, v, "float")
}

func coerceTime(key string, v any) (any, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case int, int8, int16, int32, int64:
		return time.Unix(reflect.ValueOf(t).Int(), 0), nil
	case uint, uint8, uint16, uint32, uint64:
		u := reflect.ValueOf(t).Uint()
		if u <= math.MaxInt64 {
			return time.Unix(int64(u), 0), nil
		}
	case float32, float64:
		return epochFloatTime(reflect.ValueOf(t).Float()), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return time.Unix(i, 0), nil
		}
		if f, err := strconv.ParseFloat(t.String(), 64); err == nil {
			return epochFloatTime(f), nil
		}
	case string:
		if i, err := strconv.ParseInt(t, 10, 64); err == nil {
			return time.Unix(i, 0), nil
		}
		if ts, err := parseTimeString(t); err == nil {
			return ts, nil
		}
	}
	return nil, newTypeError(key, v, "time")
}

func epochFloatTime(f float64) time.Time {
	sec := int64(f)
	nsec := int64((f - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}

// timeLayouts are tried in order for non-epoch strings, strictest first.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimeString(s string) (time.Time, error) {
	var err error
	for _, layout := range timeLayouts {
		var ts time.Time
		if ts, err = time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, err
}
