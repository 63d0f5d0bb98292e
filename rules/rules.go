// Package rules provides ready-made chain validators for common constraints.
// Each helper returns a modelv.Validator that can be registered with
// Model.AddValidator after type validation has produced canonical values
// (string, int64, float64, []any, map[any]struct{}).
package rules

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	modelv "github.com/modelv-go/modelv"
	"github.com/modelv-go/modelv/i18n"
)

func issue(key, code, hint string) error {
	return &modelv.ValidationError{Key: key, Code: code, Message: i18n.T(code, nil), Hint: hint}
}

// length reports the element count of strings, lists, sets and maps.
func length(v any) (int, bool) {
	switch t := v.(type) {
	case string:
		return len(t), true
	case []any:
		return len(t), true
	case map[any]struct{}:
		return len(t), true
	case map[any]any:
		return len(t), true
	case map[string]any:
		return len(t), true
	}
	return 0, false
}

// numeric converts canonical coerced numbers for comparison.
func numeric(v any) (float64, bool) {
	switch t := v.(type) {
	case int64:
		return float64(t), true
	case float64:
		return t, true
	case int:
		return float64(t), true
	}
	return 0, false
}

// NonEmpty rejects empty strings and empty collections.
func NonEmpty() modelv.Validator {
	return func(ctx context.Context, v any, key string) (any, error) {
		if n, ok := length(v); ok && n == 0 {
			return nil, issue(key, modelv.CodeTooShort, "must not be empty")
		}
		return v, nil
	}
}

// MinLen enforces a minimum element count on strings and collections.
func MinLen(min int) modelv.Validator {
	return func(ctx context.Context, v any, key string) (any, error) {
		n, ok := length(v)
		if !ok {
			return nil, issue(key, modelv.CodeTooShort, fmt.Sprintf("%T has no length", v))
		}
		if n < min {
			return nil, issue(key, modelv.CodeTooShort, fmt.Sprintf("len %d < %d", n, min))
		}
		return v, nil
	}
}

// MaxLen enforces a maximum element count on strings and collections.
func MaxLen(max int) modelv.Validator {
	return func(ctx context.Context, v any, key string) (any, error) {
		n, ok := length(v)
		if !ok {
			return nil, issue(key, modelv.CodeTooLong, fmt.Sprintf("%T has no length", v))
		}
		if n > max {
			return nil, issue(key, modelv.CodeTooLong, fmt.Sprintf("len %d > %d", n, max))
		}
		return v, nil
	}
}

// Min enforces a numeric lower bound (inclusive).
func Min(min float64) modelv.Validator {
	return func(ctx context.Context, v any, key string) (any, error) {
		f, ok := numeric(v)
		if !ok {
			return nil, issue(key, modelv.CodeTooSmall, fmt.Sprintf("%T is not numeric", v))
		}
		if f < min {
			return nil, issue(key, modelv.CodeTooSmall, fmt.Sprintf("%v < %v", f, min))
		}
		return v, nil
	}
}

// Max enforces a numeric upper bound (inclusive).
func Max(max float64) modelv.Validator {
	return func(ctx context.Context, v any, key string) (any, error) {
		f, ok := numeric(v)
		if !ok {
			return nil, issue(key, modelv.CodeTooBig, fmt.Sprintf("%T is not numeric", v))
		}
		if f > max {
			return nil, issue(key, modelv.CodeTooBig, fmt.Sprintf("%v > %v", f, max))
		}
		return v, nil
	}
}

// OneOf rejects values outside the allowed set.
func OneOf(allowed ...any) modelv.Validator {
	return func(ctx context.Context, v any, key string) (any, error) {
		for _, a := range allowed {
			if reflect.DeepEqual(v, a) {
				return v, nil
			}
		}
		return nil, issue(key, modelv.CodeInvalidEnum, fmt.Sprintf("got %v", v))
	}
}

// Matches enforces a regular expression on string values.
func Matches(re *regexp.Regexp) modelv.Validator {
	return func(ctx context.Context, v any, key string) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, issue(key, modelv.CodePattern, fmt.Sprintf("%T is not a string", v))
		}
		if !re.MatchString(s) {
			return nil, issue(key, modelv.CodePattern, re.String())
		}
		return v, nil
	}
}

// Trim is a transform: it strips surrounding whitespace from string values
// and passes everything else through.
func Trim() modelv.Validator {
	return func(ctx context.Context, v any, key string) (any, error) {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s), nil
		}
		return v, nil
	}
}

// Lower is a transform: it lower-cases string values and passes everything
// else through.
func Lower() modelv.Validator {
	return func(ctx context.Context, v any, key string) (any, error) {
		if s, ok := v.(string); ok {
			return strings.ToLower(s), nil
		}
		return v, nil
	}
}
