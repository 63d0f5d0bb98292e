package modelv

import (
	"context"
	"fmt"
	"reflect"
)

// ValidateValue validates and coerces a single value against a type
// expression using the built-in coercer registry. The key is threaded through
// for error attribution; nested elements extend it as key[i] or key['k'].
// Custom hooks receive ctx and may block.
func ValidateValue(ctx context.Context, expr TypeExpr, v any, key string) (any, error) {
	return validateExpr(ctx, builtinCoercers, expr, v, key)
}

func validateExpr(ctx context.Context, reg CoercerRegistry, expr TypeExpr, v any, key string) (any, error) {
	switch expr.kind {
	case KindAny:
		return v, nil

	case KindBool, KindString, KindInt, KindFloat, KindTime:
		c, ok := reg[expr.kind]
		if !ok {
			return nil, &SchemaError{Key: key, Message: "no coercer registered for " + expr.kind.String()}
		}
		return c(key, v)

	case KindCustom:
		switch h := expr.hook.(type) {
		case KeyValidatable:
			return h.ValidateKey(ctx, v, key)
		case Validatable:
			return h.Validate(ctx, v)
		}
		return nil, &SchemaError{Key: key, Message: "custom type does not implement KeyValidatable or Validatable"}

	case KindUnion:
		return validateUnion(ctx, reg, expr, v, key)

	case KindList:
		return validateList(ctx, reg, expr, v, key)

	case KindSet:
		return validateSet(ctx, reg, expr, v, key)

	case KindMap:
		return validateMap(ctx, reg, expr, v, key)
	}

	return nil, &SchemaError{Key: key, Message: fmt.Sprintf("unsupported type expression kind %d", int(expr.kind))}
}

func validateUnion(ctx context.Context, reg CoercerRegistry, expr TypeExpr, v any, key string) (any, error) {
	if v == nil && expr.nullable {
		// Fast path: no branch is attempted.
		return nil, nil
	}
	if len(expr.elems) == 0 {
		return nil, &SchemaError{Key: key, Message: "union has no branches"}
	}
	var lastErr error
	for _, branch := range expr.elems {
		out, err := validateExpr(ctx, reg, branch, v, key)
		if err == nil {
			return out, nil
		}
		lastErr = err
	}
	// Declared order decides; only the last branch's error survives.
	return nil, lastErr
}

func validateList(ctx context.Context, reg CoercerRegistry, expr TypeExpr, v any, key string) (any, error) {
	seq, ok := v.([]any)
	if !ok {
		set, isSet := v.(map[any]struct{})
		if !isSet {
			return nil, newTypeError(key, v, "list")
		}
		// Close enough to safely convert.
		seq = make([]any, 0, len(set))
		for e := range set {
			seq = append(seq, e)
		}
	}
	elem := expr.elems[0]
	for i := range seq {
		out, err := validateExpr(ctx, reg, elem, seq[i], fmt.Sprintf("%s[%d]", key, i))
		if err != nil {
			return nil, err
		}
		seq[i] = out
	}
	return seq, nil
}

func validateSet(ctx context.Context, reg CoercerRegistry, expr TypeExpr, v any, key string) (any, error) {
	var seq []any
	switch t := v.(type) {
	case map[any]struct{}:
		seq = make([]any, 0, len(t))
		for e := range t {
			seq = append(seq, e)
		}
	case []any:
		seq = t
	default:
		return nil, newTypeError(key, v, "set or list")
	}
	elem := expr.elems[0]
	out := make(map[any]struct{}, len(seq))
	for i, e := range seq {
		cv, err := validateExpr(ctx, reg, elem, e, fmt.Sprintf("%s[%d]", key, i))
		if err != nil {
			return nil, err
		}
		if !isHashable(cv) {
			return nil, &SchemaError{Key: key, Message: fmt.Sprintf("set element type %T is not hashable", cv)}
		}
		out[cv] = struct{}{}
	}
	return out, nil
}

func validateMap(ctx context.Context, reg CoercerRegistry, expr TypeExpr, v any, key string) (any, error) {
	if len(expr.elems) != 2 {
		return nil, &SchemaError{Key: key, Message: fmt.Sprintf("map expression needs exactly key and value types, got %d", len(expr.elems))}
	}
	keyType, valueType := expr.elems[0], expr.elems[1]

	var mm map[any]any
	switch t := v.(type) {
	case map[any]any:
		mm = t
	case map[string]any:
		// Wire-format maps are keyed by string; rebuild so key coercion can
		// change the key type.
		mm = make(map[any]any, len(t))
		for k, vv := range t {
			mm[k] = vv
		}
	default:
		return nil, newTypeError(key, v, "map")
	}

	// Snapshot the key list: key re-coercion mutates mm while we walk it.
	keys := make([]any, 0, len(mm))
	for k := range mm {
		keys = append(keys, k)
	}
	for _, mk := range keys {
		childKey := fmt.Sprintf("%s['%v']", key, mk)
		mv, err := validateExpr(ctx, reg, valueType, mm[mk], childKey)
		if err != nil {
			return nil, err
		}
		nk, err := validateExpr(ctx, reg, keyType, mk, childKey)
		if err != nil {
			return nil, err
		}
		if !isHashable(nk) {
			return nil, &SchemaError{Key: key, Message: fmt.Sprintf("map key type %T is not hashable", nk)}
		}
		if nk != mk {
			delete(mm, mk)
		}
		mm[nk] = mv
	}
	return mm, nil
}

func isHashable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.TypeOf(v).Comparable()
}
