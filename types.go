package modelv

import (
	"context"
	"strings"
)

// Kind enumerates the shapes a type expression can take.
type Kind int

const (
	KindAny Kind = iota
	KindBool
	KindString
	KindInt
	KindFloat
	KindTime
	KindUnion
	KindList
	KindSet
	KindMap
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindAny:
		return "any"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindTime:
		return "time"
	case KindUnion:
		return "union"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindMap:
		return "map"
	case KindCustom:
		return "custom"
	}
	return "invalid"
}

// TypeExpr is a (possibly recursive) descriptor of an expected value shape.
// Expressions are immutable values built through the constructors below (or
// their dsl re-exports) and shared freely across schemas and goroutines.
type TypeExpr struct {
	kind     Kind
	elems    []TypeExpr // union branches; list/set element; map key+value
	nullable bool       // union optional marker
	hook     any        // custom validation hook
}

// Kind reports the expression's shape.
func (t TypeExpr) Kind() Kind { return t.kind }

// Elems returns a copy of the child expressions (union branches, the list/set
// element, or the map key and value expressions).
func (t TypeExpr) Elems() []TypeExpr {
	out := make([]TypeExpr, len(t.elems))
	copy(out, t.elems)
	return out
}

// IsOptional reports whether the expression accepts an absent/null value,
// i.e. it is a union carrying the optional marker.
func (t TypeExpr) IsOptional() bool { return t.kind == KindUnion && t.nullable }

// Hook returns the custom validation hook for KindCustom expressions.
func (t TypeExpr) Hook() any { return t.hook }

func (t TypeExpr) String() string {
	switch t.kind {
	case KindUnion:
		inner := make([]string, 0, len(t.elems))
		for _, e := range t.elems {
			inner = append(inner, e.String())
		}
		body := strings.Join(inner, ",")
		if t.nullable {
			if len(t.elems) == 1 {
				return "optional[" + body + "]"
			}
			return "optional[union[" + body + "]]"
		}
		return "union[" + body + "]"
	case KindList:
		return "list[" + t.elems[0].String() + "]"
	case KindSet:
		return "set[" + t.elems[0].String() + "]"
	case KindMap:
		return "map[" + t.elems[0].String() + "," + t.elems[1].String() + "]"
	}
	return t.kind.String()
}

// Any matches every value and returns it unchanged.
func Any() TypeExpr { return TypeExpr{kind: KindAny} }

// Bool declares a bool attribute.
func Bool() TypeExpr { return TypeExpr{kind: KindBool} }

// String declares a string attribute.
func String() TypeExpr { return TypeExpr{kind: KindString} }

// Int declares an integer attribute (coerced form is int64).
func Int() TypeExpr { return TypeExpr{kind: KindInt} }

// Float declares a float attribute (coerced form is float64).
func Float() TypeExpr { return TypeExpr{kind: KindFloat} }

// Time declares a time attribute (coerced form is time.Time).
func Time() TypeExpr { return TypeExpr{kind: KindTime} }

// Optional wraps t so that an absent or null value is accepted and coerced to
// nil. Optional of a union marks the union itself rather than nesting.
func Optional(t TypeExpr) TypeExpr {
	if t.kind == KindUnion {
		t.nullable = true
		return t
	}
	return TypeExpr{kind: KindUnion, elems: []TypeExpr{t}, nullable: true}
}

// Union declares an ordered union; branches are attempted in declared order
// and the first one that validates wins. Nested unions are flattened, and a
// nested optional marker propagates outward.
func Union(ts ...TypeExpr) TypeExpr {
	out := TypeExpr{kind: KindUnion}
	for _, t := range ts {
		if t.kind == KindUnion {
			out.elems = append(out.elems, t.elems...)
			if t.nullable {
				out.nullable = true
			}
			continue
		}
		out.elems = append(out.elems, t)
	}
	return out
}

// List declares a sequence whose every element matches elem.
func List(elem TypeExpr) TypeExpr { return TypeExpr{kind: KindList, elems: []TypeExpr{elem}} }

// Set declares an unordered collection whose every element matches elem.
// The coerced form is map[any]struct{}; duplicate post-coercion values collapse.
func Set(elem TypeExpr) TypeExpr { return TypeExpr{kind: KindSet, elems: []TypeExpr{elem}} }

// Map declares a mapping with exactly one key and one value expression.
func Map(key, value TypeExpr) TypeExpr {
	return TypeExpr{kind: KindMap, elems: []TypeExpr{key, value}}
}

// Custom declares an attribute validated by the given hook. The hook must
// implement KeyValidatable or Validatable; anything else is a SchemaError at
// validation time.
func Custom(hook any) TypeExpr { return TypeExpr{kind: KindCustom, hook: hook} }

// Validatable is the capability interface for custom types whose hook only
// needs the value.
type Validatable interface {
	Validate(ctx context.Context, v any) (any, error)
}

// KeyValidatable is the capability interface for custom types whose hook also
// wants the attribute name. It is preferred when both are implemented.
type KeyValidatable interface {
	ValidateKey(ctx context.Context, v any, key string) (any, error)
}
