package dsl

import (
	modelv "github.com/modelv-go/modelv"
)

// Thin re-exports of the type-expression constructors so schema declarations
// read as a single vocabulary (g := dsl; g.Field("a", g.String())).

// Any matches every value and returns it unchanged.
func Any() modelv.TypeExpr { return modelv.Any() }

// Bool declares a bool attribute.
func Bool() modelv.TypeExpr { return modelv.Bool() }

// String declares a string attribute.
func String() modelv.TypeExpr { return modelv.String() }

// Int declares an integer attribute.
func Int() modelv.TypeExpr { return modelv.Int() }

// Float declares a float attribute.
func Float() modelv.TypeExpr { return modelv.Float() }

// Time declares a time attribute.
func Time() modelv.TypeExpr { return modelv.Time() }

// Optional accepts an absent or null value, coerced to nil.
func Optional(t modelv.TypeExpr) modelv.TypeExpr { return modelv.Optional(t) }

// Union tries branches in declared order; the first success wins.
func Union(ts ...modelv.TypeExpr) modelv.TypeExpr { return modelv.Union(ts...) }

// List declares a sequence of elem.
func List(elem modelv.TypeExpr) modelv.TypeExpr { return modelv.List(elem) }

// Set declares an unordered collection of elem.
func Set(elem modelv.TypeExpr) modelv.TypeExpr { return modelv.Set(elem) }

// Map declares a mapping with exactly one key and one value expression.
func Map(key, value modelv.TypeExpr) modelv.TypeExpr { return modelv.Map(key, value) }

// Custom declares an attribute validated by hook (KeyValidatable or
// Validatable).
func Custom(hook any) modelv.TypeExpr { return modelv.Custom(hook) }
