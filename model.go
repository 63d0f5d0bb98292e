package modelv

import (
	"context"
	"reflect"
	"strings"

	"github.com/modelv-go/modelv/i18n"
)

// Model binds one bag of attribute values to a shared, read-only Schema.
// Construction only records the values; nothing is validated until Validate
// runs. A Model owns its state exclusively, so distinct instances may be
// validated concurrently without coordination, but a single instance must not
// be shared across goroutines mid-validation.
type Model struct {
	schema   *Schema
	items    map[string]any // Current values; coerced in place by Validate.
	defaults map[string]any // Computed once at construction.
	plain    map[string]any // Unvalidated values of ignored attributes.
	ignored  map[string]struct{}

	global []Validator            // Wildcard chain, runs first for every key.
	byKey  map[string][]Validator // Per-key chains, registration order.
}

// New constructs a Model over schema with zero or more initial values. Keys
// starting with ReservedPrefix are silently dropped. Literal defaults are
// copied from the schema; DefaultFunc factories run exactly once, here, with
// the instance as context.
func New(schema *Schema, items map[string]any) *Model {
	m := &Model{
		schema:   schema,
		items:    make(map[string]any, len(items)),
		defaults: make(map[string]any, schema.Len()),
		plain:    map[string]any{},
		ignored:  map[string]struct{}{},
		byKey:    map[string][]Validator{},
	}
	for k, v := range items {
		if strings.HasPrefix(k, ReservedPrefix) {
			continue
		}
		m.items[k] = v
	}
	for _, f := range schema.fields {
		switch {
		case f.DefaultFunc != nil:
			m.defaults[f.Name] = f.DefaultFunc(m)
		case f.HasDefault:
			m.defaults[f.Name] = f.Default
		}
	}
	return m
}

// Schema returns the shared schema this model validates against.
func (m *Model) Schema() *Schema { return m.schema }

// Attributes returns a copy of the declared name -> type-expression mapping.
func (m *Model) Attributes() map[string]TypeExpr { return m.schema.Types() }

// Get reads an attribute, falling back item store -> default store. Ignored
// attributes read from their plain, unvalidated slot. A miss is a
// ValidationError naming the key.
func (m *Model) Get(key string) (any, error) {
	if _, ok := m.ignored[key]; ok {
		if v, ok := m.plain[key]; ok {
			return v, nil
		}
	}
	if v, ok := m.items[key]; ok {
		return v, nil
	}
	if v, ok := m.defaults[key]; ok {
		return v, nil
	}
	return nil, &ValidationError{
		Key:     key,
		Code:    CodeUnknownAttribute,
		Message: i18n.T(CodeUnknownAttribute, nil),
	}
}

// Set writes an attribute value. Keys with the reserved prefix are rejected;
// ignored attributes route to the plain store and stay unvalidated.
func (m *Model) Set(key string, v any) error {
	if strings.HasPrefix(key, ReservedPrefix) {
		return &ValidationError{Key: key, Code: CodeReservedKey, Message: i18n.T(CodeReservedKey, nil)}
	}
	if _, ok := m.ignored[key]; ok {
		m.plain[key] = v
		return nil
	}
	m.items[key] = v
	return nil
}

// Has reports whether the key is explicitly present in the item store
// (defaults do not count).
func (m *Model) Has(key string) bool {
	_, ok := m.items[key]
	return ok
}

// Remove deletes the key from the item store and reports whether it existed.
func (m *Model) Remove(key string) bool {
	_, ok := m.items[key]
	delete(m.items, key)
	return ok
}

// Len reports the number of explicitly set attributes.
func (m *Model) Len() int { return len(m.items) }

// IsDefault reports whether the key would take its default value: absent from
// the item store while a default exists.
func (m *Model) IsDefault(key string) bool {
	if _, ok := m.items[key]; ok {
		return false
	}
	_, ok := m.defaults[key]
	return ok
}

// IgnoreAttribute excludes a key from schema enforcement and defaulting. Any
// existing item value moves to a plain, unvalidated slot. This is a
// bootstrap-time operation; ignoring keys after validation has started is not
// supported.
func (m *Model) IgnoreAttribute(key string) {
	delete(m.defaults, key)
	if v, ok := m.items[key]; ok {
		m.plain[key] = v
		delete(m.items, key)
	}
	m.ignored[key] = struct{}{}
}

// AddValidator appends a handler to every named key's chain, or to the
// wildcard chain when no keys are given. Registration order is invocation
// order; the wildcard chain runs before any per-key chain.
func (m *Model) AddValidator(fn Validator, keys ...string) {
	if len(keys) == 0 {
		m.global = append(m.global, fn)
		return
	}
	for _, k := range keys {
		m.byKey[k] = append(m.byKey[k], fn)
	}
}

// Equal reports whether the two models share a schema and hold equal item
// stores. Defaults, ignored attributes, and validators do not participate.
func (m *Model) Equal(other *Model) bool {
	if other == nil || m.schema != other.schema {
		return false
	}
	if len(m.items) != len(other.items) {
		return false
	}
	for k, v := range m.items {
		ov, ok := other.items[k]
		if !ok || !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return true
}

// Validate reconciles the item store against the schema and returns the fully
// coerced, chain-processed mapping. It fails fast: the first error aborts the
// call, and the item store may already hold partially coerced values from
// container recursion; such an instance must not be reused without
// re-defaulting.
//
// Attributes are processed strictly in schema-declaration order, so
// side-effecting hooks run in a deterministic sequence and a failure on
// attribute N guarantees later attributes are never reached.
func (m *Model) Validate(ctx context.Context) (map[string]any, error) {
	for key := range m.items {
		if _, ok := m.schema.index[key]; !ok {
			return nil, &ValidationError{Key: key, Code: CodeUnknownKey, Message: i18n.T(CodeUnknownKey, nil)}
		}
	}

	out := make(map[string]any, m.schema.Len())
	for k, v := range m.items {
		out[k] = v
	}

	for _, f := range m.schema.fields {
		if _, skip := m.ignored[f.Name]; skip {
			continue
		}
		v, ok := out[f.Name]
		if !ok {
			if dv, hasDefault := m.defaults[f.Name]; hasDefault {
				v = dv
				out[f.Name] = dv
			} else if f.Type.IsOptional() {
				// Null assignment; the type validator is never consulted.
				out[f.Name] = nil
				continue
			} else {
				return nil, &ValidationError{Key: f.Name, Code: CodeRequired, Message: i18n.T(CodeRequired, nil)}
			}
		}

		cv, err := validateExpr(ctx, builtinCoercers, f.Type, v, f.Name)
		if err != nil {
			return nil, err
		}
		out[f.Name] = cv
		m.items[f.Name] = cv
	}

	if len(m.global) > 0 || len(m.byKey) > 0 {
		for _, f := range m.schema.fields {
			if _, skip := m.ignored[f.Name]; skip {
				continue
			}
			v, err := runChain(ctx, m.global, out[f.Name], f.Name)
			if err != nil {
				return nil, err
			}
			if v, err = runChain(ctx, m.byKey[f.Name], v, f.Name); err != nil {
				return nil, err
			}
			out[f.Name] = v
			m.items[f.Name] = v
		}
	}

	return out, nil
}
