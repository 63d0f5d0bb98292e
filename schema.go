package modelv

import (
	"fmt"
	"strings"
)

// ReservedPrefix marks attribute names the engine keeps for itself. Keys
// starting with it are silently dropped at construction and rejected by Set.
const ReservedPrefix = "_"

// DefaultFunc is a deferred "magic" default: it is invoked once, at Model
// construction, with the instance as context, and its result (never the
// function) is stored as the attribute's default.
type DefaultFunc func(m *Model) any

// Field pairs an attribute name with its type expression and optional default.
type Field struct {
	Name        string
	Type        TypeExpr
	Default     any  // Literal default, consulted when HasDefault is set.
	HasDefault  bool
	DefaultFunc DefaultFunc // Wins over Default when non-nil.
}

// Schema is the fixed attribute-name -> type-expression mapping for a model
// type. It is built once per model type (see dsl.NewSchema), immutable for
// its lifetime, and shared read-only across instances.
type Schema struct {
	fields []Field
	index  map[string]int
}

// NewSchema builds a Schema from fields in declaration order. Names must be
// non-empty, unique, and must not start with ReservedPrefix; violations are
// SchemaErrors.
func NewSchema(fields ...Field) (*Schema, error) {
	s := &Schema{
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	copy(s.fields, fields)
	for i, f := range s.fields {
		if f.Name == "" {
			return nil, &SchemaError{Message: "field name must not be empty"}
		}
		if strings.HasPrefix(f.Name, ReservedPrefix) {
			return nil, &SchemaError{Key: f.Name, Message: "field name must not start with " + ReservedPrefix}
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, &SchemaError{Key: f.Name, Message: "duplicate field name"}
		}
		s.index[f.Name] = i
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on error.
func MustSchema(fields ...Field) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len reports the number of declared attributes.
func (s *Schema) Len() int { return len(s.fields) }

// Fields returns a copy of the declared fields in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field looks up a declared field by name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Types returns a copy of the name -> type-expression mapping. This is the
// consumer surface for collaborators (for example a database driver deciding
// which columns to fetch or write).
func (s *Schema) Types() map[string]TypeExpr {
	out := make(map[string]TypeExpr, len(s.fields))
	for _, f := range s.fields {
		out[f.Name] = f.Type
	}
	return out
}

// String renders the schema for diagnostics.
func (s *Schema) String() string {
	b := &strings.Builder{}
	b.WriteString("schema{")
	for i, f := range s.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s:%s", f.Name, f.Type)
	}
	b.WriteString("}")
	return b.String()
}
