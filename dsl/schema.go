package dsl

import (
	modelv "github.com/modelv-go/modelv"
)

// SchemaBuilder accumulates field declarations for one model type. Build it
// once per type and share the resulting *modelv.Schema across instances.
type SchemaBuilder struct {
	fields []modelv.Field
}

// FieldStep scopes chained options (Default, DefaultFunc) to the field that
// was just declared, while still allowing the builder's methods.
type FieldStep struct {
	b   *SchemaBuilder
	idx int
}

// NewSchema creates an empty schema builder.
func NewSchema() *SchemaBuilder { return &SchemaBuilder{} }

// Field declares an attribute with its type expression. Declaration order is
// validation order.
func (b *SchemaBuilder) Field(name string, t modelv.TypeExpr) *FieldStep {
	b.fields = append(b.fields, modelv.Field{Name: name, Type: t})
	return &FieldStep{b: b, idx: len(b.fields) - 1}
}

// Build validates the declarations and returns the immutable Schema.
func (b *SchemaBuilder) Build() (*modelv.Schema, error) {
	return modelv.NewSchema(b.fields...)
}

// MustBuild is like Build but panics on error.
func (b *SchemaBuilder) MustBuild() *modelv.Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Default records a literal default for the current field.
func (f *FieldStep) Default(v any) *SchemaBuilder {
	f.b.fields[f.idx].Default = v
	f.b.fields[f.idx].HasDefault = true
	return f.b
}

// DefaultFunc records a deferred default factory for the current field. The
// factory runs once per instance at construction with the instance as
// context; its result, not the factory, becomes the default.
func (f *FieldStep) DefaultFunc(fn modelv.DefaultFunc) *SchemaBuilder {
	f.b.fields[f.idx].DefaultFunc = fn
	return f.b
}

func (f *FieldStep) Field(name string, t modelv.TypeExpr) *FieldStep { return f.b.Field(name, t) }
func (f *FieldStep) Build() (*modelv.Schema, error)                  { return f.b.Build() }
func (f *FieldStep) MustBuild() *modelv.Schema                       { return f.b.MustBuild() }
