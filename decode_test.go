package modelv_test

import (
	"context"
	"testing"

	modelv "github.com/modelv-go/modelv"
	"github.com/modelv-go/modelv/dsl"
)

func TestFromJSON(t *testing.T) {
	ctx := context.Background()
	schema := dsl.NewSchema().
		Field("name", dsl.String()).
		Field("age", dsl.Int()).
		Field("score", dsl.Float()).
		MustBuild()

	m, err := modelv.FromJSON(schema, []byte(`{"name":"ada","age":42,"score":9.5}`))
	if err != nil {
		t.Fatalf("from json: %v", err)
	}
	out, err := m.Validate(ctx)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if out["age"] != int64(42) || out["score"] != 9.5 {
		t.Fatalf("expected coerced numbers, got %v %v", out["age"], out["score"])
	}

	// json.Number keeps the int/float distinction: 42.5 is not int compatible
	m, err = modelv.FromJSON(schema, []byte(`{"name":"ada","age":42.5,"score":1}`))
	if err != nil {
		t.Fatalf("from json: %v", err)
	}
	_, err = m.Validate(ctx)
	ve, ok := modelv.AsValidationError(err)
	if !ok || ve.Key != "age" {
		t.Fatalf("expected invalid age, got %v", err)
	}

	// non-object documents fail at construction
	_, err = modelv.FromJSON(schema, []byte(`[1,2]`))
	ve, ok = modelv.AsValidationError(err)
	if !ok || ve.Code != modelv.CodeParseError {
		t.Fatalf("expected parse_error, got %v", err)
	}
}

func TestFromYAML(t *testing.T) {
	ctx := context.Background()
	schema := dsl.NewSchema().
		Field("name", dsl.String()).
		Field("tags", dsl.List(dsl.String())).
		MustBuild()

	m, err := modelv.FromYAML(schema, []byte("name: ada\ntags:\n  - a\n  - 2\n"))
	if err != nil {
		t.Fatalf("from yaml: %v", err)
	}
	out, err := m.Validate(ctx)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	tags := out["tags"].([]any)
	if tags[0] != "a" || tags[1] != "2" {
		t.Fatalf("expected coerced tags, got %v", tags)
	}

	if _, err := modelv.FromYAML(schema, []byte("- just\n- a list\n")); err == nil {
		t.Fatalf("expected error for non-mapping document")
	}
}
