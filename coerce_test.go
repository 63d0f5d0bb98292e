package modelv_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	modelv "github.com/modelv-go/modelv"
)

func TestCoerceBool(t *testing.T) {
	ctx := context.Background()

	for in, want := range map[string]bool{"Yes": true, "true": true, "T": true, "no": false, "FALSE": false, "n": false} {
		v, err := modelv.ValidateValue(ctx, modelv.Bool(), in, "flag")
		if err != nil || v != want {
			t.Fatalf("coerce %q: got v=%v err=%v", in, v, err)
		}
	}

	// bools pass through
	if v, err := modelv.ValidateValue(ctx, modelv.Bool(), true, "flag"); err != nil || v != true {
		t.Fatalf("bool passthrough failed: v=%v err=%v", v, err)
	}

	// outside the vocabulary
	_, err := modelv.ValidateValue(ctx, modelv.Bool(), "maybe", "flag")
	ve, ok := modelv.AsValidationError(err)
	if !ok || ve.Key != "flag" || ve.Code != modelv.CodeInvalidType {
		t.Fatalf("expected invalid_type at flag, got %v", err)
	}

	// numbers are never bool compatible
	if _, err := modelv.ValidateValue(ctx, modelv.Bool(), 1, "flag"); err == nil {
		t.Fatalf("expected error for numeric bool input")
	}
}

func TestCoerceString(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		in   any
		want string
	}{
		{"x", "x"},
		{true, "true"},
		{false, "false"},
		{42, "42"},
		{int64(7), "7"},
		{uint8(3), "3"},
		{1.5, "1.5"},
		{json.Number("2.25"), "2.25"},
	}
	for _, c := range cases {
		v, err := modelv.ValidateValue(ctx, modelv.String(), c.in, "s")
		if err != nil || v != c.want {
			t.Fatalf("coerce %v (%T): got v=%v err=%v", c.in, c.in, v, err)
		}
	}

	if _, err := modelv.ValidateValue(ctx, modelv.String(), []any{"x"}, "s"); err == nil {
		t.Fatalf("expected error for list input")
	}
}

func TestCoerceInt(t *testing.T) {
	ctx := context.Background()

	v, err := modelv.ValidateValue(ctx, modelv.Int(), "42", "n")
	if err != nil || v != int64(42) {
		t.Fatalf("expected int64 42 from string, got %v (%T) err=%v", v, v, err)
	}

	// floats are rejected: truncating would corrupt data
	if _, err := modelv.ValidateValue(ctx, modelv.Int(), 42.0, "n"); err == nil {
		t.Fatalf("expected error for float input")
	}
	if _, err := modelv.ValidateValue(ctx, modelv.Int(), json.Number("42.5"), "n"); err == nil {
		t.Fatalf("expected error for fractional json.Number")
	}

	// integral json.Number is fine
	v, err = modelv.ValidateValue(ctx, modelv.Int(), json.Number("9"), "n")
	if err != nil || v != int64(9) {
		t.Fatalf("expected 9, got %v err=%v", v, err)
	}

	// coercion is idempotent over its own output
	v2, err := modelv.ValidateValue(ctx, modelv.Int(), v, "n")
	if err != nil || v2 != int64(9) {
		t.Fatalf("expected idempotent coercion, got %v err=%v", v2, err)
	}

	if _, err := modelv.ValidateValue(ctx, modelv.Int(), "4x", "n"); err == nil {
		t.Fatalf("expected error for unparseable string")
	}
}

func TestCoerceFloat(t *testing.T) {
	ctx := context.Background()

	if v, err := modelv.ValidateValue(ctx, modelv.Float(), "1.25", "f"); err != nil || v != 1.25 {
		t.Fatalf("expected 1.25 from string, got %v err=%v", v, err)
	}
	if v, err := modelv.ValidateValue(ctx, modelv.Float(), json.Number("3"), "f"); err != nil || v != 3.0 {
		t.Fatalf("expected 3.0 from json.Number, got %v err=%v", v, err)
	}
	if v, err := modelv.ValidateValue(ctx, modelv.Float(), float32(0.5), "f"); err != nil || v != 0.5 {
		t.Fatalf("expected 0.5 from float32, got %v err=%v", v, err)
	}

	// Go ints are not float compatible
	if _, err := modelv.ValidateValue(ctx, modelv.Float(), 3, "f"); err == nil {
		t.Fatalf("expected error for int input")
	}
	if _, err := modelv.ValidateValue(ctx, modelv.Float(), "abc", "f"); err == nil {
		t.Fatalf("expected error for unparseable string")
	}
}

func TestCoerceTime(t *testing.T) {
	ctx := context.Background()
	epoch := int64(1700000000)

	v, err := modelv.ValidateValue(ctx, modelv.Time(), epoch, "at")
	if err != nil {
		t.Fatalf("epoch int: %v", err)
	}
	if ts := v.(time.Time); ts.Unix() != epoch {
		t.Fatalf("expected %d, got %d", epoch, ts.Unix())
	}

	// string epoch wins over ISO parsing
	v, err = modelv.ValidateValue(ctx, modelv.Time(), "1700000000", "at")
	if err != nil || v.(time.Time).Unix() != epoch {
		t.Fatalf("string epoch: v=%v err=%v", v, err)
	}

	// ISO fallback
	v, err = modelv.ValidateValue(ctx, modelv.Time(), "2023-11-14T22:13:20Z", "at")
	if err != nil || v.(time.Time).UTC().Unix() != epoch {
		t.Fatalf("RFC3339: v=%v err=%v", v, err)
	}
	if _, err := modelv.ValidateValue(ctx, modelv.Time(), "2023-11-14", "at"); err != nil {
		t.Fatalf("date-only layout: %v", err)
	}

	// float epoch keeps the fraction
	v, err = modelv.ValidateValue(ctx, modelv.Time(), 1700000000.5, "at")
	if err != nil || v.(time.Time).Nanosecond() != 500000000 {
		t.Fatalf("float epoch: v=%v err=%v", v, err)
	}

	// time.Time passes through untouched
	now := time.Now()
	if v, err := modelv.ValidateValue(ctx, modelv.Time(), now, "at"); err != nil || !v.(time.Time).Equal(now) {
		t.Fatalf("time passthrough: v=%v err=%v", v, err)
	}

	if _, err := modelv.ValidateValue(ctx, modelv.Time(), "not a time", "at"); err == nil {
		t.Fatalf("expected error for unparseable string")
	}
}

func TestCoercersRegistryIsComplete(t *testing.T) {
	reg := modelv.Coercers()
	for _, k := range []modelv.Kind{modelv.KindBool, modelv.KindString, modelv.KindInt, modelv.KindFloat, modelv.KindTime} {
		if reg[k] == nil {
			t.Fatalf("missing coercer for %v", k)
		}
	}
}
