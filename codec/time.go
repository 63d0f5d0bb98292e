package codec

import (
	"context"
	"strconv"
	"time"

	modelv "github.com/modelv-go/modelv"
)

// TimeEpoch returns a Codec between epoch seconds and time.Time. Encode
// truncates sub-second precision.
func TimeEpoch() modelv.Codec[int64, time.Time] { return timeEpochCodec{} }

type timeEpochCodec struct{}

func (timeEpochCodec) Decode(ctx context.Context, a int64) (time.Time, error) {
	return time.Unix(a, 0), nil
}

func (timeEpochCodec) Encode(ctx context.Context, b time.Time) (int64, error) {
	return b.Unix(), nil
}

// TimeString returns a Codec between strings and time.Time. Decode tries an
// epoch integer first, then RFC3339 (with and without nanoseconds); Encode
// emits canonical UTC RFC3339Nano.
func TimeString() modelv.Codec[string, time.Time] { return timeStringCodec{} }

type timeStringCodec struct{}

func (timeStringCodec) Decode(ctx context.Context, a string) (time.Time, error) {
	if i, err := strconv.ParseInt(a, 10, 64); err == nil {
		return time.Unix(i, 0), nil
	}
	t, err := time.Parse(time.RFC3339Nano, a)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, a); err2 == nil {
			return t2, nil
		}
		return time.Time{}, &modelv.ValidationError{
			Code:    modelv.CodeInvalidType,
			Message: "not an epoch or RFC3339 time",
			Hint:    a,
			Cause:   err,
		}
	}
	return t, nil
}

func (timeStringCodec) Encode(ctx context.Context, b time.Time) (string, error) {
	// Normalize to UTC; RFC3339Nano trims trailing zeros.
	return b.UTC().Format(time.RFC3339Nano), nil
}
