package modelv

import "context"

// Codec performs bidirectional transformation between the wire representation
// A and the domain representation B. Consumers of validated mappings (for
// example database drivers) use codecs to write coerced values back out; the
// codec package provides the built-in implementations.
type Codec[A, B any] interface {
	Decode(ctx context.Context, a A) (B, error)
	Encode(ctx context.Context, b B) (A, error)
}
