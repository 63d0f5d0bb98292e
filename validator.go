package modelv

import "context"

// Validator is the normalized shape every chain handler runs as: it receives
// the running value and the attribute name and returns the (possibly
// transformed) value. The return value always replaces the running value.
// Handlers that perform I/O should honor ctx.
type Validator func(ctx context.Context, v any, key string) (any, error)

// ValueOnly wraps a one-argument handler so it can join a chain, ignoring the
// attribute name.
func ValueOnly(fn func(ctx context.Context, v any) (any, error)) Validator {
	return func(ctx context.Context, v any, _ string) (any, error) {
		return fn(ctx, v)
	}
}

// runChain feeds v through handlers in registration order, each handler
// receiving the previous handler's output.
func runChain(ctx context.Context, handlers []Validator, v any, key string) (any, error) {
	var err error
	for _, h := range handlers {
		if v, err = h(ctx, v, key); err != nil {
			return nil, err
		}
	}
	return v, nil
}
