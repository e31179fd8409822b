package tidy

import (
	"context"
	"fmt"
)

// Operation is a single-argument unit of business logic.
type Operation[In, Out any] func(ctx context.Context, in In) (Out, error)

// Intercept wraps op so that in is normalized before op runs.
// If normalization fails op is not called.
func Intercept[In, Out any](op Operation[In, Out]) Operation[In, Out] {
	return func(ctx context.Context, in In) (Out, error) {
		if err := Normalize(ctx, in); err != nil {
			var zero Out
			return zero, fmt.Errorf("intercept: %w", err)
		}
		return op(ctx, in)
	}
}

// Guard normalizes every argument in order and stops at the first error.
// Call it at the top of an operation that takes several arguments.
func Guard(ctx context.Context, args ...any) error {
	for i, arg := range args {
		if err := Normalize(ctx, arg); err != nil {
			return fmt.Errorf("argument %d: %w", i, err)
		}
	}
	return nil
}

// Invoker runs an operation over its arguments.
type Invoker func(ctx context.Context, args ...any) error

// Middleware decorates an Invoker.
type Middleware func(next Invoker) Invoker

// Before returns middleware that runs Guard before the next invoker.
func Before() Middleware {
	return func(next Invoker) Invoker {
		return func(ctx context.Context, args ...any) error {
			if err := Guard(ctx, args...); err != nil {
				return fmt.Errorf("intercept: %w", err)
			}
			return next(ctx, args...)
		}
	}
}

// Chain composes middleware. The first middleware is the outermost.
func Chain(mw ...Middleware) Middleware {
	return func(next Invoker) Invoker {
		for i := len(mw) - 1; i >= 0; i-- {
			next = mw[i](next)
		}
		return next
	}
}
