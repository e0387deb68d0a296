// Package options implements the functional-option plumbing shared by the
// codec's configurable surfaces. It is generic over the configured type, so
// one mechanism serves codec.Config and anything a consumer layers on top.
package options

// Option configures a value of type T, returning an error when the
// requested setting cannot be applied.
type Option[T any] func(T) error

// Apply runs each option against target in order, stopping at the first
// failure.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt(target); err != nil {
			return err
		}
	}

	return nil
}

// NoError adapts a setter that cannot fail into an Option.
func NoError[T any](fn func(T)) Option[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}
