package util

// Option configures a value of type T.
type Option[T any] interface {
	ApplyTo(target *T)
}

// FunctionalOption adapts a plain function to the Option interface.
type FunctionalOption[T any] func(*T)

// ApplyTo calls the wrapped function with target.
func (f FunctionalOption[T]) ApplyTo(target *T) {
	f(target)
}

// ApplyOptions applies every option to target in order.
func ApplyOptions[T any](target *T, opts ...Option[T]) {
	for _, opt := range opts {
		opt.ApplyTo(target)
	}
}
