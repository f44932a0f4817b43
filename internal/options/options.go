// Package options applies functional options over a defaults constructor.
package options

// Defaults builds the configuration options are applied to.
type Defaults[T any] func() T

// Option mutates a configuration.
type Option[T any] func(*T)

// Apply builds a configuration with defaults and applies opts in order.
// A nil defaults starts from the zero value; nil options are skipped.
func Apply[T any](defaults Defaults[T], opts []Option[T]) T {
	var cfg T

	if defaults != nil {
		cfg = defaults()
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
