package repository

// Option applies a configuration option to the InMemoryStore.
type Option func(*InMemoryStore)

// WithMaxSize bounds the number of stored reports. Values <= 0 disable the
// bound.
func WithMaxSize(n int) Option {
	return func(s *InMemoryStore) {
		s.maxSize = n
	}
}
