package generic

// Sourced holds a value together with the name of where it came from.
// Both fields are mutable and never validated.
type Sourced[T any] struct {
	value  T
	source string
}

// NewSourced creates a Sourced holding value tagged with source.
func NewSourced[T any](value T, source string) *Sourced[T] {
	return &Sourced[T]{value: value, source: source}
}

// Value returns the wrapped value.
func (s *Sourced[T]) Value() T {
	return s.value
}

// SetValue replaces the wrapped value.
func (s *Sourced[T]) SetValue(value T) {
	s.value = value
}

// Source returns the origin tag.
func (s *Sourced[T]) Source() string {
	return s.source
}

// SetSource replaces the origin tag.
func (s *Sourced[T]) SetSource(source string) {
	s.source = source
}
