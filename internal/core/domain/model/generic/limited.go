package generic

import "crazygenerics/internal/pkg/errs"

// Limited stores a number together with the bounds it is expected to respect.
// All three fields are fixed at construction.
//
// NewLimited does not check min <= actual <= max; callers that need the
// guarantee call Validate explicitly.
type Limited[T Number] struct {
	actual T
	min    T
	max    T
}

// NewLimited creates a Limited. No bound checking is performed.
func NewLimited[T Number](actual, minValue, maxValue T) Limited[T] {
	return Limited[T]{actual: actual, min: minValue, max: maxValue}
}

// Actual returns the stored value.
func (l Limited[T]) Actual() T {
	return l.actual
}

// Min returns the lower bound.
func (l Limited[T]) Min() T {
	return l.min
}

// Max returns the upper bound.
func (l Limited[T]) Max() T {
	return l.max
}

// Contains reports whether min <= actual <= max.
func (l Limited[T]) Contains() bool {
	return l.min <= l.actual && l.actual <= l.max
}

// Validate returns an errs.ValueIsOutOfRangeError naming paramName when the
// actual value lies outside of its bounds.
func (l Limited[T]) Validate(paramName string) error {
	if l.Contains() {
		return nil
	}
	return errs.NewValueIsOutOfRangeError(paramName, l.actual, l.min, l.max)
}
