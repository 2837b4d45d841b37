package generic

import "cmp"

// MaxHolder tracks the greatest value it has been given.
//
// Business rules:
//   - The holder may start without a value; the first Put always sets it
//   - A value replaces the maximum only when it compares strictly greater,
//     so the first of several equal values is kept
//
// Example usage:
//
//	holder := generic.NewMaxHolder[int]()
//	holder.Put(3)
//	holder.Put(5)
//	holder.Put(2)
//	max, _ := holder.Max() // 5
type MaxHolder[T any] struct {
	max     T
	present bool
	compare func(a, b T) int
}

// NewMaxHolder creates an empty holder for a naturally ordered type.
func NewMaxHolder[T cmp.Ordered]() *MaxHolder[T] {
	return &MaxHolder[T]{compare: cmp.Compare[T]}
}

// NewMaxHolderOf creates a holder whose initial maximum is initial.
func NewMaxHolderOf[T cmp.Ordered](initial T) *MaxHolder[T] {
	return &MaxHolder[T]{max: initial, present: true, compare: cmp.Compare[T]}
}

// NewComparableMaxHolder creates an empty holder for a type that orders itself,
// such as time.Time.
func NewComparableMaxHolder[T Comparable[T]]() *MaxHolder[T] {
	return NewMaxHolderFunc(func(a, b T) int { return a.Compare(b) })
}

// NewMaxHolderFunc creates an empty holder ordered by compare.
func NewMaxHolderFunc[T any](compare func(a, b T) int) *MaxHolder[T] {
	return &MaxHolder[T]{compare: compare}
}

// Put offers value to the holder.
func (h *MaxHolder[T]) Put(value T) {
	if !h.present || h.compare(value, h.max) > 0 {
		h.max = value
		h.present = true
	}
}

// Max returns the current maximum, or false when nothing has been put yet.
func (h *MaxHolder[T]) Max() (T, bool) {
	return h.max, h.present
}
