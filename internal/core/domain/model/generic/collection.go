package generic

import (
	"cmp"
	"iter"
	"slices"
)

// Sized is anything that can report how many elements it holds.
type Sized interface {
	Len() int
}

// Collection is a sized container that can enumerate its elements.
type Collection[E any] interface {
	Sized
	All() iter.Seq[E]
}

// ComparableCollection is a collection that orders itself against any other
// sized container by element count alone. Contents are never inspected.
type ComparableCollection[E any] interface {
	Collection[E]
	CompareTo(other Sized) int
}

// CompareBySize orders a and b by element count, ascending.
func CompareBySize(a, b Sized) int {
	return cmp.Compare(a.Len(), b.Len())
}

// List is a slice-backed ComparableCollection.
type List[E any] []E

var _ ComparableCollection[int] = List[int](nil)

// ListOf returns a List holding a copy of elems.
func ListOf[E any](elems ...E) List[E] {
	return List[E](slices.Clone(elems))
}

// Len returns the number of elements.
func (l List[E]) Len() int {
	return len(l)
}

// All yields the elements in order.
func (l List[E]) All() iter.Seq[E] {
	return slices.Values(l)
}

// CompareTo orders l against other by size only.
func (l List[E]) CompareTo(other Sized) int {
	return CompareBySize(l, other)
}
