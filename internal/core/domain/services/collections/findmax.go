package collections

import (
	"iter"
	"slices"
)

// FindMax returns the greatest element of elements under compare, in a single pass.
// An element replaces the current maximum only when it compares strictly greater,
// so the first maximal element wins ties. It returns false for an empty input.
func FindMax[T any](elements []T, compare func(a, b T) int) (T, bool) {
	return FindMaxSeq(slices.Values(elements), compare)
}

// FindMaxSeq is FindMax over any iterator, for example generic.List.All.
func FindMaxSeq[T any](elements iter.Seq[T], compare func(a, b T) int) (T, bool) {
	var (
		maxElem T
		found   bool
	)
	for e := range elements {
		if !found || compare(e, maxElem) > 0 {
			maxElem = e
			found = true
		}
	}
	return maxElem, found
}
