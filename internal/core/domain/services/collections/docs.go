// Package collections provides stateless utility functions over caller-supplied
// collections: printing, entity checks, maximum search and element swap.
//
// Failure behavior is deliberately asymmetric:
//   - FindMax reports an empty input through its boolean result
//   - FindMostRecentlyCreatedEntity fails with errs.ErrNoSuchElement on empty input
//   - Swap fails with errs.ErrIndexOutOfBounds before touching the slice
package collections
