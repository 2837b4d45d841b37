// Package generic provides small generic containers and capability contracts.
//
// The package includes:
//   - Sourced: a value tagged with the name of its origin
//   - Limited: a number stored together with its min and max bounds
//   - Converter: a single-method conversion capability
//   - MaxHolder: a running maximum over an ordered type
//   - StrictProcessor: a capability restricted to serializable, ordered types
//   - ComparableCollection and List: containers ordered by element count only
//
// None of the types synchronize access; callers sharing a mutable container
// between goroutines must guard it themselves.
package generic
