package generic

import "encoding"

// Number is satisfied by every built-in integer and floating point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Comparable is implemented by types that define a total order over themselves.
// Compare returns a negative number, zero or a positive number when the receiver
// is less than, equal to or greater than other. time.Time satisfies Comparable[time.Time].
type Comparable[T any] interface {
	Compare(other T) int
}

// Strict is satisfied by types that are both binary-serializable and totally ordered.
type Strict[T any] interface {
	encoding.BinaryMarshaler
	Comparable[T]
}
