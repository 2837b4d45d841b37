package collections

import (
	"fmt"
	"io"
	"os"
)

// ItemMarker prefixes every line written by Print and Fprint.
const ItemMarker = " – "

// Print writes every element of items to standard output, one per line.
func Print[T any](items []T) {
	_ = Fprint(os.Stdout, items)
}

// Fprint writes every element of items to w, one per line, each prefixed with ItemMarker.
// It stops at the first write error.
func Fprint[T any](w io.Writer, items []T) error {
	for _, item := range items {
		if _, err := fmt.Fprintln(w, ItemMarker+fmt.Sprint(item)); err != nil {
			return err
		}
	}
	return nil
}
