package collections

import "crazygenerics/internal/pkg/errs"

// Swap exchanges elements[i] and elements[j] in place. Both indices are checked
// against [0, len(elements)) before anything is modified.
func Swap[T any](elements []T, i, j int) error {
	if err := errs.CheckIndex(i, len(elements)); err != nil {
		return err
	}
	if err := errs.CheckIndex(j, len(elements)); err != nil {
		return err
	}

	elements[i], elements[j] = elements[j], elements[i]
	return nil
}
