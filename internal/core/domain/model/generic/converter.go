package generic

// Converter turns a T into an R. Implementations that can fail encode the
// failure in R (for example a result struct); the contract has no error channel.
type Converter[T, R any] interface {
	Convert(source T) R
}

// ConverterFunc adapts an ordinary function to the Converter interface.
type ConverterFunc[T, R any] func(source T) R

// Convert calls f(source).
func (f ConverterFunc[T, R]) Convert(source T) R {
	return f(source)
}

// ConvertAll applies c to every element of sources, preserving order.
func ConvertAll[T, R any](c Converter[T, R], sources []T) []R {
	out := make([]R, 0, len(sources))
	for _, s := range sources {
		out = append(out, c.Convert(s))
	}
	return out
}
