package generic

// StrictProcessor consumes values that are both serializable and ordered.
type StrictProcessor[T Strict[T]] interface {
	Process(obj T)
}

// StrictProcessorFunc adapts a function to StrictProcessor.
type StrictProcessorFunc[T Strict[T]] func(obj T)

// Process calls f(obj).
func (f StrictProcessorFunc[T]) Process(obj T) {
	f(obj)
}
