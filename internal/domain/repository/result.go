package repository

// Result carries an aggregation outcome. Degraded marks partial results where
// one or more providers contributed nothing (or synthetic fallback data was
// used); Reasons lists which. A hard failure is an ordinary error return, so
// the caching/staleness boundary stays uniform across aggregators.
type Result[T any] struct {
	Data     T
	Degraded bool
	Reasons  []string
}

// OK wraps a fully healthy aggregation result.
func OK[T any](data T) Result[T] {
	return Result[T]{Data: data}
}

// Degraded wraps a partial result with the provider-level reasons.
func Degraded[T any](data T, reasons ...string) Result[T] {
	return Result[T]{Data: data, Degraded: len(reasons) > 0, Reasons: reasons}
}
