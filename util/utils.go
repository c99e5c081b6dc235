package util

// MapN maps ts through fn, dropping elements for which fn errors.
func MapN[T, V any](ts []T, fn func(T) (V, error)) []V {
	result := make([]V, 0, len(ts))
	for _, t := range ts {
		if v, err := fn(t); err == nil {
			result = append(result, v)
		}
	}
	return result
}

func Filter[T any](ts []T, fn func(T) bool) []T {
	result := []T{}
	for _, v := range ts {
		if fn(v) {
			result = append(result, v)
		}
	}
	return result
}

func Reduce[T, V any](ts []T, acc func(t T, v V) V, base V) V {
	for _, v := range ts {
		base = acc(v, base)
	}
	return base
}

func Choose[T any](cond bool, a T, b T) T {
	if cond {
		return a
	}
	return b
}
