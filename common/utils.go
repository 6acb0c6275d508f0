package common

import "cmp"

// Coalesce returns the first argument that is not T's zero value.
// With no such argument it returns the zero value.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// PositiveOr returns v when it is greater than zero and fallback otherwise.
//
// Parameters:
//   - v: the configured value
//   - fallback: the default used for zero or negative values
//
// Returns:
//   - T: v or fallback
func PositiveOr[T cmp.Ordered](v, fallback T) T {
	var zero T
	if v > zero {
		return v
	}
	return fallback
}
