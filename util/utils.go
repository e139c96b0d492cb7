package util

import (
	"cmp"
	"slices"
)

/*
Utility functions.
*/

////////////////////////////////////////////////////////////////////////////////

// Okeys returns the keys of the map in ascending order.
func Okeys[T cmp.Ordered, K any](m map[T]K) []T {
	keys := make([]T, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Dedup returns the elements of xs with duplicates removed, preserving the
// order of first occurrence.
func Dedup[T comparable](xs []T) []T {
	seen := make(map[T]struct{}, len(xs))
	result := make([]T, 0, len(xs))
	for _, x := range xs {
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		result = append(result, x)
	}
	return result
}

// When returns a if cond is true, otherwise b.
func When[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
