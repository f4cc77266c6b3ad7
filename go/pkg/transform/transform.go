// Package transform holds small generic helpers for working over record
// slices and the data-transformation katas built from them.
//
// Every function returns new values and leaves its inputs untouched.
package transform

import "maps"

// Filter returns the elements of in for which keep is true, in order.
// The result is never nil.
func Filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Map applies fn to each element.
func Map[T, U any](in []T, fn func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

// Reduce folds in from the left starting at initial.
func Reduce[T, A any](in []T, initial A, fn func(acc A, v T) A) A {
	acc := initial
	for _, v := range in {
		acc = fn(acc, v)
	}
	return acc
}

// Find returns the first element matching pred.
func Find[T any](in []T, pred func(T) bool) (T, bool) {
	for _, v := range in {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// GroupBy buckets elements by key, keeping input order inside each bucket.
func GroupBy[T any, K comparable](in []T, key func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, v := range in {
		k := key(v)
		out[k] = append(out[k], v)
	}
	return out
}

// Merge is a shallow merge; later maps win on key conflicts.
func Merge[K comparable, V any](ms ...map[K]V) map[K]V {
	out := make(map[K]V)
	for _, m := range ms {
		maps.Copy(out, m)
	}
	return out
}

// Sum adds its arguments. Sum() is 0.
func Sum(params ...float64) float64 {
	return Reduce(params, 0.0, func(acc, v float64) float64 {
		return acc + v
	})
}
