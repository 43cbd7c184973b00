// Package collection provides generic, functional-style helpers for slices.
// It mirrors Laravel's Collection API for the operations this project needs —
// Map, Filter, Reject, First, Contains, Unique, Reduce, SumInt.
//
// Usage:
//
//	names := collection.Map(items, func(i models.CartItem) string { return i.Name })
//	pens := collection.Filter(products, func(p models.Product) bool { return p.Category == "pens" })
//	total := collection.SumInt(items, func(i models.CartItem) int { return i.Price * i.Qty })
package collection

// Map transforms each element of slice s using fn.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Filter returns elements of s for which fn returns true.
func Filter[T any](s []T, fn func(T) bool) []T {
	var out []T
	for _, v := range s {
		if fn(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reject returns elements of s for which fn returns false (inverse of Filter).
func Reject[T any](s []T, fn func(T) bool) []T {
	return Filter(s, func(v T) bool { return !fn(v) })
}

// First returns the first element matching fn, or (zero, false).
func First[T any](s []T, fn func(T) bool) (T, bool) {
	for _, v := range s {
		if fn(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether any element of s satisfies fn.
func Contains[T any](s []T, fn func(T) bool) bool {
	_, ok := First(s, fn)
	return ok
}

// Unique returns s with duplicate elements removed (O(n) via map).
// T must be comparable.
func Unique[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	var out []T
	for _, v := range s {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// Reduce folds s into a single value starting from init.
func Reduce[T, R any](s []T, init R, fn func(R, T) R) R {
	acc := init
	for _, v := range s {
		acc = fn(acc, v)
	}
	return acc
}

// SumInt sums integer values extracted by fn.
func SumInt[T any](s []T, fn func(T) int) int {
	return Reduce(s, 0, func(acc int, v T) int { return acc + fn(v) })
}
