// Package seqlist: functional-style traversal helpers for List.
package seqlist

import (
	"github.com/tunococ/ostree/container"
	"github.com/tunococ/ostree/strategy/baseline"
)

var _ container.EnumerableWithIndex[int] = (*List[int, baseline.Strategy[int]])(nil)

// Each invokes fn once per element, in ordinal order, passing the element's
// index and value.
func (l *List[T, S]) Each(fn func(index int, value T)) {
	i := 0
	for it := l.Begin(); !it.Equal(l.End()); it = it.Next() {
		fn(i, it.Value())
		i++
	}
}

// Any reports whether fn returns true for at least one element, stopping at
// the first match.
func (l *List[T, S]) Any(fn func(index int, value T) bool) bool {
	i := 0
	for it := l.Begin(); !it.Equal(l.End()); it = it.Next() {
		if fn(i, it.Value()) {
			return true
		}
		i++
	}
	return false
}

// All reports whether fn returns true for every element, stopping at the
// first failure.
func (l *List[T, S]) All(fn func(index int, value T) bool) bool {
	i := 0
	for it := l.Begin(); !it.Equal(l.End()); it = it.Next() {
		if !fn(i, it.Value()) {
			return false
		}
		i++
	}
	return true
}

// Find returns the index and value of the first element for which fn returns
// true, or (-1, zero value) if none does.
func (l *List[T, S]) Find(fn func(index int, value T) bool) (int, T) {
	i := 0
	for it := l.Begin(); !it.Equal(l.End()); it = it.Next() {
		if fn(i, it.Value()) {
			return i, it.Value()
		}
		i++
	}
	var zero T
	return -1, zero
}
