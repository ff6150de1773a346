// Package container provides the indexed enumerable contract shared by
// seqlist.
package container

// EnumerableWithIndex is satisfied by ordinal sequences that support
// functional-style iteration, predicate search, and existence checks.
type EnumerableWithIndex[T any] interface {
	// Each invokes fn once per element, in ordinal order, passing the
	// element's index and value.
	Each(fn func(index int, value T))

	// Any reports whether fn returns true for at least one element, stopping
	// at the first match.
	Any(fn func(index int, value T) bool) bool

	// All reports whether fn returns true for every element, stopping at the
	// first failure.
	All(fn func(index int, value T) bool) bool

	// Find returns the index and value of the first element for which fn
	// returns true, or (-1, zero value) if none does.
	Find(fn func(index int, value T) bool) (int, T)
}
