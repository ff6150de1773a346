// Package container defines the small set of cross-cutting interfaces that
// seqlist implements: a base Container interface plus indexed enumerable and
// JSON codec contracts. There is no iterator interface here; seqtree's
// Iterator is a concrete type.
//
// There is deliberately no key-value or sorting-oriented interface here (unlike
// a general-purpose data-structures library): an order-statistic sequence has
// no notion of key order, only ordinal position, so those concerns are not part
// of this package's surface.
package container

// Container is the fundamental interface satisfied by every sequence container
// in this module.
type Container[T any] interface {
	// Empty reports whether the container has no elements.
	Empty() bool

	// Len returns the number of elements in the container.
	Len() int

	// Clear removes all elements, resetting the container to empty.
	Clear()

	// Values returns a slice of all elements in ordinal order.
	Values() []T

	// String returns a debug representation of the container.
	String() string
}
