package seqtree

import "github.com/tunococ/ostree/internal/nodealg"

// Iterator is a bidirectional, random-access cursor into a Tree. A forward
// iterator (reverse == false) walks in increasing ordinal order; a reverse
// iterator walks in decreasing order. Both variants support direct indexed
// jumps (Add) in addition to single-step Next/Prev, since every jump is just
// another rank descent from the tree root.
//
// The zero value is not meaningful; obtain one from a Tree's Begin, End,
// RBegin, REnd, or At.
type Iterator[T any] struct {
	tree    *Tree[T]
	node    *nodealg.Node[T]
	reverse bool
}

// Begin returns an iterator at the first element, or equal to End if the
// tree is empty.
func (t *Tree[T]) Begin() Iterator[T] { return Iterator[T]{tree: t, node: t.First} }

// End returns the forward one-past-the-last iterator.
func (t *Tree[T]) End() Iterator[T] { return Iterator[T]{tree: t} }

// RBegin returns a reverse iterator at the last element, or equal to REnd if
// the tree is empty.
func (t *Tree[T]) RBegin() Iterator[T] { return Iterator[T]{tree: t, node: t.Last, reverse: true} }

// REnd returns the reverse one-before-the-first iterator.
func (t *Tree[T]) REnd() Iterator[T] { return Iterator[T]{tree: t, reverse: true} }

// At returns a forward iterator positioned at ordinal index k, where k may
// equal Len() to mean End.
func (t *Tree[T]) At(k int) Iterator[T] { return t.cursor(k, false) }

// IteratorAt returns a forward iterator referencing n directly (n == nil
// means End), without any rank descent. Useful when the caller already holds
// the node, e.g. straight out of a strategy operation.
func (t *Tree[T]) IteratorAt(n *nodealg.Node[T]) Iterator[T] {
	return Iterator[T]{tree: t, node: n}
}

// cursor resolves a logical index (forward-indexed: 0..Len()-1, or Len() for
// end; reverse-indexed via the same convention relative to reverse order, so
// Len() is rend) to an Iterator, panicking if idx falls outside [0, Len()].
func (t *Tree[T]) cursor(idx int, reverse bool) Iterator[T] {
	n := t.Len()
	if reverse {
		if idx == n {
			return Iterator[T]{tree: t, reverse: true}
		}
		if idx < 0 || idx > n {
			panic("seqtree: iterator out of range")
		}
		return Iterator[T]{tree: t, node: nodealg.NodeAtIndex(t.Root, n-1-idx), reverse: true}
	}
	if idx == n {
		return Iterator[T]{tree: t}
	}
	if idx < 0 || idx > n {
		panic("seqtree: iterator out of range")
	}
	return Iterator[T]{tree: t, node: nodealg.NodeAtIndex(t.Root, idx)}
}

// Node returns the underlying node, or nil if it is an end/rend sentinel.
// Exposed for package seqlist and the strategy implementations, which need
// the raw node to splice or swap.
func (it Iterator[T]) Node() *nodealg.Node[T] { return it.node }

// Tree returns the tree this iterator was obtained from.
func (it Iterator[T]) Tree() *Tree[T] { return it.tree }

// Reverse reports whether this iterator walks in decreasing ordinal order.
func (it Iterator[T]) Reverse() bool { return it.reverse }

// Value returns the referenced element. Panics if it is an end/rend
// sentinel.
func (it Iterator[T]) Value() T {
	if it.node == nil {
		panic("seqtree: dereference of end iterator")
	}
	return it.node.Data
}

// SetValue overwrites the referenced element in place. Panics if it is an
// end/rend sentinel.
func (it Iterator[T]) SetValue(v T) {
	if it.node == nil {
		panic("seqtree: dereference of end iterator")
	}
	it.node.Data = v
}

// Index returns its ordinal position (0-based) in its own direction of
// travel: the forward ordinal for a forward iterator, Len()-1 minus the
// forward ordinal for a reverse one. Both End and REnd report Len().
func (it Iterator[T]) Index() int {
	if it.node != nil {
		idx := nodealg.IndexOf(it.node)
		if it.reverse {
			return it.tree.Len() - 1 - idx
		}
		return idx
	}
	return it.tree.Len()
}

// Add returns the iterator k positions further along in this iterator's own
// direction (negative k moves backward). Panics if the result would fall
// before the first element or past the end sentinel of that direction.
func (it Iterator[T]) Add(k int) Iterator[T] {
	return it.tree.cursor(it.Index()+k, it.reverse)
}

// Next returns the iterator one position further along.
func (it Iterator[T]) Next() Iterator[T] { return it.Add(1) }

// Prev returns the iterator one position back.
func (it Iterator[T]) Prev() Iterator[T] { return it.Add(-1) }

// Sub returns the number of steps from other to it along their shared
// direction (it.Index() - other.Index()).
func (it Iterator[T]) Sub(other Iterator[T]) int { return it.Index() - other.Index() }

// Equal reports whether it and other reference the same element of the same
// tree in the same direction.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.tree == other.tree && it.node == other.node && it.reverse == other.reverse
}

// Less reports whether it precedes other in it's own iteration direction.
func (it Iterator[T]) Less(other Iterator[T]) bool { return it.Index() < other.Index() }

// MakeReverse returns an iterator over the adjacent element in the opposite
// direction, following the STL base()/make_reverse_iterator contract:
// *it.MakeReverse() == *Prev(it) when it is a forward iterator, and the
// inverse step when it is already reverse. It is not the same element
// restated backward; it is the element one step behind it in its own
// direction of travel.
func (it Iterator[T]) MakeReverse() Iterator[T] {
	if it.reverse {
		if it.node == nil {
			return Iterator[T]{tree: it.tree, node: it.tree.First}
		}
		return Iterator[T]{tree: it.tree, node: nodealg.Next(it.node)}
	}
	if it.node == nil {
		return Iterator[T]{tree: it.tree, node: it.tree.Last, reverse: true}
	}
	return Iterator[T]{tree: it.tree, node: nodealg.Prev(it.node), reverse: true}
}

// AsConst returns a read-only view of it over the same position.
func (it Iterator[T]) AsConst() ConstIterator[T] {
	return ConstIterator[T]{tree: it.tree, node: it.node, reverse: it.reverse}
}

// ConstIterator is Iterator with SetValue removed, for callers that should
// only observe a sequence, not mutate it in place.
type ConstIterator[T any] struct {
	tree    *Tree[T]
	node    *nodealg.Node[T]
	reverse bool
}

func (t *Tree[T]) ConstBegin() ConstIterator[T] { return t.Begin().AsConst() }
func (t *Tree[T]) ConstEnd() ConstIterator[T]   { return t.End().AsConst() }

func (it ConstIterator[T]) Node() *nodealg.Node[T] { return it.node }
func (it ConstIterator[T]) Tree() *Tree[T]         { return it.tree }
func (it ConstIterator[T]) Reverse() bool          { return it.reverse }

func (it ConstIterator[T]) Value() T {
	if it.node == nil {
		panic("seqtree: dereference of end iterator")
	}
	return it.node.Data
}

func (it ConstIterator[T]) Index() int {
	return it.asMutable().Index()
}

func (it ConstIterator[T]) Add(k int) ConstIterator[T] {
	return it.asMutable().Add(k).AsConst()
}

func (it ConstIterator[T]) Next() ConstIterator[T] { return it.Add(1) }
func (it ConstIterator[T]) Prev() ConstIterator[T] { return it.Add(-1) }

func (it ConstIterator[T]) Sub(other ConstIterator[T]) int {
	return it.asMutable().Sub(other.asMutable())
}

func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.tree == other.tree && it.node == other.node && it.reverse == other.reverse
}

func (it ConstIterator[T]) Less(other ConstIterator[T]) bool {
	return it.Index() < other.Index()
}

func (it ConstIterator[T]) MakeReverse() ConstIterator[T] {
	return it.asMutable().MakeReverse().AsConst()
}

func (it ConstIterator[T]) asMutable() Iterator[T] {
	return Iterator[T]{tree: it.tree, node: it.node, reverse: it.reverse}
}
