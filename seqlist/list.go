// Package seqlist provides List, the deque-like public façade over an
// order-statistic sequence: indexed access, push/pop at both ends, iterator-
// positioned insert and erase, bulk insert, splice/join between lists, and
// clone.
//
// List is generic over the element type T and a compile-time rebalancing
// strategy.Policy[T] (typically baseline.Strategy[T] or splay.Strategy[T]).
// There is no dynamic dispatch between strategies: the choice is baked into
// the instantiated type, exactly as the strategy design note requires.
package seqlist

import (
	"errors"
	"fmt"

	"github.com/tunococ/ostree/internal/nodealg"
	"github.com/tunococ/ostree/seqtree"
	"github.com/tunococ/ostree/strategy"
)

// --------------------------------------------------------------------------------
// Constants and Errors

// Predefined errors for List operations.
var (
	// ErrIndexOutOfRange indicates a bounds-checked index fell outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")
)

// --------------------------------------------------------------------------------
// Types

// List is an order-statistic sequence: a list-like container addressed by
// ordinal position rather than by key, backed by a size-augmented binary
// tree under strategy S.
type List[T any, S strategy.Policy[T]] struct {
	tree *seqtree.Tree[T]
}

// --------------------------------------------------------------------------------
// Constructors

// New returns an empty List using the default, garbage-collector-backed
// allocator.
func New[T any, S strategy.Policy[T]]() *List[T, S] {
	return &List[T, S]{tree: seqtree.NewTree[T]()}
}

// NewWithAllocator returns an empty List using a caller-supplied allocator.
func NewWithAllocator[T any, S strategy.Policy[T]](alloc seqtree.Allocator[T]) *List[T, S] {
	return &List[T, S]{tree: seqtree.NewTreeWith[T](alloc)}
}

// NewFrom returns a List containing a copy of values, in order.
func NewFrom[T any, S strategy.Policy[T]](values []T) *List[T, S] {
	l := New[T, S]()
	l.Assign(values)
	return l
}

// --------------------------------------------------------------------------------
// Capacity

// Empty reports whether the list holds no elements.
func (l *List[T, S]) Empty() bool { return l.tree.Empty() }

// Len returns the number of elements. Time complexity: O(1).
func (l *List[T, S]) Len() int { return l.tree.Len() }

// Clear removes and destroys every element.
func (l *List[T, S]) Clear() { l.tree.DestroyAllNodes() }

// --------------------------------------------------------------------------------
// Access

// Get returns the element at ordinal position k, applying whatever access-
// time rebalancing strategy S calls for (a splay strategy splays the
// accessed node to root). Panics if k is out of range.
func (l *List[T, S]) Get(k int) T {
	var s S
	return s.NodeAtIndex(l.tree, k).Data
}

// Set overwrites the element at ordinal position k in place. Panics if k is
// out of range.
func (l *List[T, S]) Set(k int, v T) {
	var s S
	s.NodeAtIndex(l.tree, k).Data = v
}

// At is the bounds-checked counterpart to Get, returning ErrIndexOutOfRange
// instead of panicking.
func (l *List[T, S]) At(k int) (T, error) {
	if k < 0 || k >= l.Len() {
		var zero T
		return zero, fmt.Errorf("seqlist: %w [0,%d): %d", ErrIndexOutOfRange, l.Len(), k)
	}
	return l.Get(k), nil
}

// Front returns the first element, or (zero, false) if empty. Does not
// trigger any rebalancing.
func (l *List[T, S]) Front() (T, bool) {
	if l.tree.First == nil {
		var zero T
		return zero, false
	}
	return l.tree.First.Data, true
}

// Back returns the last element, or (zero, false) if empty. Does not trigger
// any rebalancing.
func (l *List[T, S]) Back() (T, bool) {
	if l.tree.Last == nil {
		var zero T
		return zero, false
	}
	return l.tree.Last.Data, true
}

// GetIteratorAtIndex returns an iterator at ordinal position k, applying the
// same access-time rebalancing as Get.
func (l *List[T, S]) GetIteratorAtIndex(k int) seqtree.Iterator[T] {
	var s S
	return l.tree.IteratorAt(s.NodeAtIndex(l.tree, k))
}

// GetFrontIterator returns an iterator at the first element (End if empty).
func (l *List[T, S]) GetFrontIterator() seqtree.Iterator[T] { return l.tree.Begin() }

// GetBackIterator returns an iterator at the last element (End if empty).
func (l *List[T, S]) GetBackIterator() seqtree.Iterator[T] {
	return l.tree.IteratorAt(l.tree.Last)
}

// --------------------------------------------------------------------------------
// Iterators

func (l *List[T, S]) Begin() seqtree.Iterator[T]  { return l.tree.Begin() }
func (l *List[T, S]) End() seqtree.Iterator[T]    { return l.tree.End() }
func (l *List[T, S]) RBegin() seqtree.Iterator[T] { return l.tree.RBegin() }
func (l *List[T, S]) REnd() seqtree.Iterator[T]   { return l.tree.REnd() }

func (l *List[T, S]) CBegin() seqtree.ConstIterator[T]  { return l.tree.ConstBegin() }
func (l *List[T, S]) CEnd() seqtree.ConstIterator[T]    { return l.tree.ConstEnd() }
func (l *List[T, S]) CRBegin() seqtree.ConstIterator[T] { return l.tree.RBegin().AsConst() }
func (l *List[T, S]) CREnd() seqtree.ConstIterator[T]   { return l.tree.REnd().AsConst() }

// --------------------------------------------------------------------------------
// Insertion

// PushFront inserts v as the new first element.
func (l *List[T, S]) PushFront(v T) {
	var s S
	s.EmplaceFront(l.tree, v)
}

// PushBack inserts v as the new last element.
func (l *List[T, S]) PushBack(v T) {
	var s S
	s.EmplaceBack(l.tree, v)
}

// EmplaceFront is PushFront: Go values are always constructed before being
// handed to the container, so there is no distinct in-place form.
func (l *List[T, S]) EmplaceFront(v T) { l.PushFront(v) }

// EmplaceBack is PushBack.
func (l *List[T, S]) EmplaceBack(v T) { l.PushBack(v) }

// Insert inserts v immediately before it, returning an iterator to the new
// element. it must belong to this list.
func (l *List[T, S]) Insert(it seqtree.Iterator[T], v T) seqtree.Iterator[T] {
	mustBelong[T](it, l.tree)
	var s S
	return l.tree.IteratorAt(s.EmplaceBefore(l.tree, it.Node(), v))
}

// Emplace is Insert.
func (l *List[T, S]) Emplace(it seqtree.Iterator[T], v T) seqtree.Iterator[T] {
	return l.Insert(it, v)
}

// InsertAll bulk-inserts values, in order, immediately before it. Inserting
// an empty slice is a no-op that returns it unchanged. it must belong to
// this list.
func (l *List[T, S]) InsertAll(it seqtree.Iterator[T], values []T) seqtree.Iterator[T] {
	mustBelong[T](it, l.tree)
	if len(values) == 0 {
		return it
	}
	var s S
	nodes := s.InsertBefore(l.tree, it.Node(), values)
	return l.tree.IteratorAt(nodes[0])
}

// Assign replaces the list's contents with a copy of values.
func (l *List[T, S]) Assign(values []T) {
	l.Clear()
	l.InsertAll(l.End(), values)
}

// AssignN replaces the list's contents with n copies of v.
func (l *List[T, S]) AssignN(n int, v T) {
	values := make([]T, n)
	for i := range values {
		values[i] = v
	}
	l.Assign(values)
}

// --------------------------------------------------------------------------------
// Removal

// PopFront removes and returns the first element, or (zero, false) if empty.
func (l *List[T, S]) PopFront() (T, bool) {
	v, ok := l.Front()
	if !ok {
		return v, false
	}
	var s S
	s.EraseFront(l.tree)
	return v, true
}

// PopBack removes and returns the last element, or (zero, false) if empty.
func (l *List[T, S]) PopBack() (T, bool) {
	v, ok := l.Back()
	if !ok {
		return v, false
	}
	var s S
	s.EraseBack(l.tree)
	return v, true
}

// Erase removes the element at it, returning an iterator to the element that
// followed it. it must belong to this list and must not already be End.
func (l *List[T, S]) Erase(it seqtree.Iterator[T]) seqtree.Iterator[T] {
	mustBelong[T](it, l.tree)
	n := it.Node()
	if n == nil {
		panic("seqlist: erase of end iterator")
	}
	next := nodealg.Next(n)
	var s S
	s.EraseNode(l.tree, n)
	return l.tree.IteratorAt(next)
}

// EraseRange removes every element in [first, last), returning the
// surviving last unchanged in value (its node may have moved within the
// tree, e.g. under the splay strategy, but still names the same element).
// Both iterators must belong to this list.
func (l *List[T, S]) EraseRange(first, last seqtree.Iterator[T]) seqtree.Iterator[T] {
	mustBelong[T](first, l.tree)
	mustBelong[T](last, l.tree)
	var s S
	s.EraseRange(l.tree, first.Node(), last.Node())
	return l.tree.IteratorAt(last.Node())
}

// --------------------------------------------------------------------------------
// Splicing

// Join moves every element of other into this list, inserted immediately
// before it, leaving other empty. it must belong to this list. Joining an
// empty other is a no-op. Fails with ErrAllocatorMismatch if the two lists'
// allocators cannot interchange nodes.
func (l *List[T, S]) Join(it seqtree.Iterator[T], other *List[T, S]) error {
	mustBelong[T](it, l.tree)
	if other.tree.Empty() {
		return nil
	}
	root := other.tree.Root
	if err := l.tree.LinkSubtreeBefore(it.Node(), root, other.tree.Alloc); err != nil {
		return err
	}
	other.tree.Root, other.tree.First, other.tree.Last = nil, nil, nil
	return nil
}

// JoinFront moves every element of other to the front of this list.
func (l *List[T, S]) JoinFront(other *List[T, S]) error { return l.Join(l.Begin(), other) }

// JoinBack moves every element of other to the back of this list.
func (l *List[T, S]) JoinBack(other *List[T, S]) error { return l.Join(l.End(), other) }

// UnlinkSubtreeAt detaches the subtree rooted at the node currently at
// ordinal position k (without rank-descending through the strategy, so no
// rebalancing is triggered) and returns it as a new, independent List
// sharing this list's allocator. This is the structural inverse of Join: it
// moves nodes rather than copying them, so the source list loses exactly
// that subtree's elements.
func (l *List[T, S]) UnlinkSubtreeAt(k int) *List[T, S] {
	n := nodealg.NodeAtIndex(l.tree.Root, k)
	l.tree.UnlinkSubtree(n)
	nt := seqtree.NewTreeWith[T](l.tree.Alloc)
	nt.Root = n
	nt.First = nodealg.Leftmost(n)
	nt.Last = nodealg.Rightmost(n)
	return &List[T, S]{tree: nt}
}

// --------------------------------------------------------------------------------
// Lifecycle

// Clone returns a deep copy: every element is duplicated into freshly
// allocated nodes, and subsequent mutation of either list leaves the other
// unchanged.
func (l *List[T, S]) Clone() *List[T, S] {
	return &List[T, S]{tree: l.tree.Clone()}
}

// Swap exchanges the entire contents (and allocators) of l and other in
// O(1), without touching any node.
func (l *List[T, S]) Swap(other *List[T, S]) {
	l.tree, other.tree = other.tree, l.tree
}

// --------------------------------------------------------------------------------
// Container interface

// Values returns a snapshot slice of every element, in order.
func (l *List[T, S]) Values() []T {
	values := make([]T, 0, l.Len())
	for it := l.Begin(); it.Node() != nil; it = it.Next() {
		values = append(values, it.Value())
	}
	return values
}

// String renders the underlying tree shape; see seqtree.Tree.String.
func (l *List[T, S]) String() string { return l.tree.String() }

// --------------------------------------------------------------------------------
// Internal helpers

// treeRef is satisfied by both seqtree.Iterator and seqtree.ConstIterator.
type treeRef[T any] interface {
	Tree() *seqtree.Tree[T]
}

// mustBelong panics if it was not obtained from t, mirroring the contract
// that cross-handle iterator use is a programming error, not a runtime
// fault.
func mustBelong[T any](it treeRef[T], t *seqtree.Tree[T]) {
	if it.Tree() != t {
		panic("seqlist: iterator does not belong to this list")
	}
}
