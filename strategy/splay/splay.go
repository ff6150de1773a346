// Package splay implements the splay-tree rebalancing strategy: every access
// or structural operation brings the node nearest the disturbance toward the
// root, giving amortised logarithmic cost per operation and rewarding
// locality of reference, at the price of no worst-case bound on any single
// operation.
package splay

import (
	"github.com/tunococ/ostree/internal/nodealg"
	"github.com/tunococ/ostree/seqtree"
	"github.com/tunococ/ostree/strategy/baseline"
)

// Strategy is the zero-size splay Policy implementation.
type Strategy[T any] struct{}

// NodeAtIndex rank-descends to the node at k, then splays it to root.
func (Strategy[T]) NodeAtIndex(t *seqtree.Tree[T], k int) *nodealg.Node[T] {
	n := nodealg.NodeAtIndex(t.Root, k)
	t.Splay(n, nil)
	return n
}

// EmplaceFront splays the current first to root (so it has no left child by
// construction), then attaches the new node as its left child. On an empty
// tree there is nothing to splay; LinkAtIndex handles that case directly.
func (Strategy[T]) EmplaceFront(t *seqtree.Tree[T], data T) *nodealg.Node[T] {
	if t.Root != nil {
		t.Splay(t.First, nil)
	}
	return t.LinkAtIndex(0, data)
}

// EmplaceBack is the mirror image of EmplaceFront on last.
func (Strategy[T]) EmplaceBack(t *seqtree.Tree[T], data T) *nodealg.Node[T] {
	if t.Root != nil {
		t.Splay(t.Last, nil)
	}
	return t.LinkAtIndex(t.Len(), data)
}

// EmplaceBefore links a new node immediately before target, then splays the
// new node to root.
func (Strategy[T]) EmplaceBefore(t *seqtree.Tree[T], target *nodealg.Node[T], data T) *nodealg.Node[T] {
	n := t.Alloc.New(data)
	t.LinkBefore(target, n, true)
	t.Splay(n, nil)
	return n
}

// InsertBefore delegates the bulk chain-build to the baseline strategy, then
// splays the tail of the inserted run (the node nearest target) to root.
func (Strategy[T]) InsertBefore(t *seqtree.Tree[T], target *nodealg.Node[T], data []T) []*nodealg.Node[T] {
	nodes := (baseline.Strategy[T]{}).InsertBefore(t, target, data)
	if len(nodes) > 0 {
		t.Splay(nodes[len(nodes)-1], nil)
	}
	return nodes
}

// EraseFront splays the first element to root, then erases it.
func (Strategy[T]) EraseFront(t *seqtree.Tree[T]) {
	if t.Root == nil {
		return
	}
	t.Splay(t.First, nil)
	t.Erase(t.First, true, true)
}

// EraseBack splays the last element to root, then erases it.
func (Strategy[T]) EraseBack(t *seqtree.Tree[T]) {
	if t.Root == nil {
		return
	}
	t.Splay(t.Last, nil)
	t.Erase(t.Last, true, true)
}

// EraseNode erases n, then splays whichever node Erase identified as nearest
// the disturbance back to root.
func (Strategy[T]) EraseNode(t *seqtree.Tree[T], n *nodealg.Node[T]) {
	refresh := t.Erase(n, true, true)
	if refresh != nil {
		t.Splay(refresh, nil)
	}
}

// EraseRange isolates [begin, end) as a single subtree via splaying, then
// detaches and destroys it in one post-order walk. Four cases depending on
// whether end is past-the-end and whether begin is the current first
// element:
//
//   - end present, a predecessor of begin exists: splay end to root, splay
//     prev(begin) beneath it; the range is prev(begin)'s right subtree.
//   - end present, begin == first (no predecessor): splay end to root; the
//     range is end's left subtree.
//   - end absent (erase through the last element), a predecessor exists:
//     splay prev(begin) to root; the range is its right subtree.
//   - end absent and begin == first: the range is the whole tree.
func (Strategy[T]) EraseRange(t *seqtree.Tree[T], begin, end *nodealg.Node[T]) {
	if begin == end {
		return
	}

	var prev *nodealg.Node[T]
	if begin != nil {
		prev = nodealg.Prev(begin)
	}

	switch {
	case end != nil && prev != nil:
		t.Splay(end, nil)
		t.Splay(prev, end)
		detachAndDestroy(t, prev.Right)
	case end != nil && prev == nil:
		t.Splay(end, nil)
		detachAndDestroy(t, end.Left)
	case end == nil && prev != nil:
		t.Splay(prev, nil)
		detachAndDestroy(t, prev.Right)
	default:
		t.DestroyAllNodes()
	}
}

func detachAndDestroy[T any](t *seqtree.Tree[T], subRoot *nodealg.Node[T]) {
	if subRoot == nil {
		return
	}
	t.UnlinkSubtree(subRoot)
	seqtree.DestroySubtree(t.Alloc, subRoot)
}
