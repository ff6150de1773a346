// Package baseline implements the unbalanced rebalancing strategy: every
// operation is the obvious sequence of tree-handle primitives, with no
// rebalancing policy; the only reshaping is the pair of splays EraseRange
// uses to isolate the erased span. Suitable when access patterns are not adversarial,
// or when the caller wants predictable pointer stability over the tree's
// shape. Per the container's non-goals, this strategy offers no bound on
// worst-case height.
package baseline

import (
	"github.com/tunococ/ostree/internal/nodealg"
	"github.com/tunococ/ostree/seqtree"
)

// Strategy is the zero-size baseline Policy implementation.
type Strategy[T any] struct{}

// NodeAtIndex rank-descends to the node at k, without any rebalancing.
func (Strategy[T]) NodeAtIndex(t *seqtree.Tree[T], k int) *nodealg.Node[T] {
	return nodealg.NodeAtIndex(t.Root, k)
}

// EmplaceFront links a new node at index 0. LinkAtIndex already special-cases
// an empty tree, so there is nothing extra to do here.
func (Strategy[T]) EmplaceFront(t *seqtree.Tree[T], data T) *nodealg.Node[T] {
	return t.LinkAtIndex(0, data)
}

// EmplaceBack links a new node at the end.
func (Strategy[T]) EmplaceBack(t *seqtree.Tree[T], data T) *nodealg.Node[T] {
	return t.LinkAtIndex(t.Len(), data)
}

// EmplaceBefore links a new node immediately before target (or at the end if
// target is nil).
func (Strategy[T]) EmplaceBefore(t *seqtree.Tree[T], target *nodealg.Node[T], data T) *nodealg.Node[T] {
	n := t.Alloc.New(data)
	t.LinkBefore(target, n, true)
	return n
}

// InsertBefore builds the new nodes into a single right-leaning chain first
// (so their own subtree sizes only need computing once, bottom-up), then
// links the chain's head as a single attachment before target. This makes
// bulk insertion linear in len(data) rather than len(data) separate
// insert-position descents.
func (Strategy[T]) InsertBefore(t *seqtree.Tree[T], target *nodealg.Node[T], data []T) []*nodealg.Node[T] {
	if len(data) == 0 {
		return nil
	}

	nodes := make([]*nodealg.Node[T], len(data))
	for i, d := range data {
		nodes[i] = t.Alloc.New(d)
	}
	for i := 0; i < len(nodes)-1; i++ {
		nodes[i].Right = nodes[i+1]
		nodes[i+1].Parent = nodes[i]
	}
	for i := len(nodes) - 1; i >= 0; i-- {
		nodealg.UpdateSize(nodes[i])
	}

	t.LinkBefore(target, nodes[0], true)
	return nodes
}

// EraseFront removes the first element.
func (Strategy[T]) EraseFront(t *seqtree.Tree[T]) {
	t.Erase(t.First, true, true)
}

// EraseBack removes the last element.
func (Strategy[T]) EraseBack(t *seqtree.Tree[T]) {
	t.Erase(t.Last, true, true)
}

// EraseNode removes n.
func (Strategy[T]) EraseNode(t *seqtree.Tree[T], n *nodealg.Node[T]) {
	t.Erase(n, true, true)
}

// EraseRange removes every node from begin up to (not including) end by
// isolating the whole span as a single subtree, then discarding it in one
// post-order walk, rather than erasing node by node. Isolating the span uses
// the tree handle's own Splay primitive to lift its two boundary nodes in
// front of and behind the span — this is a one-time reshaping bounded by the
// tree's height, not an ongoing rebalancing policy; nodes outside the erased
// span keep their in-order sequence, though the splays rotate the nodes on
// the two boundary nodes' paths to the root. This brings the cost to O(height + count) instead of
// O(height * count) for a loop of point erases. Four cases, mirroring
// whichever of the two boundaries are present:
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
