// Package seqtree implements the tree handle layer of an order-statistic
// sequence: a size-augmented binary tree exposed through positional
// operations (link, unlink, erase, splay, rotate, swap) plus the bidirectional
// iterator pairs consumed by package seqlist.
//
// Besides the node shape and its allocator, a Tree holds three pointers:
// the tree's root, and cached pointers to its first and last nodes so that
// push_front/push_back and begin/end iterator construction never need a
// descent. Node identity, child/parent links, and subtree size live one layer
// down in package nodealg, which has no notion of a tree handle at all.
package seqtree

import (
	"errors"
	"strings"

	"github.com/xlab/treeprint"

	"github.com/tunococ/ostree/internal/nodealg"
)

// ErrAllocatorMismatch is returned by operations that attempt to move or
// splice a subtree between two trees whose allocators are not interchangeable
// (see Allocator.PropagateOnSwap).
var ErrAllocatorMismatch = errors.New("seqtree: source and destination allocators are not interchangeable")

// Allocator is the node-construction capability a Tree delegates to. Most
// callers never provide one explicitly: NewTree installs DefaultAllocator,
// which allocates through the Go runtime and frees nothing (the garbage
// collector reclaims detached nodes once the last reference to them is
// dropped).
//
// A custom Allocator matters only when nodes come from somewhere other than
// the Go heap, e.g. a pool. PropagateOnCopyAssign and PropagateOnSwap mirror
// the allocator-awareness rules a pooling container needs: whether an
// allocator should travel with the tree's data on clone or on swap, or stay
// put and leave the destination to allocate its own nodes.
type Allocator[T any] interface {
	New(data T) *nodealg.Node[T]
	Free(n *nodealg.Node[T])
	PropagateOnCopyAssign() bool
	PropagateOnSwap() bool
	SelectOnCopy() Allocator[T]
}

type defaultAllocator[T any] struct{}

func (defaultAllocator[T]) New(data T) *nodealg.Node[T]      { return nodealg.New(data) }
func (defaultAllocator[T]) Free(n *nodealg.Node[T])          {}
func (defaultAllocator[T]) PropagateOnCopyAssign() bool      { return true }
func (defaultAllocator[T]) PropagateOnSwap() bool            { return true }
func (defaultAllocator[T]) SelectOnCopy() Allocator[T]       { return defaultAllocator[T]{} }

// DefaultAllocator returns the garbage-collector-backed Allocator used when
// no custom one is supplied.
func DefaultAllocator[T any]() Allocator[T] { return defaultAllocator[T]{} }

// Tree is the handle owning a size-augmented binary tree's root plus cached
// endpoints. The zero Tree is not usable; construct one with NewTree or
// NewTreeWith.
type Tree[T any] struct {
	Root, First, Last *nodealg.Node[T]
	Alloc             Allocator[T]
}

// NewTree returns an empty tree using DefaultAllocator.
func NewTree[T any]() *Tree[T] {
	return &Tree[T]{Alloc: DefaultAllocator[T]()}
}

// NewTreeWith returns an empty tree using a caller-supplied allocator.
func NewTreeWith[T any](alloc Allocator[T]) *Tree[T] {
	return &Tree[T]{Alloc: alloc}
}

// Empty reports whether the tree holds no nodes.
func (t *Tree[T]) Empty() bool { return t.Root == nil }

// Len returns the number of nodes in the tree. O(1): reads the cached size at
// the root.
func (t *Tree[T]) Len() int { return t.Root.Size() }

// position names a gap to insert into: either the tree is empty (parent is
// nil) or the new node becomes the named child of parent.
type position[T any] struct {
	parent *nodealg.Node[T]
	left   bool
}

// InsertPositionAt locates the gap at ordinal position k without inserting
// anything. k == Len() is valid and names the gap after the last element.
func (t *Tree[T]) InsertPositionAt(k int) position[T] {
	if t.Root == nil {
		return position[T]{}
	}
	p, left := nodealg.InsertPosition(t.Root, k)
	return position[T]{parent: p, left: left}
}

// Link attaches n (a single node or the root of a whole subtree) at pos and
// refreshes the first/last cache. If updateSizes is true, sizes are
// recomputed from n's new parent up to the root; callers linking a subtree
// whose own size is already correct, followed by several more links, may
// prefer to batch a single UpdateSizesUpward call afterward instead.
func (t *Tree[T]) Link(pos position[T], n *nodealg.Node[T], updateSizes bool) {
	if pos.parent == nil {
		t.Root = n
		n.Parent = nil
		t.First = nodealg.Leftmost(n)
		t.Last = nodealg.Rightmost(n)
		return
	}

	if pos.left {
		pos.parent.Left = n
	} else {
		pos.parent.Right = n
	}
	n.Parent = pos.parent

	if pos.parent == t.First && pos.left {
		t.First = nodealg.Leftmost(n)
	}
	if pos.parent == t.Last && !pos.left {
		t.Last = nodealg.Rightmost(n)
	}

	if updateSizes {
		nodealg.UpdateSizesUpward(pos.parent)
	}
}

// LinkAtIndex constructs a node from data through the tree's allocator and
// links it at ordinal position k, returning the new node.
func (t *Tree[T]) LinkAtIndex(k int, data T) *nodealg.Node[T] {
	n := t.Alloc.New(data)
	t.Link(t.InsertPositionAt(k), n, true)
	return n
}

// Unlink detaches n's whole subtree from the tree, leaving n (and its
// descendants) with no Parent. It does not destroy n; the caller decides
// whether to re-link it elsewhere or hand it to Erase/the allocator.
func (t *Tree[T]) Unlink(n *nodealg.Node[T], updateSizes bool) {
	p := n.Parent
	firstUnder := nodealg.IsAncestorOrSelf(n, t.First)
	lastUnder := nodealg.IsAncestorOrSelf(n, t.Last)

	if p == nil {
		t.Root = nil
		t.First = nil
		t.Last = nil
		return
	}

	if p.Left == n {
		p.Left = nil
	} else {
		p.Right = nil
	}
	n.Parent = nil

	if firstUnder {
		t.First = p
	}
	if lastUnder {
		t.Last = p
	}

	if updateSizes {
		nodealg.UpdateSizesUpward(p)
	}
}

// Erase removes n from the tree entirely, preserving the in-order sequence of
// the remaining nodes, and hands n to the allocator for destruction if
// destroy is true. It returns the node nearest the disturbance that the
// splay strategy re-splays after an erase; baseline callers may ignore it.
func (t *Tree[T]) Erase(n *nodealg.Node[T], destroy, updateSizes bool) *nodealg.Node[T] {
	wasFirst := n == t.First
	wasLast := n == t.Last
	wasRoot := n == t.Root

	var newFirst, newLast *nodealg.Node[T]
	if wasFirst {
		newFirst = nodealg.Next(n)
	}
	if wasLast {
		newLast = nodealg.Prev(n)
	}

	replacement, refreshFrom := nodealg.Erase(n)

	if wasRoot {
		t.Root = replacement
	}
	if wasFirst {
		t.First = newFirst
	}
	if wasLast {
		t.Last = newLast
	}

	if updateSizes {
		nodealg.UpdateSizesUpward(refreshFrom)
	}
	if destroy {
		t.Alloc.Free(n)
	}
	return refreshFrom
}

// LinkBefore attaches n (possibly a subtree root) immediately before target
// in in-order sequence. target == nil attaches at the very end.
func (t *Tree[T]) LinkBefore(target, n *nodealg.Node[T], updateSizes bool) {
	t.Link(t.insertPositionBefore(target), n, updateSizes)
}

// insertPositionBefore implements the node-level variant of insert-position
// descent: (target, left) if target has no left child, else
// (prev(target), right). target == nil means "at the very end".
func (t *Tree[T]) insertPositionBefore(target *nodealg.Node[T]) position[T] {
	if target == nil {
		if t.Last == nil {
			return position[T]{}
		}
		return position[T]{parent: t.Last, left: false}
	}
	if target.Left == nil {
		return position[T]{parent: target, left: true}
	}
	return position[T]{parent: nodealg.Prev(target), left: false}
}

// Splay lifts n until its parent is top (top == nil lifts n all the way to
// the tree's root, updating t.Root).
func (t *Tree[T]) Splay(n, top *nodealg.Node[T]) {
	nodealg.Splay(n, top, nil)
	if top == nil {
		t.Root = n
	}
}

// RotateLeft rotates n down and to the left, fixing up Root if n was it.
func (t *Tree[T]) RotateLeft(n *nodealg.Node[T]) {
	wasRoot := n == t.Root
	newSub := nodealg.RotateLeft(n)
	nodealg.UpdateSize(n)
	nodealg.UpdateSize(newSub)
	if wasRoot {
		t.Root = newSub
	}
}

// RotateRight rotates n down and to the right, fixing up Root if n was it.
func (t *Tree[T]) RotateRight(n *nodealg.Node[T]) {
	wasRoot := n == t.Root
	newSub := nodealg.RotateRight(n)
	nodealg.UpdateSize(n)
	nodealg.UpdateSize(newSub)
	if wasRoot {
		t.Root = newSub
	}
}

// SwapNodes exchanges the tree positions of a and b (which may belong to the
// same tree or two different trees sharing an interchangeable allocator),
// fixing up whichever of Root/First/Last pointed at either one.
func (t *Tree[T]) SwapNodes(other *Tree[T], a, b *nodealg.Node[T]) {
	if a == b && t == other {
		return
	}

	aRoot, bRoot := a == t.Root, b == other.Root
	aFirst, bFirst := a == t.First, b == other.First
	aLast, bLast := a == t.Last, b == other.Last

	nodealg.Swap(a, b)

	if aRoot {
		t.Root = b
	}
	if bRoot {
		other.Root = a
	}
	if aFirst {
		t.First = b
	}
	if bFirst {
		other.First = a
	}
	if aLast {
		t.Last = b
	}
	if bLast {
		other.Last = a
	}
}

// Clone returns a deep copy of the tree: every node is reconstructed through
// the new tree's allocator (Alloc.SelectOnCopy()), and subtree sizes are
// copied verbatim rather than recomputed.
func (t *Tree[T]) Clone() *Tree[T] {
	nt := &Tree[T]{Alloc: t.Alloc.SelectOnCopy()}
	nt.Root = nodealg.Clone(t.Root, nt.Alloc.New)
	nt.First = nodealg.Leftmost(nt.Root)
	nt.Last = nodealg.Rightmost(nt.Root)
	return nt
}

// LinkSubtreeBefore grafts an entire detached subtree (as produced by a
// prior UnlinkSubtree) into this tree immediately before target (target ==
// nil grafts at the very end).
//
// root is first rotated down to its own leftmost node, which becomes the
// subtree's new root before grafting. This costs nothing asymptotically (the
// rotation count is bounded by root's original left height) and makes the
// attachment's ordinal position predictable: the grafted subtree's root ends
// up at exactly the ordinal index target occupied before the graft, so a
// later UnlinkSubtree at that same index recovers precisely this subtree.
//
// This is deliberately the only public way to attach a foreign subtree: the
// source tree's root is consumed, mirroring a move rather than a copy. The
// subtree must come from a tree whose allocator this tree's allocator can
// interchange with (PropagateOnSwap); otherwise ErrAllocatorMismatch is
// returned and nothing is linked.
func (t *Tree[T]) LinkSubtreeBefore(target, root *nodealg.Node[T], sourceAlloc Allocator[T]) error {
	if !t.Alloc.PropagateOnSwap() || !sourceAlloc.PropagateOnSwap() {
		return ErrAllocatorMismatch
	}
	for root.Left != nil {
		promoted := nodealg.RotateRight(root)
		nodealg.UpdateSize(root)
		nodealg.UpdateSize(promoted)
		root = promoted
	}
	t.LinkBefore(target, root, true)
	return nil
}

// UnlinkSubtree detaches and returns the whole subtree rooted at n, ready to
// be handed to another tree's LinkSubtreeBefore. It is Unlink with
// update_sizes always on, named separately to mirror the move-only subtree-
// transfer pairing with LinkSubtreeBefore.
func (t *Tree[T]) UnlinkSubtree(n *nodealg.Node[T]) *nodealg.Node[T] {
	t.Unlink(n, true)
	return n
}

// DestroyAllNodes frees every node in the tree through the allocator and
// resets the handle to empty. It is the low-level primitive that releases
// node storage; Clear on the seqlist façade delegates to it.
func (t *Tree[T]) DestroyAllNodes() {
	DestroySubtree(t.Alloc, t.Root)
	t.Root, t.First, t.Last = nil, nil, nil
}

// DestroySubtree frees every node in the subtree rooted at n (post-order)
// through alloc. n must already be detached from any tree handle; this is
// the primitive a strategy uses after UnlinkSubtree to discard a range it
// isolated structurally.
func DestroySubtree[T any](alloc Allocator[T], n *nodealg.Node[T]) {
	if n == nil {
		return
	}
	DestroySubtree(alloc, n.Left)
	DestroySubtree(alloc, n.Right)
	alloc.Free(n)
}

// String renders the tree as an indented tree diagram, root at top, each
// child branch labeled with the side it occupies.
func (t *Tree[T]) String() string {
	if t.Root == nil {
		return "(empty)"
	}
	root := treeprint.NewWithRoot(t.Root.Data)
	addChildren(root, t.Root)

	return strings.TrimSuffix(root.String(), "\n")
}

func addChildren[T any](branch treeprint.Tree, n *nodealg.Node[T]) {
	if n.Left != nil {
		addChildren(branch.AddMetaBranch("L", n.Left.Data), n.Left)
	}
	if n.Right != nil {
		addChildren(branch.AddMetaBranch("R", n.Right.Data), n.Right)
	}
}
