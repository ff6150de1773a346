// Package nodealg implements the size-augmented binary tree node algebra:
// rank queries, structural mutations, rotations, splay steps, in-place node
// swap, and erase-by-splice.
//
// Every function here operates on bare *Node[T] pointers and has no notion
// of a tree handle, a cached first/last endpoint, or an allocator — those
// live one layer up, in package seqtree. Keeping this package handle-free
// mirrors the teacher's split between Node methods (grandparent, uncle,
// sibling) and Tree methods (rotateLeft, replaceNode) in rbtree.go, pushed
// further here because nearly every structural operation in this spec is
// expressed purely in terms of node pointers.
package nodealg

// Node is one element of a size-augmented binary tree. Left, Right, and
// Parent are nil where absent; Parent is nil iff the node is a tree root.
// size is the count of nodes in the subtree rooted here, including the
// node itself, and is kept unexported because every mutator in this
// package is responsible for refreshing it explicitly — callers outside
// the package read it only through Size.
type Node[T any] struct {
	Left, Right, Parent *Node[T]
	Data                T
	size                int
}

// New returns a freshly allocated, unlinked node with size 1.
func New[T any](data T) *Node[T] {
	return &Node[T]{Data: data, size: 1}
}

// Size returns the subtree size rooted at n, or 0 if n is nil. Safe to call
// on a nil receiver.
func (n *Node[T]) Size() int {
	if n == nil {
		return 0
	}

	return n.size
}

// IndexOf returns the ordinal position of n within its tree, computed by
// walking parent pointers to the root. Cost: path length.
func IndexOf[T any](n *Node[T]) int {
	acc := n.Left.Size()

	for cur := n; cur.Parent != nil; cur = cur.Parent {
		p := cur.Parent
		if cur == p.Right {
			acc += p.Left.Size() + 1
		}
	}

	return acc
}

// NodeAtIndex returns the node at ordinal position k within the tree rooted
// at root. Panics if k is out of range. Cost: path length.
func NodeAtIndex[T any](root *Node[T], k int) *Node[T] {
	if k < 0 || k >= root.Size() {
		panic("nodealg: index out of range")
	}

	n := root
	for {
		l := n.Left.Size()

		switch {
		case k < l:
			n = n.Left
		case k == l:
			return n
		default:
			k -= l + 1
			n = n.Right
		}
	}
}

// InsertPosition locates where a new node destined for final ordinal
// position k should be attached under root, which must be non-nil (an
// empty tree has no insert-position descent; the tree handle special-cases
// that). It returns the parent node and whether the new node becomes its
// left child. Cost: path length.
func InsertPosition[T any](root *Node[T], k int) (parent *Node[T], left bool) {
	n := root

	for {
		l := n.Left.Size()

		if l > 0 && k <= l {
			n = n.Left

			continue
		}

		if n.Left == nil && k == 0 {
			return n, true
		}

		k -= l + 1

		if n.Right != nil {
			n = n.Right

			continue
		}

		return n, false
	}
}

// Next returns the in-order successor of n, or nil if n is the last node.
func Next[T any](n *Node[T]) *Node[T] {
	if n.Right != nil {
		m := n.Right
		for m.Left != nil {
			m = m.Left
		}

		return m
	}

	for cur := n; cur.Parent != nil; cur = cur.Parent {
		if cur == cur.Parent.Left {
			return cur.Parent
		}
	}

	return nil
}

// Prev returns the in-order predecessor of n, or nil if n is the first node.
func Prev[T any](n *Node[T]) *Node[T] {
	if n.Left != nil {
		m := n.Left
		for m.Right != nil {
			m = m.Right
		}

		return m
	}

	for cur := n; cur.Parent != nil; cur = cur.Parent {
		if cur == cur.Parent.Right {
			return cur.Parent
		}
	}

	return nil
}

// root walks up to the root of n's tree.
func root[T any](n *Node[T]) *Node[T] {
	for n.Parent != nil {
		n = n.Parent
	}

	return n
}

// NextN returns the node steps positions after n in in-order sequence, or
// nil if that would run past the last node. steps may be negative, in which
// case it behaves like PrevN(n, -steps).
func NextN[T any](n *Node[T], steps int) *Node[T] {
	if steps < 0 {
		return PrevN(n, -steps)
	}
	if steps == 0 {
		return n
	}

	r := root(n)
	idx := IndexOf(n) + steps

	if idx >= r.Size() {
		return nil
	}

	return NodeAtIndex(r, idx)
}

// PrevN returns the node steps positions before n in in-order sequence, or
// nil if that would run past the first node. steps may be negative, in
// which case it behaves like NextN(n, -steps).
func PrevN[T any](n *Node[T], steps int) *Node[T] {
	if steps < 0 {
		return NextN(n, -steps)
	}
	if steps == 0 {
		return n
	}

	idx := IndexOf(n) - steps
	if idx < 0 {
		return nil
	}

	return NodeAtIndex(root(n), idx)
}

// UpdateSize recomputes n.size from its children and reports whether the
// value changed.
func UpdateSize[T any](n *Node[T]) bool {
	old := n.size
	n.size = 1 + n.Left.Size() + n.Right.Size()

	return n.size != old
}

// UpdateSizesUpward recomputes sizes from n up to the root, stopping early
// once a node's size stops changing (every ancestor's size is then already
// correct).
func UpdateSizesUpward[T any](n *Node[T]) {
	for n != nil {
		if !UpdateSize(n) {
			return
		}

		n = n.Parent
	}
}

// RotateLeft rotates n down and to the left, promoting n.Right. It returns
// the new subtree root (n's former right child). Sizes are left stale;
// callers must refresh n then the returned node, in that order.
func RotateLeft[T any](n *Node[T]) *Node[T] {
	r := n.Right
	rl := r.Left

	n.Right = rl
	if rl != nil {
		rl.Parent = n
	}

	r.Left = n
	reparent(n, r)

	return r
}

// RotateRight rotates n down and to the right, promoting n.Left. It returns
// the new subtree root (n's former left child). Sizes are left stale;
// callers must refresh n then the returned node, in that order.
func RotateRight[T any](n *Node[T]) *Node[T] {
	l := n.Left
	lr := l.Right

	n.Left = lr
	if lr != nil {
		lr.Parent = n
	}

	l.Right = n
	reparent(n, l)

	return l
}

// reparent installs newRoot in n's former slot (patching n's old parent's
// child pointer) and makes n a child of newRoot. newRoot's child pointer
// toward n must already be set by the caller.
func reparent[T any](n, newRoot *Node[T]) {
	p := n.Parent
	newRoot.Parent = p

	if p != nil {
		if p.Left == n {
			p.Left = newRoot
		} else {
			p.Right = newRoot
		}
	}

	n.Parent = newRoot
}

// SplayStep performs a single splay rotation lifting n one level, for use
// when n's parent has no parent of its own. It returns the former parent,
// whose size must be refreshed before n's.
func SplayStep[T any](n *Node[T]) *Node[T] {
	p := n.Parent
	if p.Left == n {
		RotateRight(p)
	} else {
		RotateLeft(p)
	}

	return p
}

// SplayStepDouble performs a zig-zig or zig-zag double rotation lifting n
// two levels. It returns (formerGrandparent, formerParent); sizes must be
// refreshed in that order, then n's, because the former grandparent ends up
// a descendant of the former parent (zig-zig) or of n itself (zig-zag).
func SplayStepDouble[T any](n *Node[T]) (formerGrandparent, formerParent *Node[T]) {
	p := n.Parent
	pp := p.Parent

	switch {
	case p.Left == n && pp.Left == p:
		RotateRight(pp)
		RotateRight(p)
	case p.Right == n && pp.Right == p:
		RotateLeft(pp)
		RotateLeft(p)
	case p.Right == n && pp.Left == p:
		RotateLeft(p)
		RotateRight(pp)
	default: // p.Left == n && pp.Right == p
		RotateRight(p)
		RotateLeft(pp)
	}

	return pp, p
}

// Splay repeatedly lifts n until its parent is top (nil top means n becomes
// the tree root). visit, if non-nil, is called on every node whose subtree
// shape changed, descendants before their new ancestors, so an augmentation
// depending on child augmentations always observes fresh values.
func Splay[T any](n *Node[T], top *Node[T], visit func(*Node[T])) {
	call := func(m *Node[T]) {
		UpdateSize(m)
		if visit != nil {
			visit(m)
		}
	}

	for {
		p := n.Parent
		if p == nil || p == top {
			return
		}

		pp := p.Parent
		if pp == nil || pp == top {
			SplayStep(n)
			call(p)
			call(n)

			return
		}

		SplayStepDouble(n)
		call(pp)
		call(p)
		call(n)
	}
}

// Swap exchanges the structural fields (Parent, Left, Right, size) of a and
// b, leaving Data untouched in both. After Swap, a and b occupy each other's
// former positions in the tree (or trees). Handles the case where a and b
// are directly related (one is the other's child).
func Swap[T any](a, b *Node[T]) {
	if a == b {
		return
	}

	switch {
	case b.Parent == a:
		swapParentChild(a, b)
	case a.Parent == b:
		swapParentChild(b, a)
	default:
		swapUnrelated(a, b)
	}
}

// swapParentChild swaps p with its direct child c.
func swapParentChild[T any](p, c *Node[T]) {
	gp := p.Parent
	pLeftWasC := p.Left == c

	var sibling *Node[T]
	if pLeftWasC {
		sibling = p.Right
	} else {
		sibling = p.Left
	}

	cl, cr := c.Left, c.Right

	c.Parent = gp
	if gp != nil {
		if gp.Left == p {
			gp.Left = c
		} else {
			gp.Right = c
		}
	}

	if pLeftWasC {
		c.Left, c.Right = p, sibling
	} else {
		c.Right, c.Left = p, sibling
	}

	if sibling != nil {
		sibling.Parent = c
	}

	p.Parent = c
	p.Left, p.Right = cl, cr

	if cl != nil {
		cl.Parent = p
	}

	if cr != nil {
		cr.Parent = p
	}

	p.size, c.size = c.size, p.size
}

// swapUnrelated swaps two nodes that are not directly parent and child.
func swapUnrelated[T any](a, b *Node[T]) {
	pa, la, ra := a.Parent, a.Left, a.Right
	pb, lb, rb := b.Parent, b.Left, b.Right

	// Record the child slots before any link changes: when a and b are
	// siblings, pa and pb are the same node.
	aWasLeft := pa != nil && pa.Left == a
	bWasLeft := pb != nil && pb.Left == b

	a.Parent, a.Left, a.Right = pb, lb, rb
	b.Parent, b.Left, b.Right = pa, la, ra

	if la != nil {
		la.Parent = b
	}

	if ra != nil {
		ra.Parent = b
	}

	if lb != nil {
		lb.Parent = a
	}

	if rb != nil {
		rb.Parent = a
	}

	if pa != nil {
		if aWasLeft {
			pa.Left = b
		} else {
			pa.Right = b
		}
	}

	if pb != nil {
		if bWasLeft {
			pb.Left = a
		} else {
			pb.Right = a
		}
	}

	a.size, b.size = b.size, a.size
}

// Erase removes n from its tree, preserving the in-order sequence of the
// remaining nodes. n's own fields are left untouched; the caller owns
// destroying or re-linking it. It returns the node that took n's place (nil
// if n was a leaf) and the node from which UpdateSizesUpward should be
// called to repair the size augmentation.
func Erase[T any](n *Node[T]) (replacement, refreshFrom *Node[T]) {
	switch {
	case n.Left == nil:
		return spliceOut(n, n.Right)
	case n.Right == nil:
		return spliceOut(n, n.Left)
	default:
		succ := Next(n)
		Swap(n, succ)

		_, refreshFrom = spliceOut(n, n.Right)
		return succ, refreshFrom
	}
}

// spliceOut detaches n, installing repl (possibly nil) in its slot at n's
// parent. n.Parent is left untouched.
func spliceOut[T any](n, repl *Node[T]) (replacement, refreshFrom *Node[T]) {
	p := n.Parent
	if repl != nil {
		repl.Parent = p
	}

	if p != nil {
		if p.Left == n {
			p.Left = repl
		} else {
			p.Right = repl
		}
	}

	return repl, p
}

// Clone returns a deep copy of the subtree rooted at n, constructing each
// copy via newNode(data) and linking the results into the same shape as the
// source. Sizes are copied verbatim from the source nodes rather than
// recomputed, since the source shape is assumed already consistent.
func Clone[T any](n *Node[T], newNode func(data T) *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}

	c := newNode(n.Data)
	c.size = n.size

	c.Left = Clone(n.Left, newNode)
	if c.Left != nil {
		c.Left.Parent = c
	}

	c.Right = Clone(n.Right, newNode)
	if c.Right != nil {
		c.Right.Parent = c
	}

	return c
}

// Leftmost returns the leftmost descendant of n, or nil if n is nil.
func Leftmost[T any](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// Rightmost returns the rightmost descendant of n, or nil if n is nil.
func Rightmost[T any](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	for n.Right != nil {
		n = n.Right
	}
	return n
}

// IsAncestorOrSelf reports whether anc lies on the path from n up to the
// root, inclusive of n itself.
func IsAncestorOrSelf[T any](anc, n *Node[T]) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur == anc {
			return true
		}
	}
	return false
}
