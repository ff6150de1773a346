package seqtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunococ/ostree/internal/nodealg"
	"github.com/tunococ/ostree/internal/testutil"
)

// buildTree links values one at a time using the insertion indices given, and
// returns both the tree and the plain slice they should produce in order.
func buildTree(t *testing.T, values []int, indices []int) *Tree[int] {
	t.Helper()
	require.Equal(t, len(values), len(indices))

	tr := NewTree[int]()
	for i, v := range values {
		tr.LinkAtIndex(indices[i], v)
	}
	return tr
}

func collect(tr *Tree[int]) []int {
	var out []int
	for it := tr.Begin(); !it.Equal(tr.End()); it = it.Next() {
		out = append(out, it.Value())
	}
	return out
}

func checkFirstLast(t *testing.T, tr *Tree[int]) {
	t.Helper()
	seq := collect(tr)
	if len(seq) == 0 {
		assert.Nil(t, tr.First)
		assert.Nil(t, tr.Last)
		return
	}
	assert.Equal(t, seq[0], tr.First.Data)
	assert.Equal(t, seq[len(seq)-1], tr.Last.Data)
	assert.Nil(t, tr.Root.Parent)
}

func TestLinkAtIndexBuildsExpectedSequence(t *testing.T) {
	values := []int{'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j'}
	indices := []int{0, 0, 0, 0, 1, 1, 3, 3, 8, 9}
	tr := buildTree(t, values, indices)

	expect := []int{'d', 'f', 'h', 'e', 'b', 'a', 'g', 'c', 'i', 'j'}
	assert.Equal(t, expect, collect(tr))
	assert.Equal(t, len(values), tr.Len())
	checkFirstLast(t, tr)
}

func TestUnlinkAndRelinkRoundTrip(t *testing.T) {
	values := make([]int, 20)
	for i := range values {
		values[i] = i
	}
	tr := buildTree(t, values, testutil.RandomInsertIndices(10, 20))
	before := collect(tr)

	for k := 0; k < tr.Len(); k++ {
		n := nodealg.NodeAtIndex(tr.Root, k)
		tr.Unlink(n, true)
		assert.Nil(t, n.Parent)
		assert.Equal(t, len(before)-n.Size(), tr.Len())

		// Unlink removed n's whole subtree, whose first element sat at
		// k - n.Left.Size(); relinking at that gap restores the sequence.
		pos := tr.InsertPositionAt(k - n.Left.Size())
		tr.Link(pos, n, true)
		assert.Equal(t, before, collect(tr), "unlink/relink at %d must round-trip", k)
		checkFirstLast(t, tr)
	}
}

func TestEraseRemovesExactlyOneElement(t *testing.T) {
	values := make([]int, 15)
	for i := range values {
		values[i] = i
	}
	tr := buildTree(t, values, testutil.RandomInsertIndices(11, 15))

	rng := rand.New(rand.NewSource(12))
	for tr.Len() > 0 {
		want := collect(tr)
		k := rng.Intn(tr.Len())
		n := nodealg.NodeAtIndex(tr.Root, k)
		want = append(want[:k:k], want[k+1:]...)
		if len(want) == 0 {
			want = nil // collect returns nil for an empty tree
		}

		tr.Erase(n, true, true)
		assert.Equal(t, want, collect(tr))
		checkFirstLast(t, tr)
	}
}

func TestEraseFirstAndLastUpdatesCache(t *testing.T) {
	values := []int{1, 2, 3, 4, 5}
	tr := buildTree(t, values, []int{0, 1, 2, 3, 4})

	tr.Erase(tr.First, true, true)
	assert.Equal(t, []int{2, 3, 4, 5}, collect(tr))
	checkFirstLast(t, tr)

	tr.Erase(tr.Last, true, true)
	assert.Equal(t, []int{2, 3, 4}, collect(tr))
	checkFirstLast(t, tr)
}

func TestEraseAllNodesLeavesEmptyTree(t *testing.T) {
	values := make([]int, 10)
	for i := range values {
		values[i] = i
	}
	tr := buildTree(t, values, testutil.RandomInsertIndices(13, 10))

	for tr.Len() > 0 {
		tr.Erase(tr.Root, true, true)
	}
	assert.True(t, tr.Empty())
	assert.Nil(t, tr.Root)
	assert.Nil(t, tr.First)
	assert.Nil(t, tr.Last)
}

func TestLinkBeforeMatchesOrdinalInsert(t *testing.T) {
	values := []int{10, 20, 30, 40}
	tr := buildTree(t, values, []int{0, 1, 2, 3})

	target := nodealg.NodeAtIndex(tr.Root, 2) // 30
	n := tr.Alloc.New(25)
	tr.LinkBefore(target, n, true)
	assert.Equal(t, []int{10, 20, 25, 30, 40}, collect(tr))

	tail := tr.Alloc.New(50)
	tr.LinkBefore(nil, tail, true)
	assert.Equal(t, []int{10, 20, 25, 30, 40, 50}, collect(tr))
	checkFirstLast(t, tr)
}

func TestSplayMovesNodeToRoot(t *testing.T) {
	values := make([]int, 30)
	for i := range values {
		values[i] = i
	}
	tr := buildTree(t, values, testutil.PermutedIndices(14, 30))
	before := collect(tr)

	for k := 0; k < 30; k += 7 {
		n := nodealg.NodeAtIndex(tr.Root, k)
		tr.Splay(n, nil)
		assert.Same(t, n, tr.Root)
		assert.Nil(t, tr.Root.Parent)
		assert.Equal(t, before, collect(tr))
		checkFirstLast(t, tr)
	}
}

func TestRotateLeftRightFixUpRoot(t *testing.T) {
	tr := buildTree(t, []int{1, 2, 3, 4, 5}, []int{0, 1, 2, 3, 4})
	before := collect(tr)
	root := tr.Root

	tr.RotateLeft(root)
	assert.NotSame(t, root, tr.Root)
	assert.Nil(t, tr.Root.Parent)
	assert.Equal(t, before, collect(tr))

	tr.RotateRight(tr.Root)
	assert.Same(t, root, tr.Root)
	assert.Equal(t, before, collect(tr))
}

func TestSwapNodesWithinOneTree(t *testing.T) {
	tr := buildTree(t, []int{1, 2, 3, 4, 5}, []int{0, 1, 2, 3, 4})
	a := nodealg.NodeAtIndex(tr.Root, 0)
	b := nodealg.NodeAtIndex(tr.Root, 4)

	tr.SwapNodes(tr, a, b)
	assert.Equal(t, []int{5, 2, 3, 4, 1}, collect(tr))
	checkFirstLast(t, tr)

	tr.SwapNodes(tr, a, b)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, collect(tr))
	checkFirstLast(t, tr)
}

func TestSwapNodesAcrossTrees(t *testing.T) {
	a := buildTree(t, []int{1, 2, 3}, []int{0, 1, 2})
	b := buildTree(t, []int{10, 20, 30}, []int{0, 1, 2})

	an := nodealg.NodeAtIndex(a.Root, 1) // 2
	bn := nodealg.NodeAtIndex(b.Root, 1) // 20

	a.SwapNodes(b, an, bn)
	assert.Equal(t, []int{1, 20, 3}, collect(a))
	assert.Equal(t, []int{10, 2, 30}, collect(b))
	checkFirstLast(t, a)
	checkFirstLast(t, b)
}

func TestCloneIsIndependentDeepCopy(t *testing.T) {
	values := make([]int, 20)
	for i := range values {
		values[i] = i
	}
	tr := buildTree(t, values, testutil.RandomInsertIndices(15, 20))
	before := collect(tr)

	clone := tr.Clone()
	assert.Equal(t, before, collect(clone))
	assert.NotSame(t, tr.Root, clone.Root)

	clone.Erase(clone.Root, true, true)
	assert.NotEqual(t, collect(tr), collect(clone))
	assert.Equal(t, before, collect(tr))
	checkFirstLast(t, tr)
	checkFirstLast(t, clone)
}

func TestLinkSubtreeBeforeMovesWholeSubtree(t *testing.T) {
	dst := buildTree(t, []int{1, 2, 3}, []int{0, 1, 2})
	src := buildTree(t, []int{10, 20, 30}, []int{0, 1, 2})
	srcRoot := src.UnlinkSubtree(src.Root)
	src.Root, src.First, src.Last = nil, nil, nil

	target := nodealg.NodeAtIndex(dst.Root, 1) // 2
	err := dst.LinkSubtreeBefore(target, srcRoot, dst.Alloc)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 10, 20, 30, 2, 3}, collect(dst))
	checkFirstLast(t, dst)
}

func TestDestroyAllNodesEmptiesTree(t *testing.T) {
	tr := buildTree(t, []int{1, 2, 3, 4}, []int{0, 1, 2, 3})
	tr.DestroyAllNodes()
	assert.True(t, tr.Empty())
	assert.Equal(t, 0, tr.Len())
}

func TestStringRendersNonEmptyAndEmptyTrees(t *testing.T) {
	empty := NewTree[int]()
	assert.Equal(t, "(empty)", empty.String())

	tr := buildTree(t, []int{1, 2, 3}, []int{0, 1, 2})
	s := tr.String()
	assert.NotEmpty(t, s)
}

func TestIteratorBeginEndRoundTrip(t *testing.T) {
	values := make([]int, 25)
	for i := range values {
		values[i] = i
	}
	tr := buildTree(t, values, testutil.RandomInsertIndices(16, 25))

	var forward []int
	for it := tr.Begin(); !it.Equal(tr.End()); it = it.Next() {
		forward = append(forward, it.Value())
	}
	assert.Equal(t, collect(tr), forward)

	var backward []int
	for it := tr.RBegin(); !it.Equal(tr.REnd()); it = it.Next() {
		backward = append(backward, it.Value())
	}
	for i, j := 0, len(backward)-1; i < j; i, j = i+1, j-1 {
		backward[i], backward[j] = backward[j], backward[i]
	}
	assert.Equal(t, collect(tr), backward)
}

func TestIteratorAtAndIndexAgree(t *testing.T) {
	values := make([]int, 20)
	for i := range values {
		values[i] = i
	}
	tr := buildTree(t, values, testutil.RandomInsertIndices(17, 20))

	for k := 0; k < tr.Len(); k++ {
		it := tr.At(k)
		assert.Equal(t, k, it.Index())
		assert.Equal(t, collect(tr)[k], it.Value())
	}
	assert.Equal(t, tr.Len(), tr.At(tr.Len()).Index())
}

func TestIteratorAddAndSub(t *testing.T) {
	tr := buildTree(t, []int{1, 2, 3, 4, 5}, []int{0, 1, 2, 3, 4})

	begin := tr.Begin()
	mid := begin.Add(2)
	assert.Equal(t, 3, mid.Value())
	assert.Equal(t, 2, mid.Sub(begin))
	assert.Equal(t, -2, begin.Sub(mid))

	assert.True(t, begin.Less(mid))
	assert.False(t, mid.Less(begin))
	assert.True(t, mid.Equal(tr.At(2)))
}

func TestIteratorMakeReverseMirrorsValue(t *testing.T) {
	tr := buildTree(t, []int{1, 2, 3}, []int{0, 1, 2})

	it := tr.At(1)
	rev := it.MakeReverse()
	assert.True(t, rev.Reverse())
	assert.Equal(t, 1, rev.Value(), "MakeReverse steps back one element, it does not restate the same element backward")
	assert.Equal(t, it.Prev().Node(), rev.Node())
	assert.Equal(t, it, rev.MakeReverse(), "MakeReverse is its own inverse")

	end := tr.End()
	rbegin := end.MakeReverse()
	assert.True(t, rbegin.Reverse())
	assert.Equal(t, tr.Last, rbegin.Node())
	assert.Equal(t, end, rbegin.MakeReverse())

	begin := tr.Begin()
	rend := begin.MakeReverse()
	assert.True(t, rend.Reverse())
	assert.Nil(t, rend.Node())
	assert.Equal(t, begin, rend.MakeReverse())
}

func TestIteratorSetValueMutatesInPlace(t *testing.T) {
	tr := buildTree(t, []int{1, 2, 3}, []int{0, 1, 2})

	it := tr.At(1)
	it.SetValue(99)
	assert.Equal(t, []int{1, 99, 3}, collect(tr))
}

func TestConstIteratorOmitsSetValueButMatchesIndexing(t *testing.T) {
	tr := buildTree(t, []int{1, 2, 3, 4}, []int{0, 1, 2, 3})

	cit := tr.ConstBegin()
	var values []int
	for !cit.Equal(tr.ConstEnd()) {
		values = append(values, cit.Value())
		cit = cit.Next()
	}
	assert.Equal(t, collect(tr), values)

	mutable := tr.At(2)
	asConst := mutable.AsConst()
	assert.Equal(t, mutable.Value(), asConst.Value())
	assert.Equal(t, mutable.Index(), asConst.Index())
}

func TestIteratorAtOutOfRangePanics(t *testing.T) {
	tr := buildTree(t, []int{1, 2, 3}, []int{0, 1, 2})
	assert.Panics(t, func() { tr.At(-1) })
	assert.Panics(t, func() { tr.At(4) })
}

func TestIteratorValueOnEndPanics(t *testing.T) {
	tr := buildTree(t, []int{1, 2, 3}, []int{0, 1, 2})
	assert.Panics(t, func() { tr.End().Value() })
	assert.Panics(t, func() { tr.REnd().Value() })
}
