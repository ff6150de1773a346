package baseline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tunococ/ostree/internal/nodealg"
	"github.com/tunococ/ostree/seqtree"
)

func collect(t *seqtree.Tree[int]) []int {
	var out []int
	for it := t.Begin(); !it.Equal(t.End()); it = it.Next() {
		out = append(out, it.Value())
	}
	return out
}

func TestEmplaceFrontAndBackOnEmptyTree(t *testing.T) {
	var s Strategy[int]
	tr := seqtree.NewTree[int]()

	s.EmplaceFront(tr, 1)
	assert.Equal(t, []int{1}, collect(tr))

	s.EmplaceBack(tr, 2)
	assert.Equal(t, []int{1, 2}, collect(tr))

	s.EmplaceFront(tr, 0)
	assert.Equal(t, []int{0, 1, 2}, collect(tr))
}

func TestEmplaceBeforeAtEnd(t *testing.T) {
	var s Strategy[int]
	tr := seqtree.NewTree[int]()
	s.EmplaceBack(tr, 1)
	s.EmplaceBack(tr, 2)

	s.EmplaceBefore(tr, nil, 3)
	assert.Equal(t, []int{1, 2, 3}, collect(tr))

	mid := nodealg.NodeAtIndex(tr.Root, 1)
	s.EmplaceBefore(tr, mid, 99)
	assert.Equal(t, []int{1, 99, 2, 3}, collect(tr))
}

func TestInsertBeforeBulk(t *testing.T) {
	var s Strategy[int]
	tr := seqtree.NewTree[int]()
	s.EmplaceBack(tr, 1)
	s.EmplaceBack(tr, 5)

	target := nodealg.NodeAtIndex(tr.Root, 1) // 5
	nodes := s.InsertBefore(tr, target, []int{2, 3, 4})
	assert.Len(t, nodes, 3)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, collect(tr))

	tail := s.InsertBefore(tr, nil, []int{6, 7})
	assert.Len(t, tail, 2)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, collect(tr))

	assert.Empty(t, s.InsertBefore(tr, nil, nil))
}

func TestEraseFrontBackNode(t *testing.T) {
	var s Strategy[int]
	tr := seqtree.NewTree[int]()
	for _, v := range []int{1, 2, 3, 4, 5} {
		s.EmplaceBack(tr, v)
	}

	s.EraseFront(tr)
	assert.Equal(t, []int{2, 3, 4, 5}, collect(tr))

	s.EraseBack(tr)
	assert.Equal(t, []int{2, 3, 4}, collect(tr))

	mid := nodealg.NodeAtIndex(tr.Root, 1)
	s.EraseNode(tr, mid)
	assert.Equal(t, []int{2, 4}, collect(tr))
}

func TestNodeAtIndexDoesNotRebalance(t *testing.T) {
	var s Strategy[int]
	tr := seqtree.NewTree[int]()
	for _, v := range []int{1, 2, 3, 4, 5} {
		s.EmplaceBack(tr, v)
	}
	root := tr.Root

	n := s.NodeAtIndex(tr, 0)
	assert.Equal(t, 1, n.Data)
	assert.Same(t, root, tr.Root, "baseline access never rebalances")
}

func TestEraseRangeMatchesRepeatedPointErase(t *testing.T) {
	values := make([]int, 64)
	for i := range values {
		values[i] = i
	}

	var s Strategy[int]
	viaRange := seqtree.NewTree[int]()
	for i := range values {
		viaRange.LinkAtIndex(i, values[i])
	}
	begin := nodealg.NodeAtIndex(viaRange.Root, 20)
	end := nodealg.NodeAtIndex(viaRange.Root, 30)
	s.EraseRange(viaRange, begin, end)

	viaPoint := seqtree.NewTree[int]()
	for i := range values {
		viaPoint.LinkAtIndex(i, values[i])
	}
	for i := 0; i < 10; i++ {
		s.EraseNode(viaPoint, nodealg.NodeAtIndex(viaPoint.Root, 20))
	}

	assert.Equal(t, collect(viaPoint), collect(viaRange))

	want := append(append([]int{}, values[:20]...), values[30:]...)
	assert.Equal(t, want, collect(viaRange))
}

func TestEraseRangeThroughEnd(t *testing.T) {
	var s Strategy[int]
	tr := seqtree.NewTree[int]()
	for _, v := range []int{1, 2, 3, 4, 5} {
		s.EmplaceBack(tr, v)
	}

	begin := nodealg.NodeAtIndex(tr.Root, 2)
	s.EraseRange(tr, begin, nil)
	assert.Equal(t, []int{1, 2}, collect(tr))
}
