// Package strategy declares the compile-time rebalancing policy that package
// seqlist is generic over. A Policy is a set of static operations over a
// *seqtree.Tree: it decides when (if ever) to splay, and how the front/back/
// positional operations are composed from the tree handle's primitives.
//
// There is deliberately no runtime dispatch here: seqlist.List is generic
// over a Policy implementation supplied as a type parameter, so the choice
// of strategy is resolved at compile time and carries no indirection on the
// hot path.
package strategy

import (
	"github.com/tunococ/ostree/internal/nodealg"
	"github.com/tunococ/ostree/seqtree"
)

// Policy implementations are zero-size types; every method receives the tree
// handle (and sometimes a node or data) explicitly rather than closing over
// state, so a Policy value never needs more than its method set.
type Policy[T any] interface {
	// NodeAtIndex returns the node at ordinal position k, applying whatever
	// access-time rebalancing the strategy calls for.
	NodeAtIndex(t *seqtree.Tree[T], k int) *nodealg.Node[T]

	// EmplaceFront inserts data as the new first element.
	EmplaceFront(t *seqtree.Tree[T], data T) *nodealg.Node[T]

	// EmplaceBack inserts data as the new last element.
	EmplaceBack(t *seqtree.Tree[T], data T) *nodealg.Node[T]

	// EmplaceBefore inserts data immediately before target. target == nil
	// inserts at the end.
	EmplaceBefore(t *seqtree.Tree[T], target *nodealg.Node[T], data T) *nodealg.Node[T]

	// InsertBefore bulk-inserts data, in order, immediately before target.
	// target == nil inserts at the end. Returns the newly created nodes.
	InsertBefore(t *seqtree.Tree[T], target *nodealg.Node[T], data []T) []*nodealg.Node[T]

	// EraseFront removes the first element.
	EraseFront(t *seqtree.Tree[T])

	// EraseBack removes the last element.
	EraseBack(t *seqtree.Tree[T])

	// EraseNode removes n.
	EraseNode(t *seqtree.Tree[T], n *nodealg.Node[T])

	// EraseRange removes every node in [begin, end): begin == nil is
	// meaningless for a non-empty range and never produced by seqlist; end ==
	// nil means "through the last element".
	EraseRange(t *seqtree.Tree[T], begin, end *nodealg.Node[T])
}
