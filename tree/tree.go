package tree

import (
	"math"

	"github.com/compactord/transposetree/block"
)

// Comparator compares the would-be node at index i against the
// already-spliced node at index j, returning negative if i's key orders
// before j's, positive if after, zero if equal. Tree never reads keys
// itself; a Comparator is the caller's closure over its own key array.
type Comparator func(i, j int) int

// BlockFactory builds the Inflatable used for one of the tree's two
// child-index arrays.
type BlockFactory func(initialCapacity int) *block.Inflatable

// DefaultBlockFactory builds an Inflatable using block.BitwiseGrowth,
// the factory tuned to keep child-index widths in the 1..21 bit range
// while a tree is small.
func DefaultBlockFactory(initialCapacity int) *block.Inflatable {
	return block.NewInflatable(initialCapacity, block.BitwiseGrowth)
}

// Tree is a left-leaning 2-3 red-black tree stored as three parallel
// per-node sequences: left child index, right child index, and colour.
// Node slot i becomes live when the caller has written its own key at i
// and then calls Insert; slots are never removed.
type Tree struct {
	p       int
	root    int
	left    *block.Inflatable
	right   *block.Inflatable
	colour  colourBits
	compare Comparator
}

// New creates an empty Tree. compare must be non-nil; blockFactory may
// be nil, in which case DefaultBlockFactory is used for both child
// arrays.
func New(initialCapacity int, compare Comparator, blockFactory BlockFactory) *Tree {
	if compare == nil {
		panic("tree: compare must not be nil")
	}
	if blockFactory == nil {
		blockFactory = DefaultBlockFactory
	}
	return &Tree{
		root:    NIL,
		left:    blockFactory(initialCapacity),
		right:   blockFactory(initialCapacity),
		compare: compare,
	}
}

// Population returns the number of live node slots.
func (t *Tree) Population() int { return t.p }

// Root returns the current root ordinal, or NIL if the tree is empty.
func (t *Tree) Root() int { return t.root }

// InsertionPoint returns the ordinal a caller should write its key/value
// into before calling Insert.
func (t *Tree) InsertionPoint() int { return t.p }

func (t *Tree) leftOf(i int) int {
	if i == NIL {
		return NIL
	}
	return int(t.left.Get(i))
}

func (t *Tree) rightOf(i int) int {
	if i == NIL {
		return NIL
	}
	return int(t.right.Get(i))
}

func (t *Tree) setLeft(i, child int) {
	if err := t.left.Set(i, int64(child)); err != nil {
		panic(ErrInvariantBroken)
	}
}

func (t *Tree) setRight(i, child int) {
	if err := t.right.Set(i, int64(child)); err != nil {
		panic(ErrInvariantBroken)
	}
}

func (t *Tree) isRed(i int) bool {
	if i == NIL {
		return false
	}
	return !t.colour.isBlack(i)
}

// splice extends both child arrays by one slot for a brand-new leaf
// node at nodeIdx, initialised with no children and red colour
// (red is the zero value of colourBits, so no explicit write is needed).
func (t *Tree) splice(nodeIdx int) {
	if t.left.Size() != nodeIdx || t.right.Size() != nodeIdx {
		panic("tree: splice called out of order with child-array growth")
	}
	if err := t.left.Add(int64(NIL)); err != nil {
		panic(ErrInvariantBroken)
	}
	if err := t.right.Add(int64(NIL)); err != nil {
		panic(ErrInvariantBroken)
	}
}

// Insert splices node InsertionPoint() into the tree, then increments
// population. The caller must have already written its own key (and
// value, if any) at that ordinal. Returns a *DuplicateKeyError, leaving
// population and tree shape unchanged, if the comparator reports
// equality with an existing node.
func (t *Tree) Insert() error {
	if t.p >= math.MaxInt32 {
		panic(ErrCapacityExhausted)
	}
	nodeIdx := t.p
	if t.root == NIL {
		t.splice(nodeIdx)
		t.root = nodeIdx
		t.colour.setBlack(nodeIdx)
		t.p++
		return nil
	}
	newRoot, err := t.insertInto(t.root, nodeIdx)
	if err != nil {
		return err
	}
	t.root = newRoot
	t.colour.setBlack(t.root)
	t.p++
	return nil
}

func (t *Tree) insertInto(cur, nodeIdx int) (int, error) {
	sign := t.compare(nodeIdx, cur)
	switch {
	case sign == 0:
		return 0, &DuplicateKeyError{Existing: cur}
	case sign < 0:
		if t.leftOf(cur) == NIL {
			t.splice(nodeIdx)
			t.setLeft(cur, nodeIdx)
		} else {
			newSub, err := t.insertInto(t.leftOf(cur), nodeIdx)
			if err != nil {
				return 0, err
			}
			t.setLeft(cur, newSub)
		}
	default:
		if t.rightOf(cur) == NIL {
			t.splice(nodeIdx)
			t.setRight(cur, nodeIdx)
		} else {
			newSub, err := t.insertInto(t.rightOf(cur), nodeIdx)
			if err != nil {
				return 0, err
			}
			t.setRight(cur, newSub)
		}
	}
	return t.rebalance(cur), nil
}

// rebalance restores the LLRB invariants at cur after one of its
// children may have changed: lean right-leaning red edges left, break
// up any run of two left-leaning reds, and split a 4-node (both
// children red) by flipping colours.
func (t *Tree) rebalance(cur int) int {
	if t.isRed(t.rightOf(cur)) && !t.isRed(t.leftOf(cur)) {
		cur = t.rotateLeft(cur)
	}
	if t.isRed(t.leftOf(cur)) && t.isRed(t.leftOf(t.leftOf(cur))) {
		cur = t.rotateRight(cur)
	}
	if t.isRed(t.leftOf(cur)) && t.isRed(t.rightOf(cur)) {
		t.flipColours(cur)
	}
	return cur
}

func (t *Tree) rotateLeft(cur int) int {
	r := t.rightOf(cur)
	t.setRight(cur, t.leftOf(r))
	t.setLeft(r, cur)
	if t.colour.isBlack(cur) {
		t.colour.setBlack(r)
	} else {
		t.colour.setRed(r)
	}
	t.colour.setRed(cur)
	return r
}

func (t *Tree) rotateRight(cur int) int {
	l := t.leftOf(cur)
	t.setLeft(cur, t.rightOf(l))
	t.setRight(l, cur)
	if t.colour.isBlack(cur) {
		t.colour.setBlack(l)
	} else {
		t.colour.setRed(l)
	}
	t.colour.setRed(cur)
	return l
}

func (t *Tree) flipColours(cur int) {
	t.colour.toggle(cur)
	t.colour.toggle(t.leftOf(cur))
	t.colour.toggle(t.rightOf(cur))
}

// Lookup descends from root following locator's sign, returning the
// matching node's ordinal, or NIL if no node matches.
func (t *Tree) Lookup(locator NodeLocator) int {
	cur := t.root
	for cur != NIL {
		sign := locator.CompareWith(cur)
		switch {
		case sign == 0:
			return cur
		case sign > 0:
			cur = t.rightOf(cur)
		default:
			cur = t.leftOf(cur)
		}
	}
	return NIL
}

// Locate is like Lookup but, on no match, returns the last node visited
// (the would-be parent) instead of NIL. NIL is returned only when the
// tree is empty.
func (t *Tree) Locate(locator NodeLocator) int {
	if t.root == NIL {
		return NIL
	}
	cur := t.root
	last := NIL
	for cur != NIL {
		last = cur
		sign := locator.CompareWith(cur)
		switch {
		case sign == 0:
			return cur
		case sign > 0:
			cur = t.rightOf(cur)
		default:
			cur = t.leftOf(cur)
		}
	}
	return last
}

// AllIndexes returns a Walker over every live node ordinal, in ascending
// key order.
func (t *Tree) AllIndexes() *Walker {
	w := &Walker{t: t, snapshotP: t.p}
	w.dive(t.root)
	return w
}

// AllIndexesMatching returns a Walker over every node ordinal for which
// locator returns zero, in ascending order. locator may define a range
// by returning zero across a contiguous interval.
func (t *Tree) AllIndexesMatching(locator NodeLocator) *Walker {
	w := &Walker{t: t, snapshotP: t.p, locator: locator}
	w.dive(t.root)
	return w
}

// Shrinkwrap compacts both child-index arrays.
func (t *Tree) Shrinkwrap(roomPct int) {
	t.left.Shrinkwrap(roomPct)
	t.right.Shrinkwrap(roomPct)
}

// ChildArrayStats reports the current storage shape of the left and
// right child-index arrays, useful for confirming a child array has
// widened past a given bit count.
func (t *Tree) ChildArrayStats() (left, right block.InflationStats) {
	return t.left.Stats(), t.right.Stats()
}
