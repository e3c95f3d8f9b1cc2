package tree

// NodeLocator directs a tree descent without exposing keys to the tree.
// CompareWith(i) partitions the key universe into three regions: a
// positive return means node i is "too low" (descend right, the target
// is further up the ordering), a negative return means node i is "too
// high" (descend left), and zero means a match. A locator may return
// zero across a contiguous range of nodes to select every key in that
// range; AllIndexesMatching guarantees range iteration visits exactly
// those nodes, in ascending order.
type NodeLocator interface {
	CompareWith(i int) int
}

// LocatorFunc adapts a plain function to NodeLocator.
type LocatorFunc func(i int) int

func (f LocatorFunc) CompareWith(i int) int { return f(i) }
