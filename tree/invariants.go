package tree

import "fmt"

// CheckInvariants verifies the LLRB invariants hold: the root is black;
// no red node has a red left child; no right-leaning red edge exists;
// and every root-to-NIL path carries the same number of black edges.
// This black-height check is exercised explicitly rather than left as a
// stub, per the design note calling out the equivalent self-check in
// the source this tree was distilled from as present but disabled.
func (t *Tree) CheckInvariants() error {
	if t.root != NIL && !t.colour.isBlack(t.root) {
		return fmt.Errorf("tree: root %d is not black", t.root)
	}
	_, err := t.checkNode(t.root)
	return err
}

func (t *Tree) checkNode(i int) (blackHeight int, err error) {
	if i == NIL {
		return 1, nil
	}
	if t.isRed(t.rightOf(i)) {
		return 0, fmt.Errorf("tree: node %d has a right-leaning red edge", i)
	}
	if t.isRed(i) && t.isRed(t.leftOf(i)) {
		return 0, fmt.Errorf("tree: red node %d has a red left child", i)
	}
	lh, err := t.checkNode(t.leftOf(i))
	if err != nil {
		return 0, err
	}
	rh, err := t.checkNode(t.rightOf(i))
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("tree: black height mismatch at node %d: left=%d right=%d", i, lh, rh)
	}
	if t.colour.isBlack(i) {
		return lh + 1, nil
	}
	return lh, nil
}
