package tree

import "testing"

// intRangeLocator selects every key k with from <= k <= to, mirroring
// the semantics ordmap.MultiMap's range queries build on top of.
type intRangeLocator struct {
	from, to int64
	keys     *[]int64
}

func (l intRangeLocator) CompareWith(i int) int {
	v := (*l.keys)[i]
	switch {
	case v < l.from:
		return 1 // too low, range is further right
	case v > l.to:
		return -1 // too high, range is further left
	default:
		return 0
	}
}

func TestAllIndexesMatchingRange(t *testing.T) {
	var keys []int64
	tr := intKeyTree(&keys)
	for _, v := range []int64{10, 20, 30, 40, 50, 60, 70} {
		insertInt(t, tr, &keys, v)
	}
	w := tr.AllIndexesMatching(intRangeLocator{from: 25, to: 55, keys: &keys})
	var got []int64
	for {
		idx, ok := w.Next()
		if !ok {
			break
		}
		got = append(got, keys[idx])
	}
	want := []int64{30, 40, 50}
	if len(got) != len(want) {
		t.Fatalf("range [25,55] matched %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("range [25,55] matched %v, want %v", got, want)
		}
	}
}

func TestAllIndexesMatchingEmptyRange(t *testing.T) {
	var keys []int64
	tr := intKeyTree(&keys)
	for _, v := range []int64{10, 20, 30} {
		insertInt(t, tr, &keys, v)
	}
	w := tr.AllIndexesMatching(intRangeLocator{from: 100, to: 200, keys: &keys})
	if w.HasNext() {
		t.Fatalf("range with no matches: HasNext() = true, want false")
	}
	if _, ok := w.Next(); ok {
		t.Fatalf("range with no matches: Next() returned ok=true")
	}
}

func TestWalkerHasNextReflectsExhaustion(t *testing.T) {
	var keys []int64
	tr := intKeyTree(&keys)
	insertInt(t, tr, &keys, 1)
	w := tr.AllIndexes()
	if !w.HasNext() {
		t.Fatalf("HasNext() before consuming the only entry = false, want true")
	}
	w.Next()
	if w.HasNext() {
		t.Fatalf("HasNext() after consuming the only entry = true, want false")
	}
}
