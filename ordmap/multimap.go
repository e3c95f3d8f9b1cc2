package ordmap

import (
	"errors"
	"sync"

	set3 "github.com/TomTonic/Set3"

	"github.com/compactord/transposetree/tree"
)

// MultiMap is a thread-safe multi-map from Key to a Set3 of values,
// backed by a tree.Tree instead of the linear array scan a naive
// implementation would use: every lookup and insert is O(log n) in the
// number of distinct keys, and a range query is O(log n + k) for k
// matching keys.
//
// Per the tree core's own non-goal on entry deletion, MultiMap has no
// RemoveKey: a key's node slot, once spliced in, lives for the
// MultiMap's lifetime. RemoveValue only empties the value set at a key;
// it never removes the key itself.
type MultiMap[V comparable] struct {
	mu     sync.RWMutex
	keys   []Key
	values []*set3.Set3[V]
	t      *tree.Tree
}

// New creates an empty MultiMap with initialCapacity node slots
// pre-allocated.
func New[V comparable](initialCapacity int) *MultiMap[V] {
	m := &MultiMap[V]{}
	m.t = tree.New(initialCapacity, m.compareOrdinals, nil)
	return m
}

func (m *MultiMap[V]) compareOrdinals(i, j int) int {
	return m.keys[i].Compare(m.keys[j])
}

type keyLocator struct {
	target Key
	keys   []Key
}

func (l keyLocator) CompareWith(i int) int { return l.target.Compare(l.keys[i]) }

// PutValue adds v to the set of values at key, creating key if it does
// not already exist. key is cloned before insertion.
func (m *MultiMap[V]) PutValue(key Key, v V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if idx := m.t.Lookup(keyLocator{target: key, keys: m.keys}); idx != tree.NIL {
		m.values[idx].Add(v)
		return
	}

	idx := m.t.InsertionPoint()
	m.keys = append(m.keys, key.Clone())
	m.values = append(m.values, set3.Empty[V]())

	if err := m.t.Insert(); err != nil {
		var dup *tree.DuplicateKeyError
		if !errors.As(err, &dup) {
			panic(err)
		}
		// Lookup above already checked for an exact match under the
		// lock held for this whole call, so this path only guards
		// against a comparator that disagrees with itself between the
		// two calls -- it should never actually trigger.
		m.keys = m.keys[:idx]
		m.values = m.values[:idx]
		m.values[dup.Existing].Add(v)
		return
	}

	m.values[idx].Add(v)
}

// RemoveValue removes v from the set of values at key, if key exists.
// The key itself is never removed, even if its value set becomes empty.
func (m *MultiMap[V]) RemoveValue(key Key, v V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if idx := m.t.Lookup(keyLocator{target: key, keys: m.keys}); idx != tree.NIL {
		m.values[idx].Remove(v)
	}
}

// ContainsKey reports whether key is present in the map.
func (m *MultiMap[V]) ContainsKey(key Key) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.t.Lookup(keyLocator{target: key, keys: m.keys}) != tree.NIL
}

// GetValuesFor returns the set of values stored at key, or an empty set
// if key is absent or has no values.
func (m *MultiMap[V]) GetValuesFor(key Key) *set3.Set3[V] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if idx := m.t.Lookup(keyLocator{target: key, keys: m.keys}); idx != tree.NIL {
		return m.values[idx].Clone()
	}
	return set3.EmptyWithCapacity[V](0)
}

// GetAllValues returns the union of every value set currently stored.
func (m *MultiMap[V]) GetAllValues() *set3.Set3[V] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := set3.Empty[V]()
	w := m.t.AllIndexes()
	for {
		idx, ok := w.Next()
		if !ok {
			break
		}
		result.AddAll(m.values[idx])
	}
	return result
}

type rangeLocator struct {
	keys             []Key
	from, to         *Key
	fromIncl, toIncl bool
}

func (r rangeLocator) CompareWith(i int) int {
	k := r.keys[i]
	if r.from != nil {
		c := k.Compare(*r.from)
		if c < 0 || (c == 0 && !r.fromIncl) {
			return 1 // node is too low, the range lies further right
		}
	}
	if r.to != nil {
		c := k.Compare(*r.to)
		if c > 0 || (c == 0 && !r.toIncl) {
			return -1 // node is too high, the range lies further left
		}
	}
	return 0
}

func (m *MultiMap[V]) valuesMatching(loc rangeLocator) *set3.Set3[V] {
	result := set3.Empty[V]()
	w := m.t.AllIndexesMatching(loc)
	for {
		idx, ok := w.Next()
		if !ok {
			break
		}
		result.AddAll(m.values[idx])
	}
	return result
}

// GetValuesBetweenInclusive returns the union of value sets for every
// key k with from <= k <= to.
func (m *MultiMap[V]) GetValuesBetweenInclusive(from, to Key) *set3.Set3[V] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.valuesMatching(rangeLocator{keys: m.keys, from: &from, to: &to, fromIncl: true, toIncl: true})
}

// GetValuesBetweenExclusive returns the union of value sets for every
// key k with from < k < to.
func (m *MultiMap[V]) GetValuesBetweenExclusive(from, to Key) *set3.Set3[V] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.valuesMatching(rangeLocator{keys: m.keys, from: &from, to: &to, fromIncl: false, toIncl: false})
}

// GetValuesFromInclusive returns the union of value sets for every key
// k with from <= k.
func (m *MultiMap[V]) GetValuesFromInclusive(from Key) *set3.Set3[V] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.valuesMatching(rangeLocator{keys: m.keys, from: &from, fromIncl: true})
}

// GetValuesFromExclusive returns the union of value sets for every key
// k with from < k.
func (m *MultiMap[V]) GetValuesFromExclusive(from Key) *set3.Set3[V] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.valuesMatching(rangeLocator{keys: m.keys, from: &from, fromIncl: false})
}

// GetValuesToInclusive returns the union of value sets for every key k
// with k <= to.
func (m *MultiMap[V]) GetValuesToInclusive(to Key) *set3.Set3[V] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.valuesMatching(rangeLocator{keys: m.keys, to: &to, toIncl: true})
}

// GetValuesToExclusive returns the union of value sets for every key k
// with k < to.
func (m *MultiMap[V]) GetValuesToExclusive(to Key) *set3.Set3[V] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.valuesMatching(rangeLocator{keys: m.keys, to: &to, toIncl: false})
}

// Size returns the number of distinct keys currently stored.
func (m *MultiMap[V]) Size() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return uint64(m.t.Population())
}

// Keys returns every key currently stored, in ascending order.
func (m *MultiMap[V]) Keys() []Key {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]Key, 0, m.t.Population())
	w := m.t.AllIndexes()
	for {
		idx, ok := w.Next()
		if !ok {
			break
		}
		result = append(result, m.keys[idx].Clone())
	}
	return result
}

// Clear removes every key and value from the map.
func (m *MultiMap[V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = nil
	m.values = nil
	m.t = tree.New(0, m.compareOrdinals, nil)
}
