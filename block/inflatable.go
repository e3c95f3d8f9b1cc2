package block

import "errors"

// Factory chooses a successor block wide enough to hold valueToAccommodate,
// given that capacity entries are expected to be needed.
type Factory func(valueToAccommodate int64, capacity int) Block

// Inflatable owns one inner Block and a Factory, and exposes a uniform
// 64-bit-valued Block whose Set never fails on range: a value the inner
// block rejects triggers in-place replacement of inner with a wider
// block preloaded with all previously stored values.
type Inflatable struct {
	inner   Block
	factory Factory
}

// NewInflatable creates an Inflatable with room for initialCapacity
// entries, using factory to pick both the bootstrap representation (for
// value 0) and every subsequent widening. A nil factory defaults to
// BitwiseGrowth.
func NewInflatable(initialCapacity int, factory Factory) *Inflatable {
	if factory == nil {
		factory = BitwiseGrowth
	}
	return &Inflatable{
		inner:   factory(0, initialCapacity),
		factory: factory,
	}
}

// Size returns the number of live entries.
func (ib *Inflatable) Size() int { return ib.inner.Size() }

// Get returns the value at i.
func (ib *Inflatable) Get(i int) int64 { return ib.inner.Get(i) }

// Set stores v at i, inflating the inner block in place if it does not
// currently fit v.
func (ib *Inflatable) Set(i int, v int64) error {
	err := ib.inner.Set(i, v)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrValueBeyondLimit) {
		return err
	}
	ib.inflate(i, v)
	return nil
}

func (ib *Inflatable) inflate(i int, v int64) {
	newInner := ib.factory(v, ib.inner.Size()+1)
	for j := 0; j < ib.inner.Size(); j++ {
		if err := newInner.Set(j, ib.inner.Get(j)); err != nil {
			panic(ErrInvariantBroken)
		}
	}
	if err := newInner.Set(i, v); err != nil {
		panic(ErrInvariantBroken)
	}
	ib.inner = newInner
}

// Add is shorthand for Set(Size(), v).
func (ib *Inflatable) Add(v int64) error { return ib.Set(ib.Size(), v) }

// Accommodate ensures capacity for at least i+1 entries.
func (ib *Inflatable) Accommodate(i int) { ib.inner.Accommodate(i) }

// Shrinkwrap delegates to the inner block.
func (ib *Inflatable) Shrinkwrap(roomPct int) { ib.inner.Shrinkwrap(roomPct) }

// Clear resets to zero entries; the inner block's representation is
// preserved.
func (ib *Inflatable) Clear() { ib.inner.Clear() }

// Kind reports the tag of the current inner representation.
func (ib *Inflatable) Kind() Kind { return kindOf(ib.inner) }

// InflationStats reports the current inner block's storage shape,
// carrying forward the byte-budget bookkeeping the teacher spells out
// in comments for its fixed-size ART nodes -- here it's a runtime
// queryable bit budget instead, since these blocks have no compile-time
// struct size to comment about.
type InflationStats struct {
	Kind          Kind
	BitsPerEntry  int
	ContainerSize int // 0 for FixedWidth blocks, container count for Bit blocks
}

// Stats reports the current inner block's storage shape.
func (ib *Inflatable) Stats() InflationStats {
	switch v := ib.inner.(type) {
	case *FixedWidth:
		return InflationStats{Kind: kindOf(v), BitsPerEntry: v.BitsPerEntry()}
	case *Bit:
		return InflationStats{Kind: kindOf(v), BitsPerEntry: v.BitsPerEntry(), ContainerSize: v.ContainerCount()}
	default:
		panic("block: Stats called on an unrecognized Block implementation")
	}
}

// BitwiseGrowth is the default Inflatable factory: it prefers the
// narrowest UnsignedOrNull Bit block (width snapped via SmartEntrySize)
// able to hold valueToAccommodate, falling
// back to a 64-bit FixedWidth block once that would need more than 32
// bits. This is the factory tree.Tree uses for its child-index arrays.
func BitwiseGrowth(valueToAccommodate int64, capacity int) Block {
	needed := bitsRequiredForUnsignedOrNull(valueToAccommodate)
	if needed <= 32 {
		k := SmartEntrySize(needed)
		return NewBit(k, UnsignedOrNull, capacity)
	}
	return NewFixedWidth64(capacity)
}

// PrimitiveByteAligned is an alias for JavaPrimitiveBlocks, named after
// the configuration knob callers select it by.
var PrimitiveByteAligned Factory = JavaPrimitiveBlocks

// JavaPrimitiveBlocks is the alternative Inflatable factory for callers
// who prefer byte-aligned storage: it picks the narrowest FixedWidth
// (8/16/32/64) that fits valueToAccommodate.
func JavaPrimitiveBlocks(valueToAccommodate int64, capacity int) Block {
	switch {
	case valueToAccommodate >= -128 && valueToAccommodate <= 127:
		return NewFixedWidth8(capacity)
	case valueToAccommodate >= -32768 && valueToAccommodate <= 32767:
		return NewFixedWidth16(capacity)
	case valueToAccommodate >= -2147483648 && valueToAccommodate <= 2147483647:
		return NewFixedWidth32(capacity)
	default:
		return NewFixedWidth64(capacity)
	}
}
