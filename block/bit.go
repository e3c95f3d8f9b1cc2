package block

import "math/bits"

// Variant selects how a Bit block interprets its packed k-bit entries.
type Variant uint8

const (
	// Unsigned entries cover [0, 2^k-1].
	Unsigned Variant = iota
	// Signed entries are two's-complement, covering [-2^(k-1), 2^(k-1)-1].
	Signed
	// UnsignedOrNull entries cover [-1, 2^k-2]; the all-ones bit pattern
	// is reserved to denote -1.
	UnsignedOrNull
)

func (v Variant) String() string {
	switch v {
	case Unsigned:
		return "Unsigned"
	case Signed:
		return "Signed"
	case UnsignedOrNull:
		return "UnsignedOrNull"
	default:
		return "Unknown"
	}
}

// Bit is a growable sequence of entries of arbitrary width k in [1,32]
// bits, packed into 64-bit containers held in a FixedWidth(64) block.
type Bit struct {
	k        int
	variant  Variant
	p        int
	containers *FixedWidth
}

// NewBit creates an empty Bit block of entry width k and the given
// variant, with room for initialCapacity entries pre-allocated.
func NewBit(k int, variant Variant, initialCapacity int) *Bit {
	if k < 1 || k > 32 {
		panic("block: bit width k must be in [1,32]")
	}
	b := &Bit{k: k, variant: variant, containers: NewFixedWidth64(0)}
	if initialCapacity > 0 {
		b.Accommodate(initialCapacity - 1)
	}
	return b
}

// entriesPerContainer returns floor(64/k): any remainder bits of the
// last container are wasted, by design (see spec note on entries per
// container).
func (b *Bit) entriesPerContainer() int { return 64 / b.k }

func (b *Bit) mask() uint64 {
	if b.k == 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(b.k)) - 1
}

func (b *Bit) containerIndex(i int) int { return i / b.entriesPerContainer() }
func (b *Bit) shiftOf(i int) uint       { return uint(i%b.entriesPerContainer()) * uint(b.k) }

// Size returns the number of live entries.
func (b *Bit) Size() int { return b.p }

// K returns the entry width in bits.
func (b *Bit) K() int { return b.k }

// VariantOf returns the interpretation variant.
func (b *Bit) VariantOf() Variant { return b.variant }

// BitsPerEntry returns the entry width in bits.
func (b *Bit) BitsPerEntry() int { return b.k }

// ContainerCount returns the number of live 64-bit containers.
func (b *Bit) ContainerCount() int {
	epc := b.entriesPerContainer()
	return (b.p + epc - 1) / epc
}

func (b *Bit) bitsForValue(v int64) uint64 {
	switch b.variant {
	case Unsigned:
		return uint64(v) & b.mask()
	case Signed:
		return uint64(v) & b.mask()
	default: // UnsignedOrNull
		if v == -1 {
			return b.mask()
		}
		return uint64(v) & b.mask()
	}
}

func (b *Bit) valueForBits(bits_ uint64) int64 {
	switch b.variant {
	case Unsigned:
		return int64(bits_)
	case Signed:
		if bits_&(uint64(1)<<uint(b.k-1)) != 0 {
			return int64(bits_) - (int64(1) << uint(b.k))
		}
		return int64(bits_)
	default: // UnsignedOrNull
		if bits_ == b.mask() {
			return -1
		}
		return int64(bits_)
	}
}

func (b *Bit) isValid(v int64) bool {
	switch b.variant {
	case Unsigned:
		return v >= 0 && v <= int64(b.mask())
	case Signed:
		lo, hi := signedRangeK(b.k)
		return v >= lo && v <= hi
	default: // UnsignedOrNull
		return v >= -1 && v <= int64(b.mask())-1
	}
}

func signedRangeK(k int) (lo, hi int64) {
	half := int64(1) << uint(k-1)
	return -half, half - 1
}

// Get returns the value at i, panicking if i is outside [0, Size()).
func (b *Bit) Get(i int) int64 {
	if i < 0 || i >= b.p {
		panic(ErrIndexOutOfBounds)
	}
	c := b.containerIndex(i)
	raw := uint64(b.containers.Get(c))
	bits_ := (raw >> b.shiftOf(i)) & b.mask()
	return b.valueForBits(bits_)
}

// Set stores v at i in [0, Size()], extending the block by one entry
// when i == Size(). Returns ErrValueBeyondLimit without mutating state
// if v is not legal for the block's variant/width.
func (b *Bit) Set(i int, v int64) error {
	if i < 0 || i > b.p {
		panic(ErrIndexOutOfBounds)
	}
	if !b.isValid(v) {
		return outOfRange(v)
	}
	c := b.containerIndex(i)
	extending := i == b.p
	if extending && c >= b.containers.Size() {
		if err := b.containers.Add(0); err != nil {
			panic(ErrInvariantBroken)
		}
	}
	raw := uint64(b.containers.Get(c))
	shift := b.shiftOf(i)
	raw = (raw &^ (b.mask() << shift)) | (b.bitsForValue(v) << shift)
	if err := b.containers.Set(c, int64(raw)); err != nil {
		panic(ErrInvariantBroken)
	}
	if extending {
		b.p++
	}
	return nil
}

// Add is shorthand for Set(Size(), v).
func (b *Bit) Add(v int64) error { return b.Set(b.p, v) }

// Accommodate ensures capacity for at least i+1 entries, delegating to
// the underlying 64-bit container block.
func (b *Bit) Accommodate(i int) {
	b.containers.Accommodate(b.containerIndex(i))
}

// Shrinkwrap resizes the backing container buffer to hold
// ceil(Size()*(100+roomPct)/100) entries.
func (b *Bit) Shrinkwrap(roomPct int) {
	entryRoom := ceilPct(b.p, roomPct)
	epc := b.entriesPerContainer()
	containerRoom := (entryRoom + epc - 1) / epc
	b.containers.resizeTo(containerRoom)
}

// Clear resets the block to zero entries and releases storage.
func (b *Bit) Clear() {
	b.p = 0
	b.containers.Clear()
}

// bitsRequiredForUnsigned returns the minimum k in which v can be
// represented as an Unsigned entry; a large sentinel is returned when v
// is negative (no k suffices).
func bitsRequiredForUnsigned(v int64) int {
	if v < 0 {
		return 65
	}
	n := bits.Len64(uint64(v))
	if n == 0 {
		n = 1
	}
	return n
}

// bitsRequiredForSigned returns the minimum k in which v can be
// represented as a Signed (two's-complement) entry.
func bitsRequiredForSigned(v int64) int {
	var n int
	if v >= 0 {
		n = bits.Len64(uint64(v))
	} else {
		n = bits.Len64(uint64(^v))
	}
	return n + 1
}

// bitsRequiredForUnsignedOrNull returns the minimum k in which v can be
// represented as an UnsignedOrNull entry; a large sentinel is returned
// when v < -1.
func bitsRequiredForUnsignedOrNull(v int64) int {
	if v < -1 {
		return 65
	}
	return bitsRequiredForUnsigned(v + 1)
}

// SmartEntrySize snaps minBits up to the widest width that still packs
// the same number of entries, floor(64/minBits), into one container (so
// no container bits go to waste beyond what minBits already required).
// Realised widths are 1..10, 12, 16, 21, 32.
func SmartEntrySize(minBits int) int {
	if minBits < 1 {
		minBits = 1
	}
	if minBits > 64 {
		return 64
	}
	return 64 / (64 / minBits)
}
