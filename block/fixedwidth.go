package block

// FixedWidth is a growable sequence of signed two's-complement integers
// of a fixed element width w in {8, 16, 32, 64} bits, backed by a
// contiguous buffer of exactly that width with amortised doubling-style
// growth (see Accommodate).
type FixedWidth struct {
	width uint8
	p     int
	d8    []int8
	d16   []int16
	d32   []int32
	d64   []int64
}

// NewFixedWidth8/16/32/64 create an empty FixedWidth block of the named
// width with room for initialCapacity entries pre-allocated.
func NewFixedWidth8(initialCapacity int) *FixedWidth  { return newFixedWidth(8, initialCapacity) }
func NewFixedWidth16(initialCapacity int) *FixedWidth { return newFixedWidth(16, initialCapacity) }
func NewFixedWidth32(initialCapacity int) *FixedWidth { return newFixedWidth(32, initialCapacity) }
func NewFixedWidth64(initialCapacity int) *FixedWidth { return newFixedWidth(64, initialCapacity) }

func newFixedWidth(width uint8, initialCapacity int) *FixedWidth {
	b := &FixedWidth{width: width}
	if initialCapacity > 0 {
		b.accommodate(initialCapacity - 1)
	}
	return b
}

// signedRange returns the inclusive legal range for w signed bits.
//
// The formulas below rely on Go's defined two's-complement wraparound:
// for w=64, int64(1)<<63 evaluates to math.MinInt64, and negating or
// decrementing that value wraps back to MinInt64/MaxInt64 respectively
// -- exactly the bounds a 64-bit signed block needs -- so no special
// case for w=64 is required.
func signedRange(w uint8) (lo, hi int64) {
	half := int64(1) << (w - 1)
	return -half, half - 1
}

func (b *FixedWidth) capacity() int {
	switch b.width {
	case 8:
		return len(b.d8)
	case 16:
		return len(b.d16)
	case 32:
		return len(b.d32)
	default:
		return len(b.d64)
	}
}

// Size returns the number of live entries.
func (b *FixedWidth) Size() int { return b.p }

// BitsPerEntry returns the element width in bits.
func (b *FixedWidth) BitsPerEntry() int { return int(b.width) }

// Get returns the value at i, panicking if i is outside [0, Size()).
func (b *FixedWidth) Get(i int) int64 {
	if i < 0 || i >= b.p {
		panic(ErrIndexOutOfBounds)
	}
	switch b.width {
	case 8:
		return int64(b.d8[i])
	case 16:
		return int64(b.d16[i])
	case 32:
		return int64(b.d32[i])
	default:
		return b.d64[i]
	}
}

// Set stores v at i in [0, Size()], extending the block by one entry
// when i == Size(). Returns ErrValueBeyondLimit without mutating state
// if v does not fit the block's width.
func (b *FixedWidth) Set(i int, v int64) error {
	if i < 0 || i > b.p {
		panic(ErrIndexOutOfBounds)
	}
	lo, hi := signedRange(b.width)
	if v < lo || v > hi {
		return outOfRange(v)
	}
	extending := i == b.p
	if extending {
		b.accommodate(i)
	}
	switch b.width {
	case 8:
		b.d8[i] = int8(v)
	case 16:
		b.d16[i] = int16(v)
	case 32:
		b.d32[i] = int32(v)
	default:
		b.d64[i] = v
	}
	if extending {
		b.p++
	}
	return nil
}

// Add is shorthand for Set(Size(), v).
func (b *FixedWidth) Add(v int64) error { return b.Set(b.p, v) }

// nextCapacity returns the smallest value of the form 5*2^k that
// exceeds i, saturating at math.MaxInt32. The 5*2^k progression
// (rather than a pure power of two) is deliberate: it spreads
// reallocation sizes across allocator size classes instead of always
// landing on the same bucket.
func nextCapacity(i int) int {
	const maxCap = (1 << 31) - 1
	if i >= maxCap-1 {
		return maxCap
	}
	cap := 5
	for cap <= i {
		if cap > maxCap/2 {
			return maxCap
		}
		cap *= 2
	}
	return cap
}

// Accommodate ensures capacity for at least i+1 entries.
func (b *FixedWidth) Accommodate(i int) { b.accommodate(i) }

func (b *FixedWidth) accommodate(i int) {
	if i < b.capacity() {
		return
	}
	newCap := nextCapacity(i)
	switch b.width {
	case 8:
		grown := make([]int8, newCap)
		copy(grown, b.d8)
		b.d8 = grown
	case 16:
		grown := make([]int16, newCap)
		copy(grown, b.d16)
		b.d16 = grown
	case 32:
		grown := make([]int32, newCap)
		copy(grown, b.d32)
		b.d32 = grown
	default:
		grown := make([]int64, newCap)
		copy(grown, b.d64)
		b.d64 = grown
	}
}

func ceilPct(p, roomPct int) int {
	n := p * (100 + roomPct)
	room := (n + 99) / 100
	const maxCap = (1 << 31) - 1
	if room > maxCap {
		return maxCap
	}
	if room < 0 {
		return maxCap
	}
	return room
}

// Shrinkwrap resizes the backing buffer to ceil(Size()*(100+roomPct)/100)
// slots, saturating at 2^31-1.
func (b *FixedWidth) Shrinkwrap(roomPct int) {
	b.resizeTo(ceilPct(b.p, roomPct))
}

// resizeTo reallocates the backing buffer to exactly newCap slots,
// preserving the first Size() entries. Used directly by Bit, which
// needs to size its container buffer in container units rather than
// entry units.
func (b *FixedWidth) resizeTo(newCap int) {
	if newCap < b.p {
		newCap = b.p
	}
	switch b.width {
	case 8:
		grown := make([]int8, newCap)
		copy(grown, b.d8[:b.p])
		b.d8 = grown
	case 16:
		grown := make([]int16, newCap)
		copy(grown, b.d16[:b.p])
		b.d16 = grown
	case 32:
		grown := make([]int32, newCap)
		copy(grown, b.d32[:b.p])
		b.d32 = grown
	default:
		grown := make([]int64, newCap)
		copy(grown, b.d64[:b.p])
		b.d64 = grown
	}
}

// Clear resets the block to zero entries and releases the buffer.
func (b *FixedWidth) Clear() {
	b.p = 0
	b.d8 = nil
	b.d16 = nil
	b.d32 = nil
	b.d64 = nil
}
