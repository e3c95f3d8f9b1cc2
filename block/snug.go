package block

// Snug computes, in a single pass, the narrowest variant+width able to
// hold every value currently stored, and returns a new Bit block of
// that shape with every entry copied over (then shrinkwrapped with
// roomPct headroom). Ties prefer UnsignedOrNull, then Unsigned, then
// Signed. If the current block is already optimal, or is empty, Snug
// returns the receiver unchanged.
func (b *Bit) Snug(roomPct int) *Bit {
	if b.p == 0 {
		return b
	}

	min, max := b.Get(0), b.Get(0)
	for i := 1; i < b.p; i++ {
		v := b.Get(i)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	type candidate struct {
		variant Variant
		width   int
		ok      bool
	}

	candidates := [3]candidate{
		{UnsignedOrNull, requiredWidth(min, max, bitsRequiredForUnsignedOrNull), min >= -1},
		{Unsigned, requiredWidth(min, max, bitsRequiredForUnsigned), min >= 0},
		{Signed, requiredWidth(min, max, bitsRequiredForSigned), true},
	}

	best := -1
	for i, c := range candidates {
		if !c.ok || c.width > 32 {
			continue
		}
		if best == -1 || c.width < candidates[best].width {
			best = i
		}
	}
	if best == -1 {
		// Every variant needs more than 32 bits; nothing narrower is
		// representable as a Bit block, so keep the receiver as-is.
		return b
	}

	chosen := candidates[best]
	if chosen.variant == b.variant && chosen.width == b.k {
		return b
	}

	out := NewBit(chosen.width, chosen.variant, b.p)
	for i := 0; i < b.p; i++ {
		if err := out.Add(b.Get(i)); err != nil {
			panic(ErrInvariantBroken)
		}
	}
	out.Shrinkwrap(roomPct)
	return out
}

func requiredWidth(min, max int64, f func(int64) int) int {
	wMin, wMax := f(min), f(max)
	if wMin > wMax {
		return wMin
	}
	return wMax
}
