package tree

// colourBits is a growable packed bit set recording one colour bit per
// node ordinal: bit set means black, absent (including never-grown)
// means red. It generalises the teacher's fixed-size bitfield256 /
// art.PresenceBitmap (four uint64 words addressing a fixed 256 bits via
// word, offset := i>>6, i&0x3F) to an unbounded population: instead of
// [4]uint64, a slice of uint64 words grows one word at a time as node
// ordinals cross 64-bit boundaries.
type colourBits struct {
	words []uint64
}

func (c *colourBits) ensure(i int) {
	word := i >> 6
	for word >= len(c.words) {
		c.words = append(c.words, 0)
	}
}

// isBlack reports whether node i is black. Newly-grown, never-written
// bits default to red (false), matching the LLRB convention that a
// fresh node starts red.
func (c *colourBits) isBlack(i int) bool {
	word := i >> 6
	if word >= len(c.words) {
		return false
	}
	return c.words[word]&(uint64(1)<<uint(i&0x3F)) != 0
}

func (c *colourBits) setBlack(i int) {
	c.ensure(i)
	c.words[i>>6] |= uint64(1) << uint(i&0x3F)
}

func (c *colourBits) setRed(i int) {
	c.ensure(i)
	c.words[i>>6] &^= uint64(1) << uint(i&0x3F)
}

func (c *colourBits) toggle(i int) {
	if c.isBlack(i) {
		c.setRed(i)
	} else {
		c.setBlack(i)
	}
}
