package tree

import "testing"

func TestColourBitsDefaultsToRed(t *testing.T) {
	var c colourBits
	for _, i := range []int{0, 1, 63, 64, 255, 256, 1000} {
		if c.isBlack(i) {
			t.Fatalf("isBlack(%d) on a fresh colourBits = true, want false (red)", i)
		}
	}
}

func TestColourBitsSetAndToggle(t *testing.T) {
	var c colourBits
	indices := []int{0, 1, 63, 64, 127, 128, 1000}
	for _, i := range indices {
		c.setBlack(i)
		if !c.isBlack(i) {
			t.Fatalf("isBlack(%d) after setBlack = false, want true", i)
		}
	}
	for _, i := range indices {
		c.toggle(i)
		if c.isBlack(i) {
			t.Fatalf("isBlack(%d) after toggle from black = true, want false", i)
		}
		c.toggle(i)
		if !c.isBlack(i) {
			t.Fatalf("isBlack(%d) after toggling back = false, want true", i)
		}
	}
}

func TestColourBitsSetRedClearsBit(t *testing.T) {
	var c colourBits
	c.setBlack(42)
	c.setRed(42)
	if c.isBlack(42) {
		t.Fatalf("isBlack(42) after setRed = true, want false")
	}
	// unrelated bits in the same word are untouched
	c.setBlack(40)
	c.setRed(42)
	if !c.isBlack(40) {
		t.Fatalf("isBlack(40) after setRed(42) = false, want true (unrelated bit)")
	}
}
