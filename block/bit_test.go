package block

import (
	"errors"
	"testing"
)

func TestBitPackingRoundTrip(t *testing.T) {
	b := NewBit(5, Unsigned, 0)
	for i := int64(0); i < 31; i++ {
		if err := b.Add(i); err != nil {
			t.Fatalf("Add(%d): unexpected error: %v", i, err)
		}
	}
	if b.entriesPerContainer() != 12 {
		t.Fatalf("entriesPerContainer() for k=5 = %d, want 12", b.entriesPerContainer())
	}
	for i := int64(0); i < 31; i++ {
		if got := b.Get(int(i)); got != i {
			t.Fatalf("Get(%d) = %d, want %d", i, got, i)
		}
	}
}

func TestBitSignedVariant(t *testing.T) {
	b := NewBit(4, Signed, 0)
	vals := []int64{-8, -1, 0, 7}
	for _, v := range vals {
		if err := b.Add(v); err != nil {
			t.Fatalf("Add(%d): unexpected error: %v", v, err)
		}
	}
	for i, v := range vals {
		if got := b.Get(i); got != v {
			t.Fatalf("Get(%d) = %d, want %d", i, got, v)
		}
	}
	if err := b.Add(8); err == nil {
		t.Fatalf("Add(8) on a signed 4-bit block: expected error, got nil")
	} else if !errors.Is(err, ErrValueBeyondLimit) {
		t.Fatalf("Add(8): expected ErrValueBeyondLimit, got %v", err)
	}
}

func TestBitUnsignedOrNullReservesAllOnes(t *testing.T) {
	b := NewBit(3, UnsignedOrNull, 0)
	vals := []int64{-1, 0, 1, 6}
	for _, v := range vals {
		if err := b.Add(v); err != nil {
			t.Fatalf("Add(%d): unexpected error: %v", v, err)
		}
	}
	for i, v := range vals {
		if got := b.Get(i); got != v {
			t.Fatalf("Get(%d) = %d, want %d", i, got, v)
		}
	}
	// 7 (0b111) is the all-ones pattern at k=3, reserved for -1: the
	// largest representable non-null value is 2^k-2 = 6.
	if err := b.Add(7); err == nil {
		t.Fatalf("Add(7) on a 3-bit UnsignedOrNull block: expected error, got nil")
	}
}

func TestBitContainerCount(t *testing.T) {
	b := NewBit(21, Unsigned, 0)
	if b.entriesPerContainer() != 3 {
		t.Fatalf("entriesPerContainer() for k=21 = %d, want 3", b.entriesPerContainer())
	}
	for i := 0; i < 7; i++ {
		_ = b.Add(int64(i))
	}
	if got := b.ContainerCount(); got != 3 {
		t.Fatalf("ContainerCount() for 7 entries at 3/container = %d, want 3", got)
	}
}

func TestSmartEntrySizeSnapsToDivisors(t *testing.T) {
	cases := []struct {
		minBits int
		want    int
	}{
		{1, 1},
		{3, 3},
		{7, 7},
		{11, 12},
		{13, 16},
		{17, 21},
		{20, 21},
		{21, 21},
		{22, 32},
		{32, 32},
	}
	for _, c := range cases {
		if got := SmartEntrySize(c.minBits); got != c.want {
			t.Fatalf("SmartEntrySize(%d) = %d, want %d", c.minBits, got, c.want)
		}
	}
}

func TestBitsRequiredForUnsignedOrNull(t *testing.T) {
	cases := []struct {
		v    int64
		want int
	}{
		{-1, 1},
		{0, 1},
		{1, 2},
		{255, 9},
		{70000, 17},
	}
	for _, c := range cases {
		if got := bitsRequiredForUnsignedOrNull(c.v); got != c.want {
			t.Fatalf("bitsRequiredForUnsignedOrNull(%d) = %d, want %d", c.v, got, c.want)
		}
	}
}
