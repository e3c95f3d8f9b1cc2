package ordmap

import "testing"

func TestFromStringNormalizesToNFC(t *testing.T) {
	decomposed := FromString("é")
	precomposed := FromString("é")
	if !decomposed.Equal(precomposed) {
		t.Fatalf("FromString of canonically-equivalent strings produced different Keys: %v vs %v", decomposed, precomposed)
	}
}

func TestIntegerKeyOrderingMatchesNumericOrdering(t *testing.T) {
	values := []int64{-100, -1, 0, 1, 100, 1 << 40, -(1 << 40)}
	for i := range values {
		for j := range values {
			ki, kj := FromInt64(values[i]), FromInt64(values[j])
			wantLess := values[i] < values[j]
			gotLess := ki.LessThan(kj)
			if wantLess != gotLess {
				t.Fatalf("FromInt64(%d).LessThan(FromInt64(%d)) = %v, want %v", values[i], values[j], gotLess, wantLess)
			}
		}
	}
}

func TestFromInt64AndFromUint64AgreeOnNonNegativeValues(t *testing.T) {
	cases := []int64{0, 1, 42, 1 << 62}
	for _, v := range cases {
		if !FromInt64(v).Equal(FromUint64(uint64(v))) {
			t.Fatalf("FromInt64(%d) != FromUint64(%d)", v, v)
		}
	}
}

func TestNegativeSortsBeforeNonNegative(t *testing.T) {
	neg := FromInt64(-1)
	zero := FromInt64(0)
	if !neg.LessThan(zero) {
		t.Fatalf("FromInt64(-1) should sort before FromInt64(0)")
	}
}

func TestCompareIsAntisymmetric(t *testing.T) {
	a := FromInt(5)
	b := FromInt(10)
	if a.Compare(b) != -1 {
		t.Fatalf("Compare(5,10) = %d, want -1", a.Compare(b))
	}
	if b.Compare(a) != 1 {
		t.Fatalf("Compare(10,5) = %d, want 1", b.Compare(a))
	}
	if a.Compare(a) != 0 {
		t.Fatalf("Compare(5,5) = %d, want 0", a.Compare(a))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	k := FromString("hello")
	c := k.Clone()
	if !k.Equal(c) {
		t.Fatalf("Clone produced an unequal Key")
	}
	c[0] = 0xFF
	if k.Equal(c) {
		t.Fatalf("mutating a Clone affected the original Key")
	}
}

func TestIsEmpty(t *testing.T) {
	if !FromBytes(nil).IsEmpty() {
		t.Fatalf("FromBytes(nil).IsEmpty() = false, want true")
	}
	if FromInt(0).IsEmpty() {
		t.Fatalf("FromInt(0).IsEmpty() = true, want false")
	}
}

func TestKeyString(t *testing.T) {
	k := Key([]byte{0x01, 0xAB, 0x00})
	if got, want := k.String(), "[01,AB,00]"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
