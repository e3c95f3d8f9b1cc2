// Package ordmap is the worked example of the "concrete key/value
// schema" the tree core leaves to callers: Key, a comparator-friendly
// byte-slice key, and MultiMap, a Set3-valued multi-map keyed by Key and
// backed by a tree.Tree instead of a linear scan.
package ordmap

import (
	"encoding/binary"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Key is a byte slice used as a map key. Byte-wise comparison of two
// Keys corresponds to the ordering tree.Tree's comparator must expose,
// so every constructor here produces an encoding where lexicographic
// byte order matches the intended value order.
//
// Integer keys are encoded as 8-byte big-endian, offset by 1<<63 before
// encoding so that signed and unsigned values compare consistently:
// FromInt64(x) and FromUint64(x) agree for the same numeric x in
// [0, 2^63), and negative values sort before zero/positive ones. A
// uint64 of 2^63 or more wraps: FromUint64(u) equals FromInt64(int64(u))
// and sorts among the negative keys.
type Key []byte

// FromBytes returns a copy of b as a Key. A nil b yields an empty
// (zero-length, non-nil) Key.
func FromBytes(b []byte) Key {
	if b == nil {
		return []byte{}
	}
	kb := make([]byte, len(b))
	copy(kb, b)
	return Key(kb)
}

// FromString returns a Key built from s after normalizing it to Unicode
// NFC, so that canonically-equivalent strings produce equal Keys.
func FromString(s string) Key {
	s = norm.NFC.String(s)
	return FromBytes([]byte(s))
}

const int64Offset = uint64(1) << 63

func encodeOffset(u uint64) Key {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], u+int64Offset)
	return FromBytes(b[:])
}

// FromInt64 converts an int64 to an 8-byte big-endian Key, offset so
// that lexicographic Key order matches numeric order.
func FromInt64(i int64) Key { return encodeOffset(uint64(i)) }

// FromInt converts an int to an 8-byte big-endian Key.
func FromInt(i int) Key { return FromInt64(int64(i)) }

// FromInt32 converts an int32 to an 8-byte big-endian Key.
func FromInt32(i int32) Key { return FromInt64(int64(i)) }

// FromInt16 converts an int16 to an 8-byte big-endian Key.
func FromInt16(i int16) Key { return FromInt64(int64(i)) }

// FromInt8 converts an int8 to an 8-byte big-endian Key.
func FromInt8(i int8) Key { return FromInt64(int64(i)) }

// FromUint64 converts a uint64 to an 8-byte big-endian Key.
func FromUint64(u uint64) Key { return encodeOffset(u) }

// FromUint converts a uint to an 8-byte big-endian Key.
func FromUint(u uint) Key { return FromUint64(uint64(u)) }

// FromUint32 converts a uint32 to an 8-byte big-endian Key.
func FromUint32(u uint32) Key { return FromUint64(uint64(u)) }

// FromUint16 converts a uint16 to an 8-byte big-endian Key.
func FromUint16(u uint16) Key { return FromUint64(uint64(u)) }

// FromUint8 converts a uint8 to an 8-byte big-endian Key.
func FromUint8(u uint8) Key { return FromUint64(uint64(u)) }

// FromByte is an alias for FromUint8.
func FromByte(b byte) Key { return FromUint8(b) }

// Bytes returns a copy of the Key's contents.
func (k Key) Bytes() []byte {
	if k == nil {
		return nil
	}
	b := make([]byte, len(k))
	copy(b, k)
	return b
}

// Clone returns an independent copy of k.
func (k Key) Clone() Key {
	if k == nil {
		return nil
	}
	kb := make([]byte, len(k))
	copy(kb, k)
	return Key(kb)
}

// String renders the Key as uppercase hex byte tuples, e.g. "[01,AB,00]".
func (k Key) String() string {
	if len(k) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	const hex = "0123456789ABCDEF"
	for i, b := range k {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(hex[b>>4])
		sb.WriteByte(hex[b&0x0F])
	}
	sb.WriteByte(']')
	return sb.String()
}

// Equal reports whether k and other have identical contents.
func (k Key) Equal(other Key) bool {
	if len(k) != len(other) {
		return false
	}
	for i := range k {
		if k[i] != other[i] {
			return false
		}
	}
	return true
}

// Compare returns -1, 0, or 1 as k is less than, equal to, or greater
// than other, by byte-wise lexicographic order.
func (k Key) Compare(other Key) int {
	for i := 0; i < len(k) && i < len(other); i++ {
		if k[i] < other[i] {
			return -1
		}
		if k[i] > other[i] {
			return 1
		}
	}
	switch {
	case len(k) < len(other):
		return -1
	case len(k) > len(other):
		return 1
	default:
		return 0
	}
}

// LessThan reports whether k sorts before other.
func (k Key) LessThan(other Key) bool { return k.Compare(other) < 0 }

// IsEmpty reports whether the Key is empty or nil.
func (k Key) IsEmpty() bool { return len(k) == 0 }
