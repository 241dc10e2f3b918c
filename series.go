package bitseries

import "math"

// Series is a 64 bit shift register. Bit 0 is the least significant
// bit and holds the most recently pushed value. The zero value is an
// empty series.
type Series uint64

func FromUint64(u uint64) Series { return Series(u) }

// FromInt64 keeps the two's complement bit pattern of i.
func FromInt64(i int64) Series { return Series(uint64(i)) }

// Push shifts the series left by one, dropping bit 63, and stores bit
// in position 0.
func (s *Series) Push(bit bool) {
	*s <<= 1
	if bit {
		*s |= 1
	}
}

// LeftShift shifts the series n bits toward the most significant end.
// Shifting by Width or more clears it.
func (s *Series) LeftShift(n uint) { *s = s.Shl(n) }

// RightShift shifts the series n bits toward the least significant end.
// Shifting by Width or more clears it.
func (s *Series) RightShift(n uint) { *s = s.Shr(n) }

// Shl returns s shifted left by n bits without modifying s.
func (s Series) Shl(n uint) Series { return s << n }

// Shr returns s shifted right by n bits without modifying s.
func (s Series) Shr(n uint) Series { return s >> n }

func (s Series) Value() uint64  { return uint64(s) }
func (s Series) Uint64() uint64 { return uint64(s) }

// Int32 returns the low 32 bits of the series as a signed integer.
func (s Series) Int32() int32 { return int32(uint32(s)) }

// Int64 returns the series as a signed integer. It fails with an
// Overflow error when bit 63 is set.
func (s Series) Int64() (int64, error) {
	if uint64(s) > math.MaxInt64 {
		return 0, Overflow.New("%d does not fit in an int64", uint64(s))
	}
	return int64(s), nil
}

// MustInt64 is like Int64 but panics on overflow.
func (s Series) MustInt64() int64 {
	v, err := s.Int64()
	if err != nil {
		panic(err)
	}
	return v
}
