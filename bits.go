package bitseries

import "math/bits"

// IsBitSet reports whether the bit at pos, counted from the least
// significant bit, is set. Positions outside [0, Width) are rejected
// with an InvalidArgument error.
func (s Series) IsBitSet(pos int) (bool, error) {
	if pos < 0 || pos >= Width {
		return false, InvalidArgument.New("bit position %d outside [0, %d)", pos, Width)
	}
	return s&(1<<uint(pos)) != 0, nil
}

// SetSize returns the length of the run of set bits starting at bit 0.
// It is not a population count: 0b1011 has a set size of 2.
func (s Series) SetSize() uint { return uint(bits.TrailingZeros64(^uint64(s))) }
