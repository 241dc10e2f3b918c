package bitseries

import (
	"math"

	"github.com/zeebo/errs"
)

// Width is the number of bits held by a Series.
const Width = 64

const (
	MinValue uint64 = 0
	MaxValue uint64 = math.MaxUint64
)

var (
	// Overflow is returned when a Series does not fit the requested type.
	Overflow = errs.Class("bitseries: overflow")

	// InvalidArgument is returned for bit positions outside [0, Width).
	InvalidArgument = errs.Class("bitseries: invalid argument")
)
