package bitseries

import "fmt"

// String renders all 64 bits, most significant first.
func (s Series) String() string { return fmt.Sprintf("%064b", uint64(s)) }

// FromString pushes every character of str in order, treating '1' as a
// set bit and anything else as unset. Only the last Width characters
// can survive, so longer strings keep their trailing 64 characters.
// Shorter strings behave as if left padded with '0'.
func FromString(str string) Series {
	// the padding would be pushed into an empty series, so it is skipped.
	var s Series
	for _, c := range str {
		s.Push(c == '1')
	}
	return s
}

func (s Series) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Series) UnmarshalText(text []byte) error {
	*s = FromString(string(text))
	return nil
}

// Set implements flag.Value.
func (s *Series) Set(str string) error {
	*s = FromString(str)
	return nil
}
