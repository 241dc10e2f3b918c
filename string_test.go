package bitseries

import (
	"encoding/json"
	"flag"
	"strings"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

func TestString(t *testing.T) {
	t.Run("Render", func(t *testing.T) {
		s := FromUint64(1)
		assert.Equal(t, s.String(), strings.Repeat("0", 63)+"1")

		s.LeftShift(1)
		assert.Equal(t, s.String(), strings.Repeat("0", 62)+"10")

		s.LeftShift(1)
		assert.Equal(t, s.String(), strings.Repeat("0", 61)+"100")

		assert.Equal(t, FromInt64(1).String(), strings.Repeat("0", 63)+"1")
		assert.Equal(t, FromUint64(MaxValue).String(), strings.Repeat("1", 64))
		assert.Equal(t, FromUint64(0).String(), strings.Repeat("0", 64))
	})

	t.Run("Shape", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			str := FromUint64(pcg.Uint64()).String()
			assert.Equal(t, len(str), Width)
			assert.Equal(t, strings.Trim(str, "01"), "")
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			s := FromUint64(pcg.Uint64())
			assert.Equal(t, FromString(s.String()), s)
		}
	})

	t.Run("Padding", func(t *testing.T) {
		assert.Equal(t, FromString("001"), FromUint64(1))
		assert.Equal(t, FromString(""), FromUint64(0))
		assert.Equal(t, FromString("101"), FromUint64(5))
	})

	t.Run("Other Characters", func(t *testing.T) {
		assert.Equal(t, FromString("I am number 1"), FromUint64(1))
		assert.Equal(t, FromString("1x1"), FromUint64(5))
		assert.Equal(t, FromString("1é"), FromUint64(2))
	})

	// strings longer than the width keep only their trailing characters
	// because every push drops the oldest bit.
	t.Run("Longer Than Width", func(t *testing.T) {
		tail := strings.Repeat("0", 63) + "1"
		assert.Equal(t, FromString("1"+tail), FromUint64(1))
		assert.Equal(t, FromString(strings.Repeat("1", 100)+tail), FromUint64(1))
		assert.Equal(t, FromString(strings.Repeat("1", 65)), FromUint64(MaxValue))
	})

	t.Run("Text", func(t *testing.T) {
		s := FromUint64(pcg.Uint64())

		data, err := json.Marshal(map[string]Series{"s": s})
		assert.NoError(t, err)

		var got map[string]Series
		assert.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, got["s"], s)
	})

	t.Run("Flag", func(t *testing.T) {
		var s Series
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.Var(&s, "series", "")

		assert.NoError(t, fs.Parse([]string{"-series", "110"}))
		assert.Equal(t, s, FromUint64(6))
	})
}

func BenchmarkString(b *testing.B) {
	s := FromUint64(pcg.Uint64())
	str := s.String()

	b.Run("String", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = s.String()
		}
	})

	b.Run("FromString", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			FromString(str)
		}
	})
}
