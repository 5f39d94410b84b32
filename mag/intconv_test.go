// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mag

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormatRoundTrip(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(10))
	for i := 0; i < 1000; i++ {
		x := randInt(r, 10)
		s := x.String()
		a.Equal(toBig(x).String(), s)
		parsed, err := Parse(s)
		a.NoError(err)
		a.Equal(0, parsed.Cmp(x))
	}
}

func TestParse(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		res string
		err string
	}{
		{s: "0", res: "0"},
		{s: "-0", res: "0"},
		{s: "+15", res: "15"},
		{s: "000000000000000000000123", res: "123"},
		{s: "-1000000000", res: "-1000000000"},
		{s: "123456789012345678901234567890", res: "123456789012345678901234567890"},
		{s: "", err: "mag: empty string"},
		{s: "-", err: `mag: no digits in "-"`},
		{s: "12a4", err: `mag: unexpected symbol 'a' at position 3`},
		{s: "1 000", err: `mag: unexpected symbol ' ' at position 2`},
		{s: "+-1", err: `mag: unexpected symbol '-' at position 2`},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x, err := Parse(test.s)
			if len(test.err) > 0 {
				a.EqualError(err, test.err)
				a.True(Error.Has(err))
				return
			}
			if a.NoError(err) {
				a.Equal(test.res, x.String())
			}
		})
	}
	a.Panics(func() { MustParse("x") })
}

func TestBytesRoundTrip(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 1000; i++ {
		x := randInt(r, 7)
		be := x.Bytes()
		a.Equal(new(big.Int).Abs(toBig(x)).Bytes(), be)
		a.Equal(0, FromBytes(x.Sign(), be).Cmp(x))
		le := x.BytesLE()
		a.Len(le, len(be))
		a.Equal(0, FromBytesLE(x.Sign(), le).Cmp(x))
	}
	a.Equal("258", FromBytes(1, []byte{0, 0, 1, 2}).String())
	a.Equal("-513", FromBytesLE(-1, []byte{1, 2, 0}).String())
	a.Empty(new(Int).Bytes())
}

func TestFormat(t *testing.T) {
	a := assert.New(t)
	x := MustParse("-4294967296")
	a.Equal("-4294967296", fmt.Sprintf("%d", x))
	a.Equal("-4294967296", fmt.Sprintf("%v", x))
	a.Equal("-100000000", fmt.Sprintf("%x", x))
	a.Equal("+255", fmt.Sprintf("%+d", NewInt(255)))
	a.Equal("FF", fmt.Sprintf("%X", NewInt(255)))
	a.Equal("  -12", fmt.Sprintf("%5d", NewInt(-12)))
	a.Equal("-0012", fmt.Sprintf("%05d", NewInt(-12)))
	a.Equal("-12  |", fmt.Sprintf("%-5d|", NewInt(-12)))
	a.Equal("%!q(mag.Int=1)", fmt.Sprintf("%q", NewInt(1)))
	a.Equal("   -12|-12|+7", fmt.Sprintf("%6d|%d|%+d", NewInt(-12), NewInt(-12), NewInt(7)))
	a.Equal("ffffffffffffffffffff 255", fmt.Sprintf("%x %d", MustParse("1208925819614629174706175"), NewInt(255)))
}

func TestWords(t *testing.T) {
	a := assert.New(t)
	x := FromWords(-1, []Word{1, 2, 0, 0})
	a.Equal([]Word{1, 2}, x.Words())
	a.Equal(-1, x.Sign())
	a.Equal("-8589934593", x.String())
	a.Equal(0, FromWords(-1, []Word{0, 0}).Sign())
}

func BenchmarkString(b *testing.B) {
	r := rand.New(rand.NewSource(12))
	x := randInt(r, 50)
	var dummy int
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dummy += len(x.String())
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}
