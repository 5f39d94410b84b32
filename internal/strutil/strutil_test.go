package strutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s      string
		digits string
		exp    int
		neg    bool
		err    string
	}{
		{s: "0", digits: "", exp: 0},
		{s: "-0.00", digits: "", exp: -2, neg: true},
		{s: "123", digits: "123", exp: 0},
		{s: "1.23", digits: "123", exp: -2},
		{s: "1.50", digits: "150", exp: -2},
		{s: "-000.0012", digits: "12", exp: -4, neg: true},
		{s: "+12e3", digits: "12", exp: 3},
		{s: "1.5E-7", digits: "15", exp: -8},
		{s: ".5", digits: "5", exp: -1},
		{s: "5.", digits: "5", exp: 0},
		{s: ` "1"`, err: `parse: unexpected symbol '"' at pos 2`},
		{s: `"  -1.5 "`, digits: "15", exp: -1, neg: true},
		{s: "", err: "parse: empty input"},
		{s: "-", err: "parse: empty input"},
		{s: "1.2.3", err: "parse: unexpected delimeter at pos 4"},
		{s: "12x", err: "parse: unexpected symbol 'x' at pos 3"},
		{s: "-12x", err: "parse: unexpected symbol 'x' at pos 4"},
		{s: "1e", err: `parse: error parsing exponent: strconv.ParseInt: parsing "": invalid syntax at pos 3`},
		{s: "e5", err: "parse: no digits before exponent at pos 1"},
		{s: ".", err: "parse: no digits at pos 1"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			digits, exp, neg, err := Parse(test.s)
			if len(test.err) > 0 {
				a.EqualError(err, test.err)
				a.True(Error.Has(err))
				return
			}
			if a.NoError(err) {
				a.Equal(test.digits, digits)
				a.Equal(test.exp, exp)
				a.Equal(test.neg, neg)
			}
		})
	}
}

func TestPosError(t *testing.T) {
	a := assert.New(t)
	_, _, _, err := Parse("  12;")
	var pe *PosError
	a.True(errors.As(err, &pe))
	a.Equal(5, pe.Pos)
}

func TestFormat(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		neg    bool
		mant   uint64
		exp    int
		format byte
		res    string
	}{
		{false, 123, -2, 'f', "1.23"},
		{true, 123, -2, 'f', "-1.23"},
		{false, 123, -5, 'f', "0.00123"},
		{false, 123, -3, 'f', "0.123"},
		{false, 123, 2, 'f', "12300"},
		{false, 0, -2, 'f', "0.00"},
		{true, 0, 3, 'f', "0"},
		{false, 123, -2, 'e', "1.23e+0"},
		{true, 123, -5, 'e', "-1.23e-3"},
		{false, 7, 10, 'e', "7e+10"},
		{false, 200, -2, 's', "2.00"},
		{false, 0, -2, 'e', "0e-2"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, FormatMantExp(test.neg, test.mant, test.exp, test.format))
		})
	}
	a.Equal("123456789012345678901234.5", FormatDigits(false, "1234567890123456789012345", -1, 'f'))
}

func TestZeroBytes(t *testing.T) {
	a := assert.New(t)
	a.Len(zeroBytes(3), 3)
	a.Len(zeroBytes(600), 600)
	a.Equal(byte('0'), zeroBytes(600)[599])
}
