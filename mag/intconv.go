// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mag

import (
	"fmt"
	"strings"

	"github.com/zeebo/errs"
)

// Error is the class of the errors returned by the parsing functions.
var Error = errs.Class("mag")

// String returns the decimal representation of x.
func (x *Int) String() string {
	if x == nil {
		return "<nil>"
	}
	return string(x.Append(nil))
}

// Append appends the decimal representation of x to buf and returns the extended buffer.
func (x *Int) Append(buf []byte) []byte {
	if x.neg {
		buf = append(buf, '-')
	}
	return x.abs.utoa(buf)
}

// SetString sets z to the value of s, an optionally signed decimal integer.
// On failure z is unchanged.
func (z *Int) SetString(s string) (*Int, error) {
	if len(s) == 0 {
		return nil, Error.New("empty string")
	}
	digits, neg := s, false
	switch s[0] {
	case '-':
		neg = true
		fallthrough
	case '+':
		digits = s[1:]
	}
	if len(digits) == 0 {
		return nil, Error.New("no digits in %q", s)
	}
	abs, bad := nat(nil).scan(digits)
	if bad >= 0 {
		pos := bad + len(s) - len(digits)
		return nil, Error.New("unexpected symbol %q at position %d", s[pos], pos+1)
	}
	z.abs = z.abs.set(abs)
	z.neg = neg && len(z.abs) > 0
	return z, nil
}

// Parse returns the integer represented by s.
func Parse(s string) (*Int, error) {
	return new(Int).SetString(s)
}

// MustParse is like Parse, but panics on error.
func MustParse(s string) *Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// Format implements fmt.Formatter. It supports 'd', 's', 'v' (decimal) and 'x', 'X' (hexadecimal)
// verbs, the '+' flag and the width with the '0' and '-' flags.
func (x *Int) Format(s fmt.State, ch rune) {
	var digits string
	switch ch {
	case 'd', 's', 'v':
		digits = string(x.abs.utoa(nil))
	case 'x', 'X':
		digits = x.abs.hex()
		if ch == 'X' {
			digits = strings.ToUpper(digits)
		}
	default:
		fmt.Fprintf(s, "%%!%c(mag.Int=%s)", ch, x.String())
		return
	}
	var sign string
	switch {
	case x.neg:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	}
	var pad int
	if w, ok := s.Width(); ok {
		pad = w - len(sign) - len(digits)
	}
	switch {
	case pad <= 0:
		fmt.Fprint(s, sign, digits)
	case s.Flag('-'):
		fmt.Fprint(s, sign, digits, strings.Repeat(" ", pad))
	case s.Flag('0'):
		fmt.Fprint(s, sign, strings.Repeat("0", pad), digits)
	default:
		fmt.Fprint(s, strings.Repeat(" ", pad), sign, digits)
	}
}

func (x nat) hex() string {
	if len(x) == 0 {
		return "0"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%x", x[len(x)-1])
	for i := len(x) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%08x", x[i])
	}
	return sb.String()
}

// Bytes returns the big-endian magnitude of x without leading zero bytes. The sign is returned by Sign.
func (x *Int) Bytes() []byte {
	return x.abs.bytes()
}

// BytesLE returns the little-endian magnitude of x without trailing zero bytes.
func (x *Int) BytesLE() []byte {
	return reverseBytes(x.abs.bytes())
}

// SetBytes sets z to the value with the given sign and big-endian magnitude, and returns z.
func (z *Int) SetBytes(sign int, buf []byte) *Int {
	z.abs = z.abs.setBytes(buf)
	z.neg = sign < 0 && len(z.abs) > 0
	return z
}

// SetBytesLE sets z to the value with the given sign and little-endian magnitude, and returns z.
func (z *Int) SetBytesLE(sign int, buf []byte) *Int {
	return z.SetBytes(sign, reverseBytes(buf))
}

// FromBytes returns a new Int with the given sign and big-endian magnitude.
func FromBytes(sign int, buf []byte) *Int {
	return new(Int).SetBytes(sign, buf)
}

// FromBytesLE returns a new Int with the given sign and little-endian magnitude.
func FromBytesLE(sign int, buf []byte) *Int {
	return new(Int).SetBytesLE(sign, buf)
}
