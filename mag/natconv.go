// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mag

import (
	"encoding/binary"
	"math"

	"github.com/avdva/decnum/internal/mathutil"
)

// utoa appends the decimal representation of x to buf.
// Every step divides by 10^9, producing nine digits at once.
func (x nat) utoa(buf []byte) []byte {
	if len(x) == 0 {
		return append(buf, '0')
	}
	var groups []Word
	q := nat(nil).set(x)
	for len(q) > 0 {
		var r Word
		q, r = q.divW(q, mathutil.WordBase10)
		groups = append(groups, r)
	}
	buf = appendWord(buf, groups[len(groups)-1], false)
	for i := len(groups) - 2; i >= 0; i-- {
		buf = appendWord(buf, groups[i], true)
	}
	return buf
}

// appendWord appends w < 10^9. If pad is set, the output is padded with leading zeros to 9 digits.
func appendWord(buf []byte, w Word, pad bool) []byte {
	var d [mathutil.WordPow10]byte
	i := len(d)
	for w > 0 || i == len(d) || pad && i > 0 {
		i--
		d[i] = byte('0' + w%10)
		w /= 10
	}
	return append(buf, d[i:]...)
}

// scan parses a string of decimal digits.
// It returns the 0-based index of the first non-digit byte, or -1.
func (z nat) scan(s string) (nat, int) {
	z = z[:0]
	n := len(s) % mathutil.WordPow10
	if n == 0 {
		n = mathutil.WordPow10
	}
	for i := 0; i < len(s); i += n {
		if i > 0 {
			n = mathutil.WordPow10
		}
		var w Word
		for j, c := range []byte(s[i : i+n]) {
			if c < '0' || c > '9' {
				return z, i + j
			}
			w = w*10 + Word(c-'0')
		}
		z = z.mulAddWW(z, Word(mathutil.Pow10(n)), w)
	}
	return z, -1
}

// mulPow10 sets z = x * 10^n.
func (z nat) mulPow10(x nat, n uint) nat {
	if n <= mathutil.WordPow10 {
		return z.mulAddWW(x, Word(mathutil.Pow10(int(n))), 0)
	}
	return z.mul(x, pow10nat(n))
}

// pow10nat returns 10^n as a new nat.
func pow10nat(n uint) nat {
	if n <= mathutil.MaxPow10 {
		return nat(nil).setUint64(mathutil.Pow10(int(n)))
	}
	return nat(nil).expNN(nat{10}, n)
}

// decimalDigits returns the number of decimal digits of x. It is 1 for 0.
func (x nat) decimalDigits() int {
	if len(x) <= 2 {
		return mathutil.DecimalDigits(x.low64())
	}
	// 2^(b-1) <= x < 2^b, so the result is either d or d+1.
	d := int(float64(x.bitLen()-1)*math.Log10(2)) + 1
	if x.cmp(pow10nat(uint(d))) >= 0 {
		d++
	}
	return d
}

// bytes returns the big-endian representation of x without leading zeros.
func (x nat) bytes() []byte {
	buf := make([]byte, len(x)*4)
	for i, w := range x {
		binary.BigEndian.PutUint32(buf[len(buf)-4*(i+1):], w)
	}
	i := 0
	for i < len(buf) && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

// setBytes interprets buf as a big-endian unsigned integer.
func (z nat) setBytes(buf []byte) nat {
	n := (len(buf) + 3) / 4
	z = z.make(n)
	for i := 0; i < n; i++ {
		end := len(buf) - 4*i
		start := max(end-4, 0)
		var w Word
		for _, b := range buf[start:end] {
			w = w<<8 | Word(b)
		}
		z[i] = w
	}
	return z.norm()
}

func reverseBytes(buf []byte) []byte {
	res := make([]byte, len(buf))
	for i, b := range buf {
		res[len(buf)-1-i] = b
	}
	return res
}
