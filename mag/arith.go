// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mag

import "math/bits"

// Word is a single digit of a magnitude, a 32-bit unsigned integer.
type Word = uint32

const (
	_W = 32 // word size in bits
)

// The vector functions below operate on slices of equal length,
// unless stated otherwise. z may alias x or y, if they start at the same index.

// addVV sets z = x + y and returns the carry. len(x) and len(y) must be >= len(z).
func addVV(z, x, y []Word) (c Word) {
	for i := range z {
		z[i], c = bits.Add32(x[i], y[i], c)
	}
	return c
}

// subVV sets z = x - y and returns the borrow.
func subVV(z, x, y []Word) (c Word) {
	for i := range z {
		z[i], c = bits.Sub32(x[i], y[i], c)
	}
	return c
}

// addVW sets z = x + y, where y is a single word, and returns the carry.
func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		z[i], c = bits.Add32(x[i], c, 0)
	}
	return c
}

// subVW sets z = x - y, where y is a single word, and returns the borrow.
func subVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		z[i], c = bits.Sub32(x[i], c, 0)
	}
	return c
}

// shlVU sets z = x << s for 0 <= s < _W and returns the bits shifted out.
// z may alias x, the loop runs from the most significant word.
func shlVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	rs := _W - s
	w1 := x[len(z)-1]
	c = w1 >> rs
	for i := len(z) - 1; i > 0; i-- {
		w := w1
		w1 = x[i-1]
		z[i] = w<<s | w1>>rs
	}
	z[0] = w1 << s
	return c
}

// shrVU sets z = x >> s for 0 <= s < _W and returns the bits shifted out, in the high bits of c.
func shrVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	rs := _W - s
	w1 := x[0]
	c = w1 << rs
	for i := 0; i < len(z)-1; i++ {
		w := w1
		w1 = x[i+1]
		z[i] = w>>s | w1<<rs
	}
	z[len(z)-1] = w1 >> s
	return c
}

// mulAddWWW returns x*y + c as a two-word value.
func mulAddWWW(x, y, c Word) (hi, lo Word) {
	hi, lo = bits.Mul32(x, y)
	var cc Word
	lo, cc = bits.Add32(lo, c, 0)
	return hi + cc, lo
}

// mulAddVWW sets z = x*y + r and returns the carry.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := range z {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return c
}

// addMulVVW sets z += x*y and returns the carry.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := range z {
		z1, z0 := mulAddWWW(x[i], y, z[i])
		var cc Word
		z[i], cc = bits.Add32(z0, c, 0)
		c = z1 + cc
	}
	return c
}

// divWVW sets z = (xn:x) / y and returns the remainder. xn must be < y.
func divWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = bits.Div32(r, x[i], y)
	}
	return r
}
