// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mag

import "github.com/avdva/decnum/round"

// sqrt sets z = ⌊√x⌋ using Newton's method.
// The initial guess 2^⌈bitlen/2⌉ is above the root, so the iterates decrease
// monotonically until they stop changing.
func (z nat) sqrt(x nat) nat {
	if x.cmp(natOne) <= 0 {
		return z.set(x)
	}
	if alias(z, x) {
		z = nil
	}
	var z1, z2 nat
	z1 = z1.setWord(1)
	z1 = z1.shl(z1, uint(x.bitLen()+1)/2)
	for {
		z2, _ = z2.div(nil, x, z1)
		z2 = z2.add(z2, z1)
		z2 = z2.shr(z2, 1)
		if z2.cmp(z1) >= 0 {
			return z.set(z1)
		}
		z1, z2 = z2, z1
	}
}

// Sqrt sets z to √x rounded to an integer according to mode, and returns z.
// ok is false only for round.Exact, if x is not a perfect square; z is ⌊√x⌋ then.
// It panics if x is negative.
func (z *Int) Sqrt(x *Int, mode round.Mode) (_ *Int, ok bool) {
	if x.neg {
		panic("mag: square root of negative number")
	}
	r := nat(nil).sqrt(x.abs)
	// x = r² + rem, 0 <= rem <= 2r.
	// √x - r > 1/2 iff x > r² + r + 1/4 iff rem > r. A tie is impossible.
	rem := nat(nil).sub(x.abs, nat(nil).mul(r, r))
	var f round.Fraction
	switch {
	case len(rem) == 0:
		f = round.Zero
	case rem.cmp(r) > 0:
		f = round.MoreThanHalf
	default:
		f = round.LessThanHalf
	}
	inc, ok := mode.Increment(false, len(r) > 0 && r[0]&1 == 1, f)
	if inc {
		r = r.add(r, natOne)
	}
	z.abs = z.abs.set(r)
	z.neg = false
	return z, ok
}

// Sqrt returns √x rounded according to mode. See Int.Sqrt.
func Sqrt(x *Int, mode round.Mode) (*Int, bool) {
	return new(Int).Sqrt(x, mode)
}
