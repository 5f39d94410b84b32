// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mag

import (
	"github.com/avdva/decnum/internal/mathutil"
)

// Int is an arbitrary-precision signed integer.
// The zero value is 0 and ready to use.
//
// Methods of the form z.Op(x, y) store the result in z, reusing its buffer
// when it is large enough, and return z. z may be one of the operands.
type Int struct {
	neg bool
	abs nat
}

// NewInt returns a new Int set to x.
func NewInt(x int64) *Int {
	return new(Int).SetInt64(x)
}

// FromUint64 returns a new Int set to x.
func FromUint64(x uint64) *Int {
	return new(Int).SetUint64(x)
}

// FromWords returns a new Int with the given sign and little-endian magnitude words.
func FromWords(sign int, w []Word) *Int {
	return new(Int).SetWords(sign, w)
}

// Pow10 returns a new Int set to 10^n.
func Pow10(n uint) *Int {
	return &Int{abs: pow10nat(n)}
}

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	z.abs = z.abs.setUint64(mathutil.Uint64Abs(x))
	z.neg = x < 0
	return z
}

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	z.abs = z.abs.setUint64(x)
	z.neg = false
	return z
}

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	if z != x {
		z.abs = z.abs.set(x.abs)
		z.neg = x.neg
	}
	return z
}

// SetWords sets z to the value with the given sign and little-endian magnitude words.
// The words are copied and normalized. A sign < 0 makes a non-zero value negative.
func (z *Int) SetWords(sign int, w []Word) *Int {
	z.abs = z.abs.set(nat(w)).norm()
	z.neg = sign < 0 && len(z.abs) > 0
	return z
}

// Words returns the normalized little-endian magnitude of x.
// The result shares the storage with x.
func (x *Int) Words() []Word {
	return x.abs
}

// Sign returns -1, 0 or 1 for negative, zero and positive values.
func (x *Int) Sign() int {
	switch {
	case len(x.abs) == 0:
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.Set(x)
	z.neg = len(z.abs) > 0 && !z.neg
	return z
}

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	z.neg = false
	return z
}

// Cmp compares x and y and returns -1, 0 or 1.
func (x *Int) Cmp(y *Int) int {
	switch {
	case x == y:
		return 0
	case x.neg == y.neg:
		r := x.abs.cmp(y.abs)
		if x.neg {
			r = -r
		}
		return r
	case x.neg:
		return -1
	}
	return 1
}

// CmpAbs compares |x| and |y|.
func (x *Int) CmpAbs(y *Int) int {
	return x.abs.cmp(y.abs)
}

// Add sets z to x+y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	return z.addSigned(x, y, y.neg)
}

// Sub sets z to x-y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	return z.addSigned(x, y, !y.neg)
}

// addSigned sets z to x + (-1)^yneg*|y|.
func (z *Int) addSigned(x, y *Int, yneg bool) *Int {
	neg := x.neg
	if x.neg == yneg {
		// x + y == x + y, (-x) + (-y) == -(x + y)
		z.abs = z.abs.add(x.abs, y.abs)
	} else {
		// the sign of the result is the sign of the operand with the larger magnitude.
		if x.abs.cmp(y.abs) >= 0 {
			z.abs = z.abs.sub(x.abs, y.abs)
		} else {
			neg = !neg
			z.abs = z.abs.sub(y.abs, x.abs)
		}
	}
	z.neg = len(z.abs) > 0 && neg
	return z
}

// Mul sets z to x*y and returns z.
func (z *Int) Mul(x, y *Int) *Int {
	neg := x.neg != y.neg
	z.abs = z.abs.mul(x.abs, y.abs)
	z.neg = len(z.abs) > 0 && neg
	return z
}

// QuoRem sets z to the truncated quotient x/y and r to the remainder x%y, and returns (z, r).
// The quotient is negative iff the operands have different signs,
// the remainder has the sign of x. z and r must be distinct.
// It panics if y == 0.
func (z *Int) QuoRem(x, y, r *Int) (*Int, *Int) {
	qneg, rneg := x.neg != y.neg, x.neg
	z.abs, r.abs = z.abs.div(r.abs, x.abs, y.abs)
	z.neg, r.neg = len(z.abs) > 0 && qneg, len(r.abs) > 0 && rneg
	return z, r
}

// Quo sets z to the truncated quotient x/y and returns z. It panics if y == 0.
func (z *Int) Quo(x, y *Int) *Int {
	var r Int
	z.QuoRem(x, y, &r)
	return z
}

// Rem sets z to the remainder x%y with the sign of x, and returns z. It panics if y == 0.
func (z *Int) Rem(x, y *Int) *Int {
	var q Int
	q.QuoRem(x, y, z)
	return z
}

// QuoRemWord divides |x| by a single word, stores the signed quotient in z
// and returns the remainder's magnitude.
func (z *Int) QuoRemWord(x *Int, y Word) (*Int, Word) {
	neg := x.neg
	var r Word
	z.abs, r = z.abs.divW(x.abs, y)
	z.neg = len(z.abs) > 0 && neg
	return z, r
}

// Lsh sets z = x << n and returns z.
func (z *Int) Lsh(x *Int, n uint) *Int {
	z.abs = z.abs.shl(x.abs, n)
	z.neg = x.neg && len(z.abs) > 0
	return z
}

// Rsh sets z = x >> n and returns z. It is an arithmetic shift:
// negative values are rounded toward negative infinity.
func (z *Int) Rsh(x *Int, n uint) *Int {
	if x.neg {
		// (-x) >> s == ^(x-1) >> s == ^((x-1) >> s) == -(((x-1) >> s) + 1)
		t := z.abs.sub(x.abs, natOne)
		t = t.shr(t, n)
		z.abs = t.add(t, natOne)
		z.neg = true
		return z
	}
	z.abs = z.abs.shr(x.abs, n)
	z.neg = false
	return z
}

// MulPow10 sets z = x * 10^n and returns z.
func (z *Int) MulPow10(x *Int, n uint) *Int {
	z.abs = z.abs.mulPow10(x.abs, n)
	z.neg = x.neg && len(z.abs) > 0
	return z
}

// Exp sets z = x**n and returns z.
func (z *Int) Exp(x *Int, n uint) *Int {
	neg := x.neg && n&1 == 1
	z.abs = z.abs.expNN(x.abs, n)
	z.neg = neg && len(z.abs) > 0
	return z
}

// BitLen returns the length of |x| in bits. It is 0 for 0.
func (x *Int) BitLen() int {
	return x.abs.bitLen()
}

// DecimalDigits returns the number of decimal digits of |x|. It is 1 for 0.
func (x *Int) DecimalDigits() int {
	return x.abs.decimalDigits()
}

// IsInt64 reports whether x can be represented as an int64.
func (x *Int) IsInt64() bool {
	if len(x.abs) <= 2 {
		w := int64(x.abs.low64())
		return w >= 0 || x.neg && w == -w
	}
	return false
}

// IsUint64 reports whether x can be represented as a uint64.
func (x *Int) IsUint64() bool {
	return !x.neg && len(x.abs) <= 2
}

// Int64 returns the int64 representation of x. The result is undefined if !x.IsInt64().
func (x *Int) Int64() int64 {
	v := int64(x.abs.low64())
	if x.neg {
		v = -v
	}
	return v
}

// Uint64 returns the uint64 representation of |x|. The result is undefined if |x| does not fit.
func (x *Int) Uint64() uint64 {
	return x.abs.low64()
}

// Add returns x+y.
func Add(x, y *Int) *Int {
	return new(Int).Add(x, y)
}

// Sub returns x-y.
func Sub(x, y *Int) *Int {
	return new(Int).Sub(x, y)
}

// Mul returns x*y.
func Mul(x, y *Int) *Int {
	return new(Int).Mul(x, y)
}

// DivRem returns the truncated quotient and the remainder of x/y. It panics if y == 0.
func DivRem(x, y *Int) (q, r *Int) {
	return new(Int).QuoRem(x, y, new(Int))
}
