// Package norm fits exact decimal values (sign, magnitude, scale) into
// bounded representations with a single rounding step.
package norm

import (
	"github.com/avdva/decnum/internal/mathutil"
	"github.com/avdva/decnum/mag"
	"github.com/avdva/decnum/round"
)

// Bounds describes a target representation: the significand magnitude must not exceed MaxSig,
// the scale must be in [MinScale, MaxScale]. MaxSig must be <= math.MaxInt64.
type Bounds struct {
	MaxSig   uint64
	MinScale int
	MaxScale int
}

// Fit rounds (-1)^neg * m * 10^scale into b.
// If the value is representable exactly, it is returned as is. Otherwise the smallest scale,
// at which the rounded significand fits, is chosen. Scales above MaxScale are lowered
// by multiplying the significand. ok is false if the result overflows, if a non-zero
// value rounds to zero, or if mode is round.Exact and the result is inexact.
func (b Bounds) Fit(m uint64, neg bool, scale int, mode round.Mode) (sig int64, s int, ok bool) {
	return b.fit(m, neg, scale, mode, false)
}

// FitInt is Fit for a magnitude value.
func (b Bounds) FitInt(x *mag.Int, scale int, mode round.Mode) (sig int64, s int, ok bool) {
	return b.fitInt(x, x.Sign() < 0, scale, mode, false)
}

// FitInexact is like FitInt for a truncated value: the exact magnitude is |x| + δ, 0 < δ < 1
// in units of 10^scale, and neg is its sign. At least one digit is always rounded off.
func (b Bounds) FitInexact(x *mag.Int, neg bool, scale int, mode round.Mode) (sig int64, s int, ok bool) {
	return b.fitInt(x, neg, scale, mode, true)
}

// FitQuo fits (num / den) * 10^scale. It panics if den == 0.
func (b Bounds) FitQuo(num, den *mag.Int, scale int, mode round.Mode) (sig int64, s int, ok bool) {
	neg := num.Sign()*den.Sign() < 0
	an, ad := new(mag.Int).Abs(num), new(mag.Int).Abs(den)
	q, r := mag.DivRem(an, ad)
	if r.Sign() != 0 && scale > b.MinScale {
		// the quotient is inexact, extend the dividend to get all the available digits.
		q, r = mag.DivRem(an.MulPow10(an, uint(scale-b.MinScale)), ad)
		scale = b.MinScale
	}
	if r.Sign() == 0 {
		if neg {
			q.Neg(q)
		}
		return b.FitInt(q, scale, mode)
	}
	if scale == b.MinScale && q.IsUint64() && q.Uint64() <= b.MaxSig {
		// the quotient fits as is, round it right here.
		m, ok := mode.Round(q.Uint64(), neg, fraction(r, ad))
		if !ok {
			return 0, 0, false
		}
		if m <= b.MaxSig {
			return b.finish(m, neg, scale)
		}
	}
	return b.FitInexact(q, neg, scale, mode)
}

func (b Bounds) fit(m uint64, neg bool, scale int, mode round.Mode, sticky bool) (sig int64, s int, ok bool) {
	if m == 0 && !sticky {
		return 0, min(max(scale, b.MinScale), b.MaxScale), true
	}
	if scale > b.MaxScale {
		if sticky {
			return 0, 0, false
		}
		mm, ok := mathutil.MulPow10(m, scale-b.MaxScale)
		if !ok || mm > b.MaxSig {
			return 0, 0, false
		}
		return signed(mm, neg), b.MaxScale, true
	}
	n := max(b.MinScale-scale, 0)
	if sticky {
		n = max(n, 1)
	}
	if m > b.MaxSig {
		n = max(n, excessDigits(m, b.MaxSig))
	}
	for ; ; n++ {
		q, rem := mathutil.DivPow10(m, n)
		q, ok = mode.Round(q, neg, withSticky(fractionPow10(rem, n), sticky))
		if !ok {
			return 0, 0, false
		}
		if q > b.MaxSig {
			// rounding up carried into a new digit, drop one more from the original value.
			continue
		}
		return b.finish(q, neg, scale+n)
	}
}

func (b Bounds) fitInt(x *mag.Int, neg bool, scale int, mode round.Mode, sticky bool) (sig int64, s int, ok bool) {
	if len(x.Words()) <= 2 {
		return b.fit(x.Uint64(), neg, scale, mode, sticky)
	}
	// x >= 2^64 > MaxSig, at least one digit has to go.
	n := max(b.MinScale-scale, x.DecimalDigits()-mathutil.DecimalDigits(b.MaxSig), 1)
	for ; ; n++ {
		q, f := DivPow10(x, n)
		if !q.IsUint64() || q.Uint64() > b.MaxSig {
			continue
		}
		r, ok := mode.Round(q.Uint64(), neg, withSticky(f, sticky))
		if !ok {
			return 0, 0, false
		}
		if r > b.MaxSig {
			continue
		}
		return b.finish(r, neg, scale+n)
	}
}

func (b Bounds) finish(q uint64, neg bool, scale int) (int64, int, bool) {
	if q == 0 || scale > b.MaxScale {
		return 0, 0, false
	}
	return signed(q, neg), scale, true
}

// excessDigits returns the number of trailing digits to remove from m, so that the result is <= maxSig.
func excessDigits(m, maxSig uint64) int {
	n := mathutil.DecimalDigits(m) - mathutil.DecimalDigits(maxSig)
	if q, _ := mathutil.DivPow10(m, n); q > maxSig {
		n++
	}
	return n
}

func fractionPow10(rem uint64, n int) round.Fraction {
	if n > mathutil.MaxPow10 {
		// rem < 2^64 < 10^n / 2.
		if rem == 0 {
			return round.Zero
		}
		return round.LessThanHalf
	}
	return round.FractionOf(rem, mathutil.Pow10(n))
}

// withSticky accounts for a non-zero part below the discarded digits.
func withSticky(f round.Fraction, sticky bool) round.Fraction {
	if !sticky {
		return f
	}
	switch f {
	case round.Zero:
		return round.LessThanHalf
	case round.Half:
		return round.MoreThanHalf
	}
	return f
}

func signed(m uint64, neg bool) int64 {
	if neg {
		return -int64(m)
	}
	return int64(m)
}

// RoundPow10 returns m / 10^n rounded according to mode, assuming the sign of the value is neg.
func RoundPow10(m uint64, n int, neg bool, mode round.Mode) (uint64, bool) {
	q, rem := mathutil.DivPow10(m, n)
	return mode.Round(q, neg, fractionPow10(rem, n))
}

// DivPow10 returns |x| / 10^n truncated and the classification of the discarded part.
func DivPow10(x *mag.Int, n int) (*mag.Int, round.Fraction) {
	abs := new(mag.Int).Abs(x)
	if n <= 0 {
		return abs, round.Zero
	}
	if n <= mathutil.WordPow10 {
		q, r := abs.QuoRemWord(abs, mag.Word(mathutil.Pow10(n)))
		return q, round.FractionOf(uint64(r), mathutil.Pow10(n))
	}
	d := mag.Pow10(uint(n))
	q, r := mag.DivRem(abs, d)
	return q, fraction(r, d)
}

// fraction classifies r/d, where 0 <= r < d.
func fraction(r, d *mag.Int) round.Fraction {
	if r.Sign() == 0 {
		return round.Zero
	}
	return round.FractionFromCmp(true, new(mag.Int).Lsh(r, 1).Cmp(d))
}

// Quo returns |x| / |y| rounded according to mode, assuming the sign of the result is neg.
// ok is false only for round.Exact with a non-zero remainder. It panics if y == 0.
func Quo(x, y *mag.Int, neg bool, mode round.Mode) (q *mag.Int, ok bool) {
	ay := new(mag.Int).Abs(y)
	q, r := mag.DivRem(new(mag.Int).Abs(x), ay)
	inc, ok := mode.Increment(neg, isOdd(q), fraction(r, ay))
	if inc {
		q.Add(q, one)
	}
	return q, ok
}

// Round returns |x| / 10^n rounded according to mode, assuming the sign of x is neg.
func Round(x *mag.Int, n int, neg bool, mode round.Mode) (*mag.Int, bool) {
	q, f := DivPow10(x, n)
	inc, ok := mode.Increment(neg, isOdd(q), f)
	if inc {
		q.Add(q, one)
	}
	return q, ok
}

// SqrtTrunc returns ⌊√(x * 10^scale) / 10^ws⌋ for x >= 0 and whether the root is exact.
// scale - 2*ws must be >= 0.
func SqrtTrunc(x *mag.Int, scale, ws int) (r *mag.Int, exact bool) {
	n := new(mag.Int).MulPow10(x, uint(scale-2*ws))
	return mag.Sqrt(n, round.Exact)
}

// FloorDiv2 returns ⌊v / 2⌋.
func FloorDiv2(v int) int {
	return v >> 1
}

var one = mag.NewInt(1)

func isOdd(x *mag.Int) bool {
	w := x.Words()
	return len(w) > 0 && w[0]&1 == 1
}
