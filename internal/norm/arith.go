package norm

import (
	"math"
	"math/bits"

	"github.com/avdva/decnum/internal/mathutil"
	"github.com/avdva/decnum/mag"
	"github.com/avdva/decnum/round"
)

// Add fits sa*10^ea + sb*10^eb into b.
// Significands must be in [-MaxInt64, MaxInt64].
func (b Bounds) Add(sa int64, ea int, sb int64, eb int, mode round.Mode) (sig int64, s int, ok bool) {
	if sa == 0 && sb == 0 {
		return b.Fit(0, false, min(ea, eb), mode)
	}
	// prepare the numbers so, that ea >= eb.
	if ea < eb {
		sa, ea, sb, eb = sb, eb, sa, ea
	}
	ua, ub := mathutil.Uint64Abs(sa), mathutil.Uint64Abs(sb)
	if m, ok := mathutil.MulPow10(ua, ea-eb); ok && m <= math.MaxInt64 {
		sum, neg := addMag(m, sa < 0, ub, sb < 0)
		return b.Fit(sum, neg, eb, mode)
	}
	// the aligned significand overflows, use the exact magnitude sum.
	sum := mag.NewInt(sa)
	sum.MulPow10(sum, uint(ea-eb))
	sum.Add(sum, mag.NewInt(sb))
	return b.FitInt(sum, eb, mode)
}

// addMag returns the magnitude and the sign of (-1)^na*a + (-1)^nb*b, a, b <= MaxInt64.
func addMag(a uint64, na bool, b uint64, nb bool) (uint64, bool) {
	switch {
	case na == nb:
		return a + b, na
	case a >= b:
		return a - b, na
	default:
		return b - a, nb
	}
}

// Mul fits sa*10^ea * sb*10^eb into b.
func (b Bounds) Mul(sa int64, ea int, sb int64, eb int, mode round.Mode) (sig int64, s int, ok bool) {
	neg := (sa < 0) != (sb < 0)
	hi, lo := bits.Mul64(mathutil.Uint64Abs(sa), mathutil.Uint64Abs(sb))
	if hi == 0 {
		return b.Fit(lo, neg, ea+eb, mode)
	}
	return b.FitInt(mag.Mul(mag.NewInt(sa), mag.NewInt(sb)), ea+eb, mode)
}

// Rem fits the remainder of the truncated division of sa*10^ea by sb*10^eb.
// The remainder has the sign of the dividend and the smaller of the two scales.
// It panics if sb == 0.
func (b Bounds) Rem(sa int64, ea int, sb int64, eb int, mode round.Mode) (sig int64, s int, ok bool) {
	e := min(ea, eb)
	ua, okA := mathutil.MulPow10(mathutil.Uint64Abs(sa), ea-e)
	ub, okB := mathutil.MulPow10(mathutil.Uint64Abs(sb), eb-e)
	if okA && okB {
		return b.Fit(ua%ub, sa < 0, e, mode)
	}
	if okB && ea-e <= mathutil.MaxPow10 {
		hi, lo := bits.Mul64(mathutil.Uint64Abs(sa), mathutil.Pow10(ea-e))
		_, _, r := mathutil.DivRem128(hi, lo, ub)
		return b.Fit(r, sa < 0, e, mode)
	}
	xa := mag.NewInt(sa)
	xa.MulPow10(xa, uint(ea-e))
	xb := mag.NewInt(sb)
	xb.MulPow10(xb, uint(eb-e))
	return b.FitInt(xa.Rem(xa, xb), e, mode)
}

// Rescale returns sig*10^s expressed at the given scale <= s, if it fits b.
func (b Bounds) Rescale(sig int64, s, scale int) (int64, bool) {
	m, ok := mathutil.MulPow10(mathutil.Uint64Abs(sig), s-scale)
	if !ok || m > b.MaxSig {
		return 0, false
	}
	return signed(m, sig < 0), true
}

// SetScale returns sig*10^s rounded to the given scale. A non-zero value may round to zero.
func (b Bounds) SetScale(sig int64, s, scale int, mode round.Mode) (int64, bool) {
	if scale <= s {
		return b.Rescale(sig, s, scale)
	}
	m, ok := RoundPow10(mathutil.Uint64Abs(sig), scale-s, sig < 0, mode)
	if !ok || m > b.MaxSig {
		return 0, false
	}
	return signed(m, sig < 0), true
}

// QuoScale returns (sa*10^ea) / (sb*10^eb) rounded to the given scale.
// A non-zero quotient may round to zero. It panics if sb == 0.
func (b Bounds) QuoScale(sa int64, ea int, sb int64, eb int, scale int, mode round.Mode) (int64, bool) {
	neg := (sa < 0) != (sb < 0)
	shift := ea - eb - scale
	ua, ub := mathutil.Uint64Abs(sa), mathutil.Uint64Abs(sb)
	if shift >= 0 {
		if n, ok := mathutil.MulPow10(ua, shift); ok {
			m, ok := mode.Round(n/ub, neg, round.FractionOf(n%ub, ub))
			if !ok || m > b.MaxSig {
				return 0, false
			}
			return signed(m, neg), true
		}
	}
	num, den := mag.FromUint64(ua), mag.FromUint64(ub)
	if shift >= 0 {
		num.MulPow10(num, uint(shift))
	} else {
		den.MulPow10(den, uint(-shift))
	}
	q, ok := Quo(num, den, neg, mode)
	if !ok || !q.IsUint64() || q.Uint64() > b.MaxSig {
		return 0, false
	}
	return signed(q.Uint64(), neg), true
}

// SqrtScale returns √(sig*10^s) rounded to the given scale, sig >= 0.
func (b Bounds) SqrtScale(sig int64, s, scale int, mode round.Mode) (int64, bool) {
	ws := min(scale, FloorDiv2(s)) - 1
	r, exact := SqrtTrunc(mag.NewInt(sig), s, ws)
	q, f := DivPow10(r, scale-ws)
	inc, ok := mode.Increment(false, isOdd(q), withSticky(f, !exact))
	if !ok {
		return 0, false
	}
	if inc {
		q.Add(q, one)
	}
	if !q.IsUint64() || q.Uint64() > b.MaxSig {
		return 0, false
	}
	return int64(q.Uint64()), true
}

// Cmp compares s1*10^e1 and s2*10^e2.
func Cmp(s1 int64, e1 int, s2 int64, e2 int) int {
	if sign1, sign2 := mathutil.Int64Sign(s1), mathutil.Int64Sign(s2); sign1 != sign2 || sign1 == 0 {
		return intCmp(sign1, sign2)
	}
	res := CmpAbs(mathutil.Uint64Abs(s1), e1, mathutil.Uint64Abs(s2), e2)
	if s1 < 0 {
		return -res
	}
	return res
}

// CmpAbs compares m1*10^e1 and m2*10^e2, m1, m2 > 0.
func CmpAbs(m1 uint64, e1 int, m2 uint64, e2 int) int {
	if e1 == e2 {
		return mathutil.Uint64Cmp(m1, m2)
	}
	maxDigit1 := e1 + mathutil.DecimalDigits(m1)
	maxDigit2 := e2 + mathutil.DecimalDigits(m2)
	if maxDigit1 != maxDigit2 {
		return intCmp(maxDigit1, maxDigit2)
	}
	// same leading digit position, so the scale difference is less than 20.
	if e1 > e2 {
		hi, lo := bits.Mul64(m1, mathutil.Pow10(e1-e2))
		return mathutil.Cmp128(hi, lo, 0, m2)
	}
	hi, lo := bits.Mul64(m2, mathutil.Pow10(e2-e1))
	return mathutil.Cmp128(0, m1, hi, lo)
}

func intCmp(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
