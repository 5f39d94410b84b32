// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package dtoa converts binary floating-point numbers to decimals.
//
// Shortest64 and Shortest32 produce the fewest decimal digits, which parse back
// to the same binary value under round-half-even parsing (Burger & Dybvig free-format
// algorithm with exact integer arithmetic). Fixed64 rounds the exact binary value to a decimal scale.
package dtoa

import (
	"math"
	"strconv"

	"github.com/avdva/decnum/internal/norm"
	"github.com/avdva/decnum/internal/strutil"
	"github.com/avdva/decnum/mag"
	"github.com/avdva/decnum/round"
)

// Kind is the class of a floating-point value.
type Kind uint8

const (
	// Finite is a finite number, including zero and subnormals.
	Finite Kind = iota
	// Inf is an infinity, the sign is in Result.Neg.
	Inf
	// NaN is not a number.
	NaN
)

// Result is a decimal value Digits * 10^Exp.
// For zero Digits is 0, Exp is 0, Neg keeps the sign of the zero.
type Result struct {
	Neg    bool
	Digits uint64
	Exp    int
	Kind   Kind
}

// String returns r in the scientific notation, like "1e-1", "NaN", or "-Inf".
func (r Result) String() string {
	switch r.Kind {
	case NaN:
		return "NaN"
	case Inf:
		if r.Neg {
			return "-Inf"
		}
		return "+Inf"
	}
	return strutil.FormatMantExp(r.Neg, r.Digits, r.Exp, 'e')
}

// Float64 parses r back into a float64.
func (r Result) Float64() float64 {
	switch r.Kind {
	case NaN:
		return math.NaN()
	case Inf:
		if r.Neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	f, _ := strconv.ParseFloat(strconv.FormatUint(r.Digits, 10)+"e"+strconv.Itoa(r.Exp), 64)
	if r.Neg {
		f = -f
	}
	return f
}

type floatInfo struct {
	mantBits uint
	expBits  uint
	bias     int
}

var (
	float64info = floatInfo{mantBits: 52, expBits: 11, bias: -1023}
	float32info = floatInfo{mantBits: 23, expBits: 8, bias: -127}
)

// Shortest64 returns the shortest decimal, which parses back to f.
func Shortest64(f float64) Result {
	return shortest(math.Float64bits(f), &float64info)
}

// Shortest32 returns the shortest decimal, which parses back to f as a float32.
func Shortest32(f float32) Result {
	return shortest(uint64(math.Float32bits(f)), &float32info)
}

// decompose returns the binary mantissa and exponent: |f| = mant * 2^exp.
// minExp is the exponent of subnormals.
func decompose(bits uint64, flt *floatInfo) (neg bool, mant uint64, exp, minExp int, kind Kind) {
	neg = bits>>(flt.expBits+flt.mantBits) != 0
	e := int(bits>>flt.mantBits) & (1<<flt.expBits - 1)
	mant = bits & (1<<flt.mantBits - 1)
	minExp = flt.bias + 1 - int(flt.mantBits)
	switch e {
	case 1<<flt.expBits - 1:
		if mant != 0 {
			return neg, 0, 0, minExp, NaN
		}
		return neg, 0, 0, minExp, Inf
	case 0: // subnormal
		return neg, mant, minExp, minExp, Finite
	}
	return neg, mant | 1<<flt.mantBits, e + flt.bias - int(flt.mantBits), minExp, Finite
}

func shortest(bits uint64, flt *floatInfo) Result {
	neg, mant, exp, minExp, kind := decompose(bits, flt)
	if kind != Finite || mant == 0 {
		return Result{Neg: neg, Kind: kind}
	}
	// the boundaries are included, if the mantissa is even: such values round to it when parsed.
	even := mant&1 == 0
	var r, s, mPlus, mMinus *mag.Int
	m := mag.FromUint64(mant)
	lowestMant := mant == 1<<flt.mantBits
	switch {
	case exp >= 0 && !lowestMant:
		be := new(mag.Int).Lsh(mag.NewInt(1), uint(exp))
		r = new(mag.Int).Lsh(m, uint(exp)+1)
		s = mag.NewInt(2)
		mPlus, mMinus = be, new(mag.Int).Set(be)
	case exp >= 0:
		// the gap below is half of the gap above.
		r = new(mag.Int).Lsh(m, uint(exp)+2)
		s = mag.NewInt(4)
		mPlus = new(mag.Int).Lsh(mag.NewInt(1), uint(exp)+1)
		mMinus = new(mag.Int).Lsh(mag.NewInt(1), uint(exp))
	case exp == minExp || !lowestMant:
		r = new(mag.Int).Lsh(m, 1)
		s = new(mag.Int).Lsh(mag.NewInt(1), uint(-exp)+1)
		mPlus, mMinus = mag.NewInt(1), mag.NewInt(1)
	default:
		r = new(mag.Int).Lsh(m, 2)
		s = new(mag.Int).Lsh(mag.NewInt(1), uint(1-exp)+1)
		mPlus, mMinus = mag.NewInt(2), mag.NewInt(1)
	}
	v := math.Ldexp(float64(mant), exp)
	k := int(math.Ceil(math.Log10(v) - 1e-10))
	if k >= 0 {
		s.MulPow10(s, uint(k))
	} else {
		r.MulPow10(r, uint(-k))
		mPlus.MulPow10(mPlus, uint(-k))
		mMinus.MulPow10(mMinus, uint(-k))
	}
	g := generator{r: r, s: s, mPlus: mPlus, mMinus: mMinus, lowOk: even, highOk: even}
	// fixup: the estimate may be one too low.
	if g.high(r) {
		k++
		s.MulPow10(s, 1)
	}
	digits, n := g.generate()
	return Result{Neg: neg, Digits: digits, Exp: k - n, Kind: Finite}
}

type generator struct {
	r, s          *mag.Int
	mPlus, mMinus *mag.Int
	lowOk, highOk bool
}

// high reports whether r + m+ reaches s.
func (g *generator) high(r *mag.Int) bool {
	c := new(mag.Int).Add(r, g.mPlus).Cmp(g.s)
	return c > 0 || g.highOk && c == 0
}

func (g *generator) low(r *mag.Int) bool {
	c := r.Cmp(g.mMinus)
	return c < 0 || g.lowOk && c == 0
}

// generate returns the digits of r/s and their count.
func (g *generator) generate() (digits uint64, n int) {
	ten := mag.NewInt(10)
	for {
		g.r.Mul(g.r, ten)
		g.mPlus.Mul(g.mPlus, ten)
		g.mMinus.Mul(g.mMinus, ten)
		q, r := mag.DivRem(g.r, g.s)
		g.r = r
		d := q.Uint64()
		n++
		tc1, tc2 := g.low(r), g.high(r)
		switch {
		case !tc1 && !tc2:
			digits = digits*10 + d
			continue
		case tc1 && tc2:
			// both neighbours are close enough, choose the nearest digit.
			if new(mag.Int).Lsh(r, 1).Cmp(g.s) >= 0 {
				d++
			}
		case tc2:
			d++
		}
		return digits*10 + d, n
	}
}

// Fixed64 returns the exact value of f rounded to the given decimal scale:
// the result x is such that f ≈ x * 10^scale.
// ok is false for NaN, infinities, and for round.Exact, if the rounding is inexact.
func Fixed64(f float64, scale int, mode round.Mode) (x *mag.Int, ok bool) {
	neg, mant, exp, _, kind := decompose(math.Float64bits(f), &float64info)
	if kind != Finite {
		return nil, false
	}
	num, den := mag.FromUint64(mant), mag.NewInt(1)
	if exp >= 0 {
		num.Lsh(num, uint(exp))
	} else {
		den.Lsh(den, uint(-exp))
	}
	if scale < 0 {
		num.MulPow10(num, uint(-scale))
	} else {
		den.MulPow10(den, uint(scale))
	}
	x, ok = norm.Quo(num, den, neg, mode)
	if neg {
		x.Neg(x)
	}
	return x, ok
}
