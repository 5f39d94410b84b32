// Package series evaluates elementary functions on fixed-point magnitude values.
//
// A fixed-point value v is stored as the integer V = v * 10^prec.
// Every function is accurate to a few units in the last place, so the callers
// keep enough guard digits above the precision they need.
package series

import (
	"github.com/avdva/decnum/mag"
)

// Fixed is a fixed-point context with a given number of fractional decimal digits.
type Fixed struct {
	prec uint
	one  *mag.Int
}

// New returns a context with prec fractional digits.
func New(prec uint) *Fixed {
	return &Fixed{prec: prec, one: mag.Pow10(prec)}
}

// Prec returns the number of fractional digits.
func (f *Fixed) Prec() uint {
	return f.prec
}

// One returns 1 in the fixed-point representation.
func (f *Fixed) One() *mag.Int {
	return new(mag.Int).Set(f.one)
}

// FromDecimal converts sig * 10^scale to the fixed-point representation, truncating toward zero.
func (f *Fixed) FromDecimal(sig *mag.Int, scale int) *mag.Int {
	shift := int(f.prec) + scale
	if shift >= 0 {
		return new(mag.Int).MulPow10(sig, uint(shift))
	}
	return new(mag.Int).Quo(sig, mag.Pow10(uint(-shift)))
}

// Mul returns x*y in the fixed-point representation, truncated.
func (f *Fixed) Mul(x, y *mag.Int) *mag.Int {
	z := new(mag.Int).Mul(x, y)
	return z.Quo(z, f.one)
}

// Quo returns x/y in the fixed-point representation, truncated.
func (f *Fixed) Quo(x, y *mag.Int) *mag.Int {
	z := new(mag.Int).Mul(x, f.one)
	return z.Quo(z, y)
}

// atanhInv returns atanh(1/n) = 1/n + 1/(3n^3) + 1/(5n^5) + ...
func (f *Fixed) atanhInv(n int64) *mag.Int {
	return f.arctanInv(n, false)
}

// atanInv returns atan(1/n) = 1/n - 1/(3n^3) + 1/(5n^5) - ...
func (f *Fixed) atanInv(n int64) *mag.Int {
	return f.arctanInv(n, true)
}

func (f *Fixed) arctanInv(n int64, alternate bool) *mag.Int {
	nn := mag.NewInt(n * n)
	pow := new(mag.Int).Quo(f.one, mag.NewInt(n))
	sum := new(mag.Int).Set(pow)
	var term mag.Int
	for k := int64(1); pow.Sign() != 0; k++ {
		pow.Quo(pow, nn)
		term.Quo(pow, mag.NewInt(2*k+1))
		if alternate && k&1 == 1 {
			sum.Sub(sum, &term)
		} else {
			sum.Add(sum, &term)
		}
	}
	return sum
}

// Pi returns π computed with Machin's formula: π = 16*atan(1/5) - 4*atan(1/239).
func (f *Fixed) Pi() *mag.Int {
	a := f.atanInv(5)
	a.Lsh(a, 4)
	b := f.atanInv(239)
	b.Lsh(b, 2)
	return a.Sub(a, b)
}

// Ln2 returns ln(2) = 2*atanh(1/3).
func (f *Fixed) Ln2() *mag.Int {
	r := f.atanhInv(3)
	return r.Lsh(r, 1)
}

// Ln10 returns ln(10) = 3*ln(2) + ln(1.25) = 3*ln(2) + 2*atanh(1/9).
func (f *Fixed) Ln10() *mag.Int {
	r := f.Ln2()
	r.Mul(r, mag.NewInt(3))
	a := f.atanhInv(9)
	a.Lsh(a, 1)
	return r.Add(r, a)
}

// atanh returns atanh(y) for a fixed-point |y| < 1.
func (f *Fixed) atanh(y *mag.Int) *mag.Int {
	y2 := f.Mul(y, y)
	pow := new(mag.Int).Set(y)
	sum := new(mag.Int).Set(y)
	var term mag.Int
	for k := int64(1); ; k++ {
		pow = f.Mul(pow, y2)
		if pow.Sign() == 0 {
			break
		}
		term.Quo(pow, mag.NewInt(2*k+1))
		sum.Add(sum, &term)
	}
	return sum
}

// Ln returns ln(sig * 10^scale) for sig > 0.
// The argument is reduced to d * 2^j * 10^e, 1 <= d < 1.5, then ln(d) = 2*atanh((d-1)/(d+1)).
func (f *Fixed) Ln(sig *mag.Int, scale int) *mag.Int {
	digits := sig.DecimalDigits()
	// sig * 10^scale = g * 10^e, 1 <= g < 10.
	e := scale + digits - 1
	g := f.FromDecimal(sig, 1-digits)
	limit := new(mag.Int).Add(f.one, new(mag.Int).Rsh(f.one, 1)) // 1.5
	var j int64
	for g.Cmp(limit) >= 0 {
		g.Rsh(g, 1)
		j++
	}
	num := new(mag.Int).Sub(g, f.one)
	den := new(mag.Int).Add(g, f.one)
	res := f.atanh(f.Quo(num, den))
	res.Lsh(res, 1)
	if j > 0 {
		ln2 := f.Ln2()
		res.Add(res, ln2.Mul(ln2, mag.NewInt(j)))
	}
	if e != 0 {
		ln10 := f.Ln10()
		res.Add(res, ln10.Mul(ln10, mag.NewInt(int64(e))))
	}
	return res
}

// Exp returns e^x as m * 10^exp, where m is a fixed-point integer of about prec+1 digits.
// x must be small enough, so that x/ln(10) fits an int.
func (f *Fixed) Exp(x *mag.Int) (m *mag.Int, exp int) {
	ln10 := f.Ln10()
	// x = n*ln(10) + r, 0 <= r < ln(10)
	n, r := mag.DivRem(x, ln10)
	if r.Sign() < 0 {
		r.Add(r, ln10)
		n.Sub(n, mag.NewInt(1))
	}
	// e^r = (e^(r/2^k))^(2^k)
	const k = 8
	r.Quo(r, mag.NewInt(1<<k))
	sum := f.One()
	term := f.One()
	for i := int64(1); ; i++ {
		term = f.Mul(term, r)
		term.Quo(term, mag.NewInt(i))
		if term.Sign() == 0 {
			break
		}
		sum.Add(sum, term)
	}
	for i := 0; i < k; i++ {
		sum = f.Mul(sum, sum)
	}
	return sum, int(n.Int64()) - int(f.prec)
}

// SinCos returns sin(x) and cos(x).
// The argument is reduced modulo π/2 with extra digits for the integer part of x.
func (f *Fixed) SinCos(x *mag.Int) (sin, cos *mag.Int) {
	extra := uint(max(x.DecimalDigits()-int(f.prec), 0)) + 2
	wide := New(f.prec + extra)
	xw := new(mag.Int).MulPow10(x, extra)
	halfPi := wide.Pi()
	halfPi.Rsh(halfPi, 1)
	// x = q*π/2 + r, |r| <= π/4
	q, r := mag.DivRem(xw, halfPi)
	twice := new(mag.Int).Lsh(r, 1)
	if twice.CmpAbs(halfPi) > 0 {
		if r.Sign() > 0 {
			q.Add(q, mag.NewInt(1))
			r.Sub(r, halfPi)
		} else {
			q.Sub(q, mag.NewInt(1))
			r.Add(r, halfPi)
		}
	}
	r.Quo(r, mag.Pow10(extra))
	s, c := f.sinCosSmall(r)
	quadrant := new(mag.Int).And(q, mag.NewInt(3)).Int64()
	switch quadrant {
	case 1:
		s, c = c, s.Neg(s)
	case 2:
		s, c = s.Neg(s), c.Neg(c)
	case 3:
		s, c = c.Neg(c), s
	}
	return s, c
}

// sinCosSmall evaluates the Taylor series for |x| <= π/4.
func (f *Fixed) sinCosSmall(x *mag.Int) (sin, cos *mag.Int) {
	x2 := f.Mul(x, x)
	sin = new(mag.Int).Set(x)
	cos = f.One()
	sinTerm := new(mag.Int).Set(x)
	cosTerm := f.One()
	for i := int64(1); sinTerm.Sign() != 0 || cosTerm.Sign() != 0; i++ {
		// sinTerm_i = -sinTerm_{i-1} * x^2 / ((2i)(2i+1)), cosTerm_i = -cosTerm_{i-1} * x^2 / ((2i-1)(2i))
		sinTerm = f.Mul(sinTerm, x2)
		sinTerm.Quo(sinTerm, mag.NewInt(2*i*(2*i+1)))
		sinTerm.Neg(sinTerm)
		cosTerm = f.Mul(cosTerm, x2)
		cosTerm.Quo(cosTerm, mag.NewInt((2*i-1)*(2*i)))
		cosTerm.Neg(cosTerm)
		sin.Add(sin, sinTerm)
		cos.Add(cos, cosTerm)
	}
	return sin, cos
}
