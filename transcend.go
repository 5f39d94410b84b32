// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"math"

	"github.com/avdva/decnum/internal/mathutil"
	"github.com/avdva/decnum/internal/norm"
	"github.com/avdva/decnum/internal/series"
	"github.com/avdva/decnum/mag"
)

const (
	guardDigits = 40
	// maxExpArg bounds |x| for Exp. e^1000 overflows and e^-1000 underflows every split.
	maxExpArg = 1000
)

// context returns a fixed-point context precise enough for any result of the split.
func (ar Arithmetic[S]) context() *series.Fixed {
	return series.New(uint(guardDigits - Limits[S]().MinScale))
}

// fitSeries rounds a fixed-point transcendental result.
func (ar Arithmetic[S]) fitSeries(f *series.Fixed, x *mag.Int, def Word[S]) Word[S] {
	neg := x.Sign() < 0
	return ar.fitInexact(new(mag.Int).Abs(x), neg, -int(f.Prec()), def)
}

// Ln returns the natural logarithm of x. Non-positive x returns def.
func (ar Arithmetic[S]) Ln(x, def Word[S]) Word[S] {
	if !x.Valid() || x.Sign() <= 0 {
		return def
	}
	sig, scale := x.Decode()
	if isOne(sig, scale) {
		return ar.fit(0, false, 0, def)
	}
	f := ar.context()
	return ar.fitSeries(f, f.Ln(mag.NewInt(sig), scale), def)
}

// Log10 returns the decimal logarithm of x. Non-positive x returns def.
// Powers of ten have exact integer logarithms.
func (ar Arithmetic[S]) Log10(x, def Word[S]) Word[S] {
	if !x.Valid() || x.Sign() <= 0 {
		return def
	}
	sig, scale := x.Decode()
	if m, e := mathutil.TrimMantExp(uint64(sig), scale, math.MaxInt); m == 1 {
		return ar.FromInt64(int64(e), def)
	}
	f := ar.context()
	return ar.fitSeries(f, f.Quo(f.Ln(mag.NewInt(sig), scale), f.Ln10()), def)
}

// Exp returns e^x.
func (ar Arithmetic[S]) Exp(x, def Word[S]) Word[S] {
	if !x.Valid() {
		return def
	}
	sig, scale := x.Decode()
	if sig == 0 {
		return ar.fit(1, false, 0, def)
	}
	if norm.CmpAbs(mathutil.Uint64Abs(sig), scale, maxExpArg, 0) > 0 {
		if sig > 0 {
			return def
		}
		// less than a tenth of the smallest unit.
		return ar.fitInexact(new(mag.Int), false, Limits[S]().MinScale-1, def)
	}
	f := ar.context()
	m, e := f.Exp(f.FromDecimal(mag.NewInt(sig), scale))
	return ar.fitInexact(m, false, e, def)
}

// Sin returns the sine of x (radians).
func (ar Arithmetic[S]) Sin(x, def Word[S]) Word[S] {
	return ar.trig(x, def, func(f *series.Fixed, s, c *mag.Int) *mag.Int { return s })
}

// Cos returns the cosine of x (radians).
func (ar Arithmetic[S]) Cos(x, def Word[S]) Word[S] {
	if x.Valid() && x.IsZero() {
		return ar.fit(1, false, 0, def)
	}
	return ar.trig(x, def, func(f *series.Fixed, s, c *mag.Int) *mag.Int { return c })
}

// Tan returns the tangent of x (radians).
func (ar Arithmetic[S]) Tan(x, def Word[S]) Word[S] {
	return ar.trig(x, def, func(f *series.Fixed, s, c *mag.Int) *mag.Int {
		if c.Sign() == 0 {
			return nil
		}
		return f.Quo(s, c)
	})
}

func (ar Arithmetic[S]) trig(x, def Word[S], pick func(f *series.Fixed, s, c *mag.Int) *mag.Int) Word[S] {
	if !x.Valid() {
		return def
	}
	sig, scale := x.Decode()
	if sig == 0 { // sin(0) = tan(0) = 0
		return ar.fit(0, false, scale, def)
	}
	f := ar.context()
	s, c := f.SinCos(f.FromDecimal(mag.NewInt(sig), scale))
	res := pick(f, s, c)
	if res == nil {
		return def
	}
	return ar.fitSeries(f, res, def)
}

func isOne(sig int64, scale int) bool {
	m, e := mathutil.TrimMantExp(mathutil.Uint64Abs(sig), scale, 0)
	return sig > 0 && m == 1 && e == 0
}
