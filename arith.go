// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"strconv"

	"github.com/avdva/decnum/dtoa"
	"github.com/avdva/decnum/internal/mathutil"
	"github.com/avdva/decnum/internal/norm"
	"github.com/avdva/decnum/internal/strutil"
	"github.com/avdva/decnum/mag"
	"github.com/avdva/decnum/round"
)

// Arithmetic performs operations on words of the split S.
// The zero value rounds half to even.
//
// If the exact result of an operation is representable, it is returned as is.
// Otherwise it is rounded once according to Rounding, choosing the smallest scale at which
// the rounded significand fits. Every operation returns its def argument if the result
// overflows, if a non-zero result rounds to zero, if the result is undefined (division by zero,
// logarithm of a non-positive number, etc.), if Rounding is round.Exact and the result
// is inexact, or if any of the arguments is NaN.
type Arithmetic[S Split] struct {
	Rounding round.Mode
}

func (ar Arithmetic[S]) fit(m uint64, neg bool, scale int, def Word[S]) Word[S] {
	l := Limits[S]()
	return pack(l, def)(l.bounds().Fit(m, neg, scale, ar.Rounding))
}

func (ar Arithmetic[S]) fitInt(x *mag.Int, scale int, def Word[S]) Word[S] {
	l := Limits[S]()
	return pack(l, def)(l.bounds().FitInt(x, scale, ar.Rounding))
}

func (ar Arithmetic[S]) fitInexact(x *mag.Int, neg bool, scale int, def Word[S]) Word[S] {
	l := Limits[S]()
	return pack(l, def)(l.bounds().FitInexact(x, neg, scale, ar.Rounding))
}

// pack returns a function encoding the results of norm's fitting.
func pack[S Split](l Layout, def Word[S]) func(sig int64, scale int, ok bool) Word[S] {
	return func(sig int64, scale int, ok bool) Word[S] {
		if !ok {
			return def
		}
		return encode[S](l, sig, scale)
	}
}

// Fit returns sig * 10^scale rounded into the split.
func (ar Arithmetic[S]) Fit(sig int64, scale int, def Word[S]) Word[S] {
	return ar.fit(mathutil.Uint64Abs(sig), sig < 0, scale, def)
}

// FromInt64 returns v as a word.
func (ar Arithmetic[S]) FromInt64(v int64, def Word[S]) Word[S] {
	return ar.fit(mathutil.Uint64Abs(v), v < 0, 0, def)
}

// FromFloat64 converts the shortest decimal representation of f.
// NaN and infinities return def.
func (ar Arithmetic[S]) FromFloat64(f float64, def Word[S]) Word[S] {
	r := dtoa.Shortest64(f)
	if r.Kind != dtoa.Finite {
		return def
	}
	return ar.fit(r.Digits, r.Neg, r.Exp, def)
}

// Parse parses a decimal string, see strutil.Parse for the syntax.
// Malformed strings return an error, unrepresentable values return def.
func (ar Arithmetic[S]) Parse(s string, def Word[S]) (Word[S], error) {
	digits, exp, neg, err := strutil.Parse(s)
	if err != nil {
		return def, Error.Wrap(err)
	}
	l := Limits[S]()
	switch {
	case len(digits) == 0:
		return ar.fit(0, neg, exp, def), nil
	case exp > l.MaxScale+mathutil.MaxPow10:
		return def, nil
	case exp+len(digits) < l.MinScale-1:
		// the whole number is less than one tenth of the smallest unit.
		return ar.fitInexact(new(mag.Int), neg, l.MinScale-1, def), nil
	case len(digits) <= mathutil.MaxPow10:
		m, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return def, Error.Wrap(err)
		}
		return ar.fit(m, neg, exp, def), nil
	}
	x, err := mag.Parse(digits)
	if err != nil {
		return def, Error.Wrap(err)
	}
	if neg {
		x.Neg(x)
	}
	return ar.fitInt(x, exp, def), nil
}

// MustParse is like Parse, but panics on malformed strings.
func (ar Arithmetic[S]) MustParse(s string, def Word[S]) Word[S] {
	w, err := ar.Parse(s, def)
	if err != nil {
		panic(err)
	}
	return w
}

// Neg returns -x.
func (ar Arithmetic[S]) Neg(x, def Word[S]) Word[S] {
	if !x.Valid() {
		return def
	}
	sig, scale := x.Decode()
	return encode[S](Limits[S](), -sig, scale)
}

// Abs returns |x|.
func (ar Arithmetic[S]) Abs(x, def Word[S]) Word[S] {
	if x.Sign() < 0 {
		return ar.Neg(x, def)
	}
	if !x.Valid() {
		return def
	}
	return x
}

// Cmp compares x and y, see Word.Cmp.
func (ar Arithmetic[S]) Cmp(x, y Word[S]) int {
	return x.Cmp(y)
}

// Add returns x + y.
func (ar Arithmetic[S]) Add(x, y, def Word[S]) Word[S] {
	if !x.Valid() || !y.Valid() {
		return def
	}
	sa, ea := x.Decode()
	sb, eb := y.Decode()
	l := Limits[S]()
	return pack(l, def)(l.bounds().Add(sa, ea, sb, eb, ar.Rounding))
}

// Sub returns x - y.
func (ar Arithmetic[S]) Sub(x, y, def Word[S]) Word[S] {
	if !x.Valid() || !y.Valid() {
		return def
	}
	sa, ea := x.Decode()
	sb, eb := y.Decode()
	l := Limits[S]()
	return pack(l, def)(l.bounds().Add(sa, ea, -sb, eb, ar.Rounding))
}

// Mul returns x * y.
func (ar Arithmetic[S]) Mul(x, y, def Word[S]) Word[S] {
	if !x.Valid() || !y.Valid() {
		return def
	}
	sa, ea := x.Decode()
	sb, eb := y.Decode()
	l := Limits[S]()
	return pack(l, def)(l.bounds().Mul(sa, ea, sb, eb, ar.Rounding))
}

// Div returns x / y with the maximum precision the split allows.
// Exact quotients are reduced toward the scale scale(x) - scale(y).
func (ar Arithmetic[S]) Div(x, y, def Word[S]) Word[S] {
	if !x.Valid() || !y.Valid() || y.IsZero() {
		return def
	}
	sa, ea := x.Decode()
	sb, eb := y.Decode()
	l := Limits[S]()
	preferred := ea - eb
	if sa == 0 {
		return ar.fit(0, false, preferred, def)
	}
	ua, ub := mathutil.Uint64Abs(sa), mathutil.Uint64Abs(sb)
	neg := (sa < 0) != (sb < 0)
	if ua%ub == 0 {
		return ar.fit(ua/ub, neg, preferred, def)
	}
	num, den := mag.NewInt(sa), mag.NewInt(sb)
	if sig, scale, ok := l.bounds().FitQuo(num, den, preferred, round.Exact); ok {
		m, e := mathutil.TrimMantExp(mathutil.Uint64Abs(sig), scale, min(preferred, l.MaxScale))
		return encode[S](l, signed(m, sig < 0), e)
	}
	if ar.Rounding == round.Exact {
		return def
	}
	return pack(l, def)(l.bounds().FitQuo(num, den, preferred, ar.Rounding))
}

// DivToScale returns x / y rounded to the given scale.
// Unlike Div, a non-zero quotient may round to zero.
func (ar Arithmetic[S]) DivToScale(x, y Word[S], scale int, def Word[S]) Word[S] {
	l := Limits[S]()
	if !x.Valid() || !y.Valid() || y.IsZero() || scale < l.MinScale || scale > l.MaxScale {
		return def
	}
	sa, ea := x.Decode()
	sb, eb := y.Decode()
	sig, ok := l.bounds().QuoScale(sa, ea, sb, eb, scale, ar.Rounding)
	if !ok {
		return def
	}
	return encode[S](l, sig, scale)
}

// Rem returns the remainder of the truncated division x / y.
// The result has the sign of x and the smaller of the two scales.
func (ar Arithmetic[S]) Rem(x, y, def Word[S]) Word[S] {
	if !x.Valid() || !y.Valid() || y.IsZero() {
		return def
	}
	sa, ea := x.Decode()
	sb, eb := y.Decode()
	l := Limits[S]()
	return pack(l, def)(l.bounds().Rem(sa, ea, sb, eb, ar.Rounding))
}

// SetScale returns x rounded to the given scale.
// Unlike the other operations, a non-zero value may round to zero here.
func (ar Arithmetic[S]) SetScale(x Word[S], scale int, def Word[S]) Word[S] {
	l := Limits[S]()
	if !x.Valid() || scale < l.MinScale || scale > l.MaxScale {
		return def
	}
	sig, s := x.Decode()
	m, ok := l.bounds().SetScale(sig, s, scale, ar.Rounding)
	if !ok {
		return def
	}
	return encode[S](l, m, scale)
}

// Sqrt returns the square root of x. Negative x returns def.
// Exact roots are reduced toward the scale ⌊scale(x) / 2⌋.
func (ar Arithmetic[S]) Sqrt(x, def Word[S]) Word[S] {
	if !x.Valid() || x.Sign() < 0 {
		return def
	}
	sig, scale := x.Decode()
	preferred := norm.FloorDiv2(scale)
	if sig == 0 {
		return ar.fit(0, false, preferred, def)
	}
	l := Limits[S]()
	ws := l.MinScale - 1
	r, exact := norm.SqrtTrunc(mag.NewInt(sig), scale, ws)
	if !exact {
		return pack(l, def)(l.bounds().FitInexact(r, false, ws, ar.Rounding))
	}
	sig, scale, ok := l.bounds().FitInt(r, ws, ar.Rounding)
	if !ok {
		return def
	}
	m, e := mathutil.TrimMantExp(uint64(sig), scale, preferred)
	return encode[S](l, int64(m), e)
}
