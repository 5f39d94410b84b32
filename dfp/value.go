// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package dfp implements an extended decimal value: a 64-bit signed significand
// and a 16-bit signed scale, value = significand * 10^scale.
//
// Operations mutate the receiver and return it, so that calls can be chained.
// If a result can not be represented, the receiver is marked invalid instead of
// returning an error. Invalid operands make the result invalid.
package dfp

import (
	"math"
	"strconv"

	fixed "github.com/avdva/decnum"
	"github.com/avdva/decnum/dtoa"
	"github.com/avdva/decnum/internal/mathutil"
	"github.com/avdva/decnum/internal/norm"
	"github.com/avdva/decnum/internal/strutil"
	"github.com/avdva/decnum/mag"
	"github.com/avdva/decnum/round"
	"github.com/zeebo/errs"
)

const (
	// MinScale is the minimum scale of a decimal.
	MinScale = math.MinInt16
	// MaxScale is the maximum scale of a decimal.
	MaxScale = math.MaxInt16
)

// Error is the class of errors returned by parsing and unmarshaling.
var Error = errs.Class("dfp")

var (
	bounds = norm.Bounds{MaxSig: math.MaxInt64, MinScale: MinScale, MaxScale: MaxScale}

	errInvalid = Error.New("invalid decimal")
)

// Decimal is an extended decimal value.
// The zero value is a valid zero. The significand is in [-MaxInt64, MaxInt64].
type Decimal struct {
	sig     int64
	scale   int16
	invalid bool
}

// New returns sig * 10^scale. Scales outside of [MinScale, MaxScale] are
// brought into the range with half-even rounding, if possible.
func New(sig int64, scale int) *Decimal {
	return new(Decimal).fit(mathutil.Uint64Abs(sig), sig < 0, scale, round.HalfEven)
}

// Invalid returns an invalid decimal.
func Invalid() *Decimal {
	return &Decimal{invalid: true}
}

// FromPacked converts a packed word. NaN gives an invalid decimal.
func FromPacked[S fixed.Split](w fixed.Word[S]) *Decimal {
	if !w.Valid() {
		return Invalid()
	}
	sig, scale := w.Decode()
	return &Decimal{sig: sig, scale: int16(scale)}
}

// ToPacked rounds d into a packed word of the split S. Invalid or unrepresentable values give def.
func ToPacked[S fixed.Split](d *Decimal, mode round.Mode, def fixed.Word[S]) fixed.Word[S] {
	if !d.Valid() {
		return def
	}
	return fixed.Arithmetic[S]{Rounding: mode}.Fit(d.sig, int(d.scale), def)
}

// FromFloat64 returns the shortest decimal, which parses back to f.
// NaN and infinities give an invalid decimal.
func FromFloat64(f float64) *Decimal {
	return fromShortest(dtoa.Shortest64(f))
}

// FromFloat32 returns the shortest decimal, which parses back to f as a float32.
func FromFloat32(f float32) *Decimal {
	return fromShortest(dtoa.Shortest32(f))
}

func fromShortest(r dtoa.Result) *Decimal {
	if r.Kind != dtoa.Finite {
		return Invalid()
	}
	return new(Decimal).fit(r.Digits, r.Neg, r.Exp, round.HalfEven)
}

// FromFloat64Scale returns the exact binary value of f rounded to the given scale.
// The result is invalid, if it does not fit a 64-bit significand.
func FromFloat64Scale(f float64, scale int, mode round.Mode) *Decimal {
	if scale < MinScale || scale > MaxScale {
		return Invalid()
	}
	x, ok := dtoa.Fixed64(f, scale, mode)
	if !ok || !x.IsInt64() || x.Int64() == math.MinInt64 {
		return Invalid()
	}
	return &Decimal{sig: x.Int64(), scale: int16(scale)}
}

// Parse parses a decimal string, like "-1.25e3". Values, which do not fit,
// are rounded according to mode, or marked invalid.
// Malformed strings return an error.
func Parse(s string, mode round.Mode) (*Decimal, error) {
	digits, exp, neg, err := strutil.Parse(s)
	if err != nil {
		return Invalid(), Error.Wrap(err)
	}
	d := new(Decimal)
	switch {
	case len(digits) == 0:
		return d.fit(0, neg, exp, mode), nil
	case exp > MaxScale+mathutil.MaxPow10:
		return d.markInvalid(), nil
	case exp+len(digits) < MinScale-1:
		return d.set(bounds.FitInexact(new(mag.Int), neg, MinScale-1, mode)), nil
	case len(digits) <= mathutil.MaxPow10:
		m, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return Invalid(), Error.Wrap(err)
		}
		return d.fit(m, neg, exp, mode), nil
	}
	x, err := mag.Parse(digits)
	if err != nil {
		return Invalid(), Error.Wrap(err)
	}
	if neg {
		x.Neg(x)
	}
	return d.set(bounds.FitInt(x, exp, mode)), nil
}

// MustParse is like Parse with half-even rounding, but panics on malformed strings.
func MustParse(s string) *Decimal {
	d, err := Parse(s, round.HalfEven)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Decimal) set(sig int64, scale int, ok bool) *Decimal {
	if !ok {
		return d.markInvalid()
	}
	d.sig, d.scale, d.invalid = sig, int16(scale), false
	return d
}

func (d *Decimal) fit(m uint64, neg bool, scale int, mode round.Mode) *Decimal {
	return d.set(bounds.Fit(m, neg, scale, mode))
}

func (d *Decimal) markInvalid() *Decimal {
	d.sig, d.scale, d.invalid = 0, 0, true
	return d
}

// Set sets d to x.
func (d *Decimal) Set(x *Decimal) *Decimal {
	*d = *x
	return d
}

// Add sets d to d + x.
func (d *Decimal) Add(x *Decimal, mode round.Mode) *Decimal {
	if d.invalid || x.invalid {
		return d.markInvalid()
	}
	return d.set(bounds.Add(d.sig, int(d.scale), x.sig, int(x.scale), mode))
}

// Sub sets d to d - x.
func (d *Decimal) Sub(x *Decimal, mode round.Mode) *Decimal {
	if d.invalid || x.invalid {
		return d.markInvalid()
	}
	return d.set(bounds.Add(d.sig, int(d.scale), -x.sig, int(x.scale), mode))
}

// Mul sets d to d * x.
func (d *Decimal) Mul(x *Decimal, mode round.Mode) *Decimal {
	if d.invalid || x.invalid {
		return d.markInvalid()
	}
	return d.set(bounds.Mul(d.sig, int(d.scale), x.sig, int(x.scale), mode))
}

// Div sets d to d / x rounded to the given scale.
// Division by zero makes d invalid.
func (d *Decimal) Div(x *Decimal, scale int, mode round.Mode) *Decimal {
	if d.invalid || x.invalid || x.sig == 0 || scale < MinScale || scale > MaxScale {
		return d.markInvalid()
	}
	sig, ok := bounds.QuoScale(d.sig, int(d.scale), x.sig, int(x.scale), scale, mode)
	return d.set(sig, scale, ok)
}

// DivMod returns the quotient d / x truncated to the given scale and the remainder d - q*x.
// d is not modified.
func (d *Decimal) DivMod(x *Decimal, scale int) (q, r *Decimal) {
	q = new(Decimal).Set(d).Div(x, scale, round.Down)
	if !q.Valid() {
		return q, Invalid()
	}
	// q*x may not fit 64 bits even when the remainder does.
	e := min(int(d.scale), int(q.scale)+int(x.scale))
	num := new(mag.Int).MulPow10(mag.NewInt(d.sig), uint(int(d.scale)-e))
	prod := new(mag.Int).Mul(mag.NewInt(q.sig), mag.NewInt(x.sig))
	prod.MulPow10(prod, uint(int(q.scale)+int(x.scale)-e))
	return q, new(Decimal).set(bounds.FitInt(num.Sub(num, prod), e, round.Exact))
}

// Rem sets d to the remainder of the truncated division d / x.
// The remainder has the sign of d and the smaller of the two scales.
func (d *Decimal) Rem(x *Decimal) *Decimal {
	if d.invalid || x.invalid || x.sig == 0 {
		return d.markInvalid()
	}
	return d.set(bounds.Rem(d.sig, int(d.scale), x.sig, int(x.scale), round.Exact))
}

// Sqrt sets d to √d rounded to the given scale. Negative values make d invalid.
func (d *Decimal) Sqrt(scale int, mode round.Mode) *Decimal {
	if d.invalid || d.sig < 0 || scale < MinScale || scale > MaxScale {
		return d.markInvalid()
	}
	sig, ok := bounds.SqrtScale(d.sig, int(d.scale), scale, mode)
	return d.set(sig, scale, ok)
}

// SetScale rounds d to the given scale. A non-zero value may become zero.
// If the value does not fit at the new scale, or mode is round.Exact and
// the rounding is lossy, d is marked invalid.
func (d *Decimal) SetScale(scale int, mode round.Mode) *Decimal {
	if d.invalid || scale < MinScale || scale > MaxScale {
		return d.markInvalid()
	}
	sig, ok := bounds.SetScale(d.sig, int(d.scale), scale, mode)
	return d.set(sig, scale, ok)
}

// Abs sets d to |d|.
func (d *Decimal) Abs() *Decimal {
	if d.sig < 0 {
		d.sig = -d.sig
	}
	return d
}

// Neg sets d to -d.
func (d *Decimal) Neg() *Decimal {
	d.sig = -d.sig
	return d
}

// Normalize removes trailing zeros of the significand. Zero gets the scale 0.
func (d *Decimal) Normalize() *Decimal {
	if d.invalid {
		return d
	}
	if d.sig == 0 {
		d.scale = 0
		return d
	}
	m, e := mathutil.TrimMantExp(mathutil.Uint64Abs(d.sig), int(d.scale), MaxScale)
	return d.set(signed(m, d.sig < 0), e, true)
}

// Significand returns the significand of d.
func (d *Decimal) Significand() int64 {
	return d.sig
}

// Scale returns the scale of d.
func (d *Decimal) Scale() int {
	return int(d.scale)
}

// Valid returns false, if d is marked invalid.
func (d *Decimal) Valid() bool {
	return !d.invalid
}

// Sign returns -1, 0, or 1. Invalid decimals have the sign 0.
func (d *Decimal) Sign() int {
	return mathutil.Int64Sign(d.sig)
}

// Cmp compares d and x. An invalid decimal is less than any valid one.
func (d *Decimal) Cmp(x *Decimal) int {
	if d.invalid || x.invalid {
		switch {
		case d.invalid == x.invalid:
			return 0
		case d.invalid:
			return -1
		default:
			return 1
		}
	}
	return norm.Cmp(d.sig, int(d.scale), x.sig, int(x.scale))
}

// Eq returns true, if d and x are valid and represent the same number.
func (d *Decimal) Eq(x *Decimal) bool {
	return d.Valid() && x.Valid() && d.Cmp(x) == 0
}

// Int64 returns d rounded to an integer.
func (d *Decimal) Int64(mode round.Mode) (int64, bool) {
	if d.invalid {
		return 0, false
	}
	return bounds.SetScale(d.sig, int(d.scale), 0, mode)
}

// Unscaled returns the significand as a magnitude value.
func (d *Decimal) Unscaled() *mag.Int {
	return mag.NewInt(d.sig)
}

func signed(m uint64, neg bool) int64 {
	if neg {
		return -int64(m)
	}
	return int64(m)
}
