// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dfp

import (
	"github.com/avdva/decnum/round"
	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
)

// robahoPlaces is the number of fractional digits of robaho/fixed values.
const robahoPlaces = 7

// FromShopspring converts a shopspring decimal. Coefficients, which do not fit
// a 64-bit significand, are rounded according to mode.
func FromShopspring(x decimal.Decimal, mode round.Mode) *Decimal {
	s := x.String()
	if exp := x.Exponent(); exp < 0 {
		// keep trailing zeros of the fraction.
		s = x.StringFixed(-exp)
	}
	d, err := Parse(s, mode)
	if err != nil {
		return Invalid()
	}
	return d
}

// Shopspring returns d as a shopspring decimal. Invalid decimals give zero and false.
func (d *Decimal) Shopspring() (decimal.Decimal, bool) {
	if d.invalid {
		return decimal.Zero, false
	}
	return decimal.New(d.sig, int32(d.scale)), true
}

// FromRobaho converts a robaho/fixed value. NaN gives an invalid decimal.
func FromRobaho(f of.Fixed) *Decimal {
	if f.IsNaN() {
		return Invalid()
	}
	d, err := Parse(f.String(), round.Exact)
	if err != nil {
		return Invalid()
	}
	return d
}

// Robaho returns d as a robaho/fixed value, rounding it to 7 fractional digits.
// ok is false, if d is invalid or does not fit.
func (d *Decimal) Robaho(mode round.Mode) (f of.Fixed, ok bool) {
	if d.invalid {
		return f, false
	}
	r := new(Decimal).Set(d).SetScale(-robahoPlaces, mode)
	if !r.Valid() {
		return f, false
	}
	return of.NewI(r.sig, robahoPlaces), true
}
