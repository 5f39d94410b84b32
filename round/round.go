// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package round defines the rounding modes shared by the magnitude engine,
// the packed decimal arithmetic and the extended decimal value.
package round

import (
	"fmt"
	"strings"
)

// Mode is a rounding mode.
type Mode uint8

const (
	// HalfEven rounds to the nearest neighbour, ties go to the even one.
	HalfEven Mode = iota
	// HalfUp rounds to the nearest neighbour, ties go away from zero.
	HalfUp
	// HalfDown rounds to the nearest neighbour, ties go toward zero.
	HalfDown
	// Floor rounds toward negative infinity.
	Floor
	// Ceiling rounds toward positive infinity.
	Ceiling
	// Down rounds toward zero (truncation).
	Down
	// Up rounds away from zero.
	Up
	// Exact refuses to round: any discarded non-zero part is a failure.
	Exact
)

var modeNames = [...]string{
	HalfEven: "half-even",
	HalfUp:   "half-up",
	HalfDown: "half-down",
	Floor:    "floor",
	Ceiling:  "ceiling",
	Down:     "down",
	Up:       "up",
	Exact:    "exact",
}

// Modes lists all the rounding modes.
var Modes = []Mode{HalfEven, HalfUp, HalfDown, Floor, Ceiling, Down, Up, Exact}

// String returns the mode's name as accepted by ParseMode.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode returns a mode for its name. Both "half-even" and "half_even" forms are accepted.
func ParseMode(s string) (Mode, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return HalfEven, fmt.Errorf("unknown rounding mode %q", s)
}

// Fraction classifies the part of a value discarded by a truncation,
// relative to one half of the last kept unit.
type Fraction uint8

const (
	// Zero means nothing was discarded, the truncation was exact.
	Zero Fraction = iota
	// LessThanHalf means 0 < discarded < 1/2.
	LessThanHalf
	// Half means discarded == 1/2.
	Half
	// MoreThanHalf means 1/2 < discarded < 1.
	MoreThanHalf
)

// FractionOf classifies rem/div, where 0 <= rem < div.
func FractionOf(rem, div uint64) Fraction {
	if rem == 0 {
		return Zero
	}
	// compare 2*rem with div without overflowing.
	half, odd := div/2, div%2 != 0
	switch {
	case rem < half || rem == half && odd:
		return LessThanHalf
	case rem == half:
		return Half
	default:
		return MoreThanHalf
	}
}

// FractionFromCmp builds a Fraction from the comparison of the doubled remainder with the divisor.
// nonZero tells whether the remainder is non-zero.
func FractionFromCmp(nonZero bool, cmpHalf int) Fraction {
	switch {
	case !nonZero:
		return Zero
	case cmpHalf < 0:
		return LessThanHalf
	case cmpHalf == 0:
		return Half
	default:
		return MoreThanHalf
	}
}

// Increment reports whether a truncated magnitude has to be increased by one unit.
// neg is the sign of the value and odd is the parity of the truncated magnitude.
// f is the discarded part. ok is false only for Exact with a non-zero discarded part.
func (m Mode) Increment(neg, odd bool, f Fraction) (inc, ok bool) {
	if f == Zero {
		return false, true
	}
	switch m {
	case Down:
		return false, true
	case Up:
		return true, true
	case Floor:
		return neg, true
	case Ceiling:
		return !neg, true
	case HalfUp:
		return f >= Half, true
	case HalfDown:
		return f > Half, true
	case HalfEven:
		return f > Half || f == Half && odd, true
	default:
		return false, false
	}
}

// Round rounds q, the truncated magnitude, and reports if that was allowed by the mode.
// The result may overflow if q == MaxUint64, which callers must prevent.
func (m Mode) Round(q uint64, neg bool, f Fraction) (uint64, bool) {
	inc, ok := m.Increment(neg, q&1 != 0, f)
	if inc {
		q++
	}
	return q, ok
}
