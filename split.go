// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import "github.com/avdva/decnum/internal/norm"

// Split selects how many low bits of a packed word hold the scale.
// The remaining high bits hold the significand.
//
//	63                                          k   k-1         0
//	ssssssssssssssssssssssssssssssssssssssssssss    eeeeeeeeeeeee
//
// Both parts are two's complement numbers.
type Split interface {
	ScaleBits() uint
}

type (
	// Split0 uses no scale bits: words are plain integers.
	Split0 struct{}
	// Split1 has scales [-1, 0].
	Split1 struct{}
	// Split2 has scales [-2, 1].
	Split2 struct{}
	// Split3 has scales [-4, 3].
	Split3 struct{}
	// Split4 has scales [-8, 7].
	Split4 struct{}
	// Split5 has scales [-16, 15].
	Split5 struct{}
	// Split6 has scales [-32, 31].
	Split6 struct{}
	// Split7 has scales [-64, 63].
	Split7 struct{}
	// Split8 has scales [-128, 127].
	Split8 struct{}
)

func (Split0) ScaleBits() uint { return 0 }
func (Split1) ScaleBits() uint { return 1 }
func (Split2) ScaleBits() uint { return 2 }
func (Split3) ScaleBits() uint { return 3 }
func (Split4) ScaleBits() uint { return 4 }
func (Split5) ScaleBits() uint { return 5 }
func (Split6) ScaleBits() uint { return 6 }
func (Split7) ScaleBits() uint { return 7 }
func (Split8) ScaleBits() uint { return 8 }

// Layout describes the ranges of a split.
// The significand range is symmetric: [-MaxSignificand, MaxSignificand].
type Layout struct {
	ScaleBits      uint
	MinScale       int
	MaxScale       int
	MaxSignificand int64
}

// Limits returns the layout of the split S.
func Limits[S Split]() Layout {
	var s S
	k := s.ScaleBits()
	l := Layout{
		ScaleBits:      k,
		MaxSignificand: 1<<(63-k) - 1,
	}
	if k > 0 {
		l.MinScale = -(1 << (k - 1))
		l.MaxScale = 1<<(k-1) - 1
	}
	return l
}

func (l Layout) bounds() norm.Bounds {
	return norm.Bounds{MaxSig: uint64(l.MaxSignificand), MinScale: l.MinScale, MaxScale: l.MaxScale}
}

func (l Layout) scaleMask() int64 {
	return 1<<l.ScaleBits - 1
}
