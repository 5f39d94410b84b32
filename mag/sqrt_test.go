// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mag

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/avdva/decnum/round"
	"github.com/stretchr/testify/assert"
)

func TestSqrtFloor(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(30))
	for i := 0; i < 500; i++ {
		x := new(Int).Abs(randInt(r, 12))
		s, ok := Sqrt(x, round.Floor)
		a.True(ok)
		a.Equal(new(big.Int).Sqrt(toBig(x)).String(), s.String())
	}
}

func TestSqrtRounding(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x    int64
		mode round.Mode
		res  int64
		ok   bool
	}{
		{16, round.Exact, 4, true},
		{17, round.Exact, 4, false},
		{17, round.Floor, 4, true},
		{17, round.Ceiling, 5, true},
		{17, round.Up, 5, true},
		{17, round.Down, 4, true},
		{17, round.HalfUp, 4, true},
		{20, round.HalfUp, 4, true}, // 4.47
		{21, round.HalfUp, 5, true}, // 4.58
		{21, round.HalfDown, 5, true},
		{21, round.HalfEven, 5, true},
		{2, round.HalfEven, 1, true}, // 1.41
		{0, round.Ceiling, 0, true},
		{1, round.Exact, 1, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, ok := Sqrt(NewInt(test.x), test.mode)
			a.Equal(test.ok, ok)
			a.Equal(test.res, res.Int64())
		})
	}
	a.Panics(func() { Sqrt(NewInt(-4), round.Floor) })
}

func TestSqrtLarge(t *testing.T) {
	a := assert.New(t)
	x := Pow10(100)
	s, ok := Sqrt(x, round.Exact)
	a.True(ok)
	a.Equal(0, s.Cmp(Pow10(50)))
	x.Add(x, NewInt(1))
	s, ok = Sqrt(x, round.Ceiling)
	a.True(ok)
	a.Equal(0, s.Cmp(new(Int).Add(Pow10(50), NewInt(1))))
}
