// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed_test

import (
	"math/rand"
	"testing"

	fixed "github.com/avdva/decnum"
	"github.com/avdva/decnum/dfp"
	"github.com/avdva/decnum/round"
	"github.com/stretchr/testify/assert"
)

type binaryOps[S fixed.Split] struct {
	name   string
	packed func(ar fixed.Arithmetic[S], x, y, def fixed.Word[S]) fixed.Word[S]
	dec    func(x, y *dfp.Decimal, mode round.Mode) *dfp.Decimal
}

func crossCheck[S fixed.Split](t *testing.T, maxSig int64, iterations int) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(maxSig))
	l := fixed.Limits[S]()
	def := fixed.NaN[S]()
	random := func() fixed.Word[S] {
		sig := rnd.Int63n(2*maxSig+1) - maxSig
		return fixed.Encode[S](sig, l.MinScale+rnd.Intn(l.MaxScale-l.MinScale+1), def)
	}
	ops := []binaryOps[S]{
		{"add", fixed.Arithmetic[S].Add, (*dfp.Decimal).Add},
		{"sub", fixed.Arithmetic[S].Sub, (*dfp.Decimal).Sub},
		{"mul", fixed.Arithmetic[S].Mul, (*dfp.Decimal).Mul},
	}
	for i := 0; i < iterations; i++ {
		x, y := random(), random()
		for _, op := range ops {
			exact := op.dec(dfp.FromPacked(x), dfp.FromPacked(y), round.Exact)
			if !exact.Valid() {
				// the exact result needs more than 64 bits.
				continue
			}
			for _, mode := range round.Modes {
				ar := fixed.Arithmetic[S]{Rounding: mode}
				want := dfp.ToPacked(exact, mode, def)
				a.Equal(want, op.packed(ar, x, y, def), "%s %s %s (%s)", x, op.name, y, mode)
			}
		}
	}
}

func TestPackedMatchesExtended(t *testing.T) {
	t.Run("split8", func(t *testing.T) { crossCheck[fixed.Split8](t, 1e9, 2000) })
	t.Run("split4", func(t *testing.T) { crossCheck[fixed.Split4](t, 1e9, 2000) })
	t.Run("split2", func(t *testing.T) { crossCheck[fixed.Split2](t, 1e5, 2000) })
}
