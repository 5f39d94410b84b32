// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mag

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toBig(x *Int) *big.Int {
	b := new(big.Int).SetBytes(x.Bytes())
	if x.Sign() < 0 {
		b.Neg(b)
	}
	return b
}

func fromBig(b *big.Int) *Int {
	return FromBytes(b.Sign(), b.Bytes())
}

// randInt returns a random value with up to maxWords words.
func randInt(r *rand.Rand, maxWords int) *Int {
	n := r.Intn(maxWords + 1)
	w := make([]Word, n)
	for i := range w {
		switch r.Intn(4) {
		case 0:
			w[i] = 0
		case 1:
			w[i] = ^Word(0)
		default:
			w[i] = r.Uint32()
		}
	}
	sign := 1
	if r.Intn(2) == 0 {
		sign = -1
	}
	return FromWords(sign, w)
}

func checkNormalized(t *testing.T, x *Int) {
	w := x.Words()
	if len(w) > 0 {
		require.NotZero(t, w[len(w)-1], "leading zero word")
	} else {
		require.Equal(t, 0, x.Sign())
	}
}

func TestScenario2Pow128(t *testing.T) {
	a := assert.New(t)
	x := MustParse("340282366920938463463374607431768211456")
	a.Equal(new(Int).Lsh(NewInt(1), 128).String(), x.String())
	a.Equal("340282366920938463463374607431768211455", Sub(x, NewInt(1)).String())
	sq := Mul(x, x)
	a.Equal(new(Int).Lsh(NewInt(1), 256).String(), sq.String())
	a.Equal(257, sq.BitLen())
	a.Equal("115792089237316195423570985008687907853269984665640564039457584007913129639936", sq.String())
}

func TestAddSub(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		x, y := randInt(r, 8), randInt(r, 8)
		bx, by := toBig(x), toBig(y)
		sum := Add(x, y)
		diff := Sub(x, y)
		checkNormalized(t, sum)
		checkNormalized(t, diff)
		a.Equal(new(big.Int).Add(bx, by).String(), sum.String())
		a.Equal(new(big.Int).Sub(bx, by).String(), diff.String())
		// add(sub(a,b),b) == a
		a.Equal(0, Add(diff, y).Cmp(x))
	}
}

func TestInPlaceAliasing(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		x, y := randInt(r, 6), randInt(r, 6)
		bx, by := toBig(x), toBig(y)

		z := new(Int).Set(x)
		z.Add(z, y)
		a.Equal(new(big.Int).Add(bx, by).String(), z.String())

		z.Set(y)
		z.Sub(x, z)
		a.Equal(new(big.Int).Sub(bx, by).String(), z.String())

		z.Set(x)
		z.Mul(z, z)
		a.Equal(new(big.Int).Mul(bx, bx).String(), z.String())

		if y.Sign() != 0 {
			q := new(Int).Set(x)
			rem := new(Int).Set(y)
			q.QuoRem(q, rem, rem)
			bq, br := new(big.Int).QuoRem(bx, by, new(big.Int))
			a.Equal(bq.String(), q.String())
			a.Equal(br.String(), rem.String())
		}
	}
}

func TestMul(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 300; i++ {
		x, y := randInt(r, 100), randInt(r, 100)
		p := Mul(x, y)
		checkNormalized(t, p)
		a.Equal(new(big.Int).Mul(toBig(x), toBig(y)).String(), p.String())
	}
}

func TestKaratsubaMatchesSchoolbook(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(4))
	saved := KaratsubaThreshold
	defer func() { KaratsubaThreshold = saved }()
	for i := 0; i < 50; i++ {
		x, y := randInt(r, 300), randInt(r, 300)
		KaratsubaThreshold = 1 << 30
		expected := Mul(x, y)
		for _, th := range []int{2, 3, 8, 40} {
			KaratsubaThreshold = th
			a.Equal(0, Mul(x, y).Cmp(expected), "threshold %d", th)
		}
	}
	// unbalanced operands
	x, y := randInt(r, 1000), randInt(r, 50)
	KaratsubaThreshold = 4
	a.Equal(new(big.Int).Mul(toBig(x), toBig(y)).String(), Mul(x, y).String())
}

func TestDivRem(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 3000; i++ {
		x, y := randInt(r, 12), randInt(r, 6)
		if y.Sign() == 0 {
			continue
		}
		q, rem := DivRem(x, y)
		checkNormalized(t, q)
		checkNormalized(t, rem)
		bq, br := new(big.Int).QuoRem(toBig(x), toBig(y), new(big.Int))
		a.Equal(bq.String(), q.String())
		a.Equal(br.String(), rem.String())
		// q*b + r == a
		a.Equal(0, Add(Mul(q, y), rem).Cmp(x))
	}
}

func TestDivRemSigns(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y, q, r int64
	}{
		{7, 2, 3, 1},
		{-7, 2, -3, -1},
		{7, -2, -3, 1},
		{-7, -2, 3, -1},
		{1, 7, 0, 1},
		{-1, 7, 0, -1},
		{0, 7, 0, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			q, r := DivRem(NewInt(test.x), NewInt(test.y))
			a.Equal(test.q, q.Int64())
			a.Equal(test.r, r.Int64())
		})
	}
	a.Panics(func() { DivRem(NewInt(1), new(Int)) })
}

func TestDivKnuthCorrection(t *testing.T) {
	a := assert.New(t)
	// divisors with the top word close to the base trigger the add-back step.
	x := FromWords(1, []Word{0, 0, 0x80000000, 0x7fffffff, 0xffffffff})
	y := FromWords(1, []Word{1, 0, 0x80000000, 0xffffffff})
	q, r := DivRem(x, y)
	bq, br := new(big.Int).QuoRem(toBig(x), toBig(y), new(big.Int))
	a.Equal(bq.String(), q.String())
	a.Equal(br.String(), r.String())
}

func TestShifts(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(6))
	for i := 0; i < 500; i++ {
		x := randInt(r, 5)
		n := uint(r.Intn(150))
		a.Equal(new(big.Int).Lsh(toBig(x), n).String(), new(Int).Lsh(x, n).String())
		a.Equal(new(big.Int).Rsh(toBig(x), n).String(), new(Int).Rsh(x, n).String())
	}
}

func TestPowers(t *testing.T) {
	a := assert.New(t)
	for n := uint(0); n < 60; n++ {
		expected := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
		a.Equal(expected.String(), Pow10(n).String())
		a.Equal(int(n)+1, Pow10(n).DecimalDigits())
		if n > 0 {
			a.Equal(int(n), new(Int).Sub(Pow10(n), NewInt(1)).DecimalDigits())
		}
		x := NewInt(-123)
		a.Equal(new(big.Int).Mul(big.NewInt(-123), expected).String(), new(Int).MulPow10(x, n).String())
	}
	a.Equal("-27", new(Int).Exp(NewInt(-3), 3).String())
	a.Equal("1", new(Int).Exp(NewInt(-3), 0).String())
}

func TestInt64Conversions(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x   string
		i64 bool
		u64 bool
	}{
		{"0", true, true},
		{"9223372036854775807", true, true},
		{"9223372036854775808", false, true},
		{"-9223372036854775808", true, false},
		{"-9223372036854775809", false, false},
		{"18446744073709551615", false, true},
		{"18446744073709551616", false, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x := MustParse(test.x)
			a.Equal(test.i64, x.IsInt64())
			a.Equal(test.u64, x.IsUint64())
			b, _ := new(big.Int).SetString(test.x, 10)
			if test.i64 {
				a.Equal(b.Int64(), x.Int64())
			}
			if test.u64 {
				a.Equal(b.Uint64(), x.Uint64())
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	r := rand.New(rand.NewSource(7))
	x, y := randInt(r, 200), randInt(r, 200)
	var z Int
	var dummy int
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dummy += z.Mul(x, y).Sign()
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}

func BenchmarkDivRem(b *testing.B) {
	r := rand.New(rand.NewSource(8))
	x, y := randInt(r, 40), randInt(r, 15)
	if y.Sign() == 0 {
		y.SetInt64(7)
	}
	var q, rem Int
	var dummy int
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.QuoRem(x, y, &rem)
		dummy += q.Sign()
	}
	b.ReportMetric(float64(dummy), "dummy_metric")
}
