package series

import (
	"fmt"
	"testing"

	"github.com/avdva/decnum/mag"
	"github.com/stretchr/testify/assert"
)

// near checks that got, a fixed-point value with prec digits, equals want,
// a fixed-point value with wantPrec digits, within tol units of the last place of want.
func near(t *testing.T, got *mag.Int, prec uint, want string, wantPrec uint, tol int64) {
	t.Helper()
	g := new(mag.Int).Quo(got, mag.Pow10(prec-wantPrec))
	diff := new(mag.Int).Sub(g, mag.MustParse(want))
	if diff.CmpAbs(mag.NewInt(tol)) > 0 {
		t.Errorf("got %s, want %s (diff %s)", g, want, diff)
	}
}

func TestConstants(t *testing.T) {
	f := New(50)
	near(t, f.Pi(), 50, "31415926535897932384626433832795028841971", 40, 1)
	near(t, f.Ln2(), 50, "6931471805599453094172321214581765680755", 40, 1)
	near(t, f.Ln10(), 50, "23025850929940456840179914546843642076011", 40, 1)
}

func TestLn(t *testing.T) {
	a := assert.New(t)
	f := New(40)
	a.Equal(0, f.Ln(mag.NewInt(1), 0).Sign())
	a.Equal(0, f.Ln(mag.NewInt(100), -2).Sign())
	tests := []struct {
		sig   int64
		scale int
		want  string
	}{
		{3, 0, "1098612288668109691395245236922"},
		{1000, 0, "6907755278982137052053974364053"},
		{5, -1, "-693147180559945309417232121458"},
		{2, 0, "693147180559945309417232121458"},
		{20, -1, "693147180559945309417232121458"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			near(t, f.Ln(mag.NewInt(test.sig), test.scale), 40, test.want, 30, 2)
		})
	}
}

func TestExp(t *testing.T) {
	a := assert.New(t)
	f := New(40)
	m, exp := f.Exp(f.One())
	a.Equal(-40, exp)
	near(t, m, 40, "2718281828459045235360287471352", 30, 2)
	m, exp = f.Exp(new(mag.Int).Neg(f.One()))
	a.Equal(-41, exp)
	near(t, m, 40, "3678794411714423215955237701614", 30, 2)
	m, exp = f.Exp(new(mag.Int))
	a.Equal(-40, exp)
	near(t, m, 40, "1000000000000000000000000000000", 30, 1)
}

func TestSinCos(t *testing.T) {
	f := New(40)
	s, c := f.SinCos(f.One())
	near(t, s, 40, "841470984807896506652502321630", 30, 2)
	near(t, c, 40, "540302305868139717400936607442", 30, 2)
	s, c = f.SinCos(new(mag.Int).Neg(f.One()))
	near(t, s, 40, "-841470984807896506652502321630", 30, 2)
	near(t, c, 40, "540302305868139717400936607442", 30, 2)
	s, c = f.SinCos(f.FromDecimal(mag.NewInt(100), 0))
	near(t, s, 40, "-5063656411097587", 16, 2)
	near(t, c, 40, "8623188722876839", 16, 2)
	s, c = f.SinCos(new(mag.Int))
	near(t, s, 40, "0", 30, 0)
	near(t, c, 40, "1000000000000000000000000000000", 30, 0)
}

func TestFromDecimal(t *testing.T) {
	a := assert.New(t)
	f := New(3)
	a.Equal("1230", f.FromDecimal(mag.NewInt(123), -2).String())
	a.Equal("1", f.FromDecimal(mag.NewInt(15), -4).String())
	a.Equal("5000", f.FromDecimal(mag.NewInt(5), 0).String())
	a.Equal(uint(3), f.Prec())
}

func BenchmarkLn(b *testing.B) {
	f := New(60)
	x := mag.NewInt(123456789)
	var dummy int
	for i := 0; i < b.N; i++ {
		dummy += f.Ln(x, -4).Sign()
	}
	b.ReportMetric(float64(dummy), "dummy_metric")
}
