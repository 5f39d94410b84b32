// Package mathutil contains bit twiddling helpers and power-of-ten tables
// shared by the decimal packages.
package mathutil

import (
	"math/bits"
)

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}

	digitsHelper = [...]int{
		0, 0, 0, 0, 1, 1, 1, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 5, 5, 5,
		6, 6, 6, 6, 7, 7, 7, 8, 8, 8,
		9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
		12, 12, 12, 12, 13, 13, 13, 14, 14, 14,
		15, 15, 15, 15, 16, 16, 16, 17, 17, 17,
		18, 18, 18, 18, 19,
	}
)

const (
	// MaxPow10 is the largest n, so that 10^n fits a uint64.
	MaxPow10 = 19
	// WordPow10 is the largest n, so that 10^n fits a 32-bit word.
	WordPow10 = 9
	// WordBase10 is 10^WordPow10.
	WordBase10 = 1000000000
)

// Pow10 returns 10^pow, or 0 if it does not fit a uint64.
func Pow10(pow int) uint64 {
	if pow < 0 || pow >= len(decimalFactorTable) {
		return 0
	}
	return decimalFactorTable[pow]
}

// Log2 returns floor(log2(value)), or -1 for 0.
func Log2(value uint64) int {
	return bits.Len64(value) - 1
}

// DecimalDigits returns the number of decimal digits in 'value'.
// see https://stackoverflow.com/a/25934909
func DecimalDigits(value uint64) int {
	if value == 0 {
		return 1
	}

	digits := digitsHelper[Log2(value)+1]
	if value >= decimalFactorTable[digits] {
		digits++
	}
	return digits
}

// TrailingZeros returns the number of trailing decimal zeros of a non-zero value.
func TrailingZeros(value uint64) int {
	if value == 0 {
		return 0
	}
	var n int
	if value%1e16 == 0 {
		value /= 1e16
		n += 16
	}
	if value%1e8 == 0 {
		value /= 1e8
		n += 8
	}
	if value%1e4 == 0 {
		value /= 1e4
		n += 4
	}
	if value%100 == 0 {
		value /= 100
		n += 2
	}
	if value%10 == 0 {
		n++
	}
	return n
}

// MulPow10 returns mant*10^pow and reports whether it fits a uint64.
func MulPow10(mant uint64, pow int) (uint64, bool) {
	if mant == 0 || pow == 0 {
		return mant, true
	}
	p := Pow10(pow)
	if p == 0 {
		return 0, false
	}
	hi, lo := bits.Mul64(mant, p)
	return lo, hi == 0
}

// DivPow10 returns mant/10^pow and mant%10^pow.
// For pow > MaxPow10 the quotient is zero and the remainder is mant.
func DivPow10(mant uint64, pow int) (quo, rem uint64) {
	if pow <= 0 {
		return mant, 0
	}
	p := Pow10(pow)
	if p == 0 {
		return 0, mant
	}
	return mant / p, mant % p
}

// DivRem128 divides the 128-bit number hi:lo by d. It panics if d == 0.
func DivRem128(hi, lo, d uint64) (qhi, qlo, rem uint64) {
	qhi, rem = bits.Div64(0, hi, d)
	qlo, rem = bits.Div64(rem, lo, d)
	return qhi, qlo, rem
}

// Cmp128 compares two 128-bit numbers.
func Cmp128(ahi, alo, bhi, blo uint64) int {
	switch {
	case ahi > bhi:
		return 1
	case ahi < bhi:
		return -1
	}
	return Uint64Cmp(alo, blo)
}

// Uint64Cmp compares two uint64 numbers.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func Uint64Cmp(a, b uint64) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// Uint64Abs returns |v| as a uint64, it is correct for math.MinInt64 as well.
func Uint64Abs(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

// Int64Sign returns -1, 0 or 1.
func Int64Sign(v int64) int {
	if v == 0 {
		return 0
	}
	return [...]int{1, -1}[uint64(v)>>63]
}

// TrimMantExp removes trailing zeros from m, incrementing e, but not above eMax.
func TrimMantExp(m uint64, e, eMax int) (uint64, int) {
	if m == 0 {
		return 0, e
	}
	n := min(TrailingZeros(m), eMax-e)
	if n <= 0 {
		return m, e
	}
	return m / decimalFactorTable[n], e + n
}
