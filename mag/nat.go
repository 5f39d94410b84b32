// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mag

import (
	"math/bits"
)

// nat is an unsigned integer x of the form
//
//	x = x[n-1]*2^(32*(n-1)) + ... + x[1]*2^32 + x[0]
//
// A nat is normalized if the slice contains no leading (most significant) zero words.
// The normalized representation of 0 is the empty slice.
type nat []Word

// KaratsubaThreshold is the operand length in words, starting from which
// multiplication switches from the schoolbook algorithm to Karatsuba's.
// It is a tuning parameter, and it must be set at program start only.
var KaratsubaThreshold = 40

var natOne = nat{1}

func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		return make(nat, 1)
	}
	// extra capacity lets the value grow by a few words without reallocation.
	const e = 4
	return make(nat, n, n+e)
}

func (z nat) setWord(x Word) nat {
	if x == 0 {
		return z[:0]
	}
	z = z.make(1)
	z[0] = x
	return z
}

func (z nat) setUint64(x uint64) nat {
	if w := Word(x); uint64(w) == x {
		return z.setWord(w)
	}
	z = z.make(2)
	z[1] = Word(x >> 32)
	z[0] = Word(x)
	return z
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

// low64 returns the lowest 64 bits of x.
func (x nat) low64() uint64 {
	switch len(x) {
	case 0:
		return 0
	case 1:
		return uint64(x[0])
	}
	return uint64(x[1])<<32 | uint64(x[0])
}

func (x nat) cmp(y nat) (r int) {
	m, n := len(x), len(y)
	if m != n || m == 0 {
		switch {
		case m < n:
			r = -1
		case m > n:
			r = 1
		}
		return r
	}
	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}
	switch {
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return r
}

func (z nat) add(x, y nat) nat {
	m, n := len(x), len(y)
	switch {
	case m < n:
		return z.add(y, x)
	case m == 0:
		return z[:0]
	case n == 0:
		return z.set(x)
	}
	z = z.make(m + 1)
	c := addVV(z[0:n], x, y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c
	return z.norm()
}

// sub sets z = x - y. It panics if x < y.
func (z nat) sub(x, y nat) nat {
	m, n := len(x), len(y)
	switch {
	case m < n:
		panic("mag: negative result of unsigned subtraction")
	case m == 0:
		return z[:0]
	case n == 0:
		return z.set(x)
	}
	z = z.make(m)
	c := subVV(z[0:n], x, y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("mag: negative result of unsigned subtraction")
	}
	return z.norm()
}

func (z nat) mulAddWW(x nat, y, r Word) nat {
	m := len(x)
	if m == 0 || y == 0 {
		return z.setWord(r)
	}
	z = z.make(m + 1)
	z[m] = mulAddVWW(z[0:m], x, y, r)
	return z.norm()
}

// basicMul multiplies x and y and leaves the result in z.
// z must be of length len(x)+len(y) and must not alias x or y.
func basicMul(z, x, y nat) {
	clear(z)
	for i, d := range y {
		if d != 0 {
			z[len(x)+i] = addMulVVW(z[i:i+len(x)], x, d)
		}
	}
}

func (z nat) mul(x, y nat) nat {
	m, n := len(x), len(y)
	switch {
	case m < n:
		return z.mul(y, x)
	case m == 0 || n == 0:
		return z[:0]
	case n == 1:
		return z.mulAddWW(x, y[0], 0)
	}
	if alias(z, x) || alias(z, y) {
		z = nil
	}
	if n < KaratsubaThreshold {
		z = z.make(m + n)
		basicMul(z, x, y)
		return z.norm()
	}
	return z.set(karatsuba(x, y))
}

// karatsuba returns x*y for normalized x and y, len(x) >= len(y).
// Operands of very different lengths are cut into len(y)-sized chunks of x first.
func karatsuba(x, y nat) nat {
	n := len(y)
	if n < KaratsubaThreshold || n < 2 {
		z := make(nat, len(x)+len(y))
		basicMul(z, x, y)
		return z.norm()
	}
	z := make(nat, len(x)+len(y))
	if len(x) >= 2*n {
		for i := 0; i < len(x); i += n {
			end := min(i+n, len(x))
			addAt(z, nat(nil).mul(x[i:end].norm(), y), i)
		}
		return z.norm()
	}
	// x = x1*b + x0, y = y1*b + y0, where b = 2^(32*h), h < n.
	h := len(x) / 2
	x0, x1 := x[:h].norm(), x[h:]
	y0, y1 := y[:h].norm(), y[h:]
	z0 := nat(nil).mul(x0, y0)
	z2 := nat(nil).mul(x1, y1)
	// z1 = (x0 + x1)*(y0 + y1) - z0 - z2 = x0*y1 + x1*y0
	sx := nat(nil).add(x0, x1)
	sy := nat(nil).add(y0, y1)
	z1 := nat(nil).mul(sx, sy)
	z1 = z1.sub(z1, z0)
	z1 = z1.sub(z1, z2)
	copy(z, z0)
	addAt(z, z1, h)
	addAt(z, z2, 2*h)
	return z.norm()
}

// addAt implements z += x<<(_W*i). z must be long enough to hold the result.
func addAt(z, x nat, i int) {
	if n := len(x); n > 0 {
		if c := addVV(z[i:i+n], z[i:], x); c != 0 {
			j := i + n
			if j < len(z) {
				addVW(z[j:], z[j:], c)
			}
		}
	}
}

// alias reports whether x and y share the same base array.
func alias(x, y nat) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

func (z nat) shl(x nat, s uint) nat {
	if s == 0 {
		return z.set(x)
	}
	m := len(x)
	if m == 0 {
		return z[:0]
	}
	n := m + int(s/_W)
	z = z.make(n + 1)
	z[n] = shlVU(z[n-m:n], x, s%_W)
	clear(z[0 : n-m])
	return z.norm()
}

func (z nat) shr(x nat, s uint) nat {
	if s == 0 {
		return z.set(x)
	}
	m := len(x)
	n := m - int(s/_W)
	if n <= 0 {
		return z[:0]
	}
	z = z.make(n)
	shrVU(z, x[m-n:], s%_W)
	return z.norm()
}

func (x nat) bitLen() int {
	if i := len(x) - 1; i >= 0 {
		return i*_W + bits.Len32(x[i])
	}
	return 0
}

// expNN sets z = x**n.
func (z nat) expNN(x nat, n uint) nat {
	if alias(z, x) {
		z = nil
	}
	z = z.setWord(1)
	if n == 0 {
		return z
	}
	base := nat(nil).set(x)
	for {
		if n&1 != 0 {
			z = z.mul(z, base)
		}
		n >>= 1
		if n == 0 {
			break
		}
		base = base.mul(base, base)
	}
	return z
}

func (z nat) and(x, y nat) nat {
	m := min(len(x), len(y))
	z = z.make(m)
	for i := 0; i < m; i++ {
		z[i] = x[i] & y[i]
	}
	return z.norm()
}

func (z nat) andNot(x, y nat) nat {
	m := len(x)
	n := min(len(y), m)
	z = z.make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] &^ y[i]
	}
	copy(z[n:m], x[n:m])
	return z.norm()
}

func (z nat) or(x, y nat) nat {
	m, n := len(x), len(y)
	s := x
	if m < n {
		n, m = m, n
		s = y
	}
	z = z.make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] | y[i]
	}
	copy(z[n:m], s[n:m])
	return z.norm()
}

func (z nat) xor(x, y nat) nat {
	m, n := len(x), len(y)
	s := x
	if m < n {
		n, m = m, n
		s = y
	}
	z = z.make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] ^ y[i]
	}
	copy(z[n:m], s[n:m])
	return z.norm()
}
