// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mag

import "math/bits"

// divW sets z = x / y and returns the remainder. It panics if y == 0.
func (z nat) divW(x nat, y Word) (q nat, r Word) {
	m := len(x)
	switch {
	case y == 0:
		panic("mag: division by zero")
	case y == 1:
		q = z.set(x)
		return q, 0
	case m == 0:
		q = z[:0]
		return q, 0
	}
	z = z.make(m)
	r = divWVW(z, 0, x, y)
	q = z.norm()
	return q, r
}

// div returns q, r such that q = u/v, r = u%v.
// q is written to z, r to z2. z and z2 must not alias each other.
// It panics if v == 0.
func (z nat) div(z2, u, v nat) (q, r nat) {
	if len(v) == 0 {
		panic("mag: division by zero")
	}
	if u.cmp(v) < 0 {
		q = z[:0]
		r = z2.set(u)
		return q, r
	}
	if len(v) == 1 {
		var r2 Word
		q, r2 = z.divW(u, v[0])
		r = z2.setWord(r2)
		return q, r
	}
	return z.divLarge(z2, u, v)
}

// divLarge implements Knuth's algorithm D (TAOCP vol. 2, 4.3.1) for len(v) >= 2 and u >= v.
// The operands are copied into normalized scratch buffers, so z and z2 may alias u or v.
func (z nat) divLarge(z2, uIn, vIn nat) (q, r nat) {
	n := len(vIn)
	m := len(uIn) - n

	// D1: shift the divisor so that its top bit is set.
	shift := uint(bits.LeadingZeros32(vIn[n-1]))
	v := make(nat, n)
	shlVU(v, vIn, shift)
	u := make(nat, len(uIn)+1)
	u[len(uIn)] = shlVU(u[:len(uIn)], uIn, shift)

	q = z.make(m + 1)
	qhatv := make(nat, n+1)
	vn1, vn2 := uint64(v[n-1]), uint64(v[n-2])

	for j := m; j >= 0; j-- {
		// D3: estimate the quotient digit from the top two words of the current remainder.
		top := uint64(u[j+n])<<32 | uint64(u[j+n-1])
		qhat, rhat := top/vn1, top%vn1
		for qhat >= 1<<32 || qhat*vn2 > rhat<<32|uint64(u[j+n-2]) {
			qhat--
			rhat += vn1
			if rhat >= 1<<32 {
				break
			}
		}

		// D4: multiply and subtract.
		qhatv[n] = mulAddVWW(qhatv[0:n], v, Word(qhat), 0)
		if c := subVV(u[j:j+n+1], u[j:], qhatv); c != 0 {
			// D6: the estimate was one too large, add the divisor back.
			c := addVV(u[j:j+n], u[j:], v)
			u[j+n] += c
			qhat--
		}
		q[j] = Word(qhat)
	}
	q = q.norm()

	// D8: unnormalize the remainder.
	r = z2.make(n)
	shrVU(r, u[:n], shift)
	r = r.norm()
	return q, r
}
