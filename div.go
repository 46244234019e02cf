package intx

import "math/bits"

// normalized holds per-call working copies of the operands, left-shifted so
// the divisor's top significant word has bit 63 set. The numerator slice has
// one extra word to catch the bits shifted out of its top word; the division
// routines overwrite it in place with the quotient.
type normalized struct {
	numerator    []uint64 // len(words)+1, mutated by the division paths
	divisor      []uint64 // len(words), read-only once built
	numeratorLen int      // significant numerator words after shifting
	divisorLen   int      // significant divisor words after shifting
	shift        uint     // common left shift, 0..63
}

// normalize prepares u and v for the reciprocal-based division routines.
// The divisor must not be zero.
func normalize(u, v []uint64) (na normalized) {
	words := len(u)

	m := words
	for m > 0 && v[m-1] == 0 {
		m--
	}
	n := words
	for n > 0 && u[n-1] == 0 {
		n--
	}

	na.shift = uint(bits.LeadingZeros64(v[m-1]))
	na.divisor = make([]uint64, words)
	na.numerator = make([]uint64, words+1)

	if na.shift > 0 {
		for i := words - 1; i > 0; i-- {
			na.divisor[i] = v[i]<<na.shift | v[i-1]>>(64-na.shift)
		}
		na.divisor[0] = v[0] << na.shift

		na.numerator[words] = u[words-1] >> (64 - na.shift)
		for i := words - 1; i > 0; i-- {
			na.numerator[i] = u[i]<<na.shift | u[i-1]>>(64-na.shift)
		}
		na.numerator[0] = u[0] << na.shift
	} else {
		copy(na.divisor, v)
		copy(na.numerator, u)
	}

	// Count the word above the numerator's top as significant if shifting
	// carried bits into it, or if the top word would not sit below the
	// divisor's top word.
	if n > 0 && (na.numerator[n] != 0 || na.numerator[n-1] >= na.divisor[m-1]) {
		n++
	}

	na.numeratorLen = n
	na.divisorLen = m
	return na
}

// udivremBy1 divides a normalized multi-word numerator by a normalized 1-word
// divisor. u is overwritten with the quotient; the remainder is returned
// still scaled by the normalization shift. Requires len(u) >= 2.
func udivremBy1(u []uint64, d uint64) (rem uint64) {
	rec := reciprocal2by1(d)

	rem = u[len(u)-1] // the top word seeds the remainder
	u[len(u)-1] = 0   // and its slot becomes part of the quotient

	for j := len(u) - 2; j >= 0; j-- {
		u[j], rem = udivrem2by1(rem, u[j], d, rec)
	}
	return rem
}

// udivremBy2 divides a normalized multi-word numerator by a normalized 2-word
// divisor, overwriting u with the quotient and returning the 2-word
// remainder, still scaled by the normalization shift. Requires len(u) >= 3.
func udivremBy2(u []uint64, d u128) (rem u128) {
	rec := reciprocal3by2(d)

	rem = u128{hi: u[len(u)-1], lo: u[len(u)-2]}
	u[len(u)-1] = 0
	u[len(u)-2] = 0

	for j := len(u) - 3; j >= 0; j-- {
		u[j], rem = udivrem3by2(rem.hi, rem.lo, u[j], d, rec)
	}
	return rem
}

// addWords computes s = x + y over equal-length word slices, returning the
// final carry. s may alias x. Only used by the rare add-back correction in
// udivremKnuth.
func addWords(s, x, y []uint64) (carry uint64) {
	for i := range x {
		s[i], carry = bits.Add64(x[i], y[i], carry)
	}
	return carry
}

// submulWords computes r = x - y*multiplier over equal-length word slices
// with exact borrow propagation, returning the final borrow. r may alias x.
// This is what turns an estimated quotient digit into an exact partial
// remainder.
func submulWords(r, x, y []uint64, multiplier uint64) (borrow uint64) {
	for i := range x {
		s, c1 := bits.Sub64(x[i], borrow, 0)
		ph, pl := bits.Mul64(y[i], multiplier)
		t, c2 := bits.Sub64(s, pl, 0)
		r[i] = t
		borrow = ph + c1 + c2
	}
	return borrow
}

// udivremKnuth is the general path of Knuth's Algorithm D for divisors of 3
// or more words. u holds the normalized numerator and is overwritten with
// the remainder in its low len(d) words; quotient digits are stored in q.
// Requires len(d) >= 3 and len(u) > len(d).
func udivremKnuth(q, u, d []uint64) {
	dlen := len(d)
	divisor := u128{hi: d[dlen-1], lo: d[dlen-2]}
	rec := reciprocal3by2(divisor)

	for j := len(u) - dlen - 1; j >= 0; j-- {
		u2 := u[j+dlen]
		u1 := u[j+dlen-1]
		u0 := u[j+dlen-2]

		var qhat uint64
		if (u128{hi: u2, lo: u1}) == divisor { // division overflows
			// The ideal digit would be 2^64; saturate to 2^64-1 and let the
			// exact multiply-subtract absorb the difference.
			qhat = ^uint64(0)

			u[j+dlen] = u2 - submulWords(u[j:j+dlen], u[j:j+dlen], d, qhat)
		} else {
			var rhat u128
			qhat, rhat = udivrem3by2(u2, u1, u0, divisor, rec)

			borrow := submulWords(u[j:j+dlen-2], u[j:j+dlen-2], d[:dlen-2], qhat)

			var carry uint64
			u[j+dlen-2], carry = bits.Sub64(rhat.lo, borrow, 0)
			u[j+dlen-1], carry = bits.Sub64(rhat.hi, 0, carry)

			if carry != 0 {
				// The estimate was one too high; add the divisor back.
				qhat--
				u[j+dlen-1] += divisor.hi + addWords(u[j:j+dlen-1], u[j:j+dlen-1], d[:dlen-1])
			}
		}

		q[j] = qhat
	}
}

// udivrem divides u by v, writing the quotient to q and the remainder to r.
// All four slices must have the same length; q and r are fully overwritten.
// The divisor must not be zero: the exported QuoRem wrappers check that
// before calling here.
func udivrem(q, r, u, v []uint64) {
	na := normalize(u, v)

	if na.numeratorLen <= na.divisorLen { // u < v in word-count terms
		clear(q)
		copy(r, u)
		return
	}

	un := na.numerator[:na.numeratorLen]

	if na.divisorLen == 1 {
		rem := udivremBy1(un, na.divisor[0])
		clear(q)
		copy(q, un)
		clear(r)
		r[0] = rem >> na.shift
		return
	}

	if na.divisorLen == 2 {
		rem := udivremBy2(un, u128{hi: na.divisor[1], lo: na.divisor[0]})
		clear(q)
		copy(q, un)
		clear(r)
		r[0] = rem.lo>>na.shift | rem.hi<<(64-na.shift)
		r[1] = rem.hi >> na.shift
		return
	}

	clear(q)
	udivremKnuth(q, un, na.divisor[:na.divisorLen])

	// The low divisorLen words of un now hold the remainder; undo the
	// normalization shift word by word.
	clear(r)
	dlen := na.divisorLen
	if na.shift > 0 {
		for i := 0; i < dlen-1; i++ {
			r[i] = un[i]>>na.shift | un[i+1]<<(64-na.shift)
		}
	} else {
		copy(r, un[:dlen-1])
	}
	r[dlen-1] = un[dlen-1] >> na.shift
}
