package intx

import "math/bits"

// u128 is a 2-word value used internally by the division routines for the
// divisor head and partial remainders. It deliberately exposes nothing
// beyond what those routines need.
type u128 struct {
	hi, lo uint64
}

// reciprocal2by1 computes the fixed-point reciprocal v = ⌊(2^128 - 1) / d⌋ - 2^64
// of a normalized divisor d (bit 63 set). Dividing by d then costs one
// multiplication by v plus a couple of corrections instead of a hardware
// division per step.
func reciprocal2by1(d uint64) uint64 {
	rec, _ := bits.Div64(^d, ^uint64(0), d)
	return rec
}

// udivrem2by1 divides the 2-word value {uh, ul} by the normalized divisor d
// using its precomputed reciprocal. The quotient must fit in one word, which
// holds whenever uh < d. Möller & Granlund, Algorithm 4.
func udivrem2by1(uh, ul, d, rec uint64) (quot, rem uint64) {
	qh, ql := bits.Mul64(rec, uh)
	ql, carry := bits.Add64(ql, ul, 0)
	qh, _ = bits.Add64(qh, uh, carry)
	qh++

	r := ul - qh*d

	if r > ql {
		qh--
		r += d
	}
	if r >= d {
		qh++
		r -= d
	}
	return qh, r
}

// reciprocal3by2 computes the reciprocal of a normalized 2-word divisor for
// udivrem3by2. Möller & Granlund, Algorithm 6.
func reciprocal3by2(d u128) uint64 {
	v := reciprocal2by1(d.hi)
	p := d.hi * v
	p += d.lo
	if p < d.lo {
		v--
		if p >= d.hi {
			v--
			p -= d.hi
		}
		p -= d.hi
	}

	th, tl := bits.Mul64(v, d.lo)

	p += th
	if p < th {
		v--
		if p > d.hi || (p == d.hi && tl >= d.lo) {
			v--
		}
	}
	return v
}

// udivrem3by2 divides the 3-word value {u2, u1, u0} by the normalized 2-word
// divisor d using its precomputed reciprocal, returning a 1-word quotient and
// 2-word remainder. Requires {u2, u1} < d. Möller & Granlund, Algorithm 5.
func udivrem3by2(u2, u1, u0 uint64, d u128, rec uint64) (quot uint64, rem u128) {
	qh, ql := bits.Mul64(rec, u2)
	ql, carry := bits.Add64(ql, u1, 0)
	qh, _ = bits.Add64(qh, u2, carry)

	r1 := u1 - qh*d.hi

	th, tl := bits.Mul64(d.lo, qh)

	// {r1, r0} = {r1, u0} - t - d
	r0, borrow := bits.Sub64(u0, tl, 0)
	r1, _ = bits.Sub64(r1, th, borrow)
	r0, borrow = bits.Sub64(r0, d.lo, 0)
	r1, _ = bits.Sub64(r1, d.hi, borrow)

	qh++

	if r1 >= ql {
		qh--
		r0, carry = bits.Add64(r0, d.lo, 0)
		r1, _ = bits.Add64(r1, d.hi, carry)
	}

	if r1 > d.hi || (r1 == d.hi && r0 >= d.lo) {
		qh++
		r0, borrow = bits.Sub64(r0, d.lo, 0)
		r1, _ = bits.Sub64(r1, d.hi, borrow)
	}

	return qh, u128{hi: r1, lo: r0}
}
