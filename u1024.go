package intx

import "math/big"

// U1024 is an unsigned 1024-bit integer: 16 little-endian 64-bit words.
type U1024 [16]uint64

func U1024From64(v uint64) (u U1024) { u[0] = v; return u }

// U1024FromBigInt creates a U1024 from a big.Int. Overflow truncates to the
// maximum value and sets inRange to false.
func U1024FromBigInt(b *big.Int) (out U1024, inRange bool) {
	inRange = setBig(out[:], b)
	return out, inRange
}

func U1024FromString(s string) (out U1024, inRange bool, err error) {
	b, err := parseBig(s, 1024)
	if err != nil {
		return out, false, err
	}
	out, inRange = U1024FromBigInt(b)
	return out, inRange, nil
}

func (u U1024) IsZero() bool { return u == U1024{} }

func (u U1024) IntoBigInt(b *big.Int) { intoBig(b, u[:]) }

func (u U1024) AsBigInt() *big.Int {
	var b big.Int
	intoBig(&b, u[:])
	return &b
}

func (u U1024) String() string { return stringOf(u[:]) }

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
func (u U1024) QuoRem(by U1024) (q, r U1024) {
	if by == (U1024{}) {
		panic("intx: division by zero")
	}
	udivrem(q[:], r[:], u[:], by[:])
	return q, r
}

func (u U1024) Quo(by U1024) (q U1024) {
	q, _ = u.QuoRem(by)
	return q
}

func (u U1024) Rem(by U1024) (r U1024) {
	_, r = u.QuoRem(by)
	return r
}
