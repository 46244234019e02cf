package intx

import "math/big"

// U4096 is an unsigned 4096-bit integer: 64 little-endian 64-bit words.
type U4096 [64]uint64

func U4096From64(v uint64) (u U4096) { u[0] = v; return u }

// U4096FromBigInt creates a U4096 from a big.Int. Overflow truncates to the
// maximum value and sets inRange to false.
func U4096FromBigInt(b *big.Int) (out U4096, inRange bool) {
	inRange = setBig(out[:], b)
	return out, inRange
}

func U4096FromString(s string) (out U4096, inRange bool, err error) {
	b, err := parseBig(s, 4096)
	if err != nil {
		return out, false, err
	}
	out, inRange = U4096FromBigInt(b)
	return out, inRange, nil
}

func (u U4096) IsZero() bool { return u == U4096{} }

func (u U4096) IntoBigInt(b *big.Int) { intoBig(b, u[:]) }

func (u U4096) AsBigInt() *big.Int {
	var b big.Int
	intoBig(&b, u[:])
	return &b
}

func (u U4096) String() string { return stringOf(u[:]) }

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
func (u U4096) QuoRem(by U4096) (q, r U4096) {
	if by == (U4096{}) {
		panic("intx: division by zero")
	}
	udivrem(q[:], r[:], u[:], by[:])
	return q, r
}

func (u U4096) Quo(by U4096) (q U4096) {
	q, _ = u.QuoRem(by)
	return q
}

func (u U4096) Rem(by U4096) (r U4096) {
	_, r = u.QuoRem(by)
	return r
}
