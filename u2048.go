package intx

import "math/big"

// U2048 is an unsigned 2048-bit integer: 32 little-endian 64-bit words.
type U2048 [32]uint64

func U2048From64(v uint64) (u U2048) { u[0] = v; return u }

// U2048FromBigInt creates a U2048 from a big.Int. Overflow truncates to the
// maximum value and sets inRange to false.
func U2048FromBigInt(b *big.Int) (out U2048, inRange bool) {
	inRange = setBig(out[:], b)
	return out, inRange
}

func U2048FromString(s string) (out U2048, inRange bool, err error) {
	b, err := parseBig(s, 2048)
	if err != nil {
		return out, false, err
	}
	out, inRange = U2048FromBigInt(b)
	return out, inRange, nil
}

func (u U2048) IsZero() bool { return u == U2048{} }

func (u U2048) IntoBigInt(b *big.Int) { intoBig(b, u[:]) }

func (u U2048) AsBigInt() *big.Int {
	var b big.Int
	intoBig(&b, u[:])
	return &b
}

func (u U2048) String() string { return stringOf(u[:]) }

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
func (u U2048) QuoRem(by U2048) (q, r U2048) {
	if by == (U2048{}) {
		panic("intx: division by zero")
	}
	udivrem(q[:], r[:], u[:], by[:])
	return q, r
}

func (u U2048) Quo(by U2048) (q U2048) {
	q, _ = u.QuoRem(by)
	return q
}

func (u U2048) Rem(by U2048) (r U2048) {
	_, r = u.QuoRem(by)
	return r
}
