package intx

import "math/big"

// U512 is an unsigned 512-bit integer: 8 little-endian 64-bit words.
type U512 [8]uint64

func U512From64(v uint64) (u U512) { u[0] = v; return u }

// U512FromBigInt creates a U512 from a big.Int. Overflow truncates to the
// maximum value and sets inRange to false.
func U512FromBigInt(b *big.Int) (out U512, inRange bool) {
	inRange = setBig(out[:], b)
	return out, inRange
}

func U512FromString(s string) (out U512, inRange bool, err error) {
	b, err := parseBig(s, 512)
	if err != nil {
		return out, false, err
	}
	out, inRange = U512FromBigInt(b)
	return out, inRange, nil
}

func (u U512) IsZero() bool { return u == U512{} }

func (u U512) IntoBigInt(b *big.Int) { intoBig(b, u[:]) }

func (u U512) AsBigInt() *big.Int {
	var b big.Int
	intoBig(&b, u[:])
	return &b
}

func (u U512) String() string { return stringOf(u[:]) }

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
func (u U512) QuoRem(by U512) (q, r U512) {
	if by == (U512{}) {
		panic("intx: division by zero")
	}
	udivrem(q[:], r[:], u[:], by[:])
	return q, r
}

func (u U512) Quo(by U512) (q U512) {
	q, _ = u.QuoRem(by)
	return q
}

func (u U512) Rem(by U512) (r U512) {
	_, r = u.QuoRem(by)
	return r
}
