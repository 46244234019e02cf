package intx

import "math/big"

// U256 is an unsigned 256-bit integer: 4 little-endian 64-bit words.
// Word 0 is the least significant. The zero value is the number 0.
type U256 [4]uint64

func U256From64(v uint64) (u U256) { u[0] = v; return u }

// U256FromBigInt creates a U256 from a big.Int. Overflow truncates to the
// maximum value and sets inRange to false.
func U256FromBigInt(b *big.Int) (out U256, inRange bool) {
	inRange = setBig(out[:], b)
	return out, inRange
}

// U256FromString creates a U256 from a decimal or prefixed (0x, 0o, 0b)
// string. Overflow truncates to the maximum value and sets inRange to false.
func U256FromString(s string) (out U256, inRange bool, err error) {
	b, err := parseBig(s, 256)
	if err != nil {
		return out, false, err
	}
	out, inRange = U256FromBigInt(b)
	return out, inRange, nil
}

func (u U256) IsZero() bool { return u == U256{} }

func (u U256) IntoBigInt(b *big.Int) { intoBig(b, u[:]) }

func (u U256) AsBigInt() *big.Int {
	var b big.Int
	intoBig(&b, u[:])
	return &b
}

func (u U256) String() string { return stringOf(u[:]) }

// QuoRem returns the quotient q and remainder r for by != 0, such that
// u = q*by + r and r < by. If by == 0, a division-by-zero run-time panic
// occurs, the same as native integer division.
func (u U256) QuoRem(by U256) (q, r U256) {
	if by == (U256{}) {
		panic("intx: division by zero")
	}
	udivrem(q[:], r[:], u[:], by[:])
	return q, r
}

// Quo returns the quotient u/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. See QuoRem for more details.
func (u U256) Quo(by U256) (q U256) {
	q, _ = u.QuoRem(by)
	return q
}

// Rem returns the remainder of u%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs. See QuoRem for more details.
func (u U256) Rem(by U256) (r U256) {
	_, r = u.QuoRem(by)
	return r
}
