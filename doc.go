/*
Package intx implements exact unsigned division for fixed-width integers
much wider than a machine word: U256, U512, U1024, U2048 and U4096.

Values are fixed-size arrays of 64-bit words, word 0 least significant.
They are value types; all operations return new values:

	u, _, _ := intx.U256FromString("340282366920938463463374607431768211455")
	v := intx.U256From64(97)
	q, r := u.QuoRem(v)

Division follows Knuth's Algorithm D. The divisor is normalized so its
top word has the high bit set, trial quotient digits are estimated with a
precomputed fixed-point reciprocal (Möller and Granlund, "Improved
division by invariant integers"), and each digit is corrected by at most
one add-back. Divisors of one or two words take specialized fast paths.

Each width can be created from a variety of sources:

	U256From64(v uint64) U256
	U256FromBigInt(b *big.Int) (out U256, inRange bool)
	U256FromString(s string) (out U256, inRange bool, err error)

Dividing by zero panics, the same as native integer division.
*/
package intx
