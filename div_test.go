package intx

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/jafar75/intx/internal/assert"
)

func bigFromWords(words []uint64) *big.Int {
	b := new(big.Int)
	for i := len(words) - 1; i >= 0; i-- {
		b.Lsh(b, 64)
		b.Or(b, new(big.Int).SetUint64(words[i]))
	}
	return b
}

func TestNormalize(t *testing.T) {
	for idx, tc := range []struct {
		u, v         string
		numeratorLen int
		divisorLen   int
		shift        uint
	}{
		// Equal single words: the shifted top numerator word no longer sits
		// below the divisor's, so the overflow word is counted.
		{"1", "1", 2, 1, 63},
		{"0x10000000000000000", "3", 2, 1, 62},
		// Divisor already normalized; numerator top word >= divisor top word.
		{"0xFFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF", "0x8000000000000000", 3, 1, 0},
		{"5", "1000", 1, 1, 54},
		{"0", "7", 0, 1, 61},
	} {
		t.Run(fmt.Sprintf("%d/%s,%s", idx, tc.u, tc.v), func(t *testing.T) {
			tt := assert.WrapTB(t)
			u, v := u256b(bigs(tc.u)), u256b(bigs(tc.v))

			na := normalize(u[:], v[:])
			tt.MustEqual(tc.numeratorLen, na.numeratorLen)
			tt.MustEqual(tc.divisorLen, na.divisorLen)
			tt.MustEqual(tc.shift, na.shift)
		})
	}
}

func TestNormalizeRandom(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < fuzzIterations; i++ {
		ub := randWidthBig(globalRNG, 256)
		vb := randWidthBig(globalRNG, 256)
		if vb.Sign() == 0 {
			continue
		}
		u, v := u256b(ub), u256b(vb)

		na := normalize(u[:], v[:])

		// The divisor's top significant word must end up with bit 63 set,
		// and both operands must simply be the originals shifted left.
		tt.MustAssert(na.divisorLen >= 1)
		tt.MustAssert(na.divisor[na.divisorLen-1]&(1<<63) != 0,
			"divisor %s not normalized (shift %d)", vb, na.shift)
		tt.MustAssert(na.shift < 64)

		expU := new(big.Int).Lsh(ub, na.shift)
		expV := new(big.Int).Lsh(vb, na.shift)
		tt.MustAssert(bigFromWords(na.numerator).Cmp(expU) == 0, "numerator shift mismatch for %s", ub)
		tt.MustAssert(bigFromWords(na.divisor).Cmp(expV) == 0, "divisor shift mismatch for %s", vb)
	}
}

func TestAddWords(t *testing.T) {
	tt := assert.WrapTB(t)

	x := make([]uint64, 4)
	y := make([]uint64, 4)
	s := make([]uint64, 4)

	for i := 0; i < fuzzIterations; i++ {
		for j := range x {
			x[j], y[j] = globalRNG.Uint64(), globalRNG.Uint64()
		}

		exp := new(big.Int).Add(bigFromWords(x), bigFromWords(y))

		carry := addWords(s, x, y)

		got := bigFromWords(s)
		got.Add(got, new(big.Int).Lsh(new(big.Int).SetUint64(carry), 256))
		tt.MustAssert(got.Cmp(exp) == 0,
			"%s + %s: got %s (carry %d)", bigFromWords(x), bigFromWords(y), bigFromWords(s), carry)
	}
}

func TestSubmulWords(t *testing.T) {
	tt := assert.WrapTB(t)

	x := make([]uint64, 4)
	y := make([]uint64, 4)
	r := make([]uint64, 4)

	for i := 0; i < fuzzIterations; i++ {
		for j := range x {
			x[j], y[j] = globalRNG.Uint64(), globalRNG.Uint64()
		}
		multiplier := globalRNG.Uint64()

		// x - y*multiplier == r - borrow << 256
		exp := new(big.Int).Mul(bigFromWords(y), new(big.Int).SetUint64(multiplier))
		exp.Sub(bigFromWords(x), exp)

		borrow := submulWords(r, x, y, multiplier)

		got := bigFromWords(r)
		got.Sub(got, new(big.Int).Lsh(new(big.Int).SetUint64(borrow), 256))
		tt.MustAssert(got.Cmp(exp) == 0,
			"%s - %s*%d: got %s (borrow %d)", bigFromWords(x), bigFromWords(y), multiplier, bigFromWords(r), borrow)
	}
}

func TestSubmulWordsAliased(t *testing.T) {
	// The Knuth loop always calls submulWords with r aliasing x.
	tt := assert.WrapTB(t)

	x := []uint64{0xFFFFFFFFFFFFFFFF, 0x1, 0x2, 0x3}
	y := []uint64{0x10, 0x20, 0x30, 0x40}

	exp := new(big.Int).Mul(bigFromWords(y), new(big.Int).SetUint64(7))
	exp.Sub(bigFromWords(x), exp)

	borrow := submulWords(x, x, y, 7)
	got := bigFromWords(x)
	got.Sub(got, new(big.Int).Lsh(new(big.Int).SetUint64(borrow), 256))

	tt.MustAssert(got.Cmp(exp) == 0, "got %s, expected %s", got, exp)
}

func TestQuoRemPathEquivalence(t *testing.T) {
	// A 1-word divisor takes the reciprocal fast path. Scaling both operands
	// by 2^128 pushes the same division through the Knuth path with a 3-word
	// divisor: the quotient must be identical and the remainder scales.
	tt := assert.WrapTB(t)

	for i := 0; i < fuzzIterations; i++ {
		ub := randWidthBig(globalRNG, 128)
		vb := randWidthBig(globalRNG, 64)
		if vb.Sign() == 0 {
			continue
		}

		q1, r1 := u256b(ub).QuoRem(u256b(vb))

		q2, r2 := u256b(new(big.Int).Lsh(ub, 128)).QuoRem(u256b(new(big.Int).Lsh(vb, 128)))

		tt.MustEqual(q1, q2, "quotient diverged for %s / %s", ub, vb)
		tt.MustEqual(u256b(new(big.Int).Lsh(r1.AsBigInt(), 128)), r2, "remainder diverged for %s / %s", ub, vb)
	}
}
