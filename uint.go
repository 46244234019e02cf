package intx

import (
	"fmt"
	"math/big"
)

const intSize = 32 << (^uint(0) >> 63)

// setBig fills words (little-endian) from b, truncating to all-ones on
// overflow. Reports whether b was represented exactly; negative values do
// not set anything and report false.
func setBig(words []uint64, b *big.Int) (inRange bool) {
	if b.Sign() < 0 {
		return false
	}

	bw := b.Bits()

	switch intSize {
	case 64:
		if len(bw) > len(words) {
			for i := range words {
				words[i] = ^uint64(0)
			}
			return false
		}
		for i, w := range bw {
			words[i] = uint64(w)
		}
		return true

	case 32:
		if len(bw) > len(words)*2 {
			for i := range words {
				words[i] = ^uint64(0)
			}
			return false
		}
		for i, w := range bw {
			words[i/2] |= uint64(w) << (uint(i%2) * 32)
		}
		return true

	default:
		panic("intx: unsupported bit size")
	}
}

// intoBig sets b to the value of words.
func intoBig(b *big.Int, words []uint64) {
	switch intSize {
	case 64:
		bw := b.Bits()
		if cap(bw) < len(words) {
			bw = make([]big.Word, len(words))
		} else {
			bw = bw[:len(words)]
		}
		for i, w := range words {
			bw[i] = big.Word(w)
		}
		b.SetBits(bw)

	case 32:
		bw := make([]big.Word, len(words)*2)
		for i, w := range words {
			bw[i*2] = big.Word(w & 0xFFFFFFFF)
			bw[i*2+1] = big.Word(w >> 32)
		}
		b.SetBits(bw)

	default:
		panic("intx: unsupported bit size")
	}
}

// parseBig is the shared backend for the UNFromString constructors. Base is
// inferred by big.Int: plain decimal, or 0x/0b/0o prefixes.
func parseBig(s string, bits int) (*big.Int, error) {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("intx: u%d string %q invalid", bits, s)
	}
	return b, nil
}

func stringOf(words []uint64) string {
	var b big.Int
	intoBig(&b, words)
	return b.String()
}
