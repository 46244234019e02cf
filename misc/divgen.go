package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"time"

	"github.com/davecgh/go-spew/spew"
	intx "github.com/jafar75/intx"
)

// Cross-checks the intx division routines against math/big over randomly
// generated operands of every supported width. Mostly useful when poking at
// the Knuth loop: run it with a fixed seed, and when a case disagrees with
// math/big it dumps the operands so they can be turned into a regression
// test.
//
//	go run ./misc -iter 100000
//	go run ./misc -bits 1024 -seed 12345

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		iter = flag.Int("iter", 10000, "Cases to check per width")
		seed = flag.Int64("seed", 0, "Seed the RNG (0 == current nanotime)")
		bits = flag.Int("bits", 0, "Check a single width only (256..4096, 0 == all)")
	)
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	fmt.Println("seed:", *seed)

	widths := []int{256, 512, 1024, 2048, 4096}
	if *bits != 0 {
		widths = []int{*bits}
	}

	for _, w := range widths {
		checked := 0
		for i := 0; i < *iter; i++ {
			u := randBits(rng, w)
			v := randBits(rng, w)
			if v.Sign() == 0 {
				continue
			}

			q, r, err := quoRem(u, v, w)
			if err != nil {
				return err
			}

			expQ, expR := new(big.Int), new(big.Int)
			expQ.QuoRem(u, v, expR)

			if q.Cmp(expQ) != 0 || r.Cmp(expR) != 0 {
				spew.Dump(u.Bits(), v.Bits())
				return fmt.Errorf("u%d mismatch: %s / %s: got (%s, %s), expected (%s, %s)",
					w, u, v, q, r, expQ, expR)
			}
			checked++
		}
		fmt.Printf("u%d: %d cases ok\n", w, checked)
	}

	return nil
}

func quoRem(u, v *big.Int, bits int) (q, r *big.Int, err error) {
	switch bits {
	case 256:
		a, _ := intx.U256FromBigInt(u)
		b, _ := intx.U256FromBigInt(v)
		qq, rr := a.QuoRem(b)
		return qq.AsBigInt(), rr.AsBigInt(), nil
	case 512:
		a, _ := intx.U512FromBigInt(u)
		b, _ := intx.U512FromBigInt(v)
		qq, rr := a.QuoRem(b)
		return qq.AsBigInt(), rr.AsBigInt(), nil
	case 1024:
		a, _ := intx.U1024FromBigInt(u)
		b, _ := intx.U1024FromBigInt(v)
		qq, rr := a.QuoRem(b)
		return qq.AsBigInt(), rr.AsBigInt(), nil
	case 2048:
		a, _ := intx.U2048FromBigInt(u)
		b, _ := intx.U2048FromBigInt(v)
		qq, rr := a.QuoRem(b)
		return qq.AsBigInt(), rr.AsBigInt(), nil
	case 4096:
		a, _ := intx.U4096FromBigInt(u)
		b, _ := intx.U4096FromBigInt(v)
		qq, rr := a.QuoRem(b)
		return qq.AsBigInt(), rr.AsBigInt(), nil
	default:
		return nil, nil, fmt.Errorf("bits must be one of 256, 512, 1024, 2048, 4096")
	}
}

// randBits generates a value of random bit length up to max so small and
// large operands (and all the divisor word counts) get exercised evenly.
func randBits(rng *rand.Rand, max int) *big.Int {
	v := new(big.Int)
	bits := rng.Intn(max+1) - 1
	if bits < 0 {
		return v // "-1 bits" == "0"
	}
	v.Rand(rng, new(big.Int).Lsh(big.NewInt(1), uint(bits)))
	v.SetBit(v, bits, 1)
	return v
}
