// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package sieve

import (
	"github.com/bits-and-blooms/bitset"
)

// Atkin returns every prime <= limit using the Sieve of Atkin: candidacy is
// toggled by counting representations under three quadratic forms, then
// multiples of squares are swept out. Kept independent of UpTo on purpose;
// the two must produce identical lists for every limit.
func Atkin(limit int64) []int64 {
	if limit <= 1 {
		return []int64{}
	}

	flags := bitset.New(uint(limit + 1))
	for x := int64(1); x*x <= limit; x++ {
		for y := int64(1); y*y <= limit; y++ {
			// 4x²+y² with n ≡ 1,5 (mod 12)
			n := 4*x*x + y*y
			if n <= limit && (n%12 == 1 || n%12 == 5) {
				flags.Flip(uint(n))
			}
			// 3x²+y² with n ≡ 7 (mod 12)
			n = 3*x*x + y*y
			if n <= limit && n%12 == 7 {
				flags.Flip(uint(n))
			}
			// 3x²-y² with x > y and n ≡ 11 (mod 12)
			n = 3*x*x - y*y
			if x > y && n <= limit && n%12 == 11 {
				flags.Flip(uint(n))
			}
		}
	}

	// Squarefree filter: anything divisible by the square of a surviving
	// candidate is composite.
	for r := int64(5); r*r <= limit; r++ {
		if !flags.Test(uint(r)) {
			continue
		}
		for i := r * r; i <= limit; i += r * r {
			flags.Clear(uint(i))
		}
	}

	primes := make([]int64, 0, 16)
	for _, p := range []int64{2, 3} {
		if p <= limit {
			primes = append(primes, p)
		}
	}
	for n := int64(5); n <= limit; n++ {
		if flags.Test(uint(n)) {
			primes = append(primes, n)
		}
	}
	return primes
}
