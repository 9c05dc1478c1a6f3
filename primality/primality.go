// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package primality decides whether integers are prime. The full test is a
// Baillie-PSW composite: trial division by a fixed small-prime set, a
// Miller-Rabin round with witness 2, then a strong Lucas probable-prime
// test. No composite below 2^64 is known to pass the combination, which
// covers the whole input range of this module.
package primality

import (
	"github.com/liam-m/primes/common"
)

// smallPrimes is the trial-division front line: composites with a factor
// below 50 never reach the big.Int stages.
var smallPrimes = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}

// IsPrime reports whether n is prime. A sorted list of known primes may be
// supplied and is consulted first: if it reaches n the answer is a binary
// search, if it reaches sqrt(n) the answer is trial division, and otherwise
// the compound test runs. The known list is read-only and n is never added
// to it. Pure function of its inputs.
func IsPrime(n int64, known []int64) bool {
	if n <= 1 {
		return false
	}

	root := common.ISqrt(n)
	if len(known) > 0 {
		if known[len(known)-1] >= n {
			return common.SearchAll(known, n) != -1
		}
		if known[len(known)-1] >= root {
			return trialDivision(n, known, root)
		}
	}

	if !trialDivision(n, smallPrimes, root) {
		return false
	}
	if !millerRabinBase2(n) {
		return false
	}
	return strongLucas(n)
}

// trialDivision reports whether no member of primes up to root divides n.
func trialDivision(n int64, primes []int64, root int64) bool {
	for _, p := range primes[:common.UpperBound(primes, root)] {
		if n%p == 0 {
			return false
		}
	}
	return true
}
