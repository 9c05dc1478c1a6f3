// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package factor decomposes integers into their prime factors. Small
// factors fall to trial division; what remains is split by Brent's variant
// of Pollard's rho, recursing on composite divisors.
package factor

import (
	"sort"

	"github.com/liam-m/primes/common"
	"github.com/liam-m/primes/primality"
)

// smallPrimes are always stripped by trial division before the randomized
// search runs, so rho only ever sees odd inputs free of tiny factors.
var smallPrimes = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}

// Factorize returns the distinct prime factors of n in ascending order.
// A prime n has no nontrivial factors: the result is empty, or {1, n} when
// includeTrivial is set. A sorted list of known primes may be supplied;
// it speeds up both the primality checks and the initial trial division,
// and never changes the result.
func Factorize(n int64, includeTrivial bool, known []int64) []int64 {
	factors := map[int64]struct{}{}
	if n < 2 {
		return sorted(factors)
	}
	if includeTrivial {
		factors[1] = struct{}{}
		factors[n] = struct{}{}
	}
	if primality.IsPrime(n, known) {
		return sorted(factors)
	}

	// Strip full prime-power contributions of the small and known primes
	// first; rho is reserved for the hard, large-cofactor remainder.
	n = strip(n, smallPrimes, factors)
	n = strip(n, known, factors)

	for n > 1 && !primality.IsPrime(n, known) {
		d := brent(n)
		if primality.IsPrime(d, known) {
			factors[d] = struct{}{}
		} else {
			for _, f := range Factorize(d, false, known) {
				factors[f] = struct{}{}
			}
		}
		// Divide out every copy of d so the same factor is not
		// rediscovered on the next pass.
		for n%d == 0 {
			n /= d
		}
	}
	if n > 1 {
		factors[n] = struct{}{}
	}
	return sorted(factors)
}

// strip divides every factor of n occurring in primes out of n, recording
// each one, and returns the cofactor. Only members up to sqrt(n) are tried:
// above that a divisor must be the whole cofactor, which is matched by
// exact lookup instead.
func strip(n int64, primes []int64, factors map[int64]struct{}) int64 {
	if n < 2 || len(primes) == 0 {
		return n
	}
	for _, p := range primes[:common.UpperBound(primes, common.ISqrt(n))] {
		if p < 2 || n%p != 0 {
			continue
		}
		factors[p] = struct{}{}
		for n%p == 0 {
			n /= p
		}
	}
	if n > 1 && common.SearchAll(primes, n) != -1 {
		factors[n] = struct{}{}
		n = 1
	}
	return n
}

func sorted(factors map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(factors))
	for f := range factors {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
