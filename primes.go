// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package primes computes exact lists of prime numbers, decides primality
// and produces prime factorizations.
//
// Every operation takes an optional sorted list of previously computed
// primes. The list is read-only: it lets an operation reuse earlier work
// (extending a sieve instead of restarting it, answering primality by
// lookup) and never changes the result. Cache offers the same reuse
// automatically across repeated queries.
//
// All operations are correct over the full int64 range; primality and
// factorization arithmetic runs on math/big internally and never wraps.
package primes

import (
	"math"

	"github.com/liam-m/primes/factor"
	"github.com/liam-m/primes/primality"
	"github.com/liam-m/primes/sieve"
)

// SieveUpTo returns every prime <= limit in ascending order.
// SieveUpTo(10) is [2 3 5 7]; a limit below 2 yields an empty list.
func SieveUpTo(limit int64, known []int64) []int64 {
	return sieve.UpTo(limit, known)
}

// IsPrime reports whether n is prime. See package primality for the
// layering of the test.
func IsPrime(n int64, known []int64) bool {
	return primality.IsPrime(n, known)
}

// NPrimes returns the first n primes.
func NPrimes(n int, known []int64) []int64 {
	if n <= 0 {
		return []int64{}
	}
	if len(known) < n {
		known = sieve.UpTo(nthPrimeUpperBound(n), known)
	}
	return append([]int64{}, known[:n]...)
}

// NthPrime returns the nth prime, 1-indexed: NthPrime(1) = 2, NthPrime(4) = 7.
func NthPrime(n int, known []int64) int64 {
	ps := NPrimes(n, known)
	return ps[len(ps)-1]
}

// CompositesUpTo returns every composite number (>1, non-prime) <= limit in
// ascending order.
func CompositesUpTo(limit int64, known []int64) []int64 {
	return sieve.CompositesUpTo(limit, known)
}

// NextPrime returns the smallest prime above every member of known, or 2
// when known is empty. It trial-tests odd candidates below twice the
// largest known prime; Bertrand's postulate guarantees a hit in that
// window.
func NextPrime(known []int64) int64 {
	if len(known) == 0 {
		return 2
	}
	p := known[len(known)-1]
	for n := p + p%2 + 1; n < 2*p; n += 2 {
		if primality.IsPrime(n, known) {
			return n
		}
	}
	return 0 // unreachable: the window always contains a prime
}

// Factorize returns the distinct prime factors of n in ascending order;
// for a prime n the result is empty, or {1, n} when includeTrivial is set.
func Factorize(n int64, includeTrivial bool, known []int64) []int64 {
	return factor.Factorize(n, includeTrivial, known)
}

// nthPrimeUpperBound returns a value guaranteed to be at least the nth
// prime, 1-indexed. The Rosser-style estimate n(ln n + ln ln n) is
// tightened in tiers as n grows; the switch points and constants follow
// Dusart's bounds and are exercised by the prime-count tests.
func nthPrimeUpperBound(n int) int64 {
	fn := float64(n)
	ln := math.Log(fn)
	lln := math.Log(ln)
	switch {
	case n >= 39017:
		return int64(fn * (ln + lln - 0.9484))
	case n >= 15985:
		return int64(fn * (ln + lln - 0.9427))
	case n >= 8602:
		return int64(fn * (ln + lln - 0.9385))
	case n >= 6:
		return int64(fn * (ln + lln))
	default:
		return 13
	}
}
