// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package sieve generates bounded lists of primes. The main entry point is
// UpTo, an odd-numbers-only Sieve of Eratosthenes that can extend a
// previously computed list instead of starting over. Atkin is an
// independent implementation kept as a correctness cross-check.
package sieve

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/liam-m/primes/common"
)

// oddRange tracks composite markings for the odd numbers in [base, max],
// base odd. Bit i stands for base+2i; a set bit means "crossed out". Even
// numbers are structurally absent, halving memory and marking work.
type oddRange struct {
	base, max int64
	bits      *bitset.BitSet
}

func newOddRange(base, max int64) *oddRange {
	return &oddRange{
		base: base,
		max:  max,
		bits: bitset.New(uint((max-base)/2 + 1)),
	}
}

func (r *oddRange) pos(n int64) uint {
	return uint((n - r.base) / 2)
}

func (r *oddRange) composite(n int64) bool {
	return r.bits.Test(r.pos(n))
}

// markMultiples crosses out the odd multiples of p, starting at p² or at
// the first odd multiple of p at or above base, whichever is larger:
// smaller multiples were already crossed out by smaller primes.
func (r *oddRange) markMultiples(p int64) {
	start := p * p
	if m := firstMultipleAtLeast(p, r.base); start < m {
		start = m
	}
	if start%2 == 0 {
		start += p
	}
	for j := start; j <= r.max; j += 2 * p {
		r.bits.Set(r.pos(j))
	}
}

func firstMultipleAtLeast(x, above int64) int64 {
	return (above + x - 1) / x * x
}

// UpTo returns every prime <= limit in ascending order. A sorted list of
// known primes may be supplied: when it already covers limit its prefix is
// returned outright, and otherwise only the range above it is sieved, with
// the known primes up to sqrt(limit) replayed against the new range. known
// is never mutated and the result is always freshly allocated.
func UpTo(limit int64, known []int64) []int64 {
	if limit <= 1 {
		return []int64{}
	}

	var (
		lst    *oddRange
		primes []int64
	)
	root := common.ISqrt(limit)

	// A known list of just [2] is no head start: the odd representation
	// already has every even number crossed out.
	if len(known) > 0 && !(len(known) == 1 && known[0] == 2) {
		last := known[len(known)-1]
		if last >= limit-1 {
			return append([]int64{}, common.PrefixThrough(known, limit)...)
		}
		common.Logger.Debugf("sieve: extending from %d to %d", last, limit)
		lst = newOddRange(last+2, limit)
		for _, p := range known[1:common.UpperBound(known, root)] {
			lst.markMultiples(p)
		}
		primes = append(make([]int64, 0, len(known)+16), known...)
	} else {
		lst = newOddRange(3, limit)
		primes = append(make([]int64, 0, 16), 2)
	}

	// Walk odd candidates up to sqrt(limit): each survivor is prime, and
	// its multiples are crossed out in turn.
	for n := lst.base; n <= root; n += 2 {
		if !lst.composite(n) {
			primes = append(primes, n)
			lst.markMultiples(n)
		}
	}

	// Every survivor above sqrt(limit) is prime outright: a composite up
	// there has a factor below the root and was already crossed out.
	start := primes[len(primes)-1]
	if start < root {
		start = root
	}
	start = (start + 1) | 1
	for n := start; n <= limit; n += 2 {
		if !lst.composite(n) {
			primes = append(primes, n)
		}
	}
	return primes
}
