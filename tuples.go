// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primes

import (
	"github.com/liam-m/primes/primality"
	"github.com/liam-m/primes/sieve"
)

// PrimesWithDifferenceUpTo returns every pair (p, p+diff) with both members
// prime and p+diff <= limit, ordered by p.
func PrimesWithDifferenceUpTo(limit, diff int64, known []int64) [][2]int64 {
	pairs := [][2]int64{}
	for _, p := range sieve.UpTo(limit-diff, known) {
		if primality.IsPrime(p+diff, known) {
			pairs = append(pairs, [2]int64{p, p + diff})
		}
	}
	return pairs
}

// TwinPrimesUpTo returns the prime pairs with difference 2 up to limit.
func TwinPrimesUpTo(limit int64, known []int64) [][2]int64 {
	return PrimesWithDifferenceUpTo(limit, 2, known)
}

// CousinPrimesUpTo returns the prime pairs with difference 4 up to limit.
func CousinPrimesUpTo(limit int64, known []int64) [][2]int64 {
	return PrimesWithDifferenceUpTo(limit, 4, known)
}

// SexyPrimesUpTo returns the prime pairs with difference 6 up to limit.
func SexyPrimesUpTo(limit int64, known []int64) [][2]int64 {
	return PrimesWithDifferenceUpTo(limit, 6, known)
}

// PrimeTripletsUpTo returns the prime triplets (p, p+2, p+6) and
// (p, p+4, p+6) up to limit, ordered by p.
func PrimeTripletsUpTo(limit int64, known []int64) [][3]int64 {
	triplets := [][3]int64{}
	for _, p := range sieve.UpTo(limit-6, known) {
		if primality.IsPrime(p+2, known) && primality.IsPrime(p+6, known) {
			triplets = append(triplets, [3]int64{p, p + 2, p + 6})
		}
		if primality.IsPrime(p+4, known) && primality.IsPrime(p+6, known) {
			triplets = append(triplets, [3]int64{p, p + 4, p + 6})
		}
	}
	return triplets
}

// PrimeQuadrupletsUpTo returns the prime quadruplets (p, p+2, p+6, p+8) up
// to limit, ordered by p.
func PrimeQuadrupletsUpTo(limit int64, known []int64) [][4]int64 {
	quadruplets := [][4]int64{}
	for _, p := range sieve.UpTo(limit-8, known) {
		if primality.IsPrime(p+2, known) && primality.IsPrime(p+6, known) && primality.IsPrime(p+8, known) {
			quadruplets = append(quadruplets, [4]int64{p, p + 2, p + 6, p + 8})
		}
	}
	return quadruplets
}
