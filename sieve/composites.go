// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package sieve

// CompositesUpTo returns every composite number (greater than 1, not prime)
// up to and including limit, in ascending order. known primes may be passed
// through to UpTo.
func CompositesUpTo(limit int64, known []int64) []int64 {
	if limit <= 3 {
		return []int64{}
	}

	primes := UpTo(limit, known)
	composites := make([]int64, 0, limit-1-int64(len(primes)))
	i := 0
	for n := int64(4); n <= limit; n++ {
		for i < len(primes) && primes[i] < n {
			i++
		}
		if i < len(primes) && primes[i] == n {
			continue
		}
		composites = append(composites, n)
	}
	return composites
}
