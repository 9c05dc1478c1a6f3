// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"math/big"
)

// millerRabinBase2 runs one Miller-Rabin round with witness 2: write
// n-1 = d·2^s with d odd, compute 2^d mod n and square up to s-1 times
// looking for n-1. A false result proves n composite; true means "probably
// prime" and hands over to the Lucas stage.
func millerRabinBase2(n int64) bool {
	if n == 2 || n == 3 {
		return true
	}
	if n < 2 || n%2 == 0 {
		return false
	}

	d, s := n-1, 0
	for d%2 == 0 {
		d /= 2
		s++
	}

	var (
		bigN    = big.NewInt(n)
		nMinus1 = big.NewInt(n - 1)
		one     = big.NewInt(1)
	)
	x := new(big.Int).Exp(big.NewInt(2), big.NewInt(d), bigN)
	if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
		return true
	}
	for i := 0; i < s-1; i++ {
		x.Mul(x, x)
		x.Mod(x, bigN)
		if x.Cmp(one) == 0 {
			return false
		}
		if x.Cmp(nMinus1) == 0 {
			return true
		}
	}
	return false
}
