// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"math/big"
	"math/bits"

	"github.com/liam-m/primes/common"
)

// strongLucas runs a strong Lucas probable-prime test with Selfridge's
// parameter selection, completing the Baillie-PSW test started by
// millerRabinBase2. The Lucas U/V terms are computed iteratively over the
// binary digits of the odd part of n+1, keeping stack depth constant.
// A false result proves n composite.
func strongLucas(n int64) bool {
	if n == 2 || n == 3 {
		return true
	}
	if n < 2 || n%2 == 0 {
		return false
	}
	// A perfect square has Jacobi(D/n) != -1 for every D; the discriminant
	// search below would never terminate.
	if r := common.ISqrt(n); r*r == n {
		return false
	}

	bigN := big.NewInt(n)

	// Selfridge's method A: the first D in 5, -7, 9, -11, ... with
	// Jacobi(D/n) = -1.
	d := int64(5)
	for {
		j := big.Jacobi(big.NewInt(d), bigN)
		if j == -1 {
			break
		}
		if j == 0 && absInt64(d) != n {
			// D shares a nontrivial factor with n
			return false
		}
		if d > 0 {
			d = -(d + 2)
		} else {
			d = -(d - 2)
		}
	}
	q := (1 - d) / 4 // P = 1

	// n+1 = t·2^s with t odd
	t, s := n+1, 0
	for t%2 == 0 {
		t /= 2
		s++
	}

	var (
		bigD = big.NewInt(d)
		bigQ = big.NewInt(q)
		u    = big.NewInt(1) // U_1
		v    = big.NewInt(1) // V_1 = P
		qk   = new(big.Int).Mod(bigQ, bigN)
		tmp  = new(big.Int)
	)

	// Walk the bits of t below the leading one. Each pass doubles the index
	// (U_2k = U_k·V_k, V_2k = V_k² - 2Q^k) and a set bit then advances it by
	// one, using the halving identities for P = 1.
	for i := bits.Len64(uint64(t)) - 2; i >= 0; i-- {
		u.Mul(u, v)
		u.Mod(u, bigN)
		v.Mul(v, v)
		v.Sub(v, tmp.Lsh(qk, 1))
		v.Mod(v, bigN)
		qk.Mul(qk, qk)
		qk.Mod(qk, bigN)

		if t&(1<<uint(i)) != 0 {
			u2 := new(big.Int).Add(u, v)
			halveMod(u2, bigN)
			v2 := new(big.Int).Mul(bigD, u)
			v2.Add(v2, v)
			halveMod(v2, bigN)
			u, v = u2, v2
			qk.Mul(qk, bigQ)
			qk.Mod(qk, bigN)
		}
	}

	// U_t ≡ 0 passes outright; otherwise V_{t·2^r} ≡ 0 for some r < s must
	// hold for a prime n.
	if u.Sign() == 0 {
		return true
	}
	for r := 0; r < s; r++ {
		if v.Sign() == 0 {
			return true
		}
		v.Mul(v, v)
		v.Sub(v, tmp.Lsh(qk, 1))
		v.Mod(v, bigN)
		qk.Mul(qk, qk)
		qk.Mod(qk, bigN)
	}
	return false
}

// halveMod sets x to x/2 mod n in place, n odd.
func halveMod(x, n *big.Int) {
	x.Mod(x, n)
	if x.Bit(0) == 1 {
		x.Add(x, n)
	}
	x.Rsh(x, 1)
}

func absInt64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
