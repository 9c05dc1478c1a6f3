// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package factor

import (
	"math/big"

	"github.com/liam-m/primes/common"
)

// brentBatch is how many rho steps are folded into a single gcd through a
// running product of differences. Empirically near-optimal; tunable, not
// load-bearing.
const brentBatch = 1000

var one = big.NewInt(1)

// brent returns a nontrivial divisor of n, which must be composite, odd and
// coprime to the small-prime set. When a walk degenerates (every batched
// difference vanished mod n at once) it restarts from the next seed rather
// than looping forever; the retry loop is unbounded in principle but
// terminates almost surely for any real input.
func brent(n int64) int64 {
	for seed := int64(1); ; seed++ {
		if d := brentAttempt(n, seed); 1 < d && d < n {
			return d
		}
		common.Logger.Debugf("rho: walk for %d degenerated, restarting with seed %d", n, seed+1)
	}
}

// brentAttempt runs one of Brent's cycle-detection walks y <- y²+c mod n
// from y = c = seed. The hare advances in batches of brentBatch steps while
// the tortoise checkpoint x doubles its lead; gcds are taken against the
// accumulated product of |x-y| differences. Returns a divisor of n, or n
// itself when the walk degenerated.
func brentAttempt(n, seed int64) int64 {
	var (
		bigN = big.NewInt(n)
		c    = big.NewInt(seed)
		y    = big.NewInt(seed)
		g    = big.NewInt(1)
		q    = big.NewInt(1)
		x    = new(big.Int)
		ys   = new(big.Int)
		diff = new(big.Int)
	)

	for r := 1; g.Cmp(one) == 0; r *= 2 {
		x.Set(y)
		for i := 0; i < r; i++ {
			advance(y, c, bigN)
		}
		for k := 0; k < r && g.Cmp(one) == 0; k += brentBatch {
			ys.Set(y)
			batch := brentBatch
			if r-k < batch {
				batch = r - k
			}
			for i := 0; i < batch; i++ {
				advance(y, c, bigN)
				diff.Sub(x, y)
				q.Mul(q, diff.Abs(diff))
				q.Mod(q, bigN)
			}
			gcd(g, q, bigN)
		}
	}

	if g.Cmp(bigN) == 0 {
		// The whole batch collapsed at once. Replay it one step at a time
		// from the checkpoint to recover the divisor the batching skipped.
		for {
			advance(ys, c, bigN)
			diff.Sub(x, ys)
			gcd(g, diff.Abs(diff), bigN)
			if g.Cmp(one) != 0 {
				break
			}
		}
	}
	return g.Int64()
}

// advance applies one rho step y <- y² + c mod n.
func advance(y, c, n *big.Int) {
	y.Mul(y, y)
	y.Add(y, c)
	y.Mod(y, n)
}

// gcd sets g to GCD(a, n), tolerating a zero a (GCD(0, n) = n), which
// big.Int.GCD itself does not accept.
func gcd(g, a, n *big.Int) {
	if a.Sign() == 0 {
		g.Set(n)
		return
	}
	g.GCD(nil, nil, a, n)
}
