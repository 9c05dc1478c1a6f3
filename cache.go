// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primes

import (
	"math"

	"github.com/pkg/errors"

	"github.com/liam-m/primes/common"
	"github.com/liam-m/primes/sieve"
)

// End marks an unbounded start or stop in Cache.Slice, standing in for an
// omitted bound.
const End = math.MaxInt

// Cache is a lazily growing, memoized source of primes. Each query extends
// the underlying list just far enough to answer, and later queries reuse
// everything computed so far; primes are never forgotten.
//
// A Cache is not safe for concurrent use. Callers needing concurrency must
// serialize access externally or give each goroutine its own Cache.
type Cache struct {
	primes       []int64
	highestKnown int64 // every prime <= highestKnown is in primes
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{}
}

// Len returns the number of primes generated so far.
func (c *Cache) Len() int {
	return len(c.primes)
}

// Known returns a copy of the primes generated so far.
func (c *Cache) Known() []int64 {
	return append([]int64{}, c.primes...)
}

// Contains reports whether n is prime, first extending the cache through n
// if it is beyond the proven-complete bound.
func (c *Cache) Contains(n int64) bool {
	if n > c.highestKnown {
		c.grow(n)
	}
	return common.SearchAll(c.primes, n) != -1
}

// At returns the prime at index i, 0-indexed: At(0) = 2. Indexes beyond the
// cache generate more primes. A negative i counts back from the end of the
// currently cached primes without growing the cache, and errors when it
// underruns.
func (c *Cache) At(i int) (int64, error) {
	if i >= 0 {
		c.growToCount(i + 1)
		return c.primes[i], nil
	}
	j := len(c.primes) + i
	if j < 0 {
		return 0, errors.Errorf("index %d out of range for %d cached primes", i, len(c.primes))
	}
	return c.primes[j], nil
}

// IndexOf returns the position of n in the prime sequence, 0-indexed,
// growing the cache to cover n. A non-prime n yields ErrNotMember.
func (c *Cache) IndexOf(n int64) (int, error) {
	if n > c.highestKnown {
		c.grow(n)
	}
	i := common.SearchAll(c.primes, n)
	if i == -1 {
		return 0, errors.Wrapf(ErrNotMember, "%d", n)
	}
	return i, nil
}

// Slice returns the primes at indices [start:stop:step], following Python
// slice semantics: stop is exclusive, negative indices count back from the
// end of the currently cached primes, and a negative step walks backwards.
// Pass End for an unbounded start or stop. A request that cannot produce an
// element, such as an inverted bound pair, returns empty without generating
// any primes; a zero step yields ErrZeroStep.
func (c *Cache) Slice(start, stop, step int) ([]int64, error) {
	if step == 0 {
		return nil, errors.Wrap(ErrZeroStep, "prime cache")
	}
	if start != End && stop != End {
		if (start > stop && step > 0) || (stop > start && step < 0) {
			return []int64{}, nil
		}
	}
	if start != End && len(c.primes)-1 < start {
		c.growToCount(start + 1)
	}
	if stop != End && len(c.primes) < stop {
		c.growToCount(stop)
	}
	return pySlice(c.primes, start, stop, step), nil
}

func (c *Cache) grow(limit int64) {
	common.Logger.Debugf("cache: growing from %d to %d", c.highestKnown, limit)
	c.primes = sieve.UpTo(limit, c.primes)
	c.highestKnown = limit
}

// growToCount extends the cache until at least n primes are known, using
// the tiered nth-prime bound to pick the sieve limit.
func (c *Cache) growToCount(n int) {
	if len(c.primes) >= n {
		return
	}
	c.grow(nthPrimeUpperBound(n))
}

// pySlice extracts seq[start:stop:step] with Python's clamping rules. End
// stands for an omitted bound: the natural terminus for the sign of step.
func pySlice(seq []int64, start, stop, step int) []int64 {
	n := len(seq)

	adjust := func(i int) int {
		if i < 0 {
			if i += n; i < 0 {
				if step < 0 {
					return -1
				}
				return 0
			}
			return i
		}
		if i >= n {
			if step < 0 {
				return n - 1
			}
			return n
		}
		return i
	}

	var lo, hi int
	if start == End {
		if step < 0 {
			lo = n - 1
		} else {
			lo = 0
		}
	} else {
		lo = adjust(start)
	}
	if stop == End {
		if step < 0 {
			hi = -1
		} else {
			hi = n
		}
	} else {
		hi = adjust(stop)
	}

	out := []int64{}
	if step > 0 {
		for i := lo; i < hi; i += step {
			out = append(out, seq[i])
		}
	} else {
		for i := lo; i > hi; i += step {
			out = append(out, seq[i])
		}
	}
	return out
}
