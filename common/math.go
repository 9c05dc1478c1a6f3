// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"math"
)

// ISqrt returns the integer square root of n, the largest r with r*r <= n.
// Floating-point sqrt alone loses precision above 2^52, so the estimate is
// corrected with overflow-safe division comparisons.
func ISqrt(n int64) int64 {
	if n <= 0 {
		return 0
	}
	r := int64(math.Sqrt(float64(n)))
	for r > 1 && r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}
