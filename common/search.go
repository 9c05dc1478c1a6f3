// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"sort"
)

// Search performs a binary search for value in seq restricted to the index
// window [lo, hi). It returns the position of value, or -1 when value is not
// present inside the window. seq must be sorted ascending; behaviour is
// undefined otherwise.
func Search(seq []int64, value int64, lo, hi int) int {
	pos := lo + sort.Search(hi-lo, func(i int) bool {
		return seq[lo+i] >= value
	})
	if pos != hi && seq[pos] == value {
		return pos
	}
	return -1
}

// SearchAll is Search over the whole of seq.
func SearchAll(seq []int64, value int64) int {
	return Search(seq, value, 0, len(seq))
}

// UpperBound returns the number of elements of seq that are <= limit.
// seq must be sorted ascending.
func UpperBound(seq []int64, limit int64) int {
	return sort.Search(len(seq), func(i int) bool {
		return seq[i] > limit
	})
}

// PrefixThrough returns the maximal prefix of seq whose elements are all
// <= limit. The result aliases seq's backing array and must be treated as
// read-only.
func PrefixThrough(seq []int64, limit int64) []int64 {
	return seq[:UpperBound(seq, limit)]
}
