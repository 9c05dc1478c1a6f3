// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package factor

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

// Memo is a bounded read-through cache in front of Factorize for callers
// that factorize the same inputs repeatedly.
type Memo struct {
	cache *lru.Cache
}

// NewMemo returns a Memo remembering the factorizations of the size most
// recently queried inputs.
func NewMemo(size int) (*Memo, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "factorization memo")
	}
	return &Memo{cache: c}, nil
}

// Factorize returns the distinct prime factors of n in ascending order,
// serving repeated queries from the memo. The returned slice is a copy and
// safe for the caller to modify.
func (m *Memo) Factorize(n int64) []int64 {
	if v, ok := m.cache.Get(n); ok {
		return append([]int64{}, v.([]int64)...)
	}
	factors := Factorize(n, false, nil)
	m.cache.Add(n, factors)
	return append([]int64{}, factors...)
}
