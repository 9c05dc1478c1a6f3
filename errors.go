// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primes

import (
	"github.com/pkg/errors"
)

var (
	// ErrZeroStep reports a range request with a step of zero, which is
	// invalid rather than empty.
	ErrZeroStep = errors.New("slice step cannot be zero")

	// ErrNotMember reports an index lookup for a value that is not in the
	// prime sequence.
	ErrNotMember = errors.New("not a member of the prime sequence")
)
