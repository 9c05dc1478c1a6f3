// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primes

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/liam-m/primes/primality"
	"github.com/liam-m/primes/sieve"
)

// ValidateKnown checks that a caller-supplied prime list upholds the hint
// contract: strictly increasing, every member prime, and complete up to its
// largest member. All violations found are reported together. This is a
// debugging aid for callers assembling their own lists; the core operations
// trust their hints and never run it.
func ValidateKnown(known []int64) error {
	var result *multierror.Error
	for i, p := range known {
		if i > 0 && known[i-1] >= p {
			result = multierror.Append(result, errors.Errorf(
				"position %d: %d does not increase on %d", i, p, known[i-1]))
		}
		if !primality.IsPrime(p, nil) {
			result = multierror.Append(result, errors.Errorf(
				"position %d: %d is not prime", i, p))
		}
	}
	if result == nil && len(known) > 0 {
		limit := known[len(known)-1]
		if full := sieve.UpTo(limit, nil); len(full) != len(known) {
			result = multierror.Append(result, errors.Errorf(
				"list holds %d primes but %d exist up to %d", len(known), len(full), limit))
		}
	}
	return result.ErrorOrNil()
}
