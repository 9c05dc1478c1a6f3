// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"github.com/ipfs/go-log"
)

// Logger is the module-wide logger. Verbosity is controlled by the consumer
// via `log.SetLogLevel("primes", ...)`.
var Logger = log.Logger("primes")
