// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txsign

import "github.com/btcsuite/btclog"

// log is the package-level logger used by txsign. It defaults to a
// disabled logger so importing this package produces no output unless the
// caller opts in with UseLogger.
var log btclog.Logger = btclog.Disabled

// DisableLog disables all library log output. Logging output is disabled
// by default until UseLogger is called.
func DisableLog() {
	log = btclog.Disabled
}

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger btclog.Logger) {
	log = logger
}
