// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txsign implements the transaction-signing core of a BCH-family
// wallet: a recursive, template-directed solver/signer that produces
// scriptSigs satisfying an output's locking script, and the symmetric
// extractor that recovers signing progress from an existing (possibly
// partial) scriptSig.
//
// The package is pure, synchronous, and deterministic. It never touches
// the network or a wallet's on-disk key storage; callers supply those
// through the SigningProvider interface.
package txsign
