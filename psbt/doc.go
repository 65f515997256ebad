// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package psbt implements the in-memory record a wallet uses to carry a
// transaction, one unsigned, between signers that each hold a subset of
// its keys: one entry per input and output, each accumulating redeem
// scripts, partial signatures, and key metadata as every party's
// signature attempt is merged in.
//
// Wire encoding is deliberately out of scope; callers that need to
// exchange a PartiallySignedTransaction with another tool are expected to
// bring their own BIP174 codec. This package only models the merge and
// the bridge to and from github.com/gcash/bchwallet/txsign's SignatureData.
package psbt
