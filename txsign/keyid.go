// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txsign

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil"
)

// hash160Size is the length in bytes of a RIPEMD160(SHA256(x)) digest, the
// hash used throughout this package to index public keys and scripts.
const hash160Size = 20

// KeyId is the 160-bit hash of a serialized public key. It is the primary
// index used to look up keys, partial signatures, and miscellaneous
// pubkeys within a SignatureData record.
type KeyId [hash160Size]byte

// String returns the KeyId as a hex string, most-significant byte first.
func (id KeyId) String() string {
	return hex.EncodeToString(id[:])
}

// ScriptId is the 160-bit hash of a serialized script. It indexes embedded
// ("redeem") scripts revealed at spend time for script-hash outputs.
type ScriptId [hash160Size]byte

// String returns the ScriptId as a hex string, most-significant byte first.
func (id ScriptId) String() string {
	return hex.EncodeToString(id[:])
}

// PubKey is an opaque serialized public key as it appears on the wire or
// on a stack item.
type PubKey []byte

// ID returns the KeyId of this public key, i.e. Hash160 of its serialized
// form.
func (p PubKey) ID() KeyId {
	var id KeyId
	copy(id[:], btcutil.Hash160(p))
	return id
}

// Sig is a raw signature as it will appear on the stack: a DER-encoded
// ECDSA signature immediately followed by a single sighash-type byte.
type Sig []byte

// SigPair associates a public key with the signature produced (or
// recovered) for it.
type SigPair struct {
	PubKey PubKey
	Sig    Sig
}

// Script is an ordered byte sequence of opcodes and push data: either a
// locking script, an unlocking script, or an embedded redeem script.
type Script []byte

// Hash160 returns the RIPEMD160(SHA256(script)), the value used to derive
// a ScriptId for a P2SH-style embedding.
func (s Script) Hash160() ScriptId {
	var id ScriptId
	copy(id[:], btcutil.Hash160(s))
	return id
}
