// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txsign

// SignatureData accumulates signatures, embedded scripts, and pubkeys
// discovered or produced while signing a single transaction input. It is
// the data model both ProduceSignature builds up and DataFromTransaction
// recovers from an existing scriptSig.
//
// ScriptSig is rebuilt on every signing attempt. The other fields are
// monotone: once a (KeyId, SigPair) or pubkey is recorded it is never
// removed, except when a complete peer entirely replaces a partial one in
// MergeSignatureData.
type SignatureData struct {
	// Complete is true iff ScriptSig alone satisfies the locking script
	// under the standard verify flags.
	Complete bool

	// ScriptSig is the candidate (or, once Complete, final) unlocking
	// script.
	ScriptSig Script

	// RedeemScript is the embedded script for script-hash outputs. It is
	// empty if the output being spent is not a P2SH output.
	RedeemScript Script

	// Signatures holds the partial signatures discovered or produced so
	// far, keyed by the signer's KeyId.
	Signatures map[KeyId]SigPair

	// MiscPubKeys holds pubkeys that have been seen (e.g. via the
	// signing provider, or PSBT derivation-path metadata) but not yet
	// matched to a signature.
	MiscPubKeys map[KeyId]PubKey
}

// NewSignatureData returns an empty, non-complete SignatureData ready for
// one signing attempt.
func NewSignatureData() *SignatureData {
	return &SignatureData{
		Signatures:  make(map[KeyId]SigPair),
		MiscPubKeys: make(map[KeyId]PubKey),
	}
}

// recordSignature inserts (keyID, pair) into sd.Signatures. The caller
// must have already established that keyID is absent; a duplicate insert
// is a programmer error, exactly as in the original: the core never
// overwrites a signature it already trusts.
func (sd *SignatureData) recordSignature(keyID KeyId, pair SigPair) {
	if _, exists := sd.Signatures[keyID]; exists {
		panic("txsign: duplicate signature insertion for " + keyID.String())
	}
	sd.Signatures[keyID] = pair
}

// MergeSignatureData merges other into sd, preserving monotonicity:
//
//   - If sd is already complete, other is ignored entirely.
//   - Else if other is complete, sd is replaced wholesale by other.
//   - Else the redeem script is adopted from other if sd has none, and
//     other's signatures are unioned in (sd's own entries for a given key
//     win on conflict, matching "existing keys win").
func (sd *SignatureData) MergeSignatureData(other *SignatureData) {
	if sd.Complete {
		return
	}
	if other.Complete {
		*sd = *other
		return
	}

	if len(sd.RedeemScript) == 0 && len(other.RedeemScript) > 0 {
		sd.RedeemScript = other.RedeemScript
	}

	if sd.Signatures == nil {
		sd.Signatures = make(map[KeyId]SigPair)
	}
	for keyID, pair := range other.Signatures {
		if _, exists := sd.Signatures[keyID]; !exists {
			sd.Signatures[keyID] = pair
		}
	}

	if sd.MiscPubKeys == nil {
		sd.MiscPubKeys = make(map[KeyId]PubKey)
	}
	for keyID, pub := range other.MiscPubKeys {
		if _, exists := sd.MiscPubKeys[keyID]; !exists {
			sd.MiscPubKeys[keyID] = pub
		}
	}
}
