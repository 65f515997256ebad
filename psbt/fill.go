// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package psbt

import "github.com/gcash/bchwallet/txsign"

// FillSignatureData builds a txsign.SignatureData out of whatever signing
// progress in already carries, so it can be handed to
// txsign.ProduceSignature. A finalized input comes back Complete, with
// ScriptSig already set and nothing else populated; a partial one comes
// back carrying its redeem script, partial signatures, and every pubkey
// named by its Bip32Derivs, ready to be extended.
func FillSignatureData(in *PSBTInput) *txsign.SignatureData {
	sd := txsign.NewSignatureData()

	if in.IsFinalized() {
		sd.Complete = true
		sd.ScriptSig = in.FinalScriptSig
		return sd
	}

	sd.RedeemScript = in.RedeemScript
	for keyID, pair := range in.PartialSigs {
		sd.Signatures[keyID] = pair
	}
	for keyID, origin := range in.Bip32Derivs {
		sd.MiscPubKeys[keyID] = origin.PubKey
	}

	return sd
}

// FromSignatureData writes sd back into in. A complete sd finalizes the
// input: FinalScriptSig is set and every partial-signing field is
// cleared, since BIP174 finalization drops that metadata once it is no
// longer needed. A non-complete sd updates the input's redeem script and
// partial signatures in place, leaving FinalScriptSig untouched (it is
// never set except by finalization).
func FromSignatureData(in *PSBTInput, sd *txsign.SignatureData) {
	if sd.Complete {
		in.FinalScriptSig = sd.ScriptSig
		in.PartialSigs = nil
		in.Bip32Derivs = nil
		in.RedeemScript = nil
		in.SighashType = 0
		return
	}

	in.RedeemScript = sd.RedeemScript

	if in.PartialSigs == nil {
		in.PartialSigs = make(map[txsign.KeyId]txsign.SigPair)
	}
	for keyID, pair := range sd.Signatures {
		in.PartialSigs[keyID] = pair
	}
}
