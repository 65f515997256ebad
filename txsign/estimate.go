// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txsign

import "github.com/btcsuite/btcd/btcec/v2"

// estimateProvider is the SigningProvider EstimateScriptSigSize drives
// ProduceSignature with: it has no real keys, but answers every pubkey
// lookup with a fixed-size placeholder, and answers a script lookup with
// whatever redeem script the caller told it to assume.
type estimateProvider struct {
	redeemScript Script
}

func (*estimateProvider) GetKey(KeyId) (*btcec.PrivateKey, bool) {
	return nil, false
}

func (*estimateProvider) GetPubKey(KeyId) (PubKey, bool) {
	return make(PubKey, btcec.PubKeyBytesLenCompressed), true
}

func (p *estimateProvider) GetScript(ScriptId) (Script, bool) {
	if len(p.redeemScript) == 0 {
		return nil, false
	}
	return p.redeemScript, true
}

// EstimateScriptSigSize returns the size, in bytes, of the largest
// scriptSig ProduceSignature could build to satisfy scriptPubKey, using
// DummySignatureCreator in place of real keys. redeemScript should be
// supplied when scriptPubKey is a ScriptHash output; it is ignored
// otherwise.
//
// Because DummySignatureCreator's signatures are always the maximum DER
// length, this is a safe upper bound for fee reservation: no real
// signing attempt against the same script will produce a larger
// scriptSig.
func EstimateScriptSigSize(solver Solver, scriptPubKey Script, redeemScript Script) int {
	provider := &estimateProvider{redeemScript: redeemScript}
	creator := NewDummySignatureCreator()
	sd := NewSignatureData()

	ProduceSignature(provider, creator, solver, scriptPubKey, sd)

	return len(sd.ScriptSig)
}
