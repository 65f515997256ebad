// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txsign

// CreateSig produces a signature for keyID over scriptCode, or reuses one
// already recorded in sigData for the same key. A freshly produced
// signature is recorded into sigData before being returned, so repeated
// calls for the same key within one signing attempt are idempotent.
//
// The pubkey passed to the creator is resolved best-effort via
// resolvePubKey; the creator signs by keyID regardless of whether a
// pubkey was found, so a miss here never prevents signing.
func CreateSig(creator SignatureCreator, provider SigningProvider,
	sigData *SignatureData, keyID KeyId, scriptCode Script) (Sig, bool) {

	if pair, exists := sigData.Signatures[keyID]; exists {
		return pair.Sig, true
	}

	pubKey := resolvePubKey(provider, sigData, keyID)

	sig, ok := creator.CreateSig(provider, keyID, scriptCode, pubKey)
	if !ok {
		return nil, false
	}

	sigData.recordSignature(keyID, SigPair{PubKey: pubKey, Sig: sig})
	return sig, true
}

// resolvePubKey is CreateSig's best-effort pubkey lookup: the signing
// provider first; failing that, any pubkey already attached to a
// recorded signature for keyID; failing that, whatever MiscPubKeys
// already holds. A pubkey found through the provider is recorded into
// MiscPubKeys (if not already present) so it survives as sigdata even
// when the provider that found it is no longer at hand.
func resolvePubKey(provider SigningProvider, sigData *SignatureData, keyID KeyId) PubKey {
	if pubKey, found := provider.GetPubKey(keyID); found {
		if _, known := sigData.MiscPubKeys[keyID]; !known {
			sigData.MiscPubKeys[keyID] = pubKey
		}
		return pubKey
	}
	if pair, exists := sigData.Signatures[keyID]; exists {
		return pair.PubKey
	}
	return sigData.MiscPubKeys[keyID]
}

// SignStep attempts one level of script satisfaction for scriptPubKey: the
// locking script being spent, or the redeem script just revealed by
// unwrapping a ScriptHash. It reports the template tag the solver
// recognized, the ordered stack of items a scriptSig should push to
// satisfy it, and whether that stack alone is sufficient.
//
// A false ok for MultiSig is not necessarily empty-handed: stack may still
// hold every signature collected so far, padded with empty placeholders up
// to the required count, ready to be merged with another party's partial
// signing attempt.
func SignStep(provider SigningProvider, creator SignatureCreator, solver Solver,
	scriptPubKey Script, sigData *SignatureData) (tag TemplateTag, stack [][]byte, ok bool) {

	tag, solutions, recognized := solver(scriptPubKey)
	if !recognized {
		log.Warnf("txsign: solver did not recognize script template")
		return tag, nil, false
	}
	log.Debugf("txsign: SignStep dispatching on template %s", tag)

	switch tag {
	case NonStandard, NullData:
		return tag, nil, false

	case PubKeyTag:
		keyID := PubKey(solutions[0]).ID()
		sig, ok := CreateSig(creator, provider, sigData, keyID, scriptPubKey)
		if !ok {
			log.Warnf("txsign: could not sign PUBKEY for key %s", keyID)
			return tag, nil, false
		}
		return tag, [][]byte{sig}, true

	case PubKeyHash:
		var keyID KeyId
		copy(keyID[:], solutions[0])

		pubKey, found := provider.GetPubKey(keyID)
		if !found {
			log.Warnf("txsign: provider missing pubkey for key %s", keyID)
			return tag, nil, false
		}

		sig, ok := CreateSig(creator, provider, sigData, keyID, scriptPubKey)
		if !ok {
			log.Warnf("txsign: could not sign PUBKEYHASH for key %s", keyID)
			return tag, nil, false
		}
		return tag, [][]byte{sig, pubKey}, true

	case ScriptHash:
		var scriptID ScriptId
		copy(scriptID[:], solutions[0])

		redeem, found := provider.GetScript(scriptID)
		if !found && sigData.RedeemScript.Hash160() == scriptID {
			redeem, found = sigData.RedeemScript, true
		}
		if !found {
			log.Warnf("txsign: could not find redeem script for id %s", scriptID)
			return tag, nil, false
		}
		sigData.RedeemScript = redeem
		return tag, [][]byte{redeem}, true

	case MultiSig:
		stack, ok := signMultiSig(provider, creator, solutions, scriptPubKey, sigData)
		if !ok {
			log.Debugf("txsign: multisig incomplete, collected %d of %d required",
				countNonEmpty(stack), len(stack)-1)
		}
		return tag, stack, ok

	default:
		return tag, nil, false
	}
}

// countNonEmpty returns how many non-empty entries stack holds, used only
// to report multisig signing progress.
func countNonEmpty(stack [][]byte) int {
	n := 0
	for _, item := range stack {
		if len(item) > 0 {
			n++
		}
	}
	return n
}

// signMultiSig implements the TX_MULTISIG arm of SignStep. It pushes a
// leading empty placeholder (CHECKMULTISIG's well-known off-by-one extra
// pop), then attempts a signature for every listed pubkey in order, so each
// key's signature is recorded into sigData, while pushing only the first
// required of them and padding any shortfall with empty items so the
// returned stack is always exactly required+1 long.
func signMultiSig(provider SigningProvider, creator SignatureCreator,
	solutions [][]byte, scriptCode Script, sigData *SignatureData) ([][]byte, bool) {

	required := int(solutions[0][0])
	nKeys := len(solutions) - 2
	pubKeys := solutions[1 : 1+nKeys]

	stack := make([][]byte, 0, required+1)
	stack = append(stack, nil)

	for _, rawKey := range pubKeys {
		keyID := PubKey(rawKey).ID()
		sig, ok := CreateSig(creator, provider, sigData, keyID, scriptCode)
		if ok && len(stack) < required+1 {
			stack = append(stack, sig)
		}
	}

	ok := len(stack) == required+1
	for len(stack) < required+1 {
		stack = append(stack, nil)
	}

	return stack, ok
}
