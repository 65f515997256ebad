// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txsign

import (
	"errors"

	"github.com/btcsuite/btcd/txscript"
)

// DataFromTransaction recovers a SignatureData from a scriptSig already
// present on an input, against the locking script it is meant to satisfy.
// It is the inverse of ProduceSignature: whatever partial signing progress
// the scriptSig embodies, whether complete or not, is extracted back out
// so it can be merged with other parties' attempts and resumed.
//
// scriptSig may be empty, partially signed, or fully satisfying; this
// never returns an error, only the best SignatureData it could recover.
func DataFromTransaction(solver Solver, scriptSig Script,
	scriptPubKey Script, checker SignatureChecker) *SignatureData {

	data := NewSignatureData()
	data.ScriptSig = scriptSig

	stack, err := evalPushOnly(scriptSig)
	if err != nil {
		return data
	}

	extractor := NewSignatureExtractorChecker(data, checker)

	if VerifyScript(solver, stack, scriptPubKey, extractor) {
		data.Complete = true
		return data
	}

	workingScript := scriptPubKey
	workingStack := stack

	if tag, _, ok := solver(scriptPubKey); ok && tag == ScriptHash && len(stack) > 0 {
		redeem := Script(stack[len(stack)-1])
		if len(redeem) > 0 {
			data.RedeemScript = redeem
			workingScript = redeem
			workingStack = stack[:len(stack)-1]
		}
	}

	tag, solutions, ok := solver(workingScript)
	if !ok {
		return data
	}

	switch tag {
	case PubKeyTag:
		if len(workingStack) >= 1 {
			extractor.CheckSig(Sig(workingStack[0]), PubKey(solutions[0]), workingScript)
		}

	case PubKeyHash:
		if len(workingStack) >= 2 {
			extractor.CheckSig(Sig(workingStack[0]), PubKey(workingStack[1]), workingScript)
		}

	case MultiSig:
		nKeys := len(solutions) - 2
		pubKeys := solutions[1 : 1+nKeys]
		sigs := workingStack
		if len(sigs) > 0 {
			sigs = sigs[1:]
		}
		matchMultiSigSignaturesSkipping(extractor, sigs, pubKeys, workingScript)

		for _, rawKey := range pubKeys {
			pk := PubKey(rawKey)
			id := pk.ID()
			if _, signed := data.Signatures[id]; signed {
				continue
			}
			if _, known := data.MiscPubKeys[id]; !known {
				data.MiscPubKeys[id] = pk
			}
		}
	}

	return data
}

// evalPushOnly decodes scriptSig into the ordered sequence of items it
// pushes, rejecting any script that contains an opcode other than a data
// push. Every scriptSig this core ever builds, or needs to extract
// progress from, is push-only: none of the five supported templates ever
// requires anything else in the unlocking script.
func evalPushOnly(scriptSig Script) ([][]byte, error) {
	if !txscript.IsPushOnlyScript(scriptSig) {
		return nil, errors.New("txsign: scriptSig is not push-only")
	}
	return txscript.PushedData(scriptSig)
}
