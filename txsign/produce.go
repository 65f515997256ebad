// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txsign

import "github.com/btcsuite/btcd/txscript"

// ProduceSignature drives SignStep to completion for a single input,
// transparently unwrapping one level of ScriptHash, and leaves its result
// in sigData: ScriptSig holds the best candidate unlocking script built
// so far (complete or not), and Complete reports whether VerifyScript
// accepts it against scriptPubKey.
//
// Nested P2SH (a redeem script that is itself a ScriptHash output) is not
// supported: ProduceSignature unwraps exactly one level and treats a
// second as unsatisfiable, matching the standardness rules this core's
// dependency chain enforces everywhere else.
func ProduceSignature(provider SigningProvider, creator SignatureCreator,
	solver Solver, scriptPubKey Script, sigData *SignatureData) bool {

	if sigData.Complete {
		return true
	}

	tag, stack, ok := SignStep(provider, creator, solver, scriptPubKey, sigData)

	finalStack := stack

	if tag == ScriptHash && ok {
		redeem := sigData.RedeemScript

		if redeemTag, _, redeemRecognized := solver(redeem); redeemRecognized && redeemTag == ScriptHash {
			sigData.ScriptSig = nil
			return false
		}

		_, innerStack, innerOK := SignStep(provider, creator, solver, redeem, sigData)

		finalStack = append(append([][]byte{}, innerStack...), []byte(redeem))
		ok = innerOK
	}

	scriptSig, buildErr := buildScriptSig(finalStack)
	if buildErr != nil {
		return false
	}

	sigData.ScriptSig = scriptSig

	checker := creator.Checker()
	complete := ok && VerifyScript(solver, finalStack, scriptPubKey, checker)
	sigData.Complete = complete

	return complete
}

// buildScriptSig concatenates stack, a sequence of raw push items in the
// order they must appear on the stack once interpreted, into a single
// minimally-encoded scriptSig.
func buildScriptSig(stack [][]byte) (Script, error) {
	builder := txscript.NewScriptBuilder()
	for _, item := range stack {
		builder.AddData(item)
	}
	script, err := builder.Script()
	if err != nil {
		return nil, err
	}
	return Script(script), nil
}
