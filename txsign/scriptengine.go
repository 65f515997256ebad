// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txsign

// VerifyScript reports whether stack, pushed in order and then run against
// scriptPubKey, satisfies it under checker.
//
// btcd's own interpreter (txscript.Engine) cannot serve this role here: its
// CHECKSIG/CHECKMULTISIG opcodes hash the legacy pre-fork sighash
// internally, which never matches a FORKID-tagged signature. VerifyScript
// is this core's own minimal interpreter, scoped to exactly the five
// templates a Solver recognizes, with every signature check delegated to
// checker rather than hardcoded.
//
// It is the authoritative "is this scriptSig actually complete" check
// that ProduceSignature and DataFromTransaction both rely on.
func VerifyScript(solver Solver, stack [][]byte, scriptPubKey Script,
	checker SignatureChecker) bool {

	tag, solutions, ok := solver(scriptPubKey)
	if !ok {
		return false
	}

	switch tag {
	case PubKeyTag:
		if len(stack) != 1 {
			return false
		}
		return checker.CheckSig(Sig(stack[0]), PubKey(solutions[0]), scriptPubKey)

	case PubKeyHash:
		if len(stack) != 2 {
			return false
		}
		sig, pubKey := stack[0], PubKey(stack[1])
		if pubKey.ID() != KeyId(hash160Array(solutions[0])) {
			return false
		}
		return checker.CheckSig(Sig(sig), pubKey, scriptPubKey)

	case ScriptHash:
		if len(stack) < 1 {
			return false
		}
		redeem := Script(stack[len(stack)-1])
		if redeem.Hash160() != ScriptId(hash160Array(solutions[0])) {
			return false
		}
		return VerifyScript(solver, stack[:len(stack)-1], redeem, checker)

	case MultiSig:
		return verifyMultiSig(solver, stack, solutions, scriptPubKey, checker)

	default:
		return false
	}
}

// verifyMultiSig checks that stack, minus its leading CHECKMULTISIG
// placeholder, holds exactly `required` non-empty signatures that verify
// against the listed pubkeys in the same relative order the pubkeys
// appear in solutions, exactly as OP_CHECKMULTISIG itself requires.
func verifyMultiSig(solver Solver, stack [][]byte, solutions [][]byte,
	scriptCode Script, checker SignatureChecker) bool {

	if len(stack) < 1 {
		return false
	}

	required := int(solutions[0][0])
	nKeys := len(solutions) - 2
	pubKeys := solutions[1 : 1+nKeys]

	matched, allFound := matchMultiSigSignatures(checker, stack[1:], pubKeys, scriptCode)
	return allFound && matched == required
}

// matchMultiSigSignatures walks sigs and pubKeys in lockstep, the same way
// OP_CHECKMULTISIG itself does: each non-empty signature must verify
// against some pubkey at or after the cursor left by the previous match.
// It returns how many signatures matched, and whether every non-empty
// signature in sigs found a match (a false here means sigs is not a valid
// ordered subset of pubKeys, regardless of count).
func matchMultiSigSignatures(checker SignatureChecker, sigs [][]byte,
	pubKeys [][]byte, scriptCode Script) (matched int, allFound bool) {

	keyIdx := 0
	for _, rawSig := range sigs {
		if len(rawSig) == 0 {
			continue
		}
		found := false
		for keyIdx < len(pubKeys) {
			pk := PubKey(pubKeys[keyIdx])
			keyIdx++
			if checker.CheckSig(Sig(rawSig), pk, scriptCode) {
				found = true
				break
			}
		}
		if !found {
			return matched, false
		}
		matched++
	}

	return matched, true
}

// matchMultiSigSignaturesSkipping walks sigs against pubKeys the way
// DataFromTransaction's recovery pass needs to: a candidate that fails to
// match any pubkey from the cursor onward does not abort the walk, it is
// simply skipped, and the cursor is left exactly where it was so the next
// candidate still gets a chance against the same remaining pubkeys. This
// differs from matchMultiSigSignatures, which is scoped to
// OP_CHECKMULTISIG's own stricter semantics, where an unmatched candidate
// invalidates the whole script and the cursor consumes keys even on a miss.
func matchMultiSigSignaturesSkipping(checker SignatureChecker, sigs [][]byte,
	pubKeys [][]byte, scriptCode Script) (matched int) {

	cursor := 0
	for _, rawSig := range sigs {
		if len(rawSig) == 0 {
			continue
		}

		for keyIdx := cursor; keyIdx < len(pubKeys); keyIdx++ {
			pk := PubKey(pubKeys[keyIdx])
			if checker.CheckSig(Sig(rawSig), pk, scriptCode) {
				cursor = keyIdx + 1
				matched++
				break
			}
		}
	}

	return matched
}

// hash160Array copies a variable-length hash into a fixed 20-byte array,
// panicking if it is not of that length. Every solution a Solver returns
// for a hash-based template is exactly hash160Size bytes by construction.
func hash160Array(b []byte) [hash160Size]byte {
	var out [hash160Size]byte
	if len(b) != hash160Size {
		panic("txsign: solver returned a hash of unexpected length")
	}
	copy(out[:], b)
	return out
}
