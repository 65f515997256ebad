// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txsign

import (
	"errors"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// SigHashType is the one-byte sighash type tag appended to every
// signature this package produces. The low bits select which parts of
// the transaction are committed to (txscript.SigHashAll and friends); the
// SigHashForkID bit must additionally be set for every signature on this
// chain, per the BCH replay-protected sighash digest.
type SigHashType txscript.SigHashType

// SigHashForkID is the BCH fork-id bit added to a sighash type to select
// the BIP143-style, amount-committing signature digest instead of the
// legacy pre-fork one. It must be present in every SigHashType used on
// this chain.
const SigHashForkID SigHashType = 0x40

// ErrMissingForkID is returned by CalcSignatureHash, the default
// SignatureHashFunc, when the caller-supplied sighash type does not carry SigHashForkID.
var ErrMissingForkID = errors.New("txsign: sighash type is missing the FORKID bit")

// SignatureHashFunc computes the 32-byte digest that a signature commits
// to for input nIn of tx, given the scriptCode in force for that input
// (the locking script itself for P2PKH/P2PK, the embedded redeem script
// for P2SH) and the input's amount.
//
// Its exact preimage construction is out of scope here, beyond requiring
// the replay-protection bit this chain mandates.
type SignatureHashFunc func(scriptCode Script, tx *wire.MsgTx, nIn int,
	hashType SigHashType, amount int64) ([32]byte, error)

// CalcSignatureHash is the default SignatureHashFunc. It reuses btcd's
// BIP143 witness-preimage construction (txscript.CalcWitnessSigHash)
// as the digest algorithm, since that is exactly the preimage the BCH
// fork standardized for every input, witness or not, once the FORKID bit
// is set in the sighash type.
func CalcSignatureHash(scriptCode Script, tx *wire.MsgTx, nIn int,
	hashType SigHashType, amount int64) ([32]byte, error) {

	var digest [32]byte

	if hashType&SigHashForkID == 0 {
		return digest, ErrMissingForkID
	}

	hashes := txscript.NewTxSigHashes(tx, txscript.NewCannedPrevOutputFetcher(
		scriptCode, amount,
	))

	hash, err := txscript.CalcWitnessSigHash(
		scriptCode, hashes, txscript.SigHashType(hashType), tx, nIn,
		amount,
	)
	if err != nil {
		return digest, err
	}

	copy(digest[:], hash)
	return digest, nil
}
