// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txsign

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/wire"
)

// SignatureChecker verifies that sig, produced by the key serialized in
// pubKey, is a valid signature over scriptCode for the given input. It is
// the symmetric counterpart to SignatureCreator, and VerifyScript's
// OP_CHECKSIG/OP_CHECKMULTISIG handling calls through it exclusively; the
// interpreter never embeds its own verification logic.
type SignatureChecker interface {
	CheckSig(sig Sig, pubKey PubKey, scriptCode Script) bool
}

// TransactionSignatureChecker is the real SignatureChecker: it recomputes
// the sighash digest for the bound input and verifies an ECDSA signature
// against it.
type TransactionSignatureChecker struct {
	tx        *wire.MsgTx
	nIn       int
	amount    int64
	sigHashFn SignatureHashFunc
}

// NewTransactionSignatureChecker returns a SignatureChecker bound to input
// nIn of tx, spending an output worth amount. A nil sigHashFn defaults to
// CalcSignatureHash.
func NewTransactionSignatureChecker(tx *wire.MsgTx, nIn int, amount int64,
	sigHashFn SignatureHashFunc) *TransactionSignatureChecker {

	if sigHashFn == nil {
		sigHashFn = CalcSignatureHash
	}
	return &TransactionSignatureChecker{
		tx:        tx,
		nIn:       nIn,
		amount:    amount,
		sigHashFn: sigHashFn,
	}
}

// CheckSig implements SignatureChecker.
func (c *TransactionSignatureChecker) CheckSig(sig Sig, pubKey PubKey,
	scriptCode Script) bool {

	if len(sig) < 1 {
		return false
	}

	hashType := SigHashType(sig[len(sig)-1])
	rawSig := sig[:len(sig)-1]

	parsedSig, err := ecdsa.ParseDERSignature(rawSig)
	if err != nil {
		return false
	}

	parsedPub, err := btcec.ParsePubKey(pubKey)
	if err != nil {
		return false
	}

	digest, err := c.sigHashFn(scriptCode, c.tx, c.nIn, hashType, c.amount)
	if err != nil {
		return false
	}

	return parsedSig.Verify(digest[:], parsedPub)
}

// dummyChecker is the SignatureChecker paired with DummySignatureCreator:
// it accepts any signature it is asked to verify, so no signature check
// fails for a dummy-signed scriptSig. VerifyScript's other checks (such as
// a PubKeyHash pubkey matching its hash) still apply.
type dummyChecker struct{}

// CheckSig implements SignatureChecker.
func (dummyChecker) CheckSig(_ Sig, _ PubKey, _ Script) bool {
	return true
}

// SignatureExtractorChecker wraps a real SignatureChecker and records
// every signature it accepts into a SignatureData, keyed by the KeyId of
// the pubkey it was checked against. It is what lets DataFromTransaction
// recover signing progress from an existing scriptSig: the extractor runs
// the scriptSig through VerifyScript with this checker installed and reads
// back whatever it recorded.
type SignatureExtractorChecker struct {
	inner SignatureChecker
	data  *SignatureData
}

// NewSignatureExtractorChecker returns a SignatureExtractorChecker that
// records accepted signatures into data, delegating the actual
// cryptographic check to inner.
func NewSignatureExtractorChecker(data *SignatureData,
	inner SignatureChecker) *SignatureExtractorChecker {

	return &SignatureExtractorChecker{inner: inner, data: data}
}

// CheckSig implements SignatureChecker. On success it records (sig,
// pubKey) into the underlying SignatureData, keyed by the pubkey's KeyId;
// an already-recorded key is left untouched rather than overwritten.
func (c *SignatureExtractorChecker) CheckSig(sig Sig, pubKey PubKey,
	scriptCode Script) bool {

	if !c.inner.CheckSig(sig, pubKey, scriptCode) {
		return false
	}

	keyID := pubKey.ID()
	if _, exists := c.data.Signatures[keyID]; !exists {
		if c.data.Signatures == nil {
			c.data.Signatures = make(map[KeyId]SigPair)
		}
		c.data.Signatures[keyID] = SigPair{
			PubKey: pubKey,
			Sig:    sig,
		}
	}

	return true
}
