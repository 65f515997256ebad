// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txsign

import (
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// dummySigLen is the length of a worst-case DER-encoded ECDSA signature
// (a 33-byte r, a 32-byte s, sequence/int framing) plus the trailing
// sighash-type byte. SignatureCreator.CreateSig never produces a longer
// signature than this, which makes DummySignatureCreator's output a safe
// upper bound for fee estimation.
const dummySigLen = 72

// SignatureCreator produces a signature for a single key, and exposes the
// SignatureChecker that should be used to verify the script it helps
// build. Pairing the two together is what lets DummySignatureCreator swap
// in a checker that accepts everything it signs.
//
// Real key custody and the exact ECDSA signing routine live behind this
// interface, not in the core itself.
type SignatureCreator interface {
	// CreateSig attempts to produce a signature for keyID over scriptCode.
	// address carries the serialized pubkey resolved for keyID, which may
	// be empty when no pubkey is known. A false return means no
	// signature could be produced (e.g. the key is unknown to the
	// provider); it is not an error.
	CreateSig(provider SigningProvider, keyID KeyId, scriptCode Script,
		address []byte) (Sig, bool)

	// Checker returns the SignatureChecker that accepts signatures this
	// creator produces.
	Checker() SignatureChecker
}

// TransactionSignatureCreator is the real SignatureCreator: it signs the
// digest CalcSignatureHash produces for a specific input of a specific
// transaction.
type TransactionSignatureCreator struct {
	tx        *wire.MsgTx
	nIn       int
	amount    int64
	hashType  SigHashType
	sigHashFn SignatureHashFunc
}

// NewTransactionSignatureCreator returns a SignatureCreator bound to input
// nIn of tx, spending an output worth amount, signing with hashType. A nil
// sigHashFn defaults to CalcSignatureHash.
func NewTransactionSignatureCreator(tx *wire.MsgTx, nIn int, amount int64,
	hashType SigHashType, sigHashFn SignatureHashFunc) *TransactionSignatureCreator {

	if sigHashFn == nil {
		sigHashFn = CalcSignatureHash
	}
	return &TransactionSignatureCreator{
		tx:        tx,
		nIn:       nIn,
		amount:    amount,
		hashType:  hashType,
		sigHashFn: sigHashFn,
	}
}

// CreateSig implements SignatureCreator.
func (c *TransactionSignatureCreator) CreateSig(provider SigningProvider,
	keyID KeyId, scriptCode Script, _ []byte) (Sig, bool) {

	priv, ok := provider.GetKey(keyID)
	if !ok {
		return nil, false
	}

	digest, err := c.sigHashFn(scriptCode, c.tx, c.nIn, c.hashType, c.amount)
	if err != nil {
		log.Debugf("txsign: sighash for input %d failed: %v", c.nIn, err)
		return nil, false
	}

	sig := ecdsa.Sign(priv, digest[:])

	out := make(Sig, 0, dummySigLen)
	out = append(out, sig.Serialize()...)
	out = append(out, byte(c.hashType))

	return out, true
}

// Checker implements SignatureCreator.
func (c *TransactionSignatureCreator) Checker() SignatureChecker {
	return NewTransactionSignatureChecker(c.tx, c.nIn, c.amount, c.sigHashFn)
}

// DummySignatureCreator manufactures placeholder signatures of the exact
// maximum size a real one could reach, so callers can measure or reserve
// scriptSig space (fee estimation, PSBT size budgeting) without any key
// material at hand. It accepts every key ID the caller asks about.
type DummySignatureCreator struct{}

// NewDummySignatureCreator returns a DummySignatureCreator.
func NewDummySignatureCreator() *DummySignatureCreator {
	return &DummySignatureCreator{}
}

// derInteger encodes a DER INTEGER of the given value-length, whose value
// is 0x01 followed by zero padding, e.g. derInteger(33) for dummyDERSkeleton's
// r component.
func derInteger(valueLen int) []byte {
	out := make([]byte, 2+valueLen)
	out[0] = 0x02
	out[1] = byte(valueLen)
	out[2] = 0x01
	return out
}

// dummyDERSkeleton is a maximally-sized, syntactically valid DER ECDSA
// signature: SEQUENCE holding a 33-byte INTEGER r and a 32-byte INTEGER s,
// each led by 0x01 and zero-padded out to its maximum length. The trailing
// sighash-type byte is appended by CreateSig below.
var dummyDERSkeleton = func() []byte {
	r := derInteger(33)
	s := derInteger(32)

	out := make([]byte, 0, 2+len(r)+len(s))
	out = append(out, 0x30, byte(len(r)+len(s)))
	out = append(out, r...)
	out = append(out, s...)
	return out
}()

// CreateSig implements SignatureCreator. It always succeeds, regardless of
// whether provider actually holds keyID, producing the same fixed-size DER
// skeleton every time.
func (*DummySignatureCreator) CreateSig(_ SigningProvider, _ KeyId,
	_ Script, _ []byte) (Sig, bool) {

	out := make(Sig, 0, dummySigLen)
	out = append(out, dummyDERSkeleton...)
	out = append(out, byte(SigHashForkID|SigHashType(txscript.SigHashAll)))

	return out, true
}

// Checker implements SignatureCreator.
func (*DummySignatureCreator) Checker() SignatureChecker {
	return dummyChecker{}
}
