// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package psbt

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/wire"
	"github.com/gcash/bchwallet/txsign"
)

// ErrTxMismatch is returned when merging two PartiallySignedTransaction
// values whose UnsignedTx fields do not serialize identically: they
// cannot describe the same spend, and merging them would be meaningless.
var ErrTxMismatch = errors.New("psbt: unsigned transactions do not match")

// ErrShapeMismatch is returned when merging two PartiallySignedTransaction
// values with a different number of inputs or outputs.
var ErrShapeMismatch = errors.New("psbt: input/output counts do not match")

// PSBTInput carries everything known about one input of a
// PartiallySignedTransaction: the output it spends, the scripts needed to
// spend it, and whatever partial signatures have been collected for it so
// far. FromSignatureData clears PartialSigs, Bip32Derivs, RedeemScript,
// and SighashType once it finalizes an input; Merge does not re-derive that
// invariant on its own, since a finalized input may still be merging in
// a peer's independently-collected metadata.
type PSBTInput struct {
	// NonWitnessUtxo is the full previous transaction, present when the
	// signer needs to verify the amount being spent independently of
	// WitnessUtxo.
	NonWitnessUtxo *wire.MsgTx

	// WitnessUtxo is just the previous output being spent: its value
	// and locking script. Either this or NonWitnessUtxo (or both) must
	// be set before SignPSBTInput can compute a sighash.
	WitnessUtxo *wire.TxOut

	// PartialSigs holds every partial signature collected for this
	// input so far, keyed by the signer's KeyId.
	PartialSigs map[txsign.KeyId]txsign.SigPair

	// SighashType is the sighash type every party signing this input
	// must use. Zero means unset; the first signer to fill it binds it
	// for every subsequent signer.
	SighashType txsign.SigHashType

	// RedeemScript is the embedded script for a ScriptHash output.
	RedeemScript txsign.Script

	// Bip32Derivs records, for pubkeys this input's locking script
	// names, the BIP32 key-origin metadata a signer needs to recognize
	// which of its own keys can sign: the pubkey itself, its master key
	// fingerprint, and its derivation path. Keyed by KeyId rather than
	// the pubkey directly since a PubKey's underlying byte slice cannot
	// serve as a Go map key.
	Bip32Derivs map[txsign.KeyId]KeyOrigin

	// FinalScriptSig is the finished, satisfying scriptSig. Once this
	// is set the input is finalized: PartialSigs, Bip32Derivs,
	// RedeemScript, and SighashType are no longer meaningful and are
	// cleared.
	FinalScriptSig txsign.Script

	// Unknown holds key-value pairs this implementation does not
	// recognize, keyed by their raw serialized key, preserved verbatim
	// across merges so round-tripping through a wire codec this package
	// doesn't implement never silently drops data.
	Unknown map[string][]byte
}

// KeyOrigin records a public key's BIP32 master key fingerprint and
// derivation path, alongside the pubkey itself so a holder of only the
// KeyOrigin can still recover which key it describes.
type KeyOrigin struct {
	PubKey               txsign.PubKey
	MasterKeyFingerprint uint32
	Path                 []uint32
}

// newPSBTInput returns a PSBTInput with its maps ready for use.
func newPSBTInput() PSBTInput {
	return PSBTInput{
		PartialSigs: make(map[txsign.KeyId]txsign.SigPair),
		Bip32Derivs: make(map[txsign.KeyId]KeyOrigin),
		Unknown:     make(map[string][]byte),
	}
}

// IsFinalized reports whether this input already carries a finished
// scriptSig.
func (in *PSBTInput) IsFinalized() bool {
	return len(in.FinalScriptSig) > 0
}

// Merge combines other into in, in place. Every field is adopted only if
// in does not already carry it; every map is a union, other's entry
// winning only where in has none of its own. Merge never clears anything
// in already holds, including once in is finalized: an already-finalized
// input still unions peer metadata it may not have seen before, so no
// forward-compatible data is lost just because this input happened to
// finalize first.
func (in *PSBTInput) Merge(other *PSBTInput) error {
	if in.NonWitnessUtxo == nil {
		in.NonWitnessUtxo = other.NonWitnessUtxo
	}
	if in.WitnessUtxo == nil {
		in.WitnessUtxo = other.WitnessUtxo
	}
	if len(in.RedeemScript) == 0 {
		in.RedeemScript = other.RedeemScript
	}
	if in.SighashType == 0 {
		in.SighashType = other.SighashType
	}
	if len(in.FinalScriptSig) == 0 {
		in.FinalScriptSig = other.FinalScriptSig
	}

	if in.PartialSigs == nil {
		in.PartialSigs = make(map[txsign.KeyId]txsign.SigPair)
	}
	for keyID, pair := range other.PartialSigs {
		if _, exists := in.PartialSigs[keyID]; !exists {
			in.PartialSigs[keyID] = pair
		}
	}

	if in.Bip32Derivs == nil {
		in.Bip32Derivs = make(map[txsign.KeyId]KeyOrigin)
	}
	for keyID, origin := range other.Bip32Derivs {
		if _, exists := in.Bip32Derivs[keyID]; !exists {
			in.Bip32Derivs[keyID] = origin
		}
	}

	if in.Unknown == nil {
		in.Unknown = make(map[string][]byte)
	}
	for k, v := range other.Unknown {
		if _, exists := in.Unknown[k]; !exists {
			in.Unknown[k] = v
		}
	}

	return nil
}

// PSBTOutput carries the scripts and key metadata relevant to one output
// of a PartiallySignedTransaction. Outputs never finalize the way inputs
// do; they exist purely to help a change or multisig output's eventual
// signer recognize it.
type PSBTOutput struct {
	RedeemScript txsign.Script
	Bip32Derivs  map[txsign.KeyId]KeyOrigin
	Unknown      map[string][]byte
}

// newPSBTOutput returns a PSBTOutput with its maps ready for use.
func newPSBTOutput() PSBTOutput {
	return PSBTOutput{
		Bip32Derivs: make(map[txsign.KeyId]KeyOrigin),
		Unknown:     make(map[string][]byte),
	}
}

// Merge combines other into out, in place, adopting whatever out does not
// already have.
func (out *PSBTOutput) Merge(other *PSBTOutput) error {
	if len(out.RedeemScript) == 0 {
		out.RedeemScript = other.RedeemScript
	}

	if out.Bip32Derivs == nil {
		out.Bip32Derivs = make(map[txsign.KeyId]KeyOrigin)
	}
	for keyID, origin := range other.Bip32Derivs {
		if _, exists := out.Bip32Derivs[keyID]; !exists {
			out.Bip32Derivs[keyID] = origin
		}
	}

	if out.Unknown == nil {
		out.Unknown = make(map[string][]byte)
	}
	for k, v := range other.Unknown {
		if _, exists := out.Unknown[k]; !exists {
			out.Unknown[k] = v
		}
	}

	return nil
}

// PartiallySignedTransaction is the unsigned transaction, plus one
// PSBTInput per input and one PSBTOutput per output, that several signers
// cooperate on by exchanging and merging copies of it.
type PartiallySignedTransaction struct {
	UnsignedTx *wire.MsgTx
	Inputs     []PSBTInput
	Outputs    []PSBTOutput
	Unknown    map[string][]byte
}

// New returns a PartiallySignedTransaction wrapping tx, with one empty
// PSBTInput and PSBTOutput per input and output of tx. tx is expected to
// carry no scriptSigs or witnesses of its own; nothing in this package
// writes scriptSigs into tx, and a finished one is kept in the matching
// input's FinalScriptSig.
func New(tx *wire.MsgTx) *PartiallySignedTransaction {
	p := &PartiallySignedTransaction{
		UnsignedTx: tx,
		Inputs:     make([]PSBTInput, len(tx.TxIn)),
		Outputs:    make([]PSBTOutput, len(tx.TxOut)),
		Unknown:    make(map[string][]byte),
	}
	for i := range p.Inputs {
		p.Inputs[i] = newPSBTInput()
	}
	for i := range p.Outputs {
		p.Outputs[i] = newPSBTOutput()
	}
	return p
}

// Merge combines other into p, in place, input by input and output by
// output. It fails if the two do not describe the same unsigned
// transaction or do not have the same shape; a partial, inconsistent
// merge is never left behind on error.
func (p *PartiallySignedTransaction) Merge(other *PartiallySignedTransaction) error {
	if !sameTx(p.UnsignedTx, other.UnsignedTx) {
		return ErrTxMismatch
	}
	if len(p.Inputs) != len(other.Inputs) || len(p.Outputs) != len(other.Outputs) {
		return ErrShapeMismatch
	}

	for i := range p.Inputs {
		if err := p.Inputs[i].Merge(&other.Inputs[i]); err != nil {
			return fmt.Errorf("psbt: merging input %d: %w", i, err)
		}
	}
	for i := range p.Outputs {
		if err := p.Outputs[i].Merge(&other.Outputs[i]); err != nil {
			return fmt.Errorf("psbt: merging output %d: %w", i, err)
		}
	}

	if p.Unknown == nil {
		p.Unknown = make(map[string][]byte)
	}
	for k, v := range other.Unknown {
		if _, exists := p.Unknown[k]; !exists {
			p.Unknown[k] = v
		}
	}

	return nil
}

// sameTx reports whether a and b hash to the same transaction ID.
func sameTx(a, b *wire.MsgTx) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.TxHash() == b.TxHash()
}
