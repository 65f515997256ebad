// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package psbt

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/gcash/bchwallet/txsign"
)

// ErrNoUtxoInfo is returned by SignPSBTInput when the input names neither
// a NonWitnessUtxo nor a WitnessUtxo: there is no locking script or
// amount to sign against.
var ErrNoUtxoInfo = errors.New("psbt: input has no previous-output information")

// ErrInputIndexRange is returned by SignPSBTInput when index is outside
// the bounds of p.Inputs.
var ErrInputIndexRange = errors.New("psbt: input index out of range")

// defaultSighashType is the sighash type SignPSBTInput assumes for an
// input whose SighashType field is unset.
const defaultSighashType = txsign.SigHashForkID | txsign.SigHashType(txscript.SigHashAll)

// SignPSBTInput attempts to advance the signing state of input index of p
// by one step, using provider for key material and solver to recognize
// the output's locking script. It is a direct composition of
// FillSignatureData, txsign.ProduceSignature, and FromSignatureData: the
// bridge a wallet's PSBT workflow actually calls.
//
// It returns whether the input is now complete. A false return is not an
// error: it means the input still needs more signatures, possibly from
// another party holding a different key.
func SignPSBTInput(provider txsign.SigningProvider, solver txsign.Solver,
	p *PartiallySignedTransaction, index int) (bool, error) {

	if index < 0 || index >= len(p.Inputs) {
		return false, ErrInputIndexRange
	}

	in := &p.Inputs[index]
	if in.IsFinalized() {
		return true, nil
	}

	pkScript, amount, err := prevOut(p, index)
	if err != nil {
		return false, err
	}

	hashType := in.SighashType
	if hashType == 0 {
		hashType = defaultSighashType
	}

	creator := txsign.NewTransactionSignatureCreator(
		p.UnsignedTx, index, amount, hashType, nil,
	)

	sd := FillSignatureData(in)

	complete := txsign.ProduceSignature(provider, creator, solver, pkScript, sd)

	FromSignatureData(in, sd)

	return complete, nil
}

// prevOut resolves the locking script and amount for input index of p,
// preferring WitnessUtxo when present since it avoids a full previous
// transaction lookup.
func prevOut(p *PartiallySignedTransaction, index int) (txsign.Script, int64, error) {
	in := &p.Inputs[index]

	if in.WitnessUtxo != nil {
		return txsign.Script(in.WitnessUtxo.PkScript), in.WitnessUtxo.Value, nil
	}

	if in.NonWitnessUtxo != nil {
		vout := p.UnsignedTx.TxIn[index].PreviousOutPoint.Index
		out, err := prevTxOut(in.NonWitnessUtxo, vout)
		if err != nil {
			return nil, 0, err
		}
		return txsign.Script(out.PkScript), out.Value, nil
	}

	return nil, 0, ErrNoUtxoInfo
}

// prevTxOut returns output vout of tx.
func prevTxOut(tx *wire.MsgTx, vout uint32) (*wire.TxOut, error) {
	if int(vout) >= len(tx.TxOut) {
		return nil, fmt.Errorf("psbt: previous output index %d out of range", vout)
	}
	return tx.TxOut[vout], nil
}
