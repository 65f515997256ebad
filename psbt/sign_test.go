// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package psbt

import (
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/gcash/bchwallet/txsign"
	"github.com/stretchr/testify/require"
)

func newKeyAndScript(t *testing.T) (*btcec.PrivateKey, txsign.PubKey, txsign.Script) {
	t.Helper()

	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	pub := txsign.PubKey(priv.PubKey().SerializeCompressed())

	addr, err := btcutil.NewAddressPubKeyHash(
		btcutil.Hash160(pub), &chaincfg.MainNetParams,
	)
	require.NoError(t, err)

	script, err := txscript.PayToAddrScript(addr)
	require.NoError(t, err)

	return priv, pub, txsign.Script(script)
}

func TestSignPSBTInputCompletesWithWitnessUtxo(t *testing.T) {
	t.Parallel()

	priv, pub, pkScript := newKeyAndScript(t)

	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(&wire.TxIn{PreviousOutPoint: wire.OutPoint{Index: 0}})
	tx.AddTxOut(wire.NewTxOut(90000, []byte{0x51}))

	p := New(tx)
	p.Inputs[0].WitnessUtxo = wire.NewTxOut(100000, pkScript)

	provider := txsign.NewMemoryProvider()
	provider.AddKey(priv, pub)
	solver := txsign.DefaultSolver(&chaincfg.MainNetParams)

	complete, err := SignPSBTInput(provider, solver, p, 0)
	require.NoError(t, err)
	require.True(t, complete)
	require.True(t, p.Inputs[0].IsFinalized())
}

func TestSignPSBTInputMissingUtxoInfo(t *testing.T) {
	t.Parallel()

	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(&wire.TxIn{PreviousOutPoint: wire.OutPoint{Index: 0}})
	tx.AddTxOut(wire.NewTxOut(90000, []byte{0x51}))

	p := New(tx)

	provider := txsign.NewMemoryProvider()
	solver := txsign.DefaultSolver(&chaincfg.MainNetParams)

	_, err := SignPSBTInput(provider, solver, p, 0)
	require.ErrorIs(t, err, ErrNoUtxoInfo)
}

func TestSignPSBTInputAlreadyFinalized(t *testing.T) {
	t.Parallel()

	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(&wire.TxIn{PreviousOutPoint: wire.OutPoint{Index: 0}})
	tx.AddTxOut(wire.NewTxOut(90000, []byte{0x51}))

	p := New(tx)
	p.Inputs[0].FinalScriptSig = txsign.Script{0x01}

	provider := txsign.NewMemoryProvider()
	solver := txsign.DefaultSolver(&chaincfg.MainNetParams)

	complete, err := SignPSBTInput(provider, solver, p, 0)
	require.NoError(t, err)
	require.True(t, complete)
}

func TestSignPSBTInputIndexOutOfRange(t *testing.T) {
	t.Parallel()

	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(&wire.TxIn{PreviousOutPoint: wire.OutPoint{Index: 0}})
	tx.AddTxOut(wire.NewTxOut(90000, []byte{0x51}))

	p := New(tx)

	provider := txsign.NewMemoryProvider()
	solver := txsign.DefaultSolver(&chaincfg.MainNetParams)

	_, err := SignPSBTInput(provider, solver, p, 5)
	require.ErrorIs(t, err, ErrInputIndexRange)
}
