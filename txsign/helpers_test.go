// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txsign

import (
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
)

// newTestKey returns a fresh private key and its compressed pubkey.
func newTestKey(t *testing.T) (*btcec.PrivateKey, PubKey) {
	t.Helper()

	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	pub := PubKey(priv.PubKey().SerializeCompressed())
	return priv, pub
}

// p2pkhScript builds a standard pay-to-pubkey-hash locking script for pub.
func p2pkhScript(t *testing.T, pub PubKey) Script {
	t.Helper()

	addr, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(pub), testParams)
	require.NoError(t, err)

	script, err := txscript.PayToAddrScript(addr)
	require.NoError(t, err)
	return Script(script)
}

// p2shScript builds a P2SH locking script embedding redeem.
func p2shScript(t *testing.T, redeem Script) Script {
	t.Helper()

	addr, err := btcutil.NewAddressScriptHash(redeem, testParams)
	require.NoError(t, err)

	script, err := txscript.PayToAddrScript(addr)
	require.NoError(t, err)
	return Script(script)
}

// spendingTx returns a single-input, single-output transaction spending
// prevOut, suitable as the tx argument to ProduceSignature/CreateSig in
// tests.
func spendingTx() *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{Index: 0},
	})
	tx.AddTxOut(wire.NewTxOut(90000, []byte{txscript.OP_TRUE}))
	return tx
}

var testParams = &chaincfg.MainNetParams
