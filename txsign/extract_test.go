// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txsign

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/stretchr/testify/require"
)

func TestDataFromTransactionRoundTripsPubKeyHash(t *testing.T) {
	t.Parallel()

	priv, pub := newTestKey(t)
	script := p2pkhScript(t, pub)

	provider := NewMemoryProvider()
	provider.AddKey(priv, pub)

	tx := spendingTx()
	hashType := SigHashForkID | SigHashType(txscript.SigHashAll)
	creator := NewTransactionSignatureCreator(tx, 0, 90000, hashType, nil)
	solver := DefaultSolver(testParams)

	sd := NewSignatureData()
	require.True(t, ProduceSignature(provider, creator, solver, script, sd))

	extracted := DataFromTransaction(solver, sd.ScriptSig, script, creator.Checker())

	require.True(t, extracted.Complete)
	require.Equal(t, sd.ScriptSig, extracted.ScriptSig)
}

func TestDataFromTransactionRecoversPartialMultiSig(t *testing.T) {
	t.Parallel()

	priv1, pub1 := newTestKey(t)
	_, pub2 := newTestKey(t)
	_, pub3 := newTestKey(t)

	redeem, err := txscript.MultiSigScript(
		[]*btcutil.AddressPubKey{
			mustAddressPubKey(t, pub1),
			mustAddressPubKey(t, pub2),
			mustAddressPubKey(t, pub3),
		}, 2,
	)
	require.NoError(t, err)

	script := p2shScript(t, Script(redeem))

	provider := NewMemoryProvider()
	provider.AddKey(priv1, pub1)
	provider.AddScript(Script(redeem))

	tx := spendingTx()
	hashType := SigHashForkID | SigHashType(txscript.SigHashAll)
	creator := NewTransactionSignatureCreator(tx, 0, 90000, hashType, nil)
	solver := DefaultSolver(testParams)

	sd := NewSignatureData()
	complete := ProduceSignature(provider, creator, solver, script, sd)
	require.False(t, complete)
	require.Len(t, sd.Signatures, 1)

	extracted := DataFromTransaction(solver, sd.ScriptSig, script, creator.Checker())

	require.False(t, extracted.Complete)
	require.Len(t, extracted.Signatures, 1)
	require.Equal(t, Script(redeem), extracted.RedeemScript)

	for keyID, pair := range sd.Signatures {
		got, ok := extracted.Signatures[keyID]
		require.True(t, ok)
		require.Equal(t, pair.Sig, got.Sig)
	}
}

func TestDataFromTransactionSkipsUnmatchedMultiSigCandidate(t *testing.T) {
	t.Parallel()

	_, pub1 := newTestKey(t)
	_, pub2 := newTestKey(t)
	priv3, pub3 := newTestKey(t)

	redeem, err := txscript.MultiSigScript(
		[]*btcutil.AddressPubKey{
			mustAddressPubKey(t, pub1),
			mustAddressPubKey(t, pub2),
			mustAddressPubKey(t, pub3),
		}, 2,
	)
	require.NoError(t, err)

	script := p2shScript(t, Script(redeem))

	tx := spendingTx()
	hashType := SigHashForkID | SigHashType(txscript.SigHashAll)
	creator := NewTransactionSignatureCreator(tx, 0, 90000, hashType, nil)
	checker := creator.Checker()

	// A signature genuinely produced by an unrelated key, claimed under
	// pub2's id: well-formed DER, but it will not verify against pub1,
	// pub2, or pub3. It stands in for a candidate that cannot be matched
	// by walking forward from the cursor.
	unrelatedPriv, _ := newTestKey(t)
	providerUnrelated := NewMemoryProvider()
	providerUnrelated.AddKey(unrelatedPriv, pub2)
	badSig, ok := creator.CreateSig(providerUnrelated, pub2.ID(), Script(redeem), pub2)
	require.True(t, ok)

	provider3 := NewMemoryProvider()
	provider3.AddKey(priv3, pub3)
	sig3, ok := creator.CreateSig(provider3, pub3.ID(), Script(redeem), pub3)
	require.True(t, ok)

	builder := txscript.NewScriptBuilder()
	builder.AddOp(txscript.OP_0)
	builder.AddData(badSig)
	builder.AddData(sig3)
	builder.AddData(redeem)
	scriptSig, err := builder.Script()
	require.NoError(t, err)

	extracted := DataFromTransaction(DefaultSolver(testParams), Script(scriptSig), script, checker)

	require.False(t, extracted.Complete)
	require.Len(t, extracted.Signatures, 1)

	got, ok := extracted.Signatures[pub3.ID()]
	require.True(t, ok)
	require.Equal(t, Sig(sig3), got.Sig)

	_, found1 := extracted.Signatures[pub1.ID()]
	require.False(t, found1)
}

func TestDataFromTransactionEmptyScriptSig(t *testing.T) {
	t.Parallel()

	_, pub := newTestKey(t)
	script := p2pkhScript(t, pub)

	tx := spendingTx()
	checker := NewTransactionSignatureChecker(tx, 0, 90000, nil)
	solver := DefaultSolver(testParams)

	extracted := DataFromTransaction(solver, nil, script, checker)

	require.False(t, extracted.Complete)
	require.Empty(t, extracted.Signatures)
}
