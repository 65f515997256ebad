// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txsign

import (
	"testing"

	"github.com/btcsuite/btcd/txscript"
	"github.com/stretchr/testify/require"
)

func TestTransactionSignatureCheckerRoundTrip(t *testing.T) {
	t.Parallel()

	priv, pub := newTestKey(t)
	script := p2pkhScript(t, pub)

	tx := spendingTx()
	hashType := SigHashForkID | SigHashType(txscript.SigHashAll)
	creator := NewTransactionSignatureCreator(tx, 0, 90000, hashType, nil)

	provider := NewMemoryProvider()
	provider.AddKey(priv, pub)

	sig, ok := creator.CreateSig(provider, pub.ID(), script, pub)
	require.True(t, ok)

	checker := creator.Checker()
	require.True(t, checker.CheckSig(sig, pub, script))
}

func TestCalcSignatureHashRejectsMissingForkID(t *testing.T) {
	t.Parallel()

	_, pub := newTestKey(t)
	script := p2pkhScript(t, pub)
	tx := spendingTx()

	_, err := CalcSignatureHash(script, tx, 0, SigHashType(txscript.SigHashAll), 90000)
	require.ErrorIs(t, err, ErrMissingForkID)
}

func TestDummyCreatorAndCheckerAcceptAnything(t *testing.T) {
	t.Parallel()

	creator := NewDummySignatureCreator()
	provider := NewMemoryProvider()

	sig, ok := creator.CreateSig(provider, keyID(1), Script{0x01}, nil)
	require.True(t, ok)
	require.Len(t, sig, dummySigLen)

	checker := creator.Checker()
	require.True(t, checker.CheckSig(sig, nil, nil))
}

func TestSignatureExtractorCheckerRecordsOnlyAccepted(t *testing.T) {
	t.Parallel()

	priv, pub := newTestKey(t)
	script := p2pkhScript(t, pub)

	tx := spendingTx()
	hashType := SigHashForkID | SigHashType(txscript.SigHashAll)
	creator := NewTransactionSignatureCreator(tx, 0, 90000, hashType, nil)

	provider := NewMemoryProvider()
	provider.AddKey(priv, pub)

	sig, ok := creator.CreateSig(provider, pub.ID(), script, pub)
	require.True(t, ok)

	data := NewSignatureData()
	extractor := NewSignatureExtractorChecker(data, creator.Checker())

	require.False(t, extractor.CheckSig(Sig{0x00}, pub, script))
	require.Empty(t, data.Signatures)

	require.True(t, extractor.CheckSig(sig, pub, script))
	require.Len(t, data.Signatures, 1)
	require.Equal(t, sig, data.Signatures[pub.ID()].Sig)
}
