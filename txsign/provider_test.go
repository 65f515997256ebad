// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txsign

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryProviderLookups(t *testing.T) {
	t.Parallel()

	priv, pub := newTestKey(t)
	script := Script{0x51, 0x52, 0x53}

	provider := NewMemoryProvider()
	provider.AddKey(priv, pub)
	provider.AddScript(script)

	gotKey, ok := provider.GetKey(pub.ID())
	require.True(t, ok)
	require.Equal(t, priv, gotKey)

	gotPub, ok := provider.GetPubKey(pub.ID())
	require.True(t, ok)
	require.Equal(t, pub, gotPub)

	gotScript, ok := provider.GetScript(script.Hash160())
	require.True(t, ok)
	require.Equal(t, script, gotScript)
}

func TestMemoryProviderZeroValueMisses(t *testing.T) {
	t.Parallel()

	var provider MemoryProvider

	_, ok := provider.GetKey(keyID(1))
	require.False(t, ok)

	_, ok = provider.GetPubKey(keyID(1))
	require.False(t, ok)

	_, ok = provider.GetScript(ScriptId{})
	require.False(t, ok)
}

func TestNilMemoryProviderMisses(t *testing.T) {
	t.Parallel()

	var provider *MemoryProvider

	_, ok := provider.GetKey(keyID(1))
	require.False(t, ok)
}
