// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txsign

import "github.com/btcsuite/btcd/btcec/v2"

// SigningProvider is a read-only lookup capability exposing private keys,
// public keys, and embedded scripts by their identifier. Any lookup may
// miss; a miss is a normal, non-error result, never a fault.
//
// A SigningProvider is externally owned. The core never mutates one, and
// implementations are expected to be safe for concurrent read access, even
// though the core itself makes no concurrency guarantees of its own.
type SigningProvider interface {
	// GetKey looks up the private key for the given KeyId.
	GetKey(id KeyId) (*btcec.PrivateKey, bool)

	// GetPubKey looks up the public key for the given KeyId.
	GetPubKey(id KeyId) (PubKey, bool)

	// GetScript looks up the embedded ("redeem") script for the given
	// ScriptId.
	GetScript(id ScriptId) (Script, bool)
}

// MemoryProvider is a simple in-memory SigningProvider, suitable for tests
// and for wallets that keep their keys unlocked in process memory. The
// zero value is a valid, empty provider: every lookup misses.
type MemoryProvider struct {
	keys    map[KeyId]*btcec.PrivateKey
	pubKeys map[KeyId]PubKey
	scripts map[ScriptId]Script
}

// NewMemoryProvider returns an empty MemoryProvider ready for use.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		keys:    make(map[KeyId]*btcec.PrivateKey),
		pubKeys: make(map[KeyId]PubKey),
		scripts: make(map[ScriptId]Script),
	}
}

// AddKey indexes priv under the KeyId of pub, and pub itself under the
// same id, so both GetKey and GetPubKey succeed for it.
func (m *MemoryProvider) AddKey(priv *btcec.PrivateKey, pub PubKey) {
	id := pub.ID()
	if m.keys == nil {
		m.keys = make(map[KeyId]*btcec.PrivateKey)
	}
	if m.pubKeys == nil {
		m.pubKeys = make(map[KeyId]PubKey)
	}
	m.keys[id] = priv
	m.pubKeys[id] = pub
}

// AddKeyOnly indexes priv under keyID without any accompanying pubkey, so
// GetKey succeeds for keyID while GetPubKey still misses. This models a
// provider that knows a key's identifier and can sign with it, but cannot
// independently produce the serialized pubkey for it.
func (m *MemoryProvider) AddKeyOnly(priv *btcec.PrivateKey, keyID KeyId) {
	if m.keys == nil {
		m.keys = make(map[KeyId]*btcec.PrivateKey)
	}
	m.keys[keyID] = priv
}

// AddScript indexes script under its own ScriptId.
func (m *MemoryProvider) AddScript(script Script) {
	if m.scripts == nil {
		m.scripts = make(map[ScriptId]Script)
	}
	m.scripts[script.Hash160()] = script
}

// GetKey implements SigningProvider.
func (m *MemoryProvider) GetKey(id KeyId) (*btcec.PrivateKey, bool) {
	if m == nil {
		return nil, false
	}
	k, ok := m.keys[id]
	return k, ok
}

// GetPubKey implements SigningProvider.
func (m *MemoryProvider) GetPubKey(id KeyId) (PubKey, bool) {
	if m == nil {
		return nil, false
	}
	p, ok := m.pubKeys[id]
	return p, ok
}

// GetScript implements SigningProvider.
func (m *MemoryProvider) GetScript(id ScriptId) (Script, bool) {
	if m == nil {
		return nil, false
	}
	s, ok := m.scripts[id]
	return s, ok
}
