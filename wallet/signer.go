// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"fmt"

	"github.com/gcash/bchwallet/psbt"
	"github.com/gcash/bchwallet/txsign"
)

// Signer drives the txsign and psbt packages on behalf of a caller that
// holds key material, exposing the collaborative PSBT workflow a wallet
// sits on top of: signing whatever inputs it can, combining another
// party's attempt, and checking whether a packet is ready to finalize.
//
// A Signer holds no transaction state of its own; every method takes the
// PartiallySignedTransaction it operates on explicitly, so one Signer can
// service any number of packets concurrently.
type Signer struct {
	provider txsign.SigningProvider
	solver   txsign.Solver
}

// NewSigner returns a Signer that looks up key material through provider
// and recognizes locking-script templates through solver.
func NewSigner(provider txsign.SigningProvider, solver txsign.Solver) *Signer {
	return &Signer{provider: provider, solver: solver}
}

// SignPsbt advances every not-yet-finalized input of packet that this
// signer's provider holds key material for. It returns how many inputs
// became newly complete as a result of this call.
func (s *Signer) SignPsbt(packet *psbt.PartiallySignedTransaction) (int, error) {
	completed := 0

	for i := range packet.Inputs {
		if packet.Inputs[i].IsFinalized() {
			continue
		}

		complete, err := psbt.SignPSBTInput(s.provider, s.solver, packet, i)
		if err != nil {
			return completed, fmt.Errorf("wallet: signing input %d: %w", i, err)
		}
		if complete {
			completed++
		}
	}

	log.Debugf("signed %d of %d input(s)", completed, len(packet.Inputs))

	return completed, nil
}

// CombinePsbt merges other into packet, input by input and output by
// output, adopting whatever signing progress other has that packet does
// not already have. It does not attempt to sign anything itself.
func (s *Signer) CombinePsbt(packet, other *psbt.PartiallySignedTransaction) error {
	if err := packet.Merge(other); err != nil {
		return fmt.Errorf("wallet: combining packets: %w", err)
	}
	return nil
}

// FinalizePsbt reports whether every input of packet already carries a
// finished scriptSig, i.e. the transaction is ready to be extracted and
// broadcast. It performs no signing of its own; call SignPsbt first.
func (s *Signer) FinalizePsbt(packet *psbt.PartiallySignedTransaction) bool {
	for i := range packet.Inputs {
		if !packet.Inputs[i].IsFinalized() {
			return false
		}
	}
	return true
}
