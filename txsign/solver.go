// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txsign

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// TemplateTag is the closed set of standard output template shapes the
// core recognizes. It is produced by a Solver and is the sole basis for
// every downstream dispatch decision; there is no open-ended class
// hierarchy beneath it.
type TemplateTag int

const (
	// NonStandard covers every locking script this core does not
	// recognize.
	NonStandard TemplateTag = iota

	// NullData is an OP_RETURN output; it carries no spending
	// authorization and is never satisfiable.
	NullData

	// PubKeyTag is `<pubkey> OP_CHECKSIG`.
	PubKeyTag

	// PubKeyHash is `OP_DUP OP_HASH160 <20> OP_EQUALVERIFY OP_CHECKSIG`.
	PubKeyHash

	// ScriptHash is `OP_HASH160 <20> OP_EQUAL`, i.e. P2SH.
	ScriptHash

	// MultiSig is `<m> <pk1>...<pkn> <n> OP_CHECKMULTISIG`.
	MultiSig
)

// String implements fmt.Stringer for TemplateTag.
func (t TemplateTag) String() string {
	switch t {
	case NonStandard:
		return "nonstandard"
	case NullData:
		return "null-data"
	case PubKeyTag:
		return "pubkey"
	case PubKeyHash:
		return "pubkeyhash"
	case ScriptHash:
		return "scripthash"
	case MultiSig:
		return "multisig"
	default:
		return "unknown"
	}
}

// Solver recognizes a locking script's template shape and extracts its
// literal data pushes. Failure to recognize a script is not an error: it
// is reported as (NonStandard, nil, false). An OP_RETURN output is
// reported as (NullData, nil, false), since it is never satisfiable.
//
// DefaultSolver below is the reference implementation, built on
// btcd/txscript's own script classifier.
type Solver func(script Script) (tag TemplateTag, solutions [][]byte, ok bool)

// DefaultSolver returns a Solver built on txscript.ExtractPkScriptAddrs,
// dispatching on the script class it reports. chainParams only affects how addresses
// are rendered internally; it has no bearing on the raw pushes returned.
func DefaultSolver(chainParams *chaincfg.Params) Solver {
	return func(script Script) (TemplateTag, [][]byte, bool) {
		class, addrs, nRequired, err := txscript.ExtractPkScriptAddrs(
			script, chainParams,
		)
		if err != nil {
			return NonStandard, nil, false
		}

		switch class {
		case txscript.NonStandardTy:
			return NonStandard, nil, false

		case txscript.NullDataTy:
			return NullData, nil, false

		case txscript.PubKeyTy:
			if len(addrs) != 1 {
				return NonStandard, nil, false
			}
			return PubKeyTag, [][]byte{addrs[0].ScriptAddress()}, true

		case txscript.PubKeyHashTy:
			if len(addrs) != 1 {
				return NonStandard, nil, false
			}
			return PubKeyHash, [][]byte{addrs[0].ScriptAddress()}, true

		case txscript.ScriptHashTy:
			if len(addrs) != 1 {
				return NonStandard, nil, false
			}
			return ScriptHash, [][]byte{addrs[0].ScriptAddress()}, true

		case txscript.MultiSigTy:
			solutions := make([][]byte, 0, len(addrs)+2)
			solutions = append(solutions, []byte{byte(nRequired)})
			for _, addr := range addrs {
				solutions = append(solutions, addr.ScriptAddress())
			}
			solutions = append(solutions, []byte{byte(len(addrs))})
			return MultiSig, solutions, true

		default:
			return NonStandard, nil, false
		}
	}
}
