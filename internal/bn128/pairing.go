// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bn128

import (
	"github.com/ava-labs/altbn128/params"
	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// Pairing implements ECPAIRING (address 0x08): input -> 32 bytes, the
// big-endian encoding of 1 if the product of the optimal-Ate pairings
// of the decoded (A_i, B_i) ∈ G1 × G2 pairs equals the Gt identity,
// and 0 otherwise. An empty input is valid and yields 1.
type Pairing struct {
	Fork params.HardFork
}

// true32 and false32 are the two possible ECPAIRING outputs.
var (
	true32  = append(make([]byte, 31), 1)
	false32 = make([]byte, 32)
)

// RequiredGas returns base + perPoint*n, where n = len(input)/192, for
// the configured hard fork. ok is false if that computation overflows
// a uint64 (spec.md's GasOverflow) — unreachable for any input that
// could exist in memory, but checked per spec.md §6's contract.
func (c *Pairing) RequiredGas(input []byte) (uint64, bool) {
	n := uint64(len(input)) / pairElementLen
	return c.Fork.Bn256PairingGas(n)
}

// Run validates the input length, decodes each 192-byte element, and
// reports whether the product of their pairings is the Gt identity.
// The len(input)%192 != 0 case is detected here, after the gas gate in
// RequiredGas has already run, per spec.md §4.1/§4.4.
func (c *Pairing) Run(input []byte) ([]byte, error) {
	if len(input)%pairElementLen != 0 {
		return nil, ErrInvalidPairingInputLength
	}

	n := len(input) / pairElementLen
	g1s := make([]bn254.G1Affine, 0, n)
	g2s := make([]bn254.G2Affine, 0, n)

	for i := 0; i < n; i++ {
		elem, err := decodePairingElement(input[i*pairElementLen : (i+1)*pairElementLen])
		if err != nil {
			return nil, err
		}
		// Pairing with either side at infinity always contributes the
		// Gt identity to the product, so it can be dropped from the
		// batch fed to PairingCheck.
		if elem.a.IsInfinity() || elem.b.IsInfinity() {
			continue
		}
		g1s = append(g1s, elem.a)
		g2s = append(g2s, elem.b)
	}

	// An empty batch is the empty product, i.e. the Gt identity;
	// PairingCheck itself rejects zero-length input.
	if len(g1s) == 0 {
		return true32, nil
	}

	ok, err := bn254.PairingCheck(g1s, g2s)
	if err != nil {
		return nil, err
	}
	if ok {
		return true32, nil
	}
	return false32, nil
}
