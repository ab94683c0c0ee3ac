// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bn128

import (
	"github.com/ava-labs/altbn128/params"
	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// Add implements ECADD (address 0x06): input -> 64 bytes, the affine
// sum of the two G1 points encoded in input[0:64] and input[64:128].
// Its only per-fork difference is the constant RequiredGas.
type Add struct {
	Fork params.HardFork
}

// RequiredGas returns the constant ECADD gas cost for the configured
// hard fork. It never overflows.
func (c *Add) RequiredGas([]byte) (uint64, bool) {
	return c.Fork.Bn256AddGas(), true
}

// Run decodes the two input points per spec.md §4.1's right-padding
// rule and returns their sum, or the relevant decode error.
func (c *Add) Run(input []byte) ([]byte, error) {
	padded := getData(input, 0, uint64(addInputLen))

	p1, err := decodeG1(padded[0:g1Len])
	if err != nil {
		return nil, err
	}
	p2, err := decodeG1(padded[g1Len:addInputLen])
	if err != nil {
		return nil, err
	}

	var sum bn254.G1Affine
	sum.Add(&p1, &p2)
	return marshalG1(&sum), nil
}
