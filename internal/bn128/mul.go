// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bn128

import (
	"github.com/ava-labs/altbn128/params"
	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// Mul implements ECMUL (address 0x07): input -> 64 bytes, the affine
// point k*P for the G1 point P = input[0:64] and scalar k =
// input[64:96].
type Mul struct {
	Fork params.HardFork
}

// RequiredGas returns the constant ECMUL gas cost for the configured
// hard fork.
func (c *Mul) RequiredGas([]byte) (uint64, bool) {
	return c.Fork.Bn256ScalarMulGas(), true
}

// Run decodes the point and scalar per spec.md §4.3 and returns their
// product, or the relevant decode error.
func (c *Mul) Run(input []byte) ([]byte, error) {
	padded := getData(input, 0, uint64(mulInputLen))

	p, err := decodeG1(padded[0:g1Len])
	if err != nil {
		return nil, err
	}
	k, err := decodeScalar(padded[g1Len:mulInputLen])
	if err != nil {
		return nil, err
	}

	var res bn254.G1Affine
	res.ScalarMultiplication(&p, k)
	return marshalG1(&res), nil
}
