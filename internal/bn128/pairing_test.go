// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bn128

import (
	"testing"

	"github.com/ava-labs/altbn128/params"
	"github.com/stretchr/testify/require"
)

// TestPairingByzantiumSuccess exercises spec.md §8 scenario S6: two
// pairing elements whose product of pairings is the Gt identity.
func TestPairingByzantiumSuccess(t *testing.T) {
	input := mustDecodeHex(t, ""+
		"1c76476f4def4bb94541d57ebba1193381ffa7aa76ada664dd31c16024c43f5"+
		"93034dd2920f673e204fee2811c678745fc819b55d3e9d294e45c9b03a76aef"+
		"41209dd15ebff5d46c4bd888e51a93cf99a7329636c63514396b4a452003a35"+
		"bf704bf11ca01483bfa8b34b43561848d28905960114c8ac04049af4b6315a4"+
		"16782bb8324af6cfc93537a2ad1a445cfd0ca2a71acd7ac41fadbf933c2a51b"+
		"e344d120a2a4cf30c1bf9845f20c6fe39e07ea2cce61f0c9bb048165fe5e4de"+
		"877550111e129f1cf1097710d41c4ac70fcdfa5ba2023c6ff1cbeac322de49d"+
		"1b6df7c2032c61a830e3c17286de9462bf242fca2883585b93870a73853face"+
		"6a6bf411198e9393920d483a7260bfb731fb5d25f1aa493335a9e71297e485b"+
		"7aef312c21800deef121f1e76426a00665e5c4479674322d4f75edadd46deb"+
		"d5cd992f6ed090689d0585ff075ec9e99ad690c3395bc4b313370b38ef355ac"+
		"dadcd122975b12c85ea5db8c6deb4aab71808dcb408fe3d1e7690c43d37b4ce"+
		"6cc0166fa7daa")
	require.Len(t, input, 384)

	c := &Pairing{Fork: params.Byzantium}
	gas, ok := c.RequiredGas(input)
	require.True(t, ok)
	require.Equal(t, uint64(260000), gas)

	out, err := c.Run(input)
	require.NoError(t, err)
	require.Equal(t, true32, out)

	// One gas unit short of the required amount is OutOfGas territory
	// for the caller, per spec.md §8 property 4 — RequiredGas itself
	// doesn't enforce this, the gas-gate wrapper in precompile/contract
	// does, so this is just re-confirming the exact cost figure.
	require.Equal(t, uint64(259999), gas-1)
}

// TestPairingEmptyInput exercises spec.md §8 scenario S8: the empty
// product is the Gt identity.
func TestPairingEmptyInput(t *testing.T) {
	c := &Pairing{Fork: params.Byzantium}
	gas, ok := c.RequiredGas(nil)
	require.True(t, ok)
	require.Equal(t, uint64(100000), gas)

	out, err := c.Run(nil)
	require.NoError(t, err)
	require.Equal(t, true32, out)
}

// TestPairingInvalidLength exercises spec.md §8 scenario S7: any input
// whose length isn't a multiple of 192 is a framing error, independent
// of what bytes it contains.
func TestPairingInvalidLength(t *testing.T) {
	input := make([]byte, 66)
	c := &Pairing{Fork: params.Byzantium}
	_, err := c.Run(input)
	require.ErrorIs(t, err, ErrInvalidPairingInputLength)
}

func TestPairingBothInfinity(t *testing.T) {
	input := make([]byte, pairElementLen)
	c := &Pairing{Fork: params.Byzantium}
	out, err := c.Run(input)
	require.NoError(t, err)
	require.Equal(t, true32, out)
}

func TestPairingGasOverflow(t *testing.T) {
	c := &Pairing{Fork: params.Byzantium}
	// A length that would require far more memory than exists is used
	// purely to drive n up; RequiredGas only inspects len(input), so a
	// nil slice with a synthetic byte count isn't expressible here —
	// instead this exercises the overflow path directly against the
	// fork's gas function with an astronomically large element count.
	_, ok := c.Fork.Bn256PairingGas(1 << 62)
	require.False(t, ok)
}

func TestPairingGasSchedules(t *testing.T) {
	byz := &Pairing{Fork: params.Byzantium}
	ist := &Pairing{Fork: params.Istanbul}

	gasByz, _ := byz.RequiredGas(make([]byte, pairElementLen))
	require.Equal(t, uint64(100000+80000), gasByz)

	gasIst, _ := ist.RequiredGas(make([]byte, pairElementLen))
	require.Equal(t, uint64(45000+34000), gasIst)
}
