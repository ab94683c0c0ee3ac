// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package params

import "fmt"

// HardFork selects which gas schedule an alt_bn128 precompile charges.
// It carries no other runtime behavior: the reference computation for
// ECADD, ECMUL and ECPAIRING is identical across forks, only their
// pricing differs (EIP-1108).
type HardFork uint8

const (
	// Byzantium is the original EIP-196/EIP-197 gas schedule.
	Byzantium HardFork = iota
	// Istanbul is the EIP-1108 repricing.
	Istanbul
)

// String implements fmt.Stringer.
func (f HardFork) String() string {
	switch f {
	case Byzantium:
		return "byzantium"
	case Istanbul:
		return "istanbul"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(f))
	}
}

// ParseHardFork maps a case-sensitive fork name to its HardFork value,
// for use by config/CLI surfaces that accept a fork name as a string.
func ParseHardFork(name string) (HardFork, error) {
	switch name {
	case "byzantium":
		return Byzantium, nil
	case "istanbul":
		return Istanbul, nil
	default:
		return 0, fmt.Errorf("unknown hard fork %q", name)
	}
}

// Bn256AddGas returns the ECADD gas cost for this hard fork.
func (f HardFork) Bn256AddGas() uint64 {
	if f == Istanbul {
		return Bn256AddGasIstanbul
	}
	return Bn256AddGasByzantium
}

// Bn256ScalarMulGas returns the ECMUL gas cost for this hard fork.
func (f HardFork) Bn256ScalarMulGas() uint64 {
	if f == Istanbul {
		return Bn256ScalarMulGasIstanbul
	}
	return Bn256ScalarMulGasByzantium
}

// Bn256PairingGas returns the ECPAIRING gas cost for this hard fork
// given the number of 192-byte elements in the input.
func (f HardFork) Bn256PairingGas(numElements uint64) (uint64, bool) {
	base, perPoint := Bn256PairingBaseGasByzantium, Bn256PairingPerPointGasByzantium
	if f == Istanbul {
		base, perPoint = Bn256PairingBaseGasIstanbul, Bn256PairingPerPointGasIstanbul
	}
	return safePairingGas(base, perPoint, numElements)
}
