// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
//
// This file is a derived work, adapting the gas-schedule constants the
// go-ethereum/coreth family of repositories define for the alt_bn128
// precompiles (addresses 0x06-0x08) to the Byzantium/Istanbul repricing
// described in EIP-1108.

package params

const (
	// Bn256AddGasByzantium is the gas cost of a point addition (ECADD) on
	// the alt_bn128 curve, priced per the original EIP-196 schedule.
	Bn256AddGasByzantium uint64 = 500
	// Bn256AddGasIstanbul is the ECADD gas cost after the EIP-1108
	// repricing.
	Bn256AddGasIstanbul uint64 = 150

	// Bn256ScalarMulGasByzantium is the gas cost of a scalar
	// multiplication (ECMUL) on the alt_bn128 curve per EIP-196.
	Bn256ScalarMulGasByzantium uint64 = 40000
	// Bn256ScalarMulGasIstanbul is the ECMUL gas cost after EIP-1108.
	Bn256ScalarMulGasIstanbul uint64 = 6000

	// Bn256PairingBaseGasByzantium is the base gas cost of an ECPAIRING
	// call per EIP-197.
	Bn256PairingBaseGasByzantium uint64 = 100000
	// Bn256PairingPerPointGasByzantium is the additional gas cost per
	// pairing element in an ECPAIRING call per EIP-197.
	Bn256PairingPerPointGasByzantium uint64 = 80000

	// Bn256PairingBaseGasIstanbul is the ECPAIRING base gas cost after
	// EIP-1108.
	Bn256PairingBaseGasIstanbul uint64 = 45000
	// Bn256PairingPerPointGasIstanbul is the ECPAIRING per-point gas cost
	// after EIP-1108.
	Bn256PairingPerPointGasIstanbul uint64 = 34000
)
