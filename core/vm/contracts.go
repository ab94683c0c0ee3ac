// Copyright 2014 The go-ethereum Authors
// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
//
// This file is a derived work, trimmed from the go-ethereum/coreth
// family's core/vm/contracts.go to the alt_bn128 precompile suite
// (addresses 0x06-0x08); the other default precompiles those repos
// register (ecrecover, SHA-256, RIPEMD-160, identity, bigModExp,
// blake2f, the KZG point evaluation precompile) are out of scope per
// spec.md §1 and are not reproduced here.
//
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/ava-labs/altbn128/internal/bn128"
	"github.com/ava-labs/altbn128/params"
	"github.com/ava-labs/altbn128/precompile/contract"
	"github.com/ethereum/go-ethereum/common"
)

// Addresses of the three precompiles this suite implements, per
// spec.md §6.
var (
	ECADDAddress     = common.BytesToAddress([]byte{6})
	ECMULAddress     = common.BytesToAddress([]byte{7})
	ECPAIRINGAddress = common.BytesToAddress([]byte{8})
)

// PrecompiledContractsByzantium is the set of alt_bn128 precompiles
// active under the original EIP-196/EIP-197 gas schedule.
var PrecompiledContractsByzantium = map[common.Address]contract.PrecompiledContract{
	ECADDAddress:     &bn128.Add{Fork: params.Byzantium},
	ECMULAddress:     &bn128.Mul{Fork: params.Byzantium},
	ECPAIRINGAddress: &bn128.Pairing{Fork: params.Byzantium},
}

// PrecompiledContractsIstanbul is the set of alt_bn128 precompiles
// active after the EIP-1108 repricing.
var PrecompiledContractsIstanbul = map[common.Address]contract.PrecompiledContract{
	ECADDAddress:     &bn128.Add{Fork: params.Istanbul},
	ECMULAddress:     &bn128.Mul{Fork: params.Istanbul},
	ECPAIRINGAddress: &bn128.Pairing{Fork: params.Istanbul},
}

// PrecompiledAddresses lists the three addresses this suite registers,
// stable across both hard forks (only pricing differs between them).
var PrecompiledAddresses = []common.Address{ECADDAddress, ECMULAddress, ECPAIRINGAddress}

// ActivePrecompiles returns the precompile set for the given hard
// fork. §4.5 of spec.md: fork selection only ever picks a gas
// schedule, never a different reference computation.
func ActivePrecompiles(fork params.HardFork) map[common.Address]contract.PrecompiledContract {
	if fork == params.Istanbul {
		return PrecompiledContractsIstanbul
	}
	return PrecompiledContractsByzantium
}

// RunPrecompiledContract looks up the precompile registered at addr
// for fork and runs it against input under gasLimit. It returns
// ErrNoSuchPrecompile if addr isn't one of the three addresses this
// suite serves.
func RunPrecompiledContract(fork params.HardFork, addr common.Address, input []byte, gasLimit uint64, callCtx contract.CallContext) (output []byte, status contract.ExitStatus, remainingGas uint64, refundHint uint64, err error) {
	p, ok := ActivePrecompiles(fork)[addr]
	if !ok {
		return nil, contract.ExitStatus{}, 0, 0, ErrNoSuchPrecompile
	}
	output, status, remainingGas, refundHint = contract.RunPrecompiledContract(p, input, gasLimit, callCtx)
	return output, status, remainingGas, refundHint, nil
}
