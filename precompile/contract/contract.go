// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
//
// contract defines the minimal host-facing surface a precompiled
// contract exposes to an EVM: RequiredGas is evaluated from the input
// length alone, before any of the input is touched, and Run performs
// the actual computation once the gas gate has already passed.

package contract

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// PrecompiledContract is the basic interface native Go precompiles
// implement. It deliberately does not see the caller's gas limit or the
// call context: those belong to the host dispatcher in RunPrecompiledContract,
// which evaluates RequiredGas first and only calls Run if the caller
// supplied enough gas.
type PrecompiledContract interface {
	// RequiredGas returns the gas this contract requires to process
	// input. It is a pure function of len(input) for every precompile
	// in this suite. ok is false if the cost computation itself
	// overflowed a uint64 (spec's GasOverflow).
	RequiredGas(input []byte) (gas uint64, ok bool)
	// Run executes the precompile logic against input, which has
	// already been validated against the caller's gas limit.
	Run(input []byte) ([]byte, error)
}

// CallContext is the ambient EVM context threaded through to a
// precompile call. None of the contracts in this suite read it: it
// exists only so the host-facing signature matches what a real EVM
// call frame provides.
type CallContext struct {
	Caller        common.Address
	Callee        common.Address
	ApparentValue *big.Int
}

// ExitKind classifies how a precompile invocation concluded.
type ExitKind uint8

const (
	// Returned means the call completed and produced output.
	Returned ExitKind = iota
	// Errored means the call failed deterministically; Output is nil.
	Errored
)

// ExitStatus is the result of RunPrecompiledContract: either a
// successful Returned with output bytes, or an Errored carrying the
// failure reason.
type ExitStatus struct {
	Kind ExitKind
	Err  error
}

// Succeeded reports whether the call returned output.
func (s ExitStatus) Succeeded() bool { return s.Kind == Returned }

// ErrOutOfGas is returned when RequiredGas(input) exceeds the gas limit
// the caller supplied. It is returned before input is parsed at all.
var ErrOutOfGas = errors.New("out of gas")

// ErrGasOverflow is returned when the gas-cost computation itself
// overflows a uint64 (relevant only to ECPAIRING, whose cost scales
// with input length).
var ErrGasOverflow = errors.New("gas cost overflow")

// RunPrecompiledContract evaluates p's gas cost against gasLimit first;
// only if the limit is sufficient does it invoke p.Run. callCtx is
// accepted to match the host-to-precompile contract but is not read by
// any contract in this suite. It returns the (possibly nil) output, the
// exit status, the remaining gas, and a refund hint (always 0 for this
// suite).
func RunPrecompiledContract(p PrecompiledContract, input []byte, gasLimit uint64, callCtx CallContext) (output []byte, status ExitStatus, remainingGas uint64, refundHint uint64) {
	_ = callCtx

	gasCost, ok := p.RequiredGas(input)
	if !ok {
		return nil, ExitStatus{Kind: Errored, Err: ErrGasOverflow}, 0, 0
	}
	if gasCost > gasLimit {
		return nil, ExitStatus{Kind: Errored, Err: ErrOutOfGas}, 0, 0
	}

	out, err := p.Run(input)
	if err != nil {
		return nil, ExitStatus{Kind: Errored, Err: err}, gasLimit - gasCost, 0
	}
	return out, ExitStatus{Kind: Returned}, gasLimit - gasCost, 0
}
