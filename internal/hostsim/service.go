// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
//
// hostsim is a minimal standalone "EVM host" that gives the
// host-to-precompile contract described in spec.md §6 a runnable peer.
// It performs no address routing, call-context construction, or state
// access: every request names its precompile, its gas limit and its
// hard fork directly, and call_context is always the fixed zero value,
// unused, exactly as precompile/contract documents.

package hostsim

import (
	"errors"
	"net/http"

	"github.com/ava-labs/altbn128/core/vm"
	"github.com/ava-labs/altbn128/params"
	"github.com/ava-labs/altbn128/precompile/contract"
	"github.com/ethereum/go-ethereum/log"
	"github.com/google/uuid"
	rpc "github.com/gorilla/rpc/v2"
	rpcjson "github.com/gorilla/rpc/v2/json"
)

// PrecompileService is the gorilla/rpc service this package exposes.
// Each method name (Add, Mul, Pairing) maps to one JSON-RPC 1.0 method,
// per the (service, method) naming convention gorilla/rpc's reflection
// requires.
type PrecompileService struct{}

// CallArgs is the request payload shared by all three methods.
type CallArgs struct {
	Input    []byte `json:"input"`
	GasLimit uint64 `json:"gasLimit"`
	Fork     string `json:"fork"`
}

// CallReply is the response payload shared by all three methods.
type CallReply struct {
	Status       string `json:"status"`
	Output       []byte `json:"output"`
	RemainingGas uint64 `json:"remainingGas"`
	RefundHint   uint64 `json:"refundHint"`
	Error        string `json:"error,omitempty"`
}

// Add exposes ECADD (address 0x06) over JSON-RPC.
func (s *PrecompileService) Add(r *http.Request, args *CallArgs, reply *CallReply) error {
	return call(r, vm.ECADDAddress, args, reply)
}

// Mul exposes ECMUL (address 0x07) over JSON-RPC.
func (s *PrecompileService) Mul(r *http.Request, args *CallArgs, reply *CallReply) error {
	return call(r, vm.ECMULAddress, args, reply)
}

// Pairing exposes ECPAIRING (address 0x08) over JSON-RPC.
func (s *PrecompileService) Pairing(r *http.Request, args *CallArgs, reply *CallReply) error {
	return call(r, vm.ECPAIRINGAddress, args, reply)
}

func call(r *http.Request, addr [20]byte, args *CallArgs, reply *CallReply) error {
	requestID := uuid.New()
	fork, err := params.ParseHardFork(args.Fork)
	if err != nil {
		log.Warn("hostsim: rejected request", "requestID", requestID, "reason", err)
		reply.Status = "error"
		reply.Error = err.Error()
		return nil
	}

	log.Debug("hostsim: dispatching call", "requestID", requestID, "addr", addr, "gasLimit", args.GasLimit, "fork", fork)

	output, status, remainingGas, refundHint, err := vm.RunPrecompiledContract(fork, addr, args.Input, args.GasLimit, contract.CallContext{})
	if err != nil {
		log.Warn("hostsim: no such precompile", "requestID", requestID, "addr", addr)
		reply.Status = "error"
		reply.Error = err.Error()
		return nil
	}

	reply.RemainingGas = remainingGas
	reply.RefundHint = refundHint
	if status.Succeeded() {
		reply.Status = "returned"
		reply.Output = output
		log.Debug("hostsim: call succeeded", "requestID", requestID, "remainingGas", remainingGas)
		return nil
	}

	reply.Status = "errored"
	reply.Error = status.Err.Error()
	log.Debug("hostsim: call errored", "requestID", requestID, "reason", status.Err)
	return nil
}

// errUnknownService mirrors the teacher's pattern of surfacing a
// descriptive error before falling through to gorilla/rpc's own.
var errUnknownService = errors.New("hostsim: unknown service")

// NewHandler builds the http.Handler for the "precompile" JSON-RPC 1.0
// service, grounded on the teacher's plugin/evm/vm.go newHandler
// helper: a fresh gorilla/rpc server, the JSON codec registered for
// both plain and charset-qualified content types, then the service
// registered under its name.
func NewHandler() (http.Handler, error) {
	server := rpc.NewServer()
	server.RegisterCodec(rpcjson.NewCodec(), "application/json")
	server.RegisterCodec(rpcjson.NewCodec(), "application/json;charset=UTF-8")
	if err := server.RegisterService(new(PrecompileService), "precompile"); err != nil {
		return nil, errors.Join(errUnknownService, err)
	}
	return server, nil
}
