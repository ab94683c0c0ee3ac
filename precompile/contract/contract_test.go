// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// countingContract records whether Run was ever invoked, so tests can
// assert the gas gate short-circuits before any parsing happens.
type countingContract struct {
	gas     uint64
	gasOK   bool
	ranRun  bool
	runOut  []byte
	runErr  error
}

func (c *countingContract) RequiredGas(input []byte) (uint64, bool) {
	return c.gas, c.gasOK
}

func (c *countingContract) Run(input []byte) ([]byte, error) {
	c.ranRun = true
	return c.runOut, c.runErr
}

func TestRunPrecompiledContractOutOfGasNeverCallsRun(t *testing.T) {
	c := &countingContract{gas: 1000, gasOK: true}
	out, status, remaining, refund := RunPrecompiledContract(c, []byte("input"), 999, CallContext{})

	require.False(t, c.ranRun, "Run must not be called when the gas gate fails")
	require.Nil(t, out)
	require.ErrorIs(t, status.Err, ErrOutOfGas)
	require.False(t, status.Succeeded())
	require.Equal(t, uint64(0), remaining)
	require.Equal(t, uint64(0), refund)
}

func TestRunPrecompiledContractGasOverflowNeverCallsRun(t *testing.T) {
	c := &countingContract{gas: 0, gasOK: false}
	out, status, remaining, _ := RunPrecompiledContract(c, []byte("input"), ^uint64(0), CallContext{})

	require.False(t, c.ranRun)
	require.Nil(t, out)
	require.ErrorIs(t, status.Err, ErrGasOverflow)
	require.Equal(t, uint64(0), remaining)
}

func TestRunPrecompiledContractSuccess(t *testing.T) {
	c := &countingContract{gas: 100, gasOK: true, runOut: []byte("ok")}
	out, status, remaining, refund := RunPrecompiledContract(c, []byte("input"), 150, CallContext{})

	require.True(t, c.ranRun)
	require.Equal(t, []byte("ok"), out)
	require.True(t, status.Succeeded())
	require.NoError(t, status.Err)
	require.Equal(t, uint64(50), remaining)
	require.Equal(t, uint64(0), refund)
}

func TestRunPrecompiledContractExactGasSucceeds(t *testing.T) {
	c := &countingContract{gas: 150, gasOK: true, runOut: []byte("ok")}
	_, status, remaining, _ := RunPrecompiledContract(c, []byte("input"), 150, CallContext{})

	require.True(t, status.Succeeded())
	require.Equal(t, uint64(0), remaining)
}

func TestRunPrecompiledContractRunErrorStillChargesGas(t *testing.T) {
	runErr := errors.New("boom")
	c := &countingContract{gas: 100, gasOK: true, runErr: runErr}
	out, status, remaining, _ := RunPrecompiledContract(c, []byte("input"), 150, CallContext{})

	require.True(t, c.ranRun)
	require.Nil(t, out)
	require.ErrorIs(t, status.Err, runErr)
	require.False(t, status.Succeeded())
	require.Equal(t, uint64(50), remaining)
}
