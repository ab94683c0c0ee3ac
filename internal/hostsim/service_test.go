// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hostsim

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func doRPC(t *testing.T, handler http.Handler, method string, args CallArgs) CallReply {
	t.Helper()

	reqBody := map[string]interface{}{
		"method": method,
		"params": []CallArgs{args},
		"id":     "1",
	}
	raw, err := json.Marshal(reqBody)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Result CallReply `json:"result"`
		Error  *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Nil(t, envelope.Error)
	return envelope.Result
}

func TestHostsimAddSuccess(t *testing.T) {
	handler, err := NewHandler()
	require.NoError(t, err)

	reply := doRPC(t, handler, "precompile.Add", CallArgs{
		Input:    make([]byte, 128),
		GasLimit: 500,
		Fork:     "byzantium",
	})
	require.Equal(t, "returned", reply.Status)
	require.Equal(t, make([]byte, 64), reply.Output)
	require.Equal(t, uint64(0), reply.RemainingGas)
}

func TestHostsimRejectsUnknownFork(t *testing.T) {
	handler, err := NewHandler()
	require.NoError(t, err)

	reply := doRPC(t, handler, "precompile.Mul", CallArgs{
		Input:    make([]byte, 96),
		GasLimit: 6000,
		Fork:     "constantinople",
	})
	require.Equal(t, "error", reply.Status)
	require.NotEmpty(t, reply.Error)
}

func TestHostsimOutOfGas(t *testing.T) {
	handler, err := NewHandler()
	require.NoError(t, err)

	reply := doRPC(t, handler, "precompile.Pairing", CallArgs{
		Input:    nil,
		GasLimit: 99999,
		Fork:     "byzantium",
	})
	require.Equal(t, "errored", reply.Status)
	require.Equal(t, "out of gas", reply.Error)
}
