// Copyright 2014 The go-ethereum Authors
// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import "errors"

// ErrNoSuchPrecompile is returned when RunPrecompiledContract is asked
// to dispatch to an address outside {0x06, 0x07, 0x08}. Address
// routing is otherwise out of scope per spec.md §1 — a real EVM host
// would never call this package for any other address.
var ErrNoSuchPrecompile = errors.New("no such precompile")
