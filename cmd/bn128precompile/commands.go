// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/ava-labs/altbn128/core/vm"
	"github.com/ava-labs/altbn128/precompile/contract"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

func addCommand() *cli.Command {
	return &cli.Command{
		Name:      "ecadd",
		Usage:     "run the ECADD precompile (address 0x06) against a hex-encoded input",
		ArgsUsage: "<hex-input>",
		Action:    runAddress(vm.ECADDAddress),
	}
}

func mulCommand() *cli.Command {
	return &cli.Command{
		Name:      "ecmul",
		Usage:     "run the ECMUL precompile (address 0x07) against a hex-encoded input",
		ArgsUsage: "<hex-input>",
		Action:    runAddress(vm.ECMULAddress),
	}
}

func pairingCommand() *cli.Command {
	return &cli.Command{
		Name:      "ecpairing",
		Usage:     "run the ECPAIRING precompile (address 0x08) against a hex-encoded input",
		ArgsUsage: "<hex-input>",
		Action:    runAddress(vm.ECPAIRINGAddress),
	}
}

// runAddress returns a cli.ActionFunc bound to one of the three
// precompile addresses, factoring out the hex decode, config
// resolution and dispatch shared by all three subcommands.
func runAddress(addr [20]byte) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.NArg() != 1 {
			return exitWithError("expected exactly one hex-encoded input argument")
		}
		input, err := hex.DecodeString(c.Args().First())
		if err != nil {
			return exitWithError("decoding input: %v", err)
		}

		cfg, err := loadCallConfig(c)
		if err != nil {
			return err
		}

		log.Info("bn128precompile: dispatching", "fork", cfg.fork, "gasLimit", cfg.gasLimit, "inputLen", len(input))

		output, status, remainingGas, _, err := vm.RunPrecompiledContract(cfg.fork, addr, input, cfg.gasLimit, contract.CallContext{})
		if err != nil {
			return exitWithError("%v", err)
		}
		if !status.Succeeded() {
			return exitWithError("%v", status.Err)
		}

		fmt.Printf("output:        %s\n", hex.EncodeToString(output))
		fmt.Printf("remaining gas: %d\n", remainingGas)
		return nil
	}
}
