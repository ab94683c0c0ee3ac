// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-colorable"
	"github.com/urfave/cli/v2"
)

func main() {
	setupLogging()

	app := &cli.App{
		Name:  "bn128precompile",
		Usage: "invoke the alt_bn128 precompile suite (ECADD/ECMUL/ECPAIRING) from the command line",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a YAML config file providing default --fork and --gas-limit values",
			},
			&cli.StringFlag{
				Name:  "fork",
				Value: "istanbul",
				Usage: "hard fork gas schedule to price the call under (byzantium|istanbul)",
			},
			&cli.Uint64Flag{
				Name:  "gas-limit",
				Value: 1_000_000,
				Usage: "gas the caller supplies for the call",
			},
		},
		Commands: []*cli.Command{
			addCommand(),
			mulCommand(),
			pairingCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error("bn128precompile: fatal", "err", err)
		os.Exit(1)
	}
}

// setupLogging wires a colorized terminal handler, mirroring the way
// go-ethereum command-line tools configure log.Root(): a
// go-colorable-wrapped stderr stream behind the structured terminal
// handler, so key=value fields render in color on an interactive tty
// and as plain text when piped.
func setupLogging() {
	handler := log.NewTerminalHandler(colorable.NewColorableStderr(), true)
	log.SetDefault(log.NewLogger(handler))
}

func exitWithError(format string, args ...interface{}) error {
	return cli.Exit(fmt.Sprintf(format, args...), 1)
}
