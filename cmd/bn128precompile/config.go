// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/ava-labs/altbn128/params"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

// callConfig is the resolved {fork, gasLimit} pair a subcommand runs
// under: config file value, overridden by an explicit flag.
type callConfig struct {
	fork     params.HardFork
	gasLimit uint64
}

// loadCallConfig reads --config (if given) via viper, then lets --fork
// and --gas-limit override whatever the file set: defaults first, then
// the file, then explicitly set flags.
func loadCallConfig(c *cli.Context) (callConfig, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("fork", "istanbul")
	v.SetDefault("gasLimit", uint64(1_000_000))

	if path := c.String("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return callConfig{}, exitWithError("reading config %s: %v", path, err)
		}
	}

	forkName := v.GetString("fork")
	if c.IsSet("fork") {
		forkName = c.String("fork")
	}
	fork, err := params.ParseHardFork(forkName)
	if err != nil {
		return callConfig{}, exitWithError("%v", err)
	}

	gasLimit := cast.ToUint64(v.Get("gasLimit"))
	if c.IsSet("gas-limit") {
		gasLimit = c.Uint64("gas-limit")
	}

	return callConfig{fork: fork, gasLimit: gasLimit}, nil
}
