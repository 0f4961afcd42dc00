/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/bmc-info/pkg/bmc"
	"github.com/NVIDIA/bmc-info/pkg/defaults"
	"github.com/NVIDIA/bmc-info/pkg/runner"
)

func showCmd() *cli.Command {
	return &cli.Command{
		Name:                  "show",
		EnableShellCompletion: true,
		Usage:                 "Query the management controller and print system information",
		Description: `Query the host's management controller over SMASH CLP and print:
  - System model and serial number
  - Controller generation and firmware
  - System ROM

Fields the controller does not report are rendered as "Unknown". When the
controller cannot be reached at all, every field is "Unavailable".

The result can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "host",
				Usage:   "Management controller address",
				Sources: cli.EnvVars("BMC_HOST"),
			},
			&cli.IntFlag{
				Name:    "port",
				Usage:   "Management controller SSH port",
				Value:   22,
				Sources: cli.EnvVars("BMC_PORT"),
			},
			&cli.StringFlag{
				Name:    "user",
				Usage:   "Management controller account",
				Sources: cli.EnvVars("BMC_USER"),
			},
			&cli.StringFlag{
				Name:    "password",
				Usage:   "Management controller password",
				Sources: cli.EnvVars("BMC_PASSWORD"),
			},
			&cli.StringFlag{
				Name:    "key-file",
				Usage:   "Private key file for controller auth",
				Sources: cli.EnvVars("BMC_KEY_FILE"),
			},
			&cli.StringFlag{
				Name:    "known-hosts",
				Usage:   "known_hosts file for host key verification (default: ~/.ssh/known_hosts)",
				Sources: cli.EnvVars("BMC_KNOWN_HOSTS"),
			},
			&cli.BoolFlag{
				Name:    "insecure-skip-verify",
				Usage:   "Disable host key verification (not for production)",
				Sources: cli.EnvVars("BMC_INSECURE_SKIP_VERIFY"),
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Overall timeout for the query",
				Value: defaults.CLIShowTimeout,
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w, closer, err := newOutputWriter(cmd)
			if err != nil {
				return err
			}
			defer closer() //nolint:errcheck

			cfg := buildRunnerConfig(cmd)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid controller configuration: %w", err)
			}

			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			info := bmc.NewFetcher(runner.NewClient(cfg)).Fetch(ctx)

			return w.Serialize(info)
		},
	}
}

// buildRunnerConfig maps show command flags onto a controller config.
func buildRunnerConfig(cmd *cli.Command) *runner.Config {
	cfg := runner.NewConfig()
	cfg.Host = cmd.String("host")
	cfg.Port = int(cmd.Int("port"))
	cfg.User = cmd.String("user")
	cfg.Password = cmd.String("password")
	cfg.KeyFile = cmd.String("key-file")
	cfg.KnownHostsFile = cmd.String("known-hosts")
	cfg.InsecureSkipVerify = cmd.Bool("insecure-skip-verify")

	if t := cmd.Duration("timeout"); t > 0 && t < cfg.CommandTimeout {
		cfg.CommandTimeout = t
	}

	return cfg
}
