/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/bmc-info/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API server",
		Description: `Run the long-lived HTTP service that serves cached system information.

Endpoints:
  GET  /v1/system          - Cached system identity and firmware inventory
  POST /v1/system/refresh  - Invalidate the cache and return fresh data
  GET  /health             - Health check
  GET  /ready              - Readiness check
  GET  /metrics            - Prometheus metrics

Configured via environment variables (PORT, LOG_LEVEL, BMC_*).`,
		Action: func(_ context.Context, _ *cli.Command) error {
			return api.Serve()
		},
	}
}
