// Package cli implements the command-line interface for the bmcinfo tool.
//
// # Overview
//
// The bmcinfo CLI queries the management controller (BMC) of a host over its
// SMASH CLP interface and reports system identity and firmware inventory:
// model, serial number, controller generation, controller firmware, and
// system ROM. It can also run the long-lived HTTP service that serves the
// same data from a TTL cache.
//
// # Commands
//
// show - Query the controller once and print the result:
//
//	bmcinfo show --host 10.0.0.5 --user admin [--format yaml|json|table]
//
// serve - Run the HTTP API server:
//
//	bmcinfo serve
//
// The server exposes GET /v1/system and POST /v1/system/refresh along with
// /health, /ready, and /metrics. See pkg/api for details.
//
// # Global Flags
//
//	--log-level    Logging level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// YAML (default):
//   - Human-readable, preserves structure
//
// JSON:
//   - Machine-parseable, compact
//
// Table:
//   - Flat FIELD/VALUE representation for terminal viewing
//
// # Environment Variables
//
//	BMC_HOST                  Controller address
//	BMC_PORT                  Controller SSH port (default: 22)
//	BMC_USER                  Controller account
//	BMC_PASSWORD              Controller password
//	BMC_KEY_FILE              Private key file for controller auth
//	BMC_KNOWN_HOSTS           known_hosts file for host key verification
//	BMC_INSECURE_SKIP_VERIFY  Disable host key verification (not for production)
//	LOG_LEVEL                 Logging verbosity for the serve command
//	PORT                      HTTP server port for the serve command
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/runner - SSH command execution against the controller
//   - pkg/bmc - CLP output parsing, fetch coordination, caching
//   - pkg/api - HTTP API server
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/bmc-info/pkg/cli.version=1.0.0'"
package cli
