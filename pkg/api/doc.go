// Package api provides the HTTP API layer for the BMC information service.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with application-specific routes and handlers. It exposes the
// cached system identity and firmware inventory of the managed host via REST API.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/NVIDIA/bmc-info/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Configuring structured logging with application name and version
//   - Building the management-controller client, fetcher, and cache
//   - Setting up route handlers (e.g., /v1/system)
//   - Delegating server lifecycle management to pkg/server
//
// The pkg/server package handles:
//   - HTTP server setup and graceful shutdown
//   - Middleware (rate limiting, logging, metrics, panic recovery)
//   - Health and readiness endpoints
//   - Prometheus metrics
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET /v1/system          - Cached system identity and firmware inventory
//   - POST /v1/system/refresh - Invalidate the cache and return fresh data
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - BMC_HOST, BMC_PORT, BMC_USER: management controller address and account
//   - BMC_PASSWORD, BMC_KEY_FILE: controller credentials
//   - BMC_KNOWN_HOSTS, BMC_INSECURE_SKIP_VERIFY: host key verification
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/bmc-info/pkg/api.version=1.0.0'"
package api
