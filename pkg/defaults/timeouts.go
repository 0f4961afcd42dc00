// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package defaults

import "time"

// Controller timeouts for SSH operations against the management controller.
const (
	// ControllerDialTimeout is the timeout for establishing the SSH connection.
	// Management processors are slow to accept connections under load.
	ControllerDialTimeout = 10 * time.Second

	// ControllerCommandTimeout is the total timeout for a single CLP command,
	// connection setup included.
	ControllerCommandTimeout = 30 * time.Second
)

// Cache defaults for the controller record cache.
const (
	// CacheTTL is the duration a fetched controller record is served
	// without re-querying the controller. Failed fetches are cached for
	// the same window to avoid retry storms against a failing controller.
	CacheTTL = 5 * time.Minute
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLIShowTimeout is the default timeout for a one-shot controller query.
	CLIShowTimeout = 2 * time.Minute
)
