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

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		// Controller timeouts
		{"ControllerDialTimeout", ControllerDialTimeout, 5 * time.Second, 30 * time.Second},
		{"ControllerCommandTimeout", ControllerCommandTimeout, 10 * time.Second, 60 * time.Second},

		// Cache defaults
		{"CacheTTL", CacheTTL, 1 * time.Minute, 15 * time.Minute},

		// Server timeouts
		{"ServerReadTimeout", ServerReadTimeout, 5 * time.Second, 30 * time.Second},
		{"ServerReadHeaderTimeout", ServerReadHeaderTimeout, 1 * time.Second, 10 * time.Second},
		{"ServerWriteTimeout", ServerWriteTimeout, 15 * time.Second, 60 * time.Second},
		{"ServerIdleTimeout", ServerIdleTimeout, 30 * time.Second, 300 * time.Second},
		{"ServerShutdownTimeout", ServerShutdownTimeout, 10 * time.Second, 60 * time.Second},

		// CLI timeouts
		{"CLIShowTimeout", CLIShowTimeout, 30 * time.Second, 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s = %v, below sensible minimum %v", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s = %v, above sensible maximum %v", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestCommandTimeoutCoversDial(t *testing.T) {
	// The per-command budget must leave room for connection setup.
	if ControllerCommandTimeout <= ControllerDialTimeout {
		t.Errorf("ControllerCommandTimeout (%v) must exceed ControllerDialTimeout (%v)",
			ControllerCommandTimeout, ControllerDialTimeout)
	}
}
