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

package runner

import (
	"fmt"
	"os"
	"time"

	"github.com/NVIDIA/bmc-info/pkg/defaults"
)

// Config holds connection settings for the management controller.
type Config struct {
	// Controller address
	Host string
	Port int

	// Credentials. At least one of Password or KeyFile must be set.
	User     string
	Password string
	KeyFile  string

	// Host key verification. When KnownHostsFile is empty and
	// InsecureSkipVerify is false, ~/.ssh/known_hosts is used.
	KnownHostsFile     string
	InsecureSkipVerify bool

	// Timeouts
	DialTimeout    time.Duration
	CommandTimeout time.Duration
}

// NewConfig returns a new Config with sensible defaults.
// Use this when you want to customize config programmatically.
func NewConfig() *Config {
	return parseConfig()
}

// parseConfig returns defaults overridden by environment variables.
func parseConfig() *Config {
	cfg := &Config{
		Port:           22,
		DialTimeout:    defaults.ControllerDialTimeout,
		CommandTimeout: defaults.ControllerCommandTimeout,
	}

	cfg.Host = os.Getenv("BMC_HOST")
	cfg.User = os.Getenv("BMC_USER")
	cfg.Password = os.Getenv("BMC_PASSWORD")
	cfg.KeyFile = os.Getenv("BMC_KEY_FILE")
	cfg.KnownHostsFile = os.Getenv("BMC_KNOWN_HOSTS")

	if portStr := os.Getenv("BMC_PORT"); portStr != "" {
		var port int
		if _, err := fmt.Sscanf(portStr, "%d", &port); err == nil && port > 0 {
			cfg.Port = port
		}
	}

	if skipStr := os.Getenv("BMC_INSECURE_SKIP_VERIFY"); skipStr == "true" || skipStr == "1" {
		cfg.InsecureSkipVerify = true
	}

	return cfg
}

// Validate reports whether the transport is fully configured. A nil return
// means a connection attempt is worth making; it does not guarantee the
// controller is reachable or the credentials are accepted.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("controller host is not set")
	}
	if c.User == "" {
		return fmt.Errorf("controller user is not set")
	}
	if c.Password == "" && c.KeyFile == "" {
		return fmt.Errorf("no controller credentials: set a password or a key file")
	}
	if c.KeyFile != "" {
		if _, err := os.Stat(c.KeyFile); err != nil {
			return fmt.Errorf("controller key file %q is not readable: %w", c.KeyFile, err)
		}
	}
	return nil
}

// addr returns the host:port dial target.
func (c *Config) addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
