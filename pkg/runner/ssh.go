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
	"context"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/NVIDIA/bmc-info/pkg/errors"
)

// Runner executes a single named command against the management controller
// and returns its raw text output.
type Runner interface {
	Run(ctx context.Context, command string) (string, error)
}

// Client is the SSH implementation of Runner.
type Client struct {
	cfg *Config
}

// NewClient creates a Runner for the controller described by cfg.
// If cfg is nil, environment-based defaults are used.
func NewClient(cfg *Config) *Client {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Client{cfg: cfg}
}

// Run executes one CLP command in a fresh SSH connection and returns the
// command's stdout. Transport failures are returned as structured errors
// carrying the command and host for diagnostics.
func (c *Client) Run(ctx context.Context, command string) (string, error) {
	clientCfg, err := c.clientConfig()
	if err != nil {
		return "", err
	}

	addr := c.cfg.addr()

	d := net.Dialer{Timeout: c.cfg.DialTimeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeUnavailable,
			"failed to connect to controller", err, c.errContext(command))
	}
	defer conn.Close()

	// The whole command, handshake included, shares one deadline.
	if c.cfg.CommandTimeout > 0 {
		deadline := time.Now().Add(c.cfg.CommandTimeout)
		if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
			deadline = d
		}
		if err := conn.SetDeadline(deadline); err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, "failed to set connection deadline", err)
		}
	}

	// Close the connection when the context is canceled so the session
	// below does not block past the caller's interest.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, clientCfg)
	if err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeUnauthorized,
			"controller SSH handshake failed", err, c.errContext(command))
	}

	client := ssh.NewClient(sshConn, chans, reqs)
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeUnavailable,
			"failed to open controller session", err, c.errContext(command))
	}
	defer session.Close()

	slog.Debug("running controller command", "command", command, "host", c.cfg.Host)

	// CLP writes its result, error status included, to stdout. A non-zero
	// exit therefore still signals a transport-level failure.
	out, err := session.Output(command)
	if err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeUnavailable,
			"controller command failed", err, c.errContext(command))
	}

	return string(out), nil
}

func (c *Client) errContext(command string) map[string]any {
	return map[string]any{
		"command": command,
		"host":    c.cfg.Host,
	}
}

// clientConfig builds the SSH client configuration from the runner Config.
func (c *Client) clientConfig() (*ssh.ClientConfig, error) {
	var auth []ssh.AuthMethod

	if c.cfg.KeyFile != "" {
		key, err := os.ReadFile(c.cfg.KeyFile)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to read controller key file", err)
		}
		signer, err := ssh.ParsePrivateKey(key)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to parse controller key file", err)
		}
		auth = append(auth, ssh.PublicKeys(signer))
	}

	if c.cfg.Password != "" {
		auth = append(auth, ssh.Password(c.cfg.Password))
	}

	if len(auth) == 0 {
		return nil, errors.New(errors.ErrCodeUnauthorized, "no controller credentials configured")
	}

	hostKeyCallback, err := c.hostKeyCallback()
	if err != nil {
		return nil, err
	}

	return &ssh.ClientConfig{
		User:            c.cfg.User,
		Auth:            auth,
		HostKeyCallback: hostKeyCallback,
		Timeout:         c.cfg.DialTimeout,
	}, nil
}

func (c *Client) hostKeyCallback() (ssh.HostKeyCallback, error) {
	if c.cfg.InsecureSkipVerify {
		return ssh.InsecureIgnoreHostKey(), nil //nolint:gosec // explicit opt-in
	}

	path := c.cfg.KnownHostsFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, "failed to locate known_hosts file", err)
		}
		path = filepath.Join(home, ".ssh", "known_hosts")
	}

	cb, err := knownhosts.New(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"failed to load known_hosts file", err, map[string]any{"path": path})
	}
	return cb, nil
}
