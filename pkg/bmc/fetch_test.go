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

package bmc

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner is an in-memory Runner with per-command canned output, call
// counting, and an optional gate that blocks every Run call until released.
type stubRunner struct {
	mu      sync.Mutex
	calls   int
	outputs map[string]string
	errs    map[string]error
	gate    chan struct{}
}

func newStubRunner() *stubRunner {
	return &stubRunner{
		outputs: map[string]string{
			cmdShowSystem:     systemFixture,
			cmdShowController: controllerFixture,
			cmdShowSystemROM:  romFixture,
		},
		errs: map[string]error{},
	}
}

func (s *stubRunner) Run(ctx context.Context, command string) (string, error) {
	s.mu.Lock()
	s.calls++
	gate := s.gate
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.errs[command]; err != nil {
		return "", err
	}
	return s.outputs[command], nil
}

func (s *stubRunner) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestFetchSuccess(t *testing.T) {
	r := newStubRunner()
	f := NewFetcher(r)

	info := f.Fetch(context.Background())

	assert.Equal(t, "ProLiant DL380 Gen10", info.Model)
	assert.Equal(t, "CZJ1234XYZ", info.SerialNumber)
	assert.Equal(t, "iLO 5", info.ControllerGeneration)
	assert.Equal(t, "U32 v2.10 (05/01/2023)", info.SystemROM)
	assert.Equal(t, "2.33 (Dec 09 2020)", info.ControllerFirmware)

	// One query per CLP command.
	assert.Equal(t, 3, r.callCount())
}

func TestFetchAnyFailureDegradesWholeRecord(t *testing.T) {
	for _, failing := range []string{cmdShowSystem, cmdShowController, cmdShowSystemROM} {
		t.Run(failing, func(t *testing.T) {
			r := newStubRunner()
			r.errs[failing] = errors.New("connection refused")

			info := NewFetcher(r).Fetch(context.Background())

			require.Equal(t, Unavailable(), info)
		})
	}
}

func TestFetchNeverPartial(t *testing.T) {
	// Two commands succeed with good output; the record must still be the
	// unavailable one, never a mix.
	r := newStubRunner()
	r.errs[cmdShowSystemROM] = errors.New("timeout")

	info := NewFetcher(r).Fetch(context.Background())

	assert.Equal(t, ValueUnavailable, info.Model)
	assert.Equal(t, ValueUnavailable, info.ControllerFirmware)
}

func TestUnavailableRecord(t *testing.T) {
	info := Unavailable()
	assert.Equal(t, SystemInformation{
		Model:                "Unavailable",
		SerialNumber:         "Unavailable",
		ControllerGeneration: "Unavailable",
		SystemROM:            "Unavailable",
		ControllerFirmware:   "Unavailable",
	}, info)
}
