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
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/bmc-info/pkg/runner"
)

// CLP commands for the three identity queries.
const (
	cmdShowSystem     = "show /system1"
	cmdShowController = "show /map1/firmware1"
	cmdShowSystemROM  = "show /system1/firmware1"
)

// Fetcher queries the management controller for identity and firmware data.
type Fetcher struct {
	// Runner executes CLP commands against the controller.
	Runner runner.Runner
}

// NewFetcher creates a Fetcher backed by the given command runner.
func NewFetcher(r runner.Runner) *Fetcher {
	return &Fetcher{Runner: r}
}

// Fetch issues the three identity queries concurrently, waits for all of
// them, and assembles the result. It never returns an error: if any query
// fails, or parsing panics on malformed output, the fixed unavailable
// record is returned instead. Failures are logged, not surfaced.
func (f *Fetcher) Fetch(ctx context.Context) (info SystemInformation) {
	start := time.Now()
	defer func() {
		fetchDuration.Observe(time.Since(start).Seconds())
		if r := recover(); r != nil {
			slog.Error("panic while assembling controller record", "panic", r)
			fetchFailures.Inc()
			info = Unavailable()
		}
	}()

	slog.Debug("fetching controller record")

	var systemOut, controllerOut, romOut string

	// All three queries must succeed; a partial record is never assembled.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		systemOut, err = f.Runner.Run(gctx, cmdShowSystem)
		return err
	})
	g.Go(func() error {
		var err error
		controllerOut, err = f.Runner.Run(gctx, cmdShowController)
		return err
	})
	g.Go(func() error {
		var err error
		romOut, err = f.Runner.Run(gctx, cmdShowSystemROM)
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Error("controller fetch failed", "error", err)
		fetchFailures.Inc()
		return Unavailable()
	}

	slog.Debug("controller output received",
		"system", systemOut,
		"controller", controllerOut,
		"rom", romOut,
	)

	info = assemble(systemOut, controllerOut, romOut)

	slog.Info("controller record fetched",
		"model", info.Model,
		"serialNumber", info.SerialNumber,
		"controllerGeneration", info.ControllerGeneration,
		"duration", time.Since(start).String(),
	)

	return info
}
