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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/bmc-info/pkg/defaults"
)

// testClock is a manually advanced clock for simulating TTL expiry.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestCache(r *stubRunner, ttl time.Duration) (*Cache, *testClock) {
	clock := newTestClock()
	c := NewCache(NewFetcher(r), ttl)
	c.now = clock.Now
	return c, clock
}

func TestCacheDefaultTTL(t *testing.T) {
	c := NewCache(NewFetcher(newStubRunner()), 0)
	assert.Equal(t, defaults.CacheTTL, c.TTL())
}

func TestGetIdempotentWithinTTL(t *testing.T) {
	r := newStubRunner()
	c, _ := newTestCache(r, 5*time.Minute)

	first := c.Get(context.Background())
	second := c.Get(context.Background())

	assert.Equal(t, first, second)

	// Two gets, one fetch, three commands.
	assert.Equal(t, 3, r.callCount())
}

func TestGetRefetchesAfterTTL(t *testing.T) {
	r := newStubRunner()
	c, clock := newTestCache(r, 5*time.Minute)

	c.Get(context.Background())
	require.Equal(t, 3, r.callCount())

	// Still fresh one second before expiry.
	clock.Advance(5*time.Minute - time.Second)
	c.Get(context.Background())
	assert.Equal(t, 3, r.callCount())

	clock.Advance(2 * time.Second)
	c.Get(context.Background())
	assert.Equal(t, 6, r.callCount())
}

func TestGetSingleFlight(t *testing.T) {
	r := newStubRunner()
	r.gate = make(chan struct{})
	c, _ := newTestCache(r, 5*time.Minute)

	const callers = 25

	var wg sync.WaitGroup
	results := make([]SystemInformation, callers)
	for i := 0; i < callers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = c.Get(context.Background())
		}()
	}

	// Let the callers pile up on the shared fetch, then release it.
	time.Sleep(50 * time.Millisecond)
	close(r.gate)
	wg.Wait()

	// Exactly one fetch regardless of caller count; any caller arriving
	// after completion is a cache hit, not a second fetch.
	assert.Equal(t, 3, r.callCount())

	for i := 0; i < callers; i++ {
		assert.Equal(t, results[0], results[i])
	}
}

func TestGetFailureCachedForTTL(t *testing.T) {
	r := newStubRunner()
	r.errs[cmdShowSystem] = errors.New("connection refused")
	c, clock := newTestCache(r, 5*time.Minute)

	info := c.Get(context.Background())
	require.Equal(t, Unavailable(), info)
	callsAfterFirst := r.callCount()

	// The failure result is served from cache; no retry storm.
	info = c.Get(context.Background())
	assert.Equal(t, Unavailable(), info)
	assert.Equal(t, callsAfterFirst, r.callCount())

	// Controller recovers; after expiry the next get picks it up.
	r.mu.Lock()
	delete(r.errs, cmdShowSystem)
	r.mu.Unlock()
	clock.Advance(6 * time.Minute)

	info = c.Get(context.Background())
	assert.Equal(t, "ProLiant DL380 Gen10", info.Model)
}

func TestRefreshForcesFetchWhileFresh(t *testing.T) {
	r := newStubRunner()
	c, _ := newTestCache(r, 5*time.Minute)

	first := c.Get(context.Background())
	require.Equal(t, "CZJ1234XYZ", first.SerialNumber)
	require.Equal(t, 3, r.callCount())

	// The controller reports a new serial; refresh must observe it even
	// though the cache is still fresh.
	r.mu.Lock()
	r.outputs[cmdShowSystem] = "name=ProLiant DL380 Gen10\nnumber=CZJ9999ABC\n"
	r.mu.Unlock()

	refreshed := c.Refresh(context.Background())
	assert.Equal(t, "CZJ9999ABC", refreshed.SerialNumber)
	assert.Equal(t, 6, r.callCount())

	// The refreshed record is what subsequent gets serve.
	assert.Equal(t, refreshed, c.Get(context.Background()))
	assert.Equal(t, 6, r.callCount())
}
