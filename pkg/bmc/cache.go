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
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/NVIDIA/bmc-info/pkg/defaults"
)

// cacheKey is the single-flight key. The cache models exactly one
// controller, so there is only ever one.
const cacheKey = "system-information"

// Cache holds the last fetched controller record and serves it while fresh.
// Construct one per process and hand it to every consumer; it is safe for
// concurrent use.
type Cache struct {
	fetcher *Fetcher
	ttl     time.Duration

	// now is replaceable in tests to simulate TTL expiry.
	now func() time.Time

	group singleflight.Group

	// mu guards record and fetchedAt. The controller fetch itself always
	// runs outside this lock.
	mu        sync.Mutex
	record    *SystemInformation
	fetchedAt time.Time
}

// NewCache creates a Cache over the given fetcher. A non-positive ttl
// selects the default of defaults.CacheTTL.
func NewCache(fetcher *Fetcher, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaults.CacheTTL
	}
	return &Cache{
		fetcher: fetcher,
		ttl:     ttl,
		now:     time.Now,
	}
}

// TTL returns the configured freshness window.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get returns the cached record, fetching from the controller only when the
// cache is stale or empty. Concurrent callers observing the same stale
// window share a single fetch and all receive its result. Get never fails:
// an unreachable controller yields the unavailable record, which is itself
// cached for the TTL window.
func (c *Cache) Get(ctx context.Context) SystemInformation {
	c.mu.Lock()
	if c.record != nil && c.now().Sub(c.fetchedAt) < c.ttl {
		rec := *c.record
		c.mu.Unlock()
		cacheHits.Inc()
		return rec
	}
	c.mu.Unlock()

	cacheMisses.Inc()

	// The fetch is detached from the triggering caller's cancellation:
	// late joiners awaiting the shared result must not receive a record
	// degraded by the first caller hanging up.
	v, _, shared := c.group.Do(cacheKey, func() (any, error) {
		rec := c.fetcher.Fetch(context.WithoutCancel(ctx))

		c.mu.Lock()
		c.record = &rec
		c.fetchedAt = c.now()
		c.mu.Unlock()

		return rec, nil
	})

	if shared {
		slog.Debug("controller fetch shared with concurrent callers")
	}

	return v.(SystemInformation)
}

// Refresh discards the cached record and calls Get, forcing a new fetch
// unless one is already in flight. An in-flight fetch is never interrupted;
// Refresh only guarantees the stale record is gone and the returned value
// comes from a completed fetch.
func (c *Cache) Refresh(ctx context.Context) SystemInformation {
	c.mu.Lock()
	c.record = nil
	c.fetchedAt = time.Time{}
	c.mu.Unlock()

	slog.Debug("controller record cache cleared")

	return c.Get(ctx)
}
