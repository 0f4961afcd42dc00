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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Cache metrics
	cacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bmcinfo_cache_hits_total",
			Help: "Total number of requests served from the fresh cache",
		},
	)

	cacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bmcinfo_cache_misses_total",
			Help: "Total number of requests that observed a stale or empty cache",
		},
	)

	// Fetch metrics
	fetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bmcinfo_fetch_duration_seconds",
			Help:    "Controller fetch latency in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
	)

	fetchFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bmcinfo_fetch_failures_total",
			Help: "Total number of controller fetches that degraded to the unavailable record",
		},
	)
)
