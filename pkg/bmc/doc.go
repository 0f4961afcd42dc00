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

// Package bmc maintains a cached view of a management controller's identity
// and firmware information.
//
// # Overview
//
// Querying a management processor is slow (seconds per command), so callers
// are served from a TTL cache. The package is built from three parts:
//
//   - Fetcher issues the three CLP identity queries concurrently and
//     assembles their output into a SystemInformation record. It never
//     fails: any transport or parse problem yields a record with every
//     field set to "Unavailable".
//   - Cache wraps a Fetcher with a TTL and single-flight coordination:
//     N callers hitting a stale cache produce exactly one controller
//     fetch and all receive its result. A failed fetch is cached for the
//     full TTL window to avoid hammering a failing controller.
//   - Handler exposes the cache over HTTP (GET current record, POST
//     forced refresh).
//
// Unavailability is encoded in the data, not the control flow: Get and
// Refresh always return a record, so HTTP handlers need no error path for
// controller failures.
package bmc
