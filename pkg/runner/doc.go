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

// Package runner executes CLP commands against a management controller
// over SSH.
//
// Each command runs in its own SSH connection and session. Management
// processors cap the number of concurrent channels per connection low
// enough that multiplexing sessions over one connection fails under the
// concurrent fetch pattern used by pkg/bmc, so the per-command connection
// is deliberate.
//
// The Runner interface is the seam used by tests and by any future
// transport (e.g. a serial console or IPMI bridge).
package runner
