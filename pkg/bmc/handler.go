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
	"fmt"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/bmc-info/pkg/serializer"
)

// Handler serves the cached controller record over HTTP.
type Handler struct {
	Cache *Cache
}

// NewHandler creates an HTTP handler over the given cache.
func NewHandler(cache *Cache) *Handler {
	return &Handler{Cache: cache}
}

// HandleSystem handles GET requests for the current controller record.
// It always responds 200 with a record; controller unavailability is
// encoded in the record fields, not the status code.
func (h *Handler) HandleSystem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		slog.Error("method not allowed", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	info := h.Cache.Get(r.Context())

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.Cache.TTL().Seconds())))
	serializer.RespondJSON(w, http.StatusOK, info)
}

// HandleRefresh handles POST requests that discard the cached record and
// return a freshly fetched one.
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		slog.Error("method not allowed", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	info := h.Cache.Refresh(r.Context())

	serializer.RespondJSON(w, http.StatusOK, info)
}
