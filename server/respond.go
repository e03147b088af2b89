// Copyright 2026
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package server

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/stockdw/dwserve/data"
	"github.com/stockdw/dwserve/warehouse"
)

// detail mirrors the error body shape clients already parse:
// {"detail": "...", "field": "..."} with field set only for validation
// failures.
type detail struct {
	Detail string `json:"detail"`
	Field  string `json:"field,omitempty"`
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.log.Error().Err(err).Msg("error writing response body")
	}

	return nil
}

func (h *Handlers) writeDetail(w http.ResponseWriter, status int, msg string) {
	if err := h.writeJSON(w, status, detail{Detail: msg}); err != nil {
		h.log.Error().Err(err).Msg("error encoding error body")
	}
}

// respondError maps a handler error to its HTTP status. Resolver misses are
// 404s; a bad date_key is corrupt warehouse data, not a client mistake, so
// it surfaces as a 500.
func (h *Handlers) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var perr *paramError
	switch {
	case errors.As(err, &perr):
		if werr := h.writeJSON(w, http.StatusBadRequest, detail{Detail: perr.Reason, Field: perr.Field}); werr != nil {
			h.log.Error().Err(werr).Msg("error encoding error body")
		}
	case errors.Is(err, warehouse.ErrStockNotFound):
		h.writeDetail(w, http.StatusNotFound, "Stock not found")
	case errors.Is(err, warehouse.ErrSourceNotFound):
		h.writeDetail(w, http.StatusNotFound, "Source not found")
	case errors.Is(err, warehouse.ErrNoRows):
		h.writeDetail(w, http.StatusNotFound, "OHLCV not found")
	case errors.Is(err, data.ErrBadDateKey):
		h.log.Error().Err(err).Str("path", r.URL.Path).Msg("corrupt date_key in warehouse")
		h.writeDetail(w, http.StatusInternalServerError, "data integrity error")
	default:
		h.log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		h.writeDetail(w, http.StatusInternalServerError, "internal server error")
	}
}
