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
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/stockdw/dwserve/data"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
	defaultBarLimit  = 1000
	maxBarLimit      = 10000
)

// Handlers serves every warehouse endpoint. Each request is one session:
// acquire, resolve, fetch, map, respond, then commit or roll back.
type Handlers struct {
	store Store
	log   zerolog.Logger
}

func NewHandlers(store Store, log zerolog.Logger) *Handlers {
	return &Handlers{
		store: store,
		log:   log.With().Str("component", "handlers").Logger(),
	}
}

// withSession runs fn inside a per-request warehouse session. The session
// is closed on every path: commit when fn succeeds, rollback when it fails.
func (h *Handlers) withSession(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, sess Session) error) {
	ctx := r.Context()

	sess, err := h.store.Begin(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("could not open warehouse session")
		h.writeDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	err = fn(ctx, sess)
	sess.Close(ctx, err)

	if err != nil {
		h.respondError(w, r, err)
	}
}

// HandleDBTest handles GET /db-test. Runs SELECT 1 to verify connectivity
// and session wiring end to end.
func (h *Handlers) HandleDBTest(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(ctx context.Context, sess Session) error {
		result, err := sess.Ping(ctx)
		if err != nil {
			return err
		}

		return h.writeJSON(w, http.StatusOK, map[string]any{"ok": true, "result": result})
	})
}

// HandleStocksList handles GET /stocks-list
func (h *Handlers) HandleStocksList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := parseLimit(q, defaultListLimit, maxListLimit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	offset, err := parseOffset(q)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.withSession(w, r, func(ctx context.Context, sess Session) error {
		symbols, err := sess.Symbols(ctx, limit, offset)
		if err != nil {
			return err
		}

		return h.writeJSON(w, http.StatusOK, symbols)
	})
}

// HandleStockInfo handles GET /stock-info/{symbol}. The lookup is an exact
// match on the natural key, unlike the fact endpoints which resolve
// case-insensitively.
func (h *Handlers) HandleStockInfo(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	h.withSession(w, r, func(ctx context.Context, sess Session) error {
		stock, err := sess.StockBySymbol(ctx, symbol)
		if err != nil {
			return err
		}

		return h.writeJSON(w, http.StatusOK, stock.ToAPI())
	})
}

// HandleSources handles GET /sources
func (h *Handlers) HandleSources(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(ctx context.Context, sess Session) error {
		sources, err := sess.Sources(ctx)
		if err != nil {
			return err
		}

		out := make([]data.SourceOut, 0, len(sources))
		for i := range sources {
			out = append(out, sources[i].ToAPI())
		}

		return h.writeJSON(w, http.StatusOK, out)
	})
}
