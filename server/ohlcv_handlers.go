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

	"github.com/stockdw/dwserve/data"
)

// HandleOhlcv handles GET /stock-ohlcv. Bars come back oldest first with
// the date_key parsed into a calendar timestamp.
func (h *Handlers) HandleOhlcv(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	symbol, err := requiredString(q, "symbol")
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	source, err := requiredString(q, "source")
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	rng, err := parseDateRange(q)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	limit, err := parseLimit(q, defaultBarLimit, maxBarLimit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.withSession(w, r, func(ctx context.Context, sess Session) error {
		stockKey, err := sess.ResolveStock(ctx, symbol)
		if err != nil {
			return err
		}

		sourceKey, err := sess.ResolveSource(ctx, source)
		if err != nil {
			return err
		}

		bars, err := sess.OhlcvRange(ctx, stockKey, sourceKey, rng, limit)
		if err != nil {
			return err
		}

		out := data.OhlcvList{Symbol: symbol, Data: make([]data.OhlcvOut, 0, len(bars))}
		for i := range bars {
			bar, err := bars[i].ToAPI()
			if err != nil {
				return err
			}
			out.Data = append(out.Data, bar)
		}

		return h.writeJSON(w, http.StatusOK, out)
	})
}

// HandleOhlcvLatest handles GET /stock-ohlcv/latest/{symbol}. Returns the
// single most recent bar across sources, or a 404 when the stock has none.
func (h *Handlers) HandleOhlcvLatest(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	h.withSession(w, r, func(ctx context.Context, sess Session) error {
		stockKey, err := sess.ResolveStock(ctx, symbol)
		if err != nil {
			return err
		}

		bar, err := sess.LatestOhlcv(ctx, stockKey)
		if err != nil {
			return err
		}

		out, err := bar.ToAPI()
		if err != nil {
			return err
		}

		return h.writeJSON(w, http.StatusOK, out)
	})
}
