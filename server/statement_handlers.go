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

	"github.com/stockdw/dwserve/warehouse"
)

// statementRequest carries the validated parameters shared by every
// statement-type endpoint: required symbol and source, optional inclusive
// date bounds, limit within 1..1000.
type statementRequest struct {
	symbol string
	source string
	rng    warehouse.DateRange
	limit  int
}

func parseStatementRequest(r *http.Request) (statementRequest, error) {
	q := r.URL.Query()

	symbol, err := requiredString(q, "symbol")
	if err != nil {
		return statementRequest{}, err
	}

	source, err := requiredString(q, "source")
	if err != nil {
		return statementRequest{}, err
	}

	rng, err := parseDateRange(q)
	if err != nil {
		return statementRequest{}, err
	}

	limit, err := parseLimit(q, defaultListLimit, maxListLimit)
	if err != nil {
		return statementRequest{}, err
	}

	return statementRequest{symbol: symbol, source: source, rng: rng, limit: limit}, nil
}

// serveStatements runs the shared resolve-then-fetch flow and responds with
// whatever list fetch produced. Every statement endpoint differs only in
// the fetch closure.
func (h *Handlers) serveStatements(w http.ResponseWriter, r *http.Request,
	fetch func(ctx context.Context, sess Session, stockKey, sourceKey int64, rng warehouse.DateRange, limit int) (any, error)) {
	req, err := parseStatementRequest(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.withSession(w, r, func(ctx context.Context, sess Session) error {
		stockKey, err := sess.ResolveStock(ctx, req.symbol)
		if err != nil {
			return err
		}

		sourceKey, err := sess.ResolveSource(ctx, req.source)
		if err != nil {
			return err
		}

		out, err := fetch(ctx, sess, stockKey, sourceKey, req.rng, req.limit)
		if err != nil {
			return err
		}

		return h.writeJSON(w, http.StatusOK, out)
	})
}

// HandleBalanceSheet handles GET /stock-balance-sheet
func (h *Handlers) HandleBalanceSheet(w http.ResponseWriter, r *http.Request) {
	h.serveStatements(w, r, func(ctx context.Context, sess Session, stockKey, sourceKey int64, rng warehouse.DateRange, limit int) (any, error) {
		rows, err := sess.BalanceSheets(ctx, stockKey, sourceKey, rng, limit)
		if err != nil {
			return nil, err
		}

		out := make([]any, 0, len(rows))
		for i := range rows {
			out = append(out, rows[i].ToAPI())
		}
		return out, nil
	})
}

// HandleCashflow handles GET /stock-cashflow
func (h *Handlers) HandleCashflow(w http.ResponseWriter, r *http.Request) {
	h.serveStatements(w, r, func(ctx context.Context, sess Session, stockKey, sourceKey int64, rng warehouse.DateRange, limit int) (any, error) {
		rows, err := sess.Cashflows(ctx, stockKey, sourceKey, rng, limit)
		if err != nil {
			return nil, err
		}

		out := make([]any, 0, len(rows))
		for i := range rows {
			out = append(out, rows[i].ToAPI())
		}
		return out, nil
	})
}

// HandleIncome handles GET /stock-income
func (h *Handlers) HandleIncome(w http.ResponseWriter, r *http.Request) {
	h.serveStatements(w, r, func(ctx context.Context, sess Session, stockKey, sourceKey int64, rng warehouse.DateRange, limit int) (any, error) {
		rows, err := sess.IncomeStatements(ctx, stockKey, sourceKey, rng, limit)
		if err != nil {
			return nil, err
		}

		out := make([]any, 0, len(rows))
		for i := range rows {
			out = append(out, rows[i].ToAPI())
		}
		return out, nil
	})
}

// HandleKeyRatios handles GET /stock-key-ratios
func (h *Handlers) HandleKeyRatios(w http.ResponseWriter, r *http.Request) {
	h.serveStatements(w, r, func(ctx context.Context, sess Session, stockKey, sourceKey int64, rng warehouse.DateRange, limit int) (any, error) {
		rows, err := sess.KeyRatios(ctx, stockKey, sourceKey, rng, limit)
		if err != nil {
			return nil, err
		}

		out := make([]any, 0, len(rows))
		for i := range rows {
			out = append(out, rows[i].ToAPI())
		}
		return out, nil
	})
}

// HandleRecommendations handles GET /stock-recommendations
func (h *Handlers) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	h.serveStatements(w, r, func(ctx context.Context, sess Session, stockKey, sourceKey int64, rng warehouse.DateRange, limit int) (any, error) {
		rows, err := sess.Recommendations(ctx, stockKey, sourceKey, rng, limit)
		if err != nil {
			return nil, err
		}

		out := make([]any, 0, len(rows))
		for i := range rows {
			out = append(out, rows[i].ToAPI())
		}
		return out, nil
	})
}
