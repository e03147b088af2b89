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
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockdw/dwserve/data"
	"github.com/stockdw/dwserve/warehouse"
)

// fakeSession is an in-memory stand-in for a warehouse session. It applies
// the same filtering, ordering and limit semantics the SQL layer does so
// handler tests exercise the full request flow without Postgres.
type fakeSession struct {
	closed     bool
	closeCause error
	pingErr    error

	stocks  []data.Stock
	sources []data.Source
	bars    []data.OhlcvBar
	sheets  []data.BalanceSheet
	flows   []data.Cashflow
	incomes []data.Income
	ratios  []data.KeyRatios
	recs    []data.Recommendation
}

type fakeStore struct {
	sess *fakeSession
}

func (s fakeStore) Begin(_ context.Context) (Session, error) {
	return s.sess, nil
}

func (f *fakeSession) Close(_ context.Context, cause error) {
	f.closed = true
	f.closeCause = cause
}

func (f *fakeSession) Ping(_ context.Context) (int, error) {
	if f.pingErr != nil {
		return 0, f.pingErr
	}
	return 1, nil
}

func (f *fakeSession) Symbols(_ context.Context, limit, offset int) ([]string, error) {
	stocks := make([]data.Stock, len(f.stocks))
	copy(stocks, f.stocks)
	sort.Slice(stocks, func(i, j int) bool { return stocks[i].StockKey < stocks[j].StockKey })

	symbols := []string{}
	for i := offset; i < len(stocks) && len(symbols) < limit; i++ {
		symbols = append(symbols, stocks[i].Symbol)
	}
	return symbols, nil
}

func (f *fakeSession) StockBySymbol(_ context.Context, symbol string) (*data.Stock, error) {
	for i := range f.stocks {
		if f.stocks[i].Symbol == symbol {
			return &f.stocks[i], nil
		}
	}
	return nil, warehouse.ErrStockNotFound
}

func (f *fakeSession) Sources(_ context.Context) ([]data.Source, error) {
	return f.sources, nil
}

func (f *fakeSession) ResolveStock(_ context.Context, symbol string) (int64, error) {
	needle := strings.TrimSpace(symbol)
	var best int64
	for i := range f.stocks {
		if strings.EqualFold(f.stocks[i].Symbol, needle) {
			if best == 0 || f.stocks[i].StockKey < best {
				best = f.stocks[i].StockKey
			}
		}
	}
	if best == 0 {
		return 0, warehouse.ErrStockNotFound
	}
	return best, nil
}

func (f *fakeSession) ResolveSource(_ context.Context, name string) (int64, error) {
	needle := strings.TrimSpace(name)
	var best int64
	for i := range f.sources {
		if strings.EqualFold(f.sources[i].Name, needle) {
			if best == 0 || f.sources[i].SourceKey < best {
				best = f.sources[i].SourceKey
			}
		}
	}
	if best == 0 {
		return 0, warehouse.ErrSourceNotFound
	}
	return best, nil
}

// matchFacts filters fact rows the way factQuery does: exact key equality,
// inclusive date bounds, date ordering, then the limit.
func matchFacts[T any](rows []T, meta func(*T) (int64, int64, int64),
	stockKey int64, sourceKey *int64, rng warehouse.DateRange, order warehouse.Order, limit int) []T {
	out := []T{}
	for i := range rows {
		sk, src, dk := meta(&rows[i])
		if sk != stockKey {
			continue
		}
		if sourceKey != nil && src != *sourceKey {
			continue
		}
		if rng.Start != nil && dk < *rng.Start {
			continue
		}
		if rng.End != nil && dk > *rng.End {
			continue
		}
		out = append(out, rows[i])
	}

	sort.Slice(out, func(i, j int) bool {
		_, _, di := meta(&out[i])
		_, _, dj := meta(&out[j])
		if order == warehouse.Descending {
			return di > dj
		}
		return di < dj
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (f *fakeSession) OhlcvRange(_ context.Context, stockKey, sourceKey int64, rng warehouse.DateRange, limit int) ([]data.OhlcvBar, error) {
	return matchFacts(f.bars, func(b *data.OhlcvBar) (int64, int64, int64) {
		return b.StockKey, b.SourceKey, b.DateKey
	}, stockKey, &sourceKey, rng, warehouse.Ascending, limit), nil
}

func (f *fakeSession) LatestOhlcv(_ context.Context, stockKey int64) (*data.OhlcvBar, error) {
	bars := matchFacts(f.bars, func(b *data.OhlcvBar) (int64, int64, int64) {
		return b.StockKey, b.SourceKey, b.DateKey
	}, stockKey, nil, warehouse.DateRange{}, warehouse.Descending, 1)
	if len(bars) == 0 {
		return nil, warehouse.ErrNoRows
	}
	return &bars[0], nil
}

func (f *fakeSession) BalanceSheets(_ context.Context, stockKey, sourceKey int64, rng warehouse.DateRange, limit int) ([]data.BalanceSheet, error) {
	return matchFacts(f.sheets, func(r *data.BalanceSheet) (int64, int64, int64) {
		return r.StockKey, r.SourceKey, r.DateKey
	}, stockKey, &sourceKey, rng, warehouse.Descending, limit), nil
}

func (f *fakeSession) Cashflows(_ context.Context, stockKey, sourceKey int64, rng warehouse.DateRange, limit int) ([]data.Cashflow, error) {
	return matchFacts(f.flows, func(r *data.Cashflow) (int64, int64, int64) {
		return r.StockKey, r.SourceKey, r.DateKey
	}, stockKey, &sourceKey, rng, warehouse.Descending, limit), nil
}

func (f *fakeSession) IncomeStatements(_ context.Context, stockKey, sourceKey int64, rng warehouse.DateRange, limit int) ([]data.Income, error) {
	return matchFacts(f.incomes, func(r *data.Income) (int64, int64, int64) {
		return r.StockKey, r.SourceKey, r.DateKey
	}, stockKey, &sourceKey, rng, warehouse.Descending, limit), nil
}

func (f *fakeSession) KeyRatios(_ context.Context, stockKey, sourceKey int64, rng warehouse.DateRange, limit int) ([]data.KeyRatios, error) {
	return matchFacts(f.ratios, func(r *data.KeyRatios) (int64, int64, int64) {
		return r.StockKey, r.SourceKey, r.DateKey
	}, stockKey, &sourceKey, rng, warehouse.Descending, limit), nil
}

func (f *fakeSession) Recommendations(_ context.Context, stockKey, sourceKey int64, rng warehouse.DateRange, limit int) ([]data.Recommendation, error) {
	return matchFacts(f.recs, func(r *data.Recommendation) (int64, int64, int64) {
		return r.StockKey, r.SourceKey, r.DateKey
	}, stockKey, &sourceKey, rng, warehouse.Descending, limit), nil
}

func floatp(v float64) *float64 { return &v }
func int64p(v int64) *int64     { return &v }
func strp(v string) *string     { return &v }

// newFixtureSession builds a small warehouse: two stocks, two sources,
// three TESTCO bars from yfinance plus one newer bar from nse, and two
// quarters of statements.
func newFixtureSession() *fakeSession {
	bar := func(stockKey, sourceKey, dateKey int64, close float64) data.OhlcvBar {
		return data.OhlcvBar{
			DateKey:    dateKey,
			StockKey:   stockKey,
			SourceKey:  sourceKey,
			OpenPrice:  floatp(close - 1),
			HighPrice:  floatp(close + 1),
			LowPrice:   floatp(close - 2),
			ClosePrice: floatp(close),
			Volume:     int64p(1000),
		}
	}

	return &fakeSession{
		stocks: []data.Stock{
			{StockKey: 1, Symbol: "TESTCO", CompanyName: strp("Test Company Ltd"), Industry: strp("Testing")},
			{StockKey: 2, Symbol: "NOBARS", CompanyName: strp("No Bars Inc")},
		},
		sources: []data.Source{
			{SourceKey: 1, Name: "yfinance"},
			{SourceKey: 2, Name: "nse"},
		},
		bars: []data.OhlcvBar{
			bar(1, 1, 20230101, 10),
			bar(1, 1, 20230102, 11),
			bar(1, 1, 20230103, 12),
			bar(1, 2, 20230104, 99),
		},
		sheets: []data.BalanceSheet{
			{DateKey: 20221231, StockKey: 1, SourceKey: 1, Period: "Q", TA: floatp(4_000_000)},
			{DateKey: 20230331, StockKey: 1, SourceKey: 1, Period: "Q", TA: floatp(5_000_000)},
		},
		incomes: []data.Income{
			{DateKey: 20230331, StockKey: 1, SourceKey: 1, Period: "Q", Rev: floatp(750_000)},
		},
		recs: []data.Recommendation{
			{DateKey: 20230601, StockKey: 1, SourceKey: 1, Period: "0m", Buy: int64p(12), Trend: strp("up")},
		},
	}
}

// newTestRouter mounts the handlers on the same routes the server uses.
func newTestRouter(sess *fakeSession) *chi.Mux {
	h := NewHandlers(fakeStore{sess: sess}, zerolog.Nop())

	r := chi.NewRouter()
	r.Get("/db-test", h.HandleDBTest)
	r.Get("/stocks-list", h.HandleStocksList)
	r.Get("/stock-info/{symbol}", h.HandleStockInfo)
	r.Get("/sources", h.HandleSources)
	r.Get("/stock-ohlcv", h.HandleOhlcv)
	r.Get("/stock-ohlcv/latest/{symbol}", h.HandleOhlcvLatest)
	r.Get("/stock-balance-sheet", h.HandleBalanceSheet)
	r.Get("/stock-cashflow", h.HandleCashflow)
	r.Get("/stock-income", h.HandleIncome)
	r.Get("/stock-key-ratios", h.HandleKeyRatios)
	r.Get("/stock-recommendations", h.HandleRecommendations)
	return r
}

func doGet(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), into))
}

func TestHandleDBTest(t *testing.T) {
	sess := newFixtureSession()
	w := doGet(t, newTestRouter(sess), "/db-test")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]any
	decodeBody(t, w, &body)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(1), body["result"])
	assert.True(t, sess.closed)
	assert.NoError(t, sess.closeCause)
}

func TestHandleDBTestFailure(t *testing.T) {
	sess := newFixtureSession()
	sess.pingErr = fmt.Errorf("connection refused")

	w := doGet(t, newTestRouter(sess), "/db-test")

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]any
	decodeBody(t, w, &body)
	assert.Equal(t, "internal server error", body["detail"])

	// the failed session must have been rolled back
	assert.True(t, sess.closed)
	assert.Error(t, sess.closeCause)
}

func TestHandleStocksList(t *testing.T) {
	router := newTestRouter(newFixtureSession())
	w := doGet(t, router, "/stocks-list")

	assert.Equal(t, http.StatusOK, w.Code)

	var symbols []string
	decodeBody(t, w, &symbols)
	assert.Equal(t, []string{"TESTCO", "NOBARS"}, symbols)
}

func TestHandleStocksListPagination(t *testing.T) {
	router := newTestRouter(newFixtureSession())

	var symbols []string
	w := doGet(t, router, "/stocks-list?limit=1")
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &symbols)
	assert.Equal(t, []string{"TESTCO"}, symbols)

	w = doGet(t, router, "/stocks-list?limit=1&offset=1")
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &symbols)
	assert.Equal(t, []string{"NOBARS"}, symbols)

	w = doGet(t, router, "/stocks-list?offset=5")
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &symbols)
	assert.Empty(t, symbols)
}

func TestHandleStocksListValidation(t *testing.T) {
	router := newTestRouter(newFixtureSession())

	tests := []struct {
		name  string
		query string
		field string
	}{
		{"limit zero", "limit=0", "limit"},
		{"limit negative", "limit=-5", "limit"},
		{"limit above ceiling", "limit=1001", "limit"},
		{"limit non-numeric", "limit=abc", "limit"},
		{"offset negative", "offset=-1", "offset"},
		{"offset non-numeric", "offset=xyz", "offset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(t, router, "/stocks-list?"+tt.query)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var body map[string]any
			decodeBody(t, w, &body)
			assert.Equal(t, tt.field, body["field"])
		})
	}
}

func TestHandleStockInfo(t *testing.T) {
	router := newTestRouter(newFixtureSession())
	w := doGet(t, router, "/stock-info/TESTCO")

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	decodeBody(t, w, &body)
	assert.Equal(t, float64(1), body["stock_key"])
	assert.Equal(t, "TESTCO", body["nk_symbol"])
	assert.Equal(t, "Test Company Ltd", body["company_name"])
	assert.NotContains(t, body, "series")
	assert.NotContains(t, body, "load_ts")
}

func TestHandleStockInfoExactMatch(t *testing.T) {
	// unlike the fact endpoints the info lookup is exact
	router := newTestRouter(newFixtureSession())
	w := doGet(t, router, "/stock-info/testco")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	decodeBody(t, w, &body)
	assert.Equal(t, "Stock not found", body["detail"])
}

func TestHandleSources(t *testing.T) {
	router := newTestRouter(newFixtureSession())
	w := doGet(t, router, "/sources")

	assert.Equal(t, http.StatusOK, w.Code)

	var sources []map[string]any
	decodeBody(t, w, &sources)
	require.Len(t, sources, 2)
	assert.Equal(t, "yfinance", sources[0]["name"])
	assert.Equal(t, float64(1), sources[0]["source_key"])
}

func TestHandleOhlcv(t *testing.T) {
	router := newTestRouter(newFixtureSession())
	w := doGet(t, router, "/stock-ohlcv?symbol=TESTCO&source=yfinance")

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Symbol string `json:"symbol"`
		Data   []struct {
			Date       string   `json:"date_key"`
			ClosePrice *float64 `json:"close_price"`
		} `json:"data"`
	}
	decodeBody(t, w, &body)

	assert.Equal(t, "TESTCO", body.Symbol)
	require.Len(t, body.Data, 3)

	// oldest first
	assert.Equal(t, "2023-01-01T00:00:00Z", body.Data[0].Date)
	assert.Equal(t, 10.0, *body.Data[0].ClosePrice)
	assert.Equal(t, "2023-01-03T00:00:00Z", body.Data[2].Date)
	assert.Equal(t, 12.0, *body.Data[2].ClosePrice)
}

func TestHandleOhlcvResolverIsLenient(t *testing.T) {
	router := newTestRouter(newFixtureSession())

	// symbol and source match case-insensitively, surrounding whitespace ignored
	w := doGet(t, router, "/stock-ohlcv?symbol=%20testco%20&source=YFinance")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleOhlcvDateRange(t *testing.T) {
	router := newTestRouter(newFixtureSession())

	tests := []struct {
		name      string
		query     string
		wantDates []string
	}{
		{"start bound is inclusive", "start_date=20230102",
			[]string{"2023-01-02T00:00:00Z", "2023-01-03T00:00:00Z"}},
		{"end bound is inclusive", "end_date=20230102",
			[]string{"2023-01-01T00:00:00Z", "2023-01-02T00:00:00Z"}},
		{"both bounds", "start_date=20230102&end_date=20230102",
			[]string{"2023-01-02T00:00:00Z"}},
		{"empty range is a 200 with no rows", "start_date=20240101", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(t, router, "/stock-ohlcv?symbol=TESTCO&source=yfinance&"+tt.query)
			require.Equal(t, http.StatusOK, w.Code)

			var body struct {
				Data []struct {
					Date string `json:"date_key"`
				} `json:"data"`
			}
			decodeBody(t, w, &body)

			dates := []string{}
			for _, row := range body.Data {
				dates = append(dates, row.Date)
			}
			assert.Equal(t, tt.wantDates, dates)
		})
	}
}

func TestHandleOhlcvLimit(t *testing.T) {
	router := newTestRouter(newFixtureSession())
	w := doGet(t, router, "/stock-ohlcv?symbol=TESTCO&source=yfinance&limit=2")

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []json.RawMessage `json:"data"`
	}
	decodeBody(t, w, &body)
	assert.Len(t, body.Data, 2)
}

func TestHandleOhlcvValidation(t *testing.T) {
	router := newTestRouter(newFixtureSession())

	tests := []struct {
		name  string
		query string
		field string
	}{
		{"missing symbol", "source=yfinance", "symbol"},
		{"missing source", "symbol=TESTCO", "source"},
		{"blank symbol", "symbol=%20&source=yfinance", "symbol"},
		{"bad start date", "symbol=TESTCO&source=yfinance&start_date=jan", "start_date"},
		{"bad end date", "symbol=TESTCO&source=yfinance&end_date=2023-01-01", "end_date"},
		{"limit above bar ceiling", "symbol=TESTCO&source=yfinance&limit=10001", "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(t, router, "/stock-ohlcv?"+tt.query)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var body map[string]any
			decodeBody(t, w, &body)
			assert.Equal(t, tt.field, body["field"])
		})
	}
}

func TestHandleOhlcvNotFound(t *testing.T) {
	router := newTestRouter(newFixtureSession())

	w := doGet(t, router, "/stock-ohlcv?symbol=MISSING&source=yfinance")
	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]any
	decodeBody(t, w, &body)
	assert.Equal(t, "Stock not found", body["detail"])

	w = doGet(t, router, "/stock-ohlcv?symbol=TESTCO&source=bloomberg")
	assert.Equal(t, http.StatusNotFound, w.Code)
	decodeBody(t, w, &body)
	assert.Equal(t, "Source not found", body["detail"])
}

func TestHandleOhlcvLatest(t *testing.T) {
	router := newTestRouter(newFixtureSession())
	w := doGet(t, router, "/stock-ohlcv/latest/TESTCO")

	assert.Equal(t, http.StatusOK, w.Code)

	// the nse bar from 2023-01-04 is newer than any yfinance bar
	var body struct {
		Date       string   `json:"date_key"`
		ClosePrice *float64 `json:"close_price"`
	}
	decodeBody(t, w, &body)
	assert.Equal(t, "2023-01-04T00:00:00Z", body.Date)
	assert.Equal(t, 99.0, *body.ClosePrice)
}

func TestHandleOhlcvLatestNotFound(t *testing.T) {
	router := newTestRouter(newFixtureSession())

	var body map[string]any

	w := doGet(t, router, "/stock-ohlcv/latest/NOBARS")
	assert.Equal(t, http.StatusNotFound, w.Code)
	decodeBody(t, w, &body)
	assert.Equal(t, "OHLCV not found", body["detail"])

	w = doGet(t, router, "/stock-ohlcv/latest/MISSING")
	assert.Equal(t, http.StatusNotFound, w.Code)
	decodeBody(t, w, &body)
	assert.Equal(t, "Stock not found", body["detail"])
}

func TestHandleBalanceSheet(t *testing.T) {
	router := newTestRouter(newFixtureSession())
	w := doGet(t, router, "/stock-balance-sheet?symbol=TESTCO&source=yfinance")

	assert.Equal(t, http.StatusOK, w.Code)

	var rows []map[string]any
	decodeBody(t, w, &rows)
	require.Len(t, rows, 2)

	// most recent quarter first, measures under their contract names
	assert.Equal(t, float64(20230331), rows[0]["date_key"])
	assert.Equal(t, float64(5_000_000), rows[0]["total_assets"])
	assert.Equal(t, float64(20221231), rows[1]["date_key"])
	assert.NotContains(t, rows[0], "bal_ta")
	assert.NotContains(t, rows[0], "stock_key")
}

func TestHandleIncome(t *testing.T) {
	router := newTestRouter(newFixtureSession())
	w := doGet(t, router, "/stock-income?symbol=TESTCO&source=yfinance")

	assert.Equal(t, http.StatusOK, w.Code)

	var rows []map[string]any
	decodeBody(t, w, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, float64(750_000), rows[0]["revenue"])
}

func TestHandleRecommendations(t *testing.T) {
	router := newTestRouter(newFixtureSession())
	w := doGet(t, router, "/stock-recommendations?symbol=TESTCO&source=yfinance")

	assert.Equal(t, http.StatusOK, w.Code)

	var rows []map[string]any
	decodeBody(t, w, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, float64(12), rows[0]["buy"])
	assert.Equal(t, "up", rows[0]["rating_trend"])
	assert.Nil(t, rows[0]["strong_buy"])
}

func TestStatementEndpointsEmptyResult(t *testing.T) {
	// a stock/source pair with no rows is an empty list, not a 404
	router := newTestRouter(newFixtureSession())

	for _, path := range []string{
		"/stock-balance-sheet", "/stock-cashflow", "/stock-income",
		"/stock-key-ratios", "/stock-recommendations",
	} {
		w := doGet(t, router, path+"?symbol=NOBARS&source=yfinance")
		assert.Equal(t, http.StatusOK, w.Code, path)

		var rows []json.RawMessage
		decodeBody(t, w, &rows)
		assert.Empty(t, rows, path)
	}
}

func TestStatementEndpointsRequireParams(t *testing.T) {
	router := newTestRouter(newFixtureSession())

	for _, path := range []string{
		"/stock-balance-sheet", "/stock-cashflow", "/stock-income",
		"/stock-key-ratios", "/stock-recommendations",
	} {
		w := doGet(t, router, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}
