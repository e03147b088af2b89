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
package warehouse

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/stockdw/dwserve/data"
)

// Session is the unit of work for one API request: a single pooled
// connection with an open transaction. All sub-queries of the request
// (key resolution and fact fetches) run on the same session.
type Session struct {
	conn *pgxpool.Conn
	tx   pgx.Tx
}

// Begin acquires a connection from the pool and opens a transaction.
// Acquire blocks when the pool is exhausted rather than failing.
func (wh *Warehouse) Begin(ctx context.Context) (*Session, error) {
	conn, err := wh.Pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := conn.Begin(ctx)
	if err != nil {
		conn.Release()
		return nil, err
	}

	return &Session{conn: conn, tx: tx}, nil
}

// Close ends the session: commit when cause is nil, rollback otherwise.
// The connection is returned to the pool on every path.
func (s *Session) Close(ctx context.Context, cause error) {
	defer s.conn.Release()

	if cause != nil {
		if err := s.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			log.Error().Err(err).Msg("error rolling back tx")
		}
		return
	}

	if err := s.tx.Commit(ctx); err != nil {
		log.Error().Err(err).Msg("error committing tx")
	}
}

// Ping runs SELECT 1 to verify connectivity end to end.
func (s *Session) Ping(ctx context.Context) (int, error) {
	result := 0
	err := s.tx.QueryRow(ctx, "SELECT 1").Scan(&result)
	return result, err
}

// Symbols lists ticker symbols from the stock dimension with pagination.
func (s *Session) Symbols(ctx context.Context, limit, offset int) ([]string, error) {
	entity := data.Entities[data.StockKey]

	symbols := []string{}
	err := pgxscan.Select(ctx, s.tx, &symbols,
		fmt.Sprintf("SELECT nk_symbol FROM %s ORDER BY stock_key LIMIT $1 OFFSET $2", entity.Table),
		limit, offset)
	return symbols, err
}

// StockBySymbol fetches a single stock by its exact natural-key symbol.
func (s *Session) StockBySymbol(ctx context.Context, symbol string) (*data.Stock, error) {
	entity := data.Entities[data.StockKey]

	rows, err := s.tx.Query(ctx,
		fmt.Sprintf("SELECT %s FROM %s WHERE nk_symbol = $1", entity.SelectList(), entity.Table),
		symbol)
	if err != nil {
		return nil, err
	}

	stock, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[data.Stock])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStockNotFound
		}
		return nil, err
	}

	return &stock, nil
}

// AllStocks fetches the complete stock dimension ordered by surrogate key.
// Used by the export command; API listing goes through Symbols.
func (s *Session) AllStocks(ctx context.Context) ([]data.Stock, error) {
	entity := data.Entities[data.StockKey]

	stocks := []data.Stock{}
	err := pgxscan.Select(ctx, s.tx, &stocks,
		fmt.Sprintf("SELECT %s FROM %s ORDER BY stock_key", entity.SelectList(), entity.Table))
	return stocks, err
}

// Sources lists all rows of the source dimension.
func (s *Session) Sources(ctx context.Context) ([]data.Source, error) {
	entity := data.Entities[data.SourceKey]

	sources := []data.Source{}
	err := pgxscan.Select(ctx, s.tx, &sources,
		fmt.Sprintf("SELECT %s FROM %s ORDER BY source_key", entity.SelectList(), entity.Table))
	return sources, err
}

// ResolveStock maps a ticker symbol to its surrogate key. Matching is
// case-insensitive and ignores surrounding whitespace. When the
// case-insensitive match is ambiguous the lowest surrogate key wins.
func (s *Session) ResolveStock(ctx context.Context, symbol string) (int64, error) {
	entity := data.Entities[data.StockKey]

	var stockKey int64
	err := s.tx.QueryRow(ctx,
		fmt.Sprintf("SELECT stock_key FROM %s WHERE lower(nk_symbol) = lower($1) ORDER BY stock_key LIMIT 1", entity.Table),
		strings.TrimSpace(symbol)).Scan(&stockKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrStockNotFound
		}
		return 0, err
	}

	return stockKey, nil
}

// ResolveSource maps a source name to its surrogate key with the same
// matching rules as ResolveStock.
func (s *Session) ResolveSource(ctx context.Context, name string) (int64, error) {
	entity := data.Entities[data.SourceKey]

	var sourceKey int64
	err := s.tx.QueryRow(ctx,
		fmt.Sprintf("SELECT source_key FROM %s WHERE lower(nk_name) = lower($1) ORDER BY source_key LIMIT 1", entity.Table),
		strings.TrimSpace(name)).Scan(&sourceKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrSourceNotFound
		}
		return 0, err
	}

	return sourceKey, nil
}

// OhlcvRange fetches daily bars for a stock and source, oldest first.
func (s *Session) OhlcvRange(ctx context.Context, stockKey, sourceKey int64, rng DateRange, limit int) ([]data.OhlcvBar, error) {
	sql, args := factQuery(data.Entities[data.OhlcvKey], stockKey, &sourceKey, rng, Ascending, limit)

	bars := []data.OhlcvBar{}
	err := pgxscan.Select(ctx, s.tx, &bars, sql, args...)
	return bars, err
}

// LatestOhlcv fetches the most recent bar for a stock across all sources.
// Returns ErrNoRows when the stock has no bars at all.
func (s *Session) LatestOhlcv(ctx context.Context, stockKey int64) (*data.OhlcvBar, error) {
	sql, args := factQuery(data.Entities[data.OhlcvKey], stockKey, nil, DateRange{}, Descending, 1)

	rows, err := s.tx.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	bar, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[data.OhlcvBar])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoRows
		}
		return nil, err
	}

	return &bar, nil
}

// BalanceSheets fetches balance sheet rows, most recent first.
func (s *Session) BalanceSheets(ctx context.Context, stockKey, sourceKey int64, rng DateRange, limit int) ([]data.BalanceSheet, error) {
	sql, args := factQuery(data.Entities[data.BalanceSheetKey], stockKey, &sourceKey, rng, Descending, limit)

	sheets := []data.BalanceSheet{}
	err := pgxscan.Select(ctx, s.tx, &sheets, sql, args...)
	return sheets, err
}

// Cashflows fetches cash flow statement rows, most recent first.
func (s *Session) Cashflows(ctx context.Context, stockKey, sourceKey int64, rng DateRange, limit int) ([]data.Cashflow, error) {
	sql, args := factQuery(data.Entities[data.CashflowKey], stockKey, &sourceKey, rng, Descending, limit)

	flows := []data.Cashflow{}
	err := pgxscan.Select(ctx, s.tx, &flows, sql, args...)
	return flows, err
}

// IncomeStatements fetches income statement rows, most recent first.
func (s *Session) IncomeStatements(ctx context.Context, stockKey, sourceKey int64, rng DateRange, limit int) ([]data.Income, error) {
	sql, args := factQuery(data.Entities[data.IncomeKey], stockKey, &sourceKey, rng, Descending, limit)

	statements := []data.Income{}
	err := pgxscan.Select(ctx, s.tx, &statements, sql, args...)
	return statements, err
}

// KeyRatios fetches key ratio rows, most recent first.
func (s *Session) KeyRatios(ctx context.Context, stockKey, sourceKey int64, rng DateRange, limit int) ([]data.KeyRatios, error) {
	sql, args := factQuery(data.Entities[data.KeyRatiosKey], stockKey, &sourceKey, rng, Descending, limit)

	ratios := []data.KeyRatios{}
	err := pgxscan.Select(ctx, s.tx, &ratios, sql, args...)
	return ratios, err
}

// Recommendations fetches analyst recommendation rows, most recent first.
func (s *Session) Recommendations(ctx context.Context, stockKey, sourceKey int64, rng DateRange, limit int) ([]data.Recommendation, error) {
	sql, args := factQuery(data.Entities[data.RecommendationsKey], stockKey, &sourceKey, rng, Descending, limit)

	recs := []data.Recommendation{}
	err := pgxscan.Select(ctx, s.tx, &recs, sql, args...)
	return recs, err
}
