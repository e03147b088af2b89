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
	"fmt"
	"strings"
	"time"

	"github.com/xeonx/timeago"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/stockdw/dwserve/data"
)

// NumStocks returns the total count of rows in the stock dimension
func (wh *Warehouse) NumStocks(ctx context.Context) (int, error) {
	conn, err := wh.Pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	count := 0
	err = conn.QueryRow(ctx, fmt.Sprintf("SELECT count(*) FROM %s", data.Entities[data.StockKey].Table)).Scan(&count)
	return count, err
}

// NumSources returns the total count of rows in the source dimension
func (wh *Warehouse) NumSources(ctx context.Context) (int, error) {
	conn, err := wh.Pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	count := 0
	err = conn.QueryRow(ctx, fmt.Sprintf("SELECT count(*) FROM %s", data.Entities[data.SourceKey].Table)).Scan(&count)
	return count, err
}

// FactCounts returns row counts for every fact table keyed by entity name
func (wh *Warehouse) FactCounts(ctx context.Context) (map[string]int64, error) {
	conn, err := wh.Pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	counts := make(map[string]int64)
	for _, key := range []string{data.OhlcvKey, data.BalanceSheetKey, data.CashflowKey,
		data.IncomeKey, data.KeyRatiosKey, data.RecommendationsKey} {
		var count int64
		if err := conn.QueryRow(ctx, fmt.Sprintf("SELECT count(*) FROM %s", data.Entities[key].Table)).Scan(&count); err != nil {
			return nil, err
		}
		counts[key] = count
	}

	return counts, nil
}

// LastLoaded returns the most recent load timestamp across the dimensions
func (wh *Warehouse) LastLoaded(ctx context.Context) (time.Time, error) {
	conn, err := wh.Pool.Acquire(ctx)
	if err != nil {
		return time.Time{}, err
	}
	defer conn.Release()

	var lastLoaded time.Time
	err = conn.QueryRow(ctx, fmt.Sprintf(
		"SELECT coalesce(max(load_ts), '0001-01-01'::timestamp) FROM %s",
		data.Entities[data.StockKey].Table)).Scan(&lastLoaded)
	if err != nil {
		return time.Time{}, err
	}

	return lastLoaded, nil
}

// Summary returns a description of the warehouse in markdown
func (wh *Warehouse) Summary(ctx context.Context) (string, error) {
	p := message.NewPrinter(language.English)
	builder := strings.Builder{}

	builder.WriteString("# Stock Data Warehouse\n")
	builder.WriteString("## Details\n\n")
	builder.WriteString(fmt.Sprintf("Database: %s\n\n", wh.DBUrl))

	numStocks, err := wh.NumStocks(ctx)
	if err != nil {
		return "", err
	}
	builder.WriteString(p.Sprintf("  * Stocks: %d\n", numStocks))

	numSources, err := wh.NumSources(ctx)
	if err != nil {
		return "", err
	}
	builder.WriteString(p.Sprintf("  * Sources: %d\n\n", numSources))

	builder.WriteString("## Fact tables\n\n")

	factCounts, err := wh.FactCounts(ctx)
	if err != nil {
		return "", err
	}

	for _, key := range []string{data.OhlcvKey, data.BalanceSheetKey, data.CashflowKey,
		data.IncomeKey, data.KeyRatiosKey, data.RecommendationsKey} {
		builder.WriteString(p.Sprintf("  * %s: %d rows\n", data.Entities[key].Table, factCounts[key]))
	}

	lastLoaded, err := wh.LastLoaded(ctx)
	if err != nil {
		return "", err
	}

	if lastLoaded.Year() > 1 {
		builder.WriteString(fmt.Sprintf("\nLast loaded: %s\n", timeago.English.Format(lastLoaded)))
	} else {
		builder.WriteString("\nLast loaded: never\n")
	}

	return builder.String(), nil
}
