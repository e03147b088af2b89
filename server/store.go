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

	"github.com/stockdw/dwserve/data"
	"github.com/stockdw/dwserve/warehouse"
)

// Store opens one Session per request.
type Store interface {
	Begin(ctx context.Context) (Session, error)
}

// Session is the read surface handlers run against. *warehouse.Session
// satisfies it; tests substitute an in-memory fake.
type Session interface {
	Close(ctx context.Context, cause error)

	Ping(ctx context.Context) (int, error)
	Symbols(ctx context.Context, limit, offset int) ([]string, error)
	StockBySymbol(ctx context.Context, symbol string) (*data.Stock, error)
	Sources(ctx context.Context) ([]data.Source, error)

	ResolveStock(ctx context.Context, symbol string) (int64, error)
	ResolveSource(ctx context.Context, name string) (int64, error)

	OhlcvRange(ctx context.Context, stockKey, sourceKey int64, rng warehouse.DateRange, limit int) ([]data.OhlcvBar, error)
	LatestOhlcv(ctx context.Context, stockKey int64) (*data.OhlcvBar, error)
	BalanceSheets(ctx context.Context, stockKey, sourceKey int64, rng warehouse.DateRange, limit int) ([]data.BalanceSheet, error)
	Cashflows(ctx context.Context, stockKey, sourceKey int64, rng warehouse.DateRange, limit int) ([]data.Cashflow, error)
	IncomeStatements(ctx context.Context, stockKey, sourceKey int64, rng warehouse.DateRange, limit int) ([]data.Income, error)
	KeyRatios(ctx context.Context, stockKey, sourceKey int64, rng warehouse.DateRange, limit int) ([]data.KeyRatios, error)
	Recommendations(ctx context.Context, stockKey, sourceKey int64, rng warehouse.DateRange, limit int) ([]data.Recommendation, error)
}

// warehouseStore adapts *warehouse.Warehouse to the Store interface.
type warehouseStore struct {
	wh *warehouse.Warehouse
}

func (s warehouseStore) Begin(ctx context.Context) (Session, error) {
	return s.wh.Begin(ctx)
}

// NewStore wraps a warehouse for use by the handlers.
func NewStore(wh *warehouse.Warehouse) Store {
	return warehouseStore{wh: wh}
}
