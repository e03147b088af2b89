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

// Package warehouse provides read-only access to the stock_dw star schema.
// A single pgx pool is created at process start; every API request runs all
// of its queries on one pooled connection inside one transaction.
package warehouse

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrStockNotFound is returned when a ticker symbol does not resolve to
	// a dim_stock row.
	ErrStockNotFound = errors.New("stock not found")

	// ErrSourceNotFound is returned when a source name does not resolve to a
	// dim_source row.
	ErrSourceNotFound = errors.New("source not found")

	// ErrNoRows is returned by single-row fact queries that match nothing.
	ErrNoRows = errors.New("no matching rows")
)

type Warehouse struct {
	DBUrl string

	Pool *pgxpool.Pool
}

// Connect to the warehouse database. The pool mirrors the loader's sizing:
// at most 15 connections, recycled hourly, with idle connections revalidated
// before reuse so a stale connection is never handed to a request.
func (wh *Warehouse) Connect(ctx context.Context) error {
	if wh.Pool != nil {
		return nil
	}

	cfg, err := pgxpool.ParseConfig(wh.DBUrl)
	if err != nil {
		return err
	}

	cfg.MaxConns = 15
	cfg.MaxConnLifetime = time.Hour
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return err
	}
	wh.Pool = pool

	return nil
}

// Close the database pool
func (wh *Warehouse) Close() {
	wh.Pool.Close()
}
