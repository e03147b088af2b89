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
package data

import "strings"

// Entity describes one warehouse table: its qualified name, the ordered
// column list used for SELECT projections, and the DDL it was created with.
// Pure data; the tables themselves are created and loaded by the external
// ETL pipeline, never by this service.
type Entity struct {
	Table   string
	Key     string
	Columns []string
	Schema  string
}

// SelectList returns the entity's columns joined for use in a SELECT.
func (e *Entity) SelectList() string {
	return strings.Join(e.Columns, ", ")
}

const (
	StockKey           = "dim-stock"
	SourceKey          = "dim-source"
	OhlcvKey           = "fact-ohlcv"
	BalanceSheetKey    = "fact-balance-sheet"
	CashflowKey        = "fact-cashflow"
	IncomeKey          = "fact-income"
	KeyRatiosKey       = "fact-key-ratios"
	RecommendationsKey = "fact-recommendations"
)

var Entities = map[string]*Entity{
	StockKey: {
		Table: "stock_dw.dim_stock",
		Key:   "stock_key",
		Columns: []string{
			"stock_key", "nk_symbol", "company_name", "industry", "series",
			"isin_code", "yfin_symbol", "load_ts",
		},
		Schema: `CREATE TABLE stock_dw.dim_stock (
stock_key    SERIAL PRIMARY KEY,
nk_symbol    TEXT NOT NULL UNIQUE,
company_name TEXT,
industry     TEXT,
series       TEXT,
isin_code    TEXT,
yfin_symbol  TEXT,
load_ts      TIMESTAMP
);

CREATE INDEX dim_stock_nk_symbol_idx ON stock_dw.dim_stock(nk_symbol);`,
	},
	SourceKey: {
		Table: "stock_dw.dim_source",
		Key:   "source_key",
		Columns: []string{
			"source_key", "nk_name", "load_ts",
		},
		Schema: `CREATE TABLE stock_dw.dim_source (
source_key SERIAL PRIMARY KEY,
nk_name    TEXT NOT NULL UNIQUE,
load_ts    TIMESTAMP
);`,
	},
	OhlcvKey: {
		Table: "stock_dw.fact_ohlcv",
		Key:   "ohlcv_key",
		Columns: []string{
			"ohlcv_key", "date_key", "stock_key", "source_key",
			"open_price", "high_price", "low_price", "close_price",
			"volume", "dividends", "stock_splits", "load_ts",
		},
		Schema: `CREATE TABLE stock_dw.fact_ohlcv (
ohlcv_key    SERIAL PRIMARY KEY,
date_key     BIGINT NOT NULL,
stock_key    BIGINT NOT NULL REFERENCES stock_dw.dim_stock(stock_key),
source_key   BIGINT NOT NULL REFERENCES stock_dw.dim_source(source_key),
open_price   DOUBLE PRECISION,
high_price   DOUBLE PRECISION,
low_price    DOUBLE PRECISION,
close_price  DOUBLE PRECISION,
volume       BIGINT,
dividends    DOUBLE PRECISION,
stock_splits DOUBLE PRECISION,
load_ts      TIMESTAMP
);

CREATE INDEX fact_ohlcv_stock_date_idx ON stock_dw.fact_ohlcv(stock_key, date_key);`,
	},
	BalanceSheetKey: {
		Table: "stock_dw.fact_balance_sheet",
		Key:   "bal_key",
		Columns: []string{
			"bal_key", "date_key", "stock_key", "source_key", "period",
			"bal_csti", "bal_recv", "bal_inv", "bal_tca", "bal_ppe",
			"bal_intan", "bal_ta", "bal_ap", "bal_std", "bal_tcl",
			"bal_ltd", "bal_tl", "bal_te", "bal_shares", "load_ts",
		},
		Schema: `CREATE TABLE stock_dw.fact_balance_sheet (
bal_key    SERIAL PRIMARY KEY,
date_key   BIGINT NOT NULL,
stock_key  BIGINT NOT NULL REFERENCES stock_dw.dim_stock(stock_key),
source_key BIGINT NOT NULL REFERENCES stock_dw.dim_source(source_key),
period     TEXT NOT NULL,
bal_csti   DOUBLE PRECISION,
bal_recv   DOUBLE PRECISION,
bal_inv    DOUBLE PRECISION,
bal_tca    DOUBLE PRECISION,
bal_ppe    DOUBLE PRECISION,
bal_intan  DOUBLE PRECISION,
bal_ta     DOUBLE PRECISION,
bal_ap     DOUBLE PRECISION,
bal_std    DOUBLE PRECISION,
bal_tcl    DOUBLE PRECISION,
bal_ltd    DOUBLE PRECISION,
bal_tl     DOUBLE PRECISION,
bal_te     DOUBLE PRECISION,
bal_shares DOUBLE PRECISION,
load_ts    TIMESTAMP
);

CREATE INDEX fact_balance_sheet_stock_date_idx ON stock_dw.fact_balance_sheet(stock_key, date_key);`,
	},
	CashflowKey: {
		Table: "stock_dw.fact_cashflow",
		Key:   "cf_key",
		Columns: []string{
			"cf_key", "date_key", "stock_key", "source_key", "period",
			"cf_nocf", "cf_capex", "cf_nicf", "cf_nfcf", "cf_divpaid",
			"cf_stockiss", "cf_debtiss", "cf_netchg", "cf_fcf", "load_ts",
		},
		Schema: `CREATE TABLE stock_dw.fact_cashflow (
cf_key      SERIAL PRIMARY KEY,
date_key    BIGINT NOT NULL,
stock_key   BIGINT NOT NULL REFERENCES stock_dw.dim_stock(stock_key),
source_key  BIGINT NOT NULL REFERENCES stock_dw.dim_source(source_key),
period      TEXT NOT NULL,
cf_nocf     DOUBLE PRECISION,
cf_capex    DOUBLE PRECISION,
cf_nicf     DOUBLE PRECISION,
cf_nfcf     DOUBLE PRECISION,
cf_divpaid  DOUBLE PRECISION,
cf_stockiss DOUBLE PRECISION,
cf_debtiss  DOUBLE PRECISION,
cf_netchg   DOUBLE PRECISION,
cf_fcf      DOUBLE PRECISION,
load_ts     TIMESTAMP
);

CREATE INDEX fact_cashflow_stock_date_idx ON stock_dw.fact_cashflow(stock_key, date_key);`,
	},
	IncomeKey: {
		Table: "stock_dw.fact_income",
		Key:   "inc_key",
		Columns: []string{
			"inc_key", "date_key", "stock_key", "source_key", "period",
			"inc_rev", "inc_cogs", "inc_gp", "inc_sga", "inc_oi",
			"inc_ie", "inc_pti", "inc_tax", "inc_ni", "inc_eps",
			"inc_epsd", "inc_shares", "inc_ebitda", "load_ts",
		},
		Schema: `CREATE TABLE stock_dw.fact_income (
inc_key    SERIAL PRIMARY KEY,
date_key   BIGINT NOT NULL,
stock_key  BIGINT NOT NULL REFERENCES stock_dw.dim_stock(stock_key),
source_key BIGINT NOT NULL REFERENCES stock_dw.dim_source(source_key),
period     TEXT NOT NULL,
inc_rev    DOUBLE PRECISION,
inc_cogs   DOUBLE PRECISION,
inc_gp     DOUBLE PRECISION,
inc_sga    DOUBLE PRECISION,
inc_oi     DOUBLE PRECISION,
inc_ie     DOUBLE PRECISION,
inc_pti    DOUBLE PRECISION,
inc_tax    DOUBLE PRECISION,
inc_ni     DOUBLE PRECISION,
inc_eps    DOUBLE PRECISION,
inc_epsd   DOUBLE PRECISION,
inc_shares DOUBLE PRECISION,
inc_ebitda DOUBLE PRECISION,
load_ts    TIMESTAMP
);

CREATE INDEX fact_income_stock_date_idx ON stock_dw.fact_income(stock_key, date_key);`,
	},
	KeyRatiosKey: {
		Table: "stock_dw.fact_key_ratios",
		Key:   "ratio_key",
		Columns: []string{
			"ratio_key", "date_key", "stock_key", "source_key", "period",
			"ratio_pe", "ratio_pb", "ratio_ps", "ratio_pcf", "ratio_roe",
			"ratio_roa", "ratio_roic", "ratio_gm", "ratio_om", "ratio_nm",
			"ratio_de", "ratio_cr", "ratio_qr", "ratio_divyield", "load_ts",
		},
		Schema: `CREATE TABLE stock_dw.fact_key_ratios (
ratio_key      SERIAL PRIMARY KEY,
date_key       BIGINT NOT NULL,
stock_key      BIGINT NOT NULL REFERENCES stock_dw.dim_stock(stock_key),
source_key     BIGINT NOT NULL REFERENCES stock_dw.dim_source(source_key),
period         TEXT NOT NULL,
ratio_pe       DOUBLE PRECISION,
ratio_pb       DOUBLE PRECISION,
ratio_ps       DOUBLE PRECISION,
ratio_pcf      DOUBLE PRECISION,
ratio_roe      DOUBLE PRECISION,
ratio_roa      DOUBLE PRECISION,
ratio_roic     DOUBLE PRECISION,
ratio_gm       DOUBLE PRECISION,
ratio_om       DOUBLE PRECISION,
ratio_nm       DOUBLE PRECISION,
ratio_de       DOUBLE PRECISION,
ratio_cr       DOUBLE PRECISION,
ratio_qr       DOUBLE PRECISION,
ratio_divyield DOUBLE PRECISION,
load_ts        TIMESTAMP
);

CREATE INDEX fact_key_ratios_stock_date_idx ON stock_dw.fact_key_ratios(stock_key, date_key);`,
	},
	RecommendationsKey: {
		Table: "stock_dw.fact_recommendations",
		Key:   "rec_key",
		Columns: []string{
			"rec_key", "date_key", "stock_key", "source_key", "period",
			"rec_strongbuy", "rec_buy", "rec_hold", "rec_sell",
			"rec_strongsell", "rec_mean", "rec_analysts", "rec_target",
			"rec_trend", "load_ts",
		},
		Schema: `CREATE TABLE stock_dw.fact_recommendations (
rec_key        SERIAL PRIMARY KEY,
date_key       BIGINT NOT NULL,
stock_key      BIGINT NOT NULL REFERENCES stock_dw.dim_stock(stock_key),
source_key     BIGINT NOT NULL REFERENCES stock_dw.dim_source(source_key),
period         TEXT NOT NULL,
rec_strongbuy  BIGINT,
rec_buy        BIGINT,
rec_hold       BIGINT,
rec_sell       BIGINT,
rec_strongsell BIGINT,
rec_mean       DOUBLE PRECISION,
rec_analysts   BIGINT,
rec_target     DOUBLE PRECISION,
rec_trend      TEXT,
load_ts        TIMESTAMP
);

CREATE INDEX fact_recommendations_stock_date_idx ON stock_dw.fact_recommendations(stock_key, date_key);`,
	},
}
