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

import "time"

// BalanceSheet is a row of the fact_balance_sheet table. Storage columns use
// the loader's terse bal_ prefixes; the public names in BalanceSheetOut are
// part of the API contract and must not change.
type BalanceSheet struct {
	BalKey    int64      `db:"bal_key"`
	DateKey   int64      `db:"date_key"`
	StockKey  int64      `db:"stock_key"`
	SourceKey int64      `db:"source_key"`
	Period    string     `db:"period"`
	CSTI      *float64   `db:"bal_csti"`
	Recv      *float64   `db:"bal_recv"`
	Inv       *float64   `db:"bal_inv"`
	TCA       *float64   `db:"bal_tca"`
	PPE       *float64   `db:"bal_ppe"`
	Intan     *float64   `db:"bal_intan"`
	TA        *float64   `db:"bal_ta"`
	AP        *float64   `db:"bal_ap"`
	STD       *float64   `db:"bal_std"`
	TCL       *float64   `db:"bal_tcl"`
	LTD       *float64   `db:"bal_ltd"`
	TL        *float64   `db:"bal_tl"`
	TE        *float64   `db:"bal_te"`
	Shares    *float64   `db:"bal_shares"`
	LoadTS    *time.Time `db:"load_ts"`
}

type BalanceSheetOut struct {
	DateKey                     int64    `json:"date_key"`
	Period                      string   `json:"period"`
	CashAndShortTermInvestments *float64 `json:"cash_and_short_term_investments"`
	TotalReceivables            *float64 `json:"total_receivables"`
	Inventory                   *float64 `json:"inventory"`
	TotalCurrentAssets          *float64 `json:"total_current_assets"`
	NetPropertyPlantEquipment   *float64 `json:"net_property_plant_equipment"`
	Intangibles                 *float64 `json:"intangibles"`
	TotalAssets                 *float64 `json:"total_assets"`
	AccountsPayable             *float64 `json:"accounts_payable"`
	ShortTermDebt               *float64 `json:"short_term_debt"`
	TotalCurrentLiabilities     *float64 `json:"total_current_liabilities"`
	LongTermDebt                *float64 `json:"long_term_debt"`
	TotalLiabilities            *float64 `json:"total_liabilities"`
	TotalEquity                 *float64 `json:"total_equity"`
	TotalSharesOutstanding      *float64 `json:"total_shares_outstanding"`
}

func (bs *BalanceSheet) ToAPI() BalanceSheetOut {
	return BalanceSheetOut{
		DateKey:                     bs.DateKey,
		Period:                      bs.Period,
		CashAndShortTermInvestments: bs.CSTI,
		TotalReceivables:            bs.Recv,
		Inventory:                   bs.Inv,
		TotalCurrentAssets:          bs.TCA,
		NetPropertyPlantEquipment:   bs.PPE,
		Intangibles:                 bs.Intan,
		TotalAssets:                 bs.TA,
		AccountsPayable:             bs.AP,
		ShortTermDebt:               bs.STD,
		TotalCurrentLiabilities:     bs.TCL,
		LongTermDebt:                bs.LTD,
		TotalLiabilities:            bs.TL,
		TotalEquity:                 bs.TE,
		TotalSharesOutstanding:      bs.Shares,
	}
}
