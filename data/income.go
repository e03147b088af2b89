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

// Income is a row of the fact_income table.
type Income struct {
	IncKey    int64      `db:"inc_key"`
	DateKey   int64      `db:"date_key"`
	StockKey  int64      `db:"stock_key"`
	SourceKey int64      `db:"source_key"`
	Period    string     `db:"period"`
	Rev       *float64   `db:"inc_rev"`
	COGS      *float64   `db:"inc_cogs"`
	GP        *float64   `db:"inc_gp"`
	SGA       *float64   `db:"inc_sga"`
	OI        *float64   `db:"inc_oi"`
	IE        *float64   `db:"inc_ie"`
	PTI       *float64   `db:"inc_pti"`
	Tax       *float64   `db:"inc_tax"`
	NI        *float64   `db:"inc_ni"`
	EPS       *float64   `db:"inc_eps"`
	EPSD      *float64   `db:"inc_epsd"`
	Shares    *float64   `db:"inc_shares"`
	EBITDA    *float64   `db:"inc_ebitda"`
	LoadTS    *time.Time `db:"load_ts"`
}

type IncomeOut struct {
	DateKey                  int64    `json:"date_key"`
	Period                   string   `json:"period"`
	Revenue                  *float64 `json:"revenue"`
	CostOfGoodsSold          *float64 `json:"cost_of_goods_sold"`
	GrossProfit              *float64 `json:"gross_profit"`
	SGAExpense               *float64 `json:"sga_expense"`
	OperatingIncome          *float64 `json:"operating_income"`
	InterestExpense          *float64 `json:"interest_expense"`
	PretaxIncome             *float64 `json:"pretax_income"`
	IncomeTaxes              *float64 `json:"income_taxes"`
	NetIncome                *float64 `json:"net_income"`
	EPSBasic                 *float64 `json:"eps_basic"`
	EPSDiluted               *float64 `json:"eps_diluted"`
	DilutedSharesOutstanding *float64 `json:"diluted_shares_outstanding"`
	EBITDA                   *float64 `json:"ebitda"`
}

func (inc *Income) ToAPI() IncomeOut {
	return IncomeOut{
		DateKey:                  inc.DateKey,
		Period:                   inc.Period,
		Revenue:                  inc.Rev,
		CostOfGoodsSold:          inc.COGS,
		GrossProfit:              inc.GP,
		SGAExpense:               inc.SGA,
		OperatingIncome:          inc.OI,
		InterestExpense:          inc.IE,
		PretaxIncome:             inc.PTI,
		IncomeTaxes:              inc.Tax,
		NetIncome:                inc.NI,
		EPSBasic:                 inc.EPS,
		EPSDiluted:               inc.EPSD,
		DilutedSharesOutstanding: inc.Shares,
		EBITDA:                   inc.EBITDA,
	}
}
