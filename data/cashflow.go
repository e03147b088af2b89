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

// Cashflow is a row of the fact_cashflow table.
type Cashflow struct {
	CfKey     int64      `db:"cf_key"`
	DateKey   int64      `db:"date_key"`
	StockKey  int64      `db:"stock_key"`
	SourceKey int64      `db:"source_key"`
	Period    string     `db:"period"`
	NOCF      *float64   `db:"cf_nocf"`
	Capex     *float64   `db:"cf_capex"`
	NICF      *float64   `db:"cf_nicf"`
	NFCF      *float64   `db:"cf_nfcf"`
	DivPaid   *float64   `db:"cf_divpaid"`
	StockIss  *float64   `db:"cf_stockiss"`
	DebtIss   *float64   `db:"cf_debtiss"`
	NetChg    *float64   `db:"cf_netchg"`
	FCF       *float64   `db:"cf_fcf"`
	LoadTS    *time.Time `db:"load_ts"`
}

type CashflowOut struct {
	DateKey                  int64    `json:"date_key"`
	Period                   string   `json:"period"`
	NetOperatingCashFlow     *float64 `json:"net_operating_cash_flow"`
	CapitalExpenditures      *float64 `json:"capital_expenditures"`
	NetInvestingCashFlow     *float64 `json:"net_investing_cash_flow"`
	NetFinancingCashFlow     *float64 `json:"net_financing_cash_flow"`
	CashDividendsPaid        *float64 `json:"cash_dividends_paid"`
	IssuanceReductionOfStock *float64 `json:"issuance_reduction_of_stock"`
	IssuanceReductionOfDebt  *float64 `json:"issuance_reduction_of_debt"`
	NetChangeInCash          *float64 `json:"net_change_in_cash"`
	FreeCashFlow             *float64 `json:"free_cash_flow"`
}

func (cf *Cashflow) ToAPI() CashflowOut {
	return CashflowOut{
		DateKey:                  cf.DateKey,
		Period:                   cf.Period,
		NetOperatingCashFlow:     cf.NOCF,
		CapitalExpenditures:      cf.Capex,
		NetInvestingCashFlow:     cf.NICF,
		NetFinancingCashFlow:     cf.NFCF,
		CashDividendsPaid:        cf.DivPaid,
		IssuanceReductionOfStock: cf.StockIss,
		IssuanceReductionOfDebt:  cf.DebtIss,
		NetChangeInCash:          cf.NetChg,
		FreeCashFlow:             cf.FCF,
	}
}
