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

// KeyRatios is a row of the fact_key_ratios table.
type KeyRatios struct {
	RatioKey  int64      `db:"ratio_key"`
	DateKey   int64      `db:"date_key"`
	StockKey  int64      `db:"stock_key"`
	SourceKey int64      `db:"source_key"`
	Period    string     `db:"period"`
	PE        *float64   `db:"ratio_pe"`
	PB        *float64   `db:"ratio_pb"`
	PS        *float64   `db:"ratio_ps"`
	PCF       *float64   `db:"ratio_pcf"`
	ROE       *float64   `db:"ratio_roe"`
	ROA       *float64   `db:"ratio_roa"`
	ROIC      *float64   `db:"ratio_roic"`
	GM        *float64   `db:"ratio_gm"`
	OM        *float64   `db:"ratio_om"`
	NM        *float64   `db:"ratio_nm"`
	DE        *float64   `db:"ratio_de"`
	CR        *float64   `db:"ratio_cr"`
	QR        *float64   `db:"ratio_qr"`
	DivYield  *float64   `db:"ratio_divyield"`
	LoadTS    *time.Time `db:"load_ts"`
}

type KeyRatiosOut struct {
	DateKey                 int64    `json:"date_key"`
	Period                  string   `json:"period"`
	PriceToEarnings         *float64 `json:"price_to_earnings"`
	PriceToBook             *float64 `json:"price_to_book"`
	PriceToSales            *float64 `json:"price_to_sales"`
	PriceToCashFlow         *float64 `json:"price_to_cash_flow"`
	ReturnOnEquity          *float64 `json:"return_on_equity"`
	ReturnOnAssets          *float64 `json:"return_on_assets"`
	ReturnOnInvestedCapital *float64 `json:"return_on_invested_capital"`
	GrossMargin             *float64 `json:"gross_margin"`
	OperatingMargin         *float64 `json:"operating_margin"`
	NetMargin               *float64 `json:"net_margin"`
	DebtToEquity            *float64 `json:"debt_to_equity"`
	CurrentRatio            *float64 `json:"current_ratio"`
	QuickRatio              *float64 `json:"quick_ratio"`
	DividendYield           *float64 `json:"dividend_yield"`
}

func (kr *KeyRatios) ToAPI() KeyRatiosOut {
	return KeyRatiosOut{
		DateKey:                 kr.DateKey,
		Period:                  kr.Period,
		PriceToEarnings:         kr.PE,
		PriceToBook:             kr.PB,
		PriceToSales:            kr.PS,
		PriceToCashFlow:         kr.PCF,
		ReturnOnEquity:          kr.ROE,
		ReturnOnAssets:          kr.ROA,
		ReturnOnInvestedCapital: kr.ROIC,
		GrossMargin:             kr.GM,
		OperatingMargin:         kr.OM,
		NetMargin:               kr.NM,
		DebtToEquity:            kr.DE,
		CurrentRatio:            kr.CR,
		QuickRatio:              kr.QR,
		DividendYield:           kr.DivYield,
	}
}
