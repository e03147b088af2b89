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

// Stock is a row of the dim_stock dimension table. nk_symbol is the natural
// key used by API clients; stock_key is the surrogate key the fact tables
// reference.
type Stock struct {
	StockKey    int64      `db:"stock_key" csv:"stock_key"`
	Symbol      string     `db:"nk_symbol" csv:"nk_symbol"`
	CompanyName *string    `db:"company_name" csv:"company_name"`
	Industry    *string    `db:"industry" csv:"industry"`
	Series      *string    `db:"series" csv:"series"`
	ISINCode    *string    `db:"isin_code" csv:"isin_code"`
	YFinSymbol  *string    `db:"yfin_symbol" csv:"yfin_symbol"`
	LoadTS      *time.Time `db:"load_ts" csv:"-"`
}

// StockOut is the public shape of a stock record. Series and load_ts are
// internal and not exposed.
type StockOut struct {
	StockKey    int64   `json:"stock_key"`
	Symbol      string  `json:"nk_symbol"`
	CompanyName *string `json:"company_name"`
	Industry    *string `json:"industry"`
	ISINCode    *string `json:"isin_code"`
	YFinSymbol  *string `json:"yfin_symbol"`
}

func (s *Stock) ToAPI() StockOut {
	return StockOut{
		StockKey:    s.StockKey,
		Symbol:      s.Symbol,
		CompanyName: s.CompanyName,
		Industry:    s.Industry,
		ISINCode:    s.ISINCode,
		YFinSymbol:  s.YFinSymbol,
	}
}
