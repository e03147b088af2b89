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

// OhlcvBar is a row of the fact_ohlcv table: one daily price bar per
// stock x date_key x source. Price and volume columns are nullable because
// some vendors deliver partial bars.
type OhlcvBar struct {
	OhlcvKey   int64      `db:"ohlcv_key"`
	DateKey    int64      `db:"date_key"`
	StockKey   int64      `db:"stock_key"`
	SourceKey  int64      `db:"source_key"`
	OpenPrice  *float64   `db:"open_price"`
	HighPrice  *float64   `db:"high_price"`
	LowPrice   *float64   `db:"low_price"`
	ClosePrice *float64   `db:"close_price"`
	Volume     *int64     `db:"volume"`
	Dividends  *float64   `db:"dividends"`
	Splits     *float64   `db:"stock_splits"`
	LoadTS     *time.Time `db:"load_ts"`
}

// OhlcvOut is the public shape of a bar. The date_key surfaces as a parsed
// calendar timestamp, not the raw YYYYMMDD integer.
type OhlcvOut struct {
	Date       time.Time `json:"date_key"`
	OpenPrice  *float64  `json:"open_price"`
	HighPrice  *float64  `json:"high_price"`
	LowPrice   *float64  `json:"low_price"`
	ClosePrice *float64  `json:"close_price"`
	Volume     *int64    `json:"volume"`
}

// OhlcvList wraps a range query result together with the requested symbol.
type OhlcvList struct {
	Symbol string     `json:"symbol"`
	Data   []OhlcvOut `json:"data"`
}

// ToAPI converts a storage bar to its public shape. Returns ErrBadDateKey
// when the stored date_key does not encode a real date.
func (bar *OhlcvBar) ToAPI() (OhlcvOut, error) {
	date, err := ParseDateKey(bar.DateKey)
	if err != nil {
		return OhlcvOut{}, err
	}

	return OhlcvOut{
		Date:       date,
		OpenPrice:  bar.OpenPrice,
		HighPrice:  bar.HighPrice,
		LowPrice:   bar.LowPrice,
		ClosePrice: bar.ClosePrice,
		Volume:     bar.Volume,
	}, nil
}
