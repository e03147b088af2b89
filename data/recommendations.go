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

// Recommendation is a row of the fact_recommendations table: an analyst
// consensus snapshot for a stock on a given date.
type Recommendation struct {
	RecKey     int64      `db:"rec_key"`
	DateKey    int64      `db:"date_key"`
	StockKey   int64      `db:"stock_key"`
	SourceKey  int64      `db:"source_key"`
	Period     string     `db:"period"`
	StrongBuy  *int64     `db:"rec_strongbuy"`
	Buy        *int64     `db:"rec_buy"`
	Hold       *int64     `db:"rec_hold"`
	Sell       *int64     `db:"rec_sell"`
	StrongSell *int64     `db:"rec_strongsell"`
	Mean       *float64   `db:"rec_mean"`
	Analysts   *int64     `db:"rec_analysts"`
	Target     *float64   `db:"rec_target"`
	Trend      *string    `db:"rec_trend"`
	LoadTS     *time.Time `db:"load_ts"`
}

type RecommendationOut struct {
	DateKey          int64    `json:"date_key"`
	Period           string   `json:"period"`
	StrongBuy        *int64   `json:"strong_buy"`
	Buy              *int64   `json:"buy"`
	Hold             *int64   `json:"hold"`
	Sell             *int64   `json:"sell"`
	StrongSell       *int64   `json:"strong_sell"`
	MeanRating       *float64 `json:"mean_rating"`
	NumberOfAnalysts *int64   `json:"number_of_analysts"`
	MeanPriceTarget  *float64 `json:"mean_price_target"`
	RatingTrend      *string  `json:"rating_trend"`
}

func (rec *Recommendation) ToAPI() RecommendationOut {
	return RecommendationOut{
		DateKey:          rec.DateKey,
		Period:           rec.Period,
		StrongBuy:        rec.StrongBuy,
		Buy:              rec.Buy,
		Hold:             rec.Hold,
		Sell:             rec.Sell,
		StrongSell:       rec.StrongSell,
		MeanRating:       rec.Mean,
		NumberOfAnalysts: rec.Analysts,
		MeanPriceTarget:  rec.Target,
		RatingTrend:      rec.Trend,
	}
}
