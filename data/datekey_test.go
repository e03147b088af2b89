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
package data_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stockdw/dwserve/data"
)

var _ = Describe("ParseDateKey", func() {
	When("the date key encodes a real date", func() {
		It("returns midnight UTC of that date", func() {
			parsed, err := data.ParseDateKey(20230415)
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(time.Date(2023, time.April, 15, 0, 0, 0, 0, time.UTC)))
		})

		It("handles leap days", func() {
			parsed, err := data.ParseDateKey(20240229)
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed.Day()).To(Equal(29))
		})
	})

	When("the date key is malformed", func() {
		It("rejects values outside the YYYYMMDD range", func() {
			_, err := data.ParseDateKey(0)
			Expect(err).To(MatchError(data.ErrBadDateKey))

			_, err = data.ParseDateKey(123456789)
			Expect(err).To(MatchError(data.ErrBadDateKey))
		})

		It("rejects month 13", func() {
			_, err := data.ParseDateKey(20231301)
			Expect(err).To(MatchError(data.ErrBadDateKey))
		})

		It("rejects day zero", func() {
			_, err := data.ParseDateKey(20230400)
			Expect(err).To(MatchError(data.ErrBadDateKey))
		})

		It("rejects February 30th", func() {
			_, err := data.ParseDateKey(20230230)
			Expect(err).To(MatchError(data.ErrBadDateKey))
		})
	})
})

var _ = Describe("FormatDateKey", func() {
	It("round-trips with ParseDateKey", func() {
		date := time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)
		key := data.FormatDateKey(date)
		Expect(key).To(Equal(int64(19991231)))

		parsed, err := data.ParseDateKey(key)
		Expect(err).NotTo(HaveOccurred())
		Expect(parsed).To(Equal(date))
	})
})

var _ = Describe("OhlcvBar", func() {
	closePrice := 101.5
	volume := int64(15000)

	It("converts the date key when mapping to the API shape", func() {
		bar := data.OhlcvBar{
			DateKey:    20230103,
			ClosePrice: &closePrice,
			Volume:     &volume,
		}

		out, err := bar.ToAPI()
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Date).To(Equal(time.Date(2023, time.January, 3, 0, 0, 0, 0, time.UTC)))
		Expect(out.ClosePrice).To(Equal(&closePrice))
		Expect(out.Volume).To(Equal(&volume))
	})

	It("propagates a corrupt date key", func() {
		bar := data.OhlcvBar{DateKey: 20231399}
		_, err := bar.ToAPI()
		Expect(err).To(MatchError(data.ErrBadDateKey))
	})
})

var _ = Describe("Entities", func() {
	It("registers every warehouse table", func() {
		Expect(data.Entities).To(HaveLen(8))
		for _, key := range []string{
			data.StockKey, data.SourceKey, data.OhlcvKey,
			data.BalanceSheetKey, data.CashflowKey, data.IncomeKey,
			data.KeyRatiosKey, data.RecommendationsKey,
		} {
			Expect(data.Entities).To(HaveKey(key))
		}
	})

	It("qualifies tables with the warehouse schema", func() {
		for _, entity := range data.Entities {
			Expect(entity.Table).To(HavePrefix("stock_dw."))
			Expect(entity.Columns).NotTo(BeEmpty())
			Expect(entity.SelectList()).To(ContainSubstring(", "))
		}
	})
})
