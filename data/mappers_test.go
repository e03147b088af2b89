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
	json "github.com/goccy/go-json"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stockdw/dwserve/data"
)

var _ = Describe("Stock", func() {
	It("exposes the public fields and hides internal ones", func() {
		company := "Test Company Ltd"
		series := "EQ"

		stock := data.Stock{
			StockKey:    42,
			Symbol:      "TESTCO",
			CompanyName: &company,
			Series:      &series,
		}

		body, err := json.Marshal(stock.ToAPI())
		Expect(err).NotTo(HaveOccurred())
		Expect(string(body)).To(ContainSubstring(`"nk_symbol":"TESTCO"`))
		Expect(string(body)).To(ContainSubstring(`"company_name":"Test Company Ltd"`))
		Expect(string(body)).NotTo(ContainSubstring("series"))
		Expect(string(body)).NotTo(ContainSubstring("load_ts"))
	})
})

var _ = Describe("BalanceSheet", func() {
	It("renames the terse storage measures to contract names", func() {
		assets := 5_000_000.0
		equity := 2_000_000.0

		sheet := data.BalanceSheet{
			DateKey: 20230331,
			Period:  "Q",
			TA:      &assets,
			TE:      &equity,
		}

		body, err := json.Marshal(sheet.ToAPI())
		Expect(err).NotTo(HaveOccurred())
		Expect(string(body)).To(ContainSubstring(`"date_key":20230331`))
		Expect(string(body)).To(ContainSubstring(`"total_assets":5000000`))
		Expect(string(body)).To(ContainSubstring(`"total_equity":2000000`))
		Expect(string(body)).NotTo(ContainSubstring("bal_"))
	})
})

var _ = Describe("Recommendation", func() {
	It("keeps null counts as JSON null rather than zero", func() {
		buy := int64(12)

		rec := data.Recommendation{
			DateKey: 20230601,
			Period:  "0m",
			Buy:     &buy,
		}

		body, err := json.Marshal(rec.ToAPI())
		Expect(err).NotTo(HaveOccurred())
		Expect(string(body)).To(ContainSubstring(`"buy":12`))
		Expect(string(body)).To(ContainSubstring(`"strong_buy":null`))
	})
})
