// Copyright 2025-2026
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package compare_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fundfolio/ff-api/compare"
	"github.com/fundfolio/ff-api/fund"
	"github.com/google/uuid"
)

func steadyReturns(value float64, months int) []float64 {
	returns := make([]float64, months)
	for ii := range returns {
		returns[ii] = value
	}
	return returns
}

var _ = Describe("CompareFunds", func() {
	var (
		asOf         time.Time
		fundA, fundB *fund.Data
		fundsReturns map[uuid.UUID][]float64
	)

	BeforeEach(func() {
		// June: the YTD window covers 6 months
		asOf = time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
		fundA = &fund.Data{
			ID:                uuid.New(),
			Name:              "Alpha Fund",
			AUM:               250_000_000,
			ManagementFee:     0.02,
			PerformanceFee:    0.20,
			MinimumInvestment: 1_000_000,
		}
		fundB = &fund.Data{ID: uuid.New(), Name: "Beta Fund"}
		fundsReturns = map[uuid.UUID][]float64{
			fundA.ID: steadyReturns(0.01, 24),
			fundB.ID: {0.05, -0.10, 0.02},
		}
	})

	Context("with two years of steady 1% months", func() {
		It("should compute every trailing window that fits", func() {
			comparisons := compare.CompareFunds([]*fund.Data{fundA}, fundsReturns, asOf)
			Expect(comparisons).To(HaveLen(1))

			c := comparisons[0]
			Expect(c.YTDReturn).ToNot(BeNil())
			Expect(*c.YTDReturn).Should(BeNumerically("~", 0.0615202, 1e-6))
			Expect(c.OneYearReturn).ToNot(BeNil())
			Expect(*c.OneYearReturn).Should(BeNumerically("~", 0.1268250, 1e-6))
			Expect(c.ThreeYearReturn).To(BeNil())
			Expect(c.FiveYearReturn).To(BeNil())
			Expect(c.TotalReturn).ToNot(BeNil())
			Expect(*c.TotalReturn).Should(BeNumerically("~", 0.2697346, 1e-6))
		})

		It("should annualize CAGR over the full history", func() {
			c := compare.CompareFunds([]*fund.Data{fundA}, fundsReturns, asOf)[0]
			Expect(c.CAGR).ToNot(BeNil())
			Expect(*c.CAGR).Should(BeNumerically("~", 0.1268250, 1e-6))
		})

		It("should report zero volatility and drawdown but nil ratios", func() {
			c := compare.CompareFunds([]*fund.Data{fundA}, fundsReturns, asOf)[0]
			Expect(c.Volatility).ToNot(BeNil())
			Expect(*c.Volatility).To(Equal(0.0))
			Expect(c.MaxDrawdown).ToNot(BeNil())
			Expect(*c.MaxDrawdown).To(Equal(0.0))
			// zero deviation and no losing months make the ratios undefined
			Expect(c.SharpeRatio).To(BeNil())
			Expect(c.SortinoRatio).To(BeNil())
		})

		It("should pass static fund terms through unchanged", func() {
			c := compare.CompareFunds([]*fund.Data{fundA}, fundsReturns, asOf)[0]
			Expect(c.AUM).To(Equal(250_000_000.0))
			Expect(c.ManagementFee).To(Equal(0.02))
			Expect(c.PerformanceFee).To(Equal(0.20))
			Expect(c.MinimumInvestment).To(Equal(1_000_000.0))
		})
	})

	Context("with only three months of history", func() {
		It("should leave every window longer than the history nil", func() {
			c := compare.CompareFunds([]*fund.Data{fundB}, fundsReturns, asOf)[0]
			Expect(c.YTDReturn).To(BeNil())
			Expect(c.OneYearReturn).To(BeNil())
			Expect(c.ThreeYearReturn).To(BeNil())
			Expect(c.FiveYearReturn).To(BeNil())
			Expect(c.TotalReturn).ToNot(BeNil())
			Expect(*c.TotalReturn).Should(BeNumerically("~", -0.0361, 1e-6))
		})

		It("should find the drawdown through the losing month", func() {
			c := compare.CompareFunds([]*fund.Data{fundB}, fundsReturns, asOf)[0]
			Expect(c.MaxDrawdown).ToNot(BeNil())
			Expect(*c.MaxDrawdown).Should(BeNumerically("~", -0.10, 1e-10))
		})
	})

	Context("with a fund that has no history at all", func() {
		It("should yield nil for every computed metric", func() {
			empty := &fund.Data{ID: uuid.New(), Name: "Empty Fund"}
			c := compare.CompareFunds([]*fund.Data{empty}, fundsReturns, asOf)[0]
			Expect(c.YTDReturn).To(BeNil())
			Expect(c.TotalReturn).To(BeNil())
			Expect(c.CAGR).To(BeNil())
			Expect(c.Volatility).To(BeNil())
			Expect(c.MaxDrawdown).To(BeNil())
			Expect(c.SharpeRatio).To(BeNil())
			Expect(c.SortinoRatio).To(BeNil())
		})
	})

	Describe("selecting metrics", func() {
		It("should keep only known keys", func() {
			c := compare.CompareFunds([]*fund.Data{fundA}, fundsReturns, asOf)[0]
			selected := c.SelectMetrics([]string{"cagr", "ytdReturn", "bogusMetric"})
			Expect(selected).To(HaveLen(2))
			Expect(selected).To(HaveKey("cagr"))
			Expect(selected).To(HaveKey("ytdReturn"))
			Expect(selected).ToNot(HaveKey("bogusMetric"))
		})
	})
})
