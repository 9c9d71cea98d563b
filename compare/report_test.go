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

func alternatingReturns(up, down float64, pairs int) []float64 {
	returns := make([]float64, 0, pairs*2)
	for ii := 0; ii < pairs; ii++ {
		returns = append(returns, up, down)
	}
	return returns
}

var _ = Describe("GenerateComparisonReport", func() {
	var (
		asOf         time.Time
		grow         *fund.Data
		swing        *fund.Data
		choppy       *fund.Data
		funds        []*fund.Data
		fundsReturns map[uuid.UUID][]float64
		report       *compare.Report
	)

	BeforeEach(func() {
		asOf = time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
		grow = &fund.Data{ID: uuid.New(), Name: "Grow Fund"}
		swing = &fund.Data{ID: uuid.New(), Name: "Swing Fund"}
		choppy = &fund.Data{ID: uuid.New(), Name: "Choppy Fund"}
		funds = []*fund.Data{grow, swing, choppy}
		fundsReturns = map[uuid.UUID][]float64{
			grow.ID:   steadyReturns(0.02, 12),
			swing.ID:  alternatingReturns(0.03, -0.01, 6),
			choppy.ID: alternatingReturns(0.01, -0.02, 6),
		}
		report = compare.GenerateComparisonReport(funds, fundsReturns, asOf)
	})

	It("should stamp the report and carry one comparison per fund", func() {
		Expect(report.GeneratedAt).To(Equal(asOf))
		Expect(report.Funds).To(HaveLen(3))
		Expect(report.Funds[0].Name).To(Equal("Grow Fund"))
	})

	It("should rank all five fixed metrics", func() {
		Expect(report.Rankings).To(HaveLen(5))
		for _, key := range []string{"cagr", "sharpeRatio", "sortinoRatio", "maxDrawdown", "volatility"} {
			Expect(report.Rankings).To(HaveKey(key))
			Expect(report.Rankings[key]).To(HaveLen(3))
		}
	})

	It("should rank CAGR descending", func() {
		cagr := report.Rankings["cagr"]
		Expect(cagr[0].Name).To(Equal("Grow Fund"))
		Expect(cagr[0].Rank).To(Equal(1))
		Expect(cagr[1].Name).To(Equal("Swing Fund"))
		Expect(cagr[2].Name).To(Equal("Choppy Fund"))
	})

	It("should sort nil metric values after every computed value", func() {
		// the steady fund's volatility is 0 so its Sharpe is nil
		sharpe := report.Rankings["sharpeRatio"]
		Expect(sharpe[0].Name).To(Equal("Swing Fund"))
		Expect(sharpe[2].Name).To(Equal("Grow Fund"))
		Expect(sharpe[2].Value).To(BeNil())
		Expect(sharpe[2].Rank).To(Equal(3))
	})

	It("should rank drawdowns by magnitude with the smallest loss first", func() {
		drawdown := report.Rankings["maxDrawdown"]
		Expect(drawdown[0].Name).To(Equal("Grow Fund"))
		Expect(*drawdown[0].Value).To(Equal(0.0))
		Expect(drawdown[1].Name).To(Equal("Swing Fund"))
		Expect(drawdown[2].Name).To(Equal("Choppy Fund"))
	})

	It("should build a symmetric correlation matrix in fund order", func() {
		matrix := report.CorrelationMatrix
		Expect(matrix).To(HaveLen(3))
		Expect(matrix[1][2]).Should(BeNumerically("~", 1.0, 1e-10))
		Expect(matrix[2][1]).To(Equal(matrix[1][2]))
		// the zero-variance fund's correlations are reported as 0
		Expect(matrix[0][1]).To(Equal(0.0))
		Expect(matrix[0][0]).To(Equal(1.0))
	})

	It("should generate all five insight sentences", func() {
		Expect(report.Insights).To(HaveLen(5))
		Expect(report.Insights[0]).To(ContainSubstring("Grow Fund has the highest compound annual growth rate"))
		Expect(report.Insights[1]).To(ContainSubstring("Swing Fund delivers the best risk-adjusted performance"))
		Expect(report.Insights[2]).To(ContainSubstring("Grow Fund has shown the most resilience"))
		Expect(report.Insights[3]).To(ContainSubstring("Swing Fund and Choppy Fund are highly correlated"))
		Expect(report.Insights[4]).To(ContainSubstring("suggesting a diversification benefit"))
	})

	Context("with a single fund", func() {
		It("should skip the correlation insights and any metric it cannot rank", func() {
			// a zero-volatility fund has no Sharpe ratio, so only the CAGR
			// and drawdown sentences survive
			solo := compare.GenerateComparisonReport([]*fund.Data{grow}, fundsReturns, asOf)
			Expect(solo.Insights).To(HaveLen(2))
			Expect(solo.CorrelationMatrix).To(Equal([][]float64{{1.0}}))
		})
	})
})
