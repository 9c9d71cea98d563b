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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fundfolio/ff-api/compare"
	"github.com/fundfolio/ff-api/fund"
	"github.com/google/uuid"
)

var _ = Describe("FindSimilarFunds", func() {
	var (
		target           *fund.Data
		targetReturns    []float64
		candidates       []*fund.Data
		candidateReturns map[uuid.UUID][]float64
	)

	BeforeEach(func() {
		target = &fund.Data{
			ID:       uuid.New(),
			Name:     "Target Fund",
			Type:     "Hedge Fund",
			Strategy: "Long/Short Equity",
			AUM:      100_000_000,
		}
		targetReturns = []float64{0.02, -0.01, 0.03, 0.01}
		candidates = nil
		candidateReturns = map[uuid.UUID][]float64{}
	})

	addCandidate := func(f *fund.Data, returns []float64) *fund.Data {
		f.ID = uuid.New()
		candidates = append(candidates, f)
		if returns != nil {
			candidateReturns[f.ID] = returns
		}
		return f
	}

	It("should score a perfect match at 100", func() {
		addCandidate(&fund.Data{
			Name:     "Twin Fund",
			Type:     "Hedge Fund",
			Strategy: "Long/Short Equity",
			AUM:      100_000_000,
		}, []float64{0.02, -0.01, 0.03, 0.01})

		similar := compare.FindSimilarFunds(target, targetReturns, candidates, candidateReturns, 0)
		Expect(similar).To(HaveLen(1))
		Expect(similar[0].Score).Should(BeNumerically("~", 100.0, 1e-10))
		Expect(similar[0].Correlation).ToNot(BeNil())
		Expect(*similar[0].Correlation).Should(BeNumerically("~", 1.0, 1e-10))
	})

	It("should fall back to the sub-strategy weight only when strategies differ", func() {
		target.SubStrategy = "Market Neutral"
		addCandidate(&fund.Data{
			Name:        "Cousin Fund",
			Type:        "Private Equity",
			Strategy:    "Global Macro",
			SubStrategy: "Market Neutral",
			AUM:         10_000_000,
		}, nil)

		similar := compare.FindSimilarFunds(target, targetReturns, candidates, candidateReturns, 0)
		Expect(similar).To(HaveLen(1))
		Expect(similar[0].Score).Should(BeNumerically("~", 20.0, 1e-10))
		Expect(similar[0].Correlation).To(BeNil())
	})

	It("should not award the sub-strategy weight on top of a strategy match", func() {
		target.SubStrategy = "Market Neutral"
		addCandidate(&fund.Data{
			Name:        "Sibling Fund",
			Strategy:    "Long/Short Equity",
			SubStrategy: "Market Neutral",
		}, nil)

		similar := compare.FindSimilarFunds(target, targetReturns, candidates, candidateReturns, 0)
		Expect(similar[0].Score).Should(BeNumerically("~", 30.0, 1e-10))
	})

	It("should ignore AUM proximity below the ratio floor", func() {
		addCandidate(&fund.Data{Name: "Minnow Fund", AUM: 40_000_000}, nil)

		similar := compare.FindSimilarFunds(target, targetReturns, candidates, candidateReturns, 0)
		Expect(similar[0].Score).To(Equal(0.0))
	})

	It("should scale the AUM weight by the size ratio above the floor", func() {
		addCandidate(&fund.Data{Name: "Peer Fund", AUM: 80_000_000}, nil)

		similar := compare.FindSimilarFunds(target, targetReturns, candidates, candidateReturns, 0)
		Expect(similar[0].Score).Should(BeNumerically("~", 15.0*0.8, 1e-10))
	})

	It("should report a negative correlation without letting it reduce the score", func() {
		addCandidate(&fund.Data{
			Name: "Mirror Fund",
			Type: "Hedge Fund",
		}, []float64{-0.02, 0.01, -0.03, -0.01})

		similar := compare.FindSimilarFunds(target, targetReturns, candidates, candidateReturns, 0)
		Expect(similar[0].Score).Should(BeNumerically("~", 20.0, 1e-10))
		Expect(similar[0].Correlation).ToNot(BeNil())
		Expect(*similar[0].Correlation).Should(BeNumerically("~", -1.0, 1e-10))
	})

	It("should exclude the target fund from its own results", func() {
		candidates = append(candidates, target)
		addCandidate(&fund.Data{Name: "Other Fund"}, nil)

		similar := compare.FindSimilarFunds(target, targetReturns, candidates, candidateReturns, 0)
		Expect(similar).To(HaveLen(1))
		Expect(similar[0].Fund.Name).To(Equal("Other Fund"))
	})

	It("should sort by descending score and honor the limit", func() {
		addCandidate(&fund.Data{Name: "Weak Match"}, nil)
		addCandidate(&fund.Data{Name: "Strong Match", Type: "Hedge Fund", Strategy: "Long/Short Equity"}, nil)
		addCandidate(&fund.Data{Name: "Fair Match", Type: "Hedge Fund"}, nil)

		similar := compare.FindSimilarFunds(target, targetReturns, candidates, candidateReturns, 2)
		Expect(similar).To(HaveLen(2))
		Expect(similar[0].Fund.Name).To(Equal("Strong Match"))
		Expect(similar[1].Fund.Name).To(Equal("Fair Match"))
	})
})
