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
)

var _ = Describe("Correlation", func() {
	It("should be 1 for perfectly correlated series", func() {
		corr := compare.Correlation([]float64{0.01, 0.02, 0.03}, []float64{0.02, 0.04, 0.06})
		Expect(corr).ToNot(BeNil())
		Expect(*corr).Should(BeNumerically("~", 1.0))
	})

	It("should be -1 for perfectly inverse series", func() {
		corr := compare.Correlation([]float64{0.01, 0.02, 0.03}, []float64{-0.01, -0.02, -0.03})
		Expect(corr).ToNot(BeNil())
		Expect(*corr).Should(BeNumerically("~", -1.0))
	})

	It("should align to the shared trailing window and discard older history", func() {
		// the two leading months would wreck the correlation if included
		longer := []float64{0.50, -0.50, 0.01, 0.02, 0.03}
		corr := compare.Correlation(longer, []float64{0.02, 0.04, 0.06})
		Expect(corr).ToNot(BeNil())
		Expect(*corr).Should(BeNumerically("~", 1.0))
	})

	It("should be nil when the shared window has fewer than 2 periods", func() {
		Expect(compare.Correlation([]float64{0.01, 0.02}, []float64{0.01})).To(BeNil())
		Expect(compare.Correlation(nil, []float64{0.01, 0.02})).To(BeNil())
	})

	It("should be nil when either leg has zero variance", func() {
		Expect(compare.Correlation([]float64{0.01, 0.02}, []float64{0.03, 0.03})).To(BeNil())
		Expect(compare.Correlation([]float64{0.03, 0.03}, []float64{0.01, 0.02})).To(BeNil())
	})
})

var _ = Describe("CorrelationMatrix", func() {
	It("should be symmetric with 1 on the diagonal", func() {
		matrix := compare.CorrelationMatrix([][]float64{
			{0.01, 0.02, 0.03},
			{0.02, 0.04, 0.06},
			{0.03, -0.01, 0.02},
		})
		Expect(matrix).To(HaveLen(3))
		for ii := range matrix {
			Expect(matrix[ii][ii]).To(Equal(1.0))
			for jj := range matrix {
				Expect(matrix[ii][jj]).To(Equal(matrix[jj][ii]))
			}
		}
	})

	It("should substitute 0 for pairs that cannot be computed", func() {
		matrix := compare.CorrelationMatrix([][]float64{
			{0.01, 0.02, 0.03},
			{0.05, 0.05, 0.05}, // zero variance
		})
		Expect(matrix[0][1]).To(Equal(0.0))
		Expect(matrix[1][0]).To(Equal(0.0))
		Expect(matrix[1][1]).To(Equal(1.0))
	})

	It("should have a 1 diagonal even for a single fund", func() {
		matrix := compare.CorrelationMatrix([][]float64{{0.01}})
		Expect(matrix).To(Equal([][]float64{{1.0}}))
	})
})
