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

package trending_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fundfolio/ff-api/trending"
)

var _ = Describe("Trending", func() {
	var (
		cfg  trending.Config
		asOf time.Time
	)

	BeforeEach(func() {
		cfg = trending.DefaultConfig()
		asOf = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	})

	Describe("DecayedViews", func() {
		It("should count a fresh view as 1", func() {
			total := trending.DecayedViews(cfg, []time.Time{asOf}, asOf)
			Expect(total).Should(BeNumerically("~", 1.0, 1e-10))
		})

		It("should count a half-life-old view as one half", func() {
			total := trending.DecayedViews(cfg, []time.Time{asOf.Add(-cfg.HalfLife)}, asOf)
			Expect(total).Should(BeNumerically("~", 0.5, 1e-10))
		})

		It("should count a two-half-life-old view as one quarter", func() {
			total := trending.DecayedViews(cfg, []time.Time{asOf.Add(-2 * cfg.HalfLife)}, asOf)
			Expect(total).Should(BeNumerically("~", 0.25, 1e-10))
		})

		It("should sum decayed contributions", func() {
			views := []time.Time{asOf, asOf.Add(-cfg.HalfLife)}
			Expect(trending.DecayedViews(cfg, views, asOf)).Should(BeNumerically("~", 1.5, 1e-10))
		})

		It("should ignore views after asOf", func() {
			views := []time.Time{asOf.Add(time.Hour)}
			Expect(trending.DecayedViews(cfg, views, asOf)).To(Equal(0.0))
		})
	})

	Describe("Velocity", func() {
		It("should report the growth between adjacent windows", func() {
			views := []time.Time{
				asOf.Add(-time.Hour),
				asOf.Add(-2 * time.Hour),
				asOf.Add(-3 * time.Hour),
				asOf.Add(-30 * time.Hour),
			}
			// 3 views in the last 24h against 1 in the 24h before
			Expect(trending.Velocity(cfg, views, asOf)).To(Equal(2.0))
		})

		It("should floor a cooling fund at zero", func() {
			views := []time.Time{
				asOf.Add(-30 * time.Hour),
				asOf.Add(-32 * time.Hour),
				asOf.Add(-2 * time.Hour),
			}
			Expect(trending.Velocity(cfg, views, asOf)).To(Equal(0.0))
		})

		It("should ignore views outside both windows", func() {
			views := []time.Time{
				asOf.Add(-60 * time.Hour),
				asOf.Add(time.Hour),
			}
			Expect(trending.Velocity(cfg, views, asOf)).To(Equal(0.0))
		})
	})

	Describe("Score", func() {
		It("should blend views and velocity with the configured weights", func() {
			views := []time.Time{asOf.Add(-time.Hour), asOf.Add(-2 * time.Hour)}
			score := trending.Score(cfg, views, asOf)
			expected := cfg.ViewWeight*trending.DecayedViews(cfg, views, asOf) +
				cfg.VelocityWeight*2.0
			Expect(score).Should(BeNumerically("~", expected, 1e-10))
		})

		It("should score an unviewed fund at zero", func() {
			Expect(trending.Score(cfg, nil, asOf)).To(Equal(0.0))
		})
	})

	Describe("PercentileRanks", func() {
		It("should spread distinct scores across 0 to 100", func() {
			Expect(trending.PercentileRanks([]float64{10, 20, 30})).To(Equal([]float64{0, 50, 100}))
		})

		It("should preserve input order", func() {
			Expect(trending.PercentileRanks([]float64{30, 10, 20})).To(Equal([]float64{100, 0, 50}))
		})

		It("should give equal scores the same rank", func() {
			Expect(trending.PercentileRanks([]float64{5, 5, 10})).To(Equal([]float64{0, 0, 100}))
		})

		It("should rank a single fund at 100", func() {
			Expect(trending.PercentileRanks([]float64{42})).To(Equal([]float64{100}))
		})

		It("should return an empty slice for no scores", func() {
			Expect(trending.PercentileRanks(nil)).To(BeEmpty())
		})
	})
})
