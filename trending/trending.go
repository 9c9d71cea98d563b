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

// Package trending scores funds by recent page-view activity. It follows the
// same design as the statistics engine: an explicit configuration struct
// instead of package-level state, and stateless scoring functions the caller
// can run against any view history. Persistence of views and of the ranked
// results belongs to the caller.
package trending

import (
	"math"
	"sort"
	"time"
)

// Config holds the scoring weights and decay horizon. All fields must be
// positive.
type Config struct {
	// HalfLife is the age at which a view counts half as much as a fresh one.
	HalfLife time.Duration

	// VelocityWindow is the span of the two adjacent windows compared to
	// measure acceleration in view activity.
	VelocityWindow time.Duration

	ViewWeight     float64
	VelocityWeight float64
}

// DefaultConfig returns the weights used by the trending dashboard.
func DefaultConfig() Config {
	return Config{
		HalfLife:       7 * 24 * time.Hour,
		VelocityWindow: 24 * time.Hour,
		ViewWeight:     1.0,
		VelocityWeight: 5.0,
	}
}

// DecayedViews sums the views with exponential time decay: a view aged one
// half-life contributes 0.5, two half-lives 0.25, and so on. Views after
// asOf are ignored.
func DecayedViews(cfg Config, views []time.Time, asOf time.Time) float64 {
	if cfg.HalfLife <= 0 {
		return 0
	}

	total := 0.0
	for _, v := range views {
		age := asOf.Sub(v)
		if age < 0 {
			continue
		}
		total += math.Exp2(-age.Hours() / cfg.HalfLife.Hours())
	}
	return total
}

// Velocity measures the acceleration of view activity: the view count of the
// most recent window minus the count of the window before it, floored at
// zero so a cooling fund decays toward its base score instead of going
// negative.
func Velocity(cfg Config, views []time.Time, asOf time.Time) float64 {
	if cfg.VelocityWindow <= 0 {
		return 0
	}

	var recent, prior float64
	windowStart := asOf.Add(-cfg.VelocityWindow)
	priorStart := asOf.Add(-2 * cfg.VelocityWindow)
	for _, v := range views {
		switch {
		case v.After(asOf):
		case v.After(windowStart):
			recent++
		case v.After(priorStart):
			prior++
		}
	}
	return math.Max(0, recent-prior)
}

// Score blends the decayed view count and the velocity into one number.
func Score(cfg Config, views []time.Time, asOf time.Time) float64 {
	return cfg.ViewWeight*DecayedViews(cfg, views, asOf) +
		cfg.VelocityWeight*Velocity(cfg, views, asOf)
}

// PercentileRanks normalizes raw scores to percentile ranks in [0, 100].
// Equal scores share a rank. A single score normalizes to 100.
func PercentileRanks(scores []float64) []float64 {
	n := len(scores)
	ranks := make([]float64, n)
	if n == 0 {
		return ranks
	}
	if n == 1 {
		ranks[0] = 100.0
		return ranks
	}

	order := make([]int, n)
	for ii := range order {
		order[ii] = ii
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] < scores[order[j]]
	})

	for pos, idx := range order {
		rank := pos
		// equal scores share the lowest position among them
		for rank > 0 && scores[order[rank-1]] == scores[idx] {
			rank--
		}
		ranks[idx] = float64(rank) / float64(n-1) * 100.0
	}
	return ranks
}
