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

package compare

import (
	"sort"

	"github.com/fundfolio/ff-api/fund"
	"github.com/google/uuid"
)

// DefaultSimilarLimit is the number of similar funds returned when the
// caller does not ask for a specific count.
const DefaultSimilarLimit = 5

// Similarity score weights. A candidate can score at most 100: strategy (or,
// failing that, sub-strategy), fund type, AUM proximity, and return
// correlation each contribute a fixed share.
const (
	strategyWeight    = 30.0
	subStrategyWeight = 20.0
	typeWeight        = 20.0
	aumWeight         = 15.0
	correlationWeight = 35.0

	// AUM proximity only counts when the smaller fund is at least half the
	// size of the larger one.
	aumRatioFloor = 0.5
)

// SimilarFund is one candidate with its blended similarity score out of 100
// and the return correlation that contributed to it.
type SimilarFund struct {
	Fund        *fund.Data `json:"fund"`
	Score       float64    `json:"score"`
	Correlation *float64   `json:"correlation"`
}

// FindSimilarFunds scores every candidate against the target fund and
// returns the top matches, sorted by descending score and truncated to
// limit (DefaultSimilarLimit when limit < 1). The target itself is excluded
// even when present in the candidate pool.
//
// Strategy and sub-strategy matches are mutually exclusive: a same-strategy
// candidate earns the strategy weight and its sub-strategy is not consulted.
// Negative return correlation contributes nothing rather than penalizing.
func FindSimilarFunds(target *fund.Data, targetReturns []float64, candidates []*fund.Data, candidateReturns map[uuid.UUID][]float64, limit int) []SimilarFund {
	if limit < 1 {
		limit = DefaultSimilarLimit
	}

	similar := make([]SimilarFund, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.ID == target.ID {
			continue
		}

		score := 0.0
		if candidate.Strategy != "" && candidate.Strategy == target.Strategy {
			score += strategyWeight
		} else if candidate.SubStrategy != "" && candidate.SubStrategy == target.SubStrategy {
			score += subStrategyWeight
		}
		if candidate.Type != "" && candidate.Type == target.Type {
			score += typeWeight
		}
		if ratio := aumRatio(target.AUM, candidate.AUM); ratio > aumRatioFloor {
			score += aumWeight * ratio
		}

		corr := Correlation(targetReturns, candidateReturns[candidate.ID])
		if corr != nil && *corr > 0 {
			score += correlationWeight * *corr
		}

		similar = append(similar, SimilarFund{
			Fund:        candidate,
			Score:       score,
			Correlation: corr,
		})
	}

	sort.SliceStable(similar, func(i, j int) bool {
		return similar[i].Score > similar[j].Score
	})

	if len(similar) > limit {
		similar = similar[:limit]
	}
	return similar
}

// aumRatio is the ratio of the smaller AUM to the larger, in [0, 1].
func aumRatio(a, b float64) float64 {
	if a <= 0 || b <= 0 {
		return 0
	}
	if a > b {
		a, b = b, a
	}
	return a / b
}
