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
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/fundfolio/ff-api/fund"
	"github.com/google/uuid"
)

// Correlation thresholds used by the report insights.
const (
	highCorrelation = 0.7
	lowCorrelation  = 0.3
)

// rankedMetrics are the five fixed metrics every report ranks funds on.
// lowerIsBetter ranks the least risky fund first; drawdowns are negative so
// they compare by magnitude.
var rankedMetrics = []struct {
	key           string
	lowerIsBetter bool
}{
	{key: "cagr"},
	{key: "sharpeRatio"},
	{key: "sortinoRatio"},
	{key: "maxDrawdown", lowerIsBetter: true},
	{key: "volatility", lowerIsBetter: true},
}

// Ranking is one fund's position for a single metric.
type Ranking struct {
	FundID uuid.UUID `json:"fundId"`
	Name   string    `json:"name"`
	Value  *float64  `json:"value"`
	Rank   int       `json:"rank"`
}

// Report is the full comparison report: per-fund comparisons, the pairwise
// correlation matrix (indexed in fund order), per-metric rankings, and
// template-generated insight sentences. It is a plain data record suitable
// for JSON serialization or hand-off to a PDF renderer.
type Report struct {
	GeneratedAt       time.Time            `json:"generatedAt"`
	Funds             []*Comparison        `json:"funds"`
	CorrelationMatrix [][]float64          `json:"correlationMatrix"`
	Rankings          map[string][]Ranking `json:"rankings"`
	Insights          []string             `json:"insights"`
}

// GenerateComparisonReport orchestrates CompareFunds and CorrelationMatrix,
// ranks every fund on the five fixed metrics (nil values always sort last,
// whatever the direction), and fills in the insight sentences.
func GenerateComparisonReport(funds []*fund.Data, fundsReturns map[uuid.UUID][]float64, asOf time.Time) *Report {
	comparisons := CompareFunds(funds, fundsReturns, asOf)

	orderedReturns := make([][]float64, len(funds))
	for ii, f := range funds {
		orderedReturns[ii] = fundsReturns[f.ID]
	}
	matrix := CorrelationMatrix(orderedReturns)

	rankings := make(map[string][]Ranking, len(rankedMetrics))
	for _, metric := range rankedMetrics {
		rankings[metric.key] = rankFunds(comparisons, metric.key, metric.lowerIsBetter)
	}

	return &Report{
		GeneratedAt:       asOf,
		Funds:             comparisons,
		CorrelationMatrix: matrix,
		Rankings:          rankings,
		Insights:          generateInsights(funds, matrix, rankings),
	}
}

// rankFunds orders all funds on a single metric. Funds whose metric is nil
// rank after every fund with a value.
func rankFunds(comparisons []*Comparison, key string, lowerIsBetter bool) []Ranking {
	accessor := metricAccessors[key]

	rankings := make([]Ranking, 0, len(comparisons))
	for _, c := range comparisons {
		rankings = append(rankings, Ranking{
			FundID: c.FundID,
			Name:   c.Name,
			Value:  accessor(c),
		})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		a, b := rankings[i].Value, rankings[j].Value
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		if lowerIsBetter {
			return math.Abs(*a) < math.Abs(*b)
		}
		return *a > *b
	})

	for ii := range rankings {
		rankings[ii].Rank = ii + 1
	}
	return rankings
}

// generateInsights produces the free-text report observations. Every
// sentence is template-filled from the computed data; nothing here calls out
// to an external text generator.
func generateInsights(funds []*fund.Data, matrix [][]float64, rankings map[string][]Ranking) []string {
	insights := make([]string, 0, 5)

	if best := topRanked(rankings["cagr"]); best != nil {
		insights = append(insights, fmt.Sprintf("%s has the highest compound annual growth rate at %.2f%%.", best.Name, *best.Value*100))
	}
	if best := topRanked(rankings["sharpeRatio"]); best != nil {
		insights = append(insights, fmt.Sprintf("%s delivers the best risk-adjusted performance with a Sharpe ratio of %.2f.", best.Name, *best.Value))
	}
	if best := topRanked(rankings["maxDrawdown"]); best != nil {
		insights = append(insights, fmt.Sprintf("%s has shown the most resilience with a maximum drawdown of %.2f%%.", best.Name, *best.Value*100))
	}

	if len(funds) < 2 {
		return insights
	}

	maxI, maxJ := extremePair(matrix, true)
	maxCorr := matrix[maxI][maxJ]
	if maxCorr > highCorrelation {
		insights = append(insights, fmt.Sprintf("%s and %s are highly correlated (%.2f); they offer little diversification relative to each other.", funds[maxI].Name, funds[maxJ].Name, maxCorr))
	} else {
		insights = append(insights, fmt.Sprintf("%s and %s show the strongest correlation in the group (%.2f).", funds[maxI].Name, funds[maxJ].Name, maxCorr))
	}

	minI, minJ := extremePair(matrix, false)
	minCorr := matrix[minI][minJ]
	if minCorr < lowCorrelation {
		insights = append(insights, fmt.Sprintf("%s and %s have low correlation (%.2f), suggesting a diversification benefit from holding both.", funds[minI].Name, funds[minJ].Name, minCorr))
	} else {
		insights = append(insights, fmt.Sprintf("%s and %s are the least correlated pair in the group (%.2f).", funds[minI].Name, funds[minJ].Name, minCorr))
	}

	return insights
}

// topRanked returns the rank-1 entry when its value was computable.
func topRanked(rankings []Ranking) *Ranking {
	if len(rankings) == 0 || rankings[0].Value == nil {
		return nil
	}
	return &rankings[0]
}

// extremePair finds the off-diagonal pair with the highest (or lowest)
// correlation. The matrix is symmetric, so only the upper triangle is
// scanned. Requires at least a 2x2 matrix.
func extremePair(matrix [][]float64, highest bool) (int, int) {
	bestI, bestJ := 0, 1
	for ii := 0; ii < len(matrix); ii++ {
		for jj := ii + 1; jj < len(matrix); jj++ {
			if highest == (matrix[ii][jj] > matrix[bestI][bestJ]) && matrix[ii][jj] != matrix[bestI][bestJ] {
				bestI, bestJ = ii, jj
			}
		}
	}
	return bestI, bestJ
}
