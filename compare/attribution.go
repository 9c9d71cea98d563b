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
	"github.com/fundfolio/ff-api/fundstats"
)

// Attribution is a simplified three-term decomposition of a fund's
// annualized return: market exposure (beta times the benchmark return), the
// alpha contribution (actual minus the CAPM-expected return), and a residual
// absorbing whatever remains. It is intentionally approximate, not a full
// Brinson-style attribution.
type Attribution struct {
	TotalReturn  *float64 `json:"totalReturn"`
	MarketReturn *float64 `json:"marketReturn"`
	AlphaReturn  *float64 `json:"alphaReturn"`
	TimingReturn float64  `json:"timingReturn"`
	Residual     *float64 `json:"residual"`
}

// PerformanceAttribution decomposes the fund's annualized return against the
// benchmark. Both series are aligned to the shared trailing window first.
// All terms are nil when beta or either annualized return cannot be computed.
//
// TimingReturn is a placeholder pending a rolling-window implementation and
// is always 0.
func PerformanceAttribution(fundReturns, benchmarkReturns []float64, riskFreeRate float64) *Attribution {
	attribution := &Attribution{}

	fundAligned, benchAligned := alignTrailing(fundReturns, benchmarkReturns)
	years := float64(len(fundAligned)) / fundstats.MonthsPerYear

	beta := fundstats.Beta(fundAligned, benchAligned)
	fundReturn := fundstats.CAGR(fundAligned, years)
	benchReturn := fundstats.CAGR(benchAligned, years)
	if beta == nil || fundReturn == nil || benchReturn == nil {
		return attribution
	}

	market := *beta * *benchReturn
	expected := riskFreeRate + *beta*(*benchReturn-riskFreeRate)
	alpha := *fundReturn - expected
	residual := *fundReturn - market - alpha - attribution.TimingReturn

	attribution.TotalReturn = fundReturn
	attribution.MarketReturn = &market
	attribution.AlphaReturn = &alpha
	attribution.Residual = &residual

	return attribution
}
