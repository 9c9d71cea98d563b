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
	"math"

	"github.com/fundfolio/ff-api/fundstats"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
)

// DefaultRiskFreeRate is the annual risk-free rate assumed when the caller
// does not supply one.
const DefaultRiskFreeRate = 0.04

// RiskAdjustedMetrics is the extended risk-adjusted metric bundle for one
// fund. The benchmark-relative metrics (beta, alpha, Treynor, information
// ratio, capture ratios) are nil when no benchmark series was supplied.
type RiskAdjustedMetrics struct {
	FundID           uuid.UUID `json:"fundId"`
	CalmarRatio      *float64  `json:"calmarRatio"`
	OmegaRatio       *float64  `json:"omegaRatio"`
	Beta             *float64  `json:"beta"`
	Alpha            *float64  `json:"alpha"`
	TreynorRatio     *float64  `json:"treynorRatio"`
	InformationRatio *float64  `json:"informationRatio"`
	UpCapture        *float64  `json:"upCapture"`
	DownCapture      *float64  `json:"downCapture"`
}

// RiskAdjusted computes the extended metric bundle for one fund. Pass an
// empty benchmark series when none is available; riskFreeRate is annual
// (use DefaultRiskFreeRate absent a better number).
//
// Calmar is CAGR over the magnitude of max drawdown and is nil when either
// leg is unavailable or the drawdown is 0. Omega uses a threshold of 0: the
// sum of monthly gains divided by the magnitude of the sum of monthly losses,
// nil when there are no losing months (the ratio would be infinite).
//
// The benchmark-relative metrics align both series to the shared trailing
// window before computing, the same alignment rule Correlation uses.
func RiskAdjusted(fundID uuid.UUID, returns, benchmarkReturns []float64, riskFreeRate float64) *RiskAdjustedMetrics {
	metrics := &RiskAdjustedMetrics{
		FundID:      fundID,
		CalmarRatio: calmarRatio(returns),
		OmegaRatio:  omegaRatio(returns, 0.0),
	}

	if len(benchmarkReturns) == 0 {
		return metrics
	}

	fundAligned, benchAligned := alignTrailing(returns, benchmarkReturns)
	years := float64(len(fundAligned)) / fundstats.MonthsPerYear

	metrics.Beta = fundstats.Beta(fundAligned, benchAligned)

	fundReturn := fundstats.CAGR(fundAligned, years)
	benchReturn := fundstats.CAGR(benchAligned, years)
	if fundReturn != nil && benchReturn != nil {
		metrics.Alpha = fundstats.Alpha(*fundReturn, metrics.Beta, *benchReturn, riskFreeRate)
	}

	if metrics.Beta != nil && *metrics.Beta != 0 && fundReturn != nil {
		treynor := (*fundReturn - riskFreeRate) / *metrics.Beta
		metrics.TreynorRatio = &treynor
	}

	metrics.InformationRatio = informationRatio(fundAligned, benchAligned)
	metrics.UpCapture, metrics.DownCapture = captureRatios(fundAligned, benchAligned)

	return metrics
}

// calmarRatio is CAGR divided by the magnitude of the maximum drawdown.
func calmarRatio(returns []float64) *float64 {
	years := float64(len(returns)) / fundstats.MonthsPerYear
	cagr := fundstats.CAGR(returns, years)
	maxDrawdown := fundstats.MaxDrawdown(fundstats.ToCumulativeReturns(returns, 1.0))
	if cagr == nil || maxDrawdown == nil || *maxDrawdown == 0 {
		return nil
	}

	calmar := *cagr / math.Abs(*maxDrawdown)
	return &calmar
}

// omegaRatio is the sum of monthly gains above the threshold divided by the
// magnitude of the sum of monthly losses below it.
func omegaRatio(returns []float64, threshold float64) *float64 {
	gains := 0.0
	losses := 0.0
	for _, r := range returns {
		excess := r - threshold
		if excess > 0 {
			gains += excess
		} else {
			losses += excess
		}
	}
	if losses == 0 {
		return nil
	}

	omega := gains / math.Abs(losses)
	return &omega
}

// informationRatio is the annualized mean excess return over the benchmark
// divided by the annualized tracking-error standard deviation.
func informationRatio(fundReturns, benchmarkReturns []float64) *float64 {
	if len(fundReturns) < 2 {
		return nil
	}

	excess := make([]float64, len(fundReturns))
	for ii := range fundReturns {
		excess[ii] = fundReturns[ii] - benchmarkReturns[ii]
	}

	trackingError := stat.StdDev(excess, nil) * math.Sqrt(fundstats.MonthsPerYear)
	if trackingError == 0 {
		return nil
	}

	ir := stat.Mean(excess, nil) * fundstats.MonthsPerYear / trackingError
	return &ir
}

// captureRatios partitions the aligned months by the sign of the benchmark
// return -- benchmark >= 0 marks an up month regardless of what the fund did
// -- and reports the mean fund return over the mean benchmark return in each
// partition, times 100.
func captureRatios(fundReturns, benchmarkReturns []float64) (up, down *float64) {
	var fundUp, benchUp, fundDown, benchDown []float64
	for ii, b := range benchmarkReturns {
		if b >= 0 {
			fundUp = append(fundUp, fundReturns[ii])
			benchUp = append(benchUp, b)
		} else {
			fundDown = append(fundDown, fundReturns[ii])
			benchDown = append(benchDown, b)
		}
	}

	up = captureRatio(fundUp, benchUp)
	down = captureRatio(fundDown, benchDown)
	return up, down
}

func captureRatio(fundReturns, benchmarkReturns []float64) *float64 {
	if len(benchmarkReturns) == 0 {
		return nil
	}
	benchMean := stat.Mean(benchmarkReturns, nil)
	if benchMean == 0 {
		return nil
	}

	capture := stat.Mean(fundReturns, nil) / benchMean * 100.0
	return &capture
}

// alignTrailing truncates both series to their shared trailing window.
func alignTrailing(a, b []float64) ([]float64, []float64) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	return a[len(a)-n:], b[len(b)-n:]
}
