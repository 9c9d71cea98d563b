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

package fundstats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// MonthsPerYear is the cadence assumed for every return series in this
// package. Annualization multiplies means by 12 and deviations by sqrt(12),
// consistent with Morningstar and other online data providers.
const MonthsPerYear = 12.0

// CAGR computes the compound annual growth rate of a return series over the
// given number of years. All returns are compounded into a single growth
// factor which is then taken to the 1/years power.
//
// nil when the series is empty, years is not positive, or the cumulative
// growth factor is non-positive (a total wipeout -- fractional powers of
// non-positive numbers are undefined).
func CAGR(returns []float64, years float64) *float64 {
	if len(returns) == 0 || years <= 0 {
		return nil
	}

	growth := 1.0
	for _, r := range returns {
		growth *= 1.0 + r
	}
	if growth <= 0 {
		return nil
	}

	cagr := math.Pow(growth, 1.0/years) - 1.0
	return &cagr
}

// Volatility is the annualized sample standard deviation of a monthly return
// series. nil when there are fewer than 2 returns.
func Volatility(monthlyReturns []float64) *float64 {
	sd := StdDev(monthlyReturns)
	if sd == nil {
		return nil
	}
	vol := *sd * math.Sqrt(MonthsPerYear)
	return &vol
}

// SharpeRatio is the average return earned in excess of the risk-free rate
// per unit of volatility or total risk.
//
// Sharpe = (Rp - Rf) / (annualized std. dev)
//
// When annualized is false the inputs are treated as monthly: the mean is
// scaled by 12 and the standard deviation by sqrt(12) before the ratio is
// taken. When annualized is true the inputs are used as-is. riskFreeRate is
// always an annual rate.
//
// nil when there are fewer than 2 returns or the standard deviation is
// exactly 0.
func SharpeRatio(returns []float64, riskFreeRate float64, annualized bool) *float64 {
	if len(returns) < 2 {
		return nil
	}

	meanReturn := stat.Mean(returns, nil)
	sd := stat.StdDev(returns, nil)
	if !annualized {
		meanReturn *= MonthsPerYear
		sd *= math.Sqrt(MonthsPerYear)
	}
	if sd == 0 {
		return nil
	}

	sharpe := (meanReturn - riskFreeRate) / sd
	return &sharpe
}

// SortinoRatio is a variation of the Sharpe ratio that differentiates harmful
// volatility from total overall volatility by using the downside deviation --
// the deviation of returns below a target -- instead of the total standard
// deviation.
//
// The downside deviation is sqrt of the mean of squared min(0, r - target)
// taken over all periods, not only the periods below target. targetReturn is
// an annual rate; when annualized is false it is de-scaled to a monthly
// target and the mean and downside deviation are annualized before the ratio.
//
// nil when there are fewer than 2 returns or when no period falls below the
// target (the downside deviation would be 0, making the ratio undefined
// rather than infinite).
func SortinoRatio(returns []float64, targetReturn float64, annualized bool) *float64 {
	if len(returns) < 2 {
		return nil
	}

	monthlyTarget := targetReturn
	if !annualized {
		monthlyTarget = targetReturn / MonthsPerYear
	}

	downside := 0.0
	belowTarget := 0
	for _, r := range returns {
		excess := r - monthlyTarget
		if excess < 0 {
			downside += excess * excess // much faster than math.Pow
			belowTarget++
		}
	}
	if belowTarget == 0 {
		return nil
	}

	downsideDeviation := math.Sqrt(downside / float64(len(returns)))
	meanReturn := stat.Mean(returns, nil)
	if !annualized {
		meanReturn *= MonthsPerYear
		downsideDeviation *= math.Sqrt(MonthsPerYear)
	}
	if downsideDeviation == 0 {
		return nil
	}

	sortino := (meanReturn - targetReturn) / downsideDeviation
	return &sortino
}

// MaxDrawdown returns the largest peak-to-trough decline observed across a
// walk of cumulative growth factors, expressed as a negative fraction of the
// peak. It is the global minimum of (value - peak) / peak over the whole
// walk, not the most recent drawdown: an early deep loss wins over a later,
// smaller one even after a full recovery in between. A walk that never dips
// below its running peak yields exactly 0.
//
// nil when the walk has fewer than 2 points.
func MaxDrawdown(cumulativeReturns []float64) *float64 {
	if len(cumulativeReturns) < 2 {
		return nil
	}

	peak := cumulativeReturns[0]
	maxDrawdown := 0.0
	for _, value := range cumulativeReturns {
		peak = math.Max(peak, value)
		drawdown := (value - peak) / peak
		if drawdown < maxDrawdown {
			maxDrawdown = drawdown
		}
	}
	return &maxDrawdown
}

// Beta is a measure of the volatility -- or systematic risk -- of a fund
// compared to its benchmark, computed as Cov(fund, benchmark) divided by the
// variance of the benchmark. Beta is the slope term of the capital asset
// pricing model (CAPM).
//
// nil on a length mismatch, fewer than 2 observations, or a benchmark with
// zero variance.
func Beta(fundReturns, benchmarkReturns []float64) *float64 {
	if len(fundReturns) != len(benchmarkReturns) || len(fundReturns) < 2 {
		return nil
	}

	benchVariance := stat.Variance(benchmarkReturns, nil)
	if benchVariance == 0 {
		return nil
	}

	beta := stat.Covariance(fundReturns, benchmarkReturns, nil) / benchVariance
	return &beta
}

// Alpha is the CAPM residual -- the portion of a fund's return not explained
// by its beta-adjusted benchmark exposure.
//
// alpha = Rp - [Rf + (Rb - Rf) * beta]
//
// nil when beta is nil or not finite, so a missing beta propagates to a
// missing alpha.
func Alpha(fundReturn float64, beta *float64, benchmarkReturn, riskFreeRate float64) *float64 {
	if beta == nil || math.IsNaN(*beta) || math.IsInf(*beta, 0) {
		return nil
	}

	alpha := fundReturn - (riskFreeRate + (benchmarkReturn-riskFreeRate)**beta)
	return &alpha
}
