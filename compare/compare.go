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

// Package compare builds fund comparison, ranking, and similarity reports on
// top of the fundstats primitives. Like fundstats, every function here is a
// pure computation: missing or undefined metrics are nil, never NaN, and
// nothing in this package performs I/O or holds state between calls.
package compare

import (
	"time"

	"github.com/fundfolio/ff-api/fund"
	"github.com/fundfolio/ff-api/fundstats"
	"github.com/google/uuid"
)

// Comparison is the per-fund row of a comparison report: window returns,
// full-history risk statistics, and the static terms that pass through from
// fund metadata unchanged.
type Comparison struct {
	FundID            uuid.UUID `json:"fundId"`
	Name              string    `json:"name"`
	YTDReturn         *float64  `json:"ytdReturn"`
	OneYearReturn     *float64  `json:"oneYearReturn"`
	ThreeYearReturn   *float64  `json:"threeYearReturn"`
	FiveYearReturn    *float64  `json:"fiveYearReturn"`
	TotalReturn       *float64  `json:"totalReturn"`
	CAGR              *float64  `json:"cagr"`
	Volatility        *float64  `json:"volatility"`
	MaxDrawdown       *float64  `json:"maxDrawdown"`
	SharpeRatio       *float64  `json:"sharpeRatio"`
	SortinoRatio      *float64  `json:"sortinoRatio"`
	AUM               float64   `json:"aum"`
	ManagementFee     float64   `json:"managementFee"`
	PerformanceFee    float64   `json:"performanceFee"`
	MinimumInvestment float64   `json:"minimumInvestment"`
}

// metricAccessors maps the selectable metric keys to their fields. Keys match
// the JSON names of Comparison.
var metricAccessors = map[string]func(*Comparison) *float64{
	"ytdReturn":       func(c *Comparison) *float64 { return c.YTDReturn },
	"oneYearReturn":   func(c *Comparison) *float64 { return c.OneYearReturn },
	"threeYearReturn": func(c *Comparison) *float64 { return c.ThreeYearReturn },
	"fiveYearReturn":  func(c *Comparison) *float64 { return c.FiveYearReturn },
	"totalReturn":     func(c *Comparison) *float64 { return c.TotalReturn },
	"cagr":            func(c *Comparison) *float64 { return c.CAGR },
	"volatility":      func(c *Comparison) *float64 { return c.Volatility },
	"maxDrawdown":     func(c *Comparison) *float64 { return c.MaxDrawdown },
	"sharpeRatio":     func(c *Comparison) *float64 { return c.SharpeRatio },
	"sortinoRatio":    func(c *Comparison) *float64 { return c.SortinoRatio },
}

// SelectMetrics filters a comparison down to the requested metric keys.
// Unknown keys are silently ignored. Static fund terms are not selectable;
// they always travel on the Comparison itself.
func (c *Comparison) SelectMetrics(keys []string) map[string]*float64 {
	selected := make(map[string]*float64, len(keys))
	for _, key := range keys {
		if accessor, ok := metricAccessors[key]; ok {
			selected[key] = accessor(c)
		}
	}
	return selected
}

// CompareFunds computes a Comparison for each fund. fundsReturns carries one
// monthly return series per fund keyed by fund ID; a fund with no series gets
// nil for every computed metric.
//
// Window returns are totals over trailing slices of the series: YTD covers
// the last N months where N is the calendar month number of asOf, and the
// 12/36/60 month windows cover the trailing year, three years, and five
// years. A window longer than the available history yields nil.
func CompareFunds(funds []*fund.Data, fundsReturns map[uuid.UUID][]float64, asOf time.Time) []*Comparison {
	comparisons := make([]*Comparison, 0, len(funds))
	ytdMonths := int(asOf.Month())

	for _, f := range funds {
		returns := fundsReturns[f.ID]
		years := float64(len(returns)) / fundstats.MonthsPerYear

		c := &Comparison{
			FundID:            f.ID,
			Name:              f.Name,
			YTDReturn:         windowReturn(returns, ytdMonths),
			OneYearReturn:     windowReturn(returns, 12),
			ThreeYearReturn:   windowReturn(returns, 36),
			FiveYearReturn:    windowReturn(returns, 60),
			CAGR:              fundstats.CAGR(returns, years),
			Volatility:        fundstats.Volatility(returns),
			MaxDrawdown:       fundstats.MaxDrawdown(fundstats.ToCumulativeReturns(returns, 1.0)),
			SharpeRatio:       fundstats.SharpeRatio(returns, DefaultRiskFreeRate, false),
			SortinoRatio:      fundstats.SortinoRatio(returns, 0.0, false),
			AUM:               f.AUM,
			ManagementFee:     f.ManagementFee,
			PerformanceFee:    f.PerformanceFee,
			MinimumInvestment: f.MinimumInvestment,
		}
		if len(returns) > 0 {
			total := fundstats.TotalReturn(returns)
			c.TotalReturn = &total
		}
		comparisons = append(comparisons, c)
	}

	return comparisons
}

// windowReturn computes the total return over the trailing months of a
// series, or nil when the series is shorter than the window.
func windowReturn(returns []float64, months int) *float64 {
	if months < 1 || len(returns) < months {
		return nil
	}
	total := fundstats.TotalReturn(returns[len(returns)-months:])
	return &total
}
