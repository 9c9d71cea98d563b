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

import "math"

// ToCumulativeReturns converts a series of periodic returns into a walk of
// growth factors starting at start. The result has one more element than the
// input: c[0] = start and c[i] = c[i-1] * (1 + returns[i-1]).
func ToCumulativeReturns(returns []float64, start float64) []float64 {
	cumulative := make([]float64, len(returns)+1)
	cumulative[0] = start
	for ii, r := range returns {
		cumulative[ii+1] = cumulative[ii] * (1.0 + r)
	}
	return cumulative
}

// TotalReturn compounds all periodic returns into a single return over the
// whole period. The total return of an empty series is 0 -- no periods means
// no change.
func TotalReturn(returns []float64) float64 {
	growth := 1.0
	for _, r := range returns {
		growth *= 1.0 + r
	}
	return growth - 1.0
}

// AnnualizeMonthlyReturn converts a monthly return into its annual equivalent
// by compounding over 12 months.
func AnnualizeMonthlyReturn(monthly float64) float64 {
	return math.Pow(1.0+monthly, 12.0) - 1.0
}

// ToMonthlyReturn converts an annual return into the constant monthly return
// that compounds to it. Inverse of AnnualizeMonthlyReturn.
func ToMonthlyReturn(annual float64) float64 {
	return math.Pow(1.0+annual, 1.0/12.0) - 1.0
}
