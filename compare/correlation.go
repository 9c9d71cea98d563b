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
	"gonum.org/v1/gonum/stat"
)

// Correlation computes the Pearson correlation of two return series over
// their shared trailing window: both series are truncated to the most recent
// min(len1, len2) periods and older, non-overlapping history is discarded,
// not interpolated.
//
// nil when the shared window has fewer than 2 periods or either leg has zero
// variance.
func Correlation(returns1, returns2 []float64) *float64 {
	n := len(returns1)
	if len(returns2) < n {
		n = len(returns2)
	}
	if n < 2 {
		return nil
	}

	aligned1 := returns1[len(returns1)-n:]
	aligned2 := returns2[len(returns2)-n:]

	sd1 := stat.StdDev(aligned1, nil)
	sd2 := stat.StdDev(aligned2, nil)
	if sd1 == 0 || sd2 == 0 {
		return nil
	}

	corr := stat.Covariance(aligned1, aligned2, nil) / (sd1 * sd2)
	return &corr
}

// CorrelationMatrix builds the symmetric N x N pairwise correlation matrix
// for the given return series. The diagonal is 1 by definition and is never
// computed. Each off-diagonal pair is computed once and mirrored.
//
// A pair whose correlation cannot be computed is recorded as 0, not nil --
// matrix consumers (heatmaps, the report insight generation) require numeric
// entries throughout.
func CorrelationMatrix(fundsReturns [][]float64) [][]float64 {
	n := len(fundsReturns)
	matrix := make([][]float64, n)
	for ii := range matrix {
		matrix[ii] = make([]float64, n)
		matrix[ii][ii] = 1.0
	}

	for ii := 0; ii < n; ii++ {
		for jj := ii + 1; jj < n; jj++ {
			corr := Correlation(fundsReturns[ii], fundsReturns[jj])
			value := 0.0
			if corr != nil {
				value = *corr
			}
			matrix[ii][jj] = value
			matrix[jj][ii] = value
		}
	}

	return matrix
}
