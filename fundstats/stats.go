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

// Package fundstats provides pure numerical functions over series of
// periodic fund returns. Every function is stateless and free of I/O.
//
// Where a metric is undefined for the given input -- an empty series, too few
// observations, zero variance in a denominator -- the function returns nil
// rather than NaN or an error. Callers render a nil metric as "N/A".
package fundstats

import (
	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of values, or nil for an empty slice.
func Mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	m := stat.Mean(values, nil)
	return &m
}

// StdDev returns the sample standard deviation (n-1 denominator) of values.
// nil when there are fewer than 2 observations. A constant series yields
// exactly 0.
func StdDev(values []float64) *float64 {
	if len(values) < 2 {
		return nil
	}
	sd := stat.StdDev(values, nil)
	return &sd
}

// Covariance returns the sample covariance of x and y. nil when the series
// lengths differ or either has fewer than 2 observations.
func Covariance(x, y []float64) *float64 {
	if len(x) != len(y) || len(x) < 2 {
		return nil
	}
	cov := stat.Covariance(x, y, nil)
	return &cov
}
