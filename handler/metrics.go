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

package handler

import (
	"strconv"

	"github.com/fundfolio/ff-api/compare"
	"github.com/fundfolio/ff-api/fund"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RiskMetricsResponse bundles the extended risk-adjusted metrics with the
// attribution decomposition, which is only present when a benchmark was
// supplied.
type RiskMetricsResponse struct {
	Fund        *fund.Data                   `json:"fund"`
	Metrics     *compare.RiskAdjustedMetrics `json:"metrics"`
	Attribution *compare.Attribution         `json:"attribution,omitempty"`
}

// GetRiskMetrics serves the risk-adjusted metric bundle for one fund.
// Optional query parameters: benchmark (slug of the benchmark fund) and
// riskFree (annual decimal rate, default 0.04).
func GetRiskMetrics(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid fund id")
	}

	riskFree := compare.DefaultRiskFreeRate
	if raw := c.Query("riskFree"); raw != "" {
		riskFree, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid riskFree rate")
		}
	}

	f, err := fundStore.GetFund(c.Context(), id)
	if err != nil {
		log.Warn().Err(err).Str("FundID", id.String()).Msg("could not load fund")
		return fiber.ErrNotFound
	}

	returns, err := fundStore.GetReturns(c.Context(), id)
	if err != nil {
		log.Error().Stack().Err(err).Str("FundID", id.String()).Msg("could not load fund returns")
		return fiber.ErrInternalServerError
	}

	var benchmarkReturns []float64
	benchmarkSlug := c.Query("benchmark")
	if benchmarkSlug != "" {
		benchmark, err := fundStore.GetFundBySlug(c.Context(), benchmarkSlug)
		if err != nil {
			log.Warn().Err(err).Str("Benchmark", benchmarkSlug).Msg("could not load benchmark fund")
			return fiber.ErrNotFound
		}
		benchmarkReturns, err = fundStore.GetReturns(c.Context(), benchmark.ID)
		if err != nil {
			log.Error().Stack().Err(err).Str("Benchmark", benchmarkSlug).Msg("could not load benchmark returns")
			return fiber.ErrInternalServerError
		}
	}

	response := RiskMetricsResponse{
		Fund:    f,
		Metrics: compare.RiskAdjusted(id, returns, benchmarkReturns, riskFree),
	}
	if len(benchmarkReturns) > 0 {
		response.Attribution = compare.PerformanceAttribution(returns, benchmarkReturns, riskFree)
	}

	return c.JSON(response)
}
