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
	"context"
	"sort"
	"strings"
	"time"

	"github.com/fundfolio/ff-api/common"
	"github.com/fundfolio/ff-api/compare"
	"github.com/fundfolio/ff-api/fund"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type CompareRequest struct {
	FundIDs []string `json:"fundIds"`

	// Metrics optionally narrows the per-fund output to the named metric
	// keys; unknown keys are ignored.
	Metrics []string `json:"metrics"`
}

// FilteredComparison is the per-fund row served when the caller selected
// specific metrics.
type FilteredComparison struct {
	FundID  uuid.UUID           `json:"fundId"`
	Name    string              `json:"name"`
	Metrics map[string]*float64 `json:"metrics"`
}

// CompareFunds generates a comparison report for the requested funds.
// Unfiltered reports are cached under the sorted fund-ID set.
func CompareFunds(c *fiber.Ctx) error {
	var req CompareRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn().Err(err).Msg("could not parse compare request body")
		return fiber.ErrBadRequest
	}
	if len(req.FundIDs) < 2 {
		return fiber.NewError(fiber.StatusBadRequest, "at least two fundIds are required")
	}

	cacheKey := compareCacheKey(req.FundIDs)
	if len(req.Metrics) == 0 {
		if cached, err := common.CacheGet(cacheKey); err == nil {
			return c.Type("json").Send(cached)
		}
	}

	funds, fundsReturns, err := loadFunds(c.Context(), req.FundIDs)
	if err != nil {
		return err
	}

	report := compare.GenerateComparisonReport(funds, fundsReturns, time.Now())

	if len(req.Metrics) > 0 {
		filtered := make([]FilteredComparison, 0, len(report.Funds))
		for _, cmp := range report.Funds {
			filtered = append(filtered, FilteredComparison{
				FundID:  cmp.FundID,
				Name:    cmp.Name,
				Metrics: cmp.SelectMetrics(req.Metrics),
			})
		}
		return c.JSON(fiber.Map{
			"generatedAt":       report.GeneratedAt,
			"funds":             filtered,
			"correlationMatrix": report.CorrelationMatrix,
			"rankings":          report.Rankings,
			"insights":          report.Insights,
		})
	}

	body, err := json.Marshal(report)
	if err != nil {
		log.Error().Stack().Err(err).Msg("could not marshal comparison report")
		return fiber.ErrInternalServerError
	}
	if err := common.CacheSet(cacheKey, body); err != nil {
		log.Warn().Err(err).Msg("could not cache comparison report")
	}
	return c.Type("json").Send(body)
}

// loadFunds fetches metadata and return series for each requested fund ID.
func loadFunds(ctx context.Context, ids []string) ([]*fund.Data, map[uuid.UUID][]float64, error) {
	funds := make([]*fund.Data, 0, len(ids))
	fundsReturns := make(map[uuid.UUID][]float64, len(ids))

	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, "invalid fund id: "+raw)
		}

		f, err := fundStore.GetFund(ctx, id)
		if err != nil {
			log.Warn().Err(err).Str("FundID", raw).Msg("could not load fund")
			return nil, nil, fiber.ErrNotFound
		}

		returns, err := fundStore.GetReturns(ctx, id)
		if err != nil {
			log.Error().Stack().Err(err).Str("FundID", raw).Msg("could not load fund returns")
			return nil, nil, fiber.ErrInternalServerError
		}

		funds = append(funds, f)
		fundsReturns[id] = returns
	}

	return funds, fundsReturns, nil
}

func compareCacheKey(ids []string) string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)
	return "compare:" + strings.Join(sorted, ",")
}
