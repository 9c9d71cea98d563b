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
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// GetSimilarFunds serves the funds most similar to the requested one,
// scored across strategy, type, AUM proximity, and return correlation.
// Optional query parameter: limit (default 5).
func GetSimilarFunds(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid fund id")
	}

	limit := compare.DefaultSimilarLimit
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid limit")
		}
	}

	target, err := fundStore.GetFund(c.Context(), id)
	if err != nil {
		log.Warn().Err(err).Str("FundID", id.String()).Msg("could not load fund")
		return fiber.ErrNotFound
	}

	targetReturns, err := fundStore.GetReturns(c.Context(), id)
	if err != nil {
		log.Error().Stack().Err(err).Str("FundID", id.String()).Msg("could not load fund returns")
		return fiber.ErrInternalServerError
	}

	candidates, err := fundStore.ListFunds(c.Context())
	if err != nil {
		log.Error().Stack().Err(err).Msg("could not list candidate funds")
		return fiber.ErrInternalServerError
	}

	candidateReturns := make(map[uuid.UUID][]float64, len(candidates))
	for _, candidate := range candidates {
		if candidate.ID == target.ID {
			continue
		}
		returns, err := fundStore.GetReturns(c.Context(), candidate.ID)
		if err != nil {
			log.Error().Stack().Err(err).Str("FundID", candidate.ID.String()).Msg("could not load candidate returns")
			return fiber.ErrInternalServerError
		}
		candidateReturns[candidate.ID] = returns
	}

	return c.JSON(compare.FindSimilarFunds(target, targetReturns, candidates, candidateReturns, limit))
}
