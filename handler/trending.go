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
	"time"

	"github.com/fundfolio/ff-api/common"
	"github.com/fundfolio/ff-api/trending"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const trendingCacheKey = "trending"

// viewHorizon is how far back view history is read when scoring; beyond
// four half-lives a view contributes almost nothing.
const viewHorizon = 30 * 24 * time.Hour

// TrendingFund is one entry of the trending dashboard, sorted by descending
// score.
type TrendingFund struct {
	FundID     uuid.UUID `json:"fundId"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Score      float64   `json:"score"`
	Percentile float64   `json:"percentile"`
}

// GetTrendingFunds serves the current trending ranking from cache,
// computing it on a miss.
func GetTrendingFunds(c *fiber.Ctx) error {
	if cached, err := common.CacheGet(trendingCacheKey); err == nil {
		return c.Type("json").Send(cached)
	}

	ranked, err := computeTrending(c.Context())
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(ranked)
}

// RefreshTrending recomputes the trending ranking and stores it in the
// cache; run periodically by the scheduler.
func RefreshTrending() {
	ranked, err := computeTrending(context.Background())
	if err != nil {
		log.Error().Stack().Err(err).Msg("could not refresh trending scores")
		return
	}

	body, err := json.Marshal(ranked)
	if err != nil {
		log.Error().Stack().Err(err).Msg("could not marshal trending scores")
		return
	}
	if err := common.CacheSet(trendingCacheKey, body); err != nil {
		log.Warn().Err(err).Msg("could not cache trending scores")
	}
	log.Info().Int("NumFunds", len(ranked)).Msg("refreshed trending scores")
}

func computeTrending(ctx context.Context) ([]TrendingFund, error) {
	funds, err := fundStore.ListFunds(ctx)
	if err != nil {
		log.Error().Stack().Err(err).Msg("could not list funds for trending")
		return nil, err
	}

	cfg := trending.DefaultConfig()
	asOf := time.Now()
	since := asOf.Add(-viewHorizon)

	ranked := make([]TrendingFund, 0, len(funds))
	scores := make([]float64, 0, len(funds))
	for _, f := range funds {
		views, err := fundStore.GetViews(ctx, f.ID, since)
		if err != nil {
			log.Error().Stack().Err(err).Str("FundID", f.ID.String()).Msg("could not load fund views")
			return nil, err
		}
		score := trending.Score(cfg, views, asOf)
		ranked = append(ranked, TrendingFund{
			FundID: f.ID,
			Name:   f.Name,
			Slug:   f.Slug,
			Score:  score,
		})
		scores = append(scores, score)
	}

	percentiles := trending.PercentileRanks(scores)
	for ii := range ranked {
		ranked[ii].Percentile = percentiles[ii]
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked, nil
}
