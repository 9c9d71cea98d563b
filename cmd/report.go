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

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fundfolio/ff-api/common"
	"github.com/fundfolio/ff-api/compare"
	"github.com/fundfolio/ff-api/database"
	"github.com/fundfolio/ff-api/fund"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report [slug]...",
	Args:  cobra.MinimumNArgs(2),
	Short: "Generate a comparison report for the given fund slugs",
	Long:  `Generate a comparison report for the given fund slugs and print it as JSON`,
	Run: func(cmd *cobra.Command, args []string) {
		common.SetupLogging()

		if err := database.Connect(); err != nil {
			log.Fatal().Err(err).Msg("could not connect to database")
		}
		defer database.Close()
		store := database.NewStore()

		ctx := context.Background()
		funds := make([]*fund.Data, 0, len(args))
		fundsReturns := make(map[uuid.UUID][]float64, len(args))
		for _, slug := range args {
			f, err := store.GetFundBySlug(ctx, slug)
			if err != nil {
				log.Fatal().Err(err).Str("Slug", slug).Msg("could not load fund")
			}
			returns, err := store.GetReturns(ctx, f.ID)
			if err != nil {
				log.Fatal().Err(err).Str("Slug", slug).Msg("could not load fund returns")
			}
			funds = append(funds, f)
			fundsReturns[f.ID] = returns
		}

		report := compare.GenerateComparisonReport(funds, fundsReturns, time.Now())
		body, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("could not marshal report")
		}
		fmt.Println(string(body))
	},
}
