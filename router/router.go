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

package router

import (
	"github.com/fundfolio/ff-api/handler"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes registers the v1 API routes.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/v1")
	api.Get("/", handler.Ping)

	funds := api.Group("/funds")
	funds.Post("/compare", handler.CompareFunds)
	funds.Get("/trending", handler.GetTrendingFunds)
	funds.Get("/:id/metrics", handler.GetRiskMetrics)
	funds.Get("/:id/similar", handler.GetSimilarFunds)
}
