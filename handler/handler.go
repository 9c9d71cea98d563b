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

// Package handler exposes the comparison engine over HTTP. Handlers fetch
// fund metadata and return series from the store, run the pure computation,
// and serve the resulting records as JSON; nil metrics serialize to JSON
// null, which the UI renders as "N/A".
package handler

import (
	"time"

	"github.com/fundfolio/ff-api/fund"
	"github.com/gofiber/fiber/v2"
)

var fundStore fund.Store

// SetStore injects the persistence backend all handlers read from. Must be
// called before any route is served.
func SetStore(s fund.Store) {
	fundStore = s
}

type PingResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"API is alive"`
	Time    string `json:"time" example:"2026-06-19T08:09:10.115924-05:00"`
}

func Ping(c *fiber.Ctx) error {
	now, _ := time.Now().MarshalText()
	return c.JSON(PingResponse{
		Status:  "success",
		Message: "API is alive",
		Time:    string(now),
	})
}
