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

// Package fund defines the static fund metadata record shared by the
// statistics engine, the persistence layer, and the API handlers.
package fund

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Data is the static, slow-changing description of a fund. It is owned by the
// persistence layer; the statistics engine treats it as an immutable
// read-only input.
type Data struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Slug              string    `json:"slug"`
	Type              string    `json:"fundType"`
	Strategy          string    `json:"strategy"`
	SubStrategy       string    `json:"subStrategy"`
	AUM               float64   `json:"aum"`
	InceptionDate     time.Time `json:"inceptionDate"`
	ManagementFee     float64   `json:"managementFee"`
	PerformanceFee    float64   `json:"performanceFee"`
	MinimumInvestment float64   `json:"minimumInvestment"`
}

// Store is the read-side persistence contract the handlers depend on. Return
// series are dense, time-ordered oldest to newest, at a monthly cadence.
type Store interface {
	GetFund(ctx context.Context, id uuid.UUID) (*Data, error)
	GetFundBySlug(ctx context.Context, slug string) (*Data, error)
	ListFunds(ctx context.Context) ([]*Data, error)

	// GetReturns fetches the full monthly return history for a fund.
	GetReturns(ctx context.Context, id uuid.UUID) ([]float64, error)

	// GetViews fetches page-view timestamps for a fund since the given time;
	// used by the trending score refresh.
	GetViews(ctx context.Context, id uuid.UUID, since time.Time) ([]time.Time, error)
}
