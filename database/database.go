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

// Package database implements the fund.Store contract on PostgreSQL.
package database

import (
	"context"
	"time"

	"github.com/fundfolio/ff-api/fund"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var pool *pgxpool.Pool

// Connect establishes the connection pool configured by database.url.
func Connect() error {
	var err error
	pool, err = pgxpool.Connect(context.Background(), viper.GetString("database.url"))
	if err != nil {
		return err
	}
	return pool.Ping(context.Background())
}

// Close releases the connection pool.
func Close() {
	if pool != nil {
		pool.Close()
	}
}

// Store is the PostgreSQL implementation of fund.Store.
type Store struct{}

// NewStore returns a store backed by the package connection pool; call
// Connect first.
func NewStore() *Store {
	return &Store{}
}

const fundColumns = `id, name, slug, fund_type, strategy, sub_strategy,
	aum, inception_date, management_fee, performance_fee, minimum_investment`

func (s *Store) GetFund(ctx context.Context, id uuid.UUID) (*fund.Data, error) {
	row := pool.QueryRow(ctx, `SELECT `+fundColumns+` FROM funds WHERE id=$1`, id)
	return scanFund(row)
}

func (s *Store) GetFundBySlug(ctx context.Context, slug string) (*fund.Data, error) {
	row := pool.QueryRow(ctx, `SELECT `+fundColumns+` FROM funds WHERE slug=$1`, slug)
	return scanFund(row)
}

func (s *Store) ListFunds(ctx context.Context) ([]*fund.Data, error) {
	rows, err := pool.Query(ctx, `SELECT `+fundColumns+` FROM funds ORDER BY name`)
	if err != nil {
		log.Warn().Stack().Err(err).Msg("fund list query failed")
		return nil, err
	}
	defer rows.Close()

	funds := make([]*fund.Data, 0, 100)
	for rows.Next() {
		f, err := scanFund(rows)
		if err != nil {
			return nil, err
		}
		funds = append(funds, f)
	}
	return funds, rows.Err()
}

// GetReturns fetches the dense monthly return series for a fund, oldest
// first.
func (s *Store) GetReturns(ctx context.Context, id uuid.UUID) ([]float64, error) {
	rows, err := pool.Query(ctx, `SELECT monthly_return FROM fund_returns
		WHERE fund_id=$1 ORDER BY period`, id)
	if err != nil {
		log.Warn().Stack().Err(err).Str("FundID", id.String()).Msg("fund returns query failed")
		return nil, err
	}
	defer rows.Close()

	returns := make([]float64, 0, 120)
	for rows.Next() {
		var r float64
		if err := rows.Scan(&r); err != nil {
			return nil, err
		}
		returns = append(returns, r)
	}
	return returns, rows.Err()
}

// GetViews fetches page-view timestamps for a fund since the given time.
func (s *Store) GetViews(ctx context.Context, id uuid.UUID, since time.Time) ([]time.Time, error) {
	rows, err := pool.Query(ctx, `SELECT viewed_at FROM fund_views
		WHERE fund_id=$1 AND viewed_at >= $2 ORDER BY viewed_at`, id, since)
	if err != nil {
		log.Warn().Stack().Err(err).Str("FundID", id.String()).Msg("fund views query failed")
		return nil, err
	}
	defer rows.Close()

	views := make([]time.Time, 0, 1000)
	for rows.Next() {
		var at time.Time
		if err := rows.Scan(&at); err != nil {
			return nil, err
		}
		views = append(views, at)
	}
	return views, rows.Err()
}

type scannable interface {
	Scan(dest ...interface{}) error
}

func scanFund(row scannable) (*fund.Data, error) {
	f := &fund.Data{}
	err := row.Scan(&f.ID, &f.Name, &f.Slug, &f.Type, &f.Strategy, &f.SubStrategy,
		&f.AUM, &f.InceptionDate, &f.ManagementFee, &f.PerformanceFee, &f.MinimumInvestment)
	if err != nil {
		return nil, err
	}
	return f, nil
}
