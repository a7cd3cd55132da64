package migration

import (
	"context"
	"fmt"

	"staffhive/internal/database"
)

// statements run in order and are all idempotent, so Run can execute at
// every boot.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT 'worker',
		is_verified BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS companies (
		id UUID PRIMARY KEY,
		owner_id UUID NOT NULL REFERENCES users(id),
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		industry TEXT NOT NULL DEFAULT '',
		website TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		is_verified BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS worker_profiles (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL UNIQUE REFERENCES users(id),
		headline TEXT NOT NULL DEFAULT '',
		bio TEXT NOT NULL DEFAULT '',
		skills JSONB NOT NULL DEFAULT '[]',
		hourly_rate DOUBLE PRECISION,
		availability TEXT NOT NULL DEFAULT 'available',
		location TEXT NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		radius_km DOUBLE PRECISION NOT NULL DEFAULT 50,
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		total_jobs_completed INTEGER NOT NULL DEFAULT 0,
		documents_verified BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS jobs (
		id UUID PRIMARY KEY,
		company_id UUID NOT NULL REFERENCES companies(id),
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		requirements JSONB NOT NULL DEFAULT '[]',
		skills JSONB NOT NULL DEFAULT '[]',
		job_type TEXT NOT NULL DEFAULT 'temporary',
		status TEXT NOT NULL DEFAULT 'draft',
		hourly_rate_min DOUBLE PRECISION NOT NULL DEFAULT 0,
		hourly_rate_max DOUBLE PRECISION NOT NULL DEFAULT 0,
		location TEXT NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		is_remote BOOLEAN NOT NULL DEFAULT FALSE,
		slots_total INTEGER NOT NULL DEFAULT 1,
		slots_filled INTEGER NOT NULL DEFAULT 0,
		is_urgent BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS shifts (
		id UUID PRIMARY KEY,
		job_id UUID NOT NULL REFERENCES jobs(id),
		worker_id UUID NOT NULL REFERENCES users(id),
		date DATE NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'scheduled',
		clock_in_time TIMESTAMPTZ,
		clock_out_time TIMESTAMPTZ,
		break_minutes INTEGER NOT NULL DEFAULT 0,
		total_hours DOUBLE PRECISION,
		hourly_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		total_pay DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS match_scores (
		id UUID PRIMARY KEY,
		worker_id UUID NOT NULL REFERENCES users(id),
		job_id UUID NOT NULL REFERENCES jobs(id),
		overall_score INTEGER NOT NULL,
		skill_match DOUBLE PRECISION NOT NULL,
		rate_match DOUBLE PRECISION NOT NULL,
		location_match DOUBLE PRECISION NOT NULL,
		availability_match DOUBLE PRECISION NOT NULL,
		computed_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (worker_id, job_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_jobs_status ON jobs(status)`,
	`CREATE INDEX IF NOT EXISTS idx_shifts_worker_date ON shifts(worker_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_match_scores_worker ON match_scores(worker_id)`,
}

// Run creates the schema if it does not exist yet.
func Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for i, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration statement %d: %w", i, err)
		}
	}
	return nil
}
