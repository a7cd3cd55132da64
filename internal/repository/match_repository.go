package repository

import (
	"context"
	"time"

	"staffhive/internal/database"
	"staffhive/internal/domain/matching"

	"github.com/google/uuid"
)

type MatchRepository interface {
	Upsert(ctx context.Context, s matching.Score, computedAt time.Time) error
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

func (r *PostgresMatchRepository) Upsert(ctx context.Context, s matching.Score, computedAt time.Time) error {
	if s.WorkerID == uuid.Nil || s.JobID == uuid.Nil {
		return nil
	}
	if computedAt.IsZero() {
		computedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO match_scores
		   (id, worker_id, job_id, overall_score, skill_match, rate_match, location_match, availability_match, computed_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 ON CONFLICT (worker_id, job_id) DO UPDATE SET
		   overall_score = EXCLUDED.overall_score,
		   skill_match = EXCLUDED.skill_match,
		   rate_match = EXCLUDED.rate_match,
		   location_match = EXCLUDED.location_match,
		   availability_match = EXCLUDED.availability_match,
		   computed_at = EXCLUDED.computed_at`,
		uuid.New(), s.WorkerID, s.JobID, s.OverallScore,
		s.SkillMatch, s.RateMatch, s.LocationMatch, s.AvailabilityMatch,
		computedAt,
	)
	return err
}
