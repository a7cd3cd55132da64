package repository

import (
	"context"
	"encoding/json"
	"errors"

	"staffhive/internal/database"
	"staffhive/internal/domain/worker"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrWorkerProfileNotFound = errors.New("worker profile not found")

type WorkerRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (worker.Profile, error)
	Upsert(ctx context.Context, p worker.Profile) error
}

type PostgresWorkerRepository struct {
	db database.DB
}

func NewPostgresWorkerRepository(db database.DB) *PostgresWorkerRepository {
	return &PostgresWorkerRepository{db: db}
}

func (r *PostgresWorkerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (worker.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, headline, bio, skills, hourly_rate, availability, location,
		        latitude, longitude, radius_km, rating, total_jobs_completed, documents_verified,
		        created_at, updated_at
		 FROM worker_profiles WHERE user_id = $1`,
		userID,
	)

	var p worker.Profile
	var skillsJSON []byte
	var availability string
	err := row.Scan(
		&p.ID, &p.UserID, &p.Headline, &p.Bio, &skillsJSON, &p.HourlyRate, &availability, &p.Location,
		&p.Latitude, &p.Longitude, &p.RadiusKm, &p.Rating, &p.TotalJobsCompleted, &p.DocumentsVerified,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Profile{}, ErrWorkerProfileNotFound
		}
		return worker.Profile{}, err
	}

	p.Availability = worker.Availability(availability)
	if len(skillsJSON) > 0 {
		if err := json.Unmarshal(skillsJSON, &p.Skills); err != nil {
			return worker.Profile{}, err
		}
	}
	return p, nil
}

func (r *PostgresWorkerRepository) Upsert(ctx context.Context, p worker.Profile) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	skillsJSON, err := json.Marshal(p.Skills)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO worker_profiles
		   (id, user_id, headline, bio, skills, hourly_rate, availability, location,
		    latitude, longitude, radius_km, rating, total_jobs_completed, documents_verified)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		 ON CONFLICT (user_id) DO UPDATE SET
		   headline = EXCLUDED.headline,
		   bio = EXCLUDED.bio,
		   skills = EXCLUDED.skills,
		   hourly_rate = EXCLUDED.hourly_rate,
		   availability = EXCLUDED.availability,
		   location = EXCLUDED.location,
		   latitude = EXCLUDED.latitude,
		   longitude = EXCLUDED.longitude,
		   radius_km = EXCLUDED.radius_km,
		   documents_verified = EXCLUDED.documents_verified,
		   updated_at = now()`,
		p.ID, p.UserID, p.Headline, p.Bio, skillsJSON, p.HourlyRate, string(p.Availability), p.Location,
		p.Latitude, p.Longitude, p.RadiusKm, p.Rating, p.TotalJobsCompleted, p.DocumentsVerified,
	)
	return err
}
