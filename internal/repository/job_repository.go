package repository

import (
	"context"
	"encoding/json"
	"errors"

	"staffhive/internal/database"
	"staffhive/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (job.Posting, error)
	ListPublished(ctx context.Context, limit, offset int) ([]job.Posting, int, error)
	Create(ctx context.Context, j job.Posting) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, company_id, title, description, requirements, skills, job_type, status,
	hourly_rate_min, hourly_rate_max, location, latitude, longitude, is_remote,
	slots_total, slots_filled, is_urgent, created_at, updated_at`

func (r *PostgresJobRepository) FindByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJobRow(row)
}

func (r *PostgresJobRepository) ListPublished(ctx context.Context, limit, offset int) ([]job.Posting, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE status = 'published'`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE status = 'published'
		 ORDER BY is_urgent DESC, created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		j, err := scanJobRow(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Posting) error {
	reqJSON, err := json.Marshal(j.Requirements)
	if err != nil {
		return err
	}
	skillsJSON, err := json.Marshal(j.Skills)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO jobs
		   (id, company_id, title, description, requirements, skills, job_type, status,
		    hourly_rate_min, hourly_rate_max, location, latitude, longitude, is_remote,
		    slots_total, slots_filled, is_urgent)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`,
		j.ID, j.CompanyID, j.Title, j.Description, reqJSON, skillsJSON, string(j.JobType), string(j.Status),
		j.HourlyRateMin, j.HourlyRateMax, j.Location, j.Latitude, j.Longitude, j.IsRemote,
		j.SlotsTotal, j.SlotsFilled, j.IsUrgent,
	)
	return err
}

func (r *PostgresJobRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func scanJobRow(row database.Row) (job.Posting, error) {
	var j job.Posting
	var reqJSON, skillsJSON []byte
	var jobType, status string

	err := row.Scan(
		&j.ID, &j.CompanyID, &j.Title, &j.Description, &reqJSON, &skillsJSON, &jobType, &status,
		&j.HourlyRateMin, &j.HourlyRateMax, &j.Location, &j.Latitude, &j.Longitude, &j.IsRemote,
		&j.SlotsTotal, &j.SlotsFilled, &j.IsUrgent, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Posting{}, ErrJobNotFound
		}
		return job.Posting{}, err
	}

	j.JobType = job.Type(jobType)
	j.Status = job.Status(status)
	if len(reqJSON) > 0 {
		if err := json.Unmarshal(reqJSON, &j.Requirements); err != nil {
			return job.Posting{}, err
		}
	}
	if len(skillsJSON) > 0 {
		if err := json.Unmarshal(skillsJSON, &j.Skills); err != nil {
			return job.Posting{}, err
		}
	}
	return j, nil
}
