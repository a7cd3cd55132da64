package repository

import (
	"context"
	"errors"
	"time"

	"staffhive/internal/database"
	"staffhive/internal/domain/shift"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrShiftNotFound = errors.New("shift not found")

type ShiftRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (shift.Shift, error)
	ListByWorker(ctx context.Context, workerID uuid.UUID, from, to time.Time) ([]shift.Shift, error)
	ListCompletedByCompany(ctx context.Context, companyID uuid.UUID, from, to time.Time) ([]shift.Shift, error)
	Create(ctx context.Context, s shift.Shift) error
	SetClockIn(ctx context.Context, id uuid.UUID, at time.Time) error
	SetClockOut(ctx context.Context, id uuid.UUID, at time.Time, totalHours, totalPay float64) error
}

type PostgresShiftRepository struct {
	db database.DB
}

func NewPostgresShiftRepository(db database.DB) *PostgresShiftRepository {
	return &PostgresShiftRepository{db: db}
}

const shiftColumns = `id, job_id, worker_id, date, start_time, end_time, status,
	clock_in_time, clock_out_time, break_minutes, total_hours, hourly_rate, total_pay,
	created_at, updated_at`

func (r *PostgresShiftRepository) FindByID(ctx context.Context, id uuid.UUID) (shift.Shift, error) {
	row := r.db.QueryRow(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE id = $1`, id)
	return scanShiftRow(row)
}

func (r *PostgresShiftRepository) ListByWorker(ctx context.Context, workerID uuid.UUID, from, to time.Time) ([]shift.Shift, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+shiftColumns+`
		 FROM shifts
		 WHERE worker_id = $1 AND date >= $2 AND date < $3
		 ORDER BY date ASC, start_time ASC`,
		workerID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectShifts(rows)
}

func (r *PostgresShiftRepository) ListCompletedByCompany(ctx context.Context, companyID uuid.UUID, from, to time.Time) ([]shift.Shift, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+shiftPrefixedColumns+`
		 FROM shifts s
		 JOIN jobs j ON j.id = s.job_id
		 WHERE j.company_id = $1 AND s.status = 'completed' AND s.date >= $2 AND s.date < $3
		 ORDER BY s.date ASC`,
		companyID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectShifts(rows)
}

const shiftPrefixedColumns = `s.id, s.job_id, s.worker_id, s.date, s.start_time, s.end_time, s.status,
	s.clock_in_time, s.clock_out_time, s.break_minutes, s.total_hours, s.hourly_rate, s.total_pay,
	s.created_at, s.updated_at`

func (r *PostgresShiftRepository) Create(ctx context.Context, s shift.Shift) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO shifts
		   (id, job_id, worker_id, date, start_time, end_time, status, break_minutes, hourly_rate)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		s.ID, s.JobID, s.WorkerID, s.Date, s.StartTime, s.EndTime, string(s.Status), s.BreakMinutes, s.HourlyRate,
	)
	return err
}

func (r *PostgresShiftRepository) SetClockIn(ctx context.Context, id uuid.UUID, at time.Time) error {
	n, err := r.db.Exec(ctx,
		`UPDATE shifts SET clock_in_time = $2, status = 'in_progress', updated_at = now()
		 WHERE id = $1`,
		id, at,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrShiftNotFound
	}
	return nil
}

func (r *PostgresShiftRepository) SetClockOut(ctx context.Context, id uuid.UUID, at time.Time, totalHours, totalPay float64) error {
	n, err := r.db.Exec(ctx,
		`UPDATE shifts SET clock_out_time = $2, total_hours = $3, total_pay = $4,
		        status = 'completed', updated_at = now()
		 WHERE id = $1`,
		id, at, totalHours, totalPay,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrShiftNotFound
	}
	return nil
}

func collectShifts(rows database.Rows) ([]shift.Shift, error) {
	out := make([]shift.Shift, 0)
	for rows.Next() {
		s, err := scanShiftRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanShiftRow(row database.Row) (shift.Shift, error) {
	var s shift.Shift
	var status string
	err := row.Scan(
		&s.ID, &s.JobID, &s.WorkerID, &s.Date, &s.StartTime, &s.EndTime, &status,
		&s.ClockInTime, &s.ClockOutTime, &s.BreakMinutes, &s.TotalHours, &s.HourlyRate, &s.TotalPay,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, ErrShiftNotFound
		}
		return shift.Shift{}, err
	}
	s.Status = shift.Status(status)
	return s, nil
}
