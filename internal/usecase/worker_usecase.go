package usecase

import (
	"context"
	"errors"
	"strings"

	"staffhive/internal/domain/worker"
	"staffhive/internal/infrastructure/cache"
	"staffhive/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WorkerUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (worker.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, p worker.Profile) (worker.Profile, error)
}

type Worker struct {
	workers repository.WorkerRepository
	cache   *cache.Redis
	logger  *zap.Logger
}

func NewWorkerUsecase(workers repository.WorkerRepository, redis *cache.Redis, logger *zap.Logger) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Worker{workers: workers, cache: redis, logger: logger}
}

func (u *Worker) GetProfile(ctx context.Context, userID uuid.UUID) (worker.Profile, error) {
	p, err := u.workers.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkerProfileNotFound) {
			return worker.Profile{}, ErrProfileNotFound
		}
		return worker.Profile{}, ErrInternal
	}
	return p, nil
}

// UpdateProfile upserts the worker's profile and drops cached scores,
// which are computed from it.
func (u *Worker) UpdateProfile(ctx context.Context, userID uuid.UUID, p worker.Profile) (worker.Profile, error) {
	if userID == uuid.Nil {
		return worker.Profile{}, ErrUnauthorized
	}
	if err := validateProfile(p); err != nil {
		return worker.Profile{}, err
	}

	p.UserID = userID
	if p.RadiusKm <= 0 {
		p.RadiusKm = worker.DefaultRadiusKm
	}

	if err := u.workers.Upsert(ctx, p); err != nil {
		return worker.Profile{}, ErrInternal
	}
	if err := u.cache.InvalidateWorker(ctx, userID); err != nil {
		u.logger.Warn("cache invalidation failed", zap.String("user_id", userID.String()), zap.Error(err))
	}

	return u.GetProfile(ctx, userID)
}

func validateProfile(p worker.Profile) error {
	switch p.Availability {
	case worker.AvailabilityAvailable, worker.AvailabilityLimited, worker.AvailabilityUnavailable:
	default:
		return ErrInvalidInput
	}
	if p.HourlyRate != nil && *p.HourlyRate < 0 {
		return ErrInvalidInput
	}
	for _, s := range p.Skills {
		if strings.TrimSpace(s.Name) == "" {
			return ErrInvalidInput
		}
	}
	if (p.Latitude == nil) != (p.Longitude == nil) {
		return ErrInvalidInput
	}
	return nil
}
