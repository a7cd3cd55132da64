package usecase

import (
	"context"
	"errors"
	"time"

	"staffhive/internal/domain/matching"
	"staffhive/internal/infrastructure/cache"
	"staffhive/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrProfileNotFound = errors.New("worker profile not found")
	ErrJobNotFound     = errors.New("job not found")
)

type MatchingUsecase interface {
	ScoreJob(ctx context.Context, workerUserID, jobID uuid.UUID) (matching.Score, error)
}

type Matching struct {
	workers repository.WorkerRepository
	jobs    repository.JobRepository
	matches repository.MatchRepository
	cache   *cache.Redis
	logger  *zap.Logger
}

func NewMatchingUsecase(
	workers repository.WorkerRepository,
	jobs repository.JobRepository,
	matches repository.MatchRepository,
	redis *cache.Redis,
	logger *zap.Logger,
) *Matching {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matching{workers: workers, jobs: jobs, matches: matches, cache: redis, logger: logger}
}

// ScoreJob computes the match score for one worker-job pair. Scores are
// cached and persisted so repeated reads don't recompute.
func (u *Matching) ScoreJob(ctx context.Context, workerUserID, jobID uuid.UUID) (matching.Score, error) {
	profile, err := u.workers.FindByUserID(ctx, workerUserID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkerProfileNotFound) {
			return matching.Score{}, ErrProfileNotFound
		}
		return matching.Score{}, ErrInternal
	}

	key := cache.MatchScoreKey(profile.UserID, jobID)
	var cached matching.Score
	if hit, _ := u.cache.GetJSON(ctx, key, &cached); hit {
		return cached, nil
	}

	posting, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return matching.Score{}, ErrJobNotFound
		}
		return matching.Score{}, ErrInternal
	}

	score := matching.Compute(profile, posting)

	if err := u.matches.Upsert(ctx, score, time.Now().UTC()); err != nil {
		u.logger.Warn("persisting match score failed",
			zap.String("worker_id", score.WorkerID.String()),
			zap.String("job_id", score.JobID.String()),
			zap.Error(err),
		)
	}
	_ = u.cache.SetJSON(ctx, key, score, 0)

	return score, nil
}
