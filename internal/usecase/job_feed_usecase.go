package usecase

import (
	"context"
	"errors"

	"staffhive/internal/domain/job"
	"staffhive/internal/domain/matching"
	"staffhive/internal/domain/pricing"
	"staffhive/internal/infrastructure/cache"
	"staffhive/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultFeedPageSize = 20
	maxFeedPageSize     = 100

	// Payout estimates assume a standard shift length.
	estimateShiftHours = 8.0
)

type FeedItem struct {
	Job             job.Posting    `json:"job"`
	Score           matching.Score `json:"score"`
	EstimatedPayout float64        `json:"estimated_payout"`
}

type JobFeedUsecase interface {
	Feed(ctx context.Context, workerUserID uuid.UUID, page, pageSize int) ([]FeedItem, int, error)
}

type JobFeed struct {
	workers repository.WorkerRepository
	jobs    repository.JobRepository
	cache   *cache.Redis
	logger  *zap.Logger
}

func NewJobFeedUsecase(
	workers repository.WorkerRepository,
	jobs repository.JobRepository,
	redis *cache.Redis,
	logger *zap.Logger,
) *JobFeed {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobFeed{workers: workers, jobs: jobs, cache: redis, logger: logger}
}

// Feed returns published jobs scored against the worker's profile,
// urgent jobs first. Each item carries a take-home estimate for a
// standard eight hour shift at the job's top rate.
func (u *JobFeed) Feed(ctx context.Context, workerUserID uuid.UUID, page, pageSize int) ([]FeedItem, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultFeedPageSize
	}
	if pageSize > maxFeedPageSize {
		pageSize = maxFeedPageSize
	}

	profile, err := u.workers.FindByUserID(ctx, workerUserID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkerProfileNotFound) {
			return nil, 0, ErrProfileNotFound
		}
		return nil, 0, ErrInternal
	}

	key := cache.JobFeedKey(profile.UserID, page, pageSize)
	var cached feedPage
	if hit, _ := u.cache.GetJSON(ctx, key, &cached); hit {
		return cached.Items, cached.Total, nil
	}

	postings, total, err := u.jobs.ListPublished(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, ErrInternal
	}

	items := make([]FeedItem, 0, len(postings))
	feeCfg := pricing.DefaultFeeConfig()
	for _, posting := range postings {
		breakdown := pricing.ShiftCost(estimateShiftHours, posting.HourlyRateMax, feeCfg)
		items = append(items, FeedItem{
			Job:             posting,
			Score:           matching.Compute(profile, posting),
			EstimatedPayout: breakdown.WorkerPayout,
		})
	}

	_ = u.cache.SetJSON(ctx, key, feedPage{Items: items, Total: total}, 0)
	return items, total, nil
}

type feedPage struct {
	Items []FeedItem `json:"items"`
	Total int        `json:"total"`
}
