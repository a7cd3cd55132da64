package usecase

import (
	"context"
	"errors"
	"strings"

	"staffhive/internal/domain/job"
	"staffhive/internal/repository"

	"github.com/google/uuid"
)

type CreateJobParams struct {
	Title         string
	Description   string
	Requirements  []string
	Skills        []string
	JobType       job.Type
	HourlyRateMin float64
	HourlyRateMax float64
	Location      string
	Latitude      *float64
	Longitude     *float64
	IsRemote      bool
	SlotsTotal    int
	IsUrgent      bool
	Publish       bool
}

type JobUsecase interface {
	CreateJob(ctx context.Context, ownerUserID uuid.UUID, p CreateJobParams) (job.Posting, error)
	GetJob(ctx context.Context, id uuid.UUID) (job.Posting, error)
	ListJobs(ctx context.Context, page, pageSize int) ([]job.Posting, int, error)
}

type Job struct {
	jobs      repository.JobRepository
	companies repository.CompanyRepository
}

func NewJobUsecase(jobs repository.JobRepository, companies repository.CompanyRepository) *Job {
	return &Job{jobs: jobs, companies: companies}
}

func (u *Job) CreateJob(ctx context.Context, ownerUserID uuid.UUID, p CreateJobParams) (job.Posting, error) {
	if err := validateCreateJob(p); err != nil {
		return job.Posting{}, err
	}

	company, err := u.companies.FindByOwner(ctx, ownerUserID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return job.Posting{}, ErrCompanyNotFound
		}
		return job.Posting{}, ErrInternal
	}

	status := job.StatusDraft
	if p.Publish {
		status = job.StatusPublished
	}

	posting := job.Posting{
		ID:            uuid.New(),
		CompanyID:     company.ID,
		Title:         strings.TrimSpace(p.Title),
		Description:   p.Description,
		Requirements:  p.Requirements,
		Skills:        p.Skills,
		JobType:       p.JobType,
		Status:        status,
		HourlyRateMin: p.HourlyRateMin,
		HourlyRateMax: p.HourlyRateMax,
		Location:      p.Location,
		Latitude:      p.Latitude,
		Longitude:     p.Longitude,
		IsRemote:      p.IsRemote,
		SlotsTotal:    p.SlotsTotal,
		IsUrgent:      p.IsUrgent,
	}
	if err := u.jobs.Create(ctx, posting); err != nil {
		return job.Posting{}, ErrInternal
	}
	return posting, nil
}

func (u *Job) GetJob(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	posting, err := u.jobs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Posting{}, ErrJobNotFound
		}
		return job.Posting{}, ErrInternal
	}
	return posting, nil
}

func (u *Job) ListJobs(ctx context.Context, page, pageSize int) ([]job.Posting, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultFeedPageSize
	}
	if pageSize > maxFeedPageSize {
		pageSize = maxFeedPageSize
	}

	postings, total, err := u.jobs.ListPublished(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, ErrInternal
	}
	return postings, total, nil
}

func validateCreateJob(p CreateJobParams) error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrInvalidInput
	}
	if p.HourlyRateMin <= 0 || p.HourlyRateMax < p.HourlyRateMin {
		return ErrInvalidInput
	}
	if p.SlotsTotal < 1 {
		return ErrInvalidInput
	}
	switch p.JobType {
	case job.TypeFullTime, job.TypePartTime, job.TypeContract, job.TypeTemporary, job.TypePerDiem:
	default:
		return ErrInvalidInput
	}
	if (p.Latitude == nil) != (p.Longitude == nil) {
		return ErrInvalidInput
	}
	return nil
}
