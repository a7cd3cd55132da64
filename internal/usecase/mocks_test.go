package usecase

import (
	"context"
	"time"

	"staffhive/internal/domain/job"
	"staffhive/internal/domain/matching"
	"staffhive/internal/domain/shift"
	"staffhive/internal/domain/worker"
	"staffhive/internal/repository"

	"github.com/google/uuid"
)

type stubWorkerRepo struct {
	profile   worker.Profile
	findErr   error
	upserted  *worker.Profile
	upsertErr error
}

func (s *stubWorkerRepo) FindByUserID(_ context.Context, _ uuid.UUID) (worker.Profile, error) {
	if s.findErr != nil {
		return worker.Profile{}, s.findErr
	}
	return s.profile, nil
}

func (s *stubWorkerRepo) Upsert(_ context.Context, p worker.Profile) error {
	s.upserted = &p
	return s.upsertErr
}

type stubJobRepo struct {
	job       job.Posting
	findErr   error
	listed    []job.Posting
	total     int
	listErr   error
	created   *job.Posting
	createErr error
	exists    bool
	existsErr error
}

func (s *stubJobRepo) FindByID(_ context.Context, _ uuid.UUID) (job.Posting, error) {
	if s.findErr != nil {
		return job.Posting{}, s.findErr
	}
	return s.job, nil
}

func (s *stubJobRepo) ListPublished(_ context.Context, _, _ int) ([]job.Posting, int, error) {
	if s.listErr != nil {
		return nil, 0, s.listErr
	}
	return s.listed, s.total, nil
}

func (s *stubJobRepo) Create(_ context.Context, j job.Posting) error {
	s.created = &j
	return s.createErr
}

func (s *stubJobRepo) ExistsByID(_ context.Context, _ uuid.UUID) (bool, error) {
	return s.exists, s.existsErr
}

type clockStamp struct {
	id uuid.UUID
	at time.Time
}

type stubShiftRepo struct {
	shift   shift.Shift
	findErr error

	list    []shift.Shift
	listErr error

	created   *shift.Shift
	createErr error

	clockedIn   *clockStamp
	clockInErr  error
	clockedOut  *clockStamp
	outHours    float64
	outPay      float64
	clockOutErr error
}

func (s *stubShiftRepo) FindByID(_ context.Context, _ uuid.UUID) (shift.Shift, error) {
	if s.findErr != nil {
		return shift.Shift{}, s.findErr
	}
	return s.shift, nil
}

func (s *stubShiftRepo) ListByWorker(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]shift.Shift, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.list, nil
}

func (s *stubShiftRepo) ListCompletedByCompany(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]shift.Shift, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.list, nil
}

func (s *stubShiftRepo) Create(_ context.Context, sh shift.Shift) error {
	s.created = &sh
	return s.createErr
}

func (s *stubShiftRepo) SetClockIn(_ context.Context, id uuid.UUID, at time.Time) error {
	if s.clockInErr != nil {
		return s.clockInErr
	}
	s.clockedIn = &clockStamp{id: id, at: at}
	return nil
}

func (s *stubShiftRepo) SetClockOut(_ context.Context, id uuid.UUID, at time.Time, totalHours, totalPay float64) error {
	if s.clockOutErr != nil {
		return s.clockOutErr
	}
	s.clockedOut = &clockStamp{id: id, at: at}
	s.outHours = totalHours
	s.outPay = totalPay
	return nil
}

type stubMatchRepo struct {
	upserted  []matching.Score
	upsertErr error
}

func (s *stubMatchRepo) Upsert(_ context.Context, sc matching.Score, _ time.Time) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.upserted = append(s.upserted, sc)
	return nil
}

type stubUserRepo struct {
	user      repository.User
	findErr   error
	exists    bool
	existsErr error
	created   *repository.User
	createErr error
}

func (s *stubUserRepo) FindByEmail(_ context.Context, _ string) (repository.User, error) {
	if s.findErr != nil {
		return repository.User{}, s.findErr
	}
	return s.user, nil
}

func (s *stubUserRepo) FindByID(_ context.Context, _ uuid.UUID) (repository.User, error) {
	if s.findErr != nil {
		return repository.User{}, s.findErr
	}
	return s.user, nil
}

func (s *stubUserRepo) Create(_ context.Context, u repository.User) error {
	s.created = &u
	return s.createErr
}

func (s *stubUserRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return s.exists, s.existsErr
}

type stubCompanyRepo struct {
	company repository.Company
	findErr error
	created *repository.Company
}

func (s *stubCompanyRepo) FindByID(_ context.Context, _ uuid.UUID) (repository.Company, error) {
	if s.findErr != nil {
		return repository.Company{}, s.findErr
	}
	return s.company, nil
}

func (s *stubCompanyRepo) FindByOwner(_ context.Context, _ uuid.UUID) (repository.Company, error) {
	if s.findErr != nil {
		return repository.Company{}, s.findErr
	}
	return s.company, nil
}

func (s *stubCompanyRepo) Create(_ context.Context, c repository.Company) error {
	s.created = &c
	return nil
}

func floatPtr(v float64) *float64 { return &v }
