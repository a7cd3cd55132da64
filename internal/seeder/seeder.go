package seeder

import (
	"context"
	"fmt"
	"time"

	"staffhive/internal/database"
	"staffhive/internal/domain/job"
	"staffhive/internal/domain/shift"
	"staffhive/internal/domain/worker"
	"staffhive/internal/pkg/jwt"
	"staffhive/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Seeder loads a small demo dataset: six users, three worker profiles,
// two companies, four jobs and three shifts. Running it twice is a
// no-op.
type Seeder struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	workers   repository.WorkerRepository
	jobs      repository.JobRepository
	shifts    repository.ShiftRepository
	logger    *zap.Logger
}

func New(db database.DB, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{
		users:     repository.NewPostgresUserRepository(db),
		companies: repository.NewPostgresCompanyRepository(db),
		workers:   repository.NewPostgresWorkerRepository(db),
		jobs:      repository.NewPostgresJobRepository(db),
		shifts:    repository.NewPostgresShiftRepository(db),
		logger:    logger,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	exists, err := s.users.ExistsByEmail(ctx, "admin@staffhive.fi")
	if err != nil {
		return fmt.Errorf("checking seed marker: %w", err)
	}
	if exists {
		s.logger.Info("seed data already present, skipping")
		return nil
	}

	if _, err := s.createUser(ctx, "admin@staffhive.fi", "Admin123!", "System", "Admin", jwt.RoleAdmin); err != nil {
		return err
	}

	maria, err := s.createUser(ctx, "maria@logicorp.fi", "Employer123!", "Maria", "Virtanen", jwt.RoleEmployer)
	if err != nil {
		return err
	}
	erik, err := s.createUser(ctx, "erik@eventpro.fi", "Employer123!", "Erik", "Lindström", jwt.RoleEmployer)
	if err != nil {
		return err
	}
	anna, err := s.createUser(ctx, "anna@example.com", "Worker123!", "Anna", "Korhonen", jwt.RoleWorker)
	if err != nil {
		return err
	}
	mikko, err := s.createUser(ctx, "mikko@example.com", "Worker123!", "Mikko", "Mäkinen", jwt.RoleWorker)
	if err != nil {
		return err
	}
	sofia, err := s.createUser(ctx, "sofia@example.com", "Worker123!", "Sofia", "Niemi", jwt.RoleWorker)
	if err != nil {
		return err
	}
	s.logger.Info("created users", zap.Int("count", 6))

	if err := s.createProfiles(ctx, anna, mikko, sofia); err != nil {
		return err
	}

	logicorp := repository.Company{
		ID:          uuid.New(),
		OwnerID:     maria,
		Name:        "LogiCorp Oy",
		Description: "Leading logistics and warehousing solutions provider in the Helsinki metropolitan area.",
		Industry:    "Logistics & Warehousing",
		Website:     "https://logicorp.fi",
		Address:     "Keilaranta 1, 02150 Espoo",
		IsVerified:  true,
	}
	eventpro := repository.Company{
		ID:          uuid.New(),
		OwnerID:     erik,
		Name:        "EventPro Finland",
		Description: "Full-service event management and staffing company.",
		Industry:    "Events & Hospitality",
		Website:     "https://eventpro.fi",
		Address:     "Mannerheimintie 12, 00100 Helsinki",
		IsVerified:  true,
	}
	for _, c := range []repository.Company{logicorp, eventpro} {
		if err := s.companies.Create(ctx, c); err != nil {
			return fmt.Errorf("creating company %s: %w", c.Name, err)
		}
	}
	s.logger.Info("created companies", zap.Int("count", 2))

	warehouseJob, err := s.createJobs(ctx, logicorp.ID, eventpro.ID)
	if err != nil {
		return err
	}

	if err := s.createShifts(ctx, warehouseJob, anna); err != nil {
		return err
	}

	s.logger.Info("seed complete")
	return nil
}

func (s *Seeder) createUser(ctx context.Context, email, password, first, last, role string) (uuid.UUID, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, err
	}

	u := repository.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    first,
		LastName:     last,
		Role:         role,
		IsVerified:   true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return uuid.Nil, fmt.Errorf("creating user %s: %w", email, err)
	}
	return u.ID, nil
}

func (s *Seeder) createProfiles(ctx context.Context, anna, mikko, sofia uuid.UUID) error {
	profiles := []worker.Profile{
		{
			UserID:   anna,
			Headline: "Experienced warehouse & logistics worker",
			Bio:      "Reliable worker with 5+ years in warehouse operations. Forklift certified.",
			Skills: []worker.Skill{
				{Name: "Forklift", Level: worker.SkillLevelExpert},
				{Name: "Warehouse", Level: worker.SkillLevelAdvanced},
				{Name: "Inventory Management", Level: worker.SkillLevelIntermediate},
				{Name: "Packing", Level: worker.SkillLevelAdvanced},
			},
			HourlyRate:         floatPtr(18),
			Availability:       worker.AvailabilityAvailable,
			Location:           "Espoo, Finland",
			Latitude:           floatPtr(60.2055),
			Longitude:          floatPtr(24.6559),
			RadiusKm:           30,
			Rating:             4.7,
			TotalJobsCompleted: 42,
			DocumentsVerified:  true,
		},
		{
			UserID:   mikko,
			Headline: "Event staff & hospitality professional",
			Bio:      "Friendly and energetic. Experienced in events, catering, and customer service.",
			Skills: []worker.Skill{
				{Name: "Event Setup", Level: worker.SkillLevelAdvanced},
				{Name: "Customer Service", Level: worker.SkillLevelExpert},
				{Name: "Catering", Level: worker.SkillLevelIntermediate},
				{Name: "Bartending", Level: worker.SkillLevelBeginner},
			},
			HourlyRate:         floatPtr(16),
			Availability:       worker.AvailabilityAvailable,
			Location:           "Helsinki, Finland",
			Latitude:           floatPtr(60.1699),
			Longitude:          floatPtr(24.9384),
			RadiusKm:           25,
			Rating:             4.5,
			TotalJobsCompleted: 28,
			DocumentsVerified:  true,
		},
		{
			UserID:   sofia,
			Headline: "Retail & office administration",
			Bio:      "Detail-oriented professional with retail and admin experience.",
			Skills: []worker.Skill{
				{Name: "Retail", Level: worker.SkillLevelAdvanced},
				{Name: "Data Entry", Level: worker.SkillLevelExpert},
				{Name: "Office Admin", Level: worker.SkillLevelIntermediate},
				{Name: "Customer Service", Level: worker.SkillLevelAdvanced},
			},
			HourlyRate:         floatPtr(17),
			Availability:       worker.AvailabilityLimited,
			Location:           "Vantaa, Finland",
			Latitude:           floatPtr(60.2934),
			Longitude:          floatPtr(25.0378),
			RadiusKm:           40,
			Rating:             4.3,
			TotalJobsCompleted: 15,
			DocumentsVerified:  false,
		},
	}

	for _, p := range profiles {
		if err := s.workers.Upsert(ctx, p); err != nil {
			return fmt.Errorf("creating worker profile: %w", err)
		}
	}
	s.logger.Info("created worker profiles", zap.Int("count", 3))
	return nil
}

func (s *Seeder) createJobs(ctx context.Context, logicorpID, eventproID uuid.UUID) (uuid.UUID, error) {
	warehouse := job.Posting{
		ID:            uuid.New(),
		CompanyID:     logicorpID,
		Title:         "Warehouse Associate - Peak Season",
		Description:   "Join our team for the peak holiday season! You'll handle receiving, sorting, packing, and shipping of goods.",
		Requirements:  []string{"Must be able to lift 20kg", "Standing for extended periods", "Basic Finnish or English"},
		Skills:        []string{"Warehouse", "Packing", "Forklift"},
		JobType:       job.TypeTemporary,
		Status:        job.StatusPublished,
		HourlyRateMin: 16,
		HourlyRateMax: 22,
		Location:      "Espoo, Finland",
		Latitude:      floatPtr(60.2055),
		Longitude:     floatPtr(24.6559),
		SlotsTotal:    5,
		SlotsFilled:   1,
		IsUrgent:      true,
	}

	jobs := []job.Posting{
		warehouse,
		{
			ID:            uuid.New(),
			CompanyID:     eventproID,
			Title:         "Event Staff - Corporate Gala",
			Description:   "We need friendly, professional staff for an upcoming corporate gala event.",
			Requirements:  []string{"Professional appearance", "Basic English required", "Customer service experience preferred"},
			Skills:        []string{"Event Setup", "Customer Service", "Catering"},
			JobType:       job.TypePerDiem,
			Status:        job.StatusPublished,
			HourlyRateMin: 15,
			HourlyRateMax: 20,
			Location:      "Helsinki, Finland",
			Latitude:      floatPtr(60.1699),
			Longitude:     floatPtr(24.9384),
			SlotsTotal:    10,
		},
		{
			ID:            uuid.New(),
			CompanyID:     logicorpID,
			Title:         "Inventory Data Entry Clerk",
			Description:   "Temporary position for inventory count and data entry.",
			Requirements:  []string{"Computer literacy", "Attention to detail", "Finnish language"},
			Skills:        []string{"Data Entry", "Inventory Management", "Office Admin"},
			JobType:       job.TypeContract,
			Status:        job.StatusPublished,
			HourlyRateMin: 17,
			HourlyRateMax: 21,
			Location:      "Espoo, Finland",
			Latitude:      floatPtr(60.2055),
			Longitude:     floatPtr(24.6559),
			SlotsTotal:    2,
		},
		{
			ID:            uuid.New(),
			CompanyID:     eventproID,
			Title:         "Weekend Bartender",
			Description:   "Looking for experienced bartenders for weekend events throughout the Helsinki area.",
			Requirements:  []string{"Bartending experience", "18+ years old", "Hygiene passport"},
			Skills:        []string{"Bartending", "Customer Service"},
			JobType:       job.TypePartTime,
			Status:        job.StatusDraft,
			HourlyRateMin: 18,
			HourlyRateMax: 25,
			Location:      "Helsinki, Finland",
			Latitude:      floatPtr(60.1699),
			Longitude:     floatPtr(24.9384),
			SlotsTotal:    3,
		},
	}

	for _, j := range jobs {
		if err := s.jobs.Create(ctx, j); err != nil {
			return uuid.Nil, fmt.Errorf("creating job %s: %w", j.Title, err)
		}
	}
	s.logger.Info("created jobs", zap.Int("count", len(jobs)))
	return warehouse.ID, nil
}

func (s *Seeder) createShifts(ctx context.Context, jobID, workerID uuid.UUID) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	upcoming := []shift.Shift{
		{
			ID:         uuid.New(),
			JobID:      jobID,
			WorkerID:   workerID,
			Date:       today.AddDate(0, 0, 1),
			StartTime:  "08:00",
			EndTime:    "16:00",
			Status:     shift.StatusScheduled,
			HourlyRate: 20,
		},
		{
			ID:         uuid.New(),
			JobID:      jobID,
			WorkerID:   workerID,
			Date:       today.AddDate(0, 0, 7),
			StartTime:  "08:00",
			EndTime:    "16:00",
			Status:     shift.StatusScheduled,
			HourlyRate: 20,
		},
	}
	for _, sh := range upcoming {
		if err := s.shifts.Create(ctx, sh); err != nil {
			return fmt.Errorf("creating shift: %w", err)
		}
	}

	// One completed shift: 07:58 to 16:32 minus a 30 minute break.
	workedDay := today.AddDate(0, 0, -2)
	completed := shift.Shift{
		ID:           uuid.New(),
		JobID:        jobID,
		WorkerID:     workerID,
		Date:         workedDay,
		StartTime:    "08:00",
		EndTime:      "16:30",
		Status:       shift.StatusScheduled,
		BreakMinutes: 30,
		HourlyRate:   20,
	}
	if err := s.shifts.Create(ctx, completed); err != nil {
		return fmt.Errorf("creating shift: %w", err)
	}

	clockIn := workedDay.Add(7*time.Hour + 58*time.Minute)
	clockOut := workedDay.Add(16*time.Hour + 32*time.Minute)
	if err := s.shifts.SetClockIn(ctx, completed.ID, clockIn); err != nil {
		return fmt.Errorf("clocking in seed shift: %w", err)
	}
	if err := s.shifts.SetClockOut(ctx, completed.ID, clockOut, 8.07, 161.40); err != nil {
		return fmt.Errorf("clocking out seed shift: %w", err)
	}

	s.logger.Info("created shifts", zap.Int("count", 3))
	return nil
}

func floatPtr(v float64) *float64 { return &v }
