package app

import (
	"context"
	"time"

	"staffhive/internal/config"
	"staffhive/internal/database"
	"staffhive/internal/database/migration"
	dbpostgres "staffhive/internal/database/postgres"
	"staffhive/internal/infrastructure/cache"
	"staffhive/internal/pkg/jwt"
	"staffhive/internal/repository"
	"staffhive/internal/usecase"
	"staffhive/internal/ws"

	"go.uber.org/zap"
)

// Container holds every constructed dependency. Construction order is
// infrastructure, repositories, then usecases.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Redis  *cache.Redis
	JWT    jwt.Service
	Hub    *ws.Hub

	Users     repository.UserRepository
	Companies repository.CompanyRepository
	Workers   repository.WorkerRepository
	Jobs      repository.JobRepository
	Shifts    repository.ShiftRepository
	Matches   repository.MatchRepository

	Auth      usecase.AuthUsecase
	Worker    usecase.WorkerUsecase
	Job       usecase.JobUsecase
	Matching  usecase.MatchingUsecase
	JobFeed   usecase.JobFeedUsecase
	Timesheet usecase.TimesheetUsecase
	Invoice   usecase.InvoiceUsecase
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := migration.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redis := cache.NewRedis(cfg.Redis, logger)
	jwtSvc := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessExpiresIn, cfg.JWT.RefreshExpiresIn)
	hub := ws.NewHub(logger)

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Redis:  redis,
		JWT:    jwtSvc,
		Hub:    hub,

		Users:     repository.NewPostgresUserRepository(db),
		Companies: repository.NewPostgresCompanyRepository(db),
		Workers:   repository.NewPostgresWorkerRepository(db),
		Jobs:      repository.NewPostgresJobRepository(db),
		Shifts:    repository.NewPostgresShiftRepository(db),
		Matches:   repository.NewPostgresMatchRepository(db),
	}

	c.Auth = usecase.NewAuthUsecase(c.Users, jwtSvc, int64(cfg.JWT.AccessExpiresIn.Seconds()))
	c.Worker = usecase.NewWorkerUsecase(c.Workers, redis, logger)
	c.Job = usecase.NewJobUsecase(c.Jobs, c.Companies)
	c.Matching = usecase.NewMatchingUsecase(c.Workers, c.Jobs, c.Matches, redis, logger)
	c.JobFeed = usecase.NewJobFeedUsecase(c.Workers, c.Jobs, redis, logger)
	c.Timesheet = usecase.NewTimesheetUsecase(c.Shifts, c.Jobs, hub, logger)
	c.Invoice = usecase.NewInvoiceUsecase(c.Companies, c.Shifts, "EUR")

	return c, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
