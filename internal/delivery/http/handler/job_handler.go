package handler

import (
	"strconv"

	"staffhive/internal/delivery/http/dto"
	"staffhive/internal/delivery/http/middleware"
	"staffhive/internal/domain/job"
	"staffhive/internal/pkg/jwt"
	"staffhive/internal/pkg/response"
	"staffhive/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

type createJobRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Requirements  []string `json:"requirements"`
	Skills        []string `json:"skills"`
	JobType       string   `json:"jobType"`
	HourlyRateMin float64  `json:"hourlyRateMin"`
	HourlyRateMax float64  `json:"hourlyRateMax"`
	Location      string   `json:"location"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	IsRemote      bool     `json:"isRemote"`
	SlotsTotal    int      `json:"slotsTotal"`
	IsUrgent      bool     `json:"isUrgent"`
	Publish       bool     `json:"publish"`
}

func (h *JobHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Post("/", auth.Middleware(), auth.RequireRole(jwt.RoleEmployer), h.Create)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "pageSize", 20)

	jobs, total, err := h.uc.ListJobs(c.Context(), page, pageSize)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Paginated(c, dto.NewJobResponses(jobs), response.NewPagination(page, pageSize, total))
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	posting, err := h.uc.GetJob(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, dto.NewJobResponse(posting))
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	posting, err := h.uc.CreateJob(c.Context(), userID, usecase.CreateJobParams{
		Title:         req.Title,
		Description:   req.Description,
		Requirements:  req.Requirements,
		Skills:        req.Skills,
		JobType:       job.Type(req.JobType),
		HourlyRateMin: req.HourlyRateMin,
		HourlyRateMax: req.HourlyRateMax,
		Location:      req.Location,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		IsRemote:      req.IsRemote,
		SlotsTotal:    req.SlotsTotal,
		IsUrgent:      req.IsUrgent,
		Publish:       req.Publish,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, dto.NewJobResponse(posting))
}

func intQuery(c fiber.Ctx, key string, fallback int) int {
	s := c.Query(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
