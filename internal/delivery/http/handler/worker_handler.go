package handler

import (
	"staffhive/internal/delivery/http/dto"
	"staffhive/internal/delivery/http/middleware"
	"staffhive/internal/domain/worker"
	"staffhive/internal/pkg/jwt"
	"staffhive/internal/pkg/response"
	"staffhive/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type WorkerHandler struct {
	uc usecase.WorkerUsecase
}

func NewWorkerHandler(uc usecase.WorkerUsecase) *WorkerHandler {
	return &WorkerHandler{uc: uc}
}

type workerSkillRequest struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type updateProfileRequest struct {
	Headline          string               `json:"headline"`
	Bio               string               `json:"bio"`
	Skills            []workerSkillRequest `json:"skills"`
	HourlyRate        *float64             `json:"hourlyRate"`
	Availability      string               `json:"availability"`
	Location          string               `json:"location"`
	Latitude          *float64             `json:"latitude"`
	Longitude         *float64             `json:"longitude"`
	RadiusKm          float64              `json:"radiusKm"`
	DocumentsVerified bool                 `json:"documentsVerified"`
}

func (h *WorkerHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	me := r.Group("/me", auth.Middleware(), auth.RequireRole(jwt.RoleWorker))
	me.Get("/profile", h.GetProfile)
	me.Put("/profile", h.UpdateProfile)
}

func (h *WorkerHandler) GetProfile(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	p, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, dto.NewWorkerProfileResponse(p))
}

func (h *WorkerHandler) UpdateProfile(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	skills := make([]worker.Skill, 0, len(req.Skills))
	for _, s := range req.Skills {
		skills = append(skills, worker.Skill{Name: s.Name, Level: worker.SkillLevel(s.Level)})
	}

	p, err := h.uc.UpdateProfile(c.Context(), userID, worker.Profile{
		Headline:          req.Headline,
		Bio:               req.Bio,
		Skills:            skills,
		HourlyRate:        req.HourlyRate,
		Availability:      worker.Availability(req.Availability),
		Location:          req.Location,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		RadiusKm:          req.RadiusKm,
		DocumentsVerified: req.DocumentsVerified,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, dto.NewWorkerProfileResponse(p))
}
