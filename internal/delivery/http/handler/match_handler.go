package handler

import (
	"staffhive/internal/delivery/http/dto"
	"staffhive/internal/delivery/http/middleware"
	"staffhive/internal/pkg/jwt"
	"staffhive/internal/pkg/response"
	"staffhive/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	matching usecase.MatchingUsecase
	feed     usecase.JobFeedUsecase
}

func NewMatchHandler(matching usecase.MatchingUsecase, feed usecase.JobFeedUsecase) *MatchHandler {
	return &MatchHandler{matching: matching, feed: feed}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	r.Get("/jobs/:jobId", auth.Middleware(), auth.RequireRole(jwt.RoleWorker), h.ScoreJob)
	r.Get("/feed", auth.Middleware(), auth.RequireRole(jwt.RoleWorker), h.Feed)
}

// ScoreJob returns the caller's match score for one job.
func (h *MatchHandler) ScoreJob(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}
	jobID, err := uuidParam(c, "jobId")
	if err != nil {
		return err
	}

	score, err := h.matching.ScoreJob(c.Context(), userID, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, dto.NewMatchScoreResponse(score))
}

// Feed returns published jobs scored for the caller, urgent first.
func (h *MatchHandler) Feed(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "pageSize", 20)

	items, total, err := h.feed.Feed(c.Context(), userID, page, pageSize)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Paginated(c, dto.NewFeedItemResponses(items), response.NewPagination(page, pageSize, total))
}
