package handler

import (
	"staffhive/internal/database"
	"staffhive/internal/infrastructure/cache"
	"staffhive/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	redis *cache.Redis
}

func NewHealthHandler(db database.DB, redis *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/health", h.Liveness)
	app.Get("/health/ready", h.Readiness)
}

func (h *HealthHandler) Liveness(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, map[string]string{"status": "ok"})
}

// Readiness checks the hard dependency (postgres) and reports the cache
// state without failing on it.
func (h *HealthHandler) Readiness(c fiber.Ctx) error {
	checks := map[string]string{"database": "ok", "cache": "ok"}
	status := fiber.StatusOK

	if h.db == nil {
		checks["database"] = "unavailable"
		status = fiber.StatusServiceUnavailable
	} else if err := h.db.Ping(c.Context()); err != nil {
		checks["database"] = err.Error()
		status = fiber.StatusServiceUnavailable
	}

	if err := h.redis.Ping(c.Context()); err != nil {
		checks["cache"] = "bypassed"
	}

	if status != fiber.StatusOK {
		return response.Error(c, status, "not ready", nil)
	}
	return response.Success(c, status, checks)
}
