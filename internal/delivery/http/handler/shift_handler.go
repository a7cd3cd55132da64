package handler

import (
	"time"

	"staffhive/internal/delivery/http/dto"
	"staffhive/internal/delivery/http/middleware"
	"staffhive/internal/pkg/jwt"
	"staffhive/internal/pkg/response"
	"staffhive/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ShiftHandler struct {
	uc usecase.TimesheetUsecase
}

func NewShiftHandler(uc usecase.TimesheetUsecase) *ShiftHandler {
	return &ShiftHandler{uc: uc}
}

type scheduleShiftRequest struct {
	JobID        string  `json:"jobId"`
	WorkerID     string  `json:"workerId"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	BreakMinutes int     `json:"breakMinutes"`
	HourlyRate   float64 `json:"hourlyRate"`
}

func (h *ShiftHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	r.Post("/", auth.Middleware(), auth.RequireRole(jwt.RoleEmployer), h.Schedule)
	r.Get("/", auth.Middleware(), auth.RequireRole(jwt.RoleWorker), h.List)
	r.Post("/:id/clock-in", auth.Middleware(), auth.RequireRole(jwt.RoleWorker), h.ClockIn)
	r.Post("/:id/clock-out", auth.Middleware(), auth.RequireRole(jwt.RoleWorker), h.ClockOut)
	r.Get("/summary", auth.Middleware(), auth.RequireRole(jwt.RoleWorker), h.WeeklySummary)
}

func (h *ShiftHandler) Schedule(c fiber.Ctx) error {
	var req scheduleShiftRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", err)
	}
	workerID, err := uuid.Parse(req.WorkerID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid worker id", err)
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid date", err)
	}

	created, err := h.uc.ScheduleShift(c.Context(), usecase.ScheduleShiftParams{
		JobID:        jobID,
		WorkerID:     workerID,
		Date:         date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		BreakMinutes: req.BreakMinutes,
		HourlyRate:   req.HourlyRate,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, dto.NewShiftResponse(created))
}

// List returns the caller's shifts in [from, to), defaulting to the
// current week.
func (h *ShiftHandler) List(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	from := mondayOf(time.Now().UTC())
	to := from.AddDate(0, 0, 7)
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid from", err)
		}
		from = parsed
		to = from.AddDate(0, 0, 7)
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid to", err)
		}
		to = parsed
	}

	shifts, err := h.uc.ListShifts(c.Context(), userID, from, to)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, dto.NewShiftResponses(shifts))
}

func (h *ShiftHandler) ClockIn(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}
	shiftID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	s, err := h.uc.ClockIn(c.Context(), shiftID, userID, time.Now())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, dto.NewShiftResponse(s))
}

func (h *ShiftHandler) ClockOut(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}
	shiftID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	s, err := h.uc.ClockOut(c.Context(), shiftID, userID, time.Now())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, dto.NewShiftResponse(s))
}

// WeeklySummary reports hours and pay for the seven days starting at
// the week_start query date, defaulting to the current week's Monday.
func (h *ShiftHandler) WeeklySummary(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	weekStart := mondayOf(time.Now().UTC())
	if raw := c.Query("week_start"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid week_start", err)
		}
		weekStart = parsed
	}

	summary, err := h.uc.WeeklySummary(c.Context(), userID, weekStart)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, dto.NewWeeklySummaryResponse(summary))
}

func mondayOf(t time.Time) time.Time {
	t = t.Truncate(24 * time.Hour)
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}
