package handler

import (
	"errors"

	"staffhive/internal/delivery/http/middleware"
	"staffhive/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// mapUsecaseError translates usecase sentinels into transport errors.
// Anything unmapped is a 500 and gets logged by the error middleware.
func mapUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, usecase.ErrInvalidRole),
		errors.Is(err, usecase.ErrInvalidShiftTimes),
		errors.Is(err, usecase.ErrInvalidPeriod),
		errors.Is(err, usecase.ErrInvalidFeeConfig):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid input", err)

	case errors.Is(err, usecase.ErrUnauthorized),
		errors.Is(err, usecase.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", err)

	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", err)

	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Worker profile not found", err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", err)
	case errors.Is(err, usecase.ErrShiftNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Shift not found", err)
	case errors.Is(err, usecase.ErrCompanyNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Company not found", err)

	case errors.Is(err, usecase.ErrEmailTaken):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered", err)
	case errors.Is(err, usecase.ErrShiftConflict):
		return middleware.NewAppError(fiber.StatusConflict, "Shift conflicts with an existing shift", err)

	case errors.Is(err, usecase.ErrShiftNotClockable):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Shift cannot be clocked in", err)
	case errors.Is(err, usecase.ErrNotClockedIn):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Shift has not been clocked in", err)
	case errors.Is(err, usecase.ErrAlreadyClockedOut):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Shift already clocked out", err)
	case errors.Is(err, usecase.ErrClockOutBeforeClockIn):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Clock-out must come after clock-in", err)

	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "Internal server error", err)
	}
}

func userIDFromCtx(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func uuidParam(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", err)
	}
	return id, nil
}
