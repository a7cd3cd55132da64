package handler

import (
	"staffhive/internal/delivery/http/dto"
	"staffhive/internal/delivery/http/middleware"
	"staffhive/internal/domain/pricing"
	"staffhive/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// PricingHandler exposes the fee arithmetic directly so clients can
// preview shift costs without creating anything.
type PricingHandler struct{}

func NewPricingHandler() *PricingHandler {
	return &PricingHandler{}
}

type shiftPreviewRequest struct {
	HoursWorked float64           `json:"hoursWorked"`
	HourlyRate  float64           `json:"hourlyRate"`
	FeeConfig   *feeConfigRequest `json:"feeConfig"`
}

func (h *PricingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/shift-preview", h.ShiftPreview)
}

func (h *PricingHandler) ShiftPreview(c fiber.Ctx) error {
	var req shiftPreviewRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}
	if req.HoursWorked < 0 || req.HourlyRate < 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Hours and rate must be non-negative", nil)
	}

	cfg := pricing.DefaultFeeConfig()
	if req.FeeConfig != nil {
		cfg = pricing.FeeConfig{
			WorkerFeePercent:   req.FeeConfig.WorkerFeePercent,
			EmployerFeePercent: req.FeeConfig.EmployerFeePercent,
			MinimumFee:         req.FeeConfig.MinimumFee,
		}
		if cfg.WorkerFeePercent < 0 || cfg.WorkerFeePercent > 100 ||
			cfg.EmployerFeePercent < 0 || cfg.EmployerFeePercent > 100 ||
			cfg.MinimumFee < 0 {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid fee configuration", nil)
		}
	}

	breakdown := pricing.ShiftCost(req.HoursWorked, req.HourlyRate, cfg)
	return response.Success(c, fiber.StatusOK, dto.NewShiftCostResponse(breakdown))
}
