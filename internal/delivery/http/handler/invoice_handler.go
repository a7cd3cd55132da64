package handler

import (
	"time"

	"staffhive/internal/delivery/http/dto"
	"staffhive/internal/delivery/http/middleware"
	"staffhive/internal/domain/pricing"
	"staffhive/internal/pkg/jwt"
	"staffhive/internal/pkg/response"
	"staffhive/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type InvoiceHandler struct {
	uc usecase.InvoiceUsecase
}

func NewInvoiceHandler(uc usecase.InvoiceUsecase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

type feeConfigRequest struct {
	WorkerFeePercent   float64 `json:"workerFeePercent"`
	EmployerFeePercent float64 `json:"employerFeePercent"`
	MinimumFee         float64 `json:"minimumFee"`
}

type invoiceRequest struct {
	PeriodStart string            `json:"periodStart"`
	PeriodEnd   string            `json:"periodEnd"`
	FeeConfig   *feeConfigRequest `json:"feeConfig"`
}

func (h *InvoiceHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	r.Post("/", auth.Middleware(), auth.RequireRole(jwt.RoleEmployer), h.Generate)
}

// Generate bills the caller's company for shifts completed inside the
// requested period.
func (h *InvoiceHandler) Generate(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var req invoiceRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	from, err := time.Parse("2006-01-02", req.PeriodStart)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid periodStart", err)
	}
	to, err := time.Parse("2006-01-02", req.PeriodEnd)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid periodEnd", err)
	}

	var override *pricing.FeeConfig
	if req.FeeConfig != nil {
		override = &pricing.FeeConfig{
			WorkerFeePercent:   req.FeeConfig.WorkerFeePercent,
			EmployerFeePercent: req.FeeConfig.EmployerFeePercent,
			MinimumFee:         req.FeeConfig.MinimumFee,
		}
	}

	inv, err := h.uc.CompanyInvoice(c.Context(), userID, from, to, override)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, dto.NewInvoiceResponse(inv))
}
