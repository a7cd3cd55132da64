package dto

import (
	"staffhive/internal/domain/pricing"
	"staffhive/internal/usecase"
)

type InvoiceSummaryResponse struct {
	TotalShifts  int     `json:"totalShifts"`
	TotalHours   float64 `json:"totalHours"`
	Subtotal     float64 `json:"subtotal"`
	PlatformFees float64 `json:"platformFees"`
	Total        float64 `json:"total"`
}

type InvoiceResponse struct {
	CompanyID      string                 `json:"companyId"`
	CompanyName    string                 `json:"companyName"`
	PeriodStart    string                 `json:"periodStart"`
	PeriodEnd      string                 `json:"periodEnd"`
	Summary        InvoiceSummaryResponse `json:"summary"`
	FormattedTotal string                 `json:"formattedTotal"`
	Shifts         []ShiftResponse        `json:"shifts"`
}

type ShiftCostResponse struct {
	HoursWorked     float64 `json:"hoursWorked"`
	BaseRate        float64 `json:"baseRate"`
	BaseCost        float64 `json:"baseCost"`
	EmployerFee     float64 `json:"employerFee"`
	EmployerTotal   float64 `json:"employerTotal"`
	WorkerFee       float64 `json:"workerFee"`
	WorkerPayout    float64 `json:"workerPayout"`
	PlatformRevenue float64 `json:"platformRevenue"`
}

func NewInvoiceResponse(inv usecase.CompanyInvoice) InvoiceResponse {
	return InvoiceResponse{
		CompanyID:   inv.CompanyID.String(),
		CompanyName: inv.CompanyName,
		PeriodStart: inv.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   inv.PeriodEnd.Format("2006-01-02"),
		Summary: InvoiceSummaryResponse{
			TotalShifts:  inv.Summary.TotalShifts,
			TotalHours:   inv.Summary.TotalHours,
			Subtotal:     inv.Summary.Subtotal,
			PlatformFees: inv.Summary.PlatformFees,
			Total:        inv.Summary.Total,
		},
		FormattedTotal: inv.FormattedTotal,
		Shifts:         NewShiftResponses(inv.Shifts),
	}
}

func NewShiftCostResponse(b pricing.ShiftCostBreakdown) ShiftCostResponse {
	return ShiftCostResponse{
		HoursWorked:     b.HoursWorked,
		BaseRate:        b.BaseRate,
		BaseCost:        b.BaseCost,
		EmployerFee:     b.EmployerFee,
		EmployerTotal:   b.EmployerTotal,
		WorkerFee:       b.WorkerFee,
		WorkerPayout:    b.WorkerPayout,
		PlatformRevenue: b.PlatformRevenue,
	}
}
