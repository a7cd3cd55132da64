package usecase

import (
	"context"
	"errors"
	"time"

	"staffhive/internal/domain/pricing"
	"staffhive/internal/domain/shift"
	"staffhive/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrCompanyNotFound  = errors.New("company not found")
	ErrInvalidFeeConfig = errors.New("invalid fee configuration")
	ErrInvalidPeriod    = errors.New("invalid invoice period")
)

type CompanyInvoice struct {
	CompanyID      uuid.UUID              `json:"company_id"`
	CompanyName    string                 `json:"company_name"`
	PeriodStart    time.Time              `json:"period_start"`
	PeriodEnd      time.Time              `json:"period_end"`
	Summary        pricing.InvoiceSummary `json:"summary"`
	FormattedTotal string                 `json:"formatted_total"`
	Shifts         []shift.Shift          `json:"shifts"`
}

type InvoiceUsecase interface {
	CompanyInvoice(ctx context.Context, ownerUserID uuid.UUID, from, to time.Time, override *pricing.FeeConfig) (CompanyInvoice, error)
}

type Invoice struct {
	companies repository.CompanyRepository
	shifts    repository.ShiftRepository

	currencyCode string
}

func NewInvoiceUsecase(companies repository.CompanyRepository, shifts repository.ShiftRepository, currencyCode string) *Invoice {
	if currencyCode == "" {
		currencyCode = "EUR"
	}
	return &Invoice{companies: companies, shifts: shifts, currencyCode: currencyCode}
}

// CompanyInvoice bills the owner's company for all shifts completed in
// [from, to). Fees come from the platform defaults unless the caller
// passes an override, which must be sane before it is applied.
func (u *Invoice) CompanyInvoice(ctx context.Context, ownerUserID uuid.UUID, from, to time.Time, override *pricing.FeeConfig) (CompanyInvoice, error) {
	if !from.Before(to) {
		return CompanyInvoice{}, ErrInvalidPeriod
	}

	cfg := pricing.DefaultFeeConfig()
	if override != nil {
		if err := validateFeeConfig(*override); err != nil {
			return CompanyInvoice{}, err
		}
		cfg = *override
	}

	company, err := u.companies.FindByOwner(ctx, ownerUserID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return CompanyInvoice{}, ErrCompanyNotFound
		}
		return CompanyInvoice{}, ErrInternal
	}

	completed, err := u.shifts.ListCompletedByCompany(ctx, company.ID, from, to)
	if err != nil {
		return CompanyInvoice{}, ErrInternal
	}

	lines := make([]pricing.ShiftLine, 0, len(completed))
	for _, s := range completed {
		if s.TotalHours == nil {
			continue
		}
		lines = append(lines, pricing.ShiftLine{HoursWorked: *s.TotalHours, HourlyRate: s.HourlyRate})
	}

	summary := pricing.Invoice(lines, cfg)
	return CompanyInvoice{
		CompanyID:      company.ID,
		CompanyName:    company.Name,
		PeriodStart:    from,
		PeriodEnd:      to,
		Summary:        summary,
		FormattedTotal: pricing.FormatCurrency(summary.Total, u.currencyCode),
		Shifts:         completed,
	}, nil
}

func validateFeeConfig(cfg pricing.FeeConfig) error {
	if cfg.WorkerFeePercent < 0 || cfg.WorkerFeePercent > 100 {
		return ErrInvalidFeeConfig
	}
	if cfg.EmployerFeePercent < 0 || cfg.EmployerFeePercent > 100 {
		return ErrInvalidFeeConfig
	}
	if cfg.MinimumFee < 0 {
		return ErrInvalidFeeConfig
	}
	return nil
}
