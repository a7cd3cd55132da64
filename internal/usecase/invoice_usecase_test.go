package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"staffhive/internal/domain/pricing"
	"staffhive/internal/domain/shift"
	"staffhive/internal/repository"

	"github.com/google/uuid"
)

func completedShift(hours, rate float64) shift.Shift {
	pay := hours * rate
	return shift.Shift{
		ID:         uuid.New(),
		JobID:      uuid.New(),
		WorkerID:   uuid.New(),
		Status:     shift.StatusCompleted,
		TotalHours: &hours,
		HourlyRate: rate,
		TotalPay:   &pay,
	}
}

func invoicePeriod() (time.Time, time.Time) {
	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

func TestCompanyInvoiceAggregatesCompletedShifts(t *testing.T) {
	companies := &stubCompanyRepo{company: repository.Company{ID: uuid.New(), Name: "LogiCorp Oy"}}
	shifts := &stubShiftRepo{list: []shift.Shift{
		completedShift(8, 20),
		completedShift(4, 16),
	}}
	u := NewInvoiceUsecase(companies, shifts, "EUR")

	from, to := invoicePeriod()
	inv, err := u.CompanyInvoice(context.Background(), uuid.New(), from, to, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if inv.Summary.TotalShifts != 2 {
		t.Fatalf("total shifts = %d, want 2", inv.Summary.TotalShifts)
	}
	if inv.Summary.TotalHours != 12 {
		t.Fatalf("total hours = %v, want 12", inv.Summary.TotalHours)
	}
	if inv.Summary.Subtotal != 224.00 {
		t.Fatalf("subtotal = %v, want 224.00", inv.Summary.Subtotal)
	}

	// Employer fees only: 15% of 160 plus 15% of 64.
	if inv.Summary.PlatformFees != 33.60 {
		t.Fatalf("platform fees = %v, want 33.60", inv.Summary.PlatformFees)
	}
	if inv.Summary.Total != 257.60 {
		t.Fatalf("total = %v, want 257.60", inv.Summary.Total)
	}
	if !strings.Contains(inv.FormattedTotal, "257.60") {
		t.Fatalf("formatted total %q does not contain amount", inv.FormattedTotal)
	}
	if inv.CompanyName != "LogiCorp Oy" {
		t.Fatalf("company name = %q", inv.CompanyName)
	}
}

func TestCompanyInvoiceSkipsShiftsWithoutHours(t *testing.T) {
	companies := &stubCompanyRepo{company: repository.Company{ID: uuid.New()}}
	noHours := completedShift(8, 20)
	noHours.TotalHours = nil
	shifts := &stubShiftRepo{list: []shift.Shift{noHours}}
	u := NewInvoiceUsecase(companies, shifts, "EUR")

	from, to := invoicePeriod()
	inv, err := u.CompanyInvoice(context.Background(), uuid.New(), from, to, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Summary.TotalShifts != 0 || inv.Summary.Total != 0 {
		t.Fatalf("summary = %+v, want all-zero", inv.Summary)
	}
}

func TestCompanyInvoiceFeeOverride(t *testing.T) {
	companies := &stubCompanyRepo{company: repository.Company{ID: uuid.New()}}
	shifts := &stubShiftRepo{list: []shift.Shift{completedShift(8, 20)}}
	u := NewInvoiceUsecase(companies, shifts, "EUR")

	from, to := invoicePeriod()
	override := &pricing.FeeConfig{WorkerFeePercent: 10, EmployerFeePercent: 20, MinimumFee: 2}
	inv, err := u.CompanyInvoice(context.Background(), uuid.New(), from, to, override)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Summary.PlatformFees != 32.00 {
		t.Fatalf("platform fees = %v, want 32.00", inv.Summary.PlatformFees)
	}
}

func TestCompanyInvoiceInvalidOverride(t *testing.T) {
	u := NewInvoiceUsecase(&stubCompanyRepo{}, &stubShiftRepo{}, "EUR")

	from, to := invoicePeriod()
	for _, override := range []pricing.FeeConfig{
		{WorkerFeePercent: -1, EmployerFeePercent: 15, MinimumFee: 1},
		{WorkerFeePercent: 5, EmployerFeePercent: 101, MinimumFee: 1},
		{WorkerFeePercent: 5, EmployerFeePercent: 15, MinimumFee: -0.5},
	} {
		if _, err := u.CompanyInvoice(context.Background(), uuid.New(), from, to, &override); !errors.Is(err, ErrInvalidFeeConfig) {
			t.Fatalf("override %+v: expected ErrInvalidFeeConfig, got %v", override, err)
		}
	}
}

func TestCompanyInvoiceInvalidPeriod(t *testing.T) {
	u := NewInvoiceUsecase(&stubCompanyRepo{}, &stubShiftRepo{}, "EUR")

	from, to := invoicePeriod()
	if _, err := u.CompanyInvoice(context.Background(), uuid.New(), to, from, nil); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestCompanyInvoiceCompanyNotFound(t *testing.T) {
	companies := &stubCompanyRepo{findErr: repository.ErrCompanyNotFound}
	u := NewInvoiceUsecase(companies, &stubShiftRepo{}, "EUR")

	from, to := invoicePeriod()
	if _, err := u.CompanyInvoice(context.Background(), uuid.New(), from, to, nil); !errors.Is(err, ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}
