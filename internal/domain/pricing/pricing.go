package pricing

import (
	"math"

	"staffhive/internal/pkg/rounding"
)

// FeeConfig sets the platform's cut on both sides of a shift.
// Percentages are whole numbers (5 means 5%).
type FeeConfig struct {
	WorkerFeePercent   float64
	EmployerFeePercent float64
	MinimumFee         float64
}

// DefaultFeeConfig is the standard platform fee schedule. Callers that
// need different fees pass their own FeeConfig; nothing reads fees from
// ambient state.
func DefaultFeeConfig() FeeConfig {
	return FeeConfig{
		WorkerFeePercent:   5,
		EmployerFeePercent: 15,
		MinimumFee:         1.0,
	}
}

type ShiftCostBreakdown struct {
	HoursWorked     float64
	BaseRate        float64
	BaseCost        float64
	EmployerFee     float64
	EmployerTotal   float64
	WorkerFee       float64
	WorkerPayout    float64
	PlatformRevenue float64
}

// ShiftCost computes the monetary breakdown of one worked shift. Each
// derived field is rounded independently, not once at the end; the
// resulting cent-level values are part of the contract with stored
// invoices and client previews.
func ShiftCost(hoursWorked, hourlyRate float64, cfg FeeConfig) ShiftCostBreakdown {
	baseCost := rounding.Round2(hoursWorked * hourlyRate)
	employerFee := rounding.Round2(math.Max(baseCost*cfg.EmployerFeePercent/100, cfg.MinimumFee))
	workerFee := rounding.Round2(math.Max(baseCost*cfg.WorkerFeePercent/100, cfg.MinimumFee))

	return ShiftCostBreakdown{
		HoursWorked:     hoursWorked,
		BaseRate:        hourlyRate,
		BaseCost:        baseCost,
		EmployerFee:     employerFee,
		EmployerTotal:   rounding.Round2(baseCost + employerFee),
		WorkerFee:       workerFee,
		WorkerPayout:    rounding.Round2(baseCost - workerFee),
		PlatformRevenue: rounding.Round2(employerFee + workerFee),
	}
}

// ShiftLine is the slice of a shift the invoice needs.
type ShiftLine struct {
	HoursWorked float64
	HourlyRate  float64
}

type InvoiceSummary struct {
	TotalShifts  int
	TotalHours   float64
	Subtotal     float64
	PlatformFees float64
	Total        float64
}

// Invoice aggregates shifts into an employer invoice. PlatformFees sums
// employer fees only: worker fees are deducted from payouts and never
// billed to the employer. An empty shift list yields an all-zero
// summary.
func Invoice(shifts []ShiftLine, cfg FeeConfig) InvoiceSummary {
	var totalHours, subtotal, platformFees float64
	for _, s := range shifts {
		b := ShiftCost(s.HoursWorked, s.HourlyRate, cfg)
		totalHours += s.HoursWorked
		subtotal += b.BaseCost
		platformFees += b.EmployerFee
	}

	return InvoiceSummary{
		TotalShifts:  len(shifts),
		TotalHours:   rounding.Round2(totalHours),
		Subtotal:     rounding.Round2(subtotal),
		PlatformFees: rounding.Round2(platformFees),
		Total:        rounding.Round2(subtotal + platformFees),
	}
}
