package schedule

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"staffhive/internal/domain/shift"
	"staffhive/internal/pkg/rounding"
)

// DefaultOvertimeThreshold is the standard 8-hour day; weekly callers
// pass 40.
const DefaultOvertimeThreshold = 8.0

// ShiftHours is the elapsed time between clock-in and clock-out minus
// the break, in hours. Negative raw durations (clock-out before
// clock-in, or a break longer than the shift) clamp to zero by policy:
// the arithmetic stays total and the collaborator decides whether such
// input deserves a validation error.
func ShiftHours(clockIn, clockOut time.Time, breakMinutes int) float64 {
	workedMinutes := clockOut.Sub(clockIn).Minutes() - float64(breakMinutes)
	return math.Max(0, rounding.Round2(workedMinutes/60))
}

func ShiftPay(totalHours, hourlyRate float64) float64 {
	return rounding.Round2(totalHours * hourlyRate)
}

// HasTimeConflict reports whether two time ranges overlap. Touching
// ranges, where one ends exactly when the other starts, do not
// conflict.
func HasTimeConflict(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && startB.Before(endA)
}

type OvertimeSplit struct {
	Regular  float64
	Overtime float64
}

// Overtime splits total hours at the threshold.
func Overtime(totalHours, threshold float64) OvertimeSplit {
	if totalHours <= threshold {
		return OvertimeSplit{Regular: totalHours}
	}
	return OvertimeSplit{
		Regular:  threshold,
		Overtime: rounding.Round2(totalHours - threshold),
	}
}

// SumWeeklyHours totals recorded shift hours. Shifts with no recorded
// total count as zero.
func SumWeeklyHours(shifts []shift.Shift) float64 {
	var total float64
	for _, s := range shifts {
		if s.TotalHours != nil {
			total += *s.TotalHours
		}
	}
	return total
}

// ParseClockTime combines a calendar date with a 24-hour "HH:mm" string
// into an instant in the date's location, with seconds zeroed.
func ParseClockTime(date time.Time, hhmm string) (time.Time, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("invalid clock time %q", hhmm)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock time %q", hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock time %q", hhmm)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return time.Time{}, fmt.Errorf("clock time %q out of range", hhmm)
	}

	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location()), nil
}

// FormatDuration renders hours as "8h" or "8h 30m".
func FormatDuration(totalHours float64) string {
	h := int(math.Floor(totalHours))
	m := int(math.Round((totalHours - float64(h)) * 60))
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
