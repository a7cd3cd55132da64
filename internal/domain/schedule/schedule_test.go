package schedule

import (
	"testing"
	"time"

	"staffhive/internal/domain/shift"
)

func clock(h, m int) time.Time {
	return time.Date(2025, time.March, 10, h, m, 0, 0, time.UTC)
}

func TestShiftHours(t *testing.T) {
	// 08:00 -> 16:30 is 510 minutes; minus a 30 minute break leaves
	// exactly 8 hours.
	got := ShiftHours(clock(8, 0), clock(16, 30), 30)
	if got != 8.00 {
		t.Fatalf("expected 8.00 hours, got %v", got)
	}

	got = ShiftHours(clock(9, 0), clock(17, 15), 0)
	if got != 8.25 {
		t.Fatalf("expected 8.25 hours, got %v", got)
	}
}

func TestShiftHours_ClampsNegativeDurations(t *testing.T) {
	// Clock-out before clock-in clamps to zero instead of erroring.
	if got := ShiftHours(clock(16, 0), clock(8, 0), 0); got != 0 {
		t.Fatalf("expected 0 for reversed clocks, got %v", got)
	}
	// So does a break longer than the shift.
	if got := ShiftHours(clock(8, 0), clock(9, 0), 120); got != 0 {
		t.Fatalf("expected 0 for oversized break, got %v", got)
	}
}

func TestShiftPay(t *testing.T) {
	if got := ShiftPay(8.07, 20); got != 161.40 {
		t.Fatalf("expected 161.40, got %v", got)
	}
	if got := ShiftPay(0, 20); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestHasTimeConflict(t *testing.T) {
	if !HasTimeConflict(clock(9, 0), clock(12, 0), clock(11, 0), clock(14, 0)) {
		t.Fatalf("expected overlap to conflict")
	}
	if HasTimeConflict(clock(9, 0), clock(10, 0), clock(12, 0), clock(13, 0)) {
		t.Fatalf("expected disjoint ranges not to conflict")
	}
}

func TestHasTimeConflict_TouchingRangesDoNotConflict(t *testing.T) {
	if HasTimeConflict(clock(9, 0), clock(10, 0), clock(10, 0), clock(11, 0)) {
		t.Fatalf("expected touching ranges not to conflict")
	}
}

func TestHasTimeConflict_Symmetric(t *testing.T) {
	a1, a2 := clock(9, 0), clock(12, 0)
	b1, b2 := clock(11, 0), clock(14, 0)
	if HasTimeConflict(a1, a2, b1, b2) != HasTimeConflict(b1, b2, a1, a2) {
		t.Fatalf("expected conflict check to be symmetric")
	}

	c1, c2 := clock(15, 0), clock(16, 0)
	if HasTimeConflict(a1, a2, c1, c2) != HasTimeConflict(c1, c2, a1, a2) {
		t.Fatalf("expected non-conflict to be symmetric")
	}
}

func TestOvertime(t *testing.T) {
	got := Overtime(8, DefaultOvertimeThreshold)
	if got.Regular != 8 || got.Overtime != 0 {
		t.Fatalf("at threshold: expected {8 0}, got %+v", got)
	}

	got = Overtime(10, DefaultOvertimeThreshold)
	if got.Regular != 8 || got.Overtime != 2 {
		t.Fatalf("above threshold: expected {8 2}, got %+v", got)
	}

	got = Overtime(6.5, DefaultOvertimeThreshold)
	if got.Regular != 6.5 || got.Overtime != 0 {
		t.Fatalf("below threshold: expected {6.5 0}, got %+v", got)
	}

	got = Overtime(45.25, 40)
	if got.Regular != 40 || got.Overtime != 5.25 {
		t.Fatalf("weekly threshold: expected {40 5.25}, got %+v", got)
	}
}

func TestSumWeeklyHours(t *testing.T) {
	h1, h2 := 8.0, 6.5
	shifts := []shift.Shift{
		{TotalHours: &h1},
		{TotalHours: nil}, // not yet clocked out, counts as zero
		{TotalHours: &h2},
	}
	if got := SumWeeklyHours(shifts); got != 14.5 {
		t.Fatalf("expected 14.5, got %v", got)
	}
	if got := SumWeeklyHours(nil); got != 0 {
		t.Fatalf("expected 0 for no shifts, got %v", got)
	}
}

func TestParseClockTime(t *testing.T) {
	date := time.Date(2025, time.March, 10, 23, 59, 58, 123, time.UTC)

	got, err := ParseClockTime(date, "08:30")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := time.Date(2025, time.March, 10, 8, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	for _, bad := range []string{"", "8", "25:00", "08:61", "ab:cd"} {
		if _, err := ParseClockTime(date, bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	if got := FormatDuration(8); got != "8h" {
		t.Fatalf("expected 8h, got %q", got)
	}
	if got := FormatDuration(8.5); got != "8h 30m" {
		t.Fatalf("expected 8h 30m, got %q", got)
	}
	if got := FormatDuration(0.25); got != "0h 15m" {
		t.Fatalf("expected 0h 15m, got %q", got)
	}
}
