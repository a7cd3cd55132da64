package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"staffhive/internal/domain/shift"

	"github.com/google/uuid"
)

func testDate() time.Time {
	return time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
}

func scheduledShift(workerID uuid.UUID, start, end string) shift.Shift {
	return shift.Shift{
		ID:         uuid.New(),
		JobID:      uuid.New(),
		WorkerID:   workerID,
		Date:       testDate(),
		StartTime:  start,
		EndTime:    end,
		Status:     shift.StatusScheduled,
		HourlyRate: 20,
	}
}

func TestScheduleShiftRejectsOverlap(t *testing.T) {
	workerID := uuid.New()
	shifts := &stubShiftRepo{list: []shift.Shift{scheduledShift(workerID, "09:00", "17:00")}}
	jobs := &stubJobRepo{exists: true}
	u := NewTimesheetUsecase(shifts, jobs, nil, nil)

	_, err := u.ScheduleShift(context.Background(), ScheduleShiftParams{
		JobID:      uuid.New(),
		WorkerID:   workerID,
		Date:       testDate(),
		StartTime:  "16:00",
		EndTime:    "18:00",
		HourlyRate: 18,
	})
	if !errors.Is(err, ErrShiftConflict) {
		t.Fatalf("expected ErrShiftConflict, got %v", err)
	}
	if shifts.created != nil {
		t.Fatal("conflicting shift must not be created")
	}
}

func TestScheduleShiftAllowsBackToBack(t *testing.T) {
	workerID := uuid.New()
	shifts := &stubShiftRepo{list: []shift.Shift{scheduledShift(workerID, "09:00", "17:00")}}
	jobs := &stubJobRepo{exists: true}
	u := NewTimesheetUsecase(shifts, jobs, nil, nil)

	created, err := u.ScheduleShift(context.Background(), ScheduleShiftParams{
		JobID:      uuid.New(),
		WorkerID:   workerID,
		Date:       testDate(),
		StartTime:  "17:00",
		EndTime:    "21:00",
		HourlyRate: 18,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != shift.StatusScheduled {
		t.Fatalf("status = %q, want scheduled", created.Status)
	}
	if shifts.created == nil {
		t.Fatal("shift was not persisted")
	}
}

func TestScheduleShiftIgnoresCancelledShifts(t *testing.T) {
	workerID := uuid.New()
	cancelled := scheduledShift(workerID, "09:00", "17:00")
	cancelled.Status = shift.StatusCancelled
	shifts := &stubShiftRepo{list: []shift.Shift{cancelled}}
	jobs := &stubJobRepo{exists: true}
	u := NewTimesheetUsecase(shifts, jobs, nil, nil)

	_, err := u.ScheduleShift(context.Background(), ScheduleShiftParams{
		JobID:      uuid.New(),
		WorkerID:   workerID,
		Date:       testDate(),
		StartTime:  "10:00",
		EndTime:    "14:00",
		HourlyRate: 18,
	})
	if err != nil {
		t.Fatalf("cancelled shift must not block scheduling: %v", err)
	}
}

func TestScheduleShiftInvalidTimes(t *testing.T) {
	u := NewTimesheetUsecase(&stubShiftRepo{}, &stubJobRepo{exists: true}, nil, nil)

	cases := []struct {
		name       string
		start, end string
	}{
		{"end before start", "17:00", "09:00"},
		{"equal times", "09:00", "09:00"},
		{"garbage start", "late", "17:00"},
		{"out of range", "25:00", "26:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := u.ScheduleShift(context.Background(), ScheduleShiftParams{
				JobID:      uuid.New(),
				WorkerID:   uuid.New(),
				Date:       testDate(),
				StartTime:  tc.start,
				EndTime:    tc.end,
				HourlyRate: 18,
			})
			if !errors.Is(err, ErrInvalidShiftTimes) {
				t.Fatalf("expected ErrInvalidShiftTimes, got %v", err)
			}
		})
	}
}

func TestClockInTransitionsShift(t *testing.T) {
	workerID := uuid.New()
	s := scheduledShift(workerID, "08:00", "16:00")
	shifts := &stubShiftRepo{shift: s}
	u := NewTimesheetUsecase(shifts, &stubJobRepo{}, nil, nil)

	at := time.Date(2025, time.March, 10, 8, 2, 0, 0, time.UTC)
	got, err := u.ClockIn(context.Background(), s.ID, workerID, at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != shift.StatusInProgress {
		t.Fatalf("status = %q, want in_progress", got.Status)
	}
	if got.ClockInTime == nil || !got.ClockInTime.Equal(at) {
		t.Fatalf("clock-in time = %v, want %v", got.ClockInTime, at)
	}
	if shifts.clockedIn == nil || shifts.clockedIn.id != s.ID {
		t.Fatal("clock-in was not persisted")
	}
}

func TestClockInWrongWorker(t *testing.T) {
	s := scheduledShift(uuid.New(), "08:00", "16:00")
	u := NewTimesheetUsecase(&stubShiftRepo{shift: s}, &stubJobRepo{}, nil, nil)

	_, err := u.ClockIn(context.Background(), s.ID, uuid.New(), time.Now())
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestClockInTwiceRejected(t *testing.T) {
	workerID := uuid.New()
	s := scheduledShift(workerID, "08:00", "16:00")
	in := time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)
	s.ClockInTime = &in
	s.Status = shift.StatusInProgress
	u := NewTimesheetUsecase(&stubShiftRepo{shift: s}, &stubJobRepo{}, nil, nil)

	_, err := u.ClockIn(context.Background(), s.ID, workerID, in.Add(time.Minute))
	if !errors.Is(err, ErrShiftNotClockable) {
		t.Fatalf("expected ErrShiftNotClockable, got %v", err)
	}
}

func TestClockOutComputesHoursAndPay(t *testing.T) {
	workerID := uuid.New()
	s := scheduledShift(workerID, "08:00", "16:30")
	in := time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)
	s.ClockInTime = &in
	s.Status = shift.StatusInProgress
	s.BreakMinutes = 30
	shifts := &stubShiftRepo{shift: s}
	u := NewTimesheetUsecase(shifts, &stubJobRepo{}, nil, nil)

	out := time.Date(2025, time.March, 10, 16, 30, 0, 0, time.UTC)
	got, err := u.ClockOut(context.Background(), s.ID, workerID, out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != shift.StatusCompleted {
		t.Fatalf("status = %q, want completed", got.Status)
	}
	if got.TotalHours == nil || *got.TotalHours != 8.0 {
		t.Fatalf("total hours = %v, want 8.0", got.TotalHours)
	}
	if got.TotalPay == nil || *got.TotalPay != 160.0 {
		t.Fatalf("total pay = %v, want 160.0", got.TotalPay)
	}
	if shifts.outHours != 8.0 || shifts.outPay != 160.0 {
		t.Fatalf("persisted hours/pay = %v/%v, want 8/160", shifts.outHours, shifts.outPay)
	}
}

func TestClockOutBeforeClockInRejected(t *testing.T) {
	workerID := uuid.New()
	s := scheduledShift(workerID, "08:00", "16:00")
	in := time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)
	s.ClockInTime = &in
	s.Status = shift.StatusInProgress
	u := NewTimesheetUsecase(&stubShiftRepo{shift: s}, &stubJobRepo{}, nil, nil)

	_, err := u.ClockOut(context.Background(), s.ID, workerID, in.Add(-time.Minute))
	if !errors.Is(err, ErrClockOutBeforeClockIn) {
		t.Fatalf("expected ErrClockOutBeforeClockIn, got %v", err)
	}
}

func TestClockOutWithoutClockIn(t *testing.T) {
	workerID := uuid.New()
	s := scheduledShift(workerID, "08:00", "16:00")
	u := NewTimesheetUsecase(&stubShiftRepo{shift: s}, &stubJobRepo{}, nil, nil)

	_, err := u.ClockOut(context.Background(), s.ID, workerID, time.Now())
	if !errors.Is(err, ErrNotClockedIn) {
		t.Fatalf("expected ErrNotClockedIn, got %v", err)
	}
}

func TestWeeklySummarySplitsOvertimePerShift(t *testing.T) {
	workerID := uuid.New()
	a := scheduledShift(workerID, "08:00", "16:00")
	a.Status = shift.StatusCompleted
	a.TotalHours = floatPtr(8)
	a.TotalPay = floatPtr(160)
	b := scheduledShift(workerID, "08:00", "18:00")
	b.Status = shift.StatusCompleted
	b.TotalHours = floatPtr(10)
	b.TotalPay = floatPtr(250)
	pending := scheduledShift(workerID, "09:00", "17:00")

	shifts := &stubShiftRepo{list: []shift.Shift{a, b, pending}}
	u := NewTimesheetUsecase(shifts, &stubJobRepo{}, nil, nil)

	got, err := u.WeeklySummary(context.Background(), workerID, testDate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalHours != 18 {
		t.Fatalf("total hours = %v, want 18", got.TotalHours)
	}
	if got.Regular != 16 || got.Overtime != 2 {
		t.Fatalf("regular/overtime = %v/%v, want 16/2", got.Regular, got.Overtime)
	}
	if got.TotalPay != 410 {
		t.Fatalf("total pay = %v, want 410", got.TotalPay)
	}
	if got.Formatted != "18h" {
		t.Fatalf("formatted = %q, want %q", got.Formatted, "18h")
	}
	if len(got.Shifts) != 3 {
		t.Fatalf("shifts = %d, want 3", len(got.Shifts))
	}
}
