package usecase

import (
	"context"
	"errors"
	"time"

	"staffhive/internal/domain/schedule"
	"staffhive/internal/domain/shift"
	"staffhive/internal/repository"
	"staffhive/internal/ws"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrShiftNotFound         = errors.New("shift not found")
	ErrShiftConflict         = errors.New("shift conflicts with an existing shift")
	ErrInvalidShiftTimes     = errors.New("invalid shift times")
	ErrShiftNotClockable     = errors.New("shift cannot be clocked in")
	ErrNotClockedIn          = errors.New("shift has no clock-in")
	ErrAlreadyClockedOut     = errors.New("shift already clocked out")
	ErrClockOutBeforeClockIn = errors.New("clock-out precedes clock-in")
)

type ScheduleShiftParams struct {
	JobID        uuid.UUID
	WorkerID     uuid.UUID
	Date         time.Time
	StartTime    string
	EndTime      string
	BreakMinutes int
	HourlyRate   float64
}

type WeeklySummary struct {
	WeekStart  time.Time     `json:"week_start"`
	TotalHours float64       `json:"total_hours"`
	Regular    float64       `json:"regular_hours"`
	Overtime   float64       `json:"overtime_hours"`
	TotalPay   float64       `json:"total_pay"`
	Formatted  string        `json:"formatted"`
	Shifts     []shift.Shift `json:"shifts"`
}

type TimesheetUsecase interface {
	ScheduleShift(ctx context.Context, p ScheduleShiftParams) (shift.Shift, error)
	ListShifts(ctx context.Context, workerUserID uuid.UUID, from, to time.Time) ([]shift.Shift, error)
	ClockIn(ctx context.Context, shiftID, workerUserID uuid.UUID, at time.Time) (shift.Shift, error)
	ClockOut(ctx context.Context, shiftID, workerUserID uuid.UUID, at time.Time) (shift.Shift, error)
	WeeklySummary(ctx context.Context, workerUserID uuid.UUID, weekStart time.Time) (WeeklySummary, error)
}

type Timesheet struct {
	shifts repository.ShiftRepository
	jobs   repository.JobRepository
	hub    *ws.Hub
	logger *zap.Logger
}

func NewTimesheetUsecase(
	shifts repository.ShiftRepository,
	jobs repository.JobRepository,
	hub *ws.Hub,
	logger *zap.Logger,
) *Timesheet {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Timesheet{shifts: shifts, jobs: jobs, hub: hub, logger: logger}
}

// ScheduleShift assigns a worker to a shift after checking the new
// range against the worker's other shifts that day. Back-to-back shifts
// are allowed; any overlap is not.
func (u *Timesheet) ScheduleShift(ctx context.Context, p ScheduleShiftParams) (shift.Shift, error) {
	if p.HourlyRate <= 0 || p.BreakMinutes < 0 {
		return shift.Shift{}, ErrInvalidInput
	}

	start, err := schedule.ParseClockTime(p.Date, p.StartTime)
	if err != nil {
		return shift.Shift{}, ErrInvalidShiftTimes
	}
	end, err := schedule.ParseClockTime(p.Date, p.EndTime)
	if err != nil {
		return shift.Shift{}, ErrInvalidShiftTimes
	}
	if !start.Before(end) {
		return shift.Shift{}, ErrInvalidShiftTimes
	}

	exists, err := u.jobs.ExistsByID(ctx, p.JobID)
	if err != nil {
		return shift.Shift{}, ErrInternal
	}
	if !exists {
		return shift.Shift{}, ErrJobNotFound
	}

	day := p.Date.Truncate(24 * time.Hour)
	existing, err := u.shifts.ListByWorker(ctx, p.WorkerID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return shift.Shift{}, ErrInternal
	}
	for _, s := range existing {
		if s.Status == shift.StatusCancelled || s.Status == shift.StatusNoShow {
			continue
		}
		otherStart, err := schedule.ParseClockTime(s.Date, s.StartTime)
		if err != nil {
			continue
		}
		otherEnd, err := schedule.ParseClockTime(s.Date, s.EndTime)
		if err != nil {
			continue
		}
		if schedule.HasTimeConflict(start, end, otherStart, otherEnd) {
			return shift.Shift{}, ErrShiftConflict
		}
	}

	created := shift.Shift{
		ID:           uuid.New(),
		JobID:        p.JobID,
		WorkerID:     p.WorkerID,
		Date:         day,
		StartTime:    p.StartTime,
		EndTime:      p.EndTime,
		Status:       shift.StatusScheduled,
		BreakMinutes: p.BreakMinutes,
		HourlyRate:   p.HourlyRate,
	}
	if err := u.shifts.Create(ctx, created); err != nil {
		return shift.Shift{}, ErrInternal
	}

	ws.NotifyShift(u.hub, ws.EventShiftAssigned, created.ID, created.WorkerID, created.JobID)
	return created, nil
}

func (u *Timesheet) ListShifts(ctx context.Context, workerUserID uuid.UUID, from, to time.Time) ([]shift.Shift, error) {
	if !from.Before(to) {
		return nil, ErrInvalidInput
	}
	shifts, err := u.shifts.ListByWorker(ctx, workerUserID, from, to)
	if err != nil {
		return nil, ErrInternal
	}
	return shifts, nil
}

func (u *Timesheet) ClockIn(ctx context.Context, shiftID, workerUserID uuid.UUID, at time.Time) (shift.Shift, error) {
	s, err := u.findOwnedShift(ctx, shiftID, workerUserID)
	if err != nil {
		return shift.Shift{}, err
	}
	if s.Status != shift.StatusScheduled || s.ClockInTime != nil {
		return shift.Shift{}, ErrShiftNotClockable
	}

	at = at.UTC()
	if err := u.shifts.SetClockIn(ctx, s.ID, at); err != nil {
		return shift.Shift{}, ErrInternal
	}
	s.ClockInTime = &at
	s.Status = shift.StatusInProgress

	ws.NotifyShift(u.hub, ws.EventShiftClockedIn, s.ID, s.WorkerID, s.JobID)
	return s, nil
}

// ClockOut records the end of a worked shift and computes the hours and
// pay. A clock-out earlier than the clock-in is rejected here rather
// than silently clamped to zero hours.
func (u *Timesheet) ClockOut(ctx context.Context, shiftID, workerUserID uuid.UUID, at time.Time) (shift.Shift, error) {
	s, err := u.findOwnedShift(ctx, shiftID, workerUserID)
	if err != nil {
		return shift.Shift{}, err
	}
	if s.ClockInTime == nil {
		return shift.Shift{}, ErrNotClockedIn
	}
	if s.ClockOutTime != nil {
		return shift.Shift{}, ErrAlreadyClockedOut
	}

	at = at.UTC()
	if at.Before(*s.ClockInTime) {
		return shift.Shift{}, ErrClockOutBeforeClockIn
	}

	hours := schedule.ShiftHours(*s.ClockInTime, at, s.BreakMinutes)
	pay := schedule.ShiftPay(hours, s.HourlyRate)

	if err := u.shifts.SetClockOut(ctx, s.ID, at, hours, pay); err != nil {
		return shift.Shift{}, ErrInternal
	}
	s.ClockOutTime = &at
	s.TotalHours = &hours
	s.TotalPay = &pay
	s.Status = shift.StatusCompleted

	ws.NotifyShift(u.hub, ws.EventShiftClockedOut, s.ID, s.WorkerID, s.JobID)
	return s, nil
}

// WeeklySummary totals the worker's recorded hours for the seven days
// starting at weekStart. Overtime is split per shift against the
// standard 8-hour day, matching how payroll treats daily overtime.
func (u *Timesheet) WeeklySummary(ctx context.Context, workerUserID uuid.UUID, weekStart time.Time) (WeeklySummary, error) {
	weekStart = weekStart.Truncate(24 * time.Hour)
	shifts, err := u.shifts.ListByWorker(ctx, workerUserID, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return WeeklySummary{}, ErrInternal
	}

	var regular, overtime, totalPay float64
	for _, s := range shifts {
		if s.TotalHours == nil {
			continue
		}
		split := schedule.Overtime(*s.TotalHours, schedule.DefaultOvertimeThreshold)
		regular += split.Regular
		overtime += split.Overtime
		if s.TotalPay != nil {
			totalPay += *s.TotalPay
		}
	}

	total := schedule.SumWeeklyHours(shifts)
	return WeeklySummary{
		WeekStart:  weekStart,
		TotalHours: total,
		Regular:    regular,
		Overtime:   overtime,
		TotalPay:   totalPay,
		Formatted:  schedule.FormatDuration(total),
		Shifts:     shifts,
	}, nil
}

func (u *Timesheet) findOwnedShift(ctx context.Context, shiftID, workerUserID uuid.UUID) (shift.Shift, error) {
	s, err := u.shifts.FindByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, repository.ErrShiftNotFound) {
			return shift.Shift{}, ErrShiftNotFound
		}
		return shift.Shift{}, ErrInternal
	}
	if s.WorkerID != workerUserID {
		return shift.Shift{}, ErrForbidden
	}
	return s, nil
}
