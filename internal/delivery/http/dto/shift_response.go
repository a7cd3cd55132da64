package dto

import (
	"time"

	"staffhive/internal/domain/shift"
	"staffhive/internal/usecase"
)

type ShiftResponse struct {
	ID           string   `json:"id"`
	JobID        string   `json:"jobId"`
	WorkerID     string   `json:"workerId"`
	Date         string   `json:"date"`
	StartTime    string   `json:"startTime"`
	EndTime      string   `json:"endTime"`
	Status       string   `json:"status"`
	ClockInTime  *string  `json:"clockInTime,omitempty"`
	ClockOutTime *string  `json:"clockOutTime,omitempty"`
	BreakMinutes int      `json:"breakMinutes"`
	TotalHours   *float64 `json:"totalHours,omitempty"`
	HourlyRate   float64  `json:"hourlyRate"`
	TotalPay     *float64 `json:"totalPay,omitempty"`
}

type WeeklySummaryResponse struct {
	WeekStart     string          `json:"weekStart"`
	TotalHours    float64         `json:"totalHours"`
	RegularHours  float64         `json:"regularHours"`
	OvertimeHours float64         `json:"overtimeHours"`
	TotalPay      float64         `json:"totalPay"`
	Formatted     string          `json:"formatted"`
	Shifts        []ShiftResponse `json:"shifts"`
}

func NewShiftResponse(s shift.Shift) ShiftResponse {
	return ShiftResponse{
		ID:           s.ID.String(),
		JobID:        s.JobID.String(),
		WorkerID:     s.WorkerID.String(),
		Date:         s.Date.Format("2006-01-02"),
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		Status:       string(s.Status),
		ClockInTime:  rfc3339Ptr(s.ClockInTime),
		ClockOutTime: rfc3339Ptr(s.ClockOutTime),
		BreakMinutes: s.BreakMinutes,
		TotalHours:   s.TotalHours,
		HourlyRate:   s.HourlyRate,
		TotalPay:     s.TotalPay,
	}
}

func NewShiftResponses(shifts []shift.Shift) []ShiftResponse {
	out := make([]ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, NewShiftResponse(s))
	}
	return out
}

func NewWeeklySummaryResponse(s usecase.WeeklySummary) WeeklySummaryResponse {
	return WeeklySummaryResponse{
		WeekStart:     s.WeekStart.Format("2006-01-02"),
		TotalHours:    s.TotalHours,
		RegularHours:  s.Regular,
		OvertimeHours: s.Overtime,
		TotalPay:      s.TotalPay,
		Formatted:     s.Formatted,
		Shifts:        NewShiftResponses(s.Shifts),
	}
}

func rfc3339Ptr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
