package shift

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

// Shift is a single scheduled work period. StartTime/EndTime hold the
// planned "HH:mm" times on Date; the clock fields are what actually
// happened. TotalHours and TotalPay are filled in at clock-out.
type Shift struct {
	ID           uuid.UUID
	JobID        uuid.UUID
	WorkerID     uuid.UUID
	Date         time.Time
	StartTime    string
	EndTime      string
	Status       Status
	ClockInTime  *time.Time
	ClockOutTime *time.Time
	BreakMinutes int
	TotalHours   *float64
	HourlyRate   float64
	TotalPay     *float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
