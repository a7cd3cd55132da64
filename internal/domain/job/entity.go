package job

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusClosed    Status = "closed"
	StatusFilled    Status = "filled"
	StatusCancelled Status = "cancelled"
)

type Type string

const (
	TypeFullTime  Type = "full_time"
	TypePartTime  Type = "part_time"
	TypeContract  Type = "contract"
	TypeTemporary Type = "temporary"
	TypePerDiem   Type = "per_diem"
)

// Posting is an employer's job listing. Skills may contain duplicate
// names; the match engine counts them as listed. Coordinates are
// optional and irrelevant when IsRemote is set.
type Posting struct {
	ID            uuid.UUID
	CompanyID     uuid.UUID
	Title         string
	Description   string
	Requirements  []string
	Skills        []string
	JobType       Type
	Status        Status
	HourlyRateMin float64
	HourlyRateMax float64
	Location      string
	Latitude      *float64
	Longitude     *float64
	IsRemote      bool
	SlotsTotal    int
	SlotsFilled   int
	IsUrgent      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
