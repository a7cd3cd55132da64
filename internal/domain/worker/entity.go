package worker

import (
	"time"

	"github.com/google/uuid"
)

// DefaultRadiusKm is the commute radius applied when a profile does not
// set one.
const DefaultRadiusKm = 50.0

type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityLimited     Availability = "limited"
	AvailabilityUnavailable Availability = "unavailable"
)

type SkillLevel string

const (
	SkillLevelBeginner     SkillLevel = "beginner"
	SkillLevelIntermediate SkillLevel = "intermediate"
	SkillLevelAdvanced     SkillLevel = "advanced"
	SkillLevelExpert       SkillLevel = "expert"
)

type Skill struct {
	Name  string
	Level SkillLevel
}

// Profile is a worker's marketplace profile. HourlyRate and the
// coordinates are optional; absence means "not stated", not zero.
type Profile struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Headline           string
	Bio                string
	Skills             []Skill
	HourlyRate         *float64
	Availability       Availability
	Location           string
	Latitude           *float64
	Longitude          *float64
	RadiusKm           float64
	Rating             float64
	TotalJobsCompleted int
	DocumentsVerified  bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// SkillNames returns just the names, in profile order.
func (p Profile) SkillNames() []string {
	names := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		names = append(names, s.Name)
	}
	return names
}
