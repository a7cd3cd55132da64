package matching

import (
	"math"
	"strings"

	"staffhive/internal/domain/job"
	"staffhive/internal/domain/worker"

	"github.com/google/uuid"
)

// Sub-score weights. They sum to 1.0 exactly; changing one without the
// others shifts every stored score, so treat the four as a unit.
const (
	WeightSkill        = 0.40
	WeightRate         = 0.20
	WeightLocation     = 0.25
	WeightAvailability = 0.15
)

// Points deducted per currency unit a worker's rate sits outside the
// posted range.
const ratePenaltyPerUnit = 5.0

const (
	earthRadiusKm   = 6371.0
	defaultRadiusKm = 50.0
)

// Score holds the four sub-scores and their weighted combination, each
// in [0,100]. No sub-score dominates: all four always contribute per
// the fixed weights.
type Score struct {
	WorkerID          uuid.UUID
	JobID             uuid.UUID
	OverallScore      int
	SkillMatch        float64
	RateMatch         float64
	LocationMatch     float64
	AvailabilityMatch float64
}

// Compute scores how well a worker profile fits a job posting. Inputs
// are treated permissively: missing optional fields degrade to neutral
// sub-scores instead of failing.
func Compute(w worker.Profile, j job.Posting) Score {
	skill := SkillMatch(w.SkillNames(), j.Skills)
	rate := RateMatch(w.HourlyRate, j.HourlyRateMin, j.HourlyRateMax)
	location := LocationMatch(w.Latitude, w.Longitude, j.Latitude, j.Longitude, w.RadiusKm, j.IsRemote)
	availability := AvailabilityMatch(w.Availability)

	overall := int(math.Round(
		skill*WeightSkill +
			rate*WeightRate +
			location*WeightLocation +
			availability*WeightAvailability,
	))

	return Score{
		WorkerID:          w.ID,
		JobID:             j.ID,
		OverallScore:      overall,
		SkillMatch:        skill,
		RateMatch:         rate,
		LocationMatch:     location,
		AvailabilityMatch: availability,
	}
}

// SkillMatch is the percentage of required skills the worker has. A job
// with no required skills is a full match. Duplicate entries in the
// required list are counted as listed, not deduplicated.
func SkillMatch(workerSkills, jobSkills []string) float64 {
	if len(jobSkills) == 0 {
		return 100
	}

	have := make(map[string]struct{}, len(workerSkills))
	for _, s := range workerSkills {
		have[normalizeSkill(s)] = struct{}{}
	}

	matched := 0
	for _, s := range jobSkills {
		if _, ok := have[normalizeSkill(s)]; ok {
			matched++
		}
	}
	return math.Round(float64(matched) / float64(len(jobSkills)) * 100)
}

// RateMatch is 100 inside the posted range inclusive, neutral 50 when
// the worker states no rate, and falls off linearly outside the range.
func RateMatch(workerRate *float64, jobMin, jobMax float64) float64 {
	if workerRate == nil {
		return 50
	}

	r := *workerRate
	if r >= jobMin && r <= jobMax {
		return 100
	}

	gap := jobMin - r
	if r > jobMax {
		gap = r - jobMax
	}
	return math.Max(0, 100-gap*ratePenaltyPerUnit)
}

// LocationMatch steps down with great-circle distance relative to the
// worker's search radius. Remote jobs always score 100; a missing
// coordinate on either side is neutral 50. The thresholds are fixed
// steps, not a continuous falloff.
func LocationMatch(workerLat, workerLng, jobLat, jobLng *float64, radiusKm float64, isRemote bool) float64 {
	if isRemote {
		return 100
	}
	if workerLat == nil || workerLng == nil || jobLat == nil || jobLng == nil {
		return 50
	}

	distance := HaversineKm(*workerLat, *workerLng, *jobLat, *jobLng)
	radius := radiusKm
	if radius <= 0 {
		radius = defaultRadiusKm
	}

	switch {
	case distance <= radius*0.5:
		return 100
	case distance <= radius:
		return 75
	case distance <= radius*1.5:
		return 40
	default:
		return 0
	}
}

func AvailabilityMatch(a worker.Availability) float64 {
	switch a {
	case worker.AvailabilityAvailable:
		return 100
	case worker.AvailabilityLimited:
		return 50
	default:
		return 0
	}
}

// HaversineKm is the great-circle distance between two coordinates.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func toRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
