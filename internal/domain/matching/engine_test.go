package matching

import (
	"math"
	"testing"

	"staffhive/internal/domain/job"
	"staffhive/internal/domain/worker"

	"github.com/google/uuid"
)

func f64(v float64) *float64 { return &v }

func baseWorker() worker.Profile {
	return worker.Profile{
		ID: uuid.New(),
		Skills: []worker.Skill{
			{Name: "Forklift", Level: worker.SkillLevelExpert},
			{Name: "Warehouse", Level: worker.SkillLevelAdvanced},
			{Name: "Packing", Level: worker.SkillLevelAdvanced},
		},
		HourlyRate:   f64(18),
		Availability: worker.AvailabilityAvailable,
		Latitude:     f64(60.2055),
		Longitude:    f64(24.6559),
		RadiusKm:     30,
	}
}

func baseJob() job.Posting {
	return job.Posting{
		ID:            uuid.New(),
		Skills:        []string{"Warehouse", "Packing", "Forklift"},
		HourlyRateMin: 16,
		HourlyRateMax: 22,
		Latitude:      f64(60.2055),
		Longitude:     f64(24.6559),
	}
}

func TestCompute_WeightedCombination(t *testing.T) {
	w := baseWorker()
	j := baseJob()

	s := Compute(w, j)

	if s.SkillMatch != 100 || s.RateMatch != 100 || s.LocationMatch != 100 || s.AvailabilityMatch != 100 {
		t.Fatalf("expected all sub-scores 100, got %+v", s)
	}
	if s.OverallScore != 100 {
		t.Fatalf("expected overall 100, got %d", s.OverallScore)
	}
	if s.WorkerID != w.ID || s.JobID != j.ID {
		t.Fatalf("identity mismatch: %+v", s)
	}

	want := int(math.Round(
		s.SkillMatch*WeightSkill +
			s.RateMatch*WeightRate +
			s.LocationMatch*WeightLocation +
			s.AvailabilityMatch*WeightAvailability,
	))
	if s.OverallScore != want {
		t.Fatalf("overall %d does not match weighted combination %d", s.OverallScore, want)
	}
}

func TestCompute_SubScoresInRange(t *testing.T) {
	w := baseWorker()
	w.HourlyRate = f64(200)
	w.Availability = worker.AvailabilityUnavailable
	w.Skills = nil

	s := Compute(w, baseJob())

	for name, v := range map[string]float64{
		"skill":        s.SkillMatch,
		"rate":         s.RateMatch,
		"location":     s.LocationMatch,
		"availability": s.AvailabilityMatch,
	} {
		if v < 0 || v > 100 {
			t.Fatalf("%s score out of range: %v", name, v)
		}
	}
	if s.OverallScore < 0 || s.OverallScore > 100 {
		t.Fatalf("overall score out of range: %d", s.OverallScore)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	w := baseWorker()
	j := baseJob()
	a := Compute(w, j)
	b := Compute(w, j)
	if a != b {
		t.Fatalf("expected identical results, got %+v vs %+v", a, b)
	}
}

func TestSkillMatch_NoRequiredSkills(t *testing.T) {
	if got := SkillMatch([]string{"Forklift"}, nil); got != 100 {
		t.Fatalf("expected 100 for no required skills, got %v", got)
	}
	if got := SkillMatch(nil, nil); got != 100 {
		t.Fatalf("expected 100 for no required skills and no worker skills, got %v", got)
	}
}

func TestSkillMatch_Normalization(t *testing.T) {
	got := SkillMatch([]string{"  forklift ", "WAREHOUSE"}, []string{"Forklift", "warehouse ", "Catering"})
	if got != 67 {
		t.Fatalf("expected 67, got %v", got)
	}
}

func TestSkillMatch_DuplicateRequiredSkillsCountTwice(t *testing.T) {
	// Duplicates inflate the denominator and each duplicate also counts
	// when the worker has the skill.
	got := SkillMatch([]string{"Forklift"}, []string{"Forklift", "Forklift", "Catering", "Catering"})
	if got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
}

func TestRateMatch(t *testing.T) {
	if got := RateMatch(nil, 16, 22); got != 50 {
		t.Fatalf("missing rate: expected neutral 50, got %v", got)
	}
	if got := RateMatch(f64(16), 16, 22); got != 100 {
		t.Fatalf("rate at min: expected 100, got %v", got)
	}
	if got := RateMatch(f64(22), 16, 22); got != 100 {
		t.Fatalf("rate at max: expected 100, got %v", got)
	}
	if got := RateMatch(f64(12), 16, 22); got != 80 {
		t.Fatalf("rate 4 below min: expected 80, got %v", got)
	}
	if got := RateMatch(f64(25), 16, 22); got != 85 {
		t.Fatalf("rate 3 above max: expected 85, got %v", got)
	}
	if got := RateMatch(f64(100), 16, 22); got != 0 {
		t.Fatalf("far above max: expected floor 0, got %v", got)
	}
}

func TestLocationMatch_Remote(t *testing.T) {
	if got := LocationMatch(nil, nil, nil, nil, 0, true); got != 100 {
		t.Fatalf("remote with no coordinates: expected 100, got %v", got)
	}
	if got := LocationMatch(f64(60), f64(24), f64(10), f64(10), 30, true); got != 100 {
		t.Fatalf("remote overrides distance: expected 100, got %v", got)
	}
}

func TestLocationMatch_MissingCoordinates(t *testing.T) {
	if got := LocationMatch(nil, nil, f64(60), f64(24), 30, false); got != 50 {
		t.Fatalf("worker without coordinates: expected 50, got %v", got)
	}
	if got := LocationMatch(f64(60), f64(24), nil, nil, 30, false); got != 50 {
		t.Fatalf("job without coordinates: expected 50, got %v", got)
	}
}

func TestLocationMatch_RadiusSteps(t *testing.T) {
	// Espoo -> Helsinki is roughly 16 km.
	espooLat, espooLng := 60.2055, 24.6559
	hkiLat, hkiLng := 60.1699, 24.9384

	d := HaversineKm(espooLat, espooLng, hkiLat, hkiLng)
	if d < 15 || d > 20 {
		t.Fatalf("expected Espoo-Helsinki distance in 15..20 km, got %v", d)
	}

	// 30 km radius: distance is above half the radius, within the full
	// radius.
	if got := LocationMatch(f64(espooLat), f64(espooLng), f64(hkiLat), f64(hkiLng), 30, false); got != 75 {
		t.Fatalf("expected 75 within radius, got %v", got)
	}
	// 40 km radius: distance is within half the radius.
	if got := LocationMatch(f64(espooLat), f64(espooLng), f64(hkiLat), f64(hkiLng), 40, false); got != 100 {
		t.Fatalf("expected 100 within half radius, got %v", got)
	}
	// 12 km radius: distance lands in the 1.0x..1.5x band.
	if got := LocationMatch(f64(espooLat), f64(espooLng), f64(hkiLat), f64(hkiLng), 12, false); got != 40 {
		t.Fatalf("expected 40 in outer band, got %v", got)
	}
	// 5 km radius: beyond 1.5x.
	if got := LocationMatch(f64(espooLat), f64(espooLng), f64(hkiLat), f64(hkiLng), 5, false); got != 0 {
		t.Fatalf("expected 0 beyond 1.5x radius, got %v", got)
	}
}

func TestLocationMatch_DefaultRadius(t *testing.T) {
	// Unset radius falls back to 50 km, so ~16 km scores 100.
	got := LocationMatch(f64(60.2055), f64(24.6559), f64(60.1699), f64(24.9384), 0, false)
	if got != 100 {
		t.Fatalf("expected 100 with default radius, got %v", got)
	}
}

func TestAvailabilityMatch(t *testing.T) {
	if got := AvailabilityMatch(worker.AvailabilityAvailable); got != 100 {
		t.Fatalf("available: expected 100, got %v", got)
	}
	if got := AvailabilityMatch(worker.AvailabilityLimited); got != 50 {
		t.Fatalf("limited: expected 50, got %v", got)
	}
	if got := AvailabilityMatch(worker.AvailabilityUnavailable); got != 0 {
		t.Fatalf("unavailable: expected 0, got %v", got)
	}
	if got := AvailabilityMatch(""); got != 0 {
		t.Fatalf("unknown state: expected 0, got %v", got)
	}
}

func TestHaversineKm_ZeroDistance(t *testing.T) {
	if d := HaversineKm(60.2, 24.6, 60.2, 24.6); d != 0 {
		t.Fatalf("expected zero distance, got %v", d)
	}
}
