package dto

import (
	"time"

	"staffhive/internal/domain/job"
	"staffhive/internal/domain/matching"
	"staffhive/internal/usecase"
)

type JobResponse struct {
	ID            string   `json:"id"`
	CompanyID     string   `json:"companyId"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Requirements  []string `json:"requirements,omitempty"`
	Skills        []string `json:"skills"`
	JobType       string   `json:"jobType"`
	Status        string   `json:"status"`
	HourlyRateMin float64  `json:"hourlyRateMin"`
	HourlyRateMax float64  `json:"hourlyRateMax"`
	Location      string   `json:"location,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	IsRemote      bool     `json:"isRemote"`
	SlotsTotal    int      `json:"slotsTotal"`
	SlotsFilled   int      `json:"slotsFilled"`
	IsUrgent      bool     `json:"isUrgent"`
	CreatedAt     string   `json:"createdAt,omitempty"`
}

type MatchScoreResponse struct {
	WorkerID          string  `json:"workerId"`
	JobID             string  `json:"jobId"`
	OverallScore      int     `json:"overallScore"`
	SkillMatch        float64 `json:"skillMatch"`
	RateMatch         float64 `json:"rateMatch"`
	LocationMatch     float64 `json:"locationMatch"`
	AvailabilityMatch float64 `json:"availabilityMatch"`
}

type FeedItemResponse struct {
	Job             JobResponse        `json:"job"`
	Score           MatchScoreResponse `json:"score"`
	EstimatedPayout float64            `json:"estimatedPayout"`
}

func NewJobResponse(j job.Posting) JobResponse {
	var createdAt string
	if !j.CreatedAt.IsZero() {
		createdAt = j.CreatedAt.UTC().Format(time.RFC3339)
	}
	return JobResponse{
		ID:            j.ID.String(),
		CompanyID:     j.CompanyID.String(),
		Title:         j.Title,
		Description:   j.Description,
		Requirements:  j.Requirements,
		Skills:        j.Skills,
		JobType:       string(j.JobType),
		Status:        string(j.Status),
		HourlyRateMin: j.HourlyRateMin,
		HourlyRateMax: j.HourlyRateMax,
		Location:      j.Location,
		Latitude:      j.Latitude,
		Longitude:     j.Longitude,
		IsRemote:      j.IsRemote,
		SlotsTotal:    j.SlotsTotal,
		SlotsFilled:   j.SlotsFilled,
		IsUrgent:      j.IsUrgent,
		CreatedAt:     createdAt,
	}
}

func NewJobResponses(jobs []job.Posting) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}

func NewMatchScoreResponse(s matching.Score) MatchScoreResponse {
	return MatchScoreResponse{
		WorkerID:          s.WorkerID.String(),
		JobID:             s.JobID.String(),
		OverallScore:      s.OverallScore,
		SkillMatch:        s.SkillMatch,
		RateMatch:         s.RateMatch,
		LocationMatch:     s.LocationMatch,
		AvailabilityMatch: s.AvailabilityMatch,
	}
}

func NewFeedItemResponses(items []usecase.FeedItem) []FeedItemResponse {
	out := make([]FeedItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FeedItemResponse{
			Job:             NewJobResponse(it.Job),
			Score:           NewMatchScoreResponse(it.Score),
			EstimatedPayout: it.EstimatedPayout,
		})
	}
	return out
}
