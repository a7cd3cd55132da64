package dto

import (
	"staffhive/internal/domain/worker"
)

type WorkerSkillResponse struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

type WorkerProfileResponse struct {
	ID                 string                `json:"id"`
	UserID             string                `json:"userId"`
	Headline           string                `json:"headline,omitempty"`
	Bio                string                `json:"bio,omitempty"`
	Skills             []WorkerSkillResponse `json:"skills"`
	HourlyRate         *float64              `json:"hourlyRate,omitempty"`
	Availability       string                `json:"availability"`
	Location           string                `json:"location,omitempty"`
	Latitude           *float64              `json:"latitude,omitempty"`
	Longitude          *float64              `json:"longitude,omitempty"`
	RadiusKm           float64               `json:"radiusKm"`
	Rating             float64               `json:"rating"`
	TotalJobsCompleted int                   `json:"totalJobsCompleted"`
	DocumentsVerified  bool                  `json:"documentsVerified"`
}

func NewWorkerProfileResponse(p worker.Profile) WorkerProfileResponse {
	skills := make([]WorkerSkillResponse, 0, len(p.Skills))
	for _, s := range p.Skills {
		skills = append(skills, WorkerSkillResponse{Name: s.Name, Level: string(s.Level)})
	}
	return WorkerProfileResponse{
		ID:                 p.ID.String(),
		UserID:             p.UserID.String(),
		Headline:           p.Headline,
		Bio:                p.Bio,
		Skills:             skills,
		HourlyRate:         p.HourlyRate,
		Availability:       string(p.Availability),
		Location:           p.Location,
		Latitude:           p.Latitude,
		Longitude:          p.Longitude,
		RadiusKm:           p.RadiusKm,
		Rating:             p.Rating,
		TotalJobsCompleted: p.TotalJobsCompleted,
		DocumentsVerified:  p.DocumentsVerified,
	}
}
