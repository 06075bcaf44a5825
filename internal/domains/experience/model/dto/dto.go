package dto

import (
	"github.com/google/uuid"

	"tourism/internal/domains/experience/model"
	"tourism/shared"
	gDto "tourism/shared/dto"
	gModel "tourism/shared/model"
	"tourism/shared/slug"
	"tourism/shared/timezone"
)

type CreateExperienceRequest struct {
	Title           string   `json:"title"            validate:"required,max=150"`
	Slug            *string  `json:"slug"             validate:"omitempty,max=160,slug"`
	Description     *string  `json:"description"`
	ExperienceType  *string  `json:"experience_type"  validate:"omitempty,max=50"`
	DurationHours   *int     `json:"duration_hours"   validate:"omitempty,gte=0"`
	DifficultyLevel *string  `json:"difficulty_level" validate:"omitempty,max=50"`
	IsActive        *bool    `json:"is_active"`
	DestinationIDs  []string `json:"destination_ids"  validate:"omitempty,dive,uuid"`
}

func (c *CreateExperienceRequest) ToModel(user string) model.Experience {
	experience := model.Experience{
		ID:              uuid.NewString(),
		Title:           c.Title,
		Slug:            slug.Make(c.Title),
		Description:     c.Description,
		ExperienceType:  c.ExperienceType,
		DurationHours:   c.DurationHours,
		DifficultyLevel: c.DifficultyLevel,
		IsActive:        true,
		Metadata:        gModel.NewMetadata(user, timezone.Now()),
	}

	if c.Slug != nil && *c.Slug != "" {
		experience.Slug = *c.Slug
	}

	if c.IsActive != nil {
		experience.IsActive = *c.IsActive
	}

	return experience
}

// UpdateExperienceRequest replaces the destination links only when DestinationIDs is present.
type UpdateExperienceRequest struct {
	Title           *string   `db:"title"            json:"title"            validate:"omitempty,max=150"`
	Slug            *string   `db:"slug"             json:"slug"             validate:"omitempty,max=160,slug"`
	Description     *string   `db:"description"      json:"description"`
	ExperienceType  *string   `db:"experience_type"  json:"experience_type"  validate:"omitempty,max=50"`
	DurationHours   *int      `db:"duration_hours"   json:"duration_hours"   validate:"omitempty,gte=0"`
	DifficultyLevel *string   `db:"difficulty_level" json:"difficulty_level" validate:"omitempty,max=50"`
	IsActive        *bool     `db:"is_active"        json:"is_active"`
	DestinationIDs  *[]string `json:"destination_ids"  validate:"omitempty,dive,uuid"`
}

type ExperienceResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Description     *string  `json:"description"`
	ExperienceType  *string  `json:"experience_type"`
	DurationHours   *int     `json:"duration_hours"`
	DifficultyLevel *string  `json:"difficulty_level"`
	IsActive        bool     `json:"is_active"`
	DestinationIDs  []string `json:"destination_ids"`
	gDto.Metadata
}

func (r *ExperienceResponse) FromModel(m model.Experience, destinationIDs []string) {
	r.ID = m.ID
	r.Title = m.Title
	r.Slug = m.Slug
	r.Description = m.Description
	r.ExperienceType = m.ExperienceType
	r.DurationHours = m.DurationHours
	r.DifficultyLevel = m.DifficultyLevel
	r.IsActive = m.IsActive
	r.Metadata.FromModel(m.Metadata)

	r.DestinationIDs = destinationIDs
	if r.DestinationIDs == nil {
		r.DestinationIDs = []string{}
	}
}

type GetExperiencesResponse struct {
	Experiences []ExperienceResponse `json:"experiences"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetExperiencesResponse) FromModels(models []model.Experience, links map[string][]string, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Experiences = make([]ExperienceResponse, len(models))
	for i, mod := range models {
		r.Experiences[i].FromModel(mod, links[mod.ID])
	}
}
