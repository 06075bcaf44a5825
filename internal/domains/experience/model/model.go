package model

import (
	"tourism/shared/failure"
	"tourism/shared/model"
)

const (
	TableName  = "experiences"
	EntityName = "experience"

	FieldID       = "id"
	FieldTitle    = "title"
	FieldSlug     = "slug"
	FieldIsActive = "is_active"
)

var (
	ErrNotFound   = failure.NotFound("Experience not found")
	ErrSlugExists = failure.Conflict("Experience with this slug already exists")
	ErrEmptySlug  = failure.BadRequestFromString("slug cannot be derived from title")
)

type Experience struct {
	ID              string  `db:"id"`
	Title           string  `db:"title"`
	Slug            string  `db:"slug"`
	Description     *string `db:"description"`
	ExperienceType  *string `db:"experience_type"`
	DurationHours   *int    `db:"duration_hours"`
	DifficultyLevel *string `db:"difficulty_level"`
	IsActive        bool    `db:"is_active"`
	model.Metadata
}
