package model

import (
	"tourism/shared/failure"
	"tourism/shared/model"
)

const (
	TableName  = "destinations"
	EntityName = "destination"

	ImageTableName  = "destination_images"
	ImageEntityName = "destination_image"

	FieldID            = "id"
	FieldName          = "name"
	FieldSlug          = "slug"
	FieldIsFeatured    = "is_featured"
	FieldIsActive      = "is_active"
	FieldDestinationID = "destination_id"
	FieldSortOrder     = "sort_order"
)

const DefaultSuggestLimit = 5

var (
	ErrNotFound   = failure.NotFound("Destination not found")
	ErrSlugExists = failure.Conflict("Destination with this slug already exists")
	ErrEmptySlug  = failure.BadRequestFromString("slug cannot be derived from name")
)

type Destination struct {
	ID              string   `db:"id"`
	Name            string   `db:"name"`
	Slug            string   `db:"slug"`
	Description     *string  `db:"description"`
	CoverImageURL   *string  `db:"cover_image_url"`
	District        *string  `db:"district"`
	Latitude        *float64 `db:"latitude"`
	Longitude       *float64 `db:"longitude"`
	BestTimeToVisit *string  `db:"best_time_to_visit"`
	HowToReach      *string  `db:"how_to_reach"`
	IsFeatured      bool     `db:"is_featured"`
	IsActive        bool     `db:"is_active"`
	model.Metadata
}

type Image struct {
	ID            string  `db:"id"`
	DestinationID string  `db:"destination_id"`
	ImageURL      string  `db:"image_url"`
	Caption       *string `db:"caption"`
	SortOrder     int     `db:"sort_order"`
}

// Aggregate is a destination together with its gallery.
type Aggregate struct {
	Destination
	Images []Image
}
