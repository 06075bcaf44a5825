package model

import (
	"tourism/shared/failure"
	"tourism/shared/model"
)

const (
	TableName  = "amenities"
	EntityName = "amenity"

	FieldID   = "id"
	FieldName = "name"
)

var (
	ErrNotFound   = failure.NotFound("Amenity not found")
	ErrNameExists = failure.Conflict("Amenity with this name already exists")
)

type Amenity struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	IconURL     *string `db:"icon_url"`
	model.Metadata
}
