package model

import (
	"github.com/shopspring/decimal"

	"tourism/shared/failure"
	"tourism/shared/model"
)

const (
	TableName  = "packages"
	EntityName = "package"

	FieldID         = "id"
	FieldName       = "name"
	FieldSlug       = "slug"
	FieldIsActive   = "is_active"
	FieldIsFeatured = "is_featured"
)

var (
	ErrNotFound   = failure.NotFound("Package not found")
	ErrSlugExists = failure.Conflict("Package with this slug already exists")
	ErrEmptySlug  = failure.BadRequestFromString("slug cannot be derived from name")
)

type Package struct {
	ID             string          `db:"id"`
	Name           string          `db:"name"`
	Slug           string          `db:"slug"`
	Description    *string         `db:"description"`
	DurationDays   *int            `db:"duration_days"`
	DurationNights *int            `db:"duration_nights"`
	BasePrice      decimal.Decimal `db:"base_price"`
	MaxPersons     *int            `db:"max_persons"`
	IsActive       bool            `db:"is_active"`
	IsFeatured     bool            `db:"is_featured"`
	model.Metadata
}

// Links are the ids a package is associated with.
type Links struct {
	DestinationIDs []string
	ExperienceIDs  []string
	AmenityIDs     []string
}

// LinkPatch replaces a link set only when its pointer is non-nil.
type LinkPatch struct {
	DestinationIDs *[]string
	ExperienceIDs  *[]string
	AmenityIDs     *[]string
}

func (p LinkPatch) IsEmpty() bool {
	return p.DestinationIDs == nil && p.ExperienceIDs == nil && p.AmenityIDs == nil
}
