package dto

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tourism/internal/domains/tourpackage/model"
	"tourism/shared"
	gDto "tourism/shared/dto"
	gModel "tourism/shared/model"
	"tourism/shared/slug"
	"tourism/shared/timezone"
)

type CreatePackageRequest struct {
	Name           string          `json:"name"            validate:"required,max=150"`
	Slug           *string         `json:"slug"            validate:"omitempty,max=160,slug"`
	Description    *string         `json:"description"`
	DurationDays   *int            `json:"duration_days"   validate:"omitempty,gte=1"`
	DurationNights *int            `json:"duration_nights" validate:"omitempty,gte=0"`
	BasePrice      decimal.Decimal `json:"base_price"      validate:"gte=0"`
	MaxPersons     *int            `json:"max_persons"     validate:"omitempty,gte=1"`
	IsActive       *bool           `json:"is_active"`
	IsFeatured     bool            `json:"is_featured"`
	DestinationIDs []string        `json:"destination_ids" validate:"omitempty,dive,uuid"`
	ExperienceIDs  []string        `json:"experience_ids"  validate:"omitempty,dive,uuid"`
	AmenityIDs     []string        `json:"amenity_ids"     validate:"omitempty,dive,uuid"`
}

func (c *CreatePackageRequest) ToModel(user string) model.Package {
	pkg := model.Package{
		ID:             uuid.NewString(),
		Name:           c.Name,
		Slug:           slug.Make(c.Name),
		Description:    c.Description,
		DurationDays:   c.DurationDays,
		DurationNights: c.DurationNights,
		BasePrice:      c.BasePrice,
		MaxPersons:     c.MaxPersons,
		IsActive:       true,
		IsFeatured:     c.IsFeatured,
		Metadata:       gModel.NewMetadata(user, timezone.Now()),
	}

	if c.Slug != nil && *c.Slug != "" {
		pkg.Slug = *c.Slug
	}

	if c.IsActive != nil {
		pkg.IsActive = *c.IsActive
	}

	return pkg
}

func (c *CreatePackageRequest) Links() model.Links {
	return model.Links{DestinationIDs: c.DestinationIDs, ExperienceIDs: c.ExperienceIDs, AmenityIDs: c.AmenityIDs}
}

type UpdatePackageRequest struct {
	Name           *string          `db:"name"            json:"name"            validate:"omitempty,max=150"`
	Slug           *string          `db:"slug"            json:"slug"            validate:"omitempty,max=160,slug"`
	Description    *string          `db:"description"     json:"description"`
	DurationDays   *int             `db:"duration_days"   json:"duration_days"   validate:"omitempty,gte=1"`
	DurationNights *int             `db:"duration_nights" json:"duration_nights" validate:"omitempty,gte=0"`
	BasePrice      *decimal.Decimal `db:"base_price"      json:"base_price"      validate:"omitempty,gte=0"`
	MaxPersons     *int             `db:"max_persons"     json:"max_persons"     validate:"omitempty,gte=1"`
	IsActive       *bool            `db:"is_active"       json:"is_active"`
	IsFeatured     *bool            `db:"is_featured"     json:"is_featured"`
	DestinationIDs *[]string        `json:"destination_ids" validate:"omitempty,dive,uuid"`
	ExperienceIDs  *[]string        `json:"experience_ids"  validate:"omitempty,dive,uuid"`
	AmenityIDs     *[]string        `json:"amenity_ids"     validate:"omitempty,dive,uuid"`
}

func (u *UpdatePackageRequest) Links() model.LinkPatch {
	return model.LinkPatch{DestinationIDs: u.DestinationIDs, ExperienceIDs: u.ExperienceIDs, AmenityIDs: u.AmenityIDs}
}

type PackageResponse struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Slug           string      `json:"slug"`
	Description    *string     `json:"description"`
	DurationDays   *int        `json:"duration_days"`
	DurationNights *int        `json:"duration_nights"`
	BasePrice      json.Number `json:"base_price"`
	MaxPersons     *int        `json:"max_persons"`
	IsActive       bool        `json:"is_active"`
	IsFeatured     bool        `json:"is_featured"`
	DestinationIDs []string    `json:"destination_ids"`
	ExperienceIDs  []string    `json:"experience_ids"`
	AmenityIDs     []string    `json:"amenity_ids"`
	gDto.Metadata
}

func (r *PackageResponse) FromModel(m model.Package, links model.Links) {
	r.ID = m.ID
	r.Name = m.Name
	r.Slug = m.Slug
	r.Description = m.Description
	r.DurationDays = m.DurationDays
	r.DurationNights = m.DurationNights
	r.BasePrice = json.Number(m.BasePrice.StringFixed(2)) //nolint:mnd
	r.MaxPersons = m.MaxPersons
	r.IsActive = m.IsActive
	r.IsFeatured = m.IsFeatured
	r.DestinationIDs = orEmpty(links.DestinationIDs)
	r.ExperienceIDs = orEmpty(links.ExperienceIDs)
	r.AmenityIDs = orEmpty(links.AmenityIDs)
	r.Metadata.FromModel(m.Metadata)
}

type GetPackagesResponse struct {
	Packages  []PackageResponse `json:"packages"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPackagesResponse) FromModels(models []model.Package, links map[string]model.Links, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Packages = make([]PackageResponse, len(models))
	for i, mod := range models {
		r.Packages[i].FromModel(mod, links[mod.ID])
	}
}

func orEmpty(ids []string) []string {
	if ids == nil {
		return []string{}
	}

	return ids
}
