package dto

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tourism/internal/domains/accommodation/model"
	"tourism/shared"
	gDto "tourism/shared/dto"
	gModel "tourism/shared/model"
	"tourism/shared/timezone"
)

type CreateAccommodationRequest struct {
	DestinationID     string           `json:"destination_id"      validate:"required,uuid"`
	Name              string           `json:"name"                validate:"required,max=150"`
	Description       *string          `json:"description"`
	Type              *string          `json:"type"                validate:"omitempty,oneof=ROOM TENT COTTAGE DORMITORY"`
	BasePrice         decimal.Decimal  `json:"base_price"          validate:"gte=0"`
	BaseOccupancy     *int             `json:"base_occupancy"      validate:"omitempty,gte=1"`
	ExtraBoarderPrice *decimal.Decimal `json:"extra_boarder_price" validate:"omitempty,gte=0"`
	MaxOccupancy      *int             `json:"max_occupancy"       validate:"omitempty,gte=1"`
	TotalUnits        *int             `json:"total_units"         validate:"omitempty,gte=0"`
	IsActive          *bool            `json:"is_active"`
}

func (c *CreateAccommodationRequest) ToModel(user string) model.Accommodation {
	accommodation := model.Accommodation{
		ID:                uuid.NewString(),
		DestinationID:     c.DestinationID,
		Name:              c.Name,
		Description:       c.Description,
		Type:              c.Type,
		BasePrice:         c.BasePrice,
		BaseOccupancy:     model.DefaultBaseOccupancy,
		ExtraBoarderPrice: decimal.Zero,
		MaxOccupancy:      model.DefaultMaxOccupancy,
		TotalUnits:        model.DefaultTotalUnits,
		IsActive:          true,
		Metadata:          gModel.NewMetadata(user, timezone.Now()),
	}

	if c.BaseOccupancy != nil {
		accommodation.BaseOccupancy = *c.BaseOccupancy
	}

	if c.ExtraBoarderPrice != nil {
		accommodation.ExtraBoarderPrice = *c.ExtraBoarderPrice
	}

	if c.MaxOccupancy != nil {
		accommodation.MaxOccupancy = *c.MaxOccupancy
	}

	if c.TotalUnits != nil {
		accommodation.TotalUnits = *c.TotalUnits
	}

	if c.IsActive != nil {
		accommodation.IsActive = *c.IsActive
	}

	return accommodation
}

// UpdateAccommodationRequest is applied by presence: nil fields are left untouched.
type UpdateAccommodationRequest struct {
	DestinationID     *string          `db:"destination_id"      json:"destination_id"      validate:"omitempty,uuid"`
	Name              *string          `db:"name"                json:"name"                validate:"omitempty,max=150"`
	Description       *string          `db:"description"         json:"description"`
	Type              *string          `db:"type"                json:"type"                validate:"omitempty,oneof=ROOM TENT COTTAGE DORMITORY"`
	BasePrice         *decimal.Decimal `db:"base_price"          json:"base_price"          validate:"omitempty,gte=0"`
	BaseOccupancy     *int             `db:"base_occupancy"      json:"base_occupancy"      validate:"omitempty,gte=1"`
	ExtraBoarderPrice *decimal.Decimal `db:"extra_boarder_price" json:"extra_boarder_price" validate:"omitempty,gte=0"`
	MaxOccupancy      *int             `db:"max_occupancy"       json:"max_occupancy"       validate:"omitempty,gte=1"`
	TotalUnits        *int             `db:"total_units"         json:"total_units"         validate:"omitempty,gte=0"`
	IsActive          *bool            `db:"is_active"           json:"is_active"`
}

// Apply merges the occupancy fields into current so the result can be validated before writing.
func (u *UpdateAccommodationRequest) Apply(current model.Accommodation) model.Accommodation {
	if u.BaseOccupancy != nil {
		current.BaseOccupancy = *u.BaseOccupancy
	}

	if u.MaxOccupancy != nil {
		current.MaxOccupancy = *u.MaxOccupancy
	}

	return current
}

type AccommodationResponse struct {
	ID                string      `json:"id"`
	DestinationID     string      `json:"destination_id"`
	Name              string      `json:"name"`
	Description       *string     `json:"description"`
	Type              *string     `json:"type"`
	BasePrice         json.Number `json:"base_price"`
	BaseOccupancy     int         `json:"base_occupancy"`
	ExtraBoarderPrice json.Number `json:"extra_boarder_price"`
	MaxOccupancy      int         `json:"max_occupancy"`
	TotalUnits        int         `json:"total_units"`
	IsActive          bool        `json:"is_active"`
	gDto.Metadata
}

func (r *AccommodationResponse) FromModel(m model.Accommodation) {
	r.ID = m.ID
	r.DestinationID = m.DestinationID
	r.Name = m.Name
	r.Description = m.Description
	r.Type = m.Type
	r.BasePrice = json.Number(m.BasePrice.StringFixed(2))                 //nolint:mnd
	r.ExtraBoarderPrice = json.Number(m.ExtraBoarderPrice.StringFixed(2)) //nolint:mnd
	r.BaseOccupancy = m.BaseOccupancy
	r.MaxOccupancy = m.MaxOccupancy
	r.TotalUnits = m.TotalUnits
	r.IsActive = m.IsActive
	r.Metadata.FromModel(m.Metadata)
}

type GetAccommodationsResponse struct {
	Accommodations []AccommodationResponse `json:"accommodations"`
	TotalPage      int                     `json:"total_page"`
	TotalData      int                     `json:"total_data"`
}

func (r *GetAccommodationsResponse) FromModels(models []model.Accommodation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Accommodations = make([]AccommodationResponse, len(models))
	for i, mod := range models {
		r.Accommodations[i].FromModel(mod)
	}
}
