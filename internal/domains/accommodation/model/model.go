package model

import (
	"github.com/shopspring/decimal"

	"tourism/shared/failure"
	"tourism/shared/model"
)

const (
	TableName  = "accommodations"
	EntityName = "accommodation"

	FieldID            = "id"
	FieldDestinationID = "destination_id"
	FieldName          = "name"
	FieldType          = "type"
	FieldIsActive      = "is_active"
)

const (
	TypeRoom      = "ROOM"
	TypeTent      = "TENT"
	TypeCottage   = "COTTAGE"
	TypeDormitory = "DORMITORY"
)

const (
	DefaultBaseOccupancy = 2
	DefaultMaxOccupancy  = 3
	DefaultTotalUnits    = 1
)

var (
	ErrNotFound           = failure.NotFound("Accommodation not found")
	ErrUnknownDestination = failure.BadRequestFromString("Destination not found")
	ErrOccupancy          = failure.BadRequestFromString("base_occupancy cannot exceed max_occupancy")
)

type Accommodation struct {
	ID                string          `db:"id"`
	DestinationID     string          `db:"destination_id"`
	Name              string          `db:"name"`
	Description       *string         `db:"description"`
	Type              *string         `db:"type"`
	BasePrice         decimal.Decimal `db:"base_price"`
	BaseOccupancy     int             `db:"base_occupancy"`
	ExtraBoarderPrice decimal.Decimal `db:"extra_boarder_price"`
	MaxOccupancy      int             `db:"max_occupancy"`
	TotalUnits        int             `db:"total_units"`
	IsActive          bool            `db:"is_active"`
	model.Metadata
}

// Validate checks the occupancy bounds of a record about to be persisted.
func (a Accommodation) Validate() error {
	if a.BaseOccupancy > a.MaxOccupancy {
		return ErrOccupancy
	}

	return nil
}
