package model

import (
	"time"

	"github.com/shopspring/decimal"

	"tourism/shared/failure"
	"tourism/shared/model"
)

const (
	TableName  = "accommodation_availability"
	EntityName = "availability"

	FieldID              = "id"
	FieldAccommodationID = "accommodation_id"
	FieldDate            = "date"
	FieldAvailableUnits  = "available_units"
	FieldTotalUnits      = "total_units"
	FieldIsBlocked       = "is_blocked"
)

const (
	EventReserved = "availability.reserved"
)

var (
	ErrBlocked           = failure.Conflict("Inventory is blocked")
	ErrInsufficientUnits = failure.Conflict("Not enough units available")
	ErrUnitsExceedTotal  = failure.BadRequestFromString("available_units cannot exceed total_units")
	ErrNotFoundForDate   = failure.NotFound("Availability record not found for this date")
	ErrNotFound          = failure.NotFound("Received availability ID not found")
	ErrAlreadyExists     = failure.Conflict("Availability record already exists for this date")
)

// Availability is the per-day unit ledger of one accommodation.
type Availability struct {
	ID              string              `db:"id"`
	AccommodationID string              `db:"accommodation_id"`
	Date            time.Time           `db:"date"`
	AvailableUnits  int                 `db:"available_units"`
	TotalUnits      int                 `db:"total_units"`
	PriceOverride   decimal.NullDecimal `db:"price_override"`
	IsBlocked       bool                `db:"is_blocked"`
	model.Metadata
}

// Validate checks the unit counts of a record about to be persisted.
func (a Availability) Validate() error {
	if a.AvailableUnits < 0 || a.TotalUnits < 0 {
		return failure.BadRequestFromString("units cannot be negative") // nolint:wrapcheck
	}

	if a.AvailableUnits > a.TotalUnits {
		return ErrUnitsExceedTotal
	}

	return nil
}

// CanServe reports whether units can be taken from the record.
func (a Availability) CanServe(units int) bool {
	return !a.IsBlocked && a.AvailableUnits >= units
}

// RejectReservation explains why a reservation of units failed against the current record.
func (a Availability) RejectReservation(units int) error {
	switch {
	case a.ID == "":
		return ErrNotFoundForDate
	case a.IsBlocked:
		return ErrBlocked
	case a.AvailableUnits < units:
		return ErrInsufficientUnits
	default:
		return nil
	}
}
