package dto

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tourism/internal/domains/availability/model"
	gDto "tourism/shared/dto"
	gModel "tourism/shared/model"
	"tourism/shared/timezone"
)

const (
	queryAccommodationID = "accommodation_id"
	queryStartDate       = "start_date"
	queryEndDate         = "end_date"
	queryDate            = "date"
	queryUnitsRequired   = "units_required"
	queryUnits           = "units"
)

type CreateAvailabilityRequest struct {
	AccommodationID string           `json:"accommodation_id" validate:"required,uuid"`
	Date            string           `json:"date"             validate:"required,datetime=2006-01-02"`
	AvailableUnits  int              `json:"available_units"  validate:"gte=0"`
	TotalUnits      int              `json:"total_units"      validate:"gte=0"`
	PriceOverride   *decimal.Decimal `json:"price_override"   validate:"omitempty,gte=0"`
	IsBlocked       bool             `json:"is_blocked"`
}

func (c *CreateAvailabilityRequest) ToModel(user string) (model.Availability, error) {
	date, err := timezone.ParseDate(c.Date)
	if err != nil {
		return model.Availability{}, err
	}

	availability := model.Availability{
		ID:              uuid.NewString(),
		AccommodationID: c.AccommodationID,
		Date:            date,
		AvailableUnits:  c.AvailableUnits,
		TotalUnits:      c.TotalUnits,
		IsBlocked:       c.IsBlocked,
		Metadata:        gModel.NewMetadata(user, timezone.Now()),
	}

	if c.PriceOverride != nil {
		availability.PriceOverride = decimal.NewNullDecimal(*c.PriceOverride)
	}

	return availability, nil
}

// UpdateAvailabilityRequest is applied by presence: nil fields are left untouched.
type UpdateAvailabilityRequest struct {
	AvailableUnits *int             `db:"available_units" json:"available_units" validate:"omitempty,gte=0"`
	TotalUnits     *int             `db:"total_units"     json:"total_units"     validate:"omitempty,gte=0"`
	PriceOverride  *decimal.Decimal `db:"price_override"  json:"price_override"  validate:"omitempty,gte=0"`
	IsBlocked      *bool            `db:"is_blocked"      json:"is_blocked"`
}

func (u *UpdateAvailabilityRequest) IsEmpty() bool {
	return u.AvailableUnits == nil && u.TotalUnits == nil && u.PriceOverride == nil && u.IsBlocked == nil
}

// Apply merges the present fields into current.
func (u *UpdateAvailabilityRequest) Apply(current model.Availability) model.Availability {
	if u.AvailableUnits != nil {
		current.AvailableUnits = *u.AvailableUnits
	}

	if u.TotalUnits != nil {
		current.TotalUnits = *u.TotalUnits
	}

	if u.PriceOverride != nil {
		current.PriceOverride = decimal.NewNullDecimal(*u.PriceOverride)
	}

	if u.IsBlocked != nil {
		current.IsBlocked = *u.IsBlocked
	}

	return current
}

type RangeRequest struct {
	AccommodationID string `json:"accommodation_id" validate:"required,uuid"`
	StartDate       string `json:"start_date"       validate:"required,datetime=2006-01-02"`
	EndDate         string `json:"end_date"         validate:"required,datetime=2006-01-02"`
}

func (r *RangeRequest) FromRequest(req *http.Request) {
	query := req.URL.Query()

	r.AccommodationID = query.Get(queryAccommodationID)
	r.StartDate = query.Get(queryStartDate)
	r.EndDate = query.Get(queryEndDate)
}

// Bounds parses the inclusive date range.
func (r *RangeRequest) Bounds() (start, end time.Time, err error) {
	if start, err = timezone.ParseDate(r.StartDate); err != nil {
		return start, end, err
	}

	end, err = timezone.ParseDate(r.EndDate)

	return start, end, err
}

type CheckRequest struct {
	AccommodationID string `json:"accommodation_id" validate:"required,uuid"`
	Date            string `json:"date"             validate:"required,datetime=2006-01-02"`
	UnitsRequired   int    `json:"units_required"   validate:"gte=1"`
}

func (c *CheckRequest) FromRequest(req *http.Request) {
	query := req.URL.Query()

	c.AccommodationID = query.Get(queryAccommodationID)
	c.Date = query.Get(queryDate)
	c.UnitsRequired = intOrDefault(query.Get(queryUnitsRequired), 1)
}

type ReserveRequest struct {
	AccommodationID string `json:"accommodation_id" validate:"required,uuid"`
	Date            string `json:"date"             validate:"required,datetime=2006-01-02"`
	Units           int    `json:"units"            validate:"gte=1"`
}

func (r *ReserveRequest) FromRequest(req *http.Request) {
	query := req.URL.Query()

	r.AccommodationID = query.Get(queryAccommodationID)
	r.Date = query.Get(queryDate)
	r.Units = intOrDefault(query.Get(queryUnits), 1)
}

func intOrDefault(value string, fallback int) int {
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		// Non-numeric input becomes 0 so validation rejects it.
		return 0
	}

	return parsed
}

type CheckResponse struct {
	Available bool `json:"available"`
}

type AvailabilityResponse struct {
	ID              string       `json:"id"`
	AccommodationID string       `json:"accommodation_id"`
	Date            string       `json:"date"`
	AvailableUnits  int          `json:"available_units"`
	TotalUnits      int          `json:"total_units"`
	PriceOverride   *json.Number `json:"price_override"`
	IsBlocked       bool         `json:"is_blocked"`
	gDto.Metadata
}

func (r *AvailabilityResponse) FromModel(m model.Availability) {
	r.ID = m.ID
	r.AccommodationID = m.AccommodationID
	r.Date = m.Date.Format(time.DateOnly)
	r.AvailableUnits = m.AvailableUnits
	r.TotalUnits = m.TotalUnits
	r.IsBlocked = m.IsBlocked
	r.PriceOverride = nil

	if m.PriceOverride.Valid {
		price := json.Number(m.PriceOverride.Decimal.StringFixed(2)) //nolint:mnd
		r.PriceOverride = &price
	}

	r.Metadata.FromModel(m.Metadata)
}

func FromModels(models []model.Availability) []AvailabilityResponse {
	res := make([]AvailabilityResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}
