package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"

	"tourism/internal/domains/booking/model"
	"tourism/shared"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	gModel "tourism/shared/model"
	"tourism/shared/timezone"
)

type CustomerRequest struct {
	FullName     string  `json:"full_name"      validate:"required,max=150"`
	Email        string  `json:"email"          validate:"required,email,max=100"`
	Phone        string  `json:"phone"          validate:"required,max=20"`
	Address      *string `json:"address"        validate:"omitempty"`
	IDCardType   *string `json:"id_card_type"   validate:"omitempty,max=50"`
	IDCardNumber *string `json:"id_card_number" validate:"omitempty,max=50"`
}

type ItemRequest struct {
	ServiceType      string          `json:"service_type"      validate:"required,oneof=PACKAGE ACCOMMODATION EXPERIENCE"`
	ServiceID        string          `json:"service_id"        validate:"required,uuid"`
	ServiceName      *string         `json:"service_name"      validate:"omitempty,max=200"`
	UnitPrice        decimal.Decimal `json:"unit_price"        validate:"gte=0"`
	Quantity         *int            `json:"quantity"          validate:"omitempty,gte=1"`
	StartDate        *string         `json:"start_date"        validate:"omitempty"`
	EndDate          *string         `json:"end_date"          validate:"omitempty"`
	MetadataSnapshot map[string]any  `json:"metadata_snapshot" validate:"omitempty"`
}

type CreateBookingRequest struct {
	UserID          *string         `json:"user_id"          validate:"omitempty,uuid"`
	SpecialRequests *string         `json:"special_requests" validate:"omitempty"`
	Items           []ItemRequest   `json:"items"            validate:"required,min=1,dive"`
	Customer        CustomerRequest `json:"customer"         validate:"required"`
}

// parseInstant accepts RFC3339 timestamps and plain calendar days.
func parseInstant(value *string) (*time.Time, error) {
	if value == nil || *value == constant.Empty {
		return nil, nil //nolint:nilnil
	}

	if parsed, err := time.Parse(time.RFC3339, *value); err == nil {
		return &parsed, nil
	}

	parsed, err := timezone.ParseDate(*value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", *value, err)
	}

	return &parsed, nil
}

func (i *ItemRequest) toModel(bookingID string) (model.Item, error) {
	startDate, err := parseInstant(i.StartDate)
	if err != nil {
		return model.Item{}, err
	}

	endDate, err := parseInstant(i.EndDate)
	if err != nil {
		return model.Item{}, err
	}

	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return model.Item{}, fmt.Errorf("end_date must not be before start_date")
	}

	snapshot := types.JSONText("{}")

	if i.MetadataSnapshot != nil {
		raw, err := json.Marshal(i.MetadataSnapshot)
		if err != nil {
			return model.Item{}, fmt.Errorf("invalid metadata_snapshot: %w", err)
		}

		snapshot = types.JSONText(raw)
	}

	quantity := 1
	if i.Quantity != nil {
		quantity = *i.Quantity
	}

	return model.Item{
		ID:               uuid.NewString(),
		BookingID:        bookingID,
		ServiceType:      i.ServiceType,
		ServiceID:        i.ServiceID,
		ServiceName:      i.ServiceName,
		UnitPrice:        i.UnitPrice,
		Quantity:         quantity,
		StartDate:        startDate,
		EndDate:          endDate,
		MetadataSnapshot: snapshot,
	}, nil
}

// ToModel builds a DRAFT aggregate without amounts or reference; the caller prices and numbers it.
// The booking belongs to the body's user_id, falling back to the caller.
func (c *CreateBookingRequest) ToModel(user string) (model.Aggregate, error) {
	bookingID := uuid.NewString()

	owner := c.UserID
	if owner == nil && uuid.Validate(user) == nil {
		owner = &user
	}

	aggregate := model.Aggregate{
		Booking: model.Booking{
			ID:              bookingID,
			UserID:          owner,
			Status:          model.StatusDraft,
			SpecialRequests: c.SpecialRequests,
			Metadata:        gModel.NewMetadata(user, timezone.Now()),
		},
		Customer: model.Customer{
			ID:           uuid.NewString(),
			BookingID:    bookingID,
			FullName:     c.Customer.FullName,
			Email:        c.Customer.Email,
			Phone:        c.Customer.Phone,
			Address:      c.Customer.Address,
			IDCardType:   c.Customer.IDCardType,
			IDCardNumber: c.Customer.IDCardNumber,
		},
		Items: make([]model.Item, 0, len(c.Items)),
	}

	for _, itemReq := range c.Items {
		item, err := itemReq.toModel(bookingID)
		if err != nil {
			return model.Aggregate{}, err
		}

		aggregate.Items = append(aggregate.Items, item)
	}

	return aggregate, nil
}

// UpdateBookingRequest is applied by presence; no status transition rules are enforced.
type UpdateBookingRequest struct {
	Status          *string `db:"status"           json:"status"           validate:"omitempty,oneof=DRAFT PENDING_PAYMENT CONFIRMED CANCELLED COMPLETED FAILED"`
	SpecialRequests *string `db:"special_requests" json:"special_requests" validate:"omitempty"`
}

func (u *UpdateBookingRequest) IsEmpty() bool {
	return u.Status == nil && u.SpecialRequests == nil
}

func money(value decimal.Decimal) json.Number {
	return json.Number(value.StringFixed(2)) //nolint:mnd
}

func formatInstant(value *time.Time) *string {
	if value == nil {
		return nil
	}

	formatted := timezone.Format(*value, constant.DateFormat)

	return &formatted
}

type CustomerResponse struct {
	ID           string  `json:"id"`
	BookingID    string  `json:"booking_id"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Address      *string `json:"address"`
	IDCardType   *string `json:"id_card_type"`
	IDCardNumber *string `json:"id_card_number"`
}

func (r *CustomerResponse) FromModel(m model.Customer) {
	r.ID = m.ID
	r.BookingID = m.BookingID
	r.FullName = m.FullName
	r.Email = m.Email
	r.Phone = m.Phone
	r.Address = m.Address
	r.IDCardType = m.IDCardType
	r.IDCardNumber = m.IDCardNumber
}

type ItemResponse struct {
	ID               string          `json:"id"`
	BookingID        string          `json:"booking_id"`
	ServiceType      string          `json:"service_type"`
	ServiceID        string          `json:"service_id"`
	ServiceName      *string         `json:"service_name"`
	UnitPrice        json.Number     `json:"unit_price"`
	Quantity         int             `json:"quantity"`
	TotalPrice       json.Number     `json:"total_price"`
	StartDate        *string         `json:"start_date"`
	EndDate          *string         `json:"end_date"`
	MetadataSnapshot json.RawMessage `json:"metadata_snapshot"`
}

func (r *ItemResponse) FromModel(m model.Item) {
	r.ID = m.ID
	r.BookingID = m.BookingID
	r.ServiceType = m.ServiceType
	r.ServiceID = m.ServiceID
	r.ServiceName = m.ServiceName
	r.UnitPrice = money(m.UnitPrice)
	r.Quantity = m.Quantity
	r.TotalPrice = money(m.TotalPrice)
	r.StartDate = formatInstant(m.StartDate)
	r.EndDate = formatInstant(m.EndDate)
	r.MetadataSnapshot = json.RawMessage("{}")

	if len(m.MetadataSnapshot) > 0 {
		r.MetadataSnapshot = json.RawMessage(m.MetadataSnapshot)
	}
}

type BookingResponse struct {
	ID               string            `json:"id"`
	UserID           *string           `json:"user_id"`
	BookingReference string            `json:"booking_reference"`
	Status           string            `json:"status"`
	TotalAmount      json.Number       `json:"total_amount"`
	TaxAmount        json.Number       `json:"tax_amount"`
	DiscountAmount   json.Number       `json:"discount_amount"`
	FinalAmount      json.Number       `json:"final_amount"`
	SpecialRequests  *string           `json:"special_requests"`
	Customer         *CustomerResponse `json:"customer"`
	Items            []ItemResponse    `json:"items"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(aggregate model.Aggregate) {
	booking := aggregate.Booking

	r.ID = booking.ID
	r.UserID = booking.UserID
	r.BookingReference = booking.BookingReference
	r.Status = booking.Status
	r.TotalAmount = money(booking.TotalAmount)
	r.TaxAmount = money(booking.TaxAmount)
	r.DiscountAmount = money(booking.DiscountAmount)
	r.FinalAmount = money(booking.FinalAmount)
	r.SpecialRequests = booking.SpecialRequests
	r.Metadata.FromModel(booking.Metadata)

	r.Customer = nil
	if aggregate.Customer.ID != constant.Empty {
		r.Customer = &CustomerResponse{}
		r.Customer.FromModel(aggregate.Customer)
	}

	r.Items = make([]ItemResponse, len(aggregate.Items))
	for i, item := range aggregate.Items {
		r.Items[i].FromModel(item)
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(aggregates []model.Aggregate, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(aggregates))
	for i, aggregate := range aggregates {
		r.Bookings[i].FromModel(aggregate)
	}
}
