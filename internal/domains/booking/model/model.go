package model

import (
	"errors"
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"

	"tourism/shared/failure"
	"tourism/shared/model"
)

const (
	TableName         = "bookings"
	CustomerTableName = "booking_customers"
	ItemTableName     = "booking_items"

	EntityName         = "booking"
	CustomerEntityName = "booking_customer"
	ItemEntityName     = "booking_item"

	FieldID               = "id"
	FieldUserID           = "user_id"
	FieldBookingReference = "booking_reference"
	FieldStatus           = "status"
	FieldBookingID        = "booking_id"
)

const (
	StatusDraft          = "DRAFT"
	StatusPendingPayment = "PENDING_PAYMENT"
	StatusConfirmed      = "CONFIRMED"
	StatusCancelled      = "CANCELLED"
	StatusCompleted      = "COMPLETED"
	StatusFailed         = "FAILED"
)

const (
	ServiceTypePackage       = "PACKAGE"
	ServiceTypeAccommodation = "ACCOMMODATION"
	ServiceTypeExperience    = "EXPERIENCE"
)

const (
	EventCreated = "booking.created"
	EventUpdated = "booking.updated"
	EventDeleted = "booking.deleted"
)

const moneyPlaces = 2

var (
	ErrNotFound           = failure.NotFound("Booking not found")
	ErrReferenceExhausted = errors.New("could not allocate a unique booking reference")
)

type Booking struct {
	ID               string          `db:"id"`
	UserID           *string         `db:"user_id"`
	BookingReference string          `db:"booking_reference"`
	Status           string          `db:"status"`
	TotalAmount      decimal.Decimal `db:"total_amount"`
	TaxAmount        decimal.Decimal `db:"tax_amount"`
	DiscountAmount   decimal.Decimal `db:"discount_amount"`
	FinalAmount      decimal.Decimal `db:"final_amount"`
	SpecialRequests  *string         `db:"special_requests"`
	model.Metadata
}

type Customer struct {
	ID           string  `db:"id"`
	BookingID    string  `db:"booking_id"`
	FullName     string  `db:"full_name"`
	Email        string  `db:"email"`
	Phone        string  `db:"phone"`
	Address      *string `db:"address"`
	IDCardType   *string `db:"id_card_type"`
	IDCardNumber *string `db:"id_card_number"`
}

type Item struct {
	ID               string          `db:"id"`
	BookingID        string          `db:"booking_id"`
	ServiceType      string          `db:"service_type"`
	ServiceID        string          `db:"service_id"`
	ServiceName      *string         `db:"service_name"`
	UnitPrice        decimal.Decimal `db:"unit_price"`
	Quantity         int             `db:"quantity"`
	TotalPrice       decimal.Decimal `db:"total_price"`
	StartDate        *time.Time      `db:"start_date"`
	EndDate          *time.Time      `db:"end_date"`
	MetadataSnapshot types.JSONText  `db:"metadata_snapshot"`
}

// Aggregate is a booking header with the customer and items written alongside it.
type Aggregate struct {
	Booking  Booking
	Customer Customer
	Items    []Item
}

// TaxPolicy computes the tax owed on a booking subtotal.
type TaxPolicy interface {
	Tax(subtotal decimal.Decimal) decimal.Decimal
}

// ZeroTax charges no tax.
type ZeroTax struct{}

func (ZeroTax) Tax(_ decimal.Decimal) decimal.Decimal {
	return decimal.Zero
}

// PriceItem sets the line total to unit price times quantity.
func PriceItem(item Item) Item {
	item.TotalPrice = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(moneyPlaces)

	return item
}

// ApplyTotals prices every item and derives the header amounts:
// final = total + tax - discount, with discount fixed at zero.
func (a *Aggregate) ApplyTotals(policy TaxPolicy) {
	total := decimal.Zero

	for i := range a.Items {
		a.Items[i] = PriceItem(a.Items[i])
		total = total.Add(a.Items[i].TotalPrice)
	}

	tax := policy.Tax(total).Round(moneyPlaces)
	discount := decimal.Zero

	a.Booking.TotalAmount = total.Round(moneyPlaces)
	a.Booking.TaxAmount = tax
	a.Booking.DiscountAmount = discount
	a.Booking.FinalAmount = total.Add(tax).Sub(discount).Round(moneyPlaces)
}

// Assemble groups customers and items under their bookings, preserving the order of bookings.
func Assemble(bookings []Booking, customers []Customer, items []Item) []Aggregate {
	customerByBooking := make(map[string]Customer, len(customers))
	for _, customer := range customers {
		customerByBooking[customer.BookingID] = customer
	}

	itemsByBooking := make(map[string][]Item, len(bookings))
	for _, item := range items {
		itemsByBooking[item.BookingID] = append(itemsByBooking[item.BookingID], item)
	}

	aggregates := make([]Aggregate, len(bookings))
	for i, booking := range bookings {
		aggregates[i] = Aggregate{
			Booking:  booking,
			Customer: customerByBooking[booking.ID],
			Items:    itemsByBooking[booking.ID],
		}
	}

	return aggregates
}
