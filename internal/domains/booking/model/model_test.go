package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"tourism/internal/domains/booking/model"
)

type flatTax struct {
	rate decimal.Decimal
}

func (f flatTax) Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(f.rate)
}

func TestAggregate_ApplyTotals(t *testing.T) {
	tests := []struct {
		name      string
		items     []model.Item
		policy    model.TaxPolicy
		wantTotal string
		wantTax   string
		wantFinal string
	}{
		{
			name: "two lines without tax",
			items: []model.Item{
				{UnitPrice: decimal.NewFromInt(100), Quantity: 2},
				{UnitPrice: decimal.NewFromInt(50), Quantity: 1},
			},
			policy:    model.ZeroTax{},
			wantTotal: "250.00",
			wantTax:   "0.00",
			wantFinal: "250.00",
		},
		{
			name: "fractional prices are rounded to cents",
			items: []model.Item{
				{UnitPrice: decimal.RequireFromString("19.995"), Quantity: 3},
			},
			policy:    model.ZeroTax{},
			wantTotal: "59.99",
			wantTax:   "0.00",
			wantFinal: "59.99",
		},
		{
			name: "tax policy is added to the final amount",
			items: []model.Item{
				{UnitPrice: decimal.NewFromInt(1000), Quantity: 1},
			},
			policy:    flatTax{rate: decimal.RequireFromString("0.18")},
			wantTotal: "1000.00",
			wantTax:   "180.00",
			wantFinal: "1180.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aggregate := model.Aggregate{Items: tt.items}
			aggregate.ApplyTotals(tt.policy)

			assert.Equal(t, tt.wantTotal, aggregate.Booking.TotalAmount.StringFixed(2))
			assert.Equal(t, tt.wantTax, aggregate.Booking.TaxAmount.StringFixed(2))
			assert.Equal(t, "0.00", aggregate.Booking.DiscountAmount.StringFixed(2))
			assert.Equal(t, tt.wantFinal, aggregate.Booking.FinalAmount.StringFixed(2))
		})
	}
}

func TestAggregate_ApplyTotalsPricesItems(t *testing.T) {
	aggregate := model.Aggregate{Items: []model.Item{
		{UnitPrice: decimal.NewFromInt(100), Quantity: 2},
		{UnitPrice: decimal.NewFromInt(50), Quantity: 1},
	}}

	aggregate.ApplyTotals(model.ZeroTax{})

	assert.Equal(t, "200.00", aggregate.Items[0].TotalPrice.StringFixed(2))
	assert.Equal(t, "50.00", aggregate.Items[1].TotalPrice.StringFixed(2))
}

func TestAssemble(t *testing.T) {
	bookings := []model.Booking{{ID: "b2"}, {ID: "b1"}}
	customers := []model.Customer{{BookingID: "b1", FullName: "Asha"}, {BookingID: "b2", FullName: "Ravi"}}
	items := []model.Item{{ID: "i1", BookingID: "b1"}, {ID: "i2", BookingID: "b2"}, {ID: "i3", BookingID: "b1"}}

	aggregates := model.Assemble(bookings, customers, items)

	assert.Len(t, aggregates, 2)
	assert.Equal(t, "b2", aggregates[0].Booking.ID)
	assert.Equal(t, "Ravi", aggregates[0].Customer.FullName)
	assert.Len(t, aggregates[0].Items, 1)
	assert.Equal(t, "Asha", aggregates[1].Customer.FullName)
	assert.Len(t, aggregates[1].Items, 2)
}
