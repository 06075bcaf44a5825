package voucher_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"tourism/internal/domains/booking/model"
	"tourism/internal/domains/booking/voucher"
	gModel "tourism/shared/model"
)

func TestRender(t *testing.T) {
	name := "Mountain retreat"
	start := time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3)

	aggregate := model.Aggregate{
		Booking: model.Booking{
			ID:               "b1",
			BookingReference: "TRIP-7X9Y2Z",
			Status:           model.StatusDraft,
			TotalAmount:      decimal.NewFromInt(1500),
			FinalAmount:      decimal.NewFromInt(1500),
			Metadata:         gModel.NewMetadata("u1", start),
		},
		Customer: model.Customer{ID: "c1", BookingID: "b1", FullName: "Dorji Wangmo", Email: "dorji@example.com", Phone: "+97517000000"},
		Items: []model.Item{
			{ID: "i1", BookingID: "b1", ServiceType: model.ServiceTypePackage, ServiceName: &name, UnitPrice: decimal.NewFromInt(1500), Quantity: 1, TotalPrice: decimal.NewFromInt(1500), StartDate: &start, EndDate: &end},
			{ID: "i2", BookingID: "b1", ServiceType: model.ServiceTypeExperience, Quantity: 2},
		},
	}

	pdf, err := voucher.Render(aggregate)

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "voucher-TRIP-ABC123.pdf", voucher.FileName("TRIP-ABC123"))
}
