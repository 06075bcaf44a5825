package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/shared/failure"
	"tourism/shared/validator"
)

type travellerRequest struct {
	FullName string `json:"full_name" validate:"required,max=120"`
	Email    string `json:"email"     validate:"required,email"`
	Guests   int    `json:"guests"    validate:"gte=1,lte=12"`
	Type     string `json:"type"      validate:"oneof=ADULT CHILD"`
}

func validTraveller() travellerRequest {
	return travellerRequest{FullName: "Asha Rao", Email: "asha@example.com", Guests: 2, Type: "ADULT"}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*travellerRequest)
		wantMsg string
	}{
		{name: "valid", mutate: func(*travellerRequest) {}},
		{name: "missing name", mutate: func(r *travellerRequest) { r.FullName = "" }, wantMsg: "full_name is required"},
		{name: "invalid email", mutate: func(r *travellerRequest) { r.Email = "asha" }, wantMsg: "email must be a valid email address"},
		{name: "too many guests", mutate: func(r *travellerRequest) { r.Guests = 20 }, wantMsg: "guests must be less than or equal to 12"},
		{name: "no guests", mutate: func(r *travellerRequest) { r.Guests = 0 }, wantMsg: "guests must be greater than or equal to 1"},
		{name: "unknown type", mutate: func(r *travellerRequest) { r.Type = "INFANT" }, wantMsg: "type must be one of ADULT CHILD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validTraveller()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid body", body: `{"full_name":"Asha Rao","email":"asha@example.com","guests":2,"type":"CHILD"}`},
		{name: "invalid field", body: `{"full_name":"Asha Rao","email":"nope","guests":2,"type":"CHILD"}`, wantErr: "email"},
		{name: "malformed json", body: `{"full_name":`, wantErr: "failed to decode request body"},
		{name: "empty object", body: `{}`, wantErr: "full_name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req travellerRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name    string
		field   any
		tag     string
		wantErr bool
	}{
		{name: "uuid", field: "550e8400-e29b-41d4-a716-446655440000", tag: "uuid"},
		{name: "not a uuid", field: "booking-1", tag: "uuid", wantErr: true},
		{name: "date", field: "2025-12-24", tag: "datetime=2006-01-02"},
		{name: "bad date", field: "24/12/2025", tag: "datetime=2006-01-02", wantErr: true},
		{name: "latitude", field: "15.2993", tag: "latitude"},
		{name: "latitude out of range", field: "95.0", tag: "latitude", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)
			assert.Equal(t, tt.wantErr, err != nil, "error: %v", err)
		})
	}
}

func TestDataURIValidation(t *testing.T) {
	const hello = "data:text/plain;base64,SGVsbG8gV29ybGQ="

	tests := []struct {
		name    string
		tag     string
		field   string
		wantErr bool
	}{
		{name: "allowed mimetype", field: hello, tag: "mimetypes=text/plain image/png"},
		{name: "disallowed mimetype", field: hello, tag: "mimetypes=image/png", wantErr: true},
		{name: "not a data uri", field: "hello", tag: "mimetypes=text/plain", wantErr: true},
		{name: "decoded size within limit", field: hello, tag: "maxfilesize=0.001"},
		{name: "decoded size over limit", field: hello, tag: "maxfilesize=0.000001", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)
			assert.Equal(t, tt.wantErr, err != nil, "error: %v", err)
		})
	}
}

type priceRequest struct {
	Price    decimal.Decimal  `json:"price"    validate:"gte=0"`
	Discount *decimal.Decimal `json:"discount" validate:"omitempty,gte=0"`
	Slug     string           `json:"slug"     validate:"omitempty,slug"`
}

func TestDecimalAndSlugRules(t *testing.T) {
	negative := decimal.NewFromInt(-1)

	tests := []struct {
		name    string
		data    priceRequest
		wantErr string
	}{
		{name: "valid", data: priceRequest{Price: decimal.RequireFromString("1500.00"), Slug: "goa-beaches"}},
		{name: "negative price", data: priceRequest{Price: decimal.NewFromInt(-5)}, wantErr: "price"},
		{name: "negative pointer", data: priceRequest{Price: decimal.Zero, Discount: &negative}, wantErr: "discount"},
		{name: "invalid slug", data: priceRequest{Slug: "Goa Beaches"}, wantErr: "slug must contain lowercase letters"},
		{name: "double hyphen slug", data: priceRequest{Slug: "goa--beaches"}, wantErr: "slug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
