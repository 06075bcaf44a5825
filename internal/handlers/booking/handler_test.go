package booking_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourism/config"
	kafkaMocks "tourism/infras/kafka/mocks"
	otelMocks "tourism/infras/otel/mocks"
	bookingMocks "tourism/internal/domains/booking/mocks"
	"tourism/internal/domains/booking/model"
	"tourism/internal/domains/booking/service"
	"tourism/internal/handlers/booking"
	cacheMocks "tourism/shared/cache/mocks"
	"tourism/shared/constant"
)

const (
	subject   = "8d3c6a1e-0b7f-4f3e-9a55-6d2c1b0e9f10"
	bookingID = "3f2a1b0c-9d8e-4f7a-8b6c-5d4e3f2a1b0c"
)

type envelope struct {
	Data struct {
		Status           string      `json:"status"`
		BookingReference string      `json:"booking_reference"`
		FinalAmount      json.Number `json:"final_amount"`
		UserID           string      `json:"user_id"`
		Items            []struct {
			TotalPrice json.Number `json:"total_price"`
			Quantity   int         `json:"quantity"`
		} `json:"items"`
	} `json:"data"`
	Error string `json:"error"`
}

func newRouter(t *testing.T) (http.Handler, *bookingMocks.MockBooking, *bookingMocks.MockGenerator, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := bookingMocks.NewMockBooking(ctrl)
	references := bookingMocks.NewMockGenerator(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	events := kafkaMocks.NewMockClient(ctrl)

	redisCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redisCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	events.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Booking.ReferenceLength = 6
	cfg.Booking.ReferenceWideLength = 10
	cfg.Booking.ReferenceMaxAttempts = 10

	otel := otelMocks.NewOtel()
	handler := booking.New(service.New(repo, references, cfg, redisCache, events, otel), otel)

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), constant.ContextKeyUserID, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	router.Route("/api/v1", handler.Router)

	return router, repo, references, redisCache
}

func TestCreateBooking(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(repo *bookingMocks.MockBooking, references *bookingMocks.MockGenerator)
		wantCode  int
		wantFinal string
		wantOwner string
	}{
		{
			name: "single package item",
			body: `{
				"customer": {"full_name": "Tashi Delek", "email": "tashi@example.com", "phone": "+97517222222"},
				"items": [{"service_type": "PACKAGE", "service_id": "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed", "unit_price": 1500.00, "quantity": 1}]
			}`,
			setupMock: func(repo *bookingMocks.MockBooking, references *bookingMocks.MockGenerator) {
				references.EXPECT().Generate(6).Return("TRIP-7X9Y2Z", nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().CreateAggregate(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode:  http.StatusCreated,
			wantFinal: "1500.00",
			wantOwner: subject,
		},
		{
			name: "body user_id wins over the caller",
			body: `{
				"user_id": "c0ffee00-1234-4abc-8def-0123456789ab",
				"customer": {"full_name": "Tashi Delek", "email": "tashi@example.com", "phone": "+97517222222"},
				"items": [{"service_type": "PACKAGE", "service_id": "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed", "unit_price": 1500.00, "quantity": 1}]
			}`,
			setupMock: func(repo *bookingMocks.MockBooking, references *bookingMocks.MockGenerator) {
				references.EXPECT().Generate(6).Return("TRIP-7X9Y2Z", nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().CreateAggregate(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode:  http.StatusCreated,
			wantFinal: "1500.00",
			wantOwner: "c0ffee00-1234-4abc-8def-0123456789ab",
		},
		{
			name:      "items are required",
			body:      `{"customer": {"full_name": "Tashi Delek", "email": "tashi@example.com", "phone": "+97517222222"}, "items": []}`,
			setupMock: func(_ *bookingMocks.MockBooking, _ *bookingMocks.MockGenerator) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown service type",
			body: `{
				"customer": {"full_name": "Tashi Delek", "email": "tashi@example.com", "phone": "+97517222222"},
				"items": [{"service_type": "FLIGHT", "service_id": "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed", "unit_price": 10}]
			}`,
			setupMock: func(_ *bookingMocks.MockBooking, _ *bookingMocks.MockGenerator) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "negative price",
			body: `{
				"customer": {"full_name": "Tashi Delek", "email": "tashi@example.com", "phone": "+97517222222"},
				"items": [{"service_type": "PACKAGE", "service_id": "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed", "unit_price": -1}]
			}`,
			setupMock: func(_ *bookingMocks.MockBooking, _ *bookingMocks.MockGenerator) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo, references, _ := newRouter(t)
			tt.setupMock(repo, references)

			request := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/", strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantCode != http.StatusCreated {
				return
			}

			var body envelope
			assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, model.StatusDraft, body.Data.Status)
			assert.Equal(t, "TRIP-7X9Y2Z", body.Data.BookingReference)
			assert.Equal(t, tt.wantFinal, body.Data.FinalAmount.String())
			assert.Equal(t, tt.wantOwner, body.Data.UserID)
			assert.Len(t, body.Data.Items, 1)
			assert.Equal(t, "1500.00", body.Data.Items[0].TotalPrice.String())
			assert.Equal(t, 1, body.Data.Items[0].Quantity)

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestGetBookingNotFound(t *testing.T) {
	router, repo, _, redisCache := newRouter(t)

	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+bookingID, nil))

	var body envelope
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Booking not found", body.Error)
}

func TestGetVoucher(t *testing.T) {
	router, repo, _, _ := newRouter(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: bookingID, BookingReference: "TRIP-ABC123", Status: model.StatusDraft}, nil)
	repo.EXPECT().GetCustomers(gomock.Any(), gomock.Any()).Return([]model.Customer{{ID: "c1", BookingID: bookingID, FullName: "Tashi Delek"}}, nil)
	repo.EXPECT().GetItems(gomock.Any(), gomock.Any()).Return([]model.Item{}, nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+bookingID+"/voucher", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, constant.ContentTypePDF, recorder.Header().Get(constant.RequestHeaderContentType))
	assert.Contains(t, recorder.Header().Get(constant.RequestHeaderContentDisposition), "voucher-TRIP-ABC123.pdf")
	assert.True(t, strings.HasPrefix(recorder.Body.String(), "%PDF"))
}

func TestMalformedBookingID(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "get", method: http.MethodGet, path: "/api/v1/bookings/abc"},
		{name: "update", method: http.MethodPut, path: "/api/v1/bookings/abc"},
		{name: "delete", method: http.MethodDelete, path: "/api/v1/bookings/abc"},
		{name: "voucher", method: http.MethodGet, path: "/api/v1/bookings/abc/voucher"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _, _, _ := newRouter(t)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.path, strings.NewReader(`{"status":"CONFIRMED"}`)))

			var body envelope
			assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Equal(t, "id must be a valid UUID", body.Error)
		})
	}
}
