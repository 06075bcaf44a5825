package availability_test

import (
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
	availabilityMocks "tourism/internal/domains/availability/mocks"
	"tourism/internal/domains/availability/model"
	"tourism/internal/domains/availability/service"
	"tourism/internal/handlers/availability"
)

const accommodationID = "5f2b7a8e-2d5c-4f4a-9d36-0f4b8f7f3c11"

func newRouter(t *testing.T) (http.Handler, *availabilityMocks.MockAvailability) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := availabilityMocks.NewMockAvailability(ctrl)
	events := kafkaMocks.NewMockClient(ctrl)
	events.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	otel := otelMocks.NewOtel()
	handler := availability.New(service.New(repo, &config.Config{}, events, otel), otel)

	router := chi.NewRouter()
	router.Route("/api/v1", handler.Router)

	return router, repo
}

func day(available, total int, blocked bool) model.Availability {
	return model.Availability{
		ID:              "a1",
		AccommodationID: accommodationID,
		Date:            time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC),
		AvailableUnits:  available,
		TotalUnits:      total,
		IsBlocked:       blocked,
	}
}

func TestCheckAvailability(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		setupMock func(repo *availabilityMocks.MockAvailability)
		wantCode  int
		wantBody  string
	}{
		{
			name:  "enough units",
			query: "?accommodation_id=" + accommodationID + "&date=2025-12-24&units_required=2",
			setupMock: func(repo *availabilityMocks.MockAvailability) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(day(3, 5, false), nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"data":{"available":true}}`,
		},
		{
			name:  "no record means unavailable",
			query: "?accommodation_id=" + accommodationID + "&date=2025-12-25",
			setupMock: func(repo *availabilityMocks.MockAvailability) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Availability{}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"data":{"available":false}}`,
		},
		{
			name:      "missing date",
			query:     "?accommodation_id=" + accommodationID,
			setupMock: func(_ *availabilityMocks.MockAvailability) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := newRouter(t)
			tt.setupMock(repo)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/availability/check"+tt.query, nil))

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, recorder.Body.String())
			}
		})
	}
}

func TestReserveAvailability(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		setupMock func(repo *availabilityMocks.MockAvailability)
		wantCode  int
		wantError string
	}{
		{
			name:  "reserves one unit by default",
			query: "?accommodation_id=" + accommodationID + "&date=2025-12-24",
			setupMock: func(repo *availabilityMocks.MockAvailability) {
				repo.EXPECT().
					Reserve(gomock.Any(), accommodationID, gomock.Any(), 1, gomock.Any(), gomock.Any()).
					Return(day(4, 5, false), true, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:  "blocked day",
			query: "?accommodation_id=" + accommodationID + "&date=2025-12-24&units=1",
			setupMock: func(repo *availabilityMocks.MockAvailability) {
				repo.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), 1, gomock.Any(), gomock.Any()).Return(model.Availability{}, false, nil)
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(day(5, 5, true), nil)
			},
			wantCode:  http.StatusBadRequest,
			wantError: "Inventory is blocked",
		},
		{
			name:  "no record for the date",
			query: "?accommodation_id=" + accommodationID + "&date=2025-12-31",
			setupMock: func(repo *availabilityMocks.MockAvailability) {
				repo.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), 1, gomock.Any(), gomock.Any()).Return(model.Availability{}, false, nil)
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Availability{}, nil)
			},
			wantCode:  http.StatusNotFound,
			wantError: "Availability record not found for this date",
		},
		{
			name:      "zero units",
			query:     "?accommodation_id=" + accommodationID + "&date=2025-12-24&units=0",
			setupMock: func(_ *availabilityMocks.MockAvailability) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := newRouter(t)
			tt.setupMock(repo)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/v1/availability/reserve"+tt.query, nil))

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantError != "" {
				assert.True(t, strings.Contains(recorder.Body.String(), tt.wantError), recorder.Body.String())
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}
