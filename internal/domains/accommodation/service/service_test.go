package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourism/config"
	"tourism/infras/otel/mocks"
	accommodationMocks "tourism/internal/domains/accommodation/mocks"
	"tourism/internal/domains/accommodation/model"
	"tourism/internal/domains/accommodation/model/dto"
	"tourism/internal/domains/accommodation/service"
	cacheMocks "tourism/shared/cache/mocks"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	"tourism/shared/failure"
)

const (
	accommodationID = "5b0e3c1d-7a2f-4b6e-9d8c-1f2a3b4c5d6e"
	destinationID   = "9e8d7c6b-5a4f-4e3d-8c2b-1a0f9e8d7c6b"
)

var errMiss = errors.New("cache miss")

func newService(ctrl *gomock.Controller) (service.Accommodation, *accommodationMocks.MockAccommodation) {
	repo := accommodationMocks.NewMockAccommodation(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errMiss).AnyTimes()
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(repo, cfg, cache, mocks.NewOtel()), repo
}

func stored() model.Accommodation {
	return model.Accommodation{
		ID:            accommodationID,
		DestinationID: destinationID,
		Name:          "Riverside Cottage",
		BasePrice:     decimal.RequireFromString("2500"),
		BaseOccupancy: 2,
		MaxOccupancy:  3,
		TotalUnits:    4,
		IsActive:      true,
	}
}

func TestAccommodationService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateAccommodationRequest
		setupMock func(repo *accommodationMocks.MockAccommodation)
		wantCode  int
	}{
		{
			name: "applies defaults",
			req:  dto.CreateAccommodationRequest{DestinationID: destinationID, Name: "Tent", BasePrice: decimal.RequireFromString("800")},
			setupMock: func(repo *accommodationMocks.MockAccommodation) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.Accommodation) error {
						assert.Equal(t, model.DefaultBaseOccupancy, m.BaseOccupancy)
						assert.Equal(t, model.DefaultMaxOccupancy, m.MaxOccupancy)
						assert.Equal(t, model.DefaultTotalUnits, m.TotalUnits)
						assert.True(t, m.ExtraBoarderPrice.IsZero())
						assert.True(t, m.IsActive)

						return nil
					})
			},
		},
		{
			name: "base occupancy above max",
			req: dto.CreateAccommodationRequest{
				DestinationID: destinationID,
				Name:          "Dorm",
				BaseOccupancy: func() *int { v := 5; return &v }(),
			},
			setupMock: func(_ *accommodationMocks.MockAccommodation) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown destination",
			req:  dto.CreateAccommodationRequest{DestinationID: destinationID, Name: "Tent"},
			setupMock: func(repo *accommodationMocks.MockAccommodation) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeFkViolation})
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			req:  dto.CreateAccommodationRequest{DestinationID: destinationID, Name: "Tent"},
			setupMock: func(repo *accommodationMocks.MockAccommodation) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newService(ctrl)
			tt.setupMock(repo)

			res, err := svc.Create(context.Background(), tt.req)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "0.00", res.ExtraBoarderPrice.String())
		})
	}
}

func TestAccommodationService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newService(ctrl)

	filter := gDto.NewFilterGroup(gDto.FilterEq(model.TableName, model.FieldDestinationID, destinationID))

	repo.EXPECT().Count(gomock.Any(), filter).Return(11, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), filter).Return([]model.Accommodation{stored()}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, filter)

	assert.NoError(t, err)
	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Accommodations, 1)
	assert.Equal(t, "2500.00", res.Accommodations[0].BasePrice.String())
}

func TestAccommodationService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newService(ctrl)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Accommodation{}, nil)

		_, err := svc.Get(context.Background(), accommodationID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newService(ctrl)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(), nil)

		res, err := svc.Get(context.Background(), accommodationID)
		assert.NoError(t, err)
		assert.Equal(t, "Riverside Cottage", res.Name)
	})
}

func TestAccommodationService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateAccommodationRequest
		setupMock func(repo *accommodationMocks.MockAccommodation)
		wantCode  int
	}{
		{
			name: "writes present fields only",
			req:  dto.UpdateAccommodationRequest{TotalUnits: func() *int { v := 0; return &v }()},
			setupMock: func(repo *accommodationMocks.MockAccommodation) {
				updated := stored()
				updated.TotalUnits = 0

				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(), nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, 0, fields["total_units"])
						assert.NotContains(t, fields, "name")

						return nil
					})
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(updated, nil)
			},
		},
		{
			name: "missing accommodation",
			req:  dto.UpdateAccommodationRequest{},
			setupMock: func(repo *accommodationMocks.MockAccommodation) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Accommodation{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "occupancy bounds checked against stored record",
			req:  dto.UpdateAccommodationRequest{MaxOccupancy: func() *int { v := 1; return &v }()},
			setupMock: func(repo *accommodationMocks.MockAccommodation) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(), nil)
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newService(ctrl)
			tt.setupMock(repo)

			_, err := svc.Update(context.Background(), tt.req, accommodationID)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestAccommodationService_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newService(ctrl)
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), accommodationID), model.ErrNotFound)
	})

	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newService(ctrl)
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), accommodationID))
	})
}
