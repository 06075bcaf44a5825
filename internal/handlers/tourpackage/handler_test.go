package tourpackage_test

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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tourism/config"
	otelMocks "tourism/infras/otel/mocks"
	packageMocks "tourism/internal/domains/tourpackage/mocks"
	"tourism/internal/domains/tourpackage/model"
	"tourism/internal/domains/tourpackage/service"
	"tourism/internal/handlers/tourpackage"
	cacheMocks "tourism/shared/cache/mocks"
)

const packageID = "9f8e7d6c-5b4a-4392-8170-6f5e4d3c2b1a"

type envelope struct {
	Data struct {
		ID        string      `json:"id"`
		Name      string      `json:"name"`
		Slug      string      `json:"slug"`
		BasePrice json.Number `json:"base_price"`
	} `json:"data"`
	Error string `json:"error"`
}

func newRouter(t *testing.T) (http.Handler, *packageMocks.MockPackage) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := packageMocks.NewMockPackage(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
	redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redisCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redisCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	otel := otelMocks.NewOtel()
	handler := tourpackage.New(service.New(repo, &config.Config{}, redisCache, otel), otel)

	router := chi.NewRouter()
	router.Route("/api/v1", handler.Router)

	return router, repo
}

func linksOf(_ context.Context, ids []string) (map[string]model.Links, error) {
	return map[string]model.Links{ids[0]: {}}, nil
}

func TestCreatePackage(t *testing.T) {
	router, repo := newRouter(t)

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().CreateAggregate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().Links(gomock.Any(), gomock.Any()).DoAndReturn(linksOf)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/packages/", strings.NewReader(`{"name":"Spiti Valley Circuit","base_price":"42000"}`)))

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "spiti-valley-circuit", body.Data.Slug)
	assert.Equal(t, "42000.00", body.Data.BasePrice.String())

	time.Sleep(10 * time.Millisecond)
}

func TestGetPackageByID(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		setupMock func(repo *packageMocks.MockPackage)
		wantCode  int
		wantError string
	}{
		{
			name: "found",
			path: "/api/v1/packages/" + packageID,
			setupMock: func(repo *packageMocks.MockPackage) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Package{ID: packageID, Name: "Spiti Valley Circuit", BasePrice: decimal.NewFromInt(42000)}, nil)
				repo.EXPECT().Links(gomock.Any(), []string{packageID}).DoAndReturn(linksOf)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "not found",
			path: "/api/v1/packages/" + packageID,
			setupMock: func(repo *packageMocks.MockPackage) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Package{}, nil)
			},
			wantCode:  http.StatusNotFound,
			wantError: "Package not found",
		},
		{
			name:      "malformed id",
			path:      "/api/v1/packages/spiti",
			setupMock: func(*packageMocks.MockPackage) {},
			wantCode:  http.StatusBadRequest,
			wantError: "id must be a valid UUID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := newRouter(t)
			tt.setupMock(repo)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			var body envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantError, body.Error)

			if tt.wantError == "" {
				assert.Equal(t, packageID, body.Data.ID)
				assert.Equal(t, "42000.00", body.Data.BasePrice.String())
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}
