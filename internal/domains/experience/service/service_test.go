package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tourism/config"
	"tourism/infras/otel/mocks"
	experienceMocks "tourism/internal/domains/experience/mocks"
	"tourism/internal/domains/experience/model"
	"tourism/internal/domains/experience/model/dto"
	"tourism/internal/domains/experience/service"
	cacheMocks "tourism/shared/cache/mocks"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	"tourism/shared/failure"
)

const (
	experienceID  = "0e1d2c3b-4a59-4687-a5b4-c3d2e1f0a9b8"
	destinationID = "5a4b3c2d-1e0f-4a9b-8c7d-6e5f4a3b2c1d"
)

func newService(ctrl *gomock.Controller) (service.Experience, *experienceMocks.MockExperience) {
	repo := experienceMocks.NewMockExperience(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(repo, &config.Config{}, cache, mocks.NewOtel()), repo
}

func TestExperienceService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *experienceMocks.MockExperience)
		wantCode  int
	}{
		{
			name: "created with destinations",
			setupMock: func(repo *experienceMocks.MockExperience) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().CreateAggregate(gomock.Any(), gomock.Any(), []string{destinationID}).
					DoAndReturn(func(_ context.Context, m model.Experience, _ []string) error {
						assert.Equal(t, "tiger-s-nest-hike", m.Slug)
						assert.True(t, m.IsActive)

						return nil
					})
				repo.EXPECT().DestinationIDs(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, ids []string) (map[string][]string, error) {
						return map[string][]string{ids[0]: {destinationID}}, nil
					})
			},
		},
		{
			name: "slug taken",
			setupMock: func(repo *experienceMocks.MockExperience) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "slug taken concurrently",
			setupMock: func(repo *experienceMocks.MockExperience) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().CreateAggregate(gomock.Any(), gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			setupMock: func(repo *experienceMocks.MockExperience) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().CreateAggregate(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newService(ctrl)
			tt.setupMock(repo)

			res, err := svc.Create(context.Background(), dto.CreateExperienceRequest{
				Title:          "Tiger's Nest Hike",
				DestinationIDs: []string{destinationID},
			})
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, []string{destinationID}, res.DestinationIDs)
		})
	}
}

func TestExperienceService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newService(ctrl)

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Experience{{ID: "e1", Title: "Rafting"}, {ID: "e2", Title: "Archery"}}, nil)
	repo.EXPECT().DestinationIDs(gomock.Any(), []string{"e1", "e2"}).
		Return(map[string][]string{"e1": {destinationID}}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.NewFilterGroup())
	require.NoError(t, err)

	require.Len(t, res.Experiences, 2)
	assert.Equal(t, []string{destinationID}, res.Experiences[0].DestinationIDs)
	assert.Equal(t, []string{}, res.Experiences[1].DestinationIDs)
	assert.Equal(t, 1, res.TotalPage)
}

func TestExperienceService_Update(t *testing.T) {
	current := model.Experience{ID: experienceID, Title: "Rafting", Slug: "rafting"}

	t.Run("fields only keeps links", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newService(ctrl)

		title := "White Water Rafting"

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil).Times(2)
		repo.EXPECT().UpdateAggregate(gomock.Any(), experienceID, gomock.Any(), nil).
			DoAndReturn(func(_ context.Context, _ string, fields map[string]any, ids *[]string) error {
				assert.Equal(t, title, fields[model.FieldTitle])
				assert.Nil(t, ids)

				return nil
			})
		repo.EXPECT().DestinationIDs(gomock.Any(), gomock.Any()).Return(map[string][]string{}, nil)

		_, err := svc.Update(context.Background(), dto.UpdateExperienceRequest{Title: &title}, experienceID)
		assert.NoError(t, err)
	})

	t.Run("empty list clears links", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newService(ctrl)

		empty := []string{}

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil).Times(2)
		repo.EXPECT().UpdateAggregate(gomock.Any(), experienceID, gomock.Any(), &empty).Return(nil)
		repo.EXPECT().DestinationIDs(gomock.Any(), gomock.Any()).Return(map[string][]string{}, nil)

		res, err := svc.Update(context.Background(), dto.UpdateExperienceRequest{DestinationIDs: &empty}, experienceID)
		require.NoError(t, err)
		assert.Empty(t, res.DestinationIDs)
	})

	t.Run("nothing to change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newService(ctrl)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil).Times(2)
		repo.EXPECT().DestinationIDs(gomock.Any(), gomock.Any()).Return(map[string][]string{}, nil)

		_, err := svc.Update(context.Background(), dto.UpdateExperienceRequest{}, experienceID)
		assert.NoError(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newService(ctrl)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Experience{}, nil)

		_, err := svc.Update(context.Background(), dto.UpdateExperienceRequest{}, experienceID)
		assert.EqualError(t, err, "Experience not found")
	})
}

func TestExperienceService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newService(ctrl)

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	assert.Equal(t, http.StatusNotFound, failure.GetCode(svc.Delete(context.Background(), experienceID)))
}
