package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tourism/config"
	"tourism/infras/otel/mocks"
	packageMocks "tourism/internal/domains/tourpackage/mocks"
	"tourism/internal/domains/tourpackage/model"
	"tourism/internal/domains/tourpackage/model/dto"
	"tourism/internal/domains/tourpackage/service"
	cacheMocks "tourism/shared/cache/mocks"
	gDto "tourism/shared/dto"
	"tourism/shared/failure"
)

const (
	packageID     = "9f8e7d6c-5b4a-4392-8170-6f5e4d3c2b1a"
	destinationID = "5a4b3c2d-1e0f-4a9b-8c7d-6e5f4a3b2c1d"
	amenityID     = "1d2c3b4a-5f6e-4d7c-8b9a-0f1e2d3c4b5a"
)

func newService(ctrl *gomock.Controller) (service.Package, *packageMocks.MockPackage) {
	repo := packageMocks.NewMockPackage(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(repo, &config.Config{}, cache, mocks.NewOtel()), repo
}

func TestPackageService_Create(t *testing.T) {
	t.Run("created with links", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newService(ctrl)

		req := dto.CreatePackageRequest{
			Name:           "Druk Path Trek",
			BasePrice:      decimal.RequireFromString("1500"),
			DestinationIDs: []string{destinationID},
			AmenityIDs:     []string{amenityID},
		}

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().CreateAggregate(gomock.Any(), gomock.Any(), model.Links{
			DestinationIDs: []string{destinationID},
			AmenityIDs:     []string{amenityID},
		}).DoAndReturn(func(_ context.Context, pkg model.Package, _ model.Links) error {
			assert.Equal(t, "druk-path-trek", pkg.Slug)
			assert.False(t, pkg.IsFeatured)

			return nil
		})
		repo.EXPECT().Links(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ids []string) (map[string]model.Links, error) {
				return map[string]model.Links{ids[0]: {DestinationIDs: []string{destinationID}, AmenityIDs: []string{amenityID}}}, nil
			})

		res, err := svc.Create(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, "1500.00", res.BasePrice.String())
		assert.Equal(t, []string{destinationID}, res.DestinationIDs)
		assert.Equal(t, []string{}, res.ExperienceIDs)
		assert.Equal(t, []string{amenityID}, res.AmenityIDs)
	})

	t.Run("slug taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newService(ctrl)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := svc.Create(context.Background(), dto.CreatePackageRequest{Name: "Druk Path Trek"})
		assert.EqualError(t, err, "Package with this slug already exists")
	})
}

func TestPackageService_Update(t *testing.T) {
	current := model.Package{ID: packageID, Name: "Druk Path Trek", Slug: "druk-path-trek"}

	t.Run("only present link sets are replaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newService(ctrl)

		amenities := []string{amenityID}

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil).Times(2)
		repo.EXPECT().UpdateAggregate(gomock.Any(), packageID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ map[string]any, patch model.LinkPatch) error {
				assert.Nil(t, patch.DestinationIDs)
				assert.Nil(t, patch.ExperienceIDs)
				require.NotNil(t, patch.AmenityIDs)
				assert.Equal(t, amenities, *patch.AmenityIDs)

				return nil
			})
		repo.EXPECT().Links(gomock.Any(), gomock.Any()).Return(map[string]model.Links{}, nil)

		_, err := svc.Update(context.Background(), dto.UpdatePackageRequest{AmenityIDs: &amenities}, packageID)
		assert.NoError(t, err)
	})

	t.Run("featured flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newService(ctrl)

		featured := true
		updated := current
		updated.IsFeatured = true

		gomock.InOrder(
			repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil),
			repo.EXPECT().UpdateAggregate(gomock.Any(), packageID, gomock.Any(), model.LinkPatch{}).
				DoAndReturn(func(_ context.Context, _ string, fields map[string]any, _ model.LinkPatch) error {
					assert.Equal(t, true, fields[model.FieldIsFeatured])

					return nil
				}),
			repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(updated, nil),
		)
		repo.EXPECT().Links(gomock.Any(), gomock.Any()).Return(map[string]model.Links{}, nil)

		res, err := svc.Update(context.Background(), dto.UpdatePackageRequest{IsFeatured: &featured}, packageID)
		require.NoError(t, err)
		assert.True(t, res.IsFeatured)
	})

	t.Run("missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newService(ctrl)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Package{}, nil)

		_, err := svc.Update(context.Background(), dto.UpdatePackageRequest{}, packageID)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestPackageService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newService(ctrl)

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Package{{ID: packageID, Name: "Druk Path Trek", BasePrice: decimal.NewFromInt(900), IsFeatured: true}}, nil)
	repo.EXPECT().Links(gomock.Any(), []string{packageID}).
		Return(map[string]model.Links{packageID: {ExperienceIDs: []string{"x"}}}, nil)

	filter := gDto.NewFilterGroup(gDto.FilterEq(model.TableName, model.FieldIsFeatured, true))

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, filter)
	require.NoError(t, err)

	require.Len(t, res.Packages, 1)
	assert.Equal(t, "900.00", res.Packages[0].BasePrice.String())
	assert.Equal(t, []string{"x"}, res.Packages[0].ExperienceIDs)
}

func TestPackageService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newService(ctrl)

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), packageID))
}
