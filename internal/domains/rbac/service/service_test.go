package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourism/config"
	"tourism/infras/otel/mocks"
	rbacMocks "tourism/internal/domains/rbac/mocks"
	"tourism/internal/domains/rbac/model"
	"tourism/internal/domains/rbac/model/dto"
	"tourism/internal/domains/rbac/service"
	cacheMocks "tourism/shared/cache/mocks"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	"tourism/shared/failure"
)

const (
	knownPermission   = "5e0c2d1a-7b3f-4c8e-9a6d-1f2e3d4c5b6a"
	unknownPermission = "9f8e7d6c-5b4a-4392-8170-6f5e4d3c2b1a"
)

func newService(ctrl *gomock.Controller) (service.RBAC, *rbacMocks.MockRBAC) {
	repo := rbacMocks.NewMockRBAC(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(repo, &config.Config{}, cache, mocks.NewOtel()), repo
}

func TestCreateRole(t *testing.T) {
	req := dto.CreateRoleRequest{Name: "catalog-editor", PermissionIDs: []string{knownPermission, unknownPermission}}

	tests := []struct {
		name      string
		setupMock func(repo *rbacMocks.MockRBAC)
		wantCode  int
		wantIDs   []string
	}{
		{
			name: "links only known permissions",
			setupMock: func(repo *rbacMocks.MockRBAC) {
				repo.EXPECT().RoleExist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().CreateRole(gomock.Any(), gomock.Any(), req.PermissionIDs).Return(nil)
				repo.EXPECT().RolePermissions(gomock.Any(), gomock.Len(1)).
					DoAndReturn(func(_ context.Context, ids []string) (map[string][]string, error) {
						return map[string][]string{ids[0]: {knownPermission}}, nil
					})
			},
			wantIDs: []string{knownPermission},
		},
		{
			name: "duplicate name",
			setupMock: func(repo *rbacMocks.MockRBAC) {
				repo.EXPECT().RoleExist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "duplicate name lost race",
			setupMock: func(repo *rbacMocks.MockRBAC) {
				repo.EXPECT().RoleExist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().CreateRole(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newService(ctrl)
			tt.setupMock(repo)

			res, err := svc.CreateRole(context.Background(), req)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.EqualError(t, err, "Role with this name already exists")

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "catalog-editor", res.Name)
			assert.Equal(t, tt.wantIDs, res.PermissionIDs)
		})
	}
}

func TestGetRoles(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newService(ctrl)

	roles := []model.Role{{ID: "r1", Name: "admin"}, {ID: "r2", Name: "viewer"}}
	params := gDto.QueryParams{Page: 1, Limit: 10}

	repo.EXPECT().CountRoles(gomock.Any()).Return(2, nil)
	repo.EXPECT().GetRoles(gomock.Any(), params).Return(roles, nil)
	repo.EXPECT().RolePermissions(gomock.Any(), []string{"r1", "r2"}).Return(map[string][]string{"r1": {knownPermission}}, nil)

	res, err := svc.GetRoles(context.Background(), params)
	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	assert.Equal(t, []string{knownPermission}, res.Roles[0].PermissionIDs)
	assert.Equal(t, []string{}, res.Roles[1].PermissionIDs)
}

func TestCreatePermission(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newService(ctrl)

	repo.EXPECT().PermissionExist(gomock.Any(), gomock.Any()).Return(true, nil)

	_, err := svc.CreatePermission(context.Background(), dto.CreatePermissionRequest{Code: "booking.read"})
	assert.ErrorIs(t, err, model.ErrPermissionExists)

	repo.EXPECT().PermissionExist(gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().CreatePermission(gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.CreatePermission(context.Background(), dto.CreatePermissionRequest{Code: "booking.write"})
	assert.NoError(t, err)
	assert.Equal(t, "booking.write", res.Code)
}
