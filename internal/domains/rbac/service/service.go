package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"tourism/config"
	"tourism/infras/otel"
	"tourism/internal/domains/rbac/model"
	"tourism/internal/domains/rbac/model/dto"
	"tourism/internal/domains/rbac/repository"
	"tourism/shared"
	"tourism/shared/cache"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	gRepo "tourism/shared/repository"
)

const (
	cacheGetRoles       = "rbac:roles"
	cacheGetPermissions = "rbac:permissions"
)

type RBAC interface {
	GetRoles(ctx context.Context, req gDto.QueryParams) (dto.GetRolesResponse, error)
	CreateRole(ctx context.Context, req dto.CreateRoleRequest) (dto.RoleResponse, error)
	GetPermissions(ctx context.Context, req gDto.QueryParams) (dto.GetPermissionsResponse, error)
	CreatePermission(ctx context.Context, req dto.CreatePermissionRequest) (dto.PermissionResponse, error)
}

type serviceImpl struct {
	repo  repository.RBAC
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.RBAC, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) RBAC {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetRoles(ctx context.Context, req gDto.QueryParams) (res dto.GetRolesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rbac.GetRoles")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetRoles, req, gDto.FilterGroup{})

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.CountRoles(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count roles")

		return res, fmt.Errorf("failed to count roles: %w", err)
	}

	roles, err := s.repo.GetRoles(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to get roles")

		return res, fmt.Errorf("failed to get roles: %w", err)
	}

	ids := make([]string, len(roles))
	for i, role := range roles {
		ids[i] = role.ID
	}

	links, err := s.repo.RolePermissions(ctx, ids)
	if err != nil {
		log.Error().Err(err).Msg("failed to get role permissions")

		return res, fmt.Errorf("failed to get role permissions: %w", err)
	}

	res.FromModels(roles, links, total, req.Limit)

	go s.save(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

func (s *serviceImpl) CreateRole(ctx context.Context, req dto.CreateRoleRequest) (res dto.RoleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rbac.CreateRole")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.repo.RoleExist(ctx, gDto.NewFilterGroup(gDto.FilterEq(model.RoleTableName, model.FieldName, req.Name)))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if role exists")

		return res, fmt.Errorf("failed to check if role exists: %w", err)
	}

	if exists {
		return res, model.ErrRoleExists
	}

	role := req.ToModel(shared.UserFromContext(ctx))

	if err = s.repo.CreateRole(ctx, role, req.PermissionIDs); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, model.ErrRoleExists
		}

		log.Error().Err(err).Msg("failed to create role")

		return res, fmt.Errorf("failed to create role: %w", err)
	}

	// unknown permission ids are skipped by the insert, so read back what was linked
	links, err := s.repo.RolePermissions(ctx, []string{role.ID})
	if err != nil {
		log.Error().Err(err).Msg("failed to get role permissions")

		return res, fmt.Errorf("failed to get role permissions: %w", err)
	}

	res.FromModel(role, links[role.ID])

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetRoles)

	return res, nil
}

func (s *serviceImpl) GetPermissions(ctx context.Context, req gDto.QueryParams) (res dto.GetPermissionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rbac.GetPermissions")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetPermissions, req, gDto.FilterGroup{})

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.CountPermissions(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count permissions")

		return res, fmt.Errorf("failed to count permissions: %w", err)
	}

	permissions, err := s.repo.GetPermissions(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to get permissions")

		return res, fmt.Errorf("failed to get permissions: %w", err)
	}

	res.FromModels(permissions, total, req.Limit)

	go s.save(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

func (s *serviceImpl) CreatePermission(ctx context.Context, req dto.CreatePermissionRequest) (res dto.PermissionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rbac.CreatePermission")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.repo.PermissionExist(ctx, gDto.NewFilterGroup(gDto.FilterEq(model.PermissionTableName, model.FieldCode, req.Code)))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if permission exists")

		return res, fmt.Errorf("failed to check if permission exists: %w", err)
	}

	if exists {
		return res, model.ErrPermissionExists
	}

	permission := req.ToModel(shared.UserFromContext(ctx))

	if err = s.repo.CreatePermission(ctx, permission); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, model.ErrPermissionExists
		}

		log.Error().Err(err).Msg("failed to create permission")

		return res, fmt.Errorf("failed to create permission: %w", err)
	}

	res.FromModel(permission)

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetPermissions)

	return res, nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save rbac listing to cache")
	}
}
