package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"tourism/config"
	"tourism/infras/otel"
	"tourism/internal/domains/tourpackage/model"
	"tourism/internal/domains/tourpackage/model/dto"
	"tourism/internal/domains/tourpackage/repository"
	"tourism/shared"
	"tourism/shared/cache"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	gRepo "tourism/shared/repository"
)

const (
	cacheGetPackage    = "package:get"
	cacheGetAllPackage = "package:gets"
	cacheCountPackage  = "package:count"
)

type Package interface {
	Create(ctx context.Context, req dto.CreatePackageRequest) (dto.PackageResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPackagesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.PackageResponse, error)
	Update(ctx context.Context, req dto.UpdatePackageRequest, id string) (dto.PackageResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Package
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Package, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Package {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePackageRequest) (res dto.PackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".package.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pkg := req.ToModel(shared.UserFromContext(ctx))
	if pkg.Slug == constant.Empty {
		return res, model.ErrEmptySlug
	}

	if err = s.checkSlug(ctx, pkg.Slug); err != nil {
		return res, err
	}

	if err = s.repo.CreateAggregate(ctx, pkg, req.Links()); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, model.ErrSlugExists
		}

		log.Error().Err(err).Msg("failed to create package")

		return res, fmt.Errorf("failed to create package: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), constant.Empty)

	return s.render(ctx, pkg)
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPackagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".package.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPackage, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for packages")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get packages")

		return res, fmt.Errorf("failed to get packages: %w", err)
	}

	ids := make([]string, len(models))
	for i, mod := range models {
		ids[i] = mod.ID
	}

	links, err := s.repo.Links(ctx, ids)
	if err != nil {
		log.Error().Err(err).Msg("failed to get package links")

		return res, fmt.Errorf("failed to get package links: %w", err)
	}

	res.FromModels(models, links, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save packages to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".package.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountPackage, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count packages")

		return res, fmt.Errorf("failed to count packages: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save package count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".package.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetPackage, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for package")

		return res, nil
	}

	pkg, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if res, err = s.render(ctx, pkg); err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save package to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePackageRequest, id string) (res dto.PackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".package.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if req.Slug != nil && *req.Slug != current.Slug {
		if err = s.checkSlug(ctx, *req.Slug); err != nil {
			return res, err
		}
	}

	fields := shared.TransformFields(req, shared.UserFromContext(ctx))
	if patch := req.Links(); shared.HasChanges(fields) || !patch.IsEmpty() {
		if err = s.repo.UpdateAggregate(ctx, id, fields, patch); err != nil {
			if gRepo.IsUniqueViolation(err) {
				return res, model.ErrSlugExists
			}

			log.Error().Err(err).Msg("failed to update package")

			return res, fmt.Errorf("failed to update package: %w", err)
		}
	}

	updated, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return s.render(ctx, updated)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".package.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if package exists")

		return fmt.Errorf("failed to check if package exists: %w", err)
	}

	if !exist {
		return model.ErrNotFound
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete package")

		return fmt.Errorf("failed to delete package: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

func (s *serviceImpl) checkSlug(ctx context.Context, slug string) error {
	taken, err := s.repo.Exist(ctx, gDto.NewFilterGroup(gDto.FilterEq(model.TableName, model.FieldSlug, slug)))
	if err != nil {
		log.Error().Err(err).Msg("failed to check package slug")

		return fmt.Errorf("failed to check package slug: %w", err)
	}

	if taken {
		return model.ErrSlugExists
	}

	return nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Package, error) {
	pkg, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get package")

		return pkg, fmt.Errorf("failed to get package: %w", err)
	}

	if pkg.ID == constant.Empty {
		return pkg, model.ErrNotFound
	}

	return pkg, nil
}

// render reads the stored links back, so unknown ids dropped on write are not echoed.
func (s *serviceImpl) render(ctx context.Context, pkg model.Package) (res dto.PackageResponse, err error) {
	links, err := s.repo.Links(ctx, []string{pkg.ID})
	if err != nil {
		log.Error().Err(err).Msg("failed to get package links")

		return res, fmt.Errorf("failed to get package links: %w", err)
	}

	res.FromModel(pkg, links[pkg.ID])

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if id != constant.Empty {
		if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetPackage, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete package from cache")
		}
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllPackage)
	shared.InvalidateCaches(ctx, s.cache, cacheCountPackage)
}
