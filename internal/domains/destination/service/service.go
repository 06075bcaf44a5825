package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"tourism/config"
	"tourism/infras/otel"
	"tourism/internal/domains/destination/model"
	"tourism/internal/domains/destination/model/dto"
	"tourism/internal/domains/destination/repository"
	"tourism/shared"
	"tourism/shared/cache"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	gRepo "tourism/shared/repository"
	"tourism/shared/search"
)

const (
	cacheGetDestination     = "destination:get"
	cacheGetAllDestination  = "destination:gets"
	cacheCountDestination   = "destination:count"
	cacheSuggestDestination = "destination:suggest"
)

type Destination interface {
	Create(ctx context.Context, req dto.CreateDestinationRequest) (dto.DestinationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDestinationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	GetBySlug(ctx context.Context, slug string) (dto.DestinationResponse, error)
	Update(ctx context.Context, req dto.UpdateDestinationRequest, id string) (dto.DestinationResponse, error)
	Delete(ctx context.Context, id string) error
	// Suggest ranks active destination names against a possibly misspelled query.
	Suggest(ctx context.Context, req dto.SuggestRequest) (dto.SuggestResponse, error)
}

type serviceImpl struct {
	repo  repository.Destination
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Destination, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Destination {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateDestinationRequest) (res dto.DestinationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".destination.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	aggregate := req.ToModel(shared.UserFromContext(ctx))
	if aggregate.Slug == constant.Empty {
		return res, model.ErrEmptySlug
	}

	exist, err := s.repo.Exist(ctx, gDto.NewFilterGroup(gDto.FilterEq(model.TableName, model.FieldSlug, aggregate.Slug)))
	if err != nil {
		log.Error().Err(err).Msg("failed to check destination slug")

		return res, fmt.Errorf("failed to check destination slug: %w", err)
	}

	if exist {
		return res, model.ErrSlugExists
	}

	if err = s.repo.CreateAggregate(ctx, aggregate); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, model.ErrSlugExists
		}

		log.Error().Err(err).Msg("failed to create destination")

		return res, fmt.Errorf("failed to create destination: %w", err)
	}

	res.FromModel(aggregate.Destination, aggregate.Images)

	go s.invalidate(context.WithoutCancel(ctx))

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDestinationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".destination.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllDestination, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for destinations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get destinations")

		return res, fmt.Errorf("failed to get destinations: %w", err)
	}

	ids := make([]string, len(models))
	for i, mod := range models {
		ids[i] = mod.ID
	}

	images, err := s.repo.GetImages(ctx, ids)
	if err != nil {
		log.Error().Err(err).Msg("failed to get destination images")

		return res, fmt.Errorf("failed to get destination images: %w", err)
	}

	res.FromModels(models, images, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save destinations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".destination.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountDestination, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count destinations")

		return res, fmt.Errorf("failed to count destinations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save destination count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetBySlug(ctx context.Context, slug string) (res dto.DestinationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".destination.GetBySlug")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetDestination, slug)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for destination")

		return res, nil
	}

	destination, err := s.load(ctx, gDto.NewFilterGroup(gDto.FilterEq(model.TableName, model.FieldSlug, slug)))
	if err != nil {
		return res, err
	}

	if res, err = s.render(ctx, destination); err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save destination to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateDestinationRequest, id string) (res dto.DestinationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".destination.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.load(ctx, filter)
	if err != nil {
		return res, err
	}

	if req.Slug != nil && *req.Slug != current.Slug {
		taken, err := s.repo.Exist(ctx, gDto.NewFilterGroup(gDto.FilterEq(model.TableName, model.FieldSlug, *req.Slug)))
		if err != nil {
			log.Error().Err(err).Msg("failed to check destination slug")

			return res, fmt.Errorf("failed to check destination slug: %w", err)
		}

		if taken {
			return res, model.ErrSlugExists
		}
	}

	fields := shared.TransformFields(req, shared.UserFromContext(ctx))
	if shared.HasChanges(fields) {
		if err = s.repo.Update(ctx, fields, filter); err != nil {
			if gRepo.IsUniqueViolation(err) {
				return res, model.ErrSlugExists
			}

			log.Error().Err(err).Msg("failed to update destination")

			return res, fmt.Errorf("failed to update destination: %w", err)
		}
	}

	updated, err := s.load(ctx, filter)
	if err != nil {
		return res, err
	}

	if res, err = s.render(ctx, updated); err != nil {
		return res, err
	}

	go s.invalidate(context.WithoutCancel(ctx))

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".destination.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if destination exists")

		return fmt.Errorf("failed to check if destination exists: %w", err)
	}

	if !exist {
		return model.ErrNotFound
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete destination")

		return fmt.Errorf("failed to delete destination: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx))

	return nil
}

func (s *serviceImpl) Suggest(ctx context.Context, req dto.SuggestRequest) (res dto.SuggestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".destination.Suggest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	limit := req.Limit
	if limit <= 0 {
		limit = model.DefaultSuggestLimit
	}

	query := search.Normalize(req.Query)
	cacheKey := shared.BuildCacheKey(cacheSuggestDestination, strconv.Itoa(limit), query)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	active := gDto.NewFilterGroup(gDto.FilterEq(model.TableName, model.FieldIsActive, true))

	destinations, err := s.repo.GetAll(ctx, gDto.QueryParams{}, active, model.FieldName)
	if err != nil {
		log.Error().Err(err).Msg("failed to get destination names")

		return res, fmt.Errorf("failed to get destination names: %w", err)
	}

	names := make([]string, len(destinations))
	for i, destination := range destinations {
		names[i] = destination.Name
	}

	res.Query = req.Query
	res.Suggestions = search.Rank(req.Query, names, limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save destination suggestions to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) load(ctx context.Context, filter gDto.FilterGroup) (model.Destination, error) {
	destination, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get destination")

		return destination, fmt.Errorf("failed to get destination: %w", err)
	}

	if destination.ID == constant.Empty {
		return destination, model.ErrNotFound
	}

	return destination, nil
}

func (s *serviceImpl) render(ctx context.Context, destination model.Destination) (res dto.DestinationResponse, err error) {
	images, err := s.repo.GetImages(ctx, []string{destination.ID})
	if err != nil {
		log.Error().Err(err).Msg("failed to get destination images")

		return res, fmt.Errorf("failed to get destination images: %w", err)
	}

	res.FromModel(destination, images)

	return res, nil
}

// invalidate drops every destination key; entries are cached by slug, so a single id cannot be targeted.
func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetDestination)
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllDestination)
	shared.InvalidateCaches(ctx, s.cache, cacheCountDestination)
	shared.InvalidateCaches(ctx, s.cache, cacheSuggestDestination)
}
