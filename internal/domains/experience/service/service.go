package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"tourism/config"
	"tourism/infras/otel"
	"tourism/internal/domains/experience/model"
	"tourism/internal/domains/experience/model/dto"
	"tourism/internal/domains/experience/repository"
	"tourism/shared"
	"tourism/shared/cache"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	gRepo "tourism/shared/repository"
)

const (
	cacheGetExperience    = "experience:get"
	cacheGetAllExperience = "experience:gets"
	cacheCountExperience  = "experience:count"
)

type Experience interface {
	Create(ctx context.Context, req dto.CreateExperienceRequest) (dto.ExperienceResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetExperiencesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ExperienceResponse, error)
	Update(ctx context.Context, req dto.UpdateExperienceRequest, id string) (dto.ExperienceResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Experience
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Experience, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Experience {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateExperienceRequest) (res dto.ExperienceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".experience.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	experience := req.ToModel(shared.UserFromContext(ctx))
	if experience.Slug == constant.Empty {
		return res, model.ErrEmptySlug
	}

	if err = s.checkSlug(ctx, experience.Slug); err != nil {
		return res, err
	}

	if err = s.repo.CreateAggregate(ctx, experience, req.DestinationIDs); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, model.ErrSlugExists
		}

		log.Error().Err(err).Msg("failed to create experience")

		return res, fmt.Errorf("failed to create experience: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), constant.Empty)

	return s.render(ctx, experience)
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetExperiencesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".experience.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllExperience, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for experiences")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get experiences")

		return res, fmt.Errorf("failed to get experiences: %w", err)
	}

	ids := make([]string, len(models))
	for i, mod := range models {
		ids[i] = mod.ID
	}

	links, err := s.repo.DestinationIDs(ctx, ids)
	if err != nil {
		log.Error().Err(err).Msg("failed to get experience destinations")

		return res, fmt.Errorf("failed to get experience destinations: %w", err)
	}

	res.FromModels(models, links, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save experiences to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".experience.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountExperience, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count experiences")

		return res, fmt.Errorf("failed to count experiences: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save experience count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ExperienceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".experience.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetExperience, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for experience")

		return res, nil
	}

	experience, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if res, err = s.render(ctx, experience); err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save experience to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateExperienceRequest, id string) (res dto.ExperienceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".experience.Update")
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
	if shared.HasChanges(fields) || req.DestinationIDs != nil {
		if err = s.repo.UpdateAggregate(ctx, id, fields, req.DestinationIDs); err != nil {
			if gRepo.IsUniqueViolation(err) {
				return res, model.ErrSlugExists
			}

			log.Error().Err(err).Msg("failed to update experience")

			return res, fmt.Errorf("failed to update experience: %w", err)
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
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".experience.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if experience exists")

		return fmt.Errorf("failed to check if experience exists: %w", err)
	}

	if !exist {
		return model.ErrNotFound
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete experience")

		return fmt.Errorf("failed to delete experience: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

func (s *serviceImpl) checkSlug(ctx context.Context, slug string) error {
	taken, err := s.repo.Exist(ctx, gDto.NewFilterGroup(gDto.FilterEq(model.TableName, model.FieldSlug, slug)))
	if err != nil {
		log.Error().Err(err).Msg("failed to check experience slug")

		return fmt.Errorf("failed to check experience slug: %w", err)
	}

	if taken {
		return model.ErrSlugExists
	}

	return nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Experience, error) {
	experience, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get experience")

		return experience, fmt.Errorf("failed to get experience: %w", err)
	}

	if experience.ID == constant.Empty {
		return experience, model.ErrNotFound
	}

	return experience, nil
}

// render reads the stored links back, so ids that matched no destination are not echoed.
func (s *serviceImpl) render(ctx context.Context, experience model.Experience) (res dto.ExperienceResponse, err error) {
	links, err := s.repo.DestinationIDs(ctx, []string{experience.ID})
	if err != nil {
		log.Error().Err(err).Msg("failed to get experience destinations")

		return res, fmt.Errorf("failed to get experience destinations: %w", err)
	}

	res.FromModel(experience, links[experience.ID])

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if id != constant.Empty {
		if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetExperience, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete experience from cache")
		}
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllExperience)
	shared.InvalidateCaches(ctx, s.cache, cacheCountExperience)
}
