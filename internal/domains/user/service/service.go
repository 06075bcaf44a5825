package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"tourism/config"
	"tourism/infras/otel"
	"tourism/internal/domains/user/model"
	"tourism/internal/domains/user/model/dto"
	"tourism/internal/domains/user/repository"
	"tourism/shared"
	"tourism/shared/cache"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	"tourism/shared/failure"
	"tourism/shared/password"
	gRepo "tourism/shared/repository"
	"tourism/shared/timezone"
)

const (
	cacheGetUser    = "user:get"
	cacheGetAllUser = "user:gets"
	cacheCountUser  = "user:count"
)

type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	// Me returns the user behind the authenticated subject.
	Me(ctx context.Context) (dto.UserResponse, error)
	Update(ctx context.Context, req dto.UpdateUserRequest, id string) (dto.UserResponse, error)
	Delete(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) (dto.UserResponse, error)
	Verify(ctx context.Context, id string) (dto.UserResponse, error)
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest, id string) error
	Lock(ctx context.Context, id string) error
	Unlock(ctx context.Context, id string) error
	AssignRole(ctx context.Context, id, roleID string) (dto.UserResponse, error)
	RemoveRole(ctx context.Context, id, roleID string) (dto.UserResponse, error)
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.repo.Exist(ctx, gDto.NewFilterGroup(gDto.FilterEq(model.TableName, model.FieldEmail, req.Email)))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, model.ErrEmailTaken
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user, credential := req.ToModel(shared.UserFromContext(ctx), hash)

	if err = s.repo.CreateWithCredential(ctx, user, credential); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, model.ErrEmailTaken
		}

		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	res.FromModel(user, nil)

	go s.invalidate(context.WithoutCancel(ctx), "")

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllUser, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for users")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save users to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountUser, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return res, fmt.Errorf("failed to count users: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save user count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetUser, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for user")

		return res, nil
	}

	res, err = s.load(ctx, id)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save user to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Me(ctx context.Context) (res dto.UserResponse, err error) {
	subject, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if subject == "" {
		return res, failure.InvalidCredentials
	}

	return s.Get(ctx, subject)
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateUserRequest, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	if _, err = s.load(ctx, id); err != nil {
		return res, err
	}

	fields := shared.TransformFields(req, shared.UserFromContext(ctx))
	if shared.HasChanges(fields) {
		if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to update user")

			return res, fmt.Errorf("failed to update user: %w", err)
		}
	}

	if req.Password != nil {
		if err = s.setPassword(ctx, id, *req.Password); err != nil {
			return res, err
		}
	}

	return s.reload(ctx, id)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.load(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete user")

		return fmt.Errorf("failed to delete user: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

func (s *serviceImpl) Activate(ctx context.Context, id string) (dto.UserResponse, error) {
	return s.setFlag(ctx, id, model.FieldIsActive)
}

func (s *serviceImpl) Verify(ctx context.Context, id string) (dto.UserResponse, error) {
	return s.setFlag(ctx, id, model.FieldIsVerified)
}

func (s *serviceImpl) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.ResetPassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.load(ctx, id); err != nil {
		return err
	}

	return s.setPassword(ctx, id, req.NewPassword)
}

func (s *serviceImpl) Lock(ctx context.Context, id string) error {
	return s.setLocked(ctx, id, true)
}

func (s *serviceImpl) Unlock(ctx context.Context, id string) error {
	return s.setLocked(ctx, id, false)
}

func (s *serviceImpl) AssignRole(ctx context.Context, id, roleID string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.AssignRole")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.checkUserAndRole(ctx, id, roleID); err != nil {
		return res, err
	}

	if err = s.repo.AddRole(ctx, id, roleID); err != nil {
		log.Error().Err(err).Msg("failed to assign role")

		return res, fmt.Errorf("failed to assign role: %w", err)
	}

	return s.reload(ctx, id)
}

func (s *serviceImpl) RemoveRole(ctx context.Context, id, roleID string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.RemoveRole")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.checkUserAndRole(ctx, id, roleID); err != nil {
		return res, err
	}

	if err = s.repo.RemoveRole(ctx, id, roleID); err != nil {
		log.Error().Err(err).Msg("failed to remove role")

		return res, fmt.Errorf("failed to remove role: %w", err)
	}

	return s.reload(ctx, id)
}

func (s *serviceImpl) checkUserAndRole(ctx context.Context, id, roleID string) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}

	exist, err := s.repo.RoleExist(ctx, roleID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check role")

		return fmt.Errorf("failed to check role: %w", err)
	}

	if !exist {
		return model.ErrRoleNotFound
	}

	return nil
}

func (s *serviceImpl) setFlag(ctx context.Context, id, field string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.setFlag")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.load(ctx, id); err != nil {
		return res, err
	}

	fields := map[string]any{
		field:                    true,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: shared.UserFromContext(ctx),
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("field", field).Msg("failed to update user flag")

		return res, fmt.Errorf("failed to update user flag: %w", err)
	}

	return s.reload(ctx, id)
}

func (s *serviceImpl) setLocked(ctx context.Context, id string, locked bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.setLocked")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.load(ctx, id); err != nil {
		return err
	}

	if err = s.repo.UpdateCredential(ctx, id, map[string]any{model.FieldIsLocked: locked}); err != nil {
		log.Error().Err(err).Bool("locked", locked).Msg("failed to update credential lock")

		return fmt.Errorf("failed to update credential lock: %w", err)
	}

	return nil
}

func (s *serviceImpl) setPassword(ctx context.Context, id, plain string) error {
	hash, err := password.Hash(plain)
	if err != nil {
		if errors.Is(err, password.ErrEmptyPassword) {
			return failure.BadRequest(err)
		}

		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.repo.SetPassword(ctx, id, hash); err != nil {
		log.Error().Err(err).Msg("failed to set password")

		return fmt.Errorf("failed to set password: %w", err)
	}

	return nil
}

// reload reads the user after a write and drops its cached views.
func (s *serviceImpl) reload(ctx context.Context, id string) (dto.UserResponse, error) {
	res, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return res, nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (res dto.UserResponse, err error) {
	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return res, model.ErrNotFound
	}

	roles, err := s.repo.Roles(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user roles")

		return res, fmt.Errorf("failed to get user roles: %w", err)
	}

	res.FromModel(user, roles)

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if id != "" {
		if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetUser, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete user from cache")
		}
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllUser)
	shared.InvalidateCaches(ctx, s.cache, cacheCountUser)
}
