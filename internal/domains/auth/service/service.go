package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"tourism/config"
	"tourism/infras/jwt"
	"tourism/infras/otel"
	"tourism/internal/domains/auth/model/dto"
	userModel "tourism/internal/domains/user/model"
	userRepo "tourism/internal/domains/user/repository"
	"tourism/shared"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	"tourism/shared/failure"
	"tourism/shared/password"
	"tourism/shared/timezone"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.TokenResponse, error)
	// ChangePassword replaces the password of the authenticated subject after checking the current one.
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	account, err := s.userRepo.GetAccount(ctx, gDto.NewFilterGroup(gDto.FilterEq(userModel.TableName, userModel.FieldEmail, req.Email)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get account")

		return res, fmt.Errorf("failed to get account: %w", err)
	}

	if account.ID == "" {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, userModel.ErrWrongPassword
	}

	if err := password.Verify(req.Password, account.PasswordHash); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, userModel.ErrWrongPassword
	}

	if err = usable(account); err != nil {
		return res, err
	}

	tokenPair, err := s.issue(account)
	if err != nil {
		return res, err
	}

	lastLogin := dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}
	fields := shared.TransformFields(lastLogin, account.ID)

	// user_credentials carries no modification stamp
	delete(fields, constant.FieldModifiedAt)
	delete(fields, constant.FieldModifiedBy)

	if password.NeedsRehash(account.PasswordHash) {
		if hash, err := password.Hash(req.Password); err == nil {
			fields[userModel.FieldPasswordHash] = hash
		}
	}

	if err := s.userRepo.UpdateCredential(ctx, account.ID, fields); err != nil {
		log.Warn().Err(err).Str("user_id", account.ID).Msg("failed to update last login")

		return res, fmt.Errorf("failed to update last login: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwtService.ValidateToken(req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to validate refresh token")

		return res, failure.InvalidCredentials
	}

	account, err := s.userRepo.GetAccount(ctx, shared.FilterByID(claims.Subject, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get account")

		return res, fmt.Errorf("failed to get account: %w", err)
	}

	if account.ID == "" {
		return res, failure.InvalidCredentials
	}

	if err = usable(account); err != nil {
		return res, err
	}

	tokenPair, err := s.issue(account)
	if err != nil {
		return res, err
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	subject, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if subject == "" {
		return failure.InvalidCredentials
	}

	account, err := s.userRepo.GetAccount(ctx, shared.FilterByID(subject, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get account")

		return fmt.Errorf("failed to get account: %w", err)
	}

	if account.ID == "" {
		return userModel.ErrNotFound
	}

	if err := password.Verify(req.CurrentPassword, account.PasswordHash); err != nil {
		return failure.BadRequestFromString("current password is incorrect")
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err = s.userRepo.SetPassword(ctx, account.ID, hash); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (s *serviceImpl) issue(account userModel.Account) (*jwt.TokenPair, error) {
	tokenPair, err := s.jwtService.GenerateTokenPair(jwt.Subject{
		UserID:   account.ID,
		Email:    account.Email,
		UserType: account.UserType,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return tokenPair, nil
}

func usable(account userModel.Account) error {
	if account.IsLocked {
		return userModel.ErrLocked
	}

	if !account.IsActive {
		return userModel.ErrInactive
	}

	return nil
}
