package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	jwtGo "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tourism/config"
	"tourism/infras/jwt"
	jwtMocks "tourism/infras/jwt/mocks"
	"tourism/infras/otel/mocks"
	"tourism/internal/domains/auth/model/dto"
	"tourism/internal/domains/auth/service"
	userMocks "tourism/internal/domains/user/mocks"
	userModel "tourism/internal/domains/user/model"
	"tourism/shared/constant"
	"tourism/shared/failure"
	"tourism/shared/password"
)

const accountID = "c0ffee00-1111-4222-8333-444455556666"

func newAccount(t *testing.T) userModel.Account {
	t.Helper()

	hash, err := password.Hash("password")
	require.NoError(t, err)

	return userModel.Account{
		User: userModel.User{
			ID:         accountID,
			FullName:   "Test User",
			Email:      "test@example.com",
			UserType:   constant.UserTypePortalAdmin,
			IsActive:   true,
			IsVerified: true,
		},
		PasswordHash: hash,
	}
}

func TestAuthService_Login(t *testing.T) {
	account := newAccount(t)
	tokens := &jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token", TokenType: "bearer"}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(repo *userMocks.MockUser, jwtSvc *jwtMocks.MockJWT)
		wantCode  int
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setupMock: func(repo *userMocks.MockUser, jwtSvc *jwtMocks.MockJWT) {
				repo.EXPECT().GetAccount(gomock.Any(), gomock.Any()).Return(account, nil)
				jwtSvc.EXPECT().
					GenerateTokenPair(jwt.Subject{UserID: accountID, Email: account.Email, UserType: constant.UserTypePortalAdmin}).
					Return(tokens, nil)
				repo.EXPECT().UpdateCredential(gomock.Any(), accountID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, fields map[string]any) error {
						assert.Contains(t, fields, userModel.FieldLastLogin)
						assert.NotContains(t, fields, constant.FieldModifiedBy)

						return nil
					})
			},
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "nobody@example.com", Password: "password"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				repo.EXPECT().GetAccount(gomock.Any(), gomock.Any()).Return(userModel.Account{}, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "wrongpassword"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				repo.EXPECT().GetAccount(gomock.Any(), gomock.Any()).Return(account, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "inactive user",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				inactive := account
				inactive.IsActive = false

				repo.EXPECT().GetAccount(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "locked user",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				locked := account
				locked.IsLocked = true

				repo.EXPECT().GetAccount(gomock.Any(), gomock.Any()).Return(locked, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository failure",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				repo.EXPECT().GetAccount(gomock.Any(), gomock.Any()).Return(userModel.Account{}, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := userMocks.NewMockUser(ctrl)
			jwtSvc := jwtMocks.NewMockJWT(ctrl)
			tt.setupMock(repo, jwtSvc)

			svc := service.New(repo, &config.Config{}, mocks.NewOtel(), jwtSvc)

			res, err := svc.Login(context.Background(), tt.req)
			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, "refresh-token", res.RefreshToken)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	account := newAccount(t)
	claims := &jwt.Claims{Type: jwt.RefreshToken, RegisteredClaims: jwtGo.RegisteredClaims{Subject: accountID}}

	tests := []struct {
		name      string
		setupMock func(repo *userMocks.MockUser, jwtSvc *jwtMocks.MockJWT)
		wantCode  int
	}{
		{
			name: "fresh pair for active user",
			setupMock: func(repo *userMocks.MockUser, jwtSvc *jwtMocks.MockJWT) {
				jwtSvc.EXPECT().ValidateToken("refresh", jwt.RefreshToken).Return(claims, nil)
				repo.EXPECT().GetAccount(gomock.Any(), gomock.Any()).Return(account, nil)
				jwtSvc.EXPECT().GenerateTokenPair(gomock.Any()).Return(&jwt.TokenPair{AccessToken: "new-access"}, nil)
			},
		},
		{
			name: "invalid token",
			setupMock: func(_ *userMocks.MockUser, jwtSvc *jwtMocks.MockJWT) {
				jwtSvc.EXPECT().ValidateToken("refresh", jwt.RefreshToken).Return(nil, jwt.ErrInvalidToken)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "deleted user",
			setupMock: func(repo *userMocks.MockUser, jwtSvc *jwtMocks.MockJWT) {
				jwtSvc.EXPECT().ValidateToken("refresh", jwt.RefreshToken).Return(claims, nil)
				repo.EXPECT().GetAccount(gomock.Any(), gomock.Any()).Return(userModel.Account{}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "locked since issue",
			setupMock: func(repo *userMocks.MockUser, jwtSvc *jwtMocks.MockJWT) {
				locked := account
				locked.IsLocked = true

				jwtSvc.EXPECT().ValidateToken("refresh", jwt.RefreshToken).Return(claims, nil)
				repo.EXPECT().GetAccount(gomock.Any(), gomock.Any()).Return(locked, nil)
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := userMocks.NewMockUser(ctrl)
			jwtSvc := jwtMocks.NewMockJWT(ctrl)
			tt.setupMock(repo, jwtSvc)

			svc := service.New(repo, &config.Config{}, mocks.NewOtel(), jwtSvc)

			res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh"})
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "new-access", res.AccessToken)
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	account := newAccount(t)
	subject := context.WithValue(context.Background(), constant.ContextKeyUserID, accountID)

	t.Run("requires subject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := service.New(userMocks.NewMockUser(ctrl), &config.Config{}, mocks.NewOtel(), jwtMocks.NewMockJWT(ctrl))

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "new-password"})
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("wrong current password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMocks.NewMockUser(ctrl)
		repo.EXPECT().GetAccount(gomock.Any(), gomock.Any()).Return(account, nil)

		svc := service.New(repo, &config.Config{}, mocks.NewOtel(), jwtMocks.NewMockJWT(ctrl))

		err := svc.ChangePassword(subject, dto.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "new-password"})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("stores new hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMocks.NewMockUser(ctrl)
		repo.EXPECT().GetAccount(gomock.Any(), gomock.Any()).Return(account, nil)
		repo.EXPECT().SetPassword(gomock.Any(), accountID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, hash string) error {
				assert.NoError(t, password.Verify("new-password", hash))

				return nil
			})

		svc := service.New(repo, &config.Config{}, mocks.NewOtel(), jwtMocks.NewMockJWT(ctrl))

		assert.NoError(t, svc.ChangePassword(subject, dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "new-password"}))
	})
}
