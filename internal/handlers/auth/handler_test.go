package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tourism/config"
	"tourism/infras/jwt"
	otelMocks "tourism/infras/otel/mocks"
	"tourism/internal/domains/auth/service"
	userMocks "tourism/internal/domains/user/mocks"
	userModel "tourism/internal/domains/user/model"
	"tourism/internal/handlers/auth"
	"tourism/shared/constant"
	"tourism/shared/password"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "tourism-auth"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return cfg
}

func TestLogin(t *testing.T) {
	hash, err := password.Hash("correct-horse")
	require.NoError(t, err)

	account := userModel.Account{
		User: userModel.User{
			ID:       "2b5f0c7e-9a41-4d8e-b3c2-7f6a5e4d3c2b",
			Email:    "admin@example.com",
			UserType: constant.UserTypePortalAdmin,
			IsActive: true,
		},
		PasswordHash: hash,
	}

	tests := []struct {
		name      string
		body      string
		setupMock func(repo *userMocks.MockUser)
		wantCode  int
	}{
		{
			name: "issues a verifiable token pair",
			body: `{"email":"admin@example.com","password":"correct-horse"}`,
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().GetAccount(gomock.Any(), gomock.Any()).Return(account, nil)
				repo.EXPECT().UpdateCredential(gomock.Any(), account.ID, gomock.Any()).Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "wrong password",
			body: `{"email":"admin@example.com","password":"battery-staple"}`,
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().GetAccount(gomock.Any(), gomock.Any()).Return(account, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid email",
			body:     `{"email":"admin","password":"correct-horse"}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := userMocks.NewMockUser(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			cfg := newConfig()
			tokens := jwt.New(cfg)
			otel := otelMocks.NewOtel()
			handler := auth.New(service.New(repo, cfg, otel, tokens), otel)

			router := chi.NewRouter()
			router.Route("/api/v1", handler.Router)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/login/access-token", strings.NewReader(tt.body))
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode != http.StatusOK {
				return
			}

			var body struct {
				Data struct {
					AccessToken string `json:"access_token"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

			claims, err := tokens.ValidateToken(body.Data.AccessToken, jwt.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, account.ID, claims.Subject)
			assert.Equal(t, constant.UserTypePortalAdmin, claims.UserType)
		})
	}
}
