package jwt_test

import (
	"testing"
	"time"

	jwtGo "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/config"
	"tourism/infras/jwt"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "tourism"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return cfg
}

func TestGenerateAndValidate(t *testing.T) {
	svc := jwt.New(newConfig())

	pair, err := svc.GenerateTokenPair(jwt.Subject{UserID: "user-1", Email: "a@b.c", UserType: "PORTAL_ADMIN"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", pair.TokenType)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	claims, err := svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "PORTAL_ADMIN", claims.UserType)

	_, err = svc.ValidateToken(pair.RefreshToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken(pair.AccessToken+"x", jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateToken_SharedSecretAcrossServices(t *testing.T) {
	issuer := jwt.New(newConfig())

	downstreamCfg := newConfig()
	downstreamCfg.App.Name = "inventory"
	downstream := jwt.New(downstreamCfg)

	pair, err := issuer.GenerateTokenPair(jwt.Subject{UserID: "user-2"})
	require.NoError(t, err)

	claims, err := downstream.ValidateToken(pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-2", claims.Subject)
}

func TestValidateToken_Expired(t *testing.T) {
	claims := jwt.Claims{
		Type: jwt.AccessToken,
		RegisteredClaims: jwtGo.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwtGo.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}

	token, err := jwtGo.NewWithClaims(jwtGo.SigningMethodHS256, claims).SignedString([]byte("access-secret"))
	require.NoError(t, err)

	_, err = jwt.New(newConfig()).ValidateToken(token, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateToken_MissingSubject(t *testing.T) {
	claims := jwt.Claims{
		Type: jwt.AccessToken,
		RegisteredClaims: jwtGo.RegisteredClaims{
			ExpiresAt: jwtGo.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}

	token, err := jwtGo.NewWithClaims(jwtGo.SigningMethodHS256, claims).SignedString([]byte("access-secret"))
	require.NoError(t, err)

	_, err = jwt.New(newConfig()).ValidateToken(token, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	svc := jwt.New(newConfig())

	pair, err := svc.GenerateTokenPair(jwt.Subject{UserID: "user-3", UserType: "PARTNER_USER"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(pair.RefreshToken, jwt.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-3", claims.Subject)
	assert.Equal(t, "PARTNER_USER", claims.UserType)

	_, err = svc.ValidateToken(pair.RefreshToken, jwt.AccessToken)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer token", header: "Bearer abc.def", want: "abc.def"},
		{name: "missing header", header: "", wantErr: jwt.ErrMissingHeader},
		{name: "wrong scheme", header: "Basic abc", wantErr: jwt.ErrInvalidScheme},
		{name: "empty token", header: "Bearer  ", wantErr: jwt.ErrMissingHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jwt.ExtractTokenFromHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
