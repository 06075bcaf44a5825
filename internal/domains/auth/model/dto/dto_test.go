package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tourism/infras/jwt"
	"tourism/internal/domains/auth/model/dto"
	"tourism/shared"
	"tourism/shared/timezone"
	"tourism/shared/validator"
)

func TestTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	var response dto.TokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, int64(900), response.ExpiresIn)
}

func TestUpdateLastLoginRequest(t *testing.T) {
	now := timezone.Now()

	fields := shared.TransformFields(dto.UpdateLastLoginRequest{LastLogin: now}, "user")

	assert.Equal(t, now, fields["last_login"])
}

func TestChangePasswordRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.ChangePasswordRequest
		wantErr bool
	}{
		{name: "valid", req: dto.ChangePasswordRequest{CurrentPassword: "old-secret", NewPassword: "new-secret"}},
		{name: "too short", req: dto.ChangePasswordRequest{CurrentPassword: "old-secret", NewPassword: "short"}, wantErr: true},
		{name: "unchanged", req: dto.ChangePasswordRequest{CurrentPassword: "same-secret", NewPassword: "same-secret"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}
