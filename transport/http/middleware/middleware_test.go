package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourism/config"
	"tourism/infras/jwt"
	jwtMocks "tourism/infras/jwt/mocks"
	otelMocks "tourism/infras/otel/mocks"
	"tourism/permissions"
	"tourism/shared/constant"
	"tourism/transport/http/middleware"
)

var testPermissions = &permissions.PermissionData{
	Endpoints: []permissions.Permission{
		{Path: "/api/v1/destinations/{id}", Method: http.MethodGet, Skip: true},
		{Path: "/api/v1/users/", Method: http.MethodGet, Permissions: []string{"PORTAL_ADMIN"}},
		{Path: "/api/v1/login/access-token", Method: http.MethodPost, Skip: true, Throttle: true},
	},
}

func newRouter(mw ...func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()
	router.Use(mw...)

	ok := func(w http.ResponseWriter, r *http.Request) {
		userID, _ := r.Context().Value(constant.ContextKeyUserID).(string)
		w.Header().Set("X-User", userID)
		w.WriteHeader(http.StatusOK)
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/destinations/{id}", ok)
		r.Post("/destinations/", ok)
		r.Get("/users/", ok)
		r.Post("/login/access-token", ok)
	})

	return router
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		header     string
		setupMocks func(j *jwtMocks.MockJWT)
		wantStatus int
		wantUser   string
	}{
		{
			name:       "skipped route passes without token",
			method:     http.MethodGet,
			path:       "/api/v1/destinations/bali",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing token is forbidden",
			method:     http.MethodPost,
			path:       "/api/v1/destinations/",
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "invalid token is forbidden",
			method: http.MethodPost,
			path:   "/api/v1/destinations/",
			header: "Bearer broken",
			setupMocks: func(j *jwtMocks.MockJWT) {
				j.EXPECT().ValidateToken("broken", jwt.AccessToken).Return(nil, jwt.ErrInvalidToken)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "valid token sets the subject",
			method: http.MethodPost,
			path:   "/api/v1/destinations/",
			header: "Bearer good",
			setupMocks: func(j *jwtMocks.MockJWT) {
				claims := &jwt.Claims{UserType: "PORTAL_ADMIN"}
				claims.Subject = "user-1"
				j.EXPECT().ValidateToken("good", jwt.AccessToken).Return(claims, nil)
			},
			wantStatus: http.StatusOK,
			wantUser:   "user-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			jwtService := jwtMocks.NewMockJWT(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(jwtService)
			}

			mw := middleware.NewAuthRoleMiddleware(jwtService, otelMocks.NewOtel(), testPermissions, &config.Config{})
			router := newRouter(mw.Auth)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderAuthorization, tt.header)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUser, rec.Header().Get("X-User"))
		})
	}
}

func TestRBAC(t *testing.T) {
	tests := []struct {
		name       string
		userType   string
		path       string
		wantStatus int
	}{
		{name: "allowed user type", userType: "PORTAL_ADMIN", path: "/api/v1/users/", wantStatus: http.StatusOK},
		{name: "rejected user type", userType: "PORTAL_STAFF", path: "/api/v1/users/", wantStatus: http.StatusForbidden},
		{name: "route without list", userType: "CUSTOMER", path: "/api/v1/destinations/bali", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			jwtService := jwtMocks.NewMockJWT(ctrl)
			claims := &jwt.Claims{UserType: tt.userType}
			claims.Subject = "user-1"
			jwtService.EXPECT().ValidateToken("token", jwt.AccessToken).Return(claims, nil).AnyTimes()

			mw := middleware.NewAuthRoleMiddleware(jwtService, otelMocks.NewOtel(), testPermissions, &config.Config{})
			router := newRouter(mw.Auth, mw.RBAC)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set(constant.RequestHeaderAuthorization, "Bearer token")

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAPIKey(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mw := middleware.NewAuthRoleMiddleware(jwtMocks.NewMockJWT(ctrl), otelMocks.NewOtel(), testPermissions, cfg)
	router := newRouter(mw.APIKey, mw.Auth)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/destinations/", nil)
	req.Header.Set(constant.RequestHeaderAPIKey, "internal-key")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/destinations/", nil)
	req.Header.Set(constant.RequestHeaderAPIKey, "wrong")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestThrottle(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.LoginThrottle.PerMinute = 1
	cfg.App.LoginThrottle.Burst = 2

	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, nil, testPermissions)
	router := newRouter(mw.Throttle())

	send := func(path string) int {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.RemoteAddr = "10.0.0.1"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("/api/v1/login/access-token"))
	assert.Equal(t, http.StatusOK, send("/api/v1/login/access-token"))
	assert.Equal(t, http.StatusTooManyRequests, send("/api/v1/login/access-token"))

	for range 5 {
		assert.Equal(t, http.StatusOK, send("/api/v1/destinations/"))
	}
}

func TestUUIDParams(t *testing.T) {
	router := chi.NewRouter()
	router.With(middleware.UUIDParams("id", "role_id")).Post("/users/{id}/roles/{role_id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantBody string
	}{
		{name: "both valid", path: "/users/7a6b5c4d-1111-4222-9333-444455556666/roles/9c8b7a6d-5555-4666-a777-888899990000", wantCode: http.StatusNoContent},
		{name: "bad id", path: "/users/abc/roles/9c8b7a6d-5555-4666-a777-888899990000", wantCode: http.StatusBadRequest, wantBody: "id must be a valid UUID"},
		{name: "bad role id", path: "/users/7a6b5c4d-1111-4222-9333-444455556666/roles/1;drop", wantCode: http.StatusBadRequest, wantBody: "role_id must be a valid UUID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, tt.path, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
