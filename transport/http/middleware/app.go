package middleware

import (
	"fmt"
	"net/http"
	"sync"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"tourism/config"
	"tourism/infras/otel"
	"tourism/permissions"
	"tourism/shared/cache"
	"tourism/shared/constant"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
	Throttle() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel        otel.Otel
	config      *config.Config
	cache       cache.RedisCache
	permissions *permissions.PermissionData

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache, permissions *permissions.PermissionData) AppMiddleware {
	return &appMiddleware{
		otel:        otel,
		config:      config,
		cache:       cache,
		permissions: permissions,
		limiters:    make(map[string]*rate.Limiter),
	}
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := routePattern(r)
		if route == constant.Empty {
			route = r.URL.Path
		}

		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, fmt.Sprintf("%s %s", r.Method, route))
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.route":      route,
			"http.method":     r.Method,
			"http.user_agent": a.getUA(r),
			"http.host":       r.Host,
			"http.source":     a.getClientIP(r),
		})

		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		scope.SetAttribute("http.status_code", ww.Status())
	})
}
