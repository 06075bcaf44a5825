//go:build wireinject
// +build wireinject

package auth

import (
	"github.com/google/wire"

	"tourism/config"
	"tourism/di"
	"tourism/transport/http"

	authService "tourism/internal/domains/auth/service"
	rbacRepository "tourism/internal/domains/rbac/repository"
	rbacService "tourism/internal/domains/rbac/service"
	userRepository "tourism/internal/domains/user/repository"
	userService "tourism/internal/domains/user/service"
	authHandler "tourism/internal/handlers/auth"
	rbacHandler "tourism/internal/handlers/rbac"
	userHandler "tourism/internal/handlers/user"
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var rbacDomain = wire.NewSet(
	rbacRepository.New,
	rbacService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	rbacDomain,
)

var routing = wire.NewSet(
	authHandler.New,
	userHandler.New,
	rbacHandler.New,
	provideRouter,
	providePermissions,
)

func InitializeService(cfg *config.Config) (*http.HTTP, func(), error) {
	wire.Build(
		di.Infrastructures,
		di.Middlewares,
		di.SharedHelpers,
		di.Transport,
		domains,
		routing,
	)

	return nil, nil, nil
}
