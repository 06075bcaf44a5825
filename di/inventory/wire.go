//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"

	"tourism/config"
	"tourism/di"
	"tourism/transport/http"

	availabilityRepository "tourism/internal/domains/availability/repository"
	availabilityService "tourism/internal/domains/availability/service"
	availabilityHandler "tourism/internal/handlers/availability"
)

var availabilityDomain = wire.NewSet(
	availabilityRepository.New,
	availabilityService.New,
)

var routing = wire.NewSet(
	availabilityHandler.New,
	provideRouter,
	providePermissions,
)

func InitializeService(cfg *config.Config) (*http.HTTP, func(), error) {
	wire.Build(
		di.Infrastructures,
		di.Middlewares,
		di.SharedHelpers,
		di.Transport,
		di.ProvideKafka,
		availabilityDomain,
		routing,
	)

	return nil, nil, nil
}
