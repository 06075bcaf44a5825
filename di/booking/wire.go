//go:build wireinject
// +build wireinject

package booking

import (
	"github.com/google/wire"

	"tourism/config"
	"tourism/di"
	"tourism/transport/http"

	bookingRepository "tourism/internal/domains/booking/repository"
	bookingService "tourism/internal/domains/booking/service"
	bookingHandler "tourism/internal/handlers/booking"
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	provideReferences,
	bookingService.New,
)

var routing = wire.NewSet(
	bookingHandler.New,
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
		bookingDomain,
		routing,
	)

	return nil, nil, nil
}
