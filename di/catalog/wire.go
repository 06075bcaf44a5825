//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"

	"tourism/config"
	"tourism/di"
	"tourism/transport/http"

	accommodationRepository "tourism/internal/domains/accommodation/repository"
	accommodationService "tourism/internal/domains/accommodation/service"
	amenityRepository "tourism/internal/domains/amenity/repository"
	amenityService "tourism/internal/domains/amenity/service"
	destinationRepository "tourism/internal/domains/destination/repository"
	destinationService "tourism/internal/domains/destination/service"
	experienceRepository "tourism/internal/domains/experience/repository"
	experienceService "tourism/internal/domains/experience/service"
	mediaService "tourism/internal/domains/media/service"
	mediaStorage "tourism/internal/domains/media/storage"
	packageRepository "tourism/internal/domains/tourpackage/repository"
	packageService "tourism/internal/domains/tourpackage/service"
	accommodationHandler "tourism/internal/handlers/accommodation"
	amenityHandler "tourism/internal/handlers/amenity"
	destinationHandler "tourism/internal/handlers/destination"
	experienceHandler "tourism/internal/handlers/experience"
	mediaHandler "tourism/internal/handlers/media"
	packageHandler "tourism/internal/handlers/tourpackage"
)

var destinationDomain = wire.NewSet(
	destinationRepository.New,
	destinationService.New,
)

var accommodationDomain = wire.NewSet(
	accommodationRepository.New,
	accommodationService.New,
)

var amenityDomain = wire.NewSet(
	amenityRepository.New,
	amenityService.New,
)

var experienceDomain = wire.NewSet(
	experienceRepository.New,
	experienceService.New,
)

var packageDomain = wire.NewSet(
	packageRepository.New,
	packageService.New,
)

var mediaDomain = wire.NewSet(
	mediaStorage.New,
	mediaService.New,
)

var domains = wire.NewSet(
	destinationDomain,
	accommodationDomain,
	amenityDomain,
	experienceDomain,
	packageDomain,
	mediaDomain,
)

var routing = wire.NewSet(
	destinationHandler.New,
	accommodationHandler.New,
	amenityHandler.New,
	experienceHandler.New,
	packageHandler.New,
	mediaHandler.New,
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
