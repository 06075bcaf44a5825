package catalog

import (
	"tourism/internal/handlers/accommodation"
	"tourism/internal/handlers/amenity"
	"tourism/internal/handlers/destination"
	"tourism/internal/handlers/experience"
	"tourism/internal/handlers/media"
	"tourism/internal/handlers/tourpackage"
	"tourism/migrations"
	"tourism/permissions"
	"tourism/transport/http/router"
)

func providePermissions() (*permissions.PermissionData, error) {
	return permissions.Load(migrations.ServiceCatalog)
}

func provideRouter(
	destinationHandler destination.Handler,
	accommodationHandler accommodation.Handler,
	amenityHandler amenity.Handler,
	experienceHandler experience.Handler,
	packageHandler tourpackage.Handler,
	mediaHandler media.Handler,
) router.Router {
	return router.New(
		&destinationHandler,
		&accommodationHandler,
		&amenityHandler,
		&experienceHandler,
		&packageHandler,
		&mediaHandler,
	)
}
