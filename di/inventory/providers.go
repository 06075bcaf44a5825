package inventory

import (
	"tourism/internal/handlers/availability"
	"tourism/migrations"
	"tourism/permissions"
	"tourism/transport/http/router"
)

func providePermissions() (*permissions.PermissionData, error) {
	return permissions.Load(migrations.ServiceInventory)
}

func provideRouter(availabilityHandler availability.Handler) router.Router {
	return router.New(&availabilityHandler)
}
