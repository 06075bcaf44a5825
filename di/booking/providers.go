package booking

import (
	"tourism/config"
	"tourism/internal/domains/booking/reference"
	"tourism/internal/handlers/booking"
	"tourism/migrations"
	"tourism/permissions"
	"tourism/transport/http/router"
)

func providePermissions() (*permissions.PermissionData, error) {
	return permissions.Load(migrations.ServiceBooking)
}

func provideReferences(cfg *config.Config) reference.Generator {
	return reference.New(cfg.Booking.ReferencePrefix)
}

func provideRouter(bookingHandler booking.Handler) router.Router {
	return router.New(&bookingHandler)
}
