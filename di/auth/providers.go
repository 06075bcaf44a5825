package auth

import (
	"tourism/internal/handlers/auth"
	"tourism/internal/handlers/rbac"
	"tourism/internal/handlers/user"
	"tourism/migrations"
	"tourism/permissions"
	"tourism/transport/http/router"
)

func providePermissions() (*permissions.PermissionData, error) {
	return permissions.Load(migrations.ServiceAuth)
}

func provideRouter(authHandler auth.Handler, userHandler user.Handler, rbacHandler rbac.Handler) router.Router {
	return router.New(&authHandler, &userHandler, &rbacHandler)
}
