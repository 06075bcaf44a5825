package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/migrations"
	"tourism/permissions"
)

func TestLoad(t *testing.T) {
	for _, service := range migrations.Services {
		t.Run(service, func(t *testing.T) {
			data, err := permissions.Load(service)
			require.NoError(t, err)
			assert.False(t, data.Skip)
		})
	}

	t.Run("unknown service", func(t *testing.T) {
		_, err := permissions.Load("payments")
		assert.Error(t, err)
	})
}

func TestFindPermissions(t *testing.T) {
	auth, err := permissions.Load(migrations.ServiceAuth)
	require.NoError(t, err)

	login := auth.FindPermissions("/api/v1/login/access-token", http.MethodPost)
	assert.True(t, login.Skip)
	assert.True(t, login.Throttle)

	createUser := auth.FindPermissions("/api/v1/users/", http.MethodPost)
	assert.False(t, createUser.Skip)
	assert.Equal(t, []string{"PORTAL_ADMIN"}, createUser.Permissions)

	assert.Equal(t, permissions.Permission{}, auth.FindPermissions("/api/v1/nowhere", http.MethodGet))

	catalog, err := permissions.Load(migrations.ServiceCatalog)
	require.NoError(t, err)

	assert.True(t, catalog.FindPermissions("/api/v1/destinations/search/suggest", http.MethodGet).Skip)
	assert.False(t, catalog.FindPermissions("/api/v1/destinations/", http.MethodPost).Skip)
}
