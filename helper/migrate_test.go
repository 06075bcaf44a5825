package helper

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/config"
	"tourism/migrations"
)

func TestConnectionString(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.MigrationTable = "schema_migrations"
	cfg.DB.Postgres.Write = config.Postgres{Host: "localhost", Port: "5432", Username: "u", Password: "p", Name: "booking", SSLMode: "disable"}

	dsn, err := connectionString(cfg, migrations.ServiceBooking)
	require.NoError(t, err)

	parsed, err := url.Parse(dsn)
	require.NoError(t, err)
	assert.Equal(t, "schema_migrations_booking", parsed.Query().Get("x-migrations-table"))
	assert.Equal(t, "/booking", parsed.Path)
}

func TestRunner_UnknownService(t *testing.T) {
	err := Runner(&config.Config{}, "payments", ActionUp)
	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestEmbeddedMigrationsExist(t *testing.T) {
	for _, service := range migrations.Services {
		entries, err := migrations.FS.ReadDir(migrations.Dir(service))
		require.NoError(t, err, service)
		assert.NotEmpty(t, entries, service)
	}
}
