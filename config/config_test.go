package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "TRIP-", cfg.Booking.ReferencePrefix)
	assert.Equal(t, 6, cfg.Booking.ReferenceLength)
	assert.Equal(t, 10, cfg.Booking.ReferenceMaxAttempts)
	assert.Equal(t, "local", cfg.Media.Driver)
	assert.Equal(t, "booking.events", cfg.Kafka.Topics.Booking)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_NAME", "inventory")
	t.Setenv("SERVER_PORT", "8004")
	t.Setenv("DB_POSTGRES_WRITE_HOST", "db.internal")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "inventory", cfg.App.Name)
	assert.Equal(t, "8004", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.DB.Postgres.Write.Host)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestLoad_ReturnsIndependentValues(t *testing.T) {
	first, err := config.Load()
	require.NoError(t, err)

	second, err := config.Load()
	require.NoError(t, err)

	first.App.Name = "changed"

	assert.NotEqual(t, first.App.Name, second.App.Name)
}
