package repository_test

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/infras/otel/mocks"
	"tourism/infras/postgres"
	"tourism/internal/domains/availability/model"
	"tourism/internal/domains/availability/repository"
	"tourism/migrations"
	gModel "tourism/shared/model"
)

// connect opens the database named by TEST_POSTGRES_DSN and applies the inventory schema.
func connect(t *testing.T) *postgres.Connection {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}

	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	schema, err := migrations.FS.ReadFile(migrations.Dir(migrations.ServiceInventory) + "/000001_create_accommodation_availability.up.sql")
	require.NoError(t, err)

	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	return &postgres.Connection{Read: db, Write: db}
}

func seed(t *testing.T, repo repository.Availability, db *sqlx.DB, units int, blocked bool) model.Availability {
	t.Helper()

	record := model.Availability{
		ID:              uuid.NewString(),
		AccommodationID: uuid.NewString(),
		Date:            time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC),
		AvailableUnits:  units,
		TotalUnits:      units,
		IsBlocked:       blocked,
		Metadata:        gModel.NewMetadata("test", time.Now()),
	}

	require.NoError(t, repo.Insert(context.Background(), record))

	t.Cleanup(func() {
		_, _ = db.Exec("DELETE FROM "+model.TableName+" WHERE id = $1", record.ID)
	})

	return record
}

func TestReserve_ConcurrentNeverOversells(t *testing.T) {
	conn := connect(t)
	repo := repository.New(conn, mocks.NewOtel())

	const units, workers = 5, 20

	record := seed(t, repo, conn.Write, units, false)

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, ok, err := repo.Reserve(context.Background(), record.AccommodationID, record.Date, 1, "test", time.Now())
			assert.NoError(t, err)

			if ok {
				succeeded.Add(1)
			}
		}()
	}

	wg.Wait()

	var remaining int
	require.NoError(t, conn.Read.Get(&remaining, "SELECT available_units FROM "+model.TableName+" WHERE id = $1", record.ID))

	assert.Equal(t, int32(units), succeeded.Load())
	assert.Equal(t, 0, remaining)
}

func TestReserve_Guards(t *testing.T) {
	conn := connect(t)
	repo := repository.New(conn, mocks.NewOtel())

	t.Run("decrements", func(t *testing.T) {
		record := seed(t, repo, conn.Write, 5, false)

		res, ok, err := repo.Reserve(context.Background(), record.AccommodationID, record.Date, 2, "test", time.Now())

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 3, res.AvailableUnits)
	})

	t.Run("blocked day is untouched", func(t *testing.T) {
		record := seed(t, repo, conn.Write, 5, true)

		_, ok, err := repo.Reserve(context.Background(), record.AccommodationID, record.Date, 1, "test", time.Now())

		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("more than available", func(t *testing.T) {
		record := seed(t, repo, conn.Write, 2, false)

		_, ok, err := repo.Reserve(context.Background(), record.AccommodationID, record.Date, 3, "test", time.Now())

		assert.NoError(t, err)
		assert.False(t, ok)
	})
}
