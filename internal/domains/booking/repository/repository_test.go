package repository_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/infras/otel/mocks"
	"tourism/infras/postgres"
	"tourism/internal/domains/booking/model"
	"tourism/internal/domains/booking/repository"
	"tourism/migrations"
	gModel "tourism/shared/model"
)

// connect opens the database named by TEST_POSTGRES_DSN and applies the booking schema.
func connect(t *testing.T) *postgres.Connection {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}

	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	schema, err := migrations.FS.ReadFile(migrations.Dir(migrations.ServiceBooking) + "/000001_create_bookings.up.sql")
	require.NoError(t, err)

	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	return &postgres.Connection{Read: db, Write: db}
}

func newAggregate(items int) model.Aggregate {
	bookingID := uuid.NewString()

	aggregate := model.Aggregate{
		Booking: model.Booking{
			ID:               bookingID,
			BookingReference: "TRIP-" + strings.ToUpper(uuid.NewString()[:8]),
			Status:           model.StatusDraft,
			Metadata:         gModel.NewMetadata("test", time.Now()),
		},
		Customer: model.Customer{
			ID:        uuid.NewString(),
			BookingID: bookingID,
			FullName:  "Karma Wangchuk",
			Email:     "karma@example.com",
			Phone:     "+97517123456",
		},
	}

	for range items {
		aggregate.Items = append(aggregate.Items, model.Item{
			ID:               uuid.NewString(),
			BookingID:        bookingID,
			ServiceType:      model.ServiceTypeExperience,
			ServiceID:        uuid.NewString(),
			UnitPrice:        decimal.NewFromInt(2500),
			Quantity:         2,
			TotalPrice:       decimal.NewFromInt(5000),
			MetadataSnapshot: types.JSONText("{}"),
		})
	}

	aggregate.ApplyTotals(model.ZeroTax{})

	return aggregate
}

func countRows(t *testing.T, db *sqlx.DB, table, column, bookingID string) int {
	t.Helper()

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM "+table+" WHERE "+column+" = $1", bookingID))

	return count
}

func cleanup(t *testing.T, db *sqlx.DB, bookingID string) {
	t.Helper()

	t.Cleanup(func() {
		_, _ = db.Exec("DELETE FROM "+model.TableName+" WHERE id = $1", bookingID)
	})
}

func TestCreateAggregate(t *testing.T) {
	conn := connect(t)
	repo := repository.New(conn, mocks.NewOtel())

	t.Run("writes header, customer and items", func(t *testing.T) {
		aggregate := newAggregate(2)
		cleanup(t, conn.Write, aggregate.Booking.ID)

		require.NoError(t, repo.CreateAggregate(context.Background(), aggregate))

		assert.Equal(t, 1, countRows(t, conn.Read, model.TableName, model.FieldID, aggregate.Booking.ID))
		assert.Equal(t, 1, countRows(t, conn.Read, model.CustomerTableName, model.FieldBookingID, aggregate.Booking.ID))
		assert.Equal(t, 2, countRows(t, conn.Read, model.ItemTableName, model.FieldBookingID, aggregate.Booking.ID))
	})

	t.Run("failed item insert leaves nothing behind", func(t *testing.T) {
		aggregate := newAggregate(2)
		aggregate.Items[1].ID = aggregate.Items[0].ID
		cleanup(t, conn.Write, aggregate.Booking.ID)

		require.Error(t, repo.CreateAggregate(context.Background(), aggregate))

		assert.Equal(t, 0, countRows(t, conn.Read, model.TableName, model.FieldID, aggregate.Booking.ID))
		assert.Equal(t, 0, countRows(t, conn.Read, model.CustomerTableName, model.FieldBookingID, aggregate.Booking.ID))
		assert.Equal(t, 0, countRows(t, conn.Read, model.ItemTableName, model.FieldBookingID, aggregate.Booking.ID))
	})
}

func TestDeleteAggregate(t *testing.T) {
	conn := connect(t)
	repo := repository.New(conn, mocks.NewOtel())

	aggregate := newAggregate(3)
	cleanup(t, conn.Write, aggregate.Booking.ID)

	other := newAggregate(1)
	cleanup(t, conn.Write, other.Booking.ID)

	require.NoError(t, repo.CreateAggregate(context.Background(), aggregate))
	require.NoError(t, repo.CreateAggregate(context.Background(), other))

	require.NoError(t, repo.DeleteAggregate(context.Background(), aggregate.Booking.ID))

	assert.Equal(t, 0, countRows(t, conn.Read, model.TableName, model.FieldID, aggregate.Booking.ID))
	assert.Equal(t, 0, countRows(t, conn.Read, model.CustomerTableName, model.FieldBookingID, aggregate.Booking.ID))
	assert.Equal(t, 0, countRows(t, conn.Read, model.ItemTableName, model.FieldBookingID, aggregate.Booking.ID))

	items, err := repo.GetItems(context.Background(), []string{other.Booking.ID})
	require.NoError(t, err)
	assert.Len(t, items, 1)

	customers, err := repo.GetCustomers(context.Background(), []string{other.Booking.ID})
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}
