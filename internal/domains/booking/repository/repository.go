package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tourism/infras/otel"
	"tourism/infras/postgres"
	"tourism/internal/domains/booking/model"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	gRepo "tourism/shared/repository"
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	// CreateAggregate writes header, customer and items in one transaction.
	CreateAggregate(ctx context.Context, aggregate model.Aggregate) error
	// DeleteAggregate removes items, customer and header in one transaction.
	DeleteAggregate(ctx context.Context, id string) error
	GetCustomers(ctx context.Context, bookingIDs []string) ([]model.Customer, error)
	GetItems(ctx context.Context, bookingIDs []string) ([]model.Item, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	customers gRepo.Repository[model.Customer]
	items     gRepo.Repository[model.Item]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		customers:  gRepo.NewRepository[model.Customer](model.CustomerEntityName, model.CustomerTableName, model.FieldID, db, otel),
		items:      gRepo.NewRepository[model.Item](model.ItemEntityName, model.ItemTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) CreateAggregate(ctx context.Context, aggregate model.Aggregate) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateAggregate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return gRepo.Transact(ctx, r.db.Write, func(tx *sqlx.Tx) error {
		if err := r.InsertTx(ctx, tx, aggregate.Booking); err != nil {
			return err
		}

		if err := r.customers.InsertTx(ctx, tx, aggregate.Customer); err != nil {
			return err
		}

		if len(aggregate.Items) == 0 {
			return nil
		}

		return r.items.InsertBulkTx(ctx, tx, aggregate.Items)
	})
}

func (r *repositoryImpl) DeleteAggregate(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.DeleteAggregate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	byBooking := gDto.NewFilterGroup(gDto.FilterEq(model.ItemTableName, model.FieldBookingID, id))
	byCustomerBooking := gDto.NewFilterGroup(gDto.FilterEq(model.CustomerTableName, model.FieldBookingID, id))
	byID := gDto.NewFilterGroup(gDto.FilterEq(model.TableName, model.FieldID, id))

	return gRepo.Transact(ctx, r.db.Write, func(tx *sqlx.Tx) error {
		if err := r.items.DeleteTx(ctx, tx, byBooking); err != nil {
			return err
		}

		if err := r.customers.DeleteTx(ctx, tx, byCustomerBooking); err != nil {
			return err
		}

		return r.DeleteTx(ctx, tx, byID)
	})
}

func (r *repositoryImpl) GetCustomers(ctx context.Context, bookingIDs []string) ([]model.Customer, error) {
	if len(bookingIDs) == 0 {
		return []model.Customer{}, nil
	}

	filter := gDto.NewFilterGroup(gDto.Filter{
		Field:    model.FieldBookingID,
		Value:    bookingIDs,
		Operator: gDto.FilterOperatorIn,
		Table:    model.CustomerTableName,
	})

	customers, err := r.customers.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking customers: %w", err)
	}

	return customers, nil
}

func (r *repositoryImpl) GetItems(ctx context.Context, bookingIDs []string) ([]model.Item, error) {
	if len(bookingIDs) == 0 {
		return []model.Item{}, nil
	}

	filter := gDto.NewFilterGroup(gDto.Filter{
		Field:    model.FieldBookingID,
		Value:    bookingIDs,
		Operator: gDto.FilterOperatorIn,
		Table:    model.ItemTableName,
	})

	items, err := r.items.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking items: %w", err)
	}

	return items, nil
}
