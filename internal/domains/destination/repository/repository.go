package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"tourism/infras/otel"
	"tourism/infras/postgres"
	"tourism/internal/domains/destination/model"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	gRepo "tourism/shared/repository"
)

type Destination interface {
	// CreateAggregate writes the destination and its images in one transaction.
	CreateAggregate(ctx context.Context, aggregate model.Aggregate) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Destination, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Destination, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	// GetImages returns the images of every destination in ids ordered by sort_order.
	GetImages(ctx context.Context, ids []string) ([]model.Image, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Destination]
	images gRepo.Repository[model.Image]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Destination {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Destination](model.EntityName, model.TableName, model.FieldID, db, otel),
		images:     gRepo.NewRepository[model.Image](model.ImageEntityName, model.ImageTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) CreateAggregate(ctx context.Context, aggregate model.Aggregate) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".destination.CreateAggregate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return gRepo.Transact(ctx, r.db.Write, func(tx *sqlx.Tx) error {
		if err := r.InsertTx(ctx, tx, aggregate.Destination); err != nil {
			return err
		}

		if len(aggregate.Images) == 0 {
			return nil
		}

		return r.images.InsertBulkTx(ctx, tx, aggregate.Images)
	})
}

func (r *repositoryImpl) GetImages(ctx context.Context, ids []string) (images []model.Image, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".destination.GetImages")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(ids) == 0 {
		return []model.Image{}, nil
	}

	filter := gDto.NewFilterGroup(gDto.Filter{
		Field:    model.FieldDestinationID,
		Value:    ids,
		Operator: gDto.FilterOperatorIn,
		Table:    model.ImageTableName,
	})

	params := gDto.QueryParams{SortBy: model.ImageTableName + "." + model.FieldSortOrder, SortDir: gDto.SortDirAsc}

	return r.images.GetAll(ctx, params, filter) //nolint:wrapcheck
}
