package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"tourism/infras/otel"
	"tourism/infras/postgres"
	"tourism/internal/domains/experience/model"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	gRepo "tourism/shared/repository"
)

var destinations = gRepo.Association{
	Table:        "experience_destinations",
	OwnerColumn:  "experience_id",
	TargetColumn: "destination_id",
	TargetTable:  "destinations",
}

type Experience interface {
	// CreateAggregate inserts the experience and links the known destination ids in one transaction.
	CreateAggregate(ctx context.Context, experience model.Experience, destinationIDs []string) error
	// UpdateAggregate applies fields and, when destinationIDs is non-nil, replaces the links in one transaction.
	UpdateAggregate(ctx context.Context, id string, fields map[string]any, destinationIDs *[]string) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Experience, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Experience, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DestinationIDs(ctx context.Context, ids []string) (map[string][]string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Experience]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Experience {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Experience](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) CreateAggregate(ctx context.Context, experience model.Experience, destinationIDs []string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".experience.CreateAggregate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return gRepo.Transact(ctx, r.db.Write, func(tx *sqlx.Tx) error {
		if err := r.InsertTx(ctx, tx, experience); err != nil {
			return err
		}

		return destinations.Add(ctx, tx, experience.ID, destinationIDs)
	})
}

func (r *repositoryImpl) UpdateAggregate(ctx context.Context, id string, fields map[string]any, destinationIDs *[]string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".experience.UpdateAggregate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return gRepo.Transact(ctx, r.db.Write, func(tx *sqlx.Tx) error {
		if len(fields) > 0 {
			if err := r.UpdateTx(ctx, tx, fields, gDto.NewFilterGroup(gDto.FilterEq(model.TableName, model.FieldID, id))); err != nil {
				return err
			}
		}

		if destinationIDs == nil {
			return nil
		}

		return destinations.Replace(ctx, tx, id, *destinationIDs)
	})
}

func (r *repositoryImpl) DestinationIDs(ctx context.Context, ids []string) (links map[string][]string, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".experience.DestinationIDs")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return destinations.ListMany(ctx, r.db.Read, ids)
}
