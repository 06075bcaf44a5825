package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"tourism/infras/otel"
	"tourism/infras/postgres"
	"tourism/internal/domains/tourpackage/model"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	gRepo "tourism/shared/repository"
)

var (
	destinations = gRepo.Association{Table: "package_destinations", OwnerColumn: "package_id", TargetColumn: "destination_id", TargetTable: "destinations"}
	experiences  = gRepo.Association{Table: "package_experiences", OwnerColumn: "package_id", TargetColumn: "experience_id", TargetTable: "experiences"}
	amenities    = gRepo.Association{Table: "package_amenities", OwnerColumn: "package_id", TargetColumn: "amenity_id", TargetTable: "amenities"}
)

type Package interface {
	// CreateAggregate inserts the package and links the known ids in one transaction.
	CreateAggregate(ctx context.Context, pkg model.Package, links model.Links) error
	// UpdateAggregate applies fields and replaces each link set present in patch in one transaction.
	UpdateAggregate(ctx context.Context, id string, fields map[string]any, patch model.LinkPatch) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Package, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Package, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Links(ctx context.Context, ids []string) (map[string]model.Links, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Package]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Package {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Package](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) CreateAggregate(ctx context.Context, pkg model.Package, links model.Links) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".package.CreateAggregate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return gRepo.Transact(ctx, r.db.Write, func(tx *sqlx.Tx) error {
		if err := r.InsertTx(ctx, tx, pkg); err != nil {
			return err
		}

		if err := destinations.Add(ctx, tx, pkg.ID, links.DestinationIDs); err != nil {
			return err
		}

		if err := experiences.Add(ctx, tx, pkg.ID, links.ExperienceIDs); err != nil {
			return err
		}

		return amenities.Add(ctx, tx, pkg.ID, links.AmenityIDs)
	})
}

func (r *repositoryImpl) UpdateAggregate(ctx context.Context, id string, fields map[string]any, patch model.LinkPatch) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".package.UpdateAggregate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	replacements := []struct {
		association gRepo.Association
		ids         *[]string
	}{
		{destinations, patch.DestinationIDs},
		{experiences, patch.ExperienceIDs},
		{amenities, patch.AmenityIDs},
	}

	return gRepo.Transact(ctx, r.db.Write, func(tx *sqlx.Tx) error {
		if len(fields) > 0 {
			if err := r.UpdateTx(ctx, tx, fields, gDto.NewFilterGroup(gDto.FilterEq(model.TableName, model.FieldID, id))); err != nil {
				return err
			}
		}

		for _, replacement := range replacements {
			if replacement.ids == nil {
				continue
			}

			if err := replacement.association.Replace(ctx, tx, id, *replacement.ids); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *repositoryImpl) Links(ctx context.Context, ids []string) (links map[string]model.Links, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".package.Links")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	destinationIDs, err := destinations.ListMany(ctx, r.db.Read, ids)
	if err != nil {
		return nil, err
	}

	experienceIDs, err := experiences.ListMany(ctx, r.db.Read, ids)
	if err != nil {
		return nil, err
	}

	amenityIDs, err := amenities.ListMany(ctx, r.db.Read, ids)
	if err != nil {
		return nil, err
	}

	links = make(map[string]model.Links, len(ids))
	for _, id := range ids {
		links[id] = model.Links{
			DestinationIDs: destinationIDs[id],
			ExperienceIDs:  experienceIDs[id],
			AmenityIDs:     amenityIDs[id],
		}
	}

	return links, nil
}
