package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tourism/infras/otel"
	"tourism/infras/postgres"
	"tourism/internal/domains/availability/model"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	"tourism/shared/logger"
	gRepo "tourism/shared/repository"
)

const reserveQuery = `UPDATE ` + model.TableName + `
SET available_units = available_units - :units, modified_at = :modified_at, modified_by = :modified_by
WHERE accommodation_id = :accommodation_id AND date = :date AND is_blocked = FALSE AND available_units >= :units
RETURNING *`

type Availability interface {
	Insert(ctx context.Context, model model.Availability) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Availability, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Availability, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	// Reserve atomically takes units from an unblocked record holding enough of them.
	// ok is false when no row satisfied the guard.
	Reserve(ctx context.Context, accommodationID string, date time.Time, units int, user string, now time.Time) (res model.Availability, ok bool, err error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Availability]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Availability {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Availability](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Reserve(ctx context.Context, accommodationID string, date time.Time, units int, user string, now time.Time) (res model.Availability, ok bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.Reserve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, reserveQuery)

	prepare, err := r.db.Write.PrepareNamedContext(ctx, reserveQuery)
	if err != nil {
		logger.ErrorWithStack(err)

		return res, false, fmt.Errorf("failed to prepare reserve statement: %w", err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &res, map[string]any{
		"units":                  units,
		"accommodation_id":       accommodationID,
		"date":                   date,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return res, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return res, false, fmt.Errorf("failed to reserve availability: %w", err)
	}

	return res, true, nil
}
