package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"tourism/config"
	"tourism/infras/kafka"
	"tourism/infras/otel"
	"tourism/internal/domains/availability/model"
	"tourism/internal/domains/availability/model/dto"
	"tourism/internal/domains/availability/repository"
	"tourism/shared"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	"tourism/shared/failure"
	gRepo "tourism/shared/repository"
	"tourism/shared/timezone"
)

// Availability reads are never cached: check and reserve must observe the ledger as committed.
type Availability interface {
	GetRange(ctx context.Context, req dto.RangeRequest) ([]dto.AvailabilityResponse, error)
	Create(ctx context.Context, req dto.CreateAvailabilityRequest) (dto.AvailabilityResponse, error)
	Update(ctx context.Context, req dto.UpdateAvailabilityRequest, id string) (dto.AvailabilityResponse, error)
	Check(ctx context.Context, req dto.CheckRequest) (dto.CheckResponse, error)
	Reserve(ctx context.Context, req dto.ReserveRequest) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo   repository.Availability
	cfg    *config.Config
	events kafka.Client
	otel   otel.Otel
}

func New(repo repository.Availability, cfg *config.Config, events kafka.Client, otel otel.Otel) Availability {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		events: events,
		otel:   otel,
	}
}

func dayFilter(accommodationID string, date time.Time) gDto.FilterGroup {
	return gDto.NewFilterGroup(
		gDto.FilterEq(model.TableName, model.FieldAccommodationID, accommodationID),
		gDto.FilterEq(model.TableName, model.FieldDate, date),
	)
}

func (s *serviceImpl) GetRange(ctx context.Context, req dto.RangeRequest) (res []dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.GetRange")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	start, end, err := req.Bounds()
	if err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	if start.After(end) {
		return nil, failure.BadRequestFromString("start_date must not be after end_date") // nolint:wrapcheck
	}

	filter := gDto.NewFilterGroup(
		gDto.FilterEq(model.TableName, model.FieldAccommodationID, req.AccommodationID),
		gDto.Filter{ArgName: "start_date", Field: model.FieldDate, Value: start, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
		gDto.Filter{ArgName: "end_date", Field: model.FieldDate, Value: end, Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
	)

	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldDate, SortDir: gDto.SortDirAsc}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get availability range")

		return nil, fmt.Errorf("failed to get availability range: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record, err := req.ToModel(shared.UserFromContext(ctx))
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = record.Validate(); err != nil {
		return res, err
	}

	exist, err := s.repo.Exist(ctx, dayFilter(record.AccommodationID, record.Date))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if availability exists")

		return res, fmt.Errorf("failed to check if availability exists: %w", err)
	}

	if exist {
		return res, model.ErrAlreadyExists
	}

	if err = s.repo.Insert(ctx, record); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, model.ErrAlreadyExists
		}

		log.Error().Err(err).Msg("failed to create availability")

		return res, fmt.Errorf("failed to create availability: %w", err)
	}

	res.FromModel(record)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAvailabilityRequest, id string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get availability")

		return res, fmt.Errorf("failed to get availability: %w", err)
	}

	if current.ID == constant.Empty {
		return res, model.ErrNotFound
	}

	merged := req.Apply(current)
	if err = merged.Validate(); err != nil {
		return res, err
	}

	user := shared.UserFromContext(ctx)
	fields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update availability")

		return res, fmt.Errorf("failed to update availability: %w", err)
	}

	merged.ModifiedBy = user
	if modifiedAt, ok := fields[constant.FieldModifiedAt].(time.Time); ok {
		merged.ModifiedAt = modifiedAt
	}

	res.FromModel(merged)

	return res, nil
}

func (s *serviceImpl) Check(ctx context.Context, req dto.CheckRequest) (res dto.CheckResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.Check")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	record, err := s.repo.Get(ctx, dayFilter(req.AccommodationID, date))
	if err != nil {
		log.Error().Err(err).Msg("failed to get availability")

		return res, fmt.Errorf("failed to get availability: %w", err)
	}

	res.Available = record.ID != constant.Empty && record.CanServe(req.UnitsRequired)

	return res, nil
}

func (s *serviceImpl) Reserve(ctx context.Context, req dto.ReserveRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.Reserve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Units <= 0 {
		return res, failure.BadRequestFromString("units must be greater than 0") // nolint:wrapcheck
	}

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	record, ok, err := s.repo.Reserve(ctx, req.AccommodationID, date, req.Units, shared.UserFromContext(ctx), timezone.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to reserve availability")

		return res, fmt.Errorf("failed to reserve availability: %w", err)
	}

	if !ok {
		return res, s.rejection(ctx, req.AccommodationID, date, req.Units)
	}

	res.FromModel(record)

	go s.publishReserved(context.WithoutCancel(ctx), res, req.Units)

	return res, nil
}

// rejection classifies a reserve that matched no row. The record is read after the guarded update,
// so a concurrent change can make it look servable again; that still reports insufficient units.
func (s *serviceImpl) rejection(ctx context.Context, accommodationID string, date time.Time, units int) error {
	current, err := s.repo.Get(ctx, dayFilter(accommodationID, date))
	if err != nil {
		log.Error().Err(err).Msg("failed to get availability")

		return fmt.Errorf("failed to get availability: %w", err)
	}

	if reason := current.RejectReservation(units); reason != nil {
		return reason
	}

	return model.ErrInsufficientUnits
}

func (s *serviceImpl) publishReserved(ctx context.Context, res dto.AvailabilityResponse, units int) {
	payload := map[string]any{
		"availability": res,
		"units":        units,
	}

	message := kafka.Message{
		Key:   res.AccommodationID,
		Value: kafka.NewEvent(model.EventReserved, timezone.Now(), payload),
	}

	if err := s.events.SendMessages(ctx, s.cfg.Kafka.Topics.Inventory, message); err != nil {
		log.Error().Err(err).Str("accommodation_id", res.AccommodationID).Msg("failed to publish availability reserved event")
	}
}
