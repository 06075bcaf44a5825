package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"tourism/config"
	"tourism/infras/kafka"
	"tourism/infras/otel"
	"tourism/internal/domains/booking/model"
	"tourism/internal/domains/booking/model/dto"
	"tourism/internal/domains/booking/reference"
	"tourism/internal/domains/booking/repository"
	"tourism/internal/domains/booking/voucher"
	"tourism/shared"
	"tourism/shared/cache"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	"tourism/shared/failure"
	gRepo "tourism/shared/repository"
	"tourism/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Mine(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) (dto.BookingResponse, error)
	Voucher(ctx context.Context, id string) (pdf []byte, fileName string, err error)
}

type serviceImpl struct {
	repo       repository.Booking
	references reference.Generator
	tax        model.TaxPolicy
	cfg        *config.Config
	cache      cache.RedisCache
	events     kafka.Client
	otel       otel.Otel
}

func New(
	repo repository.Booking,
	references reference.Generator,
	cfg *config.Config,
	cache cache.RedisCache,
	events kafka.Client,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:       repo,
		references: references,
		tax:        model.ZeroTax{},
		cfg:        cfg,
		cache:      cache,
		events:     events,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	aggregate, err := req.ToModel(shared.UserFromContext(ctx))
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	aggregate.ApplyTotals(s.tax)

	if err = s.insertWithReference(ctx, &aggregate); err != nil {
		return res, err
	}

	res.FromModel(aggregate)

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateLists(c)
		s.publish(c, model.EventCreated, res)
	}()

	return res, nil
}

// insertWithReference numbers the aggregate and stores it, drawing a fresh reference on every collision.
// The short namespace is tried first; once it keeps colliding the wide one is used.
func (s *serviceImpl) insertWithReference(ctx context.Context, aggregate *model.Aggregate) error {
	lengths := []int{s.cfg.Booking.ReferenceLength, s.cfg.Booking.ReferenceWideLength}

	for _, length := range lengths {
		for range s.cfg.Booking.ReferenceMaxAttempts {
			ref, err := s.references.Generate(length)
			if err != nil {
				log.Error().Err(err).Msg("failed to generate booking reference")

				return fmt.Errorf("failed to generate booking reference: %w", err)
			}

			filter := gDto.NewFilterGroup(gDto.FilterEq(model.TableName, model.FieldBookingReference, ref))

			taken, err := s.repo.Exist(ctx, filter)
			if err != nil {
				log.Error().Err(err).Msg("failed to check booking reference")

				return fmt.Errorf("failed to check booking reference: %w", err)
			}

			if taken {
				log.Warn().Str("reference", ref).Msg("booking reference collision")

				continue
			}

			aggregate.Booking.BookingReference = ref

			err = s.repo.CreateAggregate(ctx, *aggregate)
			if err == nil {
				return nil
			}

			if gRepo.IsUniqueViolation(err) {
				log.Warn().Str("reference", ref).Msg("booking reference taken concurrently")

				continue
			}

			log.Error().Err(err).Msg("failed to create booking")

			return fmt.Errorf("failed to create booking: %w", err)
		}
	}

	log.Error().Int("attempts", s.cfg.Booking.ReferenceMaxAttempts*len(lengths)).Msg("booking reference space exhausted")

	return failure.InternalError(model.ErrReferenceExhausted) // nolint:wrapcheck
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, err
	}

	bookings, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	aggregates, err := s.assemble(ctx, bookings)
	if err != nil {
		return res, err
	}

	res.FromModels(aggregates, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

// Mine lists the bookings owned by the authenticated subject.
func (s *serviceImpl) Mine(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.InvalidCredentials
	}

	owned := gDto.NewFilterGroup(gDto.FilterEq(model.TableName, model.FieldUserID, user))
	if len(filter.Filters) > 0 {
		owned.Filters = append(owned.Filters, filter)
	}

	return s.GetAll(ctx, req, owned)
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	aggregate, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(aggregate)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	aggregate, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	user := shared.UserFromContext(ctx)
	fields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	if req.Status != nil {
		aggregate.Booking.Status = *req.Status
	}

	if req.SpecialRequests != nil {
		aggregate.Booking.SpecialRequests = req.SpecialRequests
	}

	aggregate.Booking.ModifiedBy = user
	aggregate.Booking.ModifiedAt = timezone.Now()

	res.FromModel(aggregate)

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, id)
		s.publish(c, model.EventUpdated, res)
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	aggregate, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if err = s.repo.DeleteAggregate(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return res, fmt.Errorf("failed to delete booking: %w", err)
	}

	res.FromModel(aggregate)

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, id)
		s.publish(c, model.EventDeleted, res)
	}()

	return res, nil
}

func (s *serviceImpl) Voucher(ctx context.Context, id string) (pdf []byte, fileName string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Voucher")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	aggregate, err := s.load(ctx, id)
	if err != nil {
		return nil, "", err
	}

	pdf, err = voucher.Render(aggregate)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to render voucher")

		return nil, "", fmt.Errorf("failed to render voucher: %w", err)
	}

	return pdf, voucher.FileName(aggregate.Booking.BookingReference), nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Aggregate, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return model.Aggregate{}, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return model.Aggregate{}, model.ErrNotFound
	}

	aggregates, err := s.assemble(ctx, []model.Booking{booking})
	if err != nil {
		return model.Aggregate{}, err
	}

	return aggregates[0], nil
}

func (s *serviceImpl) assemble(ctx context.Context, bookings []model.Booking) ([]model.Aggregate, error) {
	ids := make([]string, len(bookings))
	for i, booking := range bookings {
		ids[i] = booking.ID
	}

	customers, err := s.repo.GetCustomers(ctx, ids)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking customers")

		return nil, err //nolint:wrapcheck
	}

	items, err := s.repo.GetItems(ctx, ids)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking items")

		return nil, err //nolint:wrapcheck
	}

	return model.Assemble(bookings, customers, items), nil
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheCountBooking)
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking from cache")
	}

	s.invalidateLists(ctx)
}

func (s *serviceImpl) publish(ctx context.Context, eventType string, res dto.BookingResponse) {
	message := kafka.Message{
		Key:   res.ID,
		Value: kafka.NewEvent(eventType, timezone.Now(), res),
	}

	if err := s.events.SendMessages(ctx, s.cfg.Kafka.Topics.Booking, message); err != nil {
		log.Error().Err(err).Str("event", eventType).Str("booking_id", res.ID).Msg("failed to publish booking event")
	}
}
