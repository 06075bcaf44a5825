package destination

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tourism/infras/otel"
	"tourism/internal/domains/destination/model"
	"tourism/internal/domains/destination/model/dto"
	"tourism/internal/domains/destination/service"
	"tourism/shared"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	"tourism/shared/failure"
	"tourism/shared/validator"
	"tourism/transport/http/middleware"
	"tourism/transport/http/response"
)

const (
	queryParamSuggest = "q"
	queryParamLimit   = "limit"
)

type Handler struct {
	service service.Destination
	otel    otel.Otel
}

func New(service service.Destination, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router mounts /destinations. chi keys a path segment by one param name, so the
// single-resource routes share {id} and GET reads it as the slug.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/destinations", func(routerGroup chi.Router) {
		byID := routerGroup.With(middleware.UUIDParams(constant.RequestParamID))

		routerGroup.Get("/", handler.GetDestinations)
		routerGroup.Post("/", handler.CreateDestination)
		routerGroup.Get("/search/suggest", handler.SuggestDestinations)
		routerGroup.Get("/{id}", handler.GetDestinationBySlug)
		byID.Put("/{id}", handler.UpdateDestination)
		byID.Delete("/{id}", handler.DeleteDestination)
	})
}

// CreateDestination handles the creation of a destination with its gallery.
// @Summary Create a new destination
// @Tags Destination
// @Accept json
// @Produce json
// @Param request body dto.CreateDestinationRequest true "Create Destination Request"
// @Success 201 {object} response.Data[dto.DestinationResponse] "Destination created"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/destinations/ [post]
// @Security BearerAuth
func (handler *Handler) CreateDestination(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDestination")
	defer scope.End()

	req := dto.CreateDestinationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	destination, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create destination")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, destination)
}

// GetDestinations lists destinations.
// @Summary Get all destinations
// @Tags Destination
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param is_featured query bool false "Only featured destinations"
// @Param search query string false "Case-insensitive name filter"
// @Success 200 {object} response.Data[dto.GetDestinationsResponse] "List of destinations"
// @Failure 500 {object} response.Error
// @Router /v1/destinations/ [get]
func (handler *Handler) GetDestinations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDestinations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filter := gDto.NewFilterGroup()
	if featured := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsFeatured)); featured != nil {
		filter.Filters = append(filter.Filters, gDto.FilterEq(model.TableName, model.FieldIsFeatured, *featured))
	}

	if search := r.URL.Query().Get(constant.RequestParamSearch); search != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldName,
			Value:    search,
			Operator: gDto.FilterOperatorLike,
			Table:    model.TableName,
		})
	}

	destinations, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get destinations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, destinations)
}

// SuggestDestinations ranks destination names against a free-text query.
// @Summary Suggest destinations
// @Tags Destination
// @Produce json
// @Param q query string true "Search text"
// @Param limit query int false "Maximum suggestions (1-20)"
// @Success 200 {object} response.Data[dto.SuggestResponse] "Ranked suggestions"
// @Failure 400 {object} response.Error
// @Router /v1/destinations/search/suggest [get]
func (handler *Handler) SuggestDestinations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SuggestDestinations")
	defer scope.End()

	req := dto.SuggestRequest{Query: r.URL.Query().Get(queryParamSuggest)}

	if raw := r.URL.Query().Get(queryParamLimit); raw != constant.Empty {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString("limit must be a number"))

			return
		}

		req.Limit = limit
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	suggestions, err := handler.service.Suggest(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to suggest destinations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, suggestions)
}

// GetDestinationBySlug retrieves a destination with its gallery.
// @Summary Get destination by slug
// @Tags Destination
// @Produce json
// @Param id path string true "Destination slug"
// @Success 200 {object} response.Data[dto.DestinationResponse] "Destination details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/destinations/{id} [get]
func (handler *Handler) GetDestinationBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDestinationBySlug")
	defer scope.End()

	destination, err := handler.service.GetBySlug(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, destination)
}

// UpdateDestination patches a destination.
// @Summary Update destination
// @Tags Destination
// @Accept json
// @Produce json
// @Param id path string true "Destination ID"
// @Param request body dto.UpdateDestinationRequest true "Update Destination Request"
// @Success 200 {object} response.Data[dto.DestinationResponse] "Updated destination"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/destinations/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateDestination(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDestination")
	defer scope.End()

	req := dto.UpdateDestinationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	destination, err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update destination")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, destination)
}

// DeleteDestination removes a destination; its images cascade.
// @Summary Delete destination
// @Tags Destination
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} response.Message "Destination deleted"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/destinations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDestination(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDestination")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete destination")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Destination deleted successfully")
}
