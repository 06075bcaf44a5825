package accommodation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tourism/infras/otel"
	"tourism/internal/domains/accommodation/model"
	"tourism/internal/domains/accommodation/model/dto"
	"tourism/internal/domains/accommodation/service"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	"tourism/shared/validator"
	"tourism/transport/http/middleware"
	"tourism/transport/http/response"
)

type Handler struct {
	service service.Accommodation
	otel    otel.Otel
}

func New(service service.Accommodation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/accommodations", func(routerGroup chi.Router) {
		byID := routerGroup.With(middleware.UUIDParams(constant.RequestParamID))

		routerGroup.Post("/", handler.CreateAccommodation)
		routerGroup.Get("/", handler.GetAccommodations)
		byID.Get("/{id}", handler.GetAccommodationByID)
		byID.Put("/{id}", handler.UpdateAccommodation)
		byID.Delete("/{id}", handler.DeleteAccommodation)
	})
}

// CreateAccommodation handles the creation of a new accommodation.
// @Summary Create a new accommodation
// @Tags Accommodation
// @Accept json
// @Produce json
// @Param request body dto.CreateAccommodationRequest true "Create Accommodation Request"
// @Success 201 {object} response.Data[dto.AccommodationResponse] "Accommodation created"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/accommodations/ [post]
// @Security BearerAuth
func (handler *Handler) CreateAccommodation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAccommodation")
	defer scope.End()

	req := dto.CreateAccommodationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	accommodation, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create accommodation")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, accommodation)
}

// GetAccommodations retrieves accommodations, optionally of one destination.
// @Summary Get all accommodations
// @Tags Accommodation
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param destination_id query string false "Filter by destination"
// @Success 200 {object} response.Data[dto.GetAccommodationsResponse] "List of accommodations"
// @Failure 500 {object} response.Error
// @Router /v1/accommodations/ [get]
func (handler *Handler) GetAccommodations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAccommodations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filter := gDto.NewFilterGroup()
	if destinationID := r.URL.Query().Get(model.FieldDestinationID); destinationID != constant.Empty {
		if err := validator.ValidateVar(destinationID, "uuid"); err != nil {
			response.WithError(w, err)

			return
		}

		filter.Filters = append(filter.Filters, gDto.FilterEq(model.TableName, model.FieldDestinationID, destinationID))
	}

	accommodations, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get accommodations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, accommodations)
}

// GetAccommodationByID retrieves an accommodation by its ID.
// @Summary Get accommodation by ID
// @Tags Accommodation
// @Produce json
// @Param id path string true "Accommodation ID"
// @Success 200 {object} response.Data[dto.AccommodationResponse] "Accommodation details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/accommodations/{id} [get]
func (handler *Handler) GetAccommodationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAccommodationByID")
	defer scope.End()

	accommodation, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, accommodation)
}

// UpdateAccommodation patches an accommodation.
// @Summary Update accommodation
// @Tags Accommodation
// @Accept json
// @Produce json
// @Param id path string true "Accommodation ID"
// @Param request body dto.UpdateAccommodationRequest true "Update Accommodation Request"
// @Success 200 {object} response.Data[dto.AccommodationResponse] "Updated accommodation"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/accommodations/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateAccommodation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAccommodation")
	defer scope.End()

	req := dto.UpdateAccommodationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	accommodation, err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update accommodation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, accommodation)
}

// DeleteAccommodation removes an accommodation.
// @Summary Delete accommodation
// @Tags Accommodation
// @Produce json
// @Param id path string true "Accommodation ID"
// @Success 200 {object} response.Message "Accommodation deleted"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/accommodations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAccommodation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAccommodation")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete accommodation")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Accommodation deleted successfully")
}
