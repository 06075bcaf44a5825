package user

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tourism/infras/otel"
	"tourism/internal/domains/user/model"
	"tourism/internal/domains/user/model/dto"
	"tourism/internal/domains/user/service"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	"tourism/shared/validator"
	"tourism/transport/http/middleware"
	"tourism/transport/http/response"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		byID := routerGroup.With(middleware.UUIDParams(constant.RequestParamID))
		byRole := routerGroup.With(middleware.UUIDParams(constant.RequestParamID, constant.RequestParamRoleID))

		routerGroup.Post("/", handler.CreateUser)
		routerGroup.Get("/", handler.GetUsers)
		routerGroup.Get("/me", handler.GetMe)
		byID.Get("/{id}", handler.GetUserByID)
		byID.Put("/{id}", handler.UpdateUser)
		byID.Delete("/{id}", handler.DeleteUser)
		byID.Post("/{id}/activate", handler.ActivateUser)
		byID.Post("/{id}/verify", handler.VerifyUser)
		byID.Post("/{id}/password", handler.ResetPassword)
		byID.Post("/{id}/lock", handler.LockUser)
		byID.Post("/{id}/unlock", handler.UnlockUser)
		byRole.Post("/{id}/roles/{role_id}", handler.AssignRole)
		byRole.Delete("/{id}/roles/{role_id}", handler.RemoveRole)
	})
}

func userFilter(r *http.Request) gDto.FilterGroup {
	filter := gDto.NewFilterGroup()
	query := r.URL.Query()

	if userType := query.Get(model.FieldUserType); userType != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.FilterEq(model.TableName, model.FieldUserType, userType))
	}

	if search := query.Get(constant.RequestParamSearch); search != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldEmail,
			Value:    search,
			Operator: gDto.FilterOperatorLike,
			Table:    model.TableName,
		})
	}

	return filter
}

// CreateUser handles the creation of a new user.
// @Summary Create a new user
// @Description Create a user together with its bcrypt credentials.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Create User Request"
// @Success 201 {object} response.Data[dto.UserResponse] "User created"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/ [post]
// @Security BearerAuth
func (handler *Handler) CreateUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateUser")
	defer scope.End()

	req := dto.CreateUserRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	user, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create user")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, user)
}

// GetUsers retrieves all users.
// @Summary Get all users
// @Tags User
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param user_type query string false "Filter by user type"
// @Param search query string false "Email contains"
// @Success 200 {object} response.Data[dto.GetUsersResponse] "List of users"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/ [get]
// @Security BearerAuth
func (handler *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	users, err := handler.service.GetAll(ctx, queryParams, userFilter(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get users")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, users)
}

// GetMe retrieves the authenticated user.
// @Summary Get current user
// @Tags User
// @Produce json
// @Success 200 {object} response.Data[dto.UserResponse] "Current user"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/users/me [get]
// @Security BearerAuth
func (handler *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMe")
	defer scope.End()

	user, err := handler.service.Me(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, user)
}

// GetUserByID retrieves a user by its ID.
// @Summary Get a user by ID
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Data[dto.UserResponse] "User details"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserByID")
	defer scope.End()

	user, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, user)
}

// UpdateUser patches a user.
// @Summary Update a user by ID
// @Description Patch full name and phone; a password, when present, replaces the credentials hash.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateUserRequest true "Update User Request"
// @Success 200 {object} response.Data[dto.UserResponse] "Updated user"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateUser")
	defer scope.End()

	req := dto.UpdateUserRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	user, err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update user")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, user)
}

// DeleteUser deletes a user.
// @Summary Delete a user by ID
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Message "User deleted"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteUser")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete user")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "User deleted successfully")
}

// ActivateUser marks a user active.
// @Summary Activate a user
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Data[dto.UserResponse] "Activated user"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/users/{id}/activate [post]
// @Security BearerAuth
func (handler *Handler) ActivateUser(w http.ResponseWriter, r *http.Request) {
	handler.userAction(w, r, "ActivateUser", handler.service.Activate)
}

// VerifyUser marks a user verified.
// @Summary Verify a user
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Data[dto.UserResponse] "Verified user"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/users/{id}/verify [post]
// @Security BearerAuth
func (handler *Handler) VerifyUser(w http.ResponseWriter, r *http.Request) {
	handler.userAction(w, r, "VerifyUser", handler.service.Verify)
}

// ResetPassword sets a new password for a user.
// @Summary Reset a user's password
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.ResetPasswordRequest true "New password"
// @Success 200 {object} response.Message "Password updated"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/users/{id}/password [post]
// @Security BearerAuth
func (handler *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetPassword")
	defer scope.End()

	req := dto.ResetPasswordRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.ResetPassword(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reset password")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Password updated successfully")
}

// LockUser locks a user's credentials.
// @Summary Lock a user
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Message "User locked"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/users/{id}/lock [post]
// @Security BearerAuth
func (handler *Handler) LockUser(w http.ResponseWriter, r *http.Request) {
	handler.lockAction(w, r, "LockUser", handler.service.Lock, "User locked")
}

// UnlockUser unlocks a user's credentials.
// @Summary Unlock a user
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Message "User unlocked"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/users/{id}/unlock [post]
// @Security BearerAuth
func (handler *Handler) UnlockUser(w http.ResponseWriter, r *http.Request) {
	handler.lockAction(w, r, "UnlockUser", handler.service.Unlock, "User unlocked")
}

// AssignRole links a role to a user.
// @Summary Assign a role
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Param role_id path string true "Role ID"
// @Success 200 {object} response.Data[dto.UserResponse] "User with roles"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/users/{id}/roles/{role_id} [post]
// @Security BearerAuth
func (handler *Handler) AssignRole(w http.ResponseWriter, r *http.Request) {
	roleID := chi.URLParam(r, constant.RequestParamRoleID)

	handler.userAction(w, r, "AssignRole", func(ctx context.Context, id string) (dto.UserResponse, error) {
		return handler.service.AssignRole(ctx, id, roleID)
	})
}

// RemoveRole unlinks a role from a user.
// @Summary Remove a role
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Param role_id path string true "Role ID"
// @Success 200 {object} response.Data[dto.UserResponse] "User with roles"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/users/{id}/roles/{role_id} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveRole(w http.ResponseWriter, r *http.Request) {
	roleID := chi.URLParam(r, constant.RequestParamRoleID)

	handler.userAction(w, r, "RemoveRole", func(ctx context.Context, id string) (dto.UserResponse, error) {
		return handler.service.RemoveRole(ctx, id, roleID)
	})
}

func (handler *Handler) userAction(w http.ResponseWriter, r *http.Request, name string, action func(ctx context.Context, id string) (dto.UserResponse, error)) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	user, err := action(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("action", name).Msg("user action failed")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, user)
}

func (handler *Handler) lockAction(w http.ResponseWriter, r *http.Request, name string, action func(ctx context.Context, id string) error, message string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	if err := action(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("action", name).Msg("user action failed")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, message)
}
