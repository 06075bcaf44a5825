package rbac

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tourism/infras/otel"
	"tourism/internal/domains/rbac/model/dto"
	"tourism/internal/domains/rbac/service"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	"tourism/shared/validator"
	"tourism/transport/http/response"
)

type Handler struct {
	service service.RBAC
	otel    otel.Otel
}

func New(service service.RBAC, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rbac", func(routerGroup chi.Router) {
		routerGroup.Get("/roles/", handler.GetRoles)
		routerGroup.Post("/roles/", handler.CreateRole)
		routerGroup.Get("/permissions/", handler.GetPermissions)
		routerGroup.Post("/permissions/", handler.CreatePermission)
	})
}

// GetRoles lists roles with their permission ids.
// @Summary List roles
// @Tags RBAC
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetRolesResponse] "List of roles"
// @Failure 403 {object} response.Error
// @Router /v1/rbac/roles/ [get]
// @Security BearerAuth
func (handler *Handler) GetRoles(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoles")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	roles, err := handler.service.GetRoles(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get roles")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, roles)
}

// CreateRole creates a role and links the given permissions.
// @Summary Create a role
// @Tags RBAC
// @Accept json
// @Produce json
// @Param request body dto.CreateRoleRequest true "Create Role Request"
// @Success 201 {object} response.Data[dto.RoleResponse] "Role created"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/rbac/roles/ [post]
// @Security BearerAuth
func (handler *Handler) CreateRole(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRole")
	defer scope.End()

	req := dto.CreateRoleRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	role, err := handler.service.CreateRole(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create role")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, role)
}

// GetPermissions lists permissions.
// @Summary List permissions
// @Tags RBAC
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetPermissionsResponse] "List of permissions"
// @Failure 403 {object} response.Error
// @Router /v1/rbac/permissions/ [get]
// @Security BearerAuth
func (handler *Handler) GetPermissions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPermissions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	permissions, err := handler.service.GetPermissions(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get permissions")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, permissions)
}

// CreatePermission creates a permission code.
// @Summary Create a permission
// @Tags RBAC
// @Accept json
// @Produce json
// @Param request body dto.CreatePermissionRequest true "Create Permission Request"
// @Success 201 {object} response.Data[dto.PermissionResponse] "Permission created"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/rbac/permissions/ [post]
// @Security BearerAuth
func (handler *Handler) CreatePermission(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePermission")
	defer scope.End()

	req := dto.CreatePermissionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	permission, err := handler.service.CreatePermission(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create permission")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, permission)
}
