package dto

import (
	"github.com/google/uuid"

	"tourism/internal/domains/rbac/model"
	"tourism/shared"
	gDto "tourism/shared/dto"
	gModel "tourism/shared/model"
	"tourism/shared/timezone"
)

type CreateRoleRequest struct {
	Name          string   `json:"name"           validate:"required,max=100"`
	Description   *string  `json:"description"    validate:"omitempty"`
	PermissionIDs []string `json:"permission_ids" validate:"omitempty,dive,uuid"`
}

func (r *CreateRoleRequest) ToModel(actor string) model.Role {
	return model.Role{
		ID:          uuid.NewString(),
		Name:        r.Name,
		Description: r.Description,
		Metadata:    gModel.NewMetadata(actor, timezone.Now()),
	}
}

type CreatePermissionRequest struct {
	Code        string  `json:"code"        validate:"required,max=120"`
	Description *string `json:"description" validate:"omitempty"`
}

func (r *CreatePermissionRequest) ToModel(actor string) model.Permission {
	return model.Permission{
		ID:          uuid.NewString(),
		Code:        r.Code,
		Description: r.Description,
		Metadata:    gModel.NewMetadata(actor, timezone.Now()),
	}
}

type RoleResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   *string  `json:"description"`
	PermissionIDs []string `json:"permission_ids"`
	gDto.Metadata
}

func (r *RoleResponse) FromModel(role model.Role, permissionIDs []string) {
	r.ID = role.ID
	r.Name = role.Name
	r.Description = role.Description

	r.PermissionIDs = permissionIDs
	if r.PermissionIDs == nil {
		r.PermissionIDs = []string{}
	}

	r.Metadata.FromModel(role.Metadata)
}

type GetRolesResponse struct {
	Roles     []RoleResponse `json:"roles"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRolesResponse) FromModels(roles []model.Role, links map[string][]string, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Roles = make([]RoleResponse, len(roles))
	for i, role := range roles {
		r.Roles[i].FromModel(role, links[role.ID])
	}
}

type PermissionResponse struct {
	ID          string  `json:"id"`
	Code        string  `json:"code"`
	Description *string `json:"description"`
	gDto.Metadata
}

func (r *PermissionResponse) FromModel(permission model.Permission) {
	r.ID = permission.ID
	r.Code = permission.Code
	r.Description = permission.Description
	r.Metadata.FromModel(permission.Metadata)
}

type GetPermissionsResponse struct {
	Permissions []PermissionResponse `json:"permissions"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetPermissionsResponse) FromModels(permissions []model.Permission, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Permissions = make([]PermissionResponse, len(permissions))
	for i, permission := range permissions {
		r.Permissions[i].FromModel(permission)
	}
}
