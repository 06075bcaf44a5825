package model

import (
	"tourism/shared/failure"
	"tourism/shared/model"
)

const (
	RoleTableName           = "roles"
	PermissionTableName     = "permissions"
	RolePermissionTableName = "role_permissions"

	RoleEntityName       = "role"
	PermissionEntityName = "permission"

	FieldID           = "id"
	FieldName         = "name"
	FieldCode         = "code"
	FieldRoleID       = "role_id"
	FieldPermissionID = "permission_id"
)

var (
	ErrRoleExists       = failure.Conflict("Role with this name already exists")
	ErrPermissionExists = failure.Conflict("Permission with this code already exists")
)

type Role struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	model.Metadata
}

type Permission struct {
	ID          string  `db:"id"`
	Code        string  `db:"code"`
	Description *string `db:"description"`
	model.Metadata
}
