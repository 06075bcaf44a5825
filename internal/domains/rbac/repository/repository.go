package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"tourism/infras/otel"
	"tourism/infras/postgres"
	"tourism/internal/domains/rbac/model"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	gRepo "tourism/shared/repository"
)

type RBAC interface {
	RoleExist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	// CreateRole inserts the role and links the known permission ids in one transaction.
	CreateRole(ctx context.Context, role model.Role, permissionIDs []string) error
	GetRoles(ctx context.Context, params gDto.QueryParams) ([]model.Role, error)
	CountRoles(ctx context.Context) (int, error)
	RolePermissions(ctx context.Context, roleIDs []string) (map[string][]string, error)
	PermissionExist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	CreatePermission(ctx context.Context, permission model.Permission) error
	GetPermissions(ctx context.Context, params gDto.QueryParams) ([]model.Permission, error)
	CountPermissions(ctx context.Context) (int, error)
}

type repositoryImpl struct {
	roles           gRepo.Repository[model.Role]
	permissions     gRepo.Repository[model.Permission]
	rolePermissions gRepo.Association
	db              *postgres.Connection
	otel            otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RBAC {
	return &repositoryImpl{
		roles:       gRepo.NewRepository[model.Role](model.RoleEntityName, model.RoleTableName, model.FieldID, db, otel),
		permissions: gRepo.NewRepository[model.Permission](model.PermissionEntityName, model.PermissionTableName, model.FieldID, db, otel),
		rolePermissions: gRepo.Association{
			Table:        model.RolePermissionTableName,
			OwnerColumn:  model.FieldRoleID,
			TargetColumn: model.FieldPermissionID,
			TargetTable:  model.PermissionTableName,
		},
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) RoleExist(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return r.roles.Exist(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) CreateRole(ctx context.Context, role model.Role, permissionIDs []string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rbac.CreateRole")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return gRepo.Transact(ctx, r.db.Write, func(tx *sqlx.Tx) error {
		if err := r.roles.InsertTx(ctx, tx, role); err != nil {
			return err
		}

		return r.rolePermissions.Add(ctx, tx, role.ID, permissionIDs)
	})
}

func (r *repositoryImpl) GetRoles(ctx context.Context, params gDto.QueryParams) ([]model.Role, error) {
	return r.roles.GetAll(ctx, params, gDto.FilterGroup{}) //nolint:wrapcheck
}

func (r *repositoryImpl) CountRoles(ctx context.Context) (int, error) {
	return r.roles.Count(ctx, gDto.FilterGroup{}) //nolint:wrapcheck
}

func (r *repositoryImpl) RolePermissions(ctx context.Context, roleIDs []string) (map[string][]string, error) {
	return r.rolePermissions.ListMany(ctx, r.db.Read, roleIDs) //nolint:wrapcheck
}

func (r *repositoryImpl) PermissionExist(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return r.permissions.Exist(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) CreatePermission(ctx context.Context, permission model.Permission) error {
	return r.permissions.Insert(ctx, permission) //nolint:wrapcheck
}

func (r *repositoryImpl) GetPermissions(ctx context.Context, params gDto.QueryParams) ([]model.Permission, error) {
	return r.permissions.GetAll(ctx, params, gDto.FilterGroup{}) //nolint:wrapcheck
}

func (r *repositoryImpl) CountPermissions(ctx context.Context) (int, error) {
	return r.permissions.Count(ctx, gDto.FilterGroup{}) //nolint:wrapcheck
}
