package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"tourism/infras/otel"
	"tourism/infras/postgres"
	"tourism/internal/domains/user/model"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	"tourism/shared/password"
	gRepo "tourism/shared/repository"
	"tourism/shared/timezone"
)

type User interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	// CreateWithCredential inserts the user and its credentials in one transaction.
	CreateWithCredential(ctx context.Context, user model.User, credential model.Credential) error
	// GetAccount reads a user joined with its credentials; zero value when absent.
	GetAccount(ctx context.Context, filter gDto.FilterGroup) (model.Account, error)
	UpdateCredential(ctx context.Context, userID string, req map[string]any) error
	// SetPassword replaces the credential hash, creating the credentials row when missing.
	SetPassword(ctx context.Context, userID, hash string) error
	RoleExist(ctx context.Context, roleID string) (bool, error)
	AddRole(ctx context.Context, userID, roleID string) error
	RemoveRole(ctx context.Context, userID, roleID string) error
	Roles(ctx context.Context, userID string) ([]string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	credentials gRepo.Repository[model.Credential]
	accounts    gRepo.Repository[model.Account]
	roles       gRepo.Association
	db          *postgres.Connection
	otel        otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository:  gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
		credentials: gRepo.NewRepository[model.Credential](model.CredentialEntityName, model.CredentialTableName, model.FieldID, db, otel),
		accounts:    gRepo.NewRepository[model.Account](model.AccountEntityName, model.TableName, model.FieldID, db, otel),
		roles: gRepo.Association{
			Table:        model.UserRoleTableName,
			OwnerColumn:  model.FieldUserID,
			TargetColumn: model.FieldRoleID,
			TargetTable:  model.RoleTableName,
		},
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) CreateWithCredential(ctx context.Context, user model.User, credential model.Credential) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.CreateWithCredential")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return gRepo.Transact(ctx, r.db.Write, func(tx *sqlx.Tx) error {
		if err := r.InsertTx(ctx, tx, user); err != nil {
			return err
		}

		return r.credentials.InsertTx(ctx, tx, credential)
	})
}

func (r *repositoryImpl) GetAccount(ctx context.Context, filter gDto.FilterGroup) (model.Account, error) {
	return r.accounts.Get(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) UpdateCredential(ctx context.Context, userID string, req map[string]any) error {
	filter := gDto.NewFilterGroup(gDto.FilterEq(model.CredentialTableName, model.FieldUserID, userID))

	return r.credentials.Update(ctx, req, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) SetPassword(ctx context.Context, userID, hash string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.SetPassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := fmt.Sprintf(
		`INSERT INTO %s (id, user_id, password_hash, password_algo, password_updated_at, is_locked)
		VALUES ($1, $2, $3, $4, $5, false)
		ON CONFLICT (user_id) DO UPDATE SET password_hash = EXCLUDED.password_hash,
			password_algo = EXCLUDED.password_algo, password_updated_at = EXCLUDED.password_updated_at`,
		model.CredentialTableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = r.db.Write.ExecContext(ctx, query, uuid.NewString(), userID, hash, password.Algorithm, timezone.Now()); err != nil {
		return fmt.Errorf("failed to set password: %w", err)
	}

	return nil
}

func (r *repositoryImpl) RoleExist(ctx context.Context, roleID string) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)", model.RoleTableName)

	exist := false
	if err := r.db.Read.GetContext(ctx, &exist, query, roleID); err != nil {
		return false, fmt.Errorf("failed to check role: %w", err)
	}

	return exist, nil
}

func (r *repositoryImpl) AddRole(ctx context.Context, userID, roleID string) error {
	return gRepo.Transact(ctx, r.db.Write, func(tx *sqlx.Tx) error {
		return r.roles.Add(ctx, tx, userID, []string{roleID})
	})
}

func (r *repositoryImpl) RemoveRole(ctx context.Context, userID, roleID string) error {
	return r.roles.Remove(ctx, r.db.Write, userID, roleID) //nolint:wrapcheck
}

func (r *repositoryImpl) Roles(ctx context.Context, userID string) ([]string, error) {
	return r.roles.List(ctx, r.db.Read, userID) //nolint:wrapcheck
}
