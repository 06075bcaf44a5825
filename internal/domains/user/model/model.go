package model

import (
	"time"

	"tourism/shared/failure"
	"tourism/shared/model"
)

const (
	TableName           = "users"
	CredentialTableName = "user_credentials"
	UserRoleTableName   = "user_roles"
	RoleTableName       = "roles"

	EntityName           = "user"
	CredentialEntityName = "user_credential"
	AccountEntityName    = "account"

	FieldID                = "id"
	FieldEmail             = "email"
	FieldFullName          = "full_name"
	FieldUserType          = "user_type"
	FieldPartnerID         = "partner_id"
	FieldIsActive          = "is_active"
	FieldIsVerified        = "is_verified"
	FieldUserID            = "user_id"
	FieldRoleID            = "role_id"
	FieldPasswordHash      = "password_hash"
	FieldLastLogin         = "last_login"
	FieldPasswordUpdatedAt = "password_updated_at"
	FieldIsLocked          = "is_locked"
)

var (
	ErrNotFound      = failure.NotFound("User not found")
	ErrRoleNotFound  = failure.NotFound("Role not found")
	ErrEmailTaken    = failure.Conflict("The user with this username already exists in the system.")
	ErrLocked        = failure.BadRequestFromString("User account is locked")
	ErrInactive      = failure.BadRequestFromString("Inactive user")
	ErrWrongPassword = failure.BadRequestFromString("Incorrect email or password")
)

type User struct {
	ID         string  `db:"id"`
	FullName   string  `db:"full_name"`
	Email      string  `db:"email"`
	Phone      *string `db:"phone"`
	UserType   string  `db:"user_type"`
	PartnerID  *string `db:"partner_id"`
	IsActive   bool    `db:"is_active"`
	IsVerified bool    `db:"is_verified"`
	model.Metadata
}

type Credential struct {
	ID                string     `db:"id"`
	UserID            string     `db:"user_id"`
	PasswordHash      string     `db:"password_hash"`
	PasswordAlgo      string     `db:"password_algo"`
	LastLogin         *time.Time `db:"last_login"`
	PasswordUpdatedAt *time.Time `db:"password_updated_at"`
	IsLocked          bool       `db:"is_locked"`
}

// Account is a user read together with the login-relevant columns of its credentials.
type Account struct {
	User
	PasswordHash string `db:"password_hash" table:"user_credentials"`
	IsLocked     bool   `db:"is_locked"     table:"user_credentials"`
}

func (Account) GetJoinQuery() string {
	return "JOIN user_credentials ON user_credentials.user_id = users.id"
}
