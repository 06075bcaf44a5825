package dto

import (
	"github.com/google/uuid"

	"tourism/internal/domains/user/model"
	"tourism/shared"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	gModel "tourism/shared/model"
	"tourism/shared/password"
	"tourism/shared/timezone"
)

type CreateUserRequest struct {
	FullName   string  `json:"full_name"   validate:"required,max=150"`
	Email      string  `json:"email"       validate:"required,email,max=150"`
	Phone      *string `json:"phone"       validate:"omitempty,max=20"`
	Password   string  `json:"password"    validate:"required,min=8"`
	UserType   string  `json:"user_type"   validate:"omitempty,oneof=PORTAL_ADMIN PORTAL_STAFF PARTNER_ADMIN PARTNER_USER"`
	PartnerID  *string `json:"partner_id"  validate:"omitempty,uuid"`
	IsActive   *bool   `json:"is_active"`
	IsVerified *bool   `json:"is_verified"`
}

// ToModel builds the user row and its credentials; hash is the already computed password hash.
func (r *CreateUserRequest) ToModel(actor, hash string) (model.User, model.Credential) {
	now := timezone.Now()

	userType := r.UserType
	if userType == "" {
		userType = constant.UserTypePortalStaff
	}

	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	isVerified := false
	if r.IsVerified != nil {
		isVerified = *r.IsVerified
	}

	user := model.User{
		ID:         uuid.NewString(),
		FullName:   r.FullName,
		Email:      r.Email,
		Phone:      r.Phone,
		UserType:   userType,
		PartnerID:  r.PartnerID,
		IsActive:   isActive,
		IsVerified: isVerified,
		Metadata:   gModel.NewMetadata(actor, now),
	}

	credential := model.Credential{
		ID:                uuid.NewString(),
		UserID:            user.ID,
		PasswordHash:      hash,
		PasswordAlgo:      password.Algorithm,
		PasswordUpdatedAt: &now,
	}

	return user, credential
}

// UpdateUserRequest patches the present fields. Password is applied to the credentials, not the user row.
type UpdateUserRequest struct {
	FullName *string `json:"full_name" db:"full_name" validate:"omitempty,max=150"`
	Phone    *string `json:"phone"     db:"phone"     validate:"omitempty,max=20"`
	Password *string `json:"password"  db:"-"         validate:"omitempty,min=8"`
}

func (r UpdateUserRequest) IsEmpty() bool {
	return r.FullName == nil && r.Phone == nil && r.Password == nil
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type UserResponse struct {
	ID         string   `json:"id"`
	FullName   string   `json:"full_name"`
	Email      string   `json:"email"`
	Phone      *string  `json:"phone"`
	UserType   string   `json:"user_type"`
	PartnerID  *string  `json:"partner_id"`
	IsActive   bool     `json:"is_active"`
	IsVerified bool     `json:"is_verified"`
	RoleIDs    []string `json:"role_ids"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(user model.User, roleIDs []string) {
	r.ID = user.ID
	r.FullName = user.FullName
	r.Email = user.Email
	r.Phone = user.Phone
	r.UserType = user.UserType
	r.PartnerID = user.PartnerID
	r.IsActive = user.IsActive
	r.IsVerified = user.IsVerified

	r.RoleIDs = roleIDs
	if r.RoleIDs == nil {
		r.RoleIDs = []string{}
	}

	r.Metadata.FromModel(user.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod, nil)
	}
}
