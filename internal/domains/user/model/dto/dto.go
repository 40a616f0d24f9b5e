package dto

import (
	"time"

	"impressions/internal/domains/user/model"
	"impressions/shared/constant"
	gDto "impressions/shared/dto"
	gModel "impressions/shared/model"
)

type EnsureAdminRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *EnsureAdminRequest) ToModel(id, hashedPassword, user string, now time.Time) model.AdminUser {
	return model.AdminUser{
		ID:           id,
		Username:     r.Username,
		PasswordHash: hashedPassword,
		Role:         constant.RoleAdmin,
		Metadata:     gModel.NewMetadata(now, user),
	}
}

type UpdatePasswordRequest struct {
	PasswordHash string `db:"password_hash"`
}

// AdminUserResponse never carries the password hash.
type AdminUserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	LastLogin string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *AdminUserResponse) FromModel(m model.AdminUser) {
	r.ID = m.ID
	r.Username = m.Username
	r.Role = m.Role
	r.Metadata.FromModel(m.Metadata)

	if m.LastLogin != nil {
		r.LastLogin = m.LastLogin.Format(constant.DateFormat)
	}
}
