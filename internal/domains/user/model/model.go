package model

import (
	"time"

	"impressions/shared/model"
)

const (
	TableName  = "admin_users"
	EntityName = "admin user"

	FieldID           = "id"
	FieldUsername     = "username"
	FieldPasswordHash = "password_hash"
	FieldRole         = "role"
	FieldLastLogin    = "last_login"
)

// AdminUser is a panel account. Accounts are created by the seed command only.
type AdminUser struct {
	ID           string     `db:"id"`
	Username     string     `db:"username"`
	PasswordHash string     `db:"password_hash"`
	Role         string     `db:"role"`
	LastLogin    *time.Time `db:"last_login"`
	model.Metadata
}
