package dto

import (
	"time"

	"impressions/infras/jwt"
	userModel "impressions/internal/domains/user/model"
)

type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required,max=64"`
	Password string `json:"password" form:"password" validate:"required,max=72"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (l *LoginResponse) FromToken(token *jwt.Token) {
	l.AccessToken = token.AccessToken
	l.TokenType = token.TokenType
	l.ExpiresIn = token.ExpiresIn
	l.ExpiresAt = token.ExpiresAt
}

// Session is the server-side record of an issued token. Deleting it revokes the token.
type Session struct {
	UserID   string    `json:"user_id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	IssuedAt time.Time `json:"issued_at"`
}

func NewSession(user userModel.AdminUser, now time.Time) Session {
	return Session{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		IssuedAt: now,
	}
}

type CurrentUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	TokenID  string `json:"-"`
}

func (c *CurrentUser) FromModel(user userModel.AdminUser, tokenID string) {
	c.ID = user.ID
	c.Username = user.Username
	c.Role = user.Role
	c.TokenID = tokenID
}
