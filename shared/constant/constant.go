package constant

import (
	"time"
)

const (
	ContextSystem = "system"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID       contextKey = "user_id"
	ContextKeyUsername     contextKey = "username"
	ContextKeyUserRole     contextKey = "user_role"
	ContextKeyTokenID      contextKey = "token_id"
	ContextKeySessionToken contextKey = "session_token"
)

const (
	RoleAdmin = "admin"
)

const (
	RequestParamID       = "id"
	RequestParamCategory = "category"
	RequestParamStatus   = "status"
	RequestParamActive   = "active"
	RequestMaxMemory     = 10 << 20 // 10 MB
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
)

const (
	DateFormat        = time.RFC3339
	DisplayDateFormat = "2 Jan 2006, 15:04"
)

const (
	MinutesToSeconds = 60
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelWebScopeName        = "web"
	OtelEventScopeName      = "event"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderHost               = "Host"
	RequestHeaderForwardedHost      = "X-Forwarded-Host"
)

const (
	ResponseHeaderContentTypeOptions = "X-Content-Type-Options"
	ResponseHeaderFrameOptions       = "X-Frame-Options"
	ResponseHeaderReferrerPolicy     = "Referrer-Policy"
	ResponseHeaderHSTS               = "Strict-Transport-Security"
	ResponseHeaderLocation           = "Location"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html; charset=utf-8"
	FormFile        = "file"
	FormImage       = "image"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	PathAdmin      = "/admin"
	PathAdminLogin = "/admin/login"
	PathHome       = "/"
)

const (
	Empty = ""
)
