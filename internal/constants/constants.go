package constants

import "time"

// Context keys set by the auth middleware
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"

	// ContextKeyExposeErrors marks requests whose 500 responses may carry the internal cause
	ContextKeyExposeErrors = "expose_errors"
)

const (
	// DefaultTokenTTL is the validity window of a session token
	DefaultTokenTTL = 24 * time.Hour

	// BearerScheme is the Authorization header scheme carrying session tokens
	BearerScheme = "Bearer"
)

// Todo list filters
const (
	TodoFilterAll       = "all"
	TodoFilterActive    = "active"
	TodoFilterCompleted = "completed"
)
