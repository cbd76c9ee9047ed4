package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RoleKey   contextKey = "role"
	TokenKey  contextKey = "token"
)

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}

// SetUserContext stores the session owner resolved by the auth middleware.
func SetUserContext(ctx context.Context, userID uuid.UUID, role string) context.Context {
	if info, ok := ctx.Value(accessInfoKey).(*AccessInfo); ok {
		info.UserID = userID.String()
		info.Role = role
	}
	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}

// GetTokenFromContext returns the bearer token of the client session, if any.
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

// AccessInfo collects what the access log reports about the caller. The
// logger middleware installs it before the session is resolved and reads it
// after the handler returns.
type AccessInfo struct {
	UserID string
	Role   string
}

const accessInfoKey contextKey = "access_info"

func WithAccessInfo(ctx context.Context) (context.Context, *AccessInfo) {
	info := &AccessInfo{}
	return context.WithValue(ctx, accessInfoKey, info), info
}
