package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// Keys used to store the authenticated caller in the request context.
const (
	userIDKey  = contextKey("userID")
	isAdminKey = contextKey("isAdmin")
)

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, userID string, isAdmin bool) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, isAdminKey, isAdmin)
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// IsAdminFromContext reports whether the authenticated user is an administrator.
func IsAdminFromContext(c *gin.Context) bool {
	isAdmin, _ := c.Request.Context().Value(isAdminKey).(bool)
	return isAdmin
}
