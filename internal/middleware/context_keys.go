package middleware

import (
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the authenticated user's ID in the request context.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetSessionFromContext builds the session of the authenticated user.
func GetSessionFromContext(c *gin.Context) (domain.Session, bool) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return domain.Session{}, false
	}
	return domain.Session{UserID: userID}, true
}
