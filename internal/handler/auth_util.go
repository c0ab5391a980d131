package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"community-moderation-api/internal/response"
)

// currentUserID reads the authenticated user ID set by the auth middleware.
// Returns false when the request is unauthenticated (guest).
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return userID, true
}

// requireUserID reads the authenticated user ID or writes a 401 and
// returns false. Routes behind the auth middleware should always have
// the value; this guards against misconfigured routing.
func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return uuid.Nil, false
	}
	return userID, true
}
