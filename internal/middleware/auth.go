package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Auth returns a middleware that validates JWT tokens and rejects
// unauthenticated requests. On success the user ID and admin claim are
// stored in the gin context for downstream handlers.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required", "인증이 필요합니다")
			return
		}

		userID, isAdmin, ok := parseBearerToken(authHeader, jwtSecret)
		if !ok {
			abortUnauthorized(c, "Invalid or expired token", "유효하지 않거나 만료된 토큰입니다")
			return
		}

		c.Set("user_id", userID)
		c.Set("is_admin", isAdmin)
		c.Next()
	}
}

// OptionalAuth returns a middleware for routes that accept guests.
// No Authorization header means a guest request and passes through;
// a header that is present but invalid is still rejected.
func OptionalAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		userID, isAdmin, ok := parseBearerToken(authHeader, jwtSecret)
		if !ok {
			abortUnauthorized(c, "Invalid or expired token", "유효하지 않거나 만료된 토큰입니다")
			return
		}

		c.Set("user_id", userID)
		c.Set("is_admin", isAdmin)
		c.Next()
	}
}

// RequireAdmin returns a middleware that gates admin routes on the
// is_admin token claim. Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, _ := c.Get("is_admin")
		if admin, ok := isAdmin.(bool); !ok || !admin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "Admin privileges required",
				},
				"message": "관리자 권한이 필요합니다",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// parseBearerToken validates a "Bearer <token>" header and extracts the
// user ID and admin claim
func parseBearerToken(authHeader, jwtSecret string) (uuid.UUID, bool, bool) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return uuid.Nil, false, false
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, false, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, false, false
	}

	// Extract user ID from claims (support multiple claim formats)
	var userIDStr string
	if uid, ok := claims["user_id"].(string); ok {
		userIDStr = uid
	} else if sub, ok := claims["sub"].(string); ok {
		userIDStr = sub
	} else if uid, ok := claims["uid"].(string); ok {
		userIDStr = uid
	} else {
		return uuid.Nil, false, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false, false
	}

	isAdmin, _ := claims["is_admin"].(bool)
	return userID, isAdmin, true
}

func abortUnauthorized(c *gin.Context, message, localized string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
		"message": localized,
	})
	c.Abort()
}
