package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// 명시적으로 허용된 Origin 목록
var allowedOrigins = map[string]bool{
	"https://community.modhub.io": true,
	"http://localhost:5173":       true,
	"http://localhost:3000":       true,
}

func originAllowed(origin string) bool {
	if allowedOrigins[origin] {
		return true
	}
	// CloudFront 배포 도메인은 패턴으로 허용
	return strings.HasPrefix(origin, "https://") && strings.HasSuffix(origin, ".cloudfront.net")
}

// CORS returns a middleware that handles CORS
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if originAllowed(origin) {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, PATCH, OPTIONS")
			h.Set("Access-Control-Max-Age", "43200")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
