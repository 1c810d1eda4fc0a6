package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// UserIDKey کلید شناسه کاربر در gin.Context
	UserIDKey = "userID"
	// TokenCookie کوکی‌ای که login توکن را در آن می‌گذارد
	TokenCookie = "token"
)

// TokenParser هر چیزی که توکن را به شناسه کاربر تبدیل کند
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// JWTAuthMiddleware بدون توکن معتبر درخواست را با 401 رد می‌کند
func JWTAuthMiddleware(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			return
		}
		userID, err := parser.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token is expired or invalid"})
			return
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// OptionalAuthMiddleware اگر توکن معتبر بود userID را ست می‌کند، وگرنه درخواست ناشناس ادامه می‌یابد
func OptionalAuthMiddleware(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := extractToken(c); tokenString != "" {
			if userID, err := parser.ParseToken(tokenString); err == nil {
				c.Set(UserIDKey, userID)
			}
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if token, err := c.Cookie(TokenCookie); err == nil {
		return token
	}
	return ""
}
