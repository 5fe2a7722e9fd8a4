package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"annadata-backend/internal/shared/auth"
	"annadata-backend/internal/shared/telemetry"
)

const (
	userIDKey      = "userId"
	userEmailKey   = "userEmail"
	userNameKey    = "userName"
	userPictureKey = "userPicture"
	isGuestKey     = "isGuest"
	verifiedKey    = "identityVerified"

	emailCookie = "userEmail"
)

// Auth extracts the caller identity from a Bearer JWT, the userEmail session
// cookie or the X-Guest-Id header, in that order. It never rejects a request;
// handlers decide what an anonymous caller may do. Only the JWT is a verified
// identity; the cookie is unsigned and serves read-only legacy endpoints.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}

		if authHeader := strings.TrimSpace(c.GetHeader("Authorization")); authHeader != "" {
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if ok {
				claims, err := auth.VerifyJWT(strings.TrimSpace(token))
				if err == nil {
					c.Set(userIDKey, claims.Subject)
					if claims.Email != "" {
						c.Set(userEmailKey, claims.Email)
					}
					if claims.Name != "" {
						c.Set(userNameKey, claims.Name)
					}
					if claims.Picture != "" {
						c.Set(userPictureKey, claims.Picture)
					}
					c.Set(isGuestKey, false)
					c.Set(verifiedKey, true)
					c.Next()
					return
				}
			}
			telemetry.Debug("auth.token_ignored", map[string]any{
				"request_id": RequestIDFromContext(c),
				"path":       c.Request.URL.Path,
			})
		}

		if email, err := c.Cookie(emailCookie); err == nil && strings.TrimSpace(email) != "" {
			c.Set(userEmailKey, strings.TrimSpace(email))
			c.Set(isGuestKey, false)
			c.Next()
			return
		}

		if guestID := strings.TrimSpace(c.GetHeader("X-Guest-Id")); guestID != "" {
			c.Set(userIDKey, "guest:"+guestID)
			c.Set(isGuestKey, true)
		}
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by the auth middleware.
func UserIDFromContext(c *gin.Context) string {
	return stringFromContext(c, userIDKey)
}

// UserEmailFromContext fetches the user email set by the auth middleware.
func UserEmailFromContext(c *gin.Context) string {
	return stringFromContext(c, userEmailKey)
}

// UserNameFromContext fetches the user name set by the auth middleware.
func UserNameFromContext(c *gin.Context) string {
	return stringFromContext(c, userNameKey)
}

// UserPictureFromContext fetches the user picture set by the auth middleware.
func UserPictureFromContext(c *gin.Context) string {
	return stringFromContext(c, userPictureKey)
}

// IsGuest reports whether the caller identified only with X-Guest-Id.
func IsGuest(c *gin.Context) bool {
	if c == nil {
		return false
	}
	val, _ := c.Get(isGuestKey)
	guest, _ := val.(bool)
	return guest
}

// Authenticated reports whether the caller carries a signed-in identity.
func Authenticated(c *gin.Context) bool {
	if IsGuest(c) {
		return false
	}
	return UserIDFromContext(c) != "" || UserEmailFromContext(c) != ""
}

// Verified reports whether the identity came from a valid signed token. State
// changing and private endpoints require it.
func Verified(c *gin.Context) bool {
	if c == nil {
		return false
	}
	return c.GetBool(verifiedKey) && UserIDFromContext(c) != ""
}

func stringFromContext(c *gin.Context, key string) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(key)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}
