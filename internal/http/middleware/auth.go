package middleware

import (
	"net/http"
	"strings"

	"globetrotter/internal/domain"
	"globetrotter/internal/utils"

	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// TokenValidator resolves a bearer token to a user id.
type TokenValidator interface {
	Validate(token string) (int64, error)
}

func bearerToken(c *gin.Context) (string, bool) {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if h == "" {
		return "", false
	}
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", true
	}
	return strings.TrimSpace(token), true
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":      msg,
		"code":       "unauthorized",
		"request_id": GetRequestID(c),
	})
}

func authenticate(c *gin.Context, v TokenValidator) bool {
	token, present := bearerToken(c)
	if !present {
		return true
	}
	if token == "" || v == nil {
		abortUnauthorized(c, "could not validate credentials")
		return false
	}
	id, err := v.Validate(token)
	if err != nil {
		if !domain.IsUnauthorized(err) {
			utils.LogError(GetRequestID(c), "auth", "validate", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":      "internal server error",
				"code":       "internal_error",
				"request_id": GetRequestID(c),
			})
			return false
		}
		abortUnauthorized(c, err.Error())
		return false
	}
	c.Set(userIDKey, id)
	return true
}

// AuthOptional validates a bearer token when one is sent and records the caller.
// Anonymous requests pass through.
func AuthOptional(v TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, v) {
			return
		}
		c.Next()
	}
}

// AuthRequired rejects requests without a valid bearer token.
func AuthRequired(v TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, v) {
			return
		}
		if _, ok := GetUserID(c); !ok {
			abortUnauthorized(c, "not authenticated")
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated caller, if any.
func GetUserID(c *gin.Context) (int64, bool) {
	if c == nil {
		return 0, false
	}
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(int64); ok && id > 0 {
			return id, true
		}
	}
	return 0, false
}
