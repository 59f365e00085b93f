// Package jwtmw issues and validates bearer tokens and provides the Gin
// middleware that enforces them.
package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextSubject is the gin context key holding the validated token subject.
const ContextSubject = "tokenSubject"

// TokenParser validates a token and returns its subject.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// Unauthorized aborts the request with 401 and a Bearer challenge.
func Unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": ErrInvalidToken.Error()})
}

// BearerToken returns a Gin middleware that validates the bearer token and
// stores its subject under ContextSubject.
func BearerToken(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			Unauthorized(c)
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))

		// 2. Verify signature, algorithm, expiry and subject
		subject, err := parser.ParseToken(tokenStr)
		if err != nil {
			Unauthorized(c)
			return
		}

		// 3. Pass control to the next handler
		c.Set(ContextSubject, subject)
		c.Next()
	}
}

// Subject returns the subject stored by BearerToken.
func Subject(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextSubject)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
