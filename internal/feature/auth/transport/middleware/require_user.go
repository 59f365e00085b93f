// Package middleware resolves the authenticated user for protected routes.
package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"url_shortener/internal/feature/auth/domain/entity"
	"url_shortener/internal/platform/http/response"
	jwtmw "url_shortener/internal/platform/jwt"
	"url_shortener/internal/shared/apperr"
)

// ContextUser is the gin context key holding the authenticated *entity.User.
const ContextUser = "currentUser"

// UserResolver maps a validated token subject to a user.
type UserResolver interface {
	ResolveUser(ctx context.Context, username string) (*entity.User, error)
}

// RequireUser must run after jwtmw.BearerToken. It loads the user named by
// the token subject and aborts with 401 when that user no longer exists.
func RequireUser(users UserResolver, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject, ok := jwtmw.Subject(c)
		if !ok {
			jwtmw.Unauthorized(c)
			return
		}

		user, err := users.ResolveUser(c.Request.Context(), subject)
		if err != nil {
			if errors.Is(err, apperr.ErrAuthentication) {
				log.Warn("token subject not found", zap.String("user_name", subject), zap.String("remote_addr", c.ClientIP()))
				jwtmw.Unauthorized(c)
				return
			}
			response.Error(c, log, err)
			c.Abort()
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by RequireUser.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*entity.User)
	return u, ok && u != nil
}
