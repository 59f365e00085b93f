// Package router wires HTTP routes to handlers.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authhandler "url_shortener/internal/feature/auth/transport/handler"
	linkhandler "url_shortener/internal/feature/links/transport/handler"
	platformhandler "url_shortener/internal/platform/http/handler"
	"url_shortener/internal/platform/http/middleware"
	"url_shortener/internal/platform/http/response"
)

// Options configures the engine independently of the handlers.
type Options struct {
	// Prefix is prepended to every route, e.g. "/api". Empty mounts at the root.
	Prefix         string
	AllowedOrigins []string
	Logger         *zap.Logger
}

// Handlers bundles the endpoint handlers and the authentication chain for
// protected routes.
type Handlers struct {
	Auth   *authhandler.AuthHandler
	User   *authhandler.UserHandler
	Link   *linkhandler.LinkHandler
	Health *platformhandler.HealthHandler

	// Authenticated runs before every protected route: token validation,
	// then user resolution.
	Authenticated []gin.HandlerFunc
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", middleware.HeaderRequestID)
	cfg.ExposeHeaders = []string{middleware.HeaderRequestID}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// NewRouter builds the gin engine serving every endpoint under opts.Prefix.
func NewRouter(opts Options, h Handlers) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			log.Error("panic recovered", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Detail: "Internal server error."})
		}),
		cors.New(corsConfig(opts.AllowedOrigins)),
	)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Detail: "Not Found"})
	})

	api := r.Group(opts.Prefix)

	// 認証不要
	// 導通確認用
	api.GET("/health", h.Health.Health)
	api.HEAD("/health", h.Health.Health)
	// ログイン（JWT 発行）
	api.POST("/auth/token", h.Auth.Login)
	// 新規ユーザー登録
	api.POST("/users", h.User.Register)
	// 短縮URLのリダイレクトと詳細
	api.GET("/urls/:"+linkhandler.ParamShortCode, h.Link.Redirect)
	api.GET("/urls/:"+linkhandler.ParamShortCode+"/details", h.Link.Details)

	// 認証必須のルート
	// → リクエストヘッダーに JWT が必要になる
	auth := api.Group("/", h.Authenticated...)
	{
		auth.GET("/users/me", h.User.Me)
		auth.PUT("/users/me", h.User.Update)
		auth.DELETE("/users/me", h.User.Delete)

		auth.POST("/urls/create_short_url", h.Link.Create)
		auth.GET("/urls/", h.Link.List)
		auth.PUT("/urls/:"+linkhandler.ParamShortCode, h.Link.Update)
		auth.DELETE("/urls/:"+linkhandler.ParamShortCode, h.Link.Delete)
	}

	return r
}
