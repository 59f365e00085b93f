// Package di provides dependency injection factories for creating application components.
package di

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"url_shortener/internal/app/router"
	"url_shortener/internal/config"
	authadapters "url_shortener/internal/feature/auth/adapters"
	authhandler "url_shortener/internal/feature/auth/transport/handler"
	authmiddleware "url_shortener/internal/feature/auth/transport/middleware"
	authusecase "url_shortener/internal/feature/auth/usecase"
	linkadapters "url_shortener/internal/feature/links/adapters"
	"url_shortener/internal/feature/links/domain/shortcode"
	linkhandler "url_shortener/internal/feature/links/transport/handler"
	linkusecase "url_shortener/internal/feature/links/usecase"
	platformhandler "url_shortener/internal/platform/http/handler"
	jwtmw "url_shortener/internal/platform/jwt"
)

// NewTokenService creates the token service from the auth settings.
func NewTokenService(cfg config.Config) (*jwtmw.TokenService, error) {
	tokens, err := jwtmw.NewTokenService(cfg.SecretKey, cfg.Algorithm, cfg.AccessTokenTTL())
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}
	return tokens, nil
}

// NewHandlers builds repositories, usecases and handlers on top of db.
func NewHandlers(cfg config.Config, db *gorm.DB, log *zap.Logger) (router.Handlers, error) {
	tokens, err := NewTokenService(cfg)
	if err != nil {
		return router.Handlers{}, err
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	linkRepo := linkadapters.NewLinkGorm(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	userUC := authusecase.NewUserUsecase(userRepo)
	linkUC := linkusecase.NewLinkUsecase(linkRepo, shortcode.NewGenerator(cfg.ShortURLLength))

	return router.Handlers{
		Auth:   authhandler.NewAuthHandler(authUC, log),
		User:   authhandler.NewUserHandler(userUC, log),
		Link:   linkhandler.NewLinkHandler(linkUC, log),
		Health: platformhandler.NewHealthHandler(cfg.AppVersion),
		Authenticated: []gin.HandlerFunc{
			jwtmw.BearerToken(tokens),
			authmiddleware.RequireUser(authUC, log),
		},
	}, nil
}

// NewEngine returns the fully wired HTTP engine.
func NewEngine(cfg config.Config, db *gorm.DB, log *zap.Logger) (*gin.Engine, error) {
	handlers, err := NewHandlers(cfg, db, log)
	if err != nil {
		return nil, err
	}
	return router.NewRouter(router.Options{
		Prefix:         cfg.URLPrefix,
		AllowedOrigins: cfg.AllowedOrigins,
		Logger:         log,
	}, handlers), nil
}
