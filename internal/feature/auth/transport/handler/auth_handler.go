// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"url_shortener/internal/feature/auth/transport/http/dto"
	"url_shortener/internal/platform/http/response"
	"url_shortener/internal/shared/apperr"
)

// tokenType is the OAuth2 token type reported on successful login.
const tokenType = "bearer"

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Login はユーザーを認証し、成功時にJWTトークンを返します。
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
	log  *zap.Logger
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// Login はトークン発行APIエンドポイントを処理します。
// - JSONまたはフォームをLoginReqにバインド
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却
// - 認証成功時はアクセストークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBind(&req); err != nil {
		h.log.Warn("login validation failed", zap.Error(err), zap.String("remote_addr", c.ClientIP()))
		response.BadRequest(c, err)
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		if errors.Is(err, apperr.ErrAuthentication) {
			h.log.Warn("login failed", zap.Error(err), zap.String("user_name", req.Username), zap.String("remote_addr", c.ClientIP()))
		}
		response.Error(c, h.log, err)
		return
	}

	h.log.Info("user login successful", zap.String("user_name", req.Username), zap.String("remote_addr", c.ClientIP()))
	c.JSON(http.StatusOK, dto.TokenRes{
		AccessToken: token,
		TokenType:   tokenType,
		UserName:    req.Username,
	})
}
