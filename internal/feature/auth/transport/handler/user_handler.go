package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"url_shortener/internal/feature/auth/domain/entity"
	"url_shortener/internal/feature/auth/transport/http/dto"
	"url_shortener/internal/feature/auth/transport/middleware"
	"url_shortener/internal/platform/http/response"
	jwtmw "url_shortener/internal/platform/jwt"
)

// UserUsecase はアカウント管理のユースケースを定義します。
type UserUsecase interface {
	Register(ctx context.Context, username, email, password string) (*entity.User, error)
	Update(ctx context.Context, userID uint, email, password string) (*entity.User, error)
	Delete(ctx context.Context, userID uint) error
}

// UserHandler はユーザー登録と本人のアカウント操作を処理します。
type UserHandler struct {
	users UserUsecase
	log   *zap.Logger
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(users UserUsecase, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// Register はユーザー登録APIエンドポイントを処理します。成功時は201を返却します。
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("register validation failed", zap.Error(err), zap.String("remote_addr", c.ClientIP()))
		response.BadRequest(c, err)
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.UserName, req.Email, req.Password)
	if err != nil {
		h.log.Warn("register failed", zap.Error(err), zap.String("user_name", req.UserName), zap.String("remote_addr", c.ClientIP()))
		response.Error(c, h.log, err)
		return
	}

	h.log.Info("user registered", zap.Uint("user_id", user.ID), zap.String("user_name", user.Username))
	c.JSON(http.StatusCreated, dto.NewUserRes(user))
}

// Me は認証済みユーザー自身の情報を返します。
func (h *UserHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		jwtmw.Unauthorized(c)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

// Update は認証済みユーザーのメールアドレスとパスワードを更新します。
func (h *UserHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		jwtmw.Unauthorized(c)
		return
	}

	var req dto.UpdateUserReq
	if err := c.ShouldBind(&req); err != nil {
		h.log.Warn("update user validation failed", zap.Error(err), zap.Uint("user_id", user.ID))
		response.BadRequest(c, err)
		return
	}

	updated, err := h.users.Update(c.Request.Context(), user.ID, req.Email, req.Password)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(updated))
}

// Delete は認証済みユーザーと、そのユーザーが所有するすべてのリンクを削除します。
func (h *UserHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		jwtmw.Unauthorized(c)
		return
	}

	if err := h.users.Delete(c.Request.Context(), user.ID); err != nil {
		response.Error(c, h.log, err)
		return
	}

	h.log.Info("user deleted", zap.Uint("user_id", user.ID), zap.String("user_name", user.Username))
	c.JSON(http.StatusOK, response.MessageResponse{Message: "User deleted."})
}
