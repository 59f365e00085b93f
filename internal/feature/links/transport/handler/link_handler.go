// Package handler provides HTTP handlers for the links feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"url_shortener/internal/feature/auth/transport/middleware"
	"url_shortener/internal/feature/links/domain/entity"
	"url_shortener/internal/feature/links/transport/http/dto"
	"url_shortener/internal/platform/http/response"
	jwtmw "url_shortener/internal/platform/jwt"
)

// ParamShortCode is the route parameter holding the short code.
const ParamShortCode = "short_code"

// LinkUsecase defines the link operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type LinkUsecase interface {
	Create(ctx context.Context, ownerID uint, longURL string, description *string) (*entity.Link, error)
	Get(ctx context.Context, code string) (*entity.Link, error)
	List(ctx context.Context, ownerID uint, skip, limit int) ([]entity.Link, error)
	Update(ctx context.Context, code string, ownerID uint, longURL, description *string) (*entity.Link, error)
	Delete(ctx context.Context, code string, ownerID uint) error
}

// LinkHandler handles HTTP requests for short links.
type LinkHandler struct {
	links LinkUsecase
	log   *zap.Logger
}

// NewLinkHandler creates a new LinkHandler.
func NewLinkHandler(links LinkUsecase, log *zap.Logger) *LinkHandler {
	return &LinkHandler{links: links, log: log}
}

// Create handles POST /urls/create_short_url and responds 201 with the new link.
func (h *LinkHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		jwtmw.Unauthorized(c)
		return
	}

	var req dto.CreateLinkReq
	if err := c.ShouldBind(&req); err != nil {
		h.log.Warn("create link validation failed", zap.Error(err), zap.Uint("user_id", user.ID))
		response.BadRequest(c, err)
		return
	}

	link, err := h.links.Create(c.Request.Context(), user.ID, req.LongURL, req.Description)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	h.log.Info("short link created", zap.String("short_url", link.ShortURL), zap.Uint("user_id", user.ID))
	c.JSON(http.StatusCreated, dto.NewLinkRes(link))
}

// Redirect handles GET /urls/:short_code with a 302 to the long URL.
// Location is the stored value verbatim; c.Redirect would resolve a
// schemeless URL against the request path.
func (h *LinkHandler) Redirect(c *gin.Context) {
	link, err := h.links.Get(c.Request.Context(), c.Param(ParamShortCode))
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.Header("Location", link.LongURL)
	c.Status(http.StatusFound)
}

// Details handles GET /urls/:short_code/details.
func (h *LinkHandler) Details(c *gin.Context) {
	link, err := h.links.Get(c.Request.Context(), c.Param(ParamShortCode))
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewLinkRes(link))
}

// List handles GET /urls/ for the authenticated user.
func (h *LinkHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		jwtmw.Unauthorized(c)
		return
	}

	var q dto.ListLinksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err)
		return
	}

	links, err := h.links.List(c.Request.Context(), user.ID, q.Skip, q.Limit)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewLinkListRes(links))
}

// Update handles PUT /urls/:short_code for a link the user owns.
func (h *LinkHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		jwtmw.Unauthorized(c)
		return
	}

	var req dto.UpdateLinkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	link, err := h.links.Update(c.Request.Context(), c.Param(ParamShortCode), user.ID, req.LongURL, req.Description)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewLinkRes(link))
}

// Delete handles DELETE /urls/:short_code for a link the user owns.
func (h *LinkHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		jwtmw.Unauthorized(c)
		return
	}

	code := c.Param(ParamShortCode)
	if err := h.links.Delete(c.Request.Context(), code, user.ID); err != nil {
		response.Error(c, h.log, err)
		return
	}

	h.log.Info("short link deleted", zap.String("short_url", code), zap.Uint("user_id", user.ID))
	c.JSON(http.StatusOK, response.MessageResponse{Message: "URL deleted."})
}
