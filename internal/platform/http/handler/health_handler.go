// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthStatus is the status reported while the process is serving.
const HealthStatus = "HEALTHY"

// timestampLayout はマイクロ秒精度のUTC時刻 (末尾Z) です。
const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// HealthResponse は /health のレスポンスボディです。
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// HealthHandler はサービスのヘルスチェックを処理します。
type HealthHandler struct {
	version string
	now     func() time.Time
}

// NewHealthHandler はバージョン文字列を報告するHealthHandlerを生成します。
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version, now: time.Now}
}

// Health は /health エンドポイントを処理します。
// HTTPメソッドに応じて適切にレスポンスし、キャッシュを防止します。
func (h *HealthHandler) Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, HealthResponse{
			Status:    HealthStatus,
			Timestamp: h.now().UTC().Format(timestampLayout),
			Version:   h.version,
		})
	}
}
