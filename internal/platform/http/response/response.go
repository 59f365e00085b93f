// Package response はHTTPレスポンスの共通ボディとエラー変換を提供します。
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"url_shortener/internal/shared/apperr"
)

// internalErrorMessage is returned for any error outside the apperr taxonomy.
const internalErrorMessage = "Internal server error."

// ErrorResponse はエラー時のレスポンスボディです。
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse は本文を持たない操作の成功レスポンスです。
type MessageResponse struct {
	Message string `json:"message"`
}

// Error はerrをステータスコードとメッセージに変換してレスポンスを書き込みます。
// apperrに分類されないエラーは500とし、内容は公開せずログにのみ残します。
func Error(c *gin.Context, log *zap.Logger, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed",
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
		)
		c.JSON(status, ErrorResponse{Detail: internalErrorMessage})
		return
	}
	if status == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	c.JSON(status, ErrorResponse{Detail: apperr.Message(err, http.StatusText(status))})
}

// BadRequest はリクエストのバインド失敗を400として返します。
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
}
