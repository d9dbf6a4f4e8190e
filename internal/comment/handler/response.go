package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/teamboard/internal/apperrors"
)

// ErrorResponse represents error response structure.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// errorResponse creates an error response envelope.
func errorResponse(c *gin.Context, code string, message string, statusCode int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(statusCode, resp)
}

// respondServiceError maps a service error to an HTTP response.
func respondServiceError(c *gin.Context, logger *zap.SugaredLogger, logMsg string, err error) {
	status, code := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Errorw(logMsg, "error", err)
		errorResponse(c, code, "internal server error", status)
		return
	}
	errorResponse(c, code, err.Error(), status)
}
