// Package handlers holds the helpers shared by the HTTP handlers.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"recipe-scaler/internal/pkg/common"
)

// BindJSON decodes the request body into v, mapping failures to API errors
func BindJSON(c *gin.Context, v interface{}) error {
	if err := c.ShouldBindJSON(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return common.ErrRequestTooLarge.WithErr(err)
		}
		return common.ErrInvalidRequest.WithErr(err)
	}
	return nil
}

// RespondError writes err as an ErrorResponse and aborts the chain.
// Details are only exposed when debug is set.
func RespondError(c *gin.Context, err error, debug bool) {
	var ce *common.CustomError
	switch {
	case errors.As(err, &ce):
	case common.IsValidationError(err):
		ce = common.ErrInvalidRequest.WithMessage(err.Error()).WithErr(err)
	case errors.Is(err, context.DeadlineExceeded):
		ce = common.ErrGatewayTimeout.WithErr(err)
	default:
		ce = common.ErrInternalError.WithErr(err)
	}

	_ = c.Error(err)

	fields := []zap.Field{
		zap.String("code", ce.Code),
		zap.Int("status", ce.Status),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", requestid.Get(c)),
		zap.Error(err),
	}
	if ce.Status >= http.StatusInternalServerError {
		common.LogError("Request failed", fields...)
	} else {
		common.LogDebug("Request rejected", fields...)
	}

	c.AbortWithStatusJSON(ce.Status, ce.Response(debug))
}
