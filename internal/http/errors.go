package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dto "relief-coordination.com/relief-coordination/internal/data_models"
	apperrors "relief-coordination.com/relief-coordination/internal/errors"
)

// ErrorHandler renders every error as {"error": "..."}. Errors outside the
// application taxonomy are logged and hidden behind a generic 500.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "internal server error"

		var httpErr *echo.HTTPError
		kind := apperrors.KindOf(err)
		switch {
		case kind != "":
			status = apperrors.StatusCode(err)
			message = apperrors.MessageOf(err)
			logRejection(logger, c, kind, err)
		case errors.As(err, &httpErr):
			status = httpErr.Code
			message = fmt.Sprint(httpErr.Message)
		default:
			logger.Error("unhandled error",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Error(err),
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, dto.ErrorResponse{Error: message})
		}
		if writeErr != nil {
			logger.Warn("failed to write error response", zap.Error(writeErr))
		}
	}
}

// logRejection records a request refused by the application. Client mistakes
// stay at debug; access refusals are surfaced at info.
func logRejection(logger *zap.Logger, c echo.Context, kind apperrors.Kind, err error) {
	level := zap.DebugLevel
	switch kind {
	case apperrors.KindUnauthorized, apperrors.KindForbidden, apperrors.KindRateLimited:
		level = zap.InfoLevel
	}
	if ce := logger.Check(level, "request rejected"); ce != nil {
		ce.Write(
			zap.String("kind", string(kind)),
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		)
	}
}
