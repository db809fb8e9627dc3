package factory

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func NewModuleLogger(module string) logrus.FieldLogger {
	return logrus.WithField("module", module)
}

// LoggerWithContext tags logger with the request id. Ids generated by the
// RequestID middleware only exist on the response header.
func LoggerWithContext(logger logrus.FieldLogger, ctx echo.Context) logrus.FieldLogger {
	requestID := ctx.Request().Header.Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = ctx.Response().Header().Get(echo.HeaderXRequestID)
	}
	if requestID == "" {
		return logger
	}
	return logger.WithField("request_id", requestID)
}
