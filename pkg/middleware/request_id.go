package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/martinmanurung/cinecatalog/pkg/constant"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RequestID tags every request with an ID (taken from the incoming header
// or generated) and stores a request scoped logger in the echo context.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(constant.HeaderRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
				c.Request().Header.Set(constant.HeaderRequestID, requestID)
			}
			c.Response().Header().Set(constant.HeaderRequestID, requestID)
			c.Set(string(constant.CtxKeyRequestID), requestID)

			logger := log.With().
				Str("request_id", requestID).
				Logger()
			c.Set(string(constant.CtxKeyLogger), &logger)

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.Info().
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Str("query", c.QueryString()).
				Str("remote_ip", c.RealIP()).
				Int("status", c.Response().Status).
				Dur("latency", time.Since(start)).
				Msg("Handled request")

			return nil
		}
	}
}

// GetLogger retrieves the logger from echo context
// If not found, returns the default logger
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(string(constant.CtxKeyLogger)).(*zerolog.Logger); ok {
		return logger
	}
	return &log.Logger
}

// GetRequestID retrieves the request ID from echo context
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(constant.CtxKeyRequestID)).(string); ok {
		return id
	}
	return c.Request().Header.Get(constant.HeaderRequestID)
}
