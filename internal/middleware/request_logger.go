package middleware

import (
	"context"
	"time"

	"storefront/internal/logger"

	"github.com/labstack/echo/v4"
)

// RequestLogger はアクセスログを出す。RequestIDミドルウェアの後ろに置く。
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			req := c.Request()
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			if rid != "" {
				ctx := context.WithValue(req.Context(), logger.RequestIDKey, rid)
				c.SetRequest(req.WithContext(ctx))
			}

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			l := log
			if rid != "" {
				l = log.WithRequestID(rid)
			}
			l.HTTPRequest(
				req.Method,
				req.URL.Path,
				c.Response().Status,
				float64(time.Since(start).Microseconds())/1000,
				c.RealIP(),
			)
			return nil
		}
	}
}
