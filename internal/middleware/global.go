package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/grubdash/internal/chain"
	"github.com/deppfellow/grubdash/internal/errs"
	"github.com/deppfellow/grubdash/internal/server"
)

// GlobalMiddlewares groups "global" middleware and the global error handler.
//
// The struct gives every middleware access to the shared *server.Server.
type GlobalMiddlewares struct {
	server *server.Server
}

// NewGlobalMiddlewares constructs the middleware bundle.
func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS returns Echo's CORS middleware configured by server.cors_allowed_origins.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// RequestLogger emits one "API" log line per request, with the level
// picked from the final status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			// When a handler returns an error the response has not been
			// written yet, so the status comes from the error itself.
			// Reference: https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
			statusCode := v.Status
			if v.Error != nil {
				statusCode, _ = resolveError(c, v.Error)
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			if requestID := GetRequestID(c); requestID != "" {
				e = e.Str("request_id", requestID)
			}

			var stageErr *chain.StageError
			if errors.As(v.Error, &stageErr) {
				e = e.Str("chain", stageErr.Chain).Str("stage", stageErr.Stage)
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover returns Echo's panic recovery middleware.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure returns Echo's secure headers middleware.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler is the final error funnel for the entire HTTP server.
//
// Every failure is written as {"error": "<message>"} with its status:
//   - *errs.HTTPError (possibly wrapped in *chain.StageError) keeps its own status and message
//   - Echo's unmatched route 404 becomes "Path not found: <path>"
//   - Echo's 405 becomes "<METHOD> not allowed for <path>"
//   - anything else is a generic 500
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	status, message := resolveError(c, err)

	logger := GetLogger(c)

	var e *zerolog.Event
	if status >= 500 {
		e = logger.Error().Stack()
	} else {
		e = logger.Debug()
	}
	e.Err(err).
		Int("status", status).
		Str("error_code", errs.MakeUpperCaseWithUnderscores(http.StatusText(status))).
		Msg(message)

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}

	_ = c.JSON(status, errs.Response{Error: message})
}

// resolveError maps err to the status and client-facing message.
func resolveError(c echo.Context, err error) (int, string) {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status, httpErr.Message
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		path := c.Request().URL.Path

		switch echoErr.Code {
		case http.StatusNotFound:
			return http.StatusNotFound, fmt.Sprintf("Path not found: %s", path)
		case http.StatusMethodNotAllowed:
			notAllowed := errs.NewMethodNotAllowedError(c.Request().Method, path)
			return notAllowed.Status, notAllowed.Message
		}

		if msg, ok := echoErr.Message.(string); ok {
			return echoErr.Code, msg
		}
		return echoErr.Code, http.StatusText(echoErr.Code)
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
