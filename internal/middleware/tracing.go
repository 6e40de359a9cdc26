package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"

	"github.com/deppfellow/grubdash/internal/chain"
	"github.com/deppfellow/grubdash/internal/errs"
	"github.com/deppfellow/grubdash/internal/server"
)

// TracingMiddleware installs the New Relic agent and labels each
// transaction with the resource it touched and the chain stage that
// rejected it, if any.
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// NewRelicMiddleware starts a transaction per request so that
// newrelic.FromContext works downstream. No-op without an agent.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing tags the transaction with the resource and route id.
//
// Validation failures are recorded as attributes only. Errors that are not
// client errors are noticed.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			if requestID := GetRequestID(c); requestID != "" {
				txn.AddAttribute("request.id", requestID)
			}
			if resource := resourceOf(c.Path()); resource != "" {
				txn.AddAttribute("grubdash.resource", resource)
			}
			if len(c.ParamNames()) > 0 {
				txn.AddAttribute("grubdash.route_id", c.ParamValues()[0])
			}

			err := next(c)
			if err != nil {
				var stageErr *chain.StageError
				if errors.As(err, &stageErr) {
					txn.AddAttribute("chain.rejected_by", stageErr.Stage)
				}

				if message, ok := clientFailure(err); ok {
					txn.AddAttribute("chain.rejection", message)
				} else {
					txn.NoticeError(nrpkgerrors.Wrap(err))
				}
			}

			txn.AddAttribute("http.status_code", c.Response().Status)

			return err
		}
	}
}

// resourceOf returns the collection a route serves: "/dishes/:dishId" is
// "dishes". Unmatched and root paths yield "".
func resourceOf(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	if path == "" || strings.ContainsAny(path, ":*") {
		return ""
	}
	return path
}

// clientFailure reports the message of an error the client caused.
func clientFailure(err error) (string, bool) {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) && httpErr.Status < http.StatusInternalServerError {
		return httpErr.Message, true
	}
	return "", false
}
