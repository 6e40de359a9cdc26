package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"

	"github.com/deppfellow/grubdash/internal/chain"
	"github.com/deppfellow/grubdash/internal/errs"
	"github.com/deppfellow/grubdash/internal/middleware"
	"github.com/deppfellow/grubdash/internal/server"
	"github.com/deppfellow/grubdash/internal/validation"
)

// Handler is the base handler type that holds shared application dependencies.
//
// It is embedded by concrete handlers (e.g. DishHandler, HealthHandler) so they can
// access shared resources via *server.Server (config, logger, metrics).
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// Handle turns a chain into an echo.HandlerFunc.
//
// It is the shared execution pipeline for every resource route:
//
// - payload binding for requests that carry a body
// - per-request chain state keyed by the route param (if any)
// - structured logging with the chain name
// - New Relic attributes and Prometheus metrics for the run
// - response writing ({"data": ...} or an empty 204)
//
// Failures are returned untouched so the global error handler renders them.
func Handle[T any](h Handler, ch *chain.Chain[T], routeParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		txn := newrelic.FromContext(c.Request().Context())
		if txn != nil {
			txn.AddAttribute("chain.name", ch.Name())
		}

		logger := middleware.GetLogger(c).With().
			Str("chain", ch.Name()).
			Logger()

		payload := chain.Payload{}
		if hasBody(c.Request().Method) {
			var err error
			if payload, err = validation.BindPayload(c); err != nil {
				logger.Debug().Err(err).Msg("request body rejected")
				h.observe(txn, ch.Name(), "bind", http.StatusBadRequest, time.Since(start))
				return err
			}
		}

		var routeID string
		if routeParam != "" {
			routeID = c.Param(routeParam)
		}

		ctx := logger.WithContext(c.Request().Context())
		result, err := ch.Run(ctx, chain.NewState[T](routeID, payload))
		elapsed := time.Since(start)

		if err != nil {
			status := http.StatusInternalServerError
			var httpErr *errs.HTTPError
			if errors.As(err, &httpErr) {
				status = httpErr.Status
			}

			stage := chain.TerminalStage
			var stageErr *chain.StageError
			if errors.As(err, &stageErr) {
				stage = stageErr.Stage
			}

			h.observe(txn, ch.Name(), stage, status, elapsed)

			logger.Debug().
				Str("stage", stage).
				Int("status", status).
				Dur("total_duration", elapsed).
				Msg("chain stopped")

			return err
		}

		h.server.Metrics.ObserveRun(ch.Name(), result.Status, elapsed)
		if txn != nil {
			txn.AddAttribute("chain.status", "success")
			txn.AddAttribute("chain.duration_ms", elapsed.Milliseconds())
		}

		logger.Debug().
			Int("status", result.Status).
			Dur("total_duration", elapsed).
			Msg("chain completed")

		if !result.HasBody() {
			return c.NoContent(result.Status)
		}
		return c.JSON(result.Status, chain.Envelope{Data: result.Data})
	}
}

// observe records a failed run against stage.
func (h Handler) observe(txn *newrelic.Transaction, chainName, stage string, status int, elapsed time.Duration) {
	h.server.Metrics.ObserveFailure(chainName, stage, status)
	h.server.Metrics.ObserveRun(chainName, status, elapsed)

	if txn != nil {
		txn.AddAttribute("chain.status", "failed")
		txn.AddAttribute("chain.stage", stage)
		txn.AddAttribute("chain.duration_ms", elapsed.Milliseconds())
	}
}

func hasBody(method string) bool {
	return method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch
}
