package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/grubdash/internal/chain"
	"github.com/deppfellow/grubdash/internal/config"
	"github.com/deppfellow/grubdash/internal/errs"
	"github.com/deppfellow/grubdash/internal/server"
)

func newTestServer(t *testing.T, logs *bytes.Buffer) *server.Server {
	t.Helper()

	var log zerolog.Logger
	if logs != nil {
		log = zerolog.New(logs).Level(zerolog.DebugLevel)
	} else {
		log = zerolog.Nop()
	}

	s, err := server.New(config.DefaultConfig(), &log, nil)
	require.NoError(t, err)
	return s
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body errs.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "http error",
			method:     http.MethodPost,
			path:       "/dishes",
			err:        errs.NewBadRequestError("Dish must include a name"),
			wantStatus: http.StatusBadRequest,
			wantError:  "Dish must include a name",
		},
		{
			name:   "stage error unwraps to http error",
			method: http.MethodDelete,
			path:   "/orders/1",
			err: &chain.StageError{
				Chain: "orders.delete",
				Stage: "isPending",
				Err:   errs.NewBadRequestError("An order cannot be deleted unless it is pending"),
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "An order cannot be deleted unless it is pending",
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/nowhere",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantError:  "Path not found: /nowhere",
		},
		{
			name:       "method not allowed",
			method:     http.MethodDelete,
			path:       "/dishes/abc",
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantError:  "DELETE not allowed for /dishes/abc",
		},
		{
			name:       "other echo error",
			method:     http.MethodPost,
			path:       "/dishes",
			err:        echo.NewHTTPError(http.StatusRequestEntityTooLarge, "too big"),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantError:  "too big",
		},
		{
			name:       "unknown error",
			method:     http.MethodGet,
			path:       "/dishes",
			err:        fmt.Errorf("boom"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			global := NewGlobalMiddlewares(newTestServer(t, nil))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(tt.method, tt.path, nil), rec)

			global.GlobalErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rec))
		})
	}
}

func TestGlobalErrorHandler_CommittedResponse(t *testing.T) {
	global := NewGlobalMiddlewares(newTestServer(t, nil))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	global.GlobalErrorHandler(errs.NewBadRequestError("late"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	handler := RequestID()(func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))

		assert.NotEmpty(t, rec.Body.String())
		assert.Equal(t, rec.Body.String(), rec.Header().Get(RequestIDHeader))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))

		assert.Equal(t, "abc-123", rec.Body.String())
		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	})

	for _, bad := range []string{"has space", "line\nbreak", string(bytes.Repeat([]byte("a"), maxRequestIDLength+1))} {
		t.Run("replaced "+fmt.Sprintf("%.12q", bad), func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(RequestIDHeader, bad)
			rec := httptest.NewRecorder()
			require.NoError(t, handler(e.NewContext(req, rec)))

			assert.NotEqual(t, bad, rec.Body.String())
			assert.Len(t, rec.Body.String(), 36)
		})
	}
}

func TestResourceOf(t *testing.T) {
	tests := map[string]string{
		"/dishes":          "dishes",
		"/dishes/:dishId":  "dishes",
		"/orders/:orderId": "orders",
		"/status":          "status",
		"/":                "",
		"":                 "",
		"/*":               "",
	}

	for path, want := range tests {
		assert.Equal(t, want, resourceOf(path), path)
	}
}

func TestClientFailure(t *testing.T) {
	rejected := &chain.StageError{Chain: "orders.delete", Stage: "isPending", Err: errs.NewBadRequestError("An order cannot be deleted unless it is pending")}

	message, ok := clientFailure(rejected)
	assert.True(t, ok)
	assert.Equal(t, "An order cannot be deleted unless it is pending", message)

	_, ok = clientFailure(&chain.StageError{Chain: "dishes.read", Stage: chain.TerminalStage, Err: errs.NewInternalServerError()})
	assert.False(t, ok)

	_, ok = clientFailure(fmt.Errorf("boom"))
	assert.False(t, ok)
}

func TestEnhanceContext_LoggerReachesContext(t *testing.T) {
	var logs bytes.Buffer
	ce := NewContextEnhancer(newTestServer(t, &logs))

	e := echo.New()
	handler := RequestID()(ce.EnhanceContext()(func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("from context")
		return c.NoContent(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/dishes", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	require.NoError(t, handler(e.NewContext(req, httptest.NewRecorder())))

	var line map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &line))
	assert.Equal(t, "from context", line["message"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, http.MethodGet, line["method"])
}

func TestGetLogger_Fallback(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NotNil(t, GetLogger(c))
}

func TestRateLimit(t *testing.T) {
	run := func(t *testing.T, limit float64, requests int) []int {
		t.Helper()

		s := newTestServer(t, nil)
		s.Config.Server.RateLimit = limit
		global := NewGlobalMiddlewares(s)

		e := echo.New()
		e.HTTPErrorHandler = global.GlobalErrorHandler
		e.Use(NewRateLimitMiddleware(s).Limit())
		e.GET("/dishes", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

		codes := make([]int, 0, requests)
		for i := 0; i < requests; i++ {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dishes", nil))
			codes = append(codes, rec.Code)
		}
		return codes
	}

	t.Run("disabled", func(t *testing.T) {
		assert.Equal(t, []int{200, 200, 200}, run(t, 0, 3))
	})

	t.Run("limited", func(t *testing.T) {
		codes := run(t, 1, 3)
		assert.Equal(t, http.StatusOK, codes[0])
		assert.Contains(t, codes[1:], http.StatusTooManyRequests)
	})
}
