package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pscheid92/devbox/internal/domain"
	"github.com/pscheid92/devbox/internal/platform/correlation"
	apperrors "github.com/pscheid92/devbox/internal/platform/errors"
)

func runMiddleware(t *testing.T, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ErrorHandlingMiddleware()(handler)(c))
	return rec
}

func TestMiddlewareWithStructuredError(t *testing.T) {
	rec := runMiddleware(t, func(echo.Context) error {
		return apperrors.ValidationError("invalid input").WithField("field", "name")
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid input", resp.Error)
	assert.Equal(t, apperrors.TypeValidation, resp.Type)
	assert.Equal(t, "name", resp.Context["field"])
}

func TestMiddlewareWithStandardError(t *testing.T) {
	rec := runMiddleware(t, func(echo.Context) error {
		return errors.New("standard error")
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
	assert.Equal(t, apperrors.TypeInternal, resp.Type)
}

func TestMiddlewareWithNoError(t *testing.T) {
	rec := runMiddleware(t, func(c echo.Context) error {
		return c.String(http.StatusOK, "success")
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", rec.Body.String())
}

func TestMiddlewarePassesHTTPErrorThrough(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/test", nil), httptest.NewRecorder())

	err := ErrorHandlingMiddleware()(func(echo.Context) error {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "too big")
	})(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusRequestEntityTooLarge, httpErr.Code)
}

func TestServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType apperrors.ErrorType
		wantMsg  string
	}{
		{"application", fmt.Errorf("%w: id 3", domain.ErrApplicationNotFound), apperrors.TypeNotFound, "application not found"},
		{"container", domain.ErrContainerNotFound, apperrors.TypeNotFound, "container not found"},
		{"binding", domain.ErrBindingNotFound, apperrors.TypeNotFound, "binding not found"},
		{"unavailable", fmt.Errorf("get: %w", domain.ErrStoreUnavailable), apperrors.TypeUnavailable, "config store unavailable"},
		{"other", errors.New("boom"), apperrors.TypeInternal, "failed to do thing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := serviceError("failed to do thing", tt.err)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantMsg, got.Message)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestCorrelationMiddleware(t *testing.T) {
	e := echo.New()

	var seen string
	handler := correlationMiddleware(func(c echo.Context) error {
		seen, _ = correlation.ID(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(correlation.Header, "client-id-1")
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))

	assert.Equal(t, "client-id-1", seen)
	assert.Equal(t, "client-id-1", rec.Header().Get(correlation.Header))

	rec = httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/test", nil), rec)))

	assert.Len(t, seen, 16)
	assert.Equal(t, seen, rec.Header().Get(correlation.Header))
}
