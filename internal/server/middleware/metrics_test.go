package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddleware(t *testing.T) {
	e := echo.New()
	ok := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	t.Run("passes requests through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/chats", nil)
		rec := httptest.NewRecorder()

		c := e.NewContext(req, rec)
		assert.NoError(t, Metrics()(ok)(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("serves the metrics endpoint", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec := httptest.NewRecorder()

		c := e.NewContext(req, rec)
		assert.NoError(t, Metrics()(ok)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), httpRequestsDuration)
	})

	t.Run("double registration reuses the collector", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Metrics()
			Metrics()
		})
	})
}
