package httphandler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aqline/storefront/internal/adapter/httphandler"
	"github.com/stretchr/testify/assert"
)

func TestAllowJSON(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := httphandler.AllowJSON(next)

	t.Run("EmptyBodyPasses", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("JSONBodyPasses", func(t *testing.T) {
		req := httptest.NewRequest(
			http.MethodPost, "/v1/products", strings.NewReader(`{}`),
		)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("OtherMediaTypeRejected", func(t *testing.T) {
		req := httptest.NewRequest(
			http.MethodPost, "/v1/products", strings.NewReader("a=b"),
		)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}
