package runenv_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/runenv"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("attaches the current environment", func(t *testing.T) {
		t.Parallel()

		c := newIsolated(t, runenv.MapMirror{runenv.EnvKey: "staging"})

		var seen runenv.Environment
		handler := c.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = runenv.FromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, runenv.Staging, seen)
	})

	t.Run("observes overrides applied after wrapping", func(t *testing.T) {
		t.Parallel()

		c := newIsolated(t, runenv.MapMirror{})

		var seen runenv.Environment
		handler := c.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = runenv.FromContext(r.Context())
		}))

		c.SetDevelopment()
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, runenv.Development, seen)
	})
}
