package runenv

import "net/http"

// Middleware returns a middleware that attaches the Context's current running
// environment to every request context. The environment is read per request,
// so overrides applied after the server started are still observed. This
// enables environment-aware behavior throughout the request handling pipeline
// without explicit parameter passing.
func (c *Context) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithContext(r.Context(), c.Current())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
