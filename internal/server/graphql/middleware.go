package graphql

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/hackernews/internal/common"
	"github.com/dmitrijs2005/hackernews/internal/logging"
	"github.com/dmitrijs2005/hackernews/internal/server/auth"
	"github.com/go-chi/chi/v5/middleware"
)

// bearerToken copies the Authorization header token into the request
// context. Requests without one pass through anonymously.
func bearerToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := auth.BearerToken(r.Header.Get(common.AuthorizationHeaderName)); token != "" {
			r = r.WithContext(auth.WithBearerToken(r.Context(), token))
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs every request once it has been served.
func requestLogger(l logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			l.Info(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
			)
		})
	}
}
