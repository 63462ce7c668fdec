package middleware

import (
	"net/http"
	"time"

	"github.com/blaisecz/wellness-tracker/internal/metrics"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Metrics records request counts and latency by route pattern, keeping label
// cardinality independent of user IDs.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.ObserveHTTP(r.Method, routePattern(r), status, time.Since(start))
		})
	}
}
