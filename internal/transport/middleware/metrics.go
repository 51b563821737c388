package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/resale-backend/internal/metrics"
)

// Metrics records request count and latency.
func Metrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r)
			metrics.RecordHTTPRequest(r.Method, strconv.Itoa(sw.status), time.Since(start).Seconds())
		})
	}
}
