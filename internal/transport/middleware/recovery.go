package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/resale-backend/pkg/ctxutil"
)

// Recovery returns middleware that recovers from panics and responds with a
// JSON 500. The log entry carries the stack, the request id and, when the
// panic happened behind Auth, the acting user.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					attrs := []any{
						slog.Any("error", err),
						slog.String("stack", string(debug.Stack())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					}
					if uid, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
						attrs = append(attrs, slog.String("user_id", uid.String()))
					}
					logger.ErrorContext(r.Context(), "panic recovered", attrs...)
					writeError(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
