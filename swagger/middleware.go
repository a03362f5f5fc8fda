package swagger

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/vitalvas/docket/internal/logenc"
)

// RequestIDHeader carries the id assigned to each documentation request.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestIDFromContext returns the id assigned to a documentation request,
// or an empty string.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// newRequestID returns a time-ordered UUID, falling back to a random one.
func newRequestID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.New().String()
}

// instrument tags a request with an id and turns panics into 500
// responses logged with that id.
func instrument(logger *slog.Logger, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := newRequestID()
		w.Header().Set(RequestIDHeader, id)
		r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id))

		defer func() {
			if rv := recover(); rv != nil {
				logger.Error("panic serving documentation",
					"request_id", id,
					"path", logenc.URLEncode(r.URL.Path),
					"panic", rv,
				)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()

		next(w, r)
	}
}
