package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID reuses the incoming X-Trace-ID header or generates a UUIDv7,
// echoes it in the response and stores a request logger tagged with it in
// the request context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = utils.NewTraceID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
