package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/flux-signup/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one line per request. Server faults are logged at
// error level and client mistakes at warn, so that rejected signups do not
// drown out real failures.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		status := lw.status
		if !lw.wroteHeader {
			status = http.StatusOK
		}

		log.WithLevel(levelForStatus(status)).
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

func levelForStatus(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest && status != http.StatusUnprocessableEntity:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
