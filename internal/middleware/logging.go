package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/pkg"
)

const RequestIDHeader = "X-Request-Id"

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)

			ip, _ := pkg.ReadUserIP(r, true)
			entry := log.WithFields(log.Fields{
				"request_id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
				"ip":         ip,
			})
			entry.Tracef("request start [UA: %s]", r.UserAgent())

			resp := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(resp, r)

			entry.WithFields(log.Fields{
				"status":   resp.statusCode,
				"duration": time.Since(start).String(),
			}).Debug("request done")
		})
	}
}
