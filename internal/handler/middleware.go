package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/contactform/backend/internal/logging"
)

const requestIDHeader = "X-Request-Id"

// contentSecurityPolicy allows the reCAPTCHA widget on the landing page.
var contentSecurityPolicy = strings.Join([]string{
	"default-src 'self'",
	"script-src 'self' https://www.google.com https://www.gstatic.com",
	"frame-src https://www.google.com",
	"img-src 'self' data: https:",
	"frame-ancestors 'none'",
}, "; ")

// SecurityHeaders adds security response headers (CSP, X-Frame-Options, etc.)
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("X-XSS-Protection", "0")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		h.Set("Content-Security-Policy", contentSecurityPolicy)
		h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		next.ServeHTTP(w, r)
	})
}

// RequestID propagates an incoming X-Request-Id or generates one, echoes it
// on the response and stores a logger carrying it in the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		logger := logging.FromContext(r.Context()).With("request_id", id)
		next.ServeHTTP(w, r.WithContext(logging.WithContext(r.Context(), logger)))
	})
}
