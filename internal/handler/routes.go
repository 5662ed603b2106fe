package handler

import (
	"net/http"

	"github.com/contactform/backend/internal/metrics"
)

// Routes groups every handler mounted by the server.
type Routes struct {
	Base    *Handler
	Contact *ContactHandler
	Captcha *CaptchaHandler
	Reviews *ReviewsHandler
	Static  *StaticHandler
}

// NewRouter registers all endpoints and wraps them in the middleware chain:
// RequestID -> RequestLogger -> SecurityHeaders -> CORS -> metrics -> mux.
func NewRouter(rt Routes) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /submit_form", rt.Contact.Submit)
	mux.HandleFunc("POST /submit", rt.Captcha.Submit)
	mux.HandleFunc("GET /reviews", rt.Reviews.List)
	mux.HandleFunc("GET /healthz", rt.Base.Health)
	mux.Handle("GET /metrics", metrics.Handler())
	if rt.Static != nil {
		mux.HandleFunc("GET /{$}", rt.Static.Index)
		mux.HandleFunc("GET /js/", rt.Static.Assets)
		mux.HandleFunc("GET /images/", rt.Static.Assets)
	}

	var h http.Handler = metrics.Middleware(mux)
	h = rt.Base.CORS(h)
	h = SecurityHeaders(h)
	h = RequestLogger(h)
	h = RequestID(h)
	return h
}
