package handler

import (
	"encoding/json"
	"mime"
	"net"
	"net/http"
	"strings"

	"github.com/contactform/backend/internal/captcha"
	"github.com/contactform/backend/internal/logging"
	"github.com/contactform/backend/internal/metrics"
)

const captchaFormField = "g-recaptcha-response"

// CaptchaHandler handles POST /submit.
type CaptchaHandler struct {
	verifier captcha.Verifier
}

func NewCaptchaHandler(verifier captcha.Verifier) *CaptchaHandler {
	return &CaptchaHandler{verifier: verifier}
}

type captchaResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit verifies the token sent either as the g-recaptcha-response form
// field or in a JSON body ({"g-recaptcha-response": ...} or {"token": ...}).
func (h *CaptchaHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSubmitBodyBytes)
	token := captchaToken(r)

	ok, err := h.verifier.Verify(r.Context(), token, clientIP(r))
	metrics.RecordUpstream("captcha", err)
	if err != nil {
		logging.FromContext(r.Context()).Warn("captcha verification error", "error", err)
	}
	if !ok {
		logging.FromContext(r.Context()).Info("captcha verification failed")
		writeJSON(w, http.StatusBadRequest, captchaResponse{Message: "reCAPTCHA verification failed"})
		return
	}
	writeJSON(w, http.StatusOK, captchaResponse{Success: true, Message: "reCAPTCHA verified successfully"})
}

func captchaToken(r *http.Request) string {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return ""
		}
		for _, key := range []string{captchaFormField, "token"} {
			if s, ok := body[key].(string); ok && s != "" {
				return s
			}
		}
		return ""
	}
	return r.FormValue(captchaFormField)
}

// clientIP returns the rightmost X-Forwarded-For entry (added by our reverse
// proxy) or the connection's remote host.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[len(parts)-1])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
