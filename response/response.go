// Package response implements the uniform JSON envelope shared by every
// endpoint: {"status": bool, "message": string, "data": ...}. Success and
// failure use the same shape, so clients can always key off the status flag.
package response

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/user/immy-go/apperror"
)

// Envelope is the wire format of every API response. Data is omitted when
// there is no payload, e.g. on failure.
type Envelope struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// WriteSuccess writes a success envelope with the given HTTP status code.
func WriteSuccess(w http.ResponseWriter, code int, message string, data interface{}) {
	writeJSON(w, code, Envelope{Status: true, Message: message, Data: data})
}

// WriteError converts err into a failure envelope. Errors that are not
// *AppError are wrapped as internal errors so the client never sees a raw
// cause; the cause is logged server-side instead.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("Something went wrong", err)
	}

	if appErr.StatusCode() >= http.StatusInternalServerError {
		log.Printf("request %s %s failed: %v", r.Method, r.URL.Path, appErr)
	}

	writeJSON(w, appErr.StatusCode(), Envelope{Status: false, Message: appErr.Message})
}

// Recoverer is middleware that converts a handler panic into a logged
// internal error carrying the standard envelope, instead of a bare 500.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				log.Printf("Panic: %+v", rvr)
				WriteError(w, r, apperror.NewInternalError("internal server error", nil))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, code int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		log.Printf("failed to encode response envelope: %v", err)
	}
}
