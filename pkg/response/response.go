// Package response writes the API's uniform JSON envelope.
//
// Every endpoint answers with `{"success": bool, ...}` — business failures
// are reported inside the envelope with success=false rather than through
// HTTP status codes, so the storefront can treat every reply the same way.
package response

import (
	"encoding/json"
	"net/http"
)

type envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Token      string      `json:"token,omitempty"`
	CartData   interface{} `json:"cartData,omitempty"`
	SessionURL string      `json:"session_url,omitempty"`
}

func write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// OK sends {success:true, message}.
func OK(w http.ResponseWriter, message string) {
	write(w, http.StatusOK, envelope{Success: true, Message: message})
}

// Data sends {success:true, data}.
func Data(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, envelope{Success: true, Data: data})
}

// Token sends {success:true, token}.
func Token(w http.ResponseWriter, token string) {
	write(w, http.StatusOK, envelope{Success: true, Token: token})
}

// Cart sends {success:true, cartData}.
func Cart(w http.ResponseWriter, cartData interface{}) {
	write(w, http.StatusOK, envelope{Success: true, CartData: cartData})
}

// Session sends {success:true, session_url}.
func Session(w http.ResponseWriter, url string) {
	write(w, http.StatusOK, envelope{Success: true, SessionURL: url})
}

// Fail sends {success:false, message} with HTTP 200. Business failures
// travel inside the envelope, matching what the storefront expects.
func Fail(w http.ResponseWriter, message string) {
	write(w, http.StatusOK, envelope{Success: false, Message: message})
}

// Error sends {success:false, message} with an explicit HTTP status.
// Reserved for transport-level problems (bad request bodies, auth, panics).
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{Success: false, Message: message})
}

// Unauthorized sends a 401 envelope.
func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, message)
}
