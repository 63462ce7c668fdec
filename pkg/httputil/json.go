// Package httputil writes JSON response bodies.
package httputil

import (
	"net/http"

	"github.com/bytedance/sonic"
)

// WriteJSON writes body as JSON with the given status. A nil body writes only
// the header.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	WriteJSONAs(w, "application/json", status, body)
}

// WriteJSONAs is WriteJSON with an explicit content type, for media types
// such as application/problem+json.
func WriteJSONAs(w http.ResponseWriter, contentType string, status int, body any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if body != nil {
		_ = sonic.ConfigStd.NewEncoder(w).Encode(body)
	}
}
