package http

import (
	"net/http"

	"github.com/corkboardhq/corkd/pkg/httpx"
)

// Envelope is the uniform response body for every handler: either a
// success carrying data or a failure carrying a coarse reason string.
// Failures never expose internal diagnostic detail.
type Envelope struct {
	Succeed bool   `json:"succeed"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data any) {
	httpx.WriteJSON(w, http.StatusOK, Envelope{Succeed: true, Data: data})
}

func writeFailure(w http.ResponseWriter, code int, message string) {
	httpx.WriteJSON(w, code, Envelope{Succeed: false, Message: message})
}
