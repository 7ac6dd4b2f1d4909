// Package api holds the JSON endpoints the browser bindings talk to.
package api

import (
	"github.com/rohanthewiz/rweb"
)

// SessionKey is the context key under which the session middleware stores
// the session id.
const SessionKey = "session_id"

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// writeSuccess sends a successful JSON response with data.
func writeSuccess(ctx rweb.Context, status int, data interface{}) error {
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: true, Data: data})
}

// writeError sends an error JSON response.
func writeError(ctx rweb.Context, status int, message string) error {
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: false, Error: message})
}

// sessionID returns the id stored by the session middleware.
func sessionID(ctx rweb.Context) string {
	id, _ := ctx.Get(SessionKey).(string)
	return id
}
