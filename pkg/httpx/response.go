package httpx

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as JSON with the given status code. Content-Type and
// X-Content-Type-Options headers are set automatically. Encoding errors are
// silently discarded, so use this for handler responses, not for streaming.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Problem is the error body written for raised conditions and validation
// failures: {title, status, detail, errors?}.
type Problem struct {
	Title  string            `json:"title"`
	Status int               `json:"status"`
	Detail string            `json:"detail,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
} // @name Problem

// WriteProblem writes p as JSON using p.Status as the response code.
func WriteProblem(w http.ResponseWriter, p Problem) {
	JSON(w, p.Status, p)
}

// NotFound writes a bare 404 with an empty body. Lookups of absent entities
// respond this way; only raised conditions carry a problem body.
func NotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
}

// SafeError returns the error message for client responses. Server errors
// (5xx) are replaced with the generic status text so driver messages, hosts,
// and other internals never reach the client.
func SafeError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
