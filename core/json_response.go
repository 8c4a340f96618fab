package core

import (
	"encoding/json"
	"errors"
	"net/http"
)

// errorBody is the uniform error envelope: {"error": "<key>"}.
type errorBody struct {
	Error string `json:"error"`
}

// JSON writes v as a JSON response with the given status code.
// Encoding errors are ignored: headers are already sent at that point
// and there is nothing meaningful left to do for the client.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Err writes an error as a JSON response. HTTPError values map to their
// status code and key; anything else becomes a generic 500 so that internal
// error text never reaches the client.
func Err(w http.ResponseWriter, err error) {
	httpErr := ErrInternalServerError
	var e HTTPError
	if errors.As(err, &e) {
		httpErr = e
	}
	JSON(w, httpErr.Code, errorBody{Error: httpErr.Key})
}
