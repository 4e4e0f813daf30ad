package agents

import (
	"errors"
	"net/http"
	"strings"
)

// Domain errors for agent operations.
var (
	ErrNotFound     = errors.New("agent not found")
	ErrDuplicate    = errors.New("agent already exists")
	ErrDecode       = errors.New("stored agent config is malformed")
	ErrBodyTooLarge = errors.New("request body too large")
)

// FieldError describes one rejected input field. Loc is the path to the
// field, starting with its location ("body" or "path").
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError collects every field rejected while parsing a request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = strings.Join(f.Loc, ".") + ": " + f.Msg
	}
	return "invalid agent request: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(msg, typ string, loc ...string) {
	e.Fields = append(e.Fields, FieldError{Loc: loc, Msg: msg, Type: typ})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrBodyTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}

// MapDetail returns the client-facing detail for err. Internal failures,
// including undecodable stored config, never expose their cause.
func MapDetail(err error) any {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Fields
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return "Agent not found"
	case errors.Is(err, ErrDuplicate):
		return "Agent already exists"
	case errors.Is(err, ErrBodyTooLarge):
		return "Request body too large"
	default:
		return "Internal Server Error"
	}
}
