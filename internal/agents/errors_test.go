package agents_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/JaimeStill/agent-registry/internal/agents"
)

func TestMapHTTPStatus(t *testing.T) {
	validation := &agents.ValidationError{Fields: []agents.FieldError{
		{Loc: []string{"body", "name"}, Msg: "Field required", Type: "missing"},
	}}

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found error", agents.ErrNotFound, http.StatusNotFound},
		{"wrapped not found error", fmt.Errorf("failed: %w", agents.ErrNotFound), http.StatusNotFound},
		{"duplicate error", agents.ErrDuplicate, http.StatusConflict},
		{"body too large", fmt.Errorf("%w: limit 10 bytes", agents.ErrBodyTooLarge), http.StatusRequestEntityTooLarge},
		{"validation error", validation, http.StatusUnprocessableEntity},
		{"wrapped validation error", fmt.Errorf("parse: %w", validation), http.StatusUnprocessableEntity},
		{"decode error", fmt.Errorf("agent 1: %w", agents.ErrDecode), http.StatusInternalServerError},
		{"unknown error", errors.New("unknown error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := agents.MapHTTPStatus(tt.err); got != tt.wantStatus {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, tt.wantStatus)
			}
		})
	}
}

func TestMapDetail(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", agents.ErrNotFound, "Agent not found"},
		{"duplicate", agents.ErrDuplicate, "Agent already exists"},
		{"body too large", agents.ErrBodyTooLarge, "Request body too large"},
		{"decode hides cause", fmt.Errorf("agent 3: %w: llm_config: bad", agents.ErrDecode), "Internal Server Error"},
		{"unknown hides cause", errors.New("connection refused"), "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := agents.MapDetail(tt.err); got != tt.want {
				t.Errorf("MapDetail() = %v, want %q", got, tt.want)
			}
		})
	}
}

func TestMapDetail_Validation(t *testing.T) {
	fields := []agents.FieldError{{Loc: []string{"path", "id"}, Msg: "bad", Type: "int_parsing"}}

	got, ok := agents.MapDetail(&agents.ValidationError{Fields: fields}).([]agents.FieldError)
	if !ok {
		t.Fatal("MapDetail() did not return field errors")
	}
	if len(got) != 1 || got[0].Type != "int_parsing" {
		t.Errorf("MapDetail() = %+v, want %+v", got, fields)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &agents.ValidationError{Fields: []agents.FieldError{
		{Loc: []string{"body", "name"}, Msg: "Field required", Type: "missing"},
		{Loc: []string{"body", "llm_config"}, Msg: "Input should be a valid dictionary", Type: "dict_type"},
	}}

	want := "invalid agent request: body.name: Field required; body.llm_config: Input should be a valid dictionary"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
