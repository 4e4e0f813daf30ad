package agents

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/agent-registry/pkg/handlers"
	"github.com/JaimeStill/agent-registry/pkg/routes"
)

// Handler provides HTTP handlers for agent CRUD operations.
type Handler struct {
	sys     System
	logger  *slog.Logger
	maxBody int64
}

// NewHandler creates a new agents HTTP handler. Request bodies larger than
// maxBody bytes are rejected.
func NewHandler(sys System, logger *slog.Logger, maxBody int64) *Handler {
	return &Handler{
		sys:     sys,
		logger:  logger,
		maxBody: maxBody,
	}
}

// Routes returns the route group configuration for agent endpoints.
// Patterns are relative to the module prefix.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "",
		Tags:        []string{"Agents"},
		Description: "Agent configuration records",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/mock/create", Handler: h.MockCreate, OpenAPI: Spec.MockCreate},
			{Method: "POST", Pattern: "/create", Handler: h.Create, OpenAPI: Spec.Create},
			{Method: "GET", Pattern: "/{$}", Handler: h.List, OpenAPI: Spec.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "PUT", Pattern: "/{id}", Handler: h.Update, OpenAPI: Spec.Update},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete, OpenAPI: Spec.Delete},
		},
		Schemas: Spec.Schemas(),
	}
}

// MockCreate handles GET /mock/create to store the fixed sample agent.
func (h *Handler) MockCreate(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.Create(r.Context(), MockCommand())
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create handles POST /create to store a new agent.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	cmd, err := h.readCommand(w, r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	result, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// List handles GET / to retrieve every agent.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.List(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find handles GET /{id} to retrieve a single agent.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(r.PathValue("id"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	result, err := h.sys.Find(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update handles PUT /{id} to replace every writable field of an agent.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(r.PathValue("id"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	cmd, err := h.readCommand(w, r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	result, err := h.sys.Update(r.Context(), id, cmd)
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete handles DELETE /{id} to remove an agent.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(r.PathValue("id"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, DeleteResult{Message: "Agent deleted successfully"})
}

// DeleteResult is the response body of a successful delete.
type DeleteResult struct {
	Message string `json:"message"`
}

func (h *Handler) readCommand(w http.ResponseWriter, r *http.Request) (Command, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBody))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return Command{}, fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, maxErr.Limit)
		}
		return Command{}, fmt.Errorf("read request body: %w", err)
	}
	return ParseCommand(body)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	handlers.RespondError(w, h.logger, MapHTTPStatus(err), err, MapDetail(err))
}
