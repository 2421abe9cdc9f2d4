package groups

import (
	"log/slog"
	"net/http"

	"github.com/prompthub/prompthub/pkg/handlers"
	"github.com/prompthub/prompthub/pkg/routes"
)

// Handler provides HTTP endpoints for group operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "groups"),
	}
}

// Routes returns the route group definition for group endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/groups",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "GET", Pattern: "/{id}/prompts", Handler: h.Prompts},
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "PUT", Pattern: "/{id}", Handler: h.Update},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
			{Method: "POST", Pattern: "/{id}/favorite", Handler: h.Favorite},
			{Method: "DELETE", Pattern: "/{id}/favorite", Handler: h.Unfavorite},
		},
	}
}

// List returns groups with derived membership, optionally narrowed by a
// term query parameter and a favorites flag.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	favorites := query.Get("favorites") == "true"

	summaries, err := h.sys.List(r.Context(), query.Get("term"), favorites)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, summaries)
}

// Find returns a single group by id.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	summary, err := h.sys.Find(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, summary)
}

// Prompts returns the full prompt entities assigned to a group.
func (h *Handler) Prompts(w http.ResponseWriter, r *http.Request) {
	members, err := h.sys.Prompts(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, members)
}

// Create adds a new group from a CreateCommand JSON body.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := handlers.DecodeJSON(r, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	summary, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, summary)
}

// Update applies partial changes from an UpdateCommand JSON body.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var cmd UpdateCommand
	if err := handlers.DecodeJSON(r, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	summary, err := h.sys.Update(r.Context(), r.PathValue("id"), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, summary)
}

// Delete removes a group by id. Member prompts are left in place.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sys.Delete(r.Context(), r.PathValue("id")); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Favorite marks a group as a favorite.
func (h *Handler) Favorite(w http.ResponseWriter, r *http.Request) {
	summary, err := h.sys.Favorite(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, summary)
}

// Unfavorite clears a group's favorite flag.
func (h *Handler) Unfavorite(w http.ResponseWriter, r *http.Request) {
	summary, err := h.sys.Unfavorite(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, summary)
}
