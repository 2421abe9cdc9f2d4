package prompts

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/prompthub/prompthub/pkg/handlers"
	"github.com/prompthub/prompthub/pkg/pagination"
	"github.com/prompthub/prompthub/pkg/routes"
)

// Handler provides HTTP endpoints for prompt operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a Handler with the given system, logger, and
// pagination config.
func NewHandler(
	sys System,
	logger *slog.Logger,
	pagination pagination.Config,
) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "prompts"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for prompt endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/prompts",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/facets", Handler: h.FacetOptions},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "PUT", Pattern: "/{id}", Handler: h.Update},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
			{Method: "POST", Pattern: "/{id}/archive", Handler: h.Archive},
			{Method: "POST", Pattern: "/{id}/restore", Handler: h.Restore},
			{Method: "POST", Pattern: "/{id}/favorite", Handler: h.Favorite},
			{Method: "DELETE", Pattern: "/{id}/favorite", Handler: h.Unfavorite},
			{Method: "GET", Pattern: "/{id}/versions", Handler: h.ListVersions},
			{Method: "POST", Pattern: "/{id}/versions", Handler: h.CreateVersion},
			{Method: "GET", Pattern: "/{id}/versions/{version}", Handler: h.GetVersion},
			{Method: "PUT", Pattern: "/{id}/versions/{version}", Handler: h.UpdateVersion},
			{Method: "POST", Pattern: "/{id}/versions/{version}/current", Handler: h.SetCurrentVersion},
		},
	}
}

// List returns a paginated, filtered list of prompts. Filter criteria come
// from query parameters: term, status, and comma-separated facet values.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q, err := QueryFromValues(r.URL.Query())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.List(r.Context(), page, q)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// FacetOptions returns the available filter values with usage counts.
func (h *Handler) FacetOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.sys.FacetOptions(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, options)
}

// Find returns a single prompt by id.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	p, err := h.sys.Find(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p)
}

// Create adds a new prompt with an initial version from a CreateCommand
// JSON body.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := handlers.DecodeJSON(r, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	p, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, p)
}

// Update applies partial metadata changes from an UpdateCommand JSON body.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var cmd UpdateCommand
	if err := handlers.DecodeJSON(r, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	p, err := h.sys.Update(r.Context(), r.PathValue("id"), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p)
}

// Delete removes a prompt by id.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sys.Delete(r.Context(), r.PathValue("id")); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Archive marks a prompt archived, hiding it from default views.
func (h *Handler) Archive(w http.ResponseWriter, r *http.Request) {
	h.flag(w, r, h.sys.Archive)
}

// Restore clears a prompt's archived flag.
func (h *Handler) Restore(w http.ResponseWriter, r *http.Request) {
	h.flag(w, r, h.sys.Restore)
}

// Favorite marks a prompt as a favorite.
func (h *Handler) Favorite(w http.ResponseWriter, r *http.Request) {
	h.flag(w, r, h.sys.Favorite)
}

// Unfavorite clears a prompt's favorite flag.
func (h *Handler) Unfavorite(w http.ResponseWriter, r *http.Request) {
	h.flag(w, r, h.sys.Unfavorite)
}

// ListVersions returns a prompt's full version history in order.
func (h *Handler) ListVersions(w http.ResponseWriter, r *http.Request) {
	versions, err := h.sys.ListVersions(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, versions)
}

// GetVersion returns a single version entry by its version string.
func (h *Handler) GetVersion(w http.ResponseWriter, r *http.Request) {
	v, err := h.sys.GetVersion(r.Context(), r.PathValue("id"), r.PathValue("version"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, v)
}

// CreateVersion appends a new version copied from the current one and
// makes it current.
func (h *Handler) CreateVersion(w http.ResponseWriter, r *http.Request) {
	p, err := h.sys.CreateVersion(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, p)
}

// UpdateVersion merges partial edits into a version entry in place.
func (h *Handler) UpdateVersion(w http.ResponseWriter, r *http.Request) {
	var cmd VersionUpdateCommand
	if err := handlers.DecodeJSON(r, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	p, err := h.sys.UpdateVersion(r.Context(), r.PathValue("id"), r.PathValue("version"), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p)
}

// SetCurrentVersion marks an existing version as the prompt's current one.
func (h *Handler) SetCurrentVersion(w http.ResponseWriter, r *http.Request) {
	p, err := h.sys.SetCurrentVersion(r.Context(), r.PathValue("id"), r.PathValue("version"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p)
}

func (h *Handler) flag(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, id string) (*Prompt, error),
) {
	p, err := op(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p)
}
