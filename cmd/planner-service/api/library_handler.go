package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apierrors "goap-planner/internal/errors"
	"goap-planner/internal/library"
	"goap-planner/internal/logging"
	"goap-planner/internal/store"
)

// LibraryHandler exposes CRUD operations over stored action libraries.
type LibraryHandler struct {
	repo store.Repository
}

// NewLibraryHandler wraps a store.Repository for HTTP exposure.
func NewLibraryHandler(repo store.Repository) *LibraryHandler {
	return &LibraryHandler{repo: repo}
}

type createLibraryRequest struct {
	Name    string          `json:"name"`
	Actions json.RawMessage `json:"actions"`
}

type libraryResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Actions   json.RawMessage `json:"actions"`
	Version   int             `json:"version"`
	UpdatedAt string          `json:"updated_at"`
}

func toLibraryResponse(lib *store.Library) (*libraryResponse, error) {
	payload, err := library.Marshal(lib.Actions)
	if err != nil {
		return nil, err
	}
	return &libraryResponse{
		ID:        lib.ID,
		Name:      lib.Name,
		Actions:   payload,
		Version:   lib.Version,
		UpdatedAt: lib.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

// Create parses the request body's "actions" field as a library.Document
// and persists it under the body's "name".
func (h *LibraryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLibraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.RespondWithError(w, apierrors.NewInvalidInput("malformed request body: %v", err))
		return
	}
	if req.Name == "" {
		apierrors.RespondWithError(w, apierrors.ErrActionNameRequired)
		return
	}

	actions, err := library.Parse(req.Actions)
	if err != nil {
		apierrors.RespondWithError(w, apierrors.Wrap(apierrors.ErrLibraryInvalid, err.Error(), err))
		return
	}

	id, err := h.repo.CreateLibrary(r.Context(), req.Name, actions)
	if err != nil {
		logging.LogError(r.Context(), err, "create library failed", nil)
		apierrors.RespondWithError(w, apierrors.Wrap(apierrors.ErrDatabaseConnection, "failed to persist library", err))
		return
	}

	writeJSON(w, http.StatusCreated, map[string]uuid.UUID{"id": id})
}

// Get returns a single library by ID.
func (h *LibraryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.RespondWithError(w, apierrors.NewInvalidInput("invalid library id"))
		return
	}

	lib, err := h.repo.GetLibrary(r.Context(), id)
	if err != nil {
		apierrors.RespondWithError(w, apierrors.Wrap(apierrors.ErrLibraryNotFound, "library not found", err))
		return
	}

	resp, err := toLibraryResponse(lib)
	if err != nil {
		apierrors.RespondWithError(w, apierrors.NewInternalError("failed to encode library: %v", err))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// List returns every stored library.
func (h *LibraryHandler) List(w http.ResponseWriter, r *http.Request) {
	libs, err := h.repo.ListLibraries(r.Context())
	if err != nil {
		apierrors.RespondWithError(w, apierrors.Wrap(apierrors.ErrDatabaseConnection, "failed to list libraries", err))
		return
	}

	responses := make([]*libraryResponse, 0, len(libs))
	for i := range libs {
		resp, err := toLibraryResponse(&libs[i])
		if err != nil {
			apierrors.RespondWithError(w, apierrors.NewInternalError("failed to encode library: %v", err))
			return
		}
		responses = append(responses, resp)
	}
	writeJSON(w, http.StatusOK, responses)
}

// Update overwrites a library's actions and bumps its version.
func (h *LibraryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.RespondWithError(w, apierrors.NewInvalidInput("invalid library id"))
		return
	}

	var req createLibraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.RespondWithError(w, apierrors.NewInvalidInput("malformed request body: %v", err))
		return
	}

	actions, err := library.Parse(req.Actions)
	if err != nil {
		apierrors.RespondWithError(w, apierrors.Wrap(apierrors.ErrLibraryInvalid, err.Error(), err))
		return
	}

	version, err := h.repo.UpdateLibrary(r.Context(), id, actions)
	if err != nil {
		apierrors.RespondWithError(w, apierrors.Wrap(apierrors.ErrLibraryNotFound, "library not found", err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"version": version})
}

// Delete removes a library.
func (h *LibraryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.RespondWithError(w, apierrors.NewInvalidInput("invalid library id"))
		return
	}

	if err := h.repo.DeleteLibrary(r.Context(), id); err != nil {
		apierrors.RespondWithError(w, apierrors.Wrap(apierrors.ErrDatabaseConnection, "failed to delete library", err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
