package http

import (
	"encoding/json"
	"net/http"

	"cinerent-backend/internal/domain"
	"cinerent-backend/internal/service"
)

type ProjectHandler struct {
	projects service.ProjectService
}

func NewProjectHandler(projects service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	project, err := h.projects.GetProject(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

type projectTransitionResponse struct {
	Project           *domain.Project `json:"project"`
	FinalizedBookings int64           `json:"finalized_bookings"`
}

func (h *ProjectHandler) TransitionStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req transitionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "BAD_REQUEST", Message: "malformed request body"})
		return
	}

	project, finalized, err := h.projects.TransitionStatus(r.Context(), id, domain.ProjectStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projectTransitionResponse{Project: project, FinalizedBookings: finalized})
}
