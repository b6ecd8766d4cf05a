package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/facade-tech/workforce-backend-go/internal/domain/project"
	"github.com/facade-tech/workforce-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ProjectHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ProjectHandlerImpl struct {
	projectService project.ProjectService
}

func NewProjectHandler(projectService project.ProjectService) ProjectHandler {
	return &ProjectHandlerImpl{projectService: projectService}
}

// List implements ProjectHandler.
func (h *ProjectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		slog.Error("Project list service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, projects)
}

// Create implements ProjectHandler.
func (h *ProjectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq project.CreateProjectRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Project create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Project create validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	prj, err := h.projectService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Project create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Project created", "id", prj.ID, "name", prj.Name)
	response.Created(w, "Project created successfully", prj)
}

// Delete implements ProjectHandler.
func (h *ProjectHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.projectService.Delete(r.Context(), id); err != nil {
		slog.Error("Project delete service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Project deleted", "id", id)
	response.SuccessWithMessage(w, "Project deleted successfully", nil)
}
