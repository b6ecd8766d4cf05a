package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/facade-tech/workforce-backend-go/internal/domain/advance"
	"github.com/facade-tech/workforce-backend-go/internal/handler/http/middleware"
	"github.com/facade-tech/workforce-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AdvanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AdvanceHandlerImpl struct {
	advanceService advance.AdvanceService
}

func NewAdvanceHandler(advanceService advance.AdvanceService) AdvanceHandler {
	return &AdvanceHandlerImpl{advanceService: advanceService}
}

// List implements AdvanceHandler.
func (h *AdvanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	entries, err := h.advanceService.List(r.Context(), actor)
	if err != nil {
		slog.Error("Advance list service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, entries)
}

// Create implements AdvanceHandler.
func (h *AdvanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq advance.CreateAdvanceRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Advance create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Advance create validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	actor, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	entry, err := h.advanceService.Create(r.Context(), actor, createReq)
	if err != nil {
		slog.Error("Advance create service error", "error", err, "employee_id", createReq.EmployeeID, "date", createReq.Date)
		response.HandleError(w, err)
		return
	}

	slog.Info("Advance recorded", "id", entry.ID, "employee_id", entry.EmployeeID, "amount", entry.Amount)
	response.Created(w, "Advance recorded successfully", entry)
}

// Delete implements AdvanceHandler.
func (h *AdvanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.advanceService.Delete(r.Context(), id); err != nil {
		slog.Error("Advance delete service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Advance deleted", "id", id)
	response.SuccessWithMessage(w, "Advance entry deleted successfully", nil)
}
