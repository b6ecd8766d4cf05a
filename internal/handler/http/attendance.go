package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/facade-tech/workforce-backend-go/internal/domain/attendance"
	"github.com/facade-tech/workforce-backend-go/internal/handler/http/middleware"
	"github.com/facade-tech/workforce-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	entries, err := h.attendanceService.List(r.Context(), actor)
	if err != nil {
		slog.Error("Attendance list service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, entries)
}

// Create implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq attendance.CreateAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Attendance create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Attendance create validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	actor, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	entry, err := h.attendanceService.Create(r.Context(), actor, createReq)
	if err != nil {
		slog.Error("Attendance create service error", "error", err, "employee_id", createReq.EmployeeID, "date", createReq.Date)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance recorded", "id", entry.ID, "employee_id", entry.EmployeeID, "date", entry.Date)
	response.Created(w, "Attendance recorded successfully", entry)
}

// Delete implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.attendanceService.Delete(r.Context(), id); err != nil {
		slog.Error("Attendance delete service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance deleted", "id", id)
	response.SuccessWithMessage(w, "Attendance entry deleted successfully", nil)
}
