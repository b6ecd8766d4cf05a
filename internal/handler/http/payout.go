package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/facade-tech/workforce-backend-go/internal/domain/payout"
	"github.com/facade-tech/workforce-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayoutHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PayoutHandlerImpl struct {
	payoutService payout.PayoutService
}

func NewPayoutHandler(payoutService payout.PayoutService) PayoutHandler {
	return &PayoutHandlerImpl{payoutService: payoutService}
}

// List implements PayoutHandler.
func (h *PayoutHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.payoutService.List(r.Context())
	if err != nil {
		slog.Error("Payout list service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, entries)
}

// Create implements PayoutHandler.
func (h *PayoutHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq payout.CreatePayoutRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Payout create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Payout create validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	entry, err := h.payoutService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Payout create service error", "error", err, "employee_id", createReq.EmployeeID, "month", createReq.Month)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payout recorded", "id", entry.ID, "employee_id", entry.EmployeeID, "amount", entry.Amount, "month", entry.Month)
	response.Created(w, "Payout recorded successfully", entry)
}

// Delete implements PayoutHandler.
func (h *PayoutHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.payoutService.Delete(r.Context(), id); err != nil {
		slog.Error("Payout delete service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payout deleted", "id", id)
	response.SuccessWithMessage(w, "Payout entry deleted successfully", nil)
}
