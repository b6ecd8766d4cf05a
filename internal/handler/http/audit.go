package http

import (
	"log/slog"
	"net/http"

	"github.com/facade-tech/workforce-backend-go/internal/domain/audit"
	"github.com/facade-tech/workforce-backend-go/internal/handler/http/response"
)

type AuditHandler interface {
	Run(w http.ResponseWriter, r *http.Request)
	Duplicates(w http.ResponseWriter, r *http.Request)
}

type AuditHandlerImpl struct {
	auditService audit.AuditService
}

func NewAuditHandler(auditService audit.AuditService) AuditHandler {
	return &AuditHandlerImpl{auditService: auditService}
}

// Run implements AuditHandler.
func (h *AuditHandlerImpl) Run(w http.ResponseWriter, r *http.Request) {
	result, err := h.auditService.Run(r.Context())
	if err != nil {
		slog.Error("Audit run error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Audit completed", "findings", len(result.Findings))
	response.Success(w, result)
}

// Duplicates implements AuditHandler.
func (h *AuditHandlerImpl) Duplicates(w http.ResponseWriter, r *http.Request) {
	groups, err := h.auditService.Duplicates(r.Context())
	if err != nil {
		slog.Error("Duplicate scan error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, groups)
}
