package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/facade-tech/workforce-backend-go/internal/domain/payroll"
	"github.com/facade-tech/workforce-backend-go/internal/handler/http/response"
	"github.com/facade-tech/workforce-backend-go/internal/pkg/validator"
)

type ReportHandler interface {
	EmployeeReport(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ProjectReport(w http.ResponseWriter, r *http.Request)
	CompanySummary(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewReportHandler(payrollService payroll.PayrollService) ReportHandler {
	return &ReportHandlerImpl{payrollService: payrollService}
}

// windowFromQuery reads the month query parameter. Absent or "all" means
// the all-time window.
func windowFromQuery(r *http.Request) (payroll.Window, error) {
	month := r.URL.Query().Get("month")
	if month == "" || month == "all" {
		return payroll.AllTime, nil
	}
	if !validator.IsValidMonth(month) {
		return payroll.Window{}, validator.ValidationErrors{
			{Field: "month", Message: "must be 'all' or a valid month (YYYY-MM)"},
		}
	}
	return payroll.MonthWindow(month), nil
}

// EmployeeReport implements ReportHandler.
func (h *ReportHandlerImpl) EmployeeReport(w http.ResponseWriter, r *http.Request) {
	window, err := windowFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summaries, err := h.payrollService.EmployeeReport(r.Context(), window)
	if err != nil {
		slog.Error("Employee report service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, summaries)
}

// ExportCSV implements ReportHandler. The CSV is streamed directly, not
// wrapped in the JSON envelope.
func (h *ReportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	window, err := windowFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := "payroll-all-time.csv"
	if !window.IsAllTime() {
		filename = fmt.Sprintf("payroll-%s.csv", window.Month)
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.payrollService.ExportCSV(r.Context(), window, w); err != nil {
		// Headers may already be out; log and abandon the response.
		slog.Error("Payroll CSV export error", "error", err)
	}
}

// ProjectReport implements ReportHandler.
func (h *ReportHandlerImpl) ProjectReport(w http.ResponseWriter, r *http.Request) {
	window, err := windowFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summaries, err := h.payrollService.ProjectReport(r.Context(), window)
	if err != nil {
		slog.Error("Project report service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, summaries)
}

// CompanySummary implements ReportHandler.
func (h *ReportHandlerImpl) CompanySummary(w http.ResponseWriter, r *http.Request) {
	window, err := windowFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.payrollService.CompanyReport(r.Context(), window)
	if err != nil {
		slog.Error("Company summary service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}
