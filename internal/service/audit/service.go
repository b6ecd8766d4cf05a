package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/facade-tech/workforce-backend-go/internal/domain/advance"
	"github.com/facade-tech/workforce-backend-go/internal/domain/attendance"
	"github.com/facade-tech/workforce-backend-go/internal/domain/audit"
	"github.com/facade-tech/workforce-backend-go/internal/domain/employee"
	"github.com/facade-tech/workforce-backend-go/internal/domain/project"
	"github.com/facade-tech/workforce-backend-go/internal/pkg/llm"
)

const systemPrompt = `You are a meticulous auditor for FACADE TECH, a construction company specializing in facade work. You review workforce records for integrity problems:
- Duplicate attendance: the same employee logged more than once on the same date for the same project.
- Anomalies: more than 4 overtime hours in a single day, or unusually large cash advances relative to the employee's salary.
- Insights: patterns worth a manager's attention, such as employees consistently absent or projects consuming disproportionate labor.
Respond with JSON only, no prose outside the JSON object.`

const responseShape = `Respond with exactly this JSON shape:
{
  "summary": "one-paragraph overview of the audit",
  "findings": [
    {
      "severity": "low" | "medium" | "high",
      "type": "Duplicate" | "Anomaly" | "Insight",
      "description": "what was found and why it matters",
      "affectedEntryIds": ["att-..."]
    }
  ]
}`

type AuditServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	projectRepo    project.ProjectRepository
	attendanceRepo attendance.AttendanceRepository
	advanceRepo    advance.AdvanceRepository
	llmClient      llm.Client
}

func NewAuditService(
	employeeRepo employee.EmployeeRepository,
	projectRepo project.ProjectRepository,
	attendanceRepo attendance.AttendanceRepository,
	advanceRepo advance.AdvanceRepository,
	llmClient llm.Client,
) *AuditServiceImpl {
	return &AuditServiceImpl{
		employeeRepo:   employeeRepo,
		projectRepo:    projectRepo,
		attendanceRepo: attendanceRepo,
		advanceRepo:    advanceRepo,
		llmClient:      llmClient,
	}
}

// auditEmployee is the employee view shared with the model. Credentials
// stay out of the prompt.
type auditEmployee struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	MonthlySalary string `json:"monthly_salary"`
	JoinDate      string `json:"join_date"`
}

type auditPayload struct {
	Employees  []auditEmployee              `json:"employees"`
	Projects   []project.Project            `json:"projects"`
	Attendance []attendance.AttendanceEntry `json:"attendance"`
	Advances   []advance.AdvanceEntry       `json:"advances"`
}

// Run implements audit.AuditService. Everything that can go wrong on the
// remote side collapses into ErrAuditFailed.
func (s *AuditServiceImpl) Run(ctx context.Context) (audit.Result, error) {
	payload, err := s.buildPayload(ctx)
	if err != nil {
		return audit.Result{}, err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return audit.Result{}, fmt.Errorf("%w: encode records: %v", audit.ErrAuditFailed, err)
	}

	userPrompt := fmt.Sprintf("Audit the following workforce records.\n\n%s\n\n%s", string(data), responseShape)

	raw, err := s.llmClient.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return audit.Result{}, fmt.Errorf("%w: %v", audit.ErrAuditFailed, err)
	}

	var result audit.Result
	if err := json.Unmarshal([]byte(llm.ExtractJSON(raw)), &result); err != nil {
		return audit.Result{}, fmt.Errorf("%w: malformed model response: %v", audit.ErrAuditFailed, err)
	}
	if result.Summary == "" {
		return audit.Result{}, fmt.Errorf("%w: model response missing summary", audit.ErrAuditFailed)
	}
	for i := range result.Findings {
		result.Findings[i].Severity = normalizeSeverity(result.Findings[i].Severity)
	}

	return result, nil
}

func (s *AuditServiceImpl) buildPayload(ctx context.Context) (auditPayload, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return auditPayload{}, fmt.Errorf("failed to list employees: %w", err)
	}
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return auditPayload{}, fmt.Errorf("failed to list projects: %w", err)
	}
	entries, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return auditPayload{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	advances, err := s.advanceRepo.List(ctx)
	if err != nil {
		return auditPayload{}, fmt.Errorf("failed to list advances: %w", err)
	}

	payload := auditPayload{
		Employees:  make([]auditEmployee, 0, len(employees)),
		Projects:   projects,
		Attendance: entries,
		Advances:   advances,
	}
	for _, emp := range employees {
		payload.Employees = append(payload.Employees, auditEmployee{
			ID:            emp.ID,
			Name:          emp.Name,
			Role:          emp.Role,
			MonthlySalary: emp.MonthlySalary.String(),
			JoinDate:      emp.JoinDate,
		})
	}
	return payload, nil
}

func normalizeSeverity(sev audit.Severity) audit.Severity {
	switch audit.Severity(strings.ToLower(string(sev))) {
	case audit.SeverityHigh:
		return audit.SeverityHigh
	case audit.SeverityMedium:
		return audit.SeverityMedium
	default:
		return audit.SeverityLow
	}
}

// Duplicates implements audit.AuditService with a local scan; no model
// call involved.
func (s *AuditServiceImpl) Duplicates(ctx context.Context) ([]audit.DuplicateGroup, error) {
	entries, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	names := make(map[string]string, len(employees))
	for _, emp := range employees {
		names[emp.ID] = emp.Name
	}

	grouped := make(map[string][]attendance.AttendanceEntry)
	for _, entry := range entries {
		key := entry.EmployeeID + "|" + entry.Date + "|" + entry.ProjectID
		grouped[key] = append(grouped[key], entry)
	}

	groups := make([]audit.DuplicateGroup, 0)
	for _, dupes := range grouped {
		if len(dupes) < 2 {
			continue
		}
		group := audit.DuplicateGroup{
			EmployeeID:   dupes[0].EmployeeID,
			EmployeeName: employee.UnknownName,
			Date:         dupes[0].Date,
			ProjectID:    dupes[0].ProjectID,
		}
		if name, ok := names[group.EmployeeID]; ok {
			group.EmployeeName = name
		}
		for _, entry := range dupes {
			group.EntryIDs = append(group.EntryIDs, entry.ID)
		}
		groups = append(groups, group)
	}

	// Map iteration order is random; keep the output stable.
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Date != groups[j].Date {
			return groups[i].Date < groups[j].Date
		}
		return groups[i].EmployeeID < groups[j].EmployeeID
	})

	return groups, nil
}
