package audit

// Result is the structured outcome of an AI integrity audit over the
// full attendance, advance, employee and project collections.
type Result struct {
	Summary  string    `json:"summary"`
	Findings []Finding `json:"findings"`
}

type Finding struct {
	Severity         Severity `json:"severity"`
	Type             string   `json:"type"`
	Description      string   `json:"description"`
	AffectedEntryIDs []string `json:"affectedEntryIds,omitempty"`
}

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// DuplicateGroup is one (employee, date, project) combination that has
// more than one attendance entry. Detected locally, without the AI
// collaborator.
type DuplicateGroup struct {
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	Date         string   `json:"date"`
	ProjectID    string   `json:"project_id"`
	EntryIDs     []string `json:"entry_ids"`
}
