package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/facade-tech/workforce-backend-go/internal/domain/attendance"
	"github.com/facade-tech/workforce-backend-go/internal/domain/audit"
	"github.com/facade-tech/workforce-backend-go/internal/domain/employee"
	"github.com/facade-tech/workforce-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	reply string
	err   error

	lastSystem string
	lastUser   string
}

func (f *fakeLLM) Complete(ctx context.Context, system string, user string) (string, error) {
	f.lastSystem = system
	f.lastUser = user
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func testSetup(client *fakeLLM, entries ...attendance.AttendanceEntry) *AuditServiceImpl {
	return NewAuditService(
		memory.NewEmployeeRepository(employee.Employee{
			ID: "emp-1", Name: "Alice Smith", Role: "Installer", MonthlySalary: decimal.NewFromInt(30000),
			Password: strPtr("secret1"), UserID: strPtr("alice.smith"),
		}),
		memory.NewProjectRepository(),
		memory.NewAttendanceRepository(entries...),
		memory.NewAdvanceRepository(),
		client,
	)
}

func strPtr(s string) *string { return &s }

func TestRunParsesFencedJSON(t *testing.T) {
	client := &fakeLLM{reply: "```json\n{\"summary\": \"All clear\", \"findings\": [{\"severity\": \"HIGH\", \"type\": \"Anomaly\", \"description\": \"6 OT hours\", \"affectedEntryIds\": [\"att-1\"]}]}\n```"}
	svc := testSetup(client)

	result, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "All clear", result.Summary)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, audit.SeverityHigh, result.Findings[0].Severity)
	assert.Equal(t, []string{"att-1"}, result.Findings[0].AffectedEntryIDs)
}

func TestRunKeepsCredentialsOutOfPrompt(t *testing.T) {
	client := &fakeLLM{reply: `{"summary": "ok", "findings": []}`}
	svc := testSetup(client)

	_, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, client.lastUser, "Alice Smith")
	assert.NotContains(t, client.lastUser, "secret1")
	assert.NotContains(t, client.lastSystem, "secret1")
}

func TestRunWrapsClientFailure(t *testing.T) {
	client := &fakeLLM{err: errors.New("connection refused")}
	svc := testSetup(client)

	_, err := svc.Run(context.Background())
	assert.ErrorIs(t, err, audit.ErrAuditFailed)
}

func TestRunRejectsMalformedReply(t *testing.T) {
	client := &fakeLLM{reply: "I could not audit that, sorry."}
	svc := testSetup(client)

	_, err := svc.Run(context.Background())
	assert.ErrorIs(t, err, audit.ErrAuditFailed)
}

func TestDuplicatesGroupsByEmployeeDateProject(t *testing.T) {
	svc := testSetup(nil,
		attendance.AttendanceEntry{ID: "att-1", EmployeeID: "emp-1", ProjectID: "prj-1", Date: "2024-06-03"},
		attendance.AttendanceEntry{ID: "att-2", EmployeeID: "emp-1", ProjectID: "prj-1", Date: "2024-06-03"},
		attendance.AttendanceEntry{ID: "att-3", EmployeeID: "emp-1", ProjectID: "prj-2", Date: "2024-06-03"},
		attendance.AttendanceEntry{ID: "att-4", EmployeeID: "emp-1", ProjectID: "prj-1", Date: "2024-06-04"},
	)

	groups, err := svc.Duplicates(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)

	assert.Equal(t, "emp-1", groups[0].EmployeeID)
	assert.Equal(t, "Alice Smith", groups[0].EmployeeName)
	assert.Equal(t, "2024-06-03", groups[0].Date)
	assert.Equal(t, "prj-1", groups[0].ProjectID)
	assert.ElementsMatch(t, []string{"att-1", "att-2"}, groups[0].EntryIDs)
}

func TestDuplicatesEmptyWhenClean(t *testing.T) {
	svc := testSetup(nil,
		attendance.AttendanceEntry{ID: "att-1", EmployeeID: "emp-1", ProjectID: "prj-1", Date: "2024-06-03"},
	)

	groups, err := svc.Duplicates(context.Background())
	require.NoError(t, err)
	assert.Empty(t, groups)
}
