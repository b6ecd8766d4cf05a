package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/facade-tech/workforce-backend-go/internal/domain/attendance"
	"github.com/facade-tech/workforce-backend-go/internal/domain/auth"
	"github.com/facade-tech/workforce-backend-go/internal/domain/employee"
	"github.com/facade-tech/workforce-backend-go/internal/domain/project"
	"github.com/facade-tech/workforce-backend-go/internal/pkg/identifier"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	projectRepo    project.ProjectRepository
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	projectRepo project.ProjectRepository,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		projectRepo:    projectRepo,
		now:            time.Now,
	}
}

// List implements attendance.AttendanceService. Supervisors get only the
// entries they created; admins and managers get everything.
func (s *AttendanceServiceImpl) List(ctx context.Context, actor auth.Identity) ([]attendance.AttendanceResponse, error) {
	entries, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	employeeNames, projectNames, err := s.nameIndexes(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(entries))
	for _, entry := range entries {
		if !actor.SeesAllEntries() && entry.CreatedBy != actor.UserID {
			continue
		}
		responses = append(responses, s.toResponse(entry, employeeNames, projectNames))
	}
	return responses, nil
}

// Create implements attendance.AttendanceService. The duplicate check is
// global: one entry per employee per date, regardless of who recorded it
// or on which project.
func (s *AttendanceServiceImpl) Create(ctx context.Context, actor auth.Identity, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	today := s.now().Format("2006-01-02")
	if req.Date > today {
		return attendance.AttendanceResponse{}, attendance.ErrFutureDate
	}
	if actor.Role == auth.RoleSupervisor && req.Date != today {
		return attendance.AttendanceResponse{}, attendance.ErrDateNotToday
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	prj, err := s.projectRepo.GetByID(ctx, req.ProjectID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	entries, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	for _, existing := range entries {
		if existing.EmployeeID == req.EmployeeID && existing.Date == req.Date {
			return attendance.AttendanceResponse{}, fmt.Errorf("%s already has an entry on %s: %w", emp.Name, req.Date, attendance.ErrDuplicateEntry)
		}
	}

	status := attendance.Status(req.Status)
	if status == "" {
		status = attendance.StatusPresent
	}

	entry := attendance.AttendanceEntry{
		ID:            identifier.New(identifier.PrefixAttendance),
		EmployeeID:    req.EmployeeID,
		ProjectID:     req.ProjectID,
		Date:          req.Date,
		Status:        status,
		RegularHours:  req.RegularHours,
		OvertimeHours: req.OvertimeHours,
		CreatedAt:     s.now().UTC(),
		CreatedBy:     actor.UserID,
	}

	if err := s.attendanceRepo.Insert(ctx, entry); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to insert attendance: %w", err)
	}

	return attendance.AttendanceResponse{
		AttendanceEntry: entry,
		EmployeeName:    emp.Name,
		ProjectName:     prj.Name,
	}, nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}

func (s *AttendanceServiceImpl) nameIndexes(ctx context.Context) (map[string]string, map[string]string, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list employees: %w", err)
	}
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list projects: %w", err)
	}

	employeeNames := make(map[string]string, len(employees))
	for _, emp := range employees {
		employeeNames[emp.ID] = emp.Name
	}
	projectNames := make(map[string]string, len(projects))
	for _, prj := range projects {
		projectNames[prj.ID] = prj.Name
	}
	return employeeNames, projectNames, nil
}

func (s *AttendanceServiceImpl) toResponse(entry attendance.AttendanceEntry, employeeNames, projectNames map[string]string) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		AttendanceEntry: entry,
		EmployeeName:    employee.UnknownName,
		ProjectName:     employee.UnknownName,
	}
	if name, ok := employeeNames[entry.EmployeeID]; ok {
		resp.EmployeeName = name
	}
	if name, ok := projectNames[entry.ProjectID]; ok {
		resp.ProjectName = name
	}
	return resp
}
