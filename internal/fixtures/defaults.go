package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/facade-tech/workforce-backend-go/internal/domain/employee"
	"github.com/facade-tech/workforce-backend-go/internal/domain/project"
	"github.com/facade-tech/workforce-backend-go/internal/pkg/identifier"
	"github.com/shopspring/decimal"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string { return &s }

// ==========================================
// DEFAULT EMPLOYEES
// ==========================================

// GetDefaultEmployees returns the starter crew seeded into an empty
// installation.
func GetDefaultEmployees(now time.Time) []employee.Employee {
	return []employee.Employee{
		{
			ID:            identifier.New(identifier.PrefixEmployee),
			Name:          "John Doe",
			Role:          "Foreman",
			MonthlySalary: decimal.NewFromInt(45000),
			JoinDate:      "2023-01-01",
			AccessLevel:   employee.AccessSupervisor,
			UserID:        strPtr("john.doe"),
			Password:      strPtr("password123"),
			CreatedAt:     now,
		},
		{
			ID:            identifier.New(identifier.PrefixEmployee),
			Name:          "Alice Smith",
			Role:          "Installer",
			MonthlySalary: decimal.NewFromInt(30000),
			JoinDate:      "2023-03-15",
			AccessLevel:   employee.AccessStaff,
			CreatedAt:     now,
		},
		{
			ID:            identifier.New(identifier.PrefixEmployee),
			Name:          "Bob Johnson",
			Role:          "Glass Cutter",
			MonthlySalary: decimal.NewFromInt(35000),
			JoinDate:      "2023-05-20",
			AccessLevel:   employee.AccessStaff,
			CreatedAt:     now,
		},
		{
			ID:            identifier.New(identifier.PrefixEmployee),
			Name:          "Sarah Wilson",
			Role:          "Technician",
			MonthlySalary: decimal.NewFromInt(28000),
			JoinDate:      "2023-06-10",
			AccessLevel:   employee.AccessStaff,
			CreatedAt:     now,
		},
	}
}

// ==========================================
// DEFAULT PROJECTS
// ==========================================

// GetDefaultProjects returns the starter project sites.
func GetDefaultProjects(now time.Time) []project.Project {
	return []project.Project{
		{
			ID:        identifier.New(identifier.PrefixProject),
			Name:      "Skyline Tower",
			Location:  "Downtown",
			CreatedAt: now,
		},
		{
			ID:        identifier.New(identifier.PrefixProject),
			Name:      "Marina Bay Hotel",
			Location:  "Coastal Area",
			CreatedAt: now,
		},
		{
			ID:        identifier.New(identifier.PrefixProject),
			Name:      "Tech Park Plaza",
			Location:  "Suburb",
			CreatedAt: now,
		},
	}
}

// ==========================================
// SEEDING
// ==========================================

// SeedIfEmpty writes the default employees and projects when both
// collections are empty. A store that already holds any record is left
// untouched, so seeding never resurrects deleted defaults.
func SeedIfEmpty(ctx context.Context, employeeRepo employee.EmployeeRepository, projectRepo project.ProjectRepository) (bool, error) {
	employees, err := employeeRepo.List(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list employees: %w", err)
	}
	projects, err := projectRepo.List(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list projects: %w", err)
	}
	if len(employees) > 0 || len(projects) > 0 {
		return false, nil
	}

	now := time.Now().UTC()
	for _, emp := range GetDefaultEmployees(now) {
		if err := employeeRepo.Insert(ctx, emp); err != nil {
			return false, fmt.Errorf("failed to seed employee %s: %w", emp.Name, err)
		}
	}
	for _, prj := range GetDefaultProjects(now) {
		if err := projectRepo.Insert(ctx, prj); err != nil {
			return false, fmt.Errorf("failed to seed project %s: %w", prj.Name, err)
		}
	}
	return true, nil
}
