package project

import (
	"context"
	"fmt"
	"time"

	"github.com/facade-tech/workforce-backend-go/internal/domain/project"
	"github.com/facade-tech/workforce-backend-go/internal/pkg/identifier"
)

type ProjectServiceImpl struct {
	projectRepo project.ProjectRepository
	now         func() time.Time
}

func NewProjectService(projectRepo project.ProjectRepository) *ProjectServiceImpl {
	return &ProjectServiceImpl{
		projectRepo: projectRepo,
		now:         time.Now,
	}
}

// List implements project.ProjectService.
func (s *ProjectServiceImpl) List(ctx context.Context) ([]project.Project, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Create implements project.ProjectService.
func (s *ProjectServiceImpl) Create(ctx context.Context, req project.CreateProjectRequest) (project.Project, error) {
	prj := project.Project{
		ID:        identifier.New(identifier.PrefixProject),
		Name:      req.Name,
		Location:  req.Location,
		CreatedAt: s.now().UTC(),
	}
	if err := s.projectRepo.Insert(ctx, prj); err != nil {
		return project.Project{}, fmt.Errorf("failed to insert project: %w", err)
	}
	return prj, nil
}

// Delete implements project.ProjectService. Attendance entries tagged
// with the project stay in place and resolve to "Unknown" at read time.
func (s *ProjectServiceImpl) Delete(ctx context.Context, id string) error {
	return s.projectRepo.Delete(ctx, id)
}
