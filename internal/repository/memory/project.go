package memory

import (
	"context"
	"sync"

	"github.com/facade-tech/workforce-backend-go/internal/domain/project"
)

type ProjectRepository struct {
	mu    sync.RWMutex
	items []project.Project
}

func NewProjectRepository(seed ...project.Project) *ProjectRepository {
	return &ProjectRepository{items: append([]project.Project(nil), seed...)}
}

func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]project.Project(nil), r.items...), nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (project.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, prj := range r.items {
		if prj.ID == id {
			return prj, nil
		}
	}
	return project.Project{}, project.ErrProjectNotFound
}

func (r *ProjectRepository) Insert(ctx context.Context, prj project.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, prj)
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return project.ErrProjectNotFound
}
