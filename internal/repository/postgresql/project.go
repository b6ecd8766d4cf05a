package postgresql

import (
	"context"

	"github.com/facade-tech/workforce-backend-go/internal/domain/project"
	"github.com/facade-tech/workforce-backend-go/internal/pkg/database"
)

type projectRepository struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) List(ctx context.Context) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)
	return loadCollection[project.Project](ctx, q, keyProjects)
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (project.Project, error) {
	items, err := r.List(ctx)
	if err != nil {
		return project.Project{}, err
	}
	for _, prj := range items {
		if prj.ID == id {
			return prj, nil
		}
	}
	return project.Project{}, project.ErrProjectNotFound
}

func (r *projectRepository) Insert(ctx context.Context, prj project.Project) error {
	q := GetQuerier(ctx, r.db)
	items, err := loadCollection[project.Project](ctx, q, keyProjects)
	if err != nil {
		return err
	}
	items = append(items, prj)
	return saveCollection(ctx, q, keyProjects, items)
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	items, err := loadCollection[project.Project](ctx, q, keyProjects)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, prj := range items {
		if prj.ID != id {
			kept = append(kept, prj)
		}
	}
	if len(kept) == len(items) {
		return project.ErrProjectNotFound
	}
	return saveCollection(ctx, q, keyProjects, kept)
}
