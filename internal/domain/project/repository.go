package project

import "context"

// ProjectRepository is the project collection of the record store.
type ProjectRepository interface {
	List(ctx context.Context) ([]Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	Insert(ctx context.Context, prj Project) error
	Delete(ctx context.Context, id string) error
}
