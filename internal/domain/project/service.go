package project

import "context"

type ProjectService interface {
	List(ctx context.Context) ([]Project, error)
	Create(ctx context.Context, req CreateProjectRequest) (Project, error)
	Delete(ctx context.Context, id string) error
}
