package ports

import (
	"context"

	"github.com/storelabs/store-api/internal/core/domain"
)

// TodoService exposes the todo operations, all scoped to the caller.
type TodoService interface {
	List(ctx context.Context, identity domain.Identity) ([]domain.Todo, error)
	Create(ctx context.Context, identity domain.Identity, title string, completed bool) (*domain.Todo, error)
	SetCompleted(ctx context.Context, identity domain.Identity, id string, completed bool) (*domain.Todo, error)
	Delete(ctx context.Context, identity domain.Identity, id string) error
}
