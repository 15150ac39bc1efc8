package ports

import (
	"context"

	"github.com/storelabs/store-api/internal/core/domain"
)

// TodoRepository handles todo persistence.
type TodoRepository interface {
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Todo, error)
	FindByID(ctx context.Context, id string) (*domain.Todo, error)
	Insert(ctx context.Context, t *domain.Todo) (*domain.Todo, error)
	SetCompleted(ctx context.Context, id string, completed bool) (*domain.Todo, error)
	Delete(ctx context.Context, id string) error
}
