package ports

import (
	"context"

	"github.com/storelabs/store-api/internal/core/domain"
)

// ProductRepository handles product persistence.
type ProductRepository interface {
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Insert(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
