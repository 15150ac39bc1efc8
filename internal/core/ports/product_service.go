package ports

import (
	"context"

	"github.com/storelabs/store-api/internal/core/domain"
)

// CreateProductInput is the DTO passed from the transport layer.
type CreateProductInput struct {
	Name        string
	Description string
	Price       string
	Image       string
}

// ProductService exposes the product operations. List returns only the
// caller's own products; ListAll is the public browsing path and takes no
// identity at all.
type ProductService interface {
	List(ctx context.Context, identity domain.Identity) ([]domain.Product, error)
	ListAll(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, identity domain.Identity, in CreateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, identity domain.Identity, id string) error
}
