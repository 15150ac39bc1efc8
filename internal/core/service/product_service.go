package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/storelabs/store-api/internal/core/domain"
	"github.com/storelabs/store-api/internal/core/ports"
)

// ProductService implements the product operations with ownership checks on
// every mutation.
type ProductService struct {
	repo  ports.ProductRepository
	audit ports.AuditSink
	log   zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, audit ports.AuditSink, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, audit: audit, log: log}
}

// List returns the caller's own products.
func (s *ProductService) List(ctx context.Context, identity domain.Identity) ([]domain.Product, error) {
	return s.repo.FindByOwner(ctx, identity.UserID)
}

// ListAll returns every product. This is the public browsing path and
// deliberately bypasses the ownership policy.
func (s *ProductService) ListAll(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProductService) Create(ctx context.Context, identity domain.Identity, in ports.CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		OwnerID:     identity.UserID,
		OwnerName:   identity.Username,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("product_id", created.ID).Str("owner", identity.Username).Msg("product created")
	s.audit.Emit(domain.AuditEvent{
		ActorID:   identity.UserID,
		ActorName: identity.Username,
		Action:    domain.AuditProductCreated,
		SubjectID: created.ID,
		At:        time.Now().UTC(),
	})

	return created, nil
}

// Delete removes a product. Only the owner or an admin may delete; anyone
// else gets domain.ErrForbidden.
func (s *ProductService) Delete(ctx context.Context, identity domain.Identity, id string) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !identity.CanMutate(product.OwnerID) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Emit(domain.AuditEvent{
		ActorID:   identity.UserID,
		ActorName: identity.Username,
		Action:    domain.AuditProductDeleted,
		SubjectID: id,
		At:        time.Now().UTC(),
	})
	return nil
}
