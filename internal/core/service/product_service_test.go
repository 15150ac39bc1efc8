package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/storelabs/store-api/internal/core/domain"
	"github.com/storelabs/store-api/internal/core/ports"
)

type stubProductRepo struct {
	products map[string]*domain.Product
	seq      int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) FindByOwner(_ context.Context, ownerID string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) FindAll(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	out := *p
	return &out, nil
}

func (r *stubProductRepo) Insert(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.seq++
	created := *p
	created.ID = "p" + strconv.Itoa(r.seq)
	r.products[created.ID] = &created
	out := created
	return &out, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

var (
	owner    = domain.Identity{UserID: "u1", Username: "alice"}
	stranger = domain.Identity{UserID: "u2", Username: "bob"}
	admin    = domain.Identity{UserID: "u3", Username: "root", IsAdmin: true}
)

func newProductSvc(repo ports.ProductRepository) *ProductService {
	return NewProductService(repo, &recordingSink{}, zerolog.Nop())
}

func createProduct(t *testing.T, svc *ProductService, identity domain.Identity) *domain.Product {
	t.Helper()
	p, err := svc.Create(context.Background(), identity, ports.CreateProductInput{Name: "lamp", Price: "12.50"})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	return p
}

func TestProductService_Create_SetsOwner(t *testing.T) {
	svc := newProductSvc(newStubProductRepo())

	p := createProduct(t, svc, owner)
	if p.OwnerID != owner.UserID || p.OwnerName != owner.Username {
		t.Fatalf("owner not set: %+v", p)
	}
	if p.ID == "" {
		t.Fatalf("expected assigned id")
	}
}

func TestProductService_List_ScopedToOwner(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductSvc(repo)

	createProduct(t, svc, owner)
	createProduct(t, svc, stranger)

	mine, err := svc.List(context.Background(), owner)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 1 || mine[0].OwnerID != owner.UserID {
		t.Fatalf("expected only owner's products, got %+v", mine)
	}

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 products in public listing, got %d", len(all))
	}
}

func TestProductService_Delete_Owner(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductSvc(repo)

	p := createProduct(t, svc, owner)
	if err := svc.Delete(context.Background(), owner, p.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), p.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("product still present after delete")
	}
}

func TestProductService_Delete_ForeignForbidden(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductSvc(repo)

	p := createProduct(t, svc, owner)
	if err := svc.Delete(context.Background(), stranger, p.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := repo.FindByID(context.Background(), p.ID); err != nil {
		t.Fatalf("product should survive a forbidden delete: %v", err)
	}
}

func TestProductService_Delete_Admin(t *testing.T) {
	svc := newProductSvc(newStubProductRepo())

	p := createProduct(t, svc, owner)
	if err := svc.Delete(context.Background(), admin, p.ID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
}

func TestProductService_Delete_Missing(t *testing.T) {
	svc := newProductSvc(newStubProductRepo())

	if err := svc.Delete(context.Background(), owner, "nope"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
