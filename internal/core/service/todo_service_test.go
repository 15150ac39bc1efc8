package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/storelabs/store-api/internal/core/domain"
)

type stubTodoRepo struct {
	todos map[string]*domain.Todo
	seq   int
}

func newStubTodoRepo() *stubTodoRepo {
	return &stubTodoRepo{todos: make(map[string]*domain.Todo)}
}

func (r *stubTodoRepo) FindByOwner(_ context.Context, ownerID string) ([]domain.Todo, error) {
	var out []domain.Todo
	for _, td := range r.todos {
		if td.OwnerID == ownerID {
			out = append(out, *td)
		}
	}
	return out, nil
}

func (r *stubTodoRepo) FindByID(_ context.Context, id string) (*domain.Todo, error) {
	td, ok := r.todos[id]
	if !ok {
		return nil, domain.ErrTodoNotFound
	}
	out := *td
	return &out, nil
}

func (r *stubTodoRepo) Insert(_ context.Context, td *domain.Todo) (*domain.Todo, error) {
	r.seq++
	created := *td
	created.ID = "t" + strconv.Itoa(r.seq)
	r.todos[created.ID] = &created
	out := created
	return &out, nil
}

func (r *stubTodoRepo) SetCompleted(_ context.Context, id string, completed bool) (*domain.Todo, error) {
	td, ok := r.todos[id]
	if !ok {
		return nil, domain.ErrTodoNotFound
	}
	td.Completed = completed
	out := *td
	return &out, nil
}

func (r *stubTodoRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.todos[id]; !ok {
		return domain.ErrTodoNotFound
	}
	delete(r.todos, id)
	return nil
}

func newTodoSvc(repo *stubTodoRepo) *TodoService {
	return NewTodoService(repo, &recordingSink{}, zerolog.Nop())
}

func TestTodoService_Create_TrimsTitle(t *testing.T) {
	svc := newTodoSvc(newStubTodoRepo())

	td, err := svc.Create(context.Background(), owner, "  buy milk  ", false)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if td.Title != "buy milk" {
		t.Fatalf("expected trimmed title, got %q", td.Title)
	}
	if td.OwnerID != owner.UserID {
		t.Fatalf("owner not set: %+v", td)
	}
}

func TestTodoService_SetCompleted(t *testing.T) {
	svc := newTodoSvc(newStubTodoRepo())

	td, err := svc.Create(context.Background(), owner, "buy milk", false)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.SetCompleted(context.Background(), owner, td.ID, true)
	if err != nil {
		t.Fatalf("set completed: %v", err)
	}
	if !updated.Completed {
		t.Fatalf("expected todo to be completed")
	}
}

func TestTodoService_ForeignMutationForbidden(t *testing.T) {
	svc := newTodoSvc(newStubTodoRepo())

	td, err := svc.Create(context.Background(), owner, "buy milk", false)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.SetCompleted(context.Background(), stranger, td.ID, true); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden on update, got %v", err)
	}
	if err := svc.Delete(context.Background(), stranger, td.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden on delete, got %v", err)
	}
}

func TestTodoService_AdminMayMutate(t *testing.T) {
	svc := newTodoSvc(newStubTodoRepo())

	td, err := svc.Create(context.Background(), owner, "buy milk", false)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), admin, td.ID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
}

func TestTodoService_MissingTodo(t *testing.T) {
	svc := newTodoSvc(newStubTodoRepo())

	if _, err := svc.SetCompleted(context.Background(), owner, "nope", true); !errors.Is(err, domain.ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), owner, "nope"); !errors.Is(err, domain.ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
}
