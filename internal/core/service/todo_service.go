package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/storelabs/store-api/internal/core/domain"
	"github.com/storelabs/store-api/internal/core/ports"
)

// TodoService implements the todo operations. Mutations go through the same
// fetch-then-policy sequence as products: a missing todo is a not-found, a
// foreign todo is a forbidden.
type TodoService struct {
	repo  ports.TodoRepository
	audit ports.AuditSink
	log   zerolog.Logger
}

func NewTodoService(repo ports.TodoRepository, audit ports.AuditSink, log zerolog.Logger) *TodoService {
	return &TodoService{repo: repo, audit: audit, log: log}
}

func (s *TodoService) List(ctx context.Context, identity domain.Identity) ([]domain.Todo, error) {
	return s.repo.FindByOwner(ctx, identity.UserID)
}

func (s *TodoService) Create(ctx context.Context, identity domain.Identity, title string, completed bool) (*domain.Todo, error) {
	todo := &domain.Todo{
		Title:     strings.TrimSpace(title),
		Completed: completed,
		OwnerID:   identity.UserID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, todo)
	if err != nil {
		return nil, err
	}

	s.audit.Emit(domain.AuditEvent{
		ActorID:   identity.UserID,
		ActorName: identity.Username,
		Action:    domain.AuditTodoCreated,
		SubjectID: created.ID,
		At:        time.Now().UTC(),
	})
	return created, nil
}

func (s *TodoService) SetCompleted(ctx context.Context, identity domain.Identity, id string, completed bool) (*domain.Todo, error) {
	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !identity.CanMutate(todo.OwnerID) {
		return nil, domain.ErrForbidden
	}

	updated, err := s.repo.SetCompleted(ctx, id, completed)
	if err != nil {
		return nil, err
	}

	s.audit.Emit(domain.AuditEvent{
		ActorID:   identity.UserID,
		ActorName: identity.Username,
		Action:    domain.AuditTodoUpdated,
		SubjectID: id,
		At:        time.Now().UTC(),
	})
	return updated, nil
}

func (s *TodoService) Delete(ctx context.Context, identity domain.Identity, id string) error {
	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !identity.CanMutate(todo.OwnerID) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Emit(domain.AuditEvent{
		ActorID:   identity.UserID,
		ActorName: identity.Username,
		Action:    domain.AuditTodoDeleted,
		SubjectID: id,
		At:        time.Now().UTC(),
	})
	return nil
}
