package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/storelabs/store-api/internal/core/domain"
	"github.com/storelabs/store-api/internal/core/ports"
)

// ChatService implements the shared chat room. Messages are immutable once
// posted; there is no edit or delete path.
type ChatService struct {
	repo  ports.ChatRepository
	audit ports.AuditSink
	log   zerolog.Logger
}

func NewChatService(repo ports.ChatRepository, audit ports.AuditSink, log zerolog.Logger) *ChatService {
	return &ChatService{repo: repo, audit: audit, log: log}
}

func (s *ChatService) List(ctx context.Context) ([]domain.Message, error) {
	return s.repo.List(ctx)
}

func (s *ChatService) Post(ctx context.Context, identity domain.Identity, content string) (*domain.Message, error) {
	message := &domain.Message{
		SenderID:      identity.UserID,
		SenderName:    identity.Username,
		SenderIsAdmin: identity.IsAdmin,
		Content:       strings.TrimSpace(content),
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, message)
	if err != nil {
		return nil, err
	}

	s.audit.Emit(domain.AuditEvent{
		ActorID:   identity.UserID,
		ActorName: identity.Username,
		Action:    domain.AuditMessagePosted,
		SubjectID: created.ID,
		At:        time.Now().UTC(),
	})
	return created, nil
}
