package ports

import (
	"context"

	"github.com/storelabs/store-api/internal/core/domain"
)

// ChatRepository handles chat message persistence.
type ChatRepository interface {
	// List returns all messages ordered oldest first.
	List(ctx context.Context) ([]domain.Message, error)
	Insert(ctx context.Context, m *domain.Message) (*domain.Message, error)
}
