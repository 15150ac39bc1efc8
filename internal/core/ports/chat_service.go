package ports

import (
	"context"

	"github.com/storelabs/store-api/internal/core/domain"
)

// ChatService exposes the shared chat room.
type ChatService interface {
	List(ctx context.Context) ([]domain.Message, error)
	Post(ctx context.Context, identity domain.Identity, content string) (*domain.Message, error)
}
