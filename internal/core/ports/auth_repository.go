package ports

import (
	"context"

	"github.com/storelabs/store-api/internal/core/domain"
)

// UserRepository is the credential store. Create must be atomic with respect
// to concurrent registrations of the same username: uniqueness is enforced by
// the storage layer, not by a prior FindByUsername.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
