package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storelabs/store-api/internal/auth"
	"github.com/storelabs/store-api/internal/core/domain"
	"github.com/storelabs/store-api/internal/core/ports"
)

// LoginThrottle abstracts the Redis-backed attempt limiter. Allow reports
// whether another attempt is permitted for the username; Reset clears the
// counter after a successful login.
type LoginThrottle interface {
	Allow(ctx context.Context, username string) (bool, error)
	Reset(ctx context.Context, username string) error
}

// AuthService implements registration and login.
type AuthService struct {
	users    ports.UserRepository
	issuer   *auth.Issuer
	throttle LoginThrottle
	audit    ports.AuditSink
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, issuer *auth.Issuer, throttle LoginThrottle, audit ports.AuditSink, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, issuer: issuer, throttle: throttle, audit: audit, log: log}
}

// Register creates an account and returns a signed token. Duplicate usernames
// surface as domain.ErrUserExists from the repository's unique index; there is
// no check-then-insert race here.
func (s *AuthService) Register(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("username", created.Username).Msg("user registered")
	s.audit.Emit(domain.AuditEvent{
		ActorID:   created.ID,
		ActorName: created.Username,
		Action:    domain.AuditUserRegistered,
		SubjectID: created.ID,
		At:        time.Now().UTC(),
	})

	return s.issuer.Issue(identityOf(created))
}

// Login verifies credentials and returns a signed token. Unknown username and
// wrong password both map to domain.ErrInvalidCredentials so callers cannot
// probe which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		allowed, err := s.throttle.Allow(ctx, username)
		if err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("login throttle unavailable, allowing attempt")
		} else if !allowed {
			return "", domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, username); err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("failed to reset login throttle")
		}
	}

	s.audit.Emit(domain.AuditEvent{
		ActorID:   user.ID,
		ActorName: user.Username,
		Action:    domain.AuditUserLoggedIn,
		SubjectID: user.ID,
		At:        time.Now().UTC(),
	})

	return s.issuer.Issue(identityOf(user))
}

func identityOf(u *domain.User) domain.Identity {
	return domain.Identity{UserID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin}
}
