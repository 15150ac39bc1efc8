package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storelabs/store-api/internal/auth"
	"github.com/storelabs/store-api/internal/core/domain"
)

// stubUserRepo is an in-memory credential store. The mutex makes Create
// atomic so the duplicate-registration race test is meaningful.
type stubUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.seq++
	created := *user
	created.ID = user.Username + "-id"
	r.users[created.Username] = &created
	out := created
	return &out, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

// recordingSink collects emitted audit events.
type recordingSink struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (s *recordingSink) Emit(event domain.AuditEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *recordingSink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	actions := make([]string, 0, len(s.events))
	for _, e := range s.events {
		actions = append(actions, e.Action)
	}
	return actions
}

type denyThrottle struct{}

func (denyThrottle) Allow(context.Context, string) (bool, error) { return false, nil }
func (denyThrottle) Reset(context.Context, string) error         { return nil }

func newAuthService(repo *stubUserRepo, throttle LoginThrottle, sink *recordingSink) *AuthService {
	issuer := auth.NewIssuer("secret", time.Hour)
	return NewAuthService(repo, issuer, throttle, sink, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	sink := &recordingSink{}
	svc := newAuthService(repo, nil, sink)

	token, err := svc.Register(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims, err := auth.NewVerifier("secret").Verify(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Username != "alice" || claims.IsAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	stored, err := repo.FindByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("find user: %v", err)
	}
	if stored.PasswordHash == "secret1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	if got := sink.actions(); len(got) != 1 || got[0] != domain.AuditUserRegistered {
		t.Fatalf("unexpected audit actions: %v", got)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil, &recordingSink{})

	if _, err := svc.Register(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil, &recordingSink{})

	if _, err := svc.Register(context.Background(), "bob", "pass"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "pass2"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_ConcurrentSameUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil, &recordingSink{})

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(context.Background(), "alice", "secret1")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, duplicates int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, domain.ErrUserExists):
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 || duplicates != 1 {
		t.Fatalf("expected exactly one success and one duplicate, got %d/%d", successes, duplicates)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one stored user, got %d", len(repo.users))
	}
}

func TestAuthService_Register_FreshSaltPerHash(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil, &recordingSink{})

	if _, err := svc.Register(context.Background(), "alice", "qwe123"); err != nil {
		t.Fatalf("register alice: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "qwe123"); err != nil {
		t.Fatalf("register bob: %v", err)
	}

	alice, _ := repo.FindByUsername(context.Background(), "alice")
	bob, _ := repo.FindByUsername(context.Background(), "bob")
	if alice.PasswordHash == bob.PasswordHash {
		t.Fatalf("expected distinct digests for the same password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(alice.PasswordHash), []byte("qwe123")); err != nil {
		t.Fatalf("alice hash does not verify: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(bob.PasswordHash), []byte("qwe123")); err != nil {
		t.Fatalf("bob hash does not verify: %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil, &recordingSink{})

	if _, err := svc.Register(context.Background(), "carol", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims, err := auth.NewVerifier("secret").Verify(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Username != "carol" {
		t.Fatalf("unexpected username claim: %q", claims.Username)
	}
}

func TestAuthService_Login_UniformRejection(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil, &recordingSink{})

	if _, err := svc.Register(context.Background(), "dave", "goodpass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Wrong password and unknown username must be indistinguishable.
	_, wrongPass := svc.Login(context.Background(), "dave", "badpass")
	_, unknownUser := svc.Login(context.Background(), "nobody", "whatever")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknownUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownUser)
	}
	if wrongPass.Error() != unknownUser.Error() {
		t.Fatalf("rejection messages differ: %q vs %q", wrongPass, unknownUser)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), denyThrottle{}, &recordingSink{})

	if _, err := svc.Login(context.Background(), "alice", "secret1"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}
