package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/storelabs/store-api/internal/core/domain"
)

type stubChatRepo struct {
	messages []domain.Message
	seq      int
}

func (r *stubChatRepo) List(_ context.Context) ([]domain.Message, error) {
	out := make([]domain.Message, len(r.messages))
	copy(out, r.messages)
	return out, nil
}

func (r *stubChatRepo) Insert(_ context.Context, m *domain.Message) (*domain.Message, error) {
	r.seq++
	created := *m
	created.ID = "m" + strconv.Itoa(r.seq)
	r.messages = append(r.messages, created)
	out := created
	return &out, nil
}

func TestChatService_Post_DenormalizesSender(t *testing.T) {
	repo := &stubChatRepo{}
	svc := NewChatService(repo, &recordingSink{}, zerolog.Nop())

	msg, err := svc.Post(context.Background(), admin, "  hello  ")
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if msg.Content != "hello" {
		t.Fatalf("expected trimmed content, got %q", msg.Content)
	}
	if msg.SenderID != admin.UserID || msg.SenderName != admin.Username || !msg.SenderIsAdmin {
		t.Fatalf("sender not denormalized: %+v", msg)
	}

	listed, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != msg.ID {
		t.Fatalf("unexpected listing: %+v", listed)
	}
}
