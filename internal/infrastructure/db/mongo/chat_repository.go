package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/storelabs/store-api/internal/core/domain"
)

const messagesCollection = "chat_messages"

// ChatRepository implements ports.ChatRepository using MongoDB.
type ChatRepository struct {
	coll *mongo.Collection
}

func NewChatRepository(db *mongo.Database) *ChatRepository {
	return &ChatRepository{coll: db.Collection(messagesCollection)}
}

type mongoMessage struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	SenderID      string             `bson:"sender_id"`
	SenderName    string             `bson:"sender_name"`
	SenderIsAdmin bool               `bson:"sender_is_admin"`
	Content       string             `bson:"content"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func (m mongoMessage) toDomain() domain.Message {
	return domain.Message{
		ID:            m.ID.Hex(),
		SenderID:      m.SenderID,
		SenderName:    m.SenderName,
		SenderIsAdmin: m.SenderIsAdmin,
		Content:       m.Content,
		CreatedAt:     m.CreatedAt,
	}
}

// List returns all messages ordered oldest first, matching how the chat UI
// renders the room.
func (r *ChatRepository) List(ctx context.Context) ([]domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find messages: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoMessage
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}

	messages := make([]domain.Message, 0, len(docs))
	for _, d := range docs {
		messages = append(messages, d.toDomain())
	}
	return messages, nil
}

func (r *ChatRepository) Insert(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoMessage{
		SenderID:      m.SenderID,
		SenderName:    m.SenderName,
		SenderIsAdmin: m.SenderIsAdmin,
		Content:       m.Content,
		CreatedAt:     m.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}

	created := *m
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}
