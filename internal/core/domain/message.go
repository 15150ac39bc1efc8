package domain

import "time"

// Message is a chat message visible to every authenticated user.
// Sender name and admin flag are denormalized at write time so listing
// does not require a join against the users collection.
type Message struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	SenderID      string    `json:"sender_id" bson:"sender_id"`
	SenderName    string    `json:"sender_name" bson:"sender_name"`
	SenderIsAdmin bool      `json:"sender_is_admin" bson:"sender_is_admin"`
	Content       string    `json:"content" bson:"content"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}
