package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

// Product is a listing created by a user. Price is kept as a free-form
// string because sellers enter arbitrary currency formats; no arithmetic
// is ever performed on it server-side.
type Product struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       string    `json:"price" bson:"price"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	OwnerID     string    `json:"owner_id" bson:"owner_id"`
	OwnerName   string    `json:"owner_name" bson:"owner_name"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
