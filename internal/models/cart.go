package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartItem struct {
	ProductID string `bson:"product_id" json:"product_id" binding:"required"`
	Quantity  int    `bson:"quantity" json:"quantity"`
}

type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Items     []CartItem         `bson:"items" json:"items"`
	Currency  string             `bson:"currency" json:"currency"`
	Subtotal  float64            `bson:"subtotal" json:"subtotal"` // calculé côté serveur, jamais fourni par le client
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
