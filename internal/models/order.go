package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatusPending : statut initial de toute commande.
// Le cycle de vie au-delà n'est pas géré ici.
const OrderStatusPending = "pending"

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CartID        string             `bson:"cart_id" json:"cart_id"`
	Email         string             `bson:"email" json:"email"`
	Total         float64            `bson:"total" json:"total"`
	Currency      string             `bson:"currency" json:"currency"`
	PaymentMethod string             `bson:"payment_method" json:"payment_method"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

// CheckoutRequest : payload de POST /checkout.
// payment_method reste du texte libre (stripe|paypal|payfast|payflex|yoco|ozow|card).
type CheckoutRequest struct {
	CartID          string `json:"cart_id" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	PaymentMethod   string `json:"payment_method" binding:"required"`
	ShippingCountry string `json:"shipping_country" binding:"required"`
	ShippingCity    string `json:"shipping_city" binding:"required"`
	ShippingAddress string `json:"shipping_address" binding:"required"`
}
