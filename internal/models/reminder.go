package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ReminderTypeAbandonedCart = "abandoned_cart"

// Reminder : relance planifiée (écriture seule, aucun worker ne la consomme ici).
type Reminder struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CartID       string             `bson:"cart_id" json:"cart_id"`
	Type         string             `bson:"type" json:"type"`
	ScheduledFor time.Time          `bson:"scheduled_for" json:"scheduled_for"`
}
