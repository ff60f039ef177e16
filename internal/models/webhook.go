package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WebhookLog : journal brut des webhooks paiement, aucune vérification de signature.
// Point d'ancrage pour une future intégration PSP.
type WebhookLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Provider   string             `bson:"provider" json:"provider"`
	Payload    map[string]any     `bson:"payload" json:"payload"`
	ReceivedAt time.Time          `bson:"received_at" json:"received_at"`
}
