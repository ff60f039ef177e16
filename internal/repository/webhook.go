package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"velora_back_end/internal/database"
	"velora_back_end/internal/models"
)

type WebhookRepository interface {
	Create(ctx context.Context, entry models.WebhookLog) (*models.WebhookLog, error)
}

type MongoWebhookRepository struct{}

func NewMongoWebhookRepository() *MongoWebhookRepository {
	return &MongoWebhookRepository{}
}

func (r *MongoWebhookRepository) Create(ctx context.Context, entry models.WebhookLog) (*models.WebhookLog, error) {
	coll, err := database.Collection(CollWebhooks)
	if err != nil {
		return nil, err
	}

	res, err := coll.InsertOne(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = res.InsertedID.(primitive.ObjectID)
	return &entry, nil
}
