package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"velora_back_end/internal/database"
	"velora_back_end/internal/models"
)

type ReminderRepository interface {
	Create(ctx context.Context, reminder models.Reminder) (*models.Reminder, error)
}

type MongoReminderRepository struct{}

func NewMongoReminderRepository() *MongoReminderRepository {
	return &MongoReminderRepository{}
}

func (r *MongoReminderRepository) Create(ctx context.Context, reminder models.Reminder) (*models.Reminder, error) {
	coll, err := database.Collection(CollReminders)
	if err != nil {
		return nil, err
	}

	res, err := coll.InsertOne(ctx, reminder)
	if err != nil {
		return nil, err
	}
	reminder.ID = res.InsertedID.(primitive.ObjectID)
	return &reminder, nil
}
