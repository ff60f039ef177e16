package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"velora_back_end/internal/database"
	"velora_back_end/internal/models"
)

type OrderRepository interface {
	Create(ctx context.Context, order models.Order) (*models.Order, error)
}

type MongoOrderRepository struct{}

func NewMongoOrderRepository() *MongoOrderRepository {
	return &MongoOrderRepository{}
}

func (r *MongoOrderRepository) Create(ctx context.Context, order models.Order) (*models.Order, error) {
	coll, err := database.Collection(CollOrders)
	if err != nil {
		return nil, err
	}

	res, err := coll.InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = res.InsertedID.(primitive.ObjectID)
	return &order, nil
}
