package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"velora_back_end/internal/database"
	"velora_back_end/internal/models"
)

type CartRepository interface {
	Create(ctx context.Context, cart models.Cart) (*models.Cart, error)
	FindByID(ctx context.Context, id string) (*models.Cart, error)
}

type MongoCartRepository struct{}

func NewMongoCartRepository() *MongoCartRepository {
	return &MongoCartRepository{}
}

func (r *MongoCartRepository) Create(ctx context.Context, cart models.Cart) (*models.Cart, error) {
	coll, err := database.Collection(CollCarts)
	if err != nil {
		return nil, err
	}

	res, err := coll.InsertOne(ctx, cart)
	if err != nil {
		return nil, err
	}
	cart.ID = res.InsertedID.(primitive.ObjectID)
	return &cart, nil
}

func (r *MongoCartRepository) FindByID(ctx context.Context, id string) (*models.Cart, error) {
	coll, err := database.Collection(CollCarts)
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var cart models.Cart
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&cart); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}
