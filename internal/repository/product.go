package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"velora_back_end/internal/database"
	"velora_back_end/internal/models"
)

// ProductFilter : filtres de GET /products. Le tri "trend" se fait en mémoire
// côté handler pour garantir un tri stable.
type ProductFilter struct {
	Category string // égalité stricte
	Query    string // sous-chaîne insensible à la casse sur le titre
}

type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	// UpsertByTitle insère le produit si aucun document ne porte ce titre,
	// sinon retourne l'existant tel quel. Remplace l'ancien
	// find-then-insert, qui laissait une fenêtre de doublon.
	UpsertByTitle(ctx context.Context, p models.Product) (*models.Product, error)
}

type MongoProductRepository struct{}

func NewMongoProductRepository() *MongoProductRepository {
	return &MongoProductRepository{}
}

func (r *MongoProductRepository) List(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	coll, err := database.Collection(CollProducts)
	if err != nil {
		return nil, err
	}

	q := bson.M{}
	if filter.Category != "" {
		q["category"] = filter.Category
	}
	if filter.Query != "" {
		q["title"] = bson.M{"$regex": filter.Query, "$options": "i"}
	}

	cursor, err := coll.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *MongoProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	coll, err := database.Collection(CollProducts)
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Identifiant mal formé → même réponse qu'un document absent
		return nil, ErrNotFound
	}

	var p models.Product
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *MongoProductRepository) UpsertByTitle(ctx context.Context, p models.Product) (*models.Product, error) {
	coll, err := database.Collection(CollProducts)
	if err != nil {
		return nil, err
	}

	// $setOnInsert : un titre déjà présent reste intact, second seed inclus.
	update := bson.M{"$setOnInsert": bson.M{
		"title":       p.Title,
		"description": p.Description,
		"category":    p.Category,
		"media":       p.Media,
		"price":       p.Price,
		"trend_score": p.TrendScore,
		"badges":      p.Badges,
		"seo":         p.SEO,
		"angles":      p.Angles,
		"avatars":     p.Avatars,
		"reviews":     p.Reviews,
		"stock":       p.Stock,
	}}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var out models.Product
	if err := coll.FindOneAndUpdate(ctx, bson.M{"title": p.Title}, update, opts).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
