package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"velora_back_end/internal/models"
	"velora_back_end/internal/repository"
)

// Dépôts factices en mémoire pour tester les handlers sans MongoDB.

type fakeProductRepo struct {
	listFunc   func(ctx context.Context, filter repository.ProductFilter) ([]models.Product, error)
	findFunc   func(ctx context.Context, id string) (*models.Product, error)
	upsertFunc func(ctx context.Context, p models.Product) (*models.Product, error)

	byTitle map[string]models.Product // utilisé par l'upsert par défaut
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byTitle: map[string]models.Product{}}
}

func (f *fakeProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]models.Product, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx, filter)
	}
	return nil, nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id string) (*models.Product, error) {
	if f.findFunc != nil {
		return f.findFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProductRepo) UpsertByTitle(ctx context.Context, p models.Product) (*models.Product, error) {
	if f.upsertFunc != nil {
		return f.upsertFunc(ctx, p)
	}
	if existing, ok := f.byTitle[p.Title]; ok {
		return &existing, nil
	}
	p.ID = primitive.NewObjectID()
	f.byTitle[p.Title] = p
	return &p, nil
}

type fakeCartRepo struct {
	findFunc func(ctx context.Context, id string) (*models.Cart, error)

	created []models.Cart
}

func (f *fakeCartRepo) Create(ctx context.Context, cart models.Cart) (*models.Cart, error) {
	cart.ID = primitive.NewObjectID()
	f.created = append(f.created, cart)
	return &cart, nil
}

func (f *fakeCartRepo) FindByID(ctx context.Context, id string) (*models.Cart, error) {
	if f.findFunc != nil {
		return f.findFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

type fakeOrderRepo struct {
	created []models.Order
}

func (f *fakeOrderRepo) Create(ctx context.Context, order models.Order) (*models.Order, error) {
	order.ID = primitive.NewObjectID()
	f.created = append(f.created, order)
	return &order, nil
}

type fakeReminderRepo struct {
	created []models.Reminder
}

func (f *fakeReminderRepo) Create(ctx context.Context, reminder models.Reminder) (*models.Reminder, error) {
	reminder.ID = primitive.NewObjectID()
	f.created = append(f.created, reminder)
	return &reminder, nil
}

type fakeWebhookRepo struct {
	created []models.WebhookLog
}

func (f *fakeWebhookRepo) Create(ctx context.Context, entry models.WebhookLog) (*models.WebhookLog, error) {
	entry.ID = primitive.NewObjectID()
	f.created = append(f.created, entry)
	return &entry, nil
}

func performRequest(handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}
