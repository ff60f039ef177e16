package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"velora_back_end/internal/models"
)

func newCheckoutRouter(carts *fakeCartRepo, orders *fakeOrderRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCheckoutHandler(carts, orders)
	r.POST("/checkout", h.Checkout)
	return r
}

func checkoutBody(cartID string) string {
	return `{"cart_id":"` + cartID + `","email":"client@example.com","payment_method":"payfast",` +
		`"shipping_country":"ZA","shipping_city":"Cape Town","shipping_address":"12 Kloof St"}`
}

func cartFixture(subtotal float64) *models.Cart {
	return &models.Cart{
		ID:       primitive.NewObjectID(),
		Items:    []models.CartItem{{ProductID: primitive.NewObjectID().Hex(), Quantity: 1}},
		Currency: "USD",
		Subtotal: subtotal,
	}
}

func TestCheckout_TotalCopiedFromCartSubtotal(t *testing.T) {
	stored := cartFixture(189.97)
	carts := &fakeCartRepo{
		findFunc: func(ctx context.Context, id string) (*models.Cart, error) {
			return stored, nil
		},
	}
	orders := &fakeOrderRepo{}
	r := newCheckoutRouter(carts, orders)

	rr := performRequest(r, http.MethodPost, "/checkout", checkoutBody(stored.ID.Hex()))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var order models.Order
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &order))
	assert.Equal(t, stored.Subtotal, order.Total) // copié, jamais recalculé
	assert.Equal(t, "USD", order.Currency)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "payfast", order.PaymentMethod)
	assert.Equal(t, stored.ID.Hex(), order.CartID)
	require.Len(t, orders.created, 1)
}

func TestCheckout_UnknownCartReturns404(t *testing.T) {
	orders := &fakeOrderRepo{}
	r := newCheckoutRouter(&fakeCartRepo{}, orders)

	rr := performRequest(r, http.MethodPost, "/checkout", checkoutBody(primitive.NewObjectID().Hex()))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, orders.created)
}

func TestCheckout_MissingFieldsRejected(t *testing.T) {
	orders := &fakeOrderRepo{}
	r := newCheckoutRouter(&fakeCartRepo{}, orders)

	rr := performRequest(r, http.MethodPost, "/checkout", `{"cart_id":"x"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, orders.created)
}

func TestCheckout_RepeatedCallsCreateIndependentOrders(t *testing.T) {
	stored := cartFixture(75.00)
	carts := &fakeCartRepo{
		findFunc: func(ctx context.Context, id string) (*models.Cart, error) {
			return stored, nil
		},
	}
	orders := &fakeOrderRepo{}
	r := newCheckoutRouter(carts, orders)

	body := checkoutBody(stored.ID.Hex())
	rr1 := performRequest(r, http.MethodPost, "/checkout", body)
	rr2 := performRequest(r, http.MethodPost, "/checkout", body)

	require.Equal(t, http.StatusOK, rr1.Code)
	require.Equal(t, http.StatusOK, rr2.Code)

	// Pas de clé d'idempotence : deux commandes distinctes
	require.Len(t, orders.created, 2)
	assert.NotEqual(t, orders.created[0].ID, orders.created[1].ID)
	assert.Equal(t, orders.created[0].Total, orders.created[1].Total)
}
