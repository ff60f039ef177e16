package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"velora_back_end/internal/models"
	"velora_back_end/internal/repository"
)

type CheckoutHandler struct {
	carts  repository.CartRepository
	orders repository.OrderRepository
}

func NewCheckoutHandler(carts repository.CartRepository, orders repository.OrderRepository) *CheckoutHandler {
	return &CheckoutHandler{carts: carts, orders: orders}
}

// 🟢 POST /checkout
// Le total est copié tel quel depuis le sous-total stocké du panier :
// pas de recalcul des prix, pas de décrément de stock, pas de clé
// d'idempotence (relancer le checkout sur un même panier crée une
// commande indépendante).
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cart, err := h.carts.FindByID(ctx, req.CartID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Panier introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier: " + err.Error()})
		return
	}

	// L'adresse de livraison est validée mais pas persistée sur la commande.
	order := models.Order{
		CartID:        req.CartID,
		Email:         req.Email,
		Total:         cart.Subtotal,
		Currency:      cart.Currency,
		PaymentMethod: req.PaymentMethod,
		Status:        models.OrderStatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	out, err := h.orders.Create(ctx, order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création commande: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}
