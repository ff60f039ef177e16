package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"velora_back_end/internal/models"
	"velora_back_end/internal/repository"
	"velora_back_end/internal/utils"
)

// Les paniers sont mono-devise pour l'instant.
const cartCurrency = "USD"

type CartHandler struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

func NewCartHandler(carts repository.CartRepository, products repository.ProductRepository) *CartHandler {
	return &CartHandler{carts: carts, products: products}
}

// 🟢 POST /cart — body : liste de {product_id, quantity}.
// Le sous-total est recalculé côté serveur sur le target_price courant,
// jamais sur des prix fournis par le client. Un seul produit introuvable
// fait échouer toute l'opération, aucun panier partiel n'est persisté.
func (h *CartHandler) CreateCart(c *gin.Context) {
	var items []models.CartItem
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le panier doit contenir au moins un article"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	subtotal := 0.0
	for i := range items {
		if items[i].Quantity == 0 {
			items[i].Quantity = 1 // quantité par défaut
		}
		if items[i].Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("quantity invalide pour %s: %d", items[i].ProductID, items[i].Quantity)})
			return
		}

		p, err := h.products.FindByID(ctx, items[i].ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Produit " + items[i].ProductID + " introuvable"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produit: " + err.Error()})
			return
		}

		subtotal += p.Price.TargetPrice * float64(items[i].Quantity)
	}

	cart := models.Cart{
		Items:     items,
		Currency:  cartCurrency,
		Subtotal:  utils.Round2(subtotal), // arrondi une seule fois, sur la somme
		CreatedAt: time.Now().UTC(),
	}

	out, err := h.carts.Create(ctx, cart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création panier: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}

// 🟢 GET /cart/:id
func (h *CartHandler) GetCart(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cart, err := h.carts.FindByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Panier introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, cart)
}
