package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"velora_back_end/internal/database"
	"velora_back_end/internal/models"
	"velora_back_end/internal/repository"
	"velora_back_end/internal/seed"
)

type SeedHandler struct {
	products repository.ProductRepository
}

func NewSeedHandler(products repository.ProductRepository) *SeedHandler {
	return &SeedHandler{products: products}
}

// 🟢 POST /seed — insertion idempotente du catalogue fixe.
// Upsert par titre : un titre déjà présent est retourné tel quel,
// le second appel ne crée aucun doublon.
func (h *SeedHandler) SeedProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	catalog := seed.Catalog()
	created := make([]models.Product, 0, len(catalog))

	for _, p := range catalog {
		if err := p.Validate(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Produit seed invalide: " + err.Error()})
			return
		}

		out, err := h.products.UpsertByTitle(ctx, p)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur seed: " + err.Error()})
			return
		}
		created = append(created, *out)
	}

	// ✅ Invalide le cache liste après modification du catalogue
	if database.RedisClient != nil {
		database.RedisClient.Del(ctx, productsCacheKey)
	}

	c.JSON(http.StatusOK, created)
}
