package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"velora_back_end/internal/database"
	"velora_back_end/internal/models"
	"velora_back_end/internal/repository"
)

const productsCacheKey = "products:all"

type ProductHandler struct {
	products repository.ProductRepository
}

func NewProductHandler(products repository.ProductRepository) *ProductHandler {
	return &ProductHandler{products: products}
}

// 🟢 GET /products?category=&q=&sort=
func (h *ProductHandler) ListProducts(c *gin.Context) {
	category := c.Query("category")
	q := c.Query("q")
	sortBy := c.Query("sort")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// ✅ Cache Redis, uniquement pour la liste complète sans filtre ni tri
	useCache := category == "" && q == "" && sortBy == "" && database.RedisClient != nil
	if useCache {
		if val, err := database.RedisClient.Get(ctx, productsCacheKey).Result(); err == nil && val != "" {
			var cached []models.Product
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				c.JSON(http.StatusOK, cached)
				return
			}
		}
	}

	products, err := h.products.List(ctx, repository.ProductFilter{Category: category, Query: q})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produits: " + err.Error()})
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	// Tri stable : à score égal, l'ordre du store est conservé
	if sortBy == "trend" {
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].TrendScore > products[j].TrendScore
		})
	}

	if useCache {
		if data, err := json.Marshal(products); err == nil {
			database.RedisClient.Set(ctx, productsCacheKey, data, time.Hour)
		}
	}

	c.JSON(http.StatusOK, products)
}

// 🟢 GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p, err := h.products.FindByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produit: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, p)
}
