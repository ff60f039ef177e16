package routes

import (
	"github.com/gin-gonic/gin"

	"velora_back_end/internal/handlers"
	"velora_back_end/internal/repository"
)

func RegisterRoutes(r *gin.Engine) {
	products := repository.NewMongoProductRepository()
	carts := repository.NewMongoCartRepository()
	orders := repository.NewMongoOrderRepository()
	reminders := repository.NewMongoReminderRepository()
	webhooks := repository.NewMongoWebhookRepository()

	productHandler := handlers.NewProductHandler(products)
	seedHandler := handlers.NewSeedHandler(products)
	cartHandler := handlers.NewCartHandler(carts, products)
	checkoutHandler := handlers.NewCheckoutHandler(carts, orders)
	reminderHandler := handlers.NewReminderHandler(reminders)
	webhookHandler := handlers.NewWebhookHandler(webhooks)

	// Santé & diagnostic
	r.GET("/", handlers.Root)
	r.GET("/test", handlers.TestDatabase)

	// Catalogue
	r.POST("/seed", seedHandler.SeedProducts)
	r.GET("/products", productHandler.ListProducts)
	r.GET("/products/:id", productHandler.GetProduct)

	// Panier & commande
	r.POST("/cart", cartHandler.CreateCart)
	r.GET("/cart/:id", cartHandler.GetCart)
	r.POST("/checkout", checkoutHandler.Checkout)
	r.POST("/abandoned/:cart_id", reminderHandler.ScheduleAbandonedCart)

	// Webhooks paiement (journalisation brute)
	r.POST("/webhooks/:provider", webhookHandler.LogWebhook)
}
