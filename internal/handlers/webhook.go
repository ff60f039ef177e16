package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"velora_back_end/internal/models"
	"velora_back_end/internal/repository"
)

type WebhookHandler struct {
	webhooks repository.WebhookRepository
}

func NewWebhookHandler(webhooks repository.WebhookRepository) *WebhookHandler {
	return &WebhookHandler{webhooks: webhooks}
}

// 🟢 POST /webhooks/:provider
// Journalise le payload tel quel. Pas de vérification de signature ni de
// parsing spécifique au provider : c'est le point d'ancrage des futures
// intégrations PayFast, PayFlex, Yoco, Ozow, Stripe, PayPal.
func (h *WebhookHandler) LogWebhook(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "JSON invalide", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entry := models.WebhookLog{
		Provider:   c.Param("provider"),
		Payload:    payload,
		ReceivedAt: time.Now().UTC(),
	}

	out, err := h.webhooks.Create(ctx, entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur journalisation webhook: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logged": true, "id": out.ID.Hex()})
}
