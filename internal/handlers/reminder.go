package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"velora_back_end/internal/models"
	"velora_back_end/internal/repository"
)

// Délai fixe avant relance d'un panier abandonné.
const abandonedCartDelay = 3 * time.Hour

type ReminderHandler struct {
	reminders repository.ReminderRepository
}

func NewReminderHandler(reminders repository.ReminderRepository) *ReminderHandler {
	return &ReminderHandler{reminders: reminders}
}

// 🟢 POST /abandoned/:cart_id
// Enregistre simplement une relance planifiée à J+3h. L'envoi d'email
// (SendGrid, Mailgun, SMTP…) se branchera plus tard sur cette collection.
func (h *ReminderHandler) ScheduleAbandonedCart(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reminder := models.Reminder{
		CartID:       c.Param("cart_id"),
		Type:         models.ReminderTypeAbandonedCart,
		ScheduledFor: time.Now().UTC().Add(abandonedCartDelay),
	}

	out, err := h.reminders.Create(ctx, reminder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur planification relance: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"scheduled": true, "id": out.ID.Hex()})
}
