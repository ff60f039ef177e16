package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"velora_back_end/internal/database"
)

// 🟢 GET /
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Velora Commerce API running"})
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncateErr(err error) string {
	msg := err.Error()
	if len(msg) > 80 {
		msg = msg[:80]
	}
	return msg
}

// 🟢 GET /test — diagnostic de connectivité MongoDB.
// Ne plante jamais : sans base configurée la réponse signale juste la dégradation.
func TestDatabase(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      envStatus("DATABASE_URL"),
		"database_name":     envStatus("DATABASE_NAME"),
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if database.Mongo == nil {
		c.JSON(http.StatusOK, response)
		return
	}

	response["database"] = "✅ Connected"
	response["connection_status"] = "Connected"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	names, err := database.ListCollectionNames(ctx)
	if err != nil {
		response["database"] = "⚠️ Connected but Error: " + truncateErr(err)
		c.JSON(http.StatusOK, response)
		return
	}

	if len(names) > 10 {
		names = names[:10]
	}
	response["collections"] = names
	response["database"] = "✅ Connected & Working"

	c.JSON(http.StatusOK, response)
}
