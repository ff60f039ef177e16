package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", Root)
	r.GET("/test", TestDatabase)
	return r
}

func TestRoot_Liveness(t *testing.T) {
	r := newHealthRouter()

	rr := performRequest(r, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Velora Commerce API running"}`, rr.Body.String())
}

func TestTestDatabase_DegradesWithoutConfiguration(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")

	r := newHealthRouter()
	rr := performRequest(r, http.MethodGet, "/test", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "✅ Running", resp["backend"])
	assert.Equal(t, "❌ Not Available", resp["database"])
	assert.Equal(t, "❌ Not Set", resp["database_url"])
	assert.Equal(t, "❌ Not Set", resp["database_name"])
	assert.Equal(t, "Not Connected", resp["connection_status"])
	assert.Empty(t, resp["collections"])
}

func TestTestDatabase_ReportsEnvPresence(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "velora")

	r := newHealthRouter()
	rr := performRequest(r, http.MethodGet, "/test", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "✅ Set", resp["database_url"])
	assert.Equal(t, "✅ Set", resp["database_name"])
}
