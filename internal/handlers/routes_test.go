package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/emeka-dev/catalog-backend/internal/config"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, nil, config.Config{Env: "development"})
	return router
}

func TestHealthRoute(t *testing.T) {
	rec := doJSON(t, newTestRouter(), http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "API is running...", body["message"])
	assert.Equal(t, "1.0.0", body["version"])
}

func TestUnmatchedRoute(t *testing.T) {
	rec := doJSON(t, newTestRouter(), http.MethodGet, "/api/does-not-exist", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Route not found", body["message"])
}
