package handlers

import (
	"net/http"

	"daogen/internal/responses"

	"github.com/gin-gonic/gin"
)

// Health handles GET /healthz
func Health(c *gin.Context) {
	responses.Success(c, http.StatusOK, gin.H{"status": "ok"}, "")
}
