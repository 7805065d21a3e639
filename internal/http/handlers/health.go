package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rdcatlas/rdcatlas-backend/internal/data/db"
)

type HealthHandler struct {
	postgres *db.PostgresService
}

func NewHealthHandler(postgres *db.PostgresService) *HealthHandler {
	return &HealthHandler{postgres: postgres}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if h.postgres != nil {
		sqlDB, err := h.postgres.DB().DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "postgres": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
