package app

import (
	"github.com/gin-gonic/gin"

	"github.com/rdcatlas/rdcatlas-backend/internal/observability"
	"github.com/rdcatlas/rdcatlas-backend/internal/platform/logger"
	"github.com/rdcatlas/rdcatlas-backend/internal/server"
)

func wireRouter(log *logger.Logger, metrics *observability.Metrics, handlerset Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:              log,
		Metrics:          metrics,
		HealthHandler:    handlerset.Health,
		RdcHandler:       handlerset.Rdc,
		ChemicalHandler:  handlerset.Chemical,
		ReferenceHandler: handlerset.Reference,
	})
}
