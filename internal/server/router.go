package server

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/rdcatlas/rdcatlas-backend/internal/http/handlers"
	"github.com/rdcatlas/rdcatlas-backend/internal/http/middleware"
	"github.com/rdcatlas/rdcatlas-backend/internal/observability"
	"github.com/rdcatlas/rdcatlas-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log              *logger.Logger
	Metrics          *observability.Metrics
	HealthHandler    *handlers.HealthHandler
	RdcHandler       *handlers.RdcHandler
	ChemicalHandler  *handlers.ChemicalHandler
	ReferenceHandler *handlers.ReferenceHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(otelgin.Middleware("rdcatlas"))
	router.Use(middleware.AttachTraceContext())
	router.Use(middleware.RequestLogger(cfg.Log))
	if cfg.Metrics != nil {
		router.Use(middleware.Metrics(cfg.Metrics))
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	api := router.Group("/api")
	{
		// Static siblings must be registered alongside :drug_id; gin
		// resolves them before the param route.
		api.GET("/rdc", cfg.RdcHandler.List)
		api.GET("/rdc/search", cfg.RdcHandler.Search)
		api.GET("/rdc/by-status", cfg.RdcHandler.ListByStatus)
		api.GET("/rdc/detail", cfg.RdcHandler.FindByName)
		api.GET("/rdc/init", cfg.RdcHandler.Init)
		api.GET("/rdc/:drug_id", cfg.RdcHandler.Detail)

		api.GET("/chemical/search", cfg.ChemicalHandler.Search)
		api.GET("/chemical/:entity_category/:entity_id", cfg.ChemicalHandler.Detail)
		api.GET("/chemical/:entity_category/:entity_id/rdc-list", cfg.ChemicalHandler.RdcList)

		api.GET("/reference/:drug_id", cfg.ReferenceHandler.ListByDrug)
	}

	return router
}
