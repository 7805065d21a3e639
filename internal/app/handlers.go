package app

import (
	"github.com/rdcatlas/rdcatlas-backend/internal/data/db"
	"github.com/rdcatlas/rdcatlas-backend/internal/http/handlers"
	"github.com/rdcatlas/rdcatlas-backend/internal/platform/logger"
)

type Handlers struct {
	Health    *handlers.HealthHandler
	Rdc       *handlers.RdcHandler
	Chemical  *handlers.ChemicalHandler
	Reference *handlers.ReferenceHandler
}

func wireHandlers(log *logger.Logger, postgres *db.PostgresService, serviceset Services) Handlers {
	return Handlers{
		Health:    handlers.NewHealthHandler(postgres),
		Rdc:       handlers.NewRdcHandler(log, serviceset.Drug),
		Chemical:  handlers.NewChemicalHandler(log, serviceset.Chemical),
		Reference: handlers.NewReferenceHandler(log, serviceset.Reference),
	}
}
