package app

import (
	"github.com/rdcatlas/rdcatlas-backend/internal/platform/logger"
	"github.com/rdcatlas/rdcatlas-backend/internal/services"
)

type Services struct {
	Drug      services.DrugService
	Chemical  services.ChemicalService
	Reference services.ReferenceService
}

func wireServices(log *logger.Logger, repos Repos) Services {
	drugService := services.NewDrugService(
		repos.Drug,
		repos.Relation,
		repos.HumanActivity,
		repos.AnimalStudy,
		repos.InVitro,
		log,
	)
	return Services{
		Drug:      drugService,
		Chemical:  services.NewChemicalService(repos.Entity, drugService, log),
		Reference: services.NewReferenceService(repos.Reference, log),
	}
}
