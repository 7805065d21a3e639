package app

import (
	"gorm.io/gorm"

	"github.com/rdcatlas/rdcatlas-backend/internal/data/repos/chemicals"
	"github.com/rdcatlas/rdcatlas-backend/internal/data/repos/drugs"
	"github.com/rdcatlas/rdcatlas-backend/internal/data/repos/references"
	"github.com/rdcatlas/rdcatlas-backend/internal/data/repos/studies"
	"github.com/rdcatlas/rdcatlas-backend/internal/platform/logger"
)

type Repos struct {
	Drug          drugs.DrugRepo
	Relation      drugs.RelationRepo
	Entity        chemicals.EntityRepo
	HumanActivity studies.HumanActivityRepo
	AnimalStudy   studies.AnimalStudyRepo
	InVitro       studies.InVitroRepo
	Reference     references.ReferenceRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		Drug:          drugs.NewDrugRepo(db, log),
		Relation:      drugs.NewRelationRepo(db, log),
		Entity:        chemicals.NewEntityRepo(db, log),
		HumanActivity: studies.NewHumanActivityRepo(db, log),
		AnimalStudy:   studies.NewAnimalStudyRepo(db, log),
		InVitro:       studies.NewInVitroRepo(db, log),
		Reference:     references.NewReferenceRepo(db, log),
	}
}
