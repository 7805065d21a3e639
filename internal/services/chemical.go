package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rdcatlas/rdcatlas-backend/internal/data/repos/chemicals"
	types "github.com/rdcatlas/rdcatlas-backend/internal/domain"
	errs "github.com/rdcatlas/rdcatlas-backend/internal/pkg/errors"
	"github.com/rdcatlas/rdcatlas-backend/internal/platform/logger"
)

type ChemicalService interface {
	Detail(ctx context.Context, tx *gorm.DB, entityCategory, entityID string, includeActivity bool) (*ChemicalDetail, error)
	RdcList(ctx context.Context, tx *gorm.DB, entityCategory, entityID string) (*ChemicalRdcList, error)
	Search(ctx context.Context, tx *gorm.DB, entityCategory, q string, limit int) ([]ChemicalSearchItem, error)
}

type chemicalService struct {
	entityRepo  chemicals.EntityRepo
	drugService DrugService
	log         *logger.Logger
}

// NewChemicalService composes the drug service so activity rollups reuse the
// same section assembly the drug detail endpoint serves.
func NewChemicalService(entityRepo chemicals.EntityRepo, drugService DrugService, baseLog *logger.Logger) ChemicalService {
	serviceLog := baseLog.With("service", "ChemicalService")
	return &chemicalService{
		entityRepo:  entityRepo,
		drugService: drugService,
		log:         serviceLog,
	}
}

func chemicalBasic(entity *types.ChemicalEntity) ChemicalBasic {
	return ChemicalBasic{
		EntityCategory: entity.EntityCategory,
		EntityID:       entity.EntityID,
		Name:           entity.Name,
		Synonyms:       entity.Synonyms,
		Smiles:         entity.Smiles,
		Formula:        entity.Formula,
		StructureImage: entity.StructureImage,
		Mol2DPath:      entity.Mol2DPath,
		Mol3DPath:      entity.Mol3DPath,
		PubchemCID:     entity.PubchemCID,
		Inchi:          entity.Inchi,
		Inchikey:       entity.Inchikey,
		IupacName:      entity.IupacName,

		MolecularWeight: entity.MolecularWeight,
		Complexity:      entity.Complexity,
		HeavyAtomCount:  entity.HeavyAtomCount,
		HbondAcceptors:  entity.HbondAcceptors,
		HbondDonors:     entity.HbondDonors,
		RotatableBonds:  entity.RotatableBonds,
		LogP:            entity.LogP,
		TPSA:            entity.TPSA,

		LinkerType:           entity.LinkerType,
		RadionuclideSymbol:   entity.RadionuclideSymbol,
		RadionuclideHalfLife: entity.RadionuclideHalfLife,
		RadionuclideEmission: entity.RadionuclideEmission,
		RadionuclideEnergy:   entity.RadionuclideEnergy,
	}
}

func (s *chemicalService) getEntity(ctx context.Context, tx *gorm.DB, entityCategory, entityID string) (*types.ChemicalEntity, error) {
	entity, err := s.entityRepo.GetByKey(ctx, tx, entityCategory, entityID)
	if err != nil {
		s.log.Error("get entity failed", "entity_category", entityCategory, "entity_id", entityID, "error", err)
		return nil, err
	}
	if entity == nil {
		return nil, fmt.Errorf("chemical %s/%s: %w", entityCategory, entityID, errs.ErrNotFound)
	}
	return entity, nil
}

// dedupDrugIDs keeps first occurrence order; an entity related to the same
// drug under several roles rolls up once.
func dedupDrugIDs(rows []chemicals.DrugRow) []chemicals.DrugRow {
	seen := make(map[string]bool, len(rows))
	out := make([]chemicals.DrugRow, 0, len(rows))
	for _, row := range rows {
		if seen[row.DrugID] {
			continue
		}
		seen[row.DrugID] = true
		out = append(out, row)
	}
	return out
}

func (s *chemicalService) Detail(ctx context.Context, tx *gorm.DB, entityCategory, entityID string, includeActivity bool) (*ChemicalDetail, error) {
	entity, err := s.getEntity(ctx, tx, entityCategory, entityID)
	if err != nil {
		return nil, err
	}

	detail := &ChemicalDetail{Basic: chemicalBasic(entity)}
	if !includeActivity {
		return detail, nil
	}

	drugRows, err := s.entityRepo.ListDrugs(ctx, tx, entityCategory, entityID)
	if err != nil {
		s.log.Error("list entity drugs failed", "entity_category", entityCategory, "entity_id", entityID, "error", err)
		return nil, err
	}

	activity := make([]ChemicalActivityItem, 0, len(drugRows))
	opts := ExpandOptions{
		Requested:     true,
		HumanActivity: true,
		AnimalInVivo:  true,
		InVitro:       true,
	}
	for _, row := range dedupDrugIDs(drugRows) {
		drugDetail, err := s.drugService.Detail(ctx, tx, row.DrugID, opts)
		if err != nil {
			// A relation row pointing at a since-removed drug should not
			// sink the whole rollup.
			if errors.Is(err, errs.ErrNotFound) {
				continue
			}
			return nil, err
		}
		activity = append(activity, ChemicalActivityItem{
			DrugID:        drugDetail.General.DrugID,
			DrugName:      drugDetail.General.DrugName,
			Status:        drugDetail.General.Status,
			Type:          drugDetail.General.Type,
			HumanActivity: *drugDetail.HumanActivity,
			AnimalInVivo:  *drugDetail.AnimalInVivo,
			InVitro:       *drugDetail.InVitro,
		})
	}
	detail.RdcActivity = &activity
	return detail, nil
}

func (s *chemicalService) RdcList(ctx context.Context, tx *gorm.DB, entityCategory, entityID string) (*ChemicalRdcList, error) {
	entity, err := s.getEntity(ctx, tx, entityCategory, entityID)
	if err != nil {
		return nil, err
	}

	drugRows, err := s.entityRepo.ListDrugs(ctx, tx, entityCategory, entityID)
	if err != nil {
		s.log.Error("list entity drugs failed", "entity_category", entityCategory, "entity_id", entityID, "error", err)
		return nil, err
	}

	list := &ChemicalRdcList{
		Basic: chemicalBasic(entity),
		Rdcs:  make([]ChemicalRdcRef, 0, len(drugRows)),
	}
	for _, row := range drugRows {
		list.Rdcs = append(list.Rdcs, ChemicalRdcRef{
			DrugID:       row.DrugID,
			DrugName:     row.DrugName,
			Status:       row.Status,
			Type:         row.Type,
			RelationRole: row.RelationRole,
		})
	}
	return list, nil
}

func (s *chemicalService) Search(ctx context.Context, tx *gorm.DB, entityCategory, q string, limit int) ([]ChemicalSearchItem, error) {
	rows, err := s.entityRepo.Search(ctx, tx, entityCategory, q, limit)
	if err != nil {
		s.log.Error("entity search failed", "entity_category", entityCategory, "error", err)
		return nil, err
	}

	items := make([]ChemicalSearchItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, ChemicalSearchItem{
			EntityCategory: row.EntityCategory,
			EntityID:       row.EntityID,
			Name:           row.Name,
			Formula:        row.Formula,
		})
	}
	return items, nil
}
