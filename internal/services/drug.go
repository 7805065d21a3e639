package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/rdcatlas/rdcatlas-backend/internal/data/repos/drugs"
	"github.com/rdcatlas/rdcatlas-backend/internal/data/repos/studies"
	types "github.com/rdcatlas/rdcatlas-backend/internal/domain"
	errs "github.com/rdcatlas/rdcatlas-backend/internal/pkg/errors"
	"github.com/rdcatlas/rdcatlas-backend/internal/platform/logger"
)

// ExpandOptions selects which activity sections the detail document carries.
// Requested distinguishes "expand param present" from "absent": when present,
// every section key appears in the document, empty placeholders included.
type ExpandOptions struct {
	Requested     bool
	HumanActivity bool
	AnimalInVivo  bool
	InVitro       bool
	AllEntities   bool
}

type DrugService interface {
	List(ctx context.Context, tx *gorm.DB, params drugs.ListParams) (*DrugListPage, error)
	Search(ctx context.Context, tx *gorm.DB, q string, limit int) ([]DrugSummary, error)
	ListByStatus(ctx context.Context, tx *gorm.DB, status string, limit int) ([]DrugSummary, error)
	FindByName(ctx context.Context, tx *gorm.DB, drugName string) (*DrugBasic, error)
	StatusDict(ctx context.Context, tx *gorm.DB) (*StatusDict, error)
	Detail(ctx context.Context, tx *gorm.DB, drugID string, opts ExpandOptions) (*DrugDetail, error)
}

type drugService struct {
	drugRepo     drugs.DrugRepo
	relationRepo drugs.RelationRepo
	humanRepo    studies.HumanActivityRepo
	animalRepo   studies.AnimalStudyRepo
	inVitroRepo  studies.InVitroRepo
	log          *logger.Logger
}

func NewDrugService(
	drugRepo drugs.DrugRepo,
	relationRepo drugs.RelationRepo,
	humanRepo studies.HumanActivityRepo,
	animalRepo studies.AnimalStudyRepo,
	inVitroRepo studies.InVitroRepo,
	baseLog *logger.Logger,
) DrugService {
	serviceLog := baseLog.With("service", "DrugService")
	return &drugService{
		drugRepo:     drugRepo,
		relationRepo: relationRepo,
		humanRepo:    humanRepo,
		animalRepo:   animalRepo,
		inVitroRepo:  inVitroRepo,
		log:          serviceLog,
	}
}

func fmtTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func (s *drugService) List(ctx context.Context, tx *gorm.DB, params drugs.ListParams) (*DrugListPage, error) {
	rows, total, err := s.drugRepo.List(ctx, tx, params)
	if err != nil {
		s.log.Error("list drugs failed", "error", err)
		return nil, err
	}

	items := make([]DrugListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, DrugListItem{
			DrugID:           row.DrugID,
			DrugName:         row.DrugName,
			Status:           row.Status,
			Type:             row.Type,
			ColdCompoundName: row.ColdCompoundName,
			LigandName:       row.LigandName,
			LinkerName:       row.LinkerName,
			ChelatorName:     row.ChelatorName,
			RadionuclideName: row.RadionuclideName,
			CreatedAt:        fmtTime(row.CreatedAt),
		})
	}
	return &DrugListPage{
		Items:    items,
		Page:     params.Page,
		PageSize: params.PageSize,
		Total:    total,
	}, nil
}

func summarize(rows []drugs.SummaryRow) []DrugSummary {
	items := make([]DrugSummary, 0, len(rows))
	for _, row := range rows {
		items = append(items, DrugSummary{
			DrugID:   row.DrugID,
			DrugName: row.DrugName,
			Status:   row.Status,
		})
	}
	return items
}

func (s *drugService) Search(ctx context.Context, tx *gorm.DB, q string, limit int) ([]DrugSummary, error) {
	rows, err := s.drugRepo.SearchByName(ctx, tx, q, limit)
	if err != nil {
		s.log.Error("drug search failed", "error", err)
		return nil, err
	}
	return summarize(rows), nil
}

func (s *drugService) ListByStatus(ctx context.Context, tx *gorm.DB, status string, limit int) ([]DrugSummary, error) {
	rows, err := s.drugRepo.ListByStatus(ctx, tx, status, limit)
	if err != nil {
		s.log.Error("list by status failed", "error", err)
		return nil, err
	}
	return summarize(rows), nil
}

func (s *drugService) FindByName(ctx context.Context, tx *gorm.DB, drugName string) (*DrugBasic, error) {
	drug, err := s.drugRepo.GetByName(ctx, tx, drugName)
	if err != nil {
		s.log.Error("find by name failed", "error", err)
		return nil, err
	}
	if drug == nil {
		return nil, fmt.Errorf("drug %q: %w", drugName, errs.ErrNotFound)
	}
	return &DrugBasic{
		DrugID:         drug.DrugID,
		ExternalID:     drug.ExternalID,
		DrugName:       drug.DrugName,
		DrugSynonyms:   drug.DrugSynonyms,
		Status:         drug.Status,
		Type:           drug.Type,
		Smiles:         drug.Smiles,
		StructureImage: drug.StructureImage,
		ChebiID:        drug.ChebiID,
		PubchemCID:     drug.PubchemCID,
		PubchemSID:     drug.PubchemSID,
		UpdatedAt:      fmtTime(drug.UpdatedAt),
	}, nil
}

func (s *drugService) StatusDict(ctx context.Context, tx *gorm.DB) (*StatusDict, error) {
	statuses, err := s.drugRepo.DistinctStatuses(ctx, tx)
	if err != nil {
		s.log.Error("distinct statuses failed", "error", err)
		return nil, err
	}

	dict := &StatusDict{}
	dict.Dicts.Status = make([]StatusOption, 0, len(statuses))
	for _, status := range statuses {
		dict.Dicts.Status = append(dict.Dicts.Status, StatusOption{Value: status, Label: status})
	}
	return dict, nil
}

func (s *drugService) Detail(ctx context.Context, tx *gorm.DB, drugID string, opts ExpandOptions) (*DrugDetail, error) {
	drug, err := s.drugRepo.GetByID(ctx, tx, drugID)
	if err != nil {
		s.log.Error("get drug failed", "drug_id", drugID, "error", err)
		return nil, err
	}
	if drug == nil {
		return nil, fmt.Errorf("drug %q: %w", drugID, errs.ErrNotFound)
	}

	detail := &DrugDetail{General: generalBlock(drug)}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		relations, err := s.relationRepo.GetByDrugID(groupCtx, tx, drugID)
		if err != nil {
			return err
		}
		detail.Chemicals = buildChemicals(relations, opts.AllEntities)
		return nil
	})

	if opts.Requested {
		// Placeholders first so every requested-mode response carries all
		// three keys even when a section is not expanded.
		empty := []HumanActivityItem{}
		detail.HumanActivity = &empty
		detail.AnimalInVivo = &AnimalSection{Studies: []AnimalStudyDoc{}}
		emptySection := InVitroSection{}
		detail.InVitro = &emptySection

		if opts.HumanActivity {
			group.Go(func() error {
				rows, err := s.humanRepo.GetByDrugID(groupCtx, tx, drugID)
				if err != nil {
					return err
				}
				items := humanActivityItems(rows)
				detail.HumanActivity = &items
				return nil
			})
		}
		if opts.AnimalInVivo {
			group.Go(func() error {
				section, err := s.animalSection(groupCtx, tx, drugID)
				if err != nil {
					return err
				}
				detail.AnimalInVivo = section
				return nil
			})
		}
		if opts.InVitro {
			group.Go(func() error {
				section, err := s.inVitroSection(groupCtx, tx, drugID)
				if err != nil {
					return err
				}
				detail.InVitro = section
				return nil
			})
		}
	}

	if err := group.Wait(); err != nil {
		s.log.Error("drug detail assembly failed", "drug_id", drugID, "error", err)
		return nil, err
	}
	return detail, nil
}

func generalBlock(drug *types.Drug) GeneralBlock {
	return GeneralBlock{
		DrugID:         drug.DrugID,
		ExternalID:     drug.ExternalID,
		DrugName:       drug.DrugName,
		DrugSynonyms:   drug.DrugSynonyms,
		Status:         drug.Status,
		Type:           drug.Type,
		Smiles:         drug.Smiles,
		StructureImage: drug.StructureImage,
		ChebiID:        drug.ChebiID,
		PubchemCID:     drug.PubchemCID,
		PubchemSID:     drug.PubchemSID,
		CreatedAt:      fmtTime(drug.CreatedAt),
		UpdatedAt:      fmtTime(drug.UpdatedAt),
	}
}

// buildChemicals reduces ordered relation rows to one primary name per role.
// Rows arrive sorted by role then name, so the first row seen for a role wins
// deterministically.
func buildChemicals(rows []drugs.RelationRow, allEntities bool) *ChemicalsBlock {
	block := &ChemicalsBlock{}
	var entities map[string][]EntityRef
	if allEntities {
		entities = make(map[string][]EntityRef, len(types.EntityCategories))
		for _, category := range types.EntityCategories {
			entities[category] = []EntityRef{}
		}
	}

	for _, row := range rows {
		role := ""
		if row.RelationRole != nil {
			role = strings.ToLower(strings.TrimSpace(*row.RelationRole))
		}
		if !types.ValidEntityCategory(role) {
			continue
		}

		name := row.Name
		switch role {
		case types.CategoryCompound:
			if block.CompoundName == nil {
				block.CompoundName = &name
			}
		case types.CategoryLigand:
			if block.LigandName == nil {
				block.LigandName = &name
			}
		case types.CategoryLinker:
			if block.LinkerName == nil {
				block.LinkerName = &name
			}
		case types.CategoryChelator:
			if block.ChelatorName == nil {
				block.ChelatorName = &name
			}
		case types.CategoryRadionuclide:
			if block.RadionuclideName == nil {
				block.RadionuclideName = &name
			}
		}

		if entities != nil {
			entities[role] = append(entities[role], EntityRef{
				EntityID:     row.EntityID,
				Name:         row.Name,
				RelationRole: row.RelationRole,
			})
		}
	}

	block.Entities = entities
	return block
}

func humanActivityItems(rows []*types.HumanActivity) []HumanActivityItem {
	items := make([]HumanActivityItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, HumanActivityItem{
			ClinicalTrialNumber:  row.ClinicalTrialNumber,
			Indication:           row.Indication,
			Patients:             row.Patients,
			Dosage:               row.Dosage,
			Frequency:            row.Frequency,
			ResultsDescription:   row.ResultsDescription,
			Purpose:              row.Purpose,
			ClinicalEndpoint:     row.ClinicalEndpoint,
			EndpointPeriod:       row.EndpointPeriod,
			EfficacyDescription:  row.EfficacyDescription,
			AdverseEventsSummary: row.AdverseEventsSummary,
			SecurityIndicators:   row.SecurityIndicators,
		})
	}
	return items
}

func (s *drugService) animalSection(ctx context.Context, tx *gorm.DB, drugID string) (*AnimalSection, error) {
	studyRows, err := s.animalRepo.GetStudiesByDrugID(ctx, tx, drugID)
	if err != nil {
		return nil, err
	}

	studyIDs := make([]string, 0, len(studyRows))
	for _, study := range studyRows {
		studyIDs = append(studyIDs, study.StudyID)
	}

	var (
		pkRows       []*types.AnimalInVivoPK
		biodistRows  []*types.AnimalInVivoBiodist
		efficacyRows []*types.AnimalInVivoEfficacy
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		pkRows, err = s.animalRepo.GetPKByStudyIDs(groupCtx, tx, studyIDs)
		return err
	})
	group.Go(func() error {
		var err error
		biodistRows, err = s.animalRepo.GetBiodistByStudyIDs(groupCtx, tx, studyIDs)
		return err
	})
	group.Go(func() error {
		var err error
		efficacyRows, err = s.animalRepo.GetEfficacyByStudyIDs(groupCtx, tx, studyIDs)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	pkByStudy := make(map[string][]PKItem)
	for _, row := range pkRows {
		pkByStudy[row.StudyRefID] = append(pkByStudy[row.StudyRefID], PKItem{
			PKAnimalModel:   row.PKAnimalModel,
			PKDosageSymbols: row.PKDosageSymbols,
			PKDosageValue:   row.PKDosageValue,
			PKDosageUnit:    row.PKDosageUnit,
			PKDescription:   row.PKDescription,
			HalfLife:        row.HalfLife,
			PKImage:         row.PKImage,
		})
	}

	biodistByStudy := make(map[string][]*types.AnimalInVivoBiodist)
	for _, row := range biodistRows {
		biodistByStudy[row.StudyRefID] = append(biodistByStudy[row.StudyRefID], row)
	}

	efficacyByStudy := make(map[string][]EfficacyItem)
	for _, row := range efficacyRows {
		efficacyByStudy[row.StudyRefID] = append(efficacyByStudy[row.StudyRefID], EfficacyItem{
			EfficacyAnimalModel:   row.EfficacyAnimalModel,
			EfficacyDosageSymbols: row.EfficacyDosageSymbols,
			EfficacyDosageValue:   row.EfficacyDosageValue,
			EfficacyDosageUnit:    row.EfficacyDosageUnit,
			EfficacyDescription:   row.EfficacyDescription,
			AdverseReactions:      row.AdverseReactions,
		})
	}

	section := &AnimalSection{Studies: make([]AnimalStudyDoc, 0, len(studyRows))}
	for _, study := range studyRows {
		doc := AnimalStudyDoc{
			StudyID:         study.StudyID,
			PMID:            study.PMID,
			DOI:             study.DOI,
			PK:              pkByStudy[study.StudyID],
			Biodistribution: GroupBiodistribution(biodistByStudy[study.StudyID]),
			Efficacy:        efficacyByStudy[study.StudyID],
		}
		if doc.PK == nil {
			doc.PK = []PKItem{}
		}
		if doc.Efficacy == nil {
			doc.Efficacy = []EfficacyItem{}
		}
		section.Studies = append(section.Studies, doc)
	}
	return section, nil
}

func (s *drugService) inVitroSection(ctx context.Context, tx *gorm.DB, drugID string) (*InVitroSection, error) {
	studyRows, err := s.inVitroRepo.GetStudiesByDrugID(ctx, tx, drugID)
	if err != nil {
		return nil, err
	}

	studyIDs := make([]string, 0, len(studyRows))
	studyDocs := make([]InVitroStudyDoc, 0, len(studyRows))
	for _, study := range studyRows {
		studyIDs = append(studyIDs, study.InVitroID)
		studyDocs = append(studyDocs, InVitroStudyDoc{
			InVitroID:     study.InVitroID,
			StudyOverview: study.StudyOverview,
			Notes:         study.Notes,
		})
	}

	measurements, err := s.inVitroRepo.GetMeasurementsByStudyIDs(ctx, tx, studyIDs)
	if err != nil {
		return nil, err
	}

	section := InVitroSection{"studies": studyDocs}
	for _, row := range measurements {
		category := strings.TrimSpace(row.MeasurementCategory)
		if category == "" {
			category = "other"
		}
		items, _ := section[category].([]MeasurementItem)
		section[category] = append(items, MeasurementItem{
			MeasurementType:    row.MeasurementType,
			MeasurementSymbols: row.MeasurementSymbols,
			MeasurementValue:   row.MeasurementValue,
			MeasurementUnit:    row.MeasurementUnit,
			MethodDescription:  row.MethodDescription,
		})
	}
	return &section, nil
}
