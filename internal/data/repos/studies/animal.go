package studies

import (
	"context"

	"gorm.io/gorm"

	types "github.com/rdcatlas/rdcatlas-backend/internal/domain"
	"github.com/rdcatlas/rdcatlas-backend/internal/platform/logger"
)

// AnimalStudyRepo fetches studies for a drug plus their three child record
// sets. Children are fetched with one IN query per table across the whole
// study id set, never per study.
type AnimalStudyRepo interface {
	GetStudiesByDrugID(ctx context.Context, tx *gorm.DB, drugID string) ([]*types.AnimalInVivoStudy, error)
	GetPKByStudyIDs(ctx context.Context, tx *gorm.DB, studyIDs []string) ([]*types.AnimalInVivoPK, error)
	GetBiodistByStudyIDs(ctx context.Context, tx *gorm.DB, studyIDs []string) ([]*types.AnimalInVivoBiodist, error)
	GetEfficacyByStudyIDs(ctx context.Context, tx *gorm.DB, studyIDs []string) ([]*types.AnimalInVivoEfficacy, error)
}

type animalStudyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAnimalStudyRepo(db *gorm.DB, baseLog *logger.Logger) AnimalStudyRepo {
	repoLog := baseLog.With("repo", "AnimalStudyRepo")
	return &animalStudyRepo{db: db, log: repoLog}
}

func (r *animalStudyRepo) GetStudiesByDrugID(ctx context.Context, tx *gorm.DB, drugID string) ([]*types.AnimalInVivoStudy, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.AnimalInVivoStudy{}
	if err := transaction.WithContext(ctx).
		Where("drug_id = ?", drugID).
		Order("created_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *animalStudyRepo) GetPKByStudyIDs(ctx context.Context, tx *gorm.DB, studyIDs []string) ([]*types.AnimalInVivoPK, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.AnimalInVivoPK{}
	if len(studyIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("study_ref_id IN ?", studyIDs).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *animalStudyRepo) GetBiodistByStudyIDs(ctx context.Context, tx *gorm.DB, studyIDs []string) ([]*types.AnimalInVivoBiodist, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.AnimalInVivoBiodist{}
	if len(studyIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("study_ref_id IN ?", studyIDs).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *animalStudyRepo) GetEfficacyByStudyIDs(ctx context.Context, tx *gorm.DB, studyIDs []string) ([]*types.AnimalInVivoEfficacy, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.AnimalInVivoEfficacy{}
	if len(studyIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("study_ref_id IN ?", studyIDs).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
