package studies

import (
	"context"

	"gorm.io/gorm"

	types "github.com/rdcatlas/rdcatlas-backend/internal/domain"
	"github.com/rdcatlas/rdcatlas-backend/internal/platform/logger"
)

type InVitroRepo interface {
	GetStudiesByDrugID(ctx context.Context, tx *gorm.DB, drugID string) ([]*types.InVitroStudy, error)
	GetMeasurementsByStudyIDs(ctx context.Context, tx *gorm.DB, studyIDs []string) ([]*types.InVitroMeasurement, error)
}

type inVitroRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInVitroRepo(db *gorm.DB, baseLog *logger.Logger) InVitroRepo {
	repoLog := baseLog.With("repo", "InVitroRepo")
	return &inVitroRepo{db: db, log: repoLog}
}

func (r *inVitroRepo) GetStudiesByDrugID(ctx context.Context, tx *gorm.DB, drugID string) ([]*types.InVitroStudy, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.InVitroStudy{}
	if err := transaction.WithContext(ctx).
		Where("drug_id = ?", drugID).
		Order("created_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *inVitroRepo) GetMeasurementsByStudyIDs(ctx context.Context, tx *gorm.DB, studyIDs []string) ([]*types.InVitroMeasurement, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.InVitroMeasurement{}
	if len(studyIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("in_vitro_ref_id IN ?", studyIDs).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
