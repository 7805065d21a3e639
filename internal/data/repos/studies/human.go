package studies

import (
	"context"

	"gorm.io/gorm"

	types "github.com/rdcatlas/rdcatlas-backend/internal/domain"
	"github.com/rdcatlas/rdcatlas-backend/internal/platform/logger"
)

type HumanActivityRepo interface {
	GetByDrugID(ctx context.Context, tx *gorm.DB, drugID string) ([]*types.HumanActivity, error)
}

type humanActivityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHumanActivityRepo(db *gorm.DB, baseLog *logger.Logger) HumanActivityRepo {
	repoLog := baseLog.With("repo", "HumanActivityRepo")
	return &humanActivityRepo{db: db, log: repoLog}
}

func (r *humanActivityRepo) GetByDrugID(ctx context.Context, tx *gorm.DB, drugID string) ([]*types.HumanActivity, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.HumanActivity{}
	if err := transaction.WithContext(ctx).
		Where("drug_id = ?", drugID).
		Order("created_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
