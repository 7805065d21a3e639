package drugs

import (
	"context"

	"gorm.io/gorm"

	"github.com/rdcatlas/rdcatlas-backend/internal/platform/logger"
)

// RelationRow is one drug→entity edge joined with the entity name. Rows are
// ordered by relation role, then entity name, which makes the first-seen
// primary-name pick deterministic (lexicographically smallest name per role).
type RelationRow struct {
	RelationRole   *string `gorm:"column:relation_role"`
	EntityCategory string  `gorm:"column:entity_category"`
	EntityID       string  `gorm:"column:entity_id"`
	Name           string  `gorm:"column:name"`
}

type RelationRepo interface {
	GetByDrugID(ctx context.Context, tx *gorm.DB, drugID string) ([]RelationRow, error)
}

type relationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRelationRepo(db *gorm.DB, baseLog *logger.Logger) RelationRepo {
	repoLog := baseLog.With("repo", "RelationRepo")
	return &relationRepo{db: db, log: repoLog}
}

func (r *relationRepo) GetByDrugID(ctx context.Context, tx *gorm.DB, drugID string) ([]RelationRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	rows := []RelationRow{}
	if err := transaction.WithContext(ctx).
		Raw(`
			SELECT dcr.relation_role, dcr.entity_category, dcr.entity_id, ce.name
			FROM drug_chemical_rel dcr
			JOIN chemical_entity ce
				ON ce.entity_category = dcr.entity_category AND ce.entity_id = dcr.entity_id
			WHERE dcr.drug_id = ?
			ORDER BY dcr.relation_role, ce.name`, drugID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
