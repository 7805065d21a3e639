package chemicals

import (
	"context"
	"errors"

	"gorm.io/gorm"

	types "github.com/rdcatlas/rdcatlas-backend/internal/domain"
	"github.com/rdcatlas/rdcatlas-backend/internal/platform/logger"
)

// DrugRow is one reverse-lookup row: a drug that references the entity,
// with the role the entity plays in it. Ordered by drug name, relation id
// breaking ties for a drug related under several roles.
type DrugRow struct {
	DrugID       string  `gorm:"column:drug_id"`
	DrugName     string  `gorm:"column:drug_name"`
	Status       *string `gorm:"column:status"`
	Type         *string `gorm:"column:type"`
	RelationRole *string `gorm:"column:relation_role"`
}

// SearchRow is the minimal shape returned by entity name search.
type SearchRow struct {
	EntityCategory string  `gorm:"column:entity_category"`
	EntityID       string  `gorm:"column:entity_id"`
	Name           string  `gorm:"column:name"`
	Formula        *string `gorm:"column:formula"`
}

type EntityRepo interface {
	GetByKey(ctx context.Context, tx *gorm.DB, entityCategory, entityID string) (*types.ChemicalEntity, error)
	Search(ctx context.Context, tx *gorm.DB, entityCategory, q string, limit int) ([]SearchRow, error)
	ListDrugs(ctx context.Context, tx *gorm.DB, entityCategory, entityID string) ([]DrugRow, error)
}

type entityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEntityRepo(db *gorm.DB, baseLog *logger.Logger) EntityRepo {
	repoLog := baseLog.With("repo", "EntityRepo")
	return &entityRepo{db: db, log: repoLog}
}

func (r *entityRepo) GetByKey(ctx context.Context, tx *gorm.DB, entityCategory, entityID string) (*types.ChemicalEntity, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var entity types.ChemicalEntity
	if err := transaction.WithContext(ctx).
		Where("entity_category = ? AND entity_id = ?", entityCategory, entityID).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *entityRepo) Search(ctx context.Context, tx *gorm.DB, entityCategory, q string, limit int) ([]SearchRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	rows := []SearchRow{}
	if err := transaction.WithContext(ctx).
		Model(&types.ChemicalEntity{}).
		Select("entity_category, entity_id, name, formula").
		Where("entity_category = ? AND name ILIKE ?", entityCategory, "%"+q+"%").
		Order("name ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *entityRepo) ListDrugs(ctx context.Context, tx *gorm.DB, entityCategory, entityID string) ([]DrugRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	rows := []DrugRow{}
	if err := transaction.WithContext(ctx).
		Raw(`
			SELECT d.drug_id, d.drug_name, d.status, d.type, dcr.relation_role
			FROM drug_chemical_rel dcr
			JOIN rdc_drug d ON d.drug_id = dcr.drug_id
			WHERE dcr.entity_category = ? AND dcr.entity_id = ?
			ORDER BY d.drug_name ASC, dcr.id ASC`, entityCategory, entityID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
