package references

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/rdcatlas/rdcatlas-backend/internal/platform/logger"
)

// Row is one reference joined with its per-relation note. Ordering: dated
// references first (newest to oldest), undated last, ties broken by title.
type Row struct {
	Title    *string    `gorm:"column:title"`
	Authors  *string    `gorm:"column:authors"`
	Journal  *string    `gorm:"column:journal"`
	Date     *time.Time `gorm:"column:date"`
	Volume   *string    `gorm:"column:volume"`
	Issue    *string    `gorm:"column:issue"`
	Pages    *string    `gorm:"column:pages"`
	DOI      *string    `gorm:"column:doi"`
	PMID     *string    `gorm:"column:pmid"`
	URL      *string    `gorm:"column:url"`
	Abstract *string    `gorm:"column:abstract"`
	Notes    *string    `gorm:"column:notes"`
	Note     *string    `gorm:"column:relation_note"`
}

type ReferenceRepo interface {
	GetByDrugID(ctx context.Context, tx *gorm.DB, drugID string) ([]Row, error)
}

type referenceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReferenceRepo(db *gorm.DB, baseLog *logger.Logger) ReferenceRepo {
	repoLog := baseLog.With("repo", "ReferenceRepo")
	return &referenceRepo{db: db, log: repoLog}
}

func (r *referenceRepo) GetByDrugID(ctx context.Context, tx *gorm.DB, drugID string) ([]Row, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	rows := []Row{}
	if err := transaction.WithContext(ctx).
		Raw(`
			SELECT
				ref.title, ref.authors, ref.journal, ref.date,
				ref.volume, ref.issue, ref.pages, ref.doi, ref.pmid,
				ref.url, ref.abstract, ref.notes,
				drr.note AS relation_note
			FROM drug_reference_rel drr
			JOIN reference ref ON ref.id = drr.reference_id
			WHERE drr.drug_id = ?
			ORDER BY ref.date DESC NULLS LAST, ref.title ASC`, drugID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
