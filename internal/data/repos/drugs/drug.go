package drugs

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	types "github.com/rdcatlas/rdcatlas-backend/internal/domain"
	"github.com/rdcatlas/rdcatlas-backend/internal/platform/logger"
)

// ListParams filter and page the drug listing. Q and Status are optional;
// empty values mean "no filter". Sort is one of the allow-listed enum values
// already validated by the endpoint layer; anything else falls back to the
// default ordering.
type ListParams struct {
	Page     int
	PageSize int
	Q        string
	Status   string
	Sort     string
}

// ListRow is one aggregated listing row: the drug plus at most one entity
// name per relation role, collapsed via conditional aggregation.
type ListRow struct {
	DrugID           string    `gorm:"column:drug_id"`
	DrugName         string    `gorm:"column:drug_name"`
	Status           *string   `gorm:"column:status"`
	Type             *string   `gorm:"column:type"`
	ColdCompoundName *string   `gorm:"column:cold_compound_name"`
	LigandName       *string   `gorm:"column:ligand_name"`
	LinkerName       *string   `gorm:"column:linker_name"`
	ChelatorName     *string   `gorm:"column:chelator_name"`
	RadionuclideName *string   `gorm:"column:radionuclide_name"`
	CreatedAt        time.Time `gorm:"column:created_at"`
}

// SummaryRow is the minimal shape returned by name search and by-status
// listings.
type SummaryRow struct {
	DrugID   string  `gorm:"column:drug_id"`
	DrugName string  `gorm:"column:drug_name"`
	Status   *string `gorm:"column:status"`
}

type DrugRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, drugID string) (*types.Drug, error)
	GetByName(ctx context.Context, tx *gorm.DB, drugName string) (*types.Drug, error)
	List(ctx context.Context, tx *gorm.DB, params ListParams) ([]ListRow, int64, error)
	SearchByName(ctx context.Context, tx *gorm.DB, q string, limit int) ([]SummaryRow, error)
	ListByStatus(ctx context.Context, tx *gorm.DB, status string, limit int) ([]SummaryRow, error)
	DistinctStatuses(ctx context.Context, tx *gorm.DB) ([]string, error)
}

type drugRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDrugRepo(db *gorm.DB, baseLog *logger.Logger) DrugRepo {
	repoLog := baseLog.With("repo", "DrugRepo")
	return &drugRepo{db: db, log: repoLog}
}

func (r *drugRepo) GetByID(ctx context.Context, tx *gorm.DB, drugID string) (*types.Drug, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var drug types.Drug
	if err := transaction.WithContext(ctx).
		Where("drug_id = ?", drugID).
		First(&drug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &drug, nil
}

func (r *drugRepo) GetByName(ctx context.Context, tx *gorm.DB, drugName string) (*types.Drug, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var drug types.Drug
	if err := transaction.WithContext(ctx).
		Where("drug_name = ?", drugName).
		Limit(1).
		First(&drug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &drug, nil
}

// orderClause maps the sort enum onto a fixed ORDER BY fragment. Only values
// from this closed set ever reach the query text; user input is never
// interpolated.
func orderClause(sort string) string {
	switch sort {
	case "drug_name:asc":
		return "d.drug_name ASC"
	case "drug_name:desc":
		return "d.drug_name DESC"
	case "created_at:asc":
		return "d.created_at ASC"
	default:
		return "d.created_at DESC"
	}
}

func (r *drugRepo) List(ctx context.Context, tx *gorm.DB, params ListParams) ([]ListRow, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	where := ""
	args := []interface{}{}
	if q := params.Q; q != "" {
		where = "WHERE d.drug_name ILIKE ?"
		args = append(args, "%"+q+"%")
	}
	if status := params.Status; status != "" {
		if where == "" {
			where = "WHERE d.status = ?"
		} else {
			where += " AND d.status = ?"
		}
		args = append(args, status)
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > 100 {
		pageSize = 100
	}
	offset := (page - 1) * pageSize

	query := `
		SELECT
			d.drug_id,
			d.drug_name,
			d.status,
			d.type,
			MAX(CASE WHEN dcr.relation_role = 'compound' THEN ce.name END) AS cold_compound_name,
			MAX(CASE WHEN dcr.relation_role = 'ligand' THEN ce.name END) AS ligand_name,
			MAX(CASE WHEN dcr.relation_role = 'linker' THEN ce.name END) AS linker_name,
			MAX(CASE WHEN dcr.relation_role = 'chelator' THEN ce.name END) AS chelator_name,
			MAX(CASE WHEN dcr.relation_role = 'radionuclide' THEN ce.name END) AS radionuclide_name,
			d.created_at
		FROM rdc_drug d
		LEFT JOIN drug_chemical_rel dcr ON dcr.drug_id = d.drug_id
		LEFT JOIN chemical_entity ce
			ON ce.entity_category = dcr.entity_category AND ce.entity_id = dcr.entity_id
		` + where + `
		GROUP BY d.drug_id, d.drug_name, d.status, d.type, d.created_at
		ORDER BY ` + orderClause(params.Sort) + `
		LIMIT ? OFFSET ?`

	var rows []ListRow
	listArgs := append(append([]interface{}{}, args...), pageSize, offset)
	if err := transaction.WithContext(ctx).Raw(query, listArgs...).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM rdc_drug d " + where
	if err := transaction.WithContext(ctx).Raw(countQuery, args...).Scan(&total).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (r *drugRepo) SearchByName(ctx context.Context, tx *gorm.DB, q string, limit int) ([]SummaryRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	rows := []SummaryRow{}
	if err := transaction.WithContext(ctx).
		Model(&types.Drug{}).
		Select("drug_id, drug_name, status").
		Where("drug_name ILIKE ?", "%"+q+"%").
		Order("drug_name ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *drugRepo) ListByStatus(ctx context.Context, tx *gorm.DB, status string, limit int) ([]SummaryRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	rows := []SummaryRow{}
	if err := transaction.WithContext(ctx).
		Model(&types.Drug{}).
		Select("drug_id, drug_name, status").
		Where("status = ?", status).
		Order("drug_name ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *drugRepo) DistinctStatuses(ctx context.Context, tx *gorm.DB) ([]string, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	statuses := []string{}
	if err := transaction.WithContext(ctx).
		Model(&types.Drug{}).
		Distinct("status").
		Where("status IS NOT NULL AND status <> ''").
		Order("status ASC").
		Pluck("status", &statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}
