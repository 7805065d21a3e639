package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/rdcatlas/rdcatlas-backend/internal/data/repos/references"
	"github.com/rdcatlas/rdcatlas-backend/internal/platform/logger"
)

type ReferenceList struct {
	DrugID     string          `json:"drug_id"`
	References []ReferenceItem `json:"references"`
}

type ReferenceService interface {
	ListByDrug(ctx context.Context, tx *gorm.DB, drugID string) (*ReferenceList, error)
}

type referenceService struct {
	referenceRepo references.ReferenceRepo
	log           *logger.Logger
}

func NewReferenceService(referenceRepo references.ReferenceRepo, baseLog *logger.Logger) ReferenceService {
	serviceLog := baseLog.With("service", "ReferenceService")
	return &referenceService{referenceRepo: referenceRepo, log: serviceLog}
}

// ListByDrug never 404s: an unknown drug id simply yields an empty list.
func (s *referenceService) ListByDrug(ctx context.Context, tx *gorm.DB, drugID string) (*ReferenceList, error) {
	rows, err := s.referenceRepo.GetByDrugID(ctx, tx, drugID)
	if err != nil {
		s.log.Error("list references failed", "drug_id", drugID, "error", err)
		return nil, err
	}

	items := make([]ReferenceItem, 0, len(rows))
	for _, row := range rows {
		var date *string
		if row.Date != nil {
			formatted := row.Date.UTC().Format("2006-01-02")
			date = &formatted
		}
		items = append(items, ReferenceItem{
			Title:    row.Title,
			Authors:  row.Authors,
			Journal:  row.Journal,
			Date:     date,
			Volume:   row.Volume,
			Issue:    row.Issue,
			Pages:    row.Pages,
			DOI:      row.DOI,
			PMID:     row.PMID,
			URL:      row.URL,
			Abstract: row.Abstract,
			Notes:    row.Notes,
			Note:     row.Note,
		})
	}
	return &ReferenceList{DrugID: drugID, References: items}, nil
}
