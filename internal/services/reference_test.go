package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/rdcatlas/rdcatlas-backend/internal/data/repos/references"
)

type fakeReferenceRepo struct {
	rows map[string][]references.Row
}

func (f *fakeReferenceRepo) GetByDrugID(_ context.Context, _ *gorm.DB, drugID string) ([]references.Row, error) {
	return f.rows[drugID], nil
}

func TestListByDrugFormatsDates(t *testing.T) {
	date := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	repo := &fakeReferenceRepo{rows: map[string][]references.Row{
		"RDC-1": {
			{Title: str("Dated paper"), Date: &date, Note: str("pivotal trial")},
			{Title: str("Undated report")},
		},
	}}
	svc := NewReferenceService(repo, testLogger(t))

	list, err := svc.ListByDrug(context.Background(), nil, "RDC-1")
	if err != nil {
		t.Fatalf("ListByDrug: %v", err)
	}
	if list.DrugID != "RDC-1" || len(list.References) != 2 {
		t.Fatalf("unexpected list: %+v", list)
	}
	if list.References[0].Date == nil || *list.References[0].Date != "2023-01-15" {
		t.Fatalf("date format wrong: %v", list.References[0].Date)
	}
	if *list.References[0].Note != "pivotal trial" {
		t.Fatalf("relation note lost: %+v", list.References[0])
	}
	if list.References[1].Date != nil {
		t.Fatalf("missing dates must stay null: %v", list.References[1].Date)
	}
}

func TestListByDrugUnknownDrugIsEmptyNot404(t *testing.T) {
	svc := NewReferenceService(&fakeReferenceRepo{}, testLogger(t))

	list, err := svc.ListByDrug(context.Background(), nil, "RDC-NONE")
	if err != nil {
		t.Fatalf("ListByDrug: %v", err)
	}
	if list.DrugID != "RDC-NONE" || len(list.References) != 0 {
		t.Fatalf("expected empty list envelope: %+v", list)
	}
}
