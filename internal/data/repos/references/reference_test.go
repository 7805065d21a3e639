package references

import (
	"context"
	"testing"
	"time"

	"github.com/rdcatlas/rdcatlas-backend/internal/data/repos/testutil"
)

func TestGetByDrugIDOrdersNullDatesLast(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := NewReferenceRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	testutil.SeedDrug(t, tx, "RDC-30", "Xofigo", "Approved", base)

	older := time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	testutil.SeedReference(t, tx, "RDC-30", "Older dated paper", &older)
	testutil.SeedReference(t, tx, "RDC-30", "Undated report B", nil)
	testutil.SeedReference(t, tx, "RDC-30", "Newer dated paper", &newer)
	testutil.SeedReference(t, tx, "RDC-30", "Undated report A", nil)

	rows, err := repo.GetByDrugID(ctx, tx, "RDC-30")
	if err != nil {
		t.Fatalf("GetByDrugID: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("unexpected count: got=%d want=4", len(rows))
	}

	wantTitles := []string{
		"Newer dated paper",
		"Older dated paper",
		"Undated report A",
		"Undated report B",
	}
	for i, want := range wantTitles {
		if rows[i].Title == nil || *rows[i].Title != want {
			t.Fatalf("rows[%d].Title: got=%v want=%q", i, rows[i].Title, want)
		}
	}
}

func TestGetByDrugIDEmpty(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := NewReferenceRepo(gdb, testutil.Logger(t))

	rows, err := repo.GetByDrugID(context.Background(), tx, "RDC-NONE")
	if err != nil {
		t.Fatalf("GetByDrugID: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}
