package drugs

import (
	"context"
	"testing"
	"time"

	"github.com/rdcatlas/rdcatlas-backend/internal/data/repos/testutil"
)

func TestGetByDrugIDOrderedByRoleThenName(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := NewRelationRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	testutil.SeedDrug(t, tx, "RDC-700", "Gallium Gozetotide", "Approved", base)
	testutil.SeedEntity(t, tx, "ligand", "LIG-2", "Zeta ligand")
	testutil.SeedEntity(t, tx, "ligand", "LIG-1", "Alpha ligand")
	testutil.SeedEntity(t, tx, "chelator", "CHE-1", "DOTA")
	// Insert out of role/name order on purpose.
	testutil.SeedRelation(t, tx, "RDC-700", "ligand", "LIG-2")
	testutil.SeedRelation(t, tx, "RDC-700", "chelator", "CHE-1")
	testutil.SeedRelation(t, tx, "RDC-700", "ligand", "LIG-1")

	rows, err := repo.GetByDrugID(ctx, tx, "RDC-700")
	if err != nil {
		t.Fatalf("GetByDrugID: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("unexpected row count: got=%d want=3", len(rows))
	}

	// chelator sorts before ligand; within ligand, names ascend.
	wantNames := []string{"DOTA", "Alpha ligand", "Zeta ligand"}
	for i, want := range wantNames {
		if rows[i].Name != want {
			t.Fatalf("rows[%d].Name: got=%q want=%q", i, rows[i].Name, want)
		}
	}
}

func TestGetByDrugIDEmpty(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := NewRelationRepo(gdb, testutil.Logger(t))

	rows, err := repo.GetByDrugID(context.Background(), tx, "RDC-MISSING")
	if err != nil {
		t.Fatalf("GetByDrugID: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %+v", rows)
	}
}
