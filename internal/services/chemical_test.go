package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/rdcatlas/rdcatlas-backend/internal/data/repos/chemicals"
	types "github.com/rdcatlas/rdcatlas-backend/internal/domain"
	errs "github.com/rdcatlas/rdcatlas-backend/internal/pkg/errors"
)

type fakeEntityRepo struct {
	entities map[string]*types.ChemicalEntity
	drugRows []chemicals.DrugRow
	searches []chemicals.SearchRow
}

func entityKey(category, id string) string { return category + "/" + id }

func (f *fakeEntityRepo) GetByKey(_ context.Context, _ *gorm.DB, category, id string) (*types.ChemicalEntity, error) {
	return f.entities[entityKey(category, id)], nil
}

func (f *fakeEntityRepo) Search(_ context.Context, _ *gorm.DB, _, _ string, _ int) ([]chemicals.SearchRow, error) {
	return f.searches, nil
}

func (f *fakeEntityRepo) ListDrugs(_ context.Context, _ *gorm.DB, _, _ string) ([]chemicals.DrugRow, error) {
	return f.drugRows, nil
}

// fakeDrugDetailer returns canned detail documents keyed by drug id.
type fakeDrugDetailer struct {
	DrugService
	details map[string]*DrugDetail
	calls   []string
}

func (f *fakeDrugDetailer) Detail(_ context.Context, _ *gorm.DB, drugID string, opts ExpandOptions) (*DrugDetail, error) {
	f.calls = append(f.calls, drugID)
	if !opts.Requested || !opts.HumanActivity || !opts.AnimalInVivo || !opts.InVitro {
		return nil, fmt.Errorf("rollup must expand all sections, got %+v", opts)
	}
	detail, ok := f.details[drugID]
	if !ok {
		return nil, fmt.Errorf("drug %q: %w", drugID, errs.ErrNotFound)
	}
	return detail, nil
}

func cannedDetail(drugID, drugName string) *DrugDetail {
	human := []HumanActivityItem{{Indication: str("NET")}}
	inVitro := InVitroSection{"studies": []InVitroStudyDoc{}}
	return &DrugDetail{
		General:       GeneralBlock{DrugID: drugID, DrugName: drugName, Status: str("Approved")},
		Chemicals:     &ChemicalsBlock{},
		HumanActivity: &human,
		AnimalInVivo:  &AnimalSection{Studies: []AnimalStudyDoc{}},
		InVitro:       &inVitro,
	}
}

func testEntity(category, id, name string) *types.ChemicalEntity {
	return &types.ChemicalEntity{EntityCategory: category, EntityID: id, Name: name}
}

func TestChemicalDetailRollsUpUniqueDrugs(t *testing.T) {
	entityRepo := &fakeEntityRepo{
		entities: map[string]*types.ChemicalEntity{
			entityKey("chelator", "CHE-1"): testEntity("chelator", "CHE-1", "DOTA"),
		},
		drugRows: []chemicals.DrugRow{
			{DrugID: "RDC-2", DrugName: "Lutathera", RelationRole: str("chelator")},
			{DrugID: "RDC-1", DrugName: "Pluvicto", RelationRole: str("chelator")},
			{DrugID: "RDC-2", DrugName: "Lutathera", RelationRole: str("compound")},
		},
	}
	detailer := &fakeDrugDetailer{details: map[string]*DrugDetail{
		"RDC-1": cannedDetail("RDC-1", "Pluvicto"),
		"RDC-2": cannedDetail("RDC-2", "Lutathera"),
	}}
	svc := NewChemicalService(entityRepo, detailer, testLogger(t))

	detail, err := svc.Detail(context.Background(), nil, "chelator", "CHE-1", true)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if detail.Basic.Name != "DOTA" {
		t.Fatalf("basic block wrong: %+v", detail.Basic)
	}
	if detail.RdcActivity == nil {
		t.Fatal("rdc_activity missing")
	}
	activity := *detail.RdcActivity
	if len(activity) != 2 {
		t.Fatalf("duplicate relations must roll up once per drug: %+v", activity)
	}
	// Repository row order is preserved after dedup.
	if activity[0].DrugID != "RDC-2" || activity[1].DrugID != "RDC-1" {
		t.Fatalf("rollup order wrong: %+v", activity)
	}
	if len(detailer.calls) != 2 {
		t.Fatalf("detail fetched per unique drug, got calls %v", detailer.calls)
	}
	if len(activity[0].HumanActivity) != 1 {
		t.Fatalf("activity sections not carried through: %+v", activity[0])
	}
}

func TestChemicalDetailSkipsActivityWhenDisabled(t *testing.T) {
	entityRepo := &fakeEntityRepo{
		entities: map[string]*types.ChemicalEntity{
			entityKey("ligand", "LIG-1"): testEntity("ligand", "LIG-1", "PSMA-617"),
		},
		drugRows: []chemicals.DrugRow{{DrugID: "RDC-1", DrugName: "Pluvicto"}},
	}
	detailer := &fakeDrugDetailer{details: map[string]*DrugDetail{}}
	svc := NewChemicalService(entityRepo, detailer, testLogger(t))

	detail, err := svc.Detail(context.Background(), nil, "ligand", "LIG-1", false)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if detail.RdcActivity != nil {
		t.Fatalf("rdc_activity must be absent: %+v", detail.RdcActivity)
	}
	if len(detailer.calls) != 0 {
		t.Fatalf("no drug details should be fetched: %v", detailer.calls)
	}
}

func TestChemicalDetailSkipsDanglingRelations(t *testing.T) {
	entityRepo := &fakeEntityRepo{
		entities: map[string]*types.ChemicalEntity{
			entityKey("ligand", "LIG-1"): testEntity("ligand", "LIG-1", "PSMA-617"),
		},
		drugRows: []chemicals.DrugRow{
			{DrugID: "RDC-GONE", DrugName: "Removed"},
			{DrugID: "RDC-1", DrugName: "Pluvicto"},
		},
	}
	detailer := &fakeDrugDetailer{details: map[string]*DrugDetail{
		"RDC-1": cannedDetail("RDC-1", "Pluvicto"),
	}}
	svc := NewChemicalService(entityRepo, detailer, testLogger(t))

	detail, err := svc.Detail(context.Background(), nil, "ligand", "LIG-1", true)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if detail.RdcActivity == nil {
		t.Fatal("rdc_activity missing")
	}
	activity := *detail.RdcActivity
	if len(activity) != 1 || activity[0].DrugID != "RDC-1" {
		t.Fatalf("dangling relation must be skipped: %+v", activity)
	}
}

func TestChemicalDetailEmptyRollupKeepsActivityKey(t *testing.T) {
	entityRepo := &fakeEntityRepo{
		entities: map[string]*types.ChemicalEntity{
			entityKey("linker", "LNK-1"): testEntity("linker", "LNK-1", "AhX"),
		},
	}
	svc := NewChemicalService(entityRepo, &fakeDrugDetailer{}, testLogger(t))

	detail, err := svc.Detail(context.Background(), nil, "linker", "LNK-1", true)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if detail.RdcActivity == nil || len(*detail.RdcActivity) != 0 {
		t.Fatalf("rollup must be an empty slice, got %+v", detail.RdcActivity)
	}

	// An entity with no related drugs still reports the key as [].
	body, err := json.Marshal(detail)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(body), `"rdc_activity":[]`) {
		t.Fatalf("rdc_activity key missing from body: %s", body)
	}

	detail, err = svc.Detail(context.Background(), nil, "linker", "LNK-1", false)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	body, err = json.Marshal(detail)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(body), "rdc_activity") {
		t.Fatalf("rdc_activity must be omitted without include_activity: %s", body)
	}
}

func TestChemicalDetailNotFound(t *testing.T) {
	svc := NewChemicalService(&fakeEntityRepo{}, &fakeDrugDetailer{}, testLogger(t))

	_, err := svc.Detail(context.Background(), nil, "linker", "LNK-404", true)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestChemicalRdcListKeepsEveryRelation(t *testing.T) {
	entityRepo := &fakeEntityRepo{
		entities: map[string]*types.ChemicalEntity{
			entityKey("radionuclide", "RN-177"): testEntity("radionuclide", "RN-177", "Lu-177"),
		},
		drugRows: []chemicals.DrugRow{
			{DrugID: "RDC-1", DrugName: "Pluvicto", RelationRole: str("radionuclide")},
			{DrugID: "RDC-1", DrugName: "Pluvicto", RelationRole: str("compound")},
		},
	}
	svc := NewChemicalService(entityRepo, &fakeDrugDetailer{}, testLogger(t))

	list, err := svc.RdcList(context.Background(), nil, "radionuclide", "RN-177")
	if err != nil {
		t.Fatalf("RdcList: %v", err)
	}
	if list.Basic.EntityID != "RN-177" {
		t.Fatalf("basic block wrong: %+v", list.Basic)
	}
	// Unlike the activity rollup, the flat list reports each edge.
	if len(list.Rdcs) != 2 {
		t.Fatalf("each relation edge must be listed: %+v", list.Rdcs)
	}
	if *list.Rdcs[0].RelationRole != "radionuclide" || *list.Rdcs[1].RelationRole != "compound" {
		t.Fatalf("relation roles wrong: %+v", list.Rdcs)
	}
}

func TestChemicalSearchShape(t *testing.T) {
	entityRepo := &fakeEntityRepo{
		searches: []chemicals.SearchRow{
			{EntityCategory: "chelator", EntityID: "CHE-1", Name: "DOTA", Formula: str("C16H28N4O8")},
		},
	}
	svc := NewChemicalService(entityRepo, &fakeDrugDetailer{}, testLogger(t))

	items, err := svc.Search(context.Background(), nil, "chelator", "dota", 20)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(items) != 1 || items[0].Name != "DOTA" || *items[0].Formula != "C16H28N4O8" {
		t.Fatalf("unexpected search items: %+v", items)
	}
}
