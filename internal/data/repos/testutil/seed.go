package testutil

import (
	"testing"
	"time"

	"gorm.io/gorm"

	types "github.com/rdcatlas/rdcatlas-backend/internal/domain"
)

func Str(s string) *string { return &s }

func Num(f float64) *float64 { return &f }

func SeedDrug(tb testing.TB, tx *gorm.DB, drugID, drugName, status string, createdAt time.Time) *types.Drug {
	tb.Helper()
	drug := &types.Drug{
		DrugID:    drugID,
		DrugName:  drugName,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if status != "" {
		drug.Status = Str(status)
	}
	if err := tx.Create(drug).Error; err != nil {
		tb.Fatalf("seed drug %s: %v", drugID, err)
	}
	return drug
}

func SeedEntity(tb testing.TB, tx *gorm.DB, category, entityID, name string) *types.ChemicalEntity {
	tb.Helper()
	entity := &types.ChemicalEntity{
		EntityCategory: category,
		EntityID:       entityID,
		Name:           name,
	}
	if err := tx.Create(entity).Error; err != nil {
		tb.Fatalf("seed entity %s/%s: %v", category, entityID, err)
	}
	return entity
}

func SeedRelation(tb testing.TB, tx *gorm.DB, drugID, category, entityID string) *types.DrugChemicalRel {
	tb.Helper()
	rel := &types.DrugChemicalRel{
		DrugID:         drugID,
		EntityCategory: category,
		EntityID:       entityID,
		RelationRole:   Str(category),
	}
	if err := tx.Create(rel).Error; err != nil {
		tb.Fatalf("seed relation %s→%s/%s: %v", drugID, category, entityID, err)
	}
	return rel
}

func SeedHumanActivity(tb testing.TB, tx *gorm.DB, drugID, indication string, createdAt time.Time) *types.HumanActivity {
	tb.Helper()
	activity := &types.HumanActivity{
		DrugID:     drugID,
		Indication: Str(indication),
		CreatedAt:  createdAt,
	}
	if err := tx.Create(activity).Error; err != nil {
		tb.Fatalf("seed human activity for %s: %v", drugID, err)
	}
	return activity
}

func SeedAnimalStudy(tb testing.TB, tx *gorm.DB, drugID, studyID string, createdAt time.Time) *types.AnimalInVivoStudy {
	tb.Helper()
	study := &types.AnimalInVivoStudy{
		StudyID:   studyID,
		DrugID:    drugID,
		CreatedAt: createdAt,
	}
	if err := tx.Create(study).Error; err != nil {
		tb.Fatalf("seed animal study %s: %v", studyID, err)
	}
	return study
}

func SeedBiodist(tb testing.TB, tx *gorm.DB, row *types.AnimalInVivoBiodist) *types.AnimalInVivoBiodist {
	tb.Helper()
	if err := tx.Create(row).Error; err != nil {
		tb.Fatalf("seed biodist for %s: %v", row.StudyRefID, err)
	}
	return row
}

func SeedPK(tb testing.TB, tx *gorm.DB, row *types.AnimalInVivoPK) *types.AnimalInVivoPK {
	tb.Helper()
	if err := tx.Create(row).Error; err != nil {
		tb.Fatalf("seed pk for %s: %v", row.StudyRefID, err)
	}
	return row
}

func SeedEfficacy(tb testing.TB, tx *gorm.DB, row *types.AnimalInVivoEfficacy) *types.AnimalInVivoEfficacy {
	tb.Helper()
	if err := tx.Create(row).Error; err != nil {
		tb.Fatalf("seed efficacy for %s: %v", row.StudyRefID, err)
	}
	return row
}

func SeedInVitroStudy(tb testing.TB, tx *gorm.DB, drugID, inVitroID string, createdAt time.Time) *types.InVitroStudy {
	tb.Helper()
	study := &types.InVitroStudy{
		InVitroID: inVitroID,
		DrugID:    drugID,
		CreatedAt: createdAt,
	}
	if err := tx.Create(study).Error; err != nil {
		tb.Fatalf("seed in vitro study %s: %v", inVitroID, err)
	}
	return study
}

func SeedMeasurement(tb testing.TB, tx *gorm.DB, inVitroID, category string, value float64) *types.InVitroMeasurement {
	tb.Helper()
	measurement := &types.InVitroMeasurement{
		InVitroRefID:        inVitroID,
		MeasurementCategory: category,
		MeasurementValue:    Num(value),
	}
	if err := tx.Create(measurement).Error; err != nil {
		tb.Fatalf("seed measurement for %s: %v", inVitroID, err)
	}
	return measurement
}

func SeedReference(tb testing.TB, tx *gorm.DB, drugID, title string, date *time.Time) *types.Reference {
	tb.Helper()
	ref := &types.Reference{
		Title: Str(title),
		Date:  date,
	}
	if err := tx.Create(ref).Error; err != nil {
		tb.Fatalf("seed reference %q: %v", title, err)
	}
	rel := &types.DrugReferenceRel{
		DrugID:      drugID,
		ReferenceID: ref.ID,
	}
	if err := tx.Create(rel).Error; err != nil {
		tb.Fatalf("seed reference relation %q→%s: %v", title, drugID, err)
	}
	return ref
}
