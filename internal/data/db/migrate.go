package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/rdcatlas/rdcatlas-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Drugs + constituent chemistry
		&types.Drug{},
		&types.ChemicalEntity{},
		&types.DrugChemicalRel{},

		// Activity sections
		&types.HumanActivity{},
		&types.AnimalInVivoStudy{},
		&types.AnimalInVivoPK{},
		&types.AnimalInVivoBiodist{},
		&types.AnimalInVivoEfficacy{},
		&types.InVitroStudy{},
		&types.InVitroMeasurement{},

		// Literature
		&types.Reference{},
		&types.DrugReferenceRel{},
	)
}

// EnsureReadIndexes covers the lookups AutoMigrate's column tags cannot
// express: case-insensitive name search and the combined status+name listing
// path.
func EnsureReadIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_rdc_drug_name_lower
		ON rdc_drug (lower(drug_name));
	`).Error; err != nil {
		return fmt.Errorf("create idx_rdc_drug_name_lower: %w", err)
	}
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_rdc_drug_status_name
		ON rdc_drug (status, drug_name);
	`).Error; err != nil {
		return fmt.Errorf("create idx_rdc_drug_status_name: %w", err)
	}
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_chemical_entity_name_lower
		ON chemical_entity (entity_category, lower(name));
	`).Error; err != nil {
		return fmt.Errorf("create idx_chemical_entity_name_lower: %w", err)
	}
	return nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	if err := EnsureReadIndexes(s.db); err != nil {
		s.log.Error("Read index migration failed", "error", err)
		return err
	}
	return nil
}
