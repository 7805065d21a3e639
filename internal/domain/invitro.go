package domain

import "time"

type InVitroStudy struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	InVitroID     string  `gorm:"column:in_vitro_id;not null;uniqueIndex" json:"in_vitro_id"`
	DrugID        string  `gorm:"column:drug_id;not null;index" json:"drug_id"`
	StudyOverview *string `gorm:"column:study_overview" json:"study_overview,omitempty"`
	Notes         *string `gorm:"column:notes" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (InVitroStudy) TableName() string { return "in_vitro" }

// InVitroMeasurement rows carry a free-text measurement_category; the label
// itself becomes a key in the response document, so it is deliberately an
// open string, not an enum.
type InVitroMeasurement struct {
	ID                  uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	InVitroRefID        string   `gorm:"column:in_vitro_ref_id;not null;index" json:"in_vitro_ref_id"`
	MeasurementCategory string   `gorm:"column:measurement_category" json:"measurement_category"`
	MeasurementType     *string  `gorm:"column:measurement_type" json:"measurement_type,omitempty"`
	MeasurementSymbols  *string  `gorm:"column:measurement_symbols" json:"measurement_symbols,omitempty"`
	MeasurementValue    *float64 `gorm:"column:measurement_value" json:"measurement_value,omitempty"`
	MeasurementUnit     *string  `gorm:"column:measurement_unit" json:"measurement_unit,omitempty"`
	MethodDescription   *string  `gorm:"column:method_description" json:"method_description,omitempty"`
}

func (InVitroMeasurement) TableName() string { return "in_vitro_measurement" }
