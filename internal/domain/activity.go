package domain

import "time"

// HumanActivity is one reported clinical experiment for a drug. There is no
// natural key beyond (drug_id, creation order).
type HumanActivity struct {
	ID                   uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	DrugID               string  `gorm:"column:drug_id;not null;index" json:"drug_id"`
	ClinicalTrialNumber  *string `gorm:"column:clinical_trial_number" json:"clinical_trial_number,omitempty"`
	Indication           *string `gorm:"column:indication" json:"indication,omitempty"`
	Patients             *string `gorm:"column:patients" json:"patients,omitempty"`
	Dosage               *string `gorm:"column:dosage" json:"dosage,omitempty"`
	Frequency            *string `gorm:"column:frequency" json:"frequency,omitempty"`
	ResultsDescription   *string `gorm:"column:results_description" json:"results_description,omitempty"`
	Purpose              *string `gorm:"column:purpose" json:"purpose,omitempty"`
	ClinicalEndpoint     *string `gorm:"column:clinical_endpoint" json:"clinical_endpoint,omitempty"`
	EndpointPeriod       *string `gorm:"column:endpoint_period" json:"endpoint_period,omitempty"`
	EfficacyDescription  *string `gorm:"column:efficacy_description" json:"efficacy_description,omitempty"`
	AdverseEventsSummary *string `gorm:"column:adverse_events_summary" json:"adverse_events_summary,omitempty"`
	SecurityIndicators   *string `gorm:"column:security_indicators" json:"security_indicators,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (HumanActivity) TableName() string { return "human_activity" }
