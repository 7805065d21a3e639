package domain

import "time"

// AnimalInVivoStudy parents the PK, biodistribution and efficacy record sets
// via study_ref_id = study_id.
type AnimalInVivoStudy struct {
	ID      uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	StudyID string  `gorm:"column:study_id;not null;uniqueIndex" json:"study_id"`
	DrugID  string  `gorm:"column:drug_id;not null;index" json:"drug_id"`
	PMID    *string `gorm:"column:pmid" json:"pmid,omitempty"`
	DOI     *string `gorm:"column:doi" json:"doi,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (AnimalInVivoStudy) TableName() string { return "animal_in_vivo_study" }

type AnimalInVivoPK struct {
	ID              uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	StudyRefID      string   `gorm:"column:study_ref_id;not null;index" json:"study_ref_id"`
	PKAnimalModel   *string  `gorm:"column:pk_animal_model" json:"pk_animal_model,omitempty"`
	PKDosageSymbols *string  `gorm:"column:pk_dosage_symbols" json:"pk_dosage_symbols,omitempty"`
	PKDosageValue   *float64 `gorm:"column:pk_dosage_value" json:"pk_dosage_value,omitempty"`
	PKDosageUnit    *string  `gorm:"column:pk_dosage_unit" json:"pk_dosage_unit,omitempty"`
	PKDescription   *string  `gorm:"column:pk_description" json:"pk_description,omitempty"`
	HalfLife        *string  `gorm:"column:half_life" json:"half_life,omitempty"`
	PKImage         *string  `gorm:"column:pk_image" json:"pk_image,omitempty"`
}

func (AnimalInVivoPK) TableName() string { return "animal_in_vivo_pk" }

// AnimalInVivoBiodist rows sharing identical metadata but differing in
// detection_time/TBR values are timepoints of one measurement series; the
// shaping layer regroups them.
type AnimalInVivoBiodist struct {
	ID                 uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	StudyRefID         string   `gorm:"column:study_ref_id;not null;index" json:"study_ref_id"`
	BiodistType        *string  `gorm:"column:biodist_type" json:"biodist_type,omitempty"`
	AnimalModel        *string  `gorm:"column:animal_model" json:"animal_model,omitempty"`
	DosageSymbols      *string  `gorm:"column:dosage_symbols" json:"dosage_symbols,omitempty"`
	DosageValue        *float64 `gorm:"column:dosage_value" json:"dosage_value,omitempty"`
	DosageUnit         *string  `gorm:"column:dosage_unit" json:"dosage_unit,omitempty"`
	Metabolism         *string  `gorm:"column:metabolism" json:"metabolism,omitempty"`
	Excretion          *string  `gorm:"column:excretion" json:"excretion,omitempty"`
	DetectionTime      *string  `gorm:"column:detection_time" json:"detection_time,omitempty"`
	TumorRetentionTime *string  `gorm:"column:tumor_retention_time" json:"tumor_retention_time,omitempty"`

	TBRTumorBlood          *float64 `gorm:"column:tbr_tumor_blood" json:"tbr_tumor_blood,omitempty"`
	TBRTumorMuscle         *float64 `gorm:"column:tbr_tumor_muscle" json:"tbr_tumor_muscle,omitempty"`
	TBRTumorKidney         *float64 `gorm:"column:tbr_tumor_kidney" json:"tbr_tumor_kidney,omitempty"`
	TBRTumorSalivaryGlands *float64 `gorm:"column:tbr_tumor_salivary_glands" json:"tbr_tumor_salivary_glands,omitempty"`
	TBRTumorLiver          *float64 `gorm:"column:tbr_tumor_liver" json:"tbr_tumor_liver,omitempty"`
	TBRTumorLung           *float64 `gorm:"column:tbr_tumor_lung" json:"tbr_tumor_lung,omitempty"`
	TBRTumorHeart          *float64 `gorm:"column:tbr_tumor_heart" json:"tbr_tumor_heart,omitempty"`

	BiodistResultImage *string `gorm:"column:biodist_result_image" json:"biodist_result_image,omitempty"`
	BiodistDescription *string `gorm:"column:biodist_description" json:"biodist_description,omitempty"`
}

func (AnimalInVivoBiodist) TableName() string { return "animal_in_vivo_biodist" }

type AnimalInVivoEfficacy struct {
	ID                    uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	StudyRefID            string   `gorm:"column:study_ref_id;not null;index" json:"study_ref_id"`
	EfficacyAnimalModel   *string  `gorm:"column:efficacy_animal_model" json:"efficacy_animal_model,omitempty"`
	EfficacyDosageSymbols *string  `gorm:"column:efficacy_dosage_symbols" json:"efficacy_dosage_symbols,omitempty"`
	EfficacyDosageValue   *float64 `gorm:"column:efficacy_dosage_value" json:"efficacy_dosage_value,omitempty"`
	EfficacyDosageUnit    *string  `gorm:"column:efficacy_dosage_unit" json:"efficacy_dosage_unit,omitempty"`
	EfficacyDescription   *string  `gorm:"column:efficacy_description" json:"efficacy_description,omitempty"`
	AdverseReactions      *string  `gorm:"column:adverse_reactions" json:"adverse_reactions,omitempty"`
}

func (AnimalInVivoEfficacy) TableName() string { return "animal_in_vivo_efficacy" }
