package domain

import "time"

// Drug is the top-level curated RDC record. Rows are written by an external
// curation pipeline; this service only reads them.
type Drug struct {
	DrugID         string  `gorm:"column:drug_id;primaryKey" json:"drug_id"`
	ExternalID     *string `gorm:"column:external_id" json:"external_id,omitempty"`
	DrugName       string  `gorm:"column:drug_name;not null;index" json:"drug_name"`
	DrugSynonyms   *string `gorm:"column:drug_synonyms" json:"drug_synonyms,omitempty"`
	Status         *string `gorm:"column:status;index" json:"status,omitempty"`
	Type           *string `gorm:"column:type" json:"type,omitempty"`
	MainPubmed     *string `gorm:"column:main_pubmed" json:"main_pubmed,omitempty"`
	MainDOI        *string `gorm:"column:main_doi" json:"main_doi,omitempty"`
	Smiles         *string `gorm:"column:smiles" json:"smiles,omitempty"`
	StructureImage *string `gorm:"column:structure_image" json:"structure_image,omitempty"`
	ChebiID        *string `gorm:"column:chebi_id" json:"chebi_id,omitempty"`
	PubchemCID     *string `gorm:"column:pubchem_cid" json:"pubchem_cid,omitempty"`
	PubchemSID     *string `gorm:"column:pubchem_sid" json:"pubchem_sid,omitempty"`
	Notes          *string `gorm:"column:notes" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Drug) TableName() string { return "rdc_drug" }
