package domain

import "time"

// Reference is a bibliographic record shared across drugs through
// DrugReferenceRel.
type Reference struct {
	ID       uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title    *string    `gorm:"column:title" json:"title,omitempty"`
	Authors  *string    `gorm:"column:authors" json:"authors,omitempty"`
	Journal  *string    `gorm:"column:journal" json:"journal,omitempty"`
	Date     *time.Time `gorm:"column:date" json:"date,omitempty"`
	Volume   *string    `gorm:"column:volume" json:"volume,omitempty"`
	Issue    *string    `gorm:"column:issue" json:"issue,omitempty"`
	Pages    *string    `gorm:"column:pages" json:"pages,omitempty"`
	DOI      *string    `gorm:"column:doi" json:"doi,omitempty"`
	PMID     *string    `gorm:"column:pmid" json:"pmid,omitempty"`
	URL      *string    `gorm:"column:url" json:"url,omitempty"`
	Abstract *string    `gorm:"column:abstract" json:"abstract,omitempty"`
	Notes    *string    `gorm:"column:notes" json:"notes,omitempty"`
}

func (Reference) TableName() string { return "reference" }

// DrugReferenceRel carries an optional per-relation note.
type DrugReferenceRel struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	DrugID      string  `gorm:"column:drug_id;not null;index" json:"drug_id"`
	ReferenceID uint    `gorm:"column:reference_id;not null;index" json:"reference_id"`
	Note        *string `gorm:"column:note" json:"note,omitempty"`
}

func (DrugReferenceRel) TableName() string { return "drug_reference_rel" }
