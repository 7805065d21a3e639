package domain

// Entity categories double as relation roles on DrugChemicalRel.
const (
	CategoryCompound     = "compound"
	CategoryLigand       = "ligand"
	CategoryLinker       = "linker"
	CategoryChelator     = "chelator"
	CategoryRadionuclide = "radionuclide"
)

// EntityCategories lists the valid categories in the order responses report
// them.
var EntityCategories = []string{
	CategoryCompound,
	CategoryLigand,
	CategoryLinker,
	CategoryChelator,
	CategoryRadionuclide,
}

func ValidEntityCategory(value string) bool {
	for _, category := range EntityCategories {
		if category == value {
			return true
		}
	}
	return false
}

// ChemicalEntity identity is composite: entity IDs are only unique within a
// category.
type ChemicalEntity struct {
	EntityCategory string  `gorm:"column:entity_category;primaryKey" json:"entity_category"`
	EntityID       string  `gorm:"column:entity_id;primaryKey" json:"entity_id"`
	Name           string  `gorm:"column:name;not null;index" json:"name"`
	Synonyms       *string `gorm:"column:synonyms" json:"synonyms,omitempty"`
	Smiles         *string `gorm:"column:smiles" json:"smiles,omitempty"`
	Formula        *string `gorm:"column:formula" json:"formula,omitempty"`
	StructureImage *string `gorm:"column:structure_image" json:"structure_image,omitempty"`
	Mol2DPath      *string `gorm:"column:mol2d_path" json:"mol2d_path,omitempty"`
	Mol3DPath      *string `gorm:"column:mol3d_path" json:"mol3d_path,omitempty"`
	PubchemCID     *string `gorm:"column:pubchem_cid" json:"pubchem_cid,omitempty"`
	Inchi          *string `gorm:"column:inchi" json:"inchi,omitempty"`
	Inchikey       *string `gorm:"column:inchikey" json:"inchikey,omitempty"`
	IupacName      *string `gorm:"column:iupac_name" json:"iupac_name,omitempty"`

	MolecularWeight *float64 `gorm:"column:molecular_weight" json:"molecular_weight,omitempty"`
	Complexity      *float64 `gorm:"column:complexity" json:"complexity,omitempty"`
	HeavyAtomCount  *int     `gorm:"column:heavy_atom_count" json:"heavy_atom_count,omitempty"`
	HbondAcceptors  *int     `gorm:"column:hbond_acceptors" json:"hbond_acceptors,omitempty"`
	HbondDonors     *int     `gorm:"column:hbond_donors" json:"hbond_donors,omitempty"`
	RotatableBonds  *int     `gorm:"column:rotatable_bonds" json:"rotatable_bonds,omitempty"`
	LogP            *float64 `gorm:"column:logp" json:"logp,omitempty"`
	TPSA            *float64 `gorm:"column:tpsa" json:"tpsa,omitempty"`

	LinkerType           *string `gorm:"column:linker_type" json:"linker_type,omitempty"`
	RadionuclideSymbol   *string `gorm:"column:radionuclide_symbol" json:"radionuclide_symbol,omitempty"`
	RadionuclideHalfLife *string `gorm:"column:radionuclide_half_life" json:"radionuclide_half_life,omitempty"`
	RadionuclideEmission *string `gorm:"column:radionuclide_emission" json:"radionuclide_emission,omitempty"`
	RadionuclideEnergy   *string `gorm:"column:radionuclide_energy" json:"radionuclide_energy,omitempty"`
}

func (ChemicalEntity) TableName() string { return "chemical_entity" }

// DrugChemicalRel links a drug to a chemical entity under a relation role.
// The role normally matches the entity's category; it is stored separately
// because the curation source records it on the edge.
type DrugChemicalRel struct {
	ID             uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	DrugID         string  `gorm:"column:drug_id;not null;index" json:"drug_id"`
	EntityCategory string  `gorm:"column:entity_category;not null;index:idx_drug_chemical_rel_entity" json:"entity_category"`
	EntityID       string  `gorm:"column:entity_id;not null;index:idx_drug_chemical_rel_entity" json:"entity_id"`
	RelationRole   *string `gorm:"column:relation_role" json:"relation_role,omitempty"`
}

func (DrugChemicalRel) TableName() string { return "drug_chemical_rel" }
