package services

// Response documents for the read API. Field names are a wire contract
// shared with existing clients; do not rename them.

type DrugListItem struct {
	DrugID           string  `json:"drug_id"`
	DrugName         string  `json:"drug_name"`
	Status           *string `json:"status"`
	Type             *string `json:"type"`
	ColdCompoundName *string `json:"cold_compound_name"`
	LigandName       *string `json:"ligand_name"`
	LinkerName       *string `json:"linker_name"`
	ChelatorName     *string `json:"chelator_name"`
	RadionuclideName *string `json:"radionuclide_name"`
	CreatedAt        string  `json:"created_at"`
}

type DrugListPage struct {
	Items    []DrugListItem `json:"items"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
	Total    int64          `json:"total"`
}

type DrugSummary struct {
	DrugID   string  `json:"drug_id"`
	DrugName string  `json:"drug_name"`
	Status   *string `json:"status"`
}

// DrugBasic is the flat record served by the name lookup endpoint. It carries
// updated_at but not created_at.
type DrugBasic struct {
	DrugID         string  `json:"drug_id"`
	ExternalID     *string `json:"external_id"`
	DrugName       string  `json:"drug_name"`
	DrugSynonyms   *string `json:"drug_synonyms"`
	Status         *string `json:"status"`
	Type           *string `json:"type"`
	Smiles         *string `json:"smiles"`
	StructureImage *string `json:"structure_image"`
	ChebiID        *string `json:"chebi_id"`
	PubchemCID     *string `json:"pubchem_cid"`
	PubchemSID     *string `json:"pubchem_sid"`
	UpdatedAt      string  `json:"updated_at"`
}

type StatusOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type StatusDict struct {
	Dicts struct {
		Status []StatusOption `json:"status"`
	} `json:"dicts"`
}

type GeneralBlock struct {
	DrugID         string  `json:"drug_id"`
	ExternalID     *string `json:"external_id"`
	DrugName       string  `json:"drug_name"`
	DrugSynonyms   *string `json:"drug_synonyms"`
	Status         *string `json:"status"`
	Type           *string `json:"type"`
	Smiles         *string `json:"smiles"`
	StructureImage *string `json:"structure_image"`
	ChebiID        *string `json:"chebi_id"`
	PubchemCID     *string `json:"pubchem_cid"`
	PubchemSID     *string `json:"pubchem_sid"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type EntityRef struct {
	EntityID     string  `json:"entity_id"`
	Name         string  `json:"name"`
	RelationRole *string `json:"relation_role"`
}

// ChemicalsBlock summarizes one primary name per relation role. Entities is
// only present when the caller asked for the full breakdown; it then always
// carries all five category keys.
type ChemicalsBlock struct {
	CompoundName     *string                `json:"compound_name"`
	LigandName       *string                `json:"ligand_name"`
	LinkerName       *string                `json:"linker_name"`
	ChelatorName     *string                `json:"chelator_name"`
	RadionuclideName *string                `json:"radionuclide_name"`
	Entities         map[string][]EntityRef `json:"entities,omitempty"`
}

type HumanActivityItem struct {
	ClinicalTrialNumber  *string `json:"clinical_trial_number"`
	Indication           *string `json:"indication"`
	Patients             *string `json:"patients"`
	Dosage               *string `json:"dosage"`
	Frequency            *string `json:"frequency"`
	ResultsDescription   *string `json:"results_description"`
	Purpose              *string `json:"purpose"`
	ClinicalEndpoint     *string `json:"clinical_endpoint"`
	EndpointPeriod       *string `json:"endpoint_period"`
	EfficacyDescription  *string `json:"efficacy_description"`
	AdverseEventsSummary *string `json:"adverse_events_summary"`
	SecurityIndicators   *string `json:"security_indicators"`
}

type PKItem struct {
	PKAnimalModel   *string  `json:"pk_animal_model"`
	PKDosageSymbols *string  `json:"pk_dosage_symbols"`
	PKDosageValue   *float64 `json:"pk_dosage_value"`
	PKDosageUnit    *string  `json:"pk_dosage_unit"`
	PKDescription   *string  `json:"pk_description"`
	HalfLife        *string  `json:"half_life"`
	PKImage         *string  `json:"pk_image"`
}

type TBR struct {
	TumorBlood          *float64 `json:"tumor_blood"`
	TumorMuscle         *float64 `json:"tumor_muscle"`
	TumorKidney         *float64 `json:"tumor_kidney"`
	TumorSalivaryGlands *float64 `json:"tumor_salivary_glands"`
	TumorLiver          *float64 `json:"tumor_liver"`
	TumorLung           *float64 `json:"tumor_lung"`
	TumorHeart          *float64 `json:"tumor_heart"`
}

type BiodistTimepoint struct {
	DetectionTime *string `json:"detection_time"`
	TBR           TBR     `json:"tbr"`
}

// BiodistGroup is one measurement series: the shared experiment metadata plus
// its ordered timepoints.
type BiodistGroup struct {
	BiodistType        *string            `json:"biodist_type"`
	AnimalModel        *string            `json:"animal_model"`
	DosageSymbols      *string            `json:"dosage_symbols"`
	DosageValue        *float64           `json:"dosage_value"`
	DosageUnit         *string            `json:"dosage_unit"`
	Metabolism         *string            `json:"metabolism"`
	Excretion          *string            `json:"excretion"`
	TumorRetentionTime *string            `json:"tumor_retention_time"`
	BiodistResultImage *string            `json:"biodist_result_image"`
	BiodistDescription *string            `json:"biodist_description"`
	Timepoints         []BiodistTimepoint `json:"timepoints"`
}

type EfficacyItem struct {
	EfficacyAnimalModel   *string  `json:"efficacy_animal_model"`
	EfficacyDosageSymbols *string  `json:"efficacy_dosage_symbols"`
	EfficacyDosageValue   *float64 `json:"efficacy_dosage_value"`
	EfficacyDosageUnit    *string  `json:"efficacy_dosage_unit"`
	EfficacyDescription   *string  `json:"efficacy_description"`
	AdverseReactions      *string  `json:"adverse_reactions"`
}

type AnimalStudyDoc struct {
	StudyID         string         `json:"study_id"`
	PMID            *string        `json:"pmid"`
	DOI             *string        `json:"doi"`
	PK              []PKItem       `json:"pk"`
	Biodistribution []BiodistGroup `json:"biodistribution"`
	Efficacy        []EfficacyItem `json:"efficacy"`
}

type AnimalSection struct {
	Studies []AnimalStudyDoc `json:"studies"`
}

// InVitroSection carries a fixed "studies" key plus one sibling key per
// observed measurement category.
type InVitroSection map[string]interface{}

type InVitroStudyDoc struct {
	InVitroID     string  `json:"in_vitro_id"`
	StudyOverview *string `json:"study_overview"`
	Notes         *string `json:"notes"`
}

type MeasurementItem struct {
	MeasurementType    *string  `json:"measurement_type"`
	MeasurementSymbols *string  `json:"measurement_symbols"`
	MeasurementValue   *float64 `json:"measurement_value"`
	MeasurementUnit    *string  `json:"measurement_unit"`
	MethodDescription  *string  `json:"method_description"`
}

// DrugDetail is the aggregate document. The optional sections are pointers so
// the endpoint can distinguish "absent" (no expand param) from "present but
// empty" (expand listed, section not requested).
type DrugDetail struct {
	General       GeneralBlock         `json:"general"`
	Chemicals     *ChemicalsBlock      `json:"chemicals"`
	HumanActivity *[]HumanActivityItem `json:"human_activity,omitempty"`
	AnimalInVivo  *AnimalSection       `json:"animal_in_vivo,omitempty"`
	InVitro       *InVitroSection      `json:"in_vitro,omitempty"`
}

type ChemicalBasic struct {
	EntityCategory string  `json:"entity_category"`
	EntityID       string  `json:"entity_id"`
	Name           string  `json:"name"`
	Synonyms       *string `json:"synonyms"`
	Smiles         *string `json:"smiles"`
	Formula        *string `json:"formula"`
	StructureImage *string `json:"structure_image"`
	Mol2DPath      *string `json:"mol2d_path"`
	Mol3DPath      *string `json:"mol3d_path"`
	PubchemCID     *string `json:"pubchem_cid"`
	Inchi          *string `json:"inchi"`
	Inchikey       *string `json:"inchikey"`
	IupacName      *string `json:"iupac_name"`

	MolecularWeight *float64 `json:"molecular_weight"`
	Complexity      *float64 `json:"complexity"`
	HeavyAtomCount  *int     `json:"heavy_atom_count"`
	HbondAcceptors  *int     `json:"hbond_acceptors"`
	HbondDonors     *int     `json:"hbond_donors"`
	RotatableBonds  *int     `json:"rotatable_bonds"`
	LogP            *float64 `json:"logp"`
	TPSA            *float64 `json:"tpsa"`

	LinkerType           *string `json:"linker_type"`
	RadionuclideSymbol   *string `json:"radionuclide_symbol"`
	RadionuclideHalfLife *string `json:"radionuclide_half_life"`
	RadionuclideEmission *string `json:"radionuclide_emission"`
	RadionuclideEnergy   *string `json:"radionuclide_energy"`
}

// ChemicalActivityItem rolls up one related drug with its full activity
// sections.
type ChemicalActivityItem struct {
	DrugID        string              `json:"drug_id"`
	DrugName      string              `json:"drug_name"`
	Status        *string             `json:"status"`
	Type          *string             `json:"type"`
	HumanActivity []HumanActivityItem `json:"human_activity"`
	AnimalInVivo  AnimalSection       `json:"animal_in_vivo"`
	InVitro       InVitroSection      `json:"in_vitro"`
}

// RdcActivity is a pointer so the key is absent when include_activity=false
// but marshals as [] when activity was requested and the entity has no drugs.
type ChemicalDetail struct {
	Basic       ChemicalBasic           `json:"basic"`
	RdcActivity *[]ChemicalActivityItem `json:"rdc_activity,omitempty"`
}

type ChemicalRdcRef struct {
	DrugID       string  `json:"drug_id"`
	DrugName     string  `json:"drug_name"`
	Status       *string `json:"status"`
	Type         *string `json:"type"`
	RelationRole *string `json:"relation_role"`
}

type ChemicalRdcList struct {
	Basic ChemicalBasic    `json:"basic"`
	Rdcs  []ChemicalRdcRef `json:"rdcs"`
}

type ChemicalSearchItem struct {
	EntityCategory string  `json:"entity_category"`
	EntityID       string  `json:"entity_id"`
	Name           string  `json:"name"`
	Formula        *string `json:"formula"`
}

type ReferenceItem struct {
	Title    *string `json:"title"`
	Authors  *string `json:"authors"`
	Journal  *string `json:"journal"`
	Date     *string `json:"date"`
	Volume   *string `json:"volume"`
	Issue    *string `json:"issue"`
	Pages    *string `json:"pages"`
	DOI      *string `json:"doi"`
	PMID     *string `json:"pmid"`
	URL      *string `json:"url"`
	Abstract *string `json:"abstract"`
	Notes    *string `json:"notes"`
	Note     *string `json:"note"`
}
