package fhirmodels

// Codes from value sets that are bound to CodeableConcept or Coding fields.
// Those bindings are extensible or preferred, so they are not generated as
// closed Go types; the constants below cover the codes applications reach
// for most often.

// Code system URIs.
const (
	SystemActCode              = "http://terminology.hl7.org/CodeSystem/v3-ActCode"
	SystemParticipationType    = "http://terminology.hl7.org/CodeSystem/v3-ParticipationType"
	SystemObservationCategory  = "http://terminology.hl7.org/CodeSystem/observation-category"
	SystemConditionClinical    = "http://terminology.hl7.org/CodeSystem/condition-clinical"
	SystemConditionVerStatus   = "http://terminology.hl7.org/CodeSystem/condition-ver-status"
	SystemAllergyClinical      = "http://terminology.hl7.org/CodeSystem/allergyintolerance-clinical"
	SystemLOINC                = "http://loinc.org"
	SystemSNOMED               = "http://snomed.info/sct"
	SystemUCUM                 = "http://unitsofmeasure.org"
	SystemRxNorm               = "http://www.nlm.nih.gov/research/umls/rxnorm"
	SystemIdentifierType       = "http://terminology.hl7.org/CodeSystem/v2-0203"
	SystemDataAbsentReason     = "http://terminology.hl7.org/CodeSystem/data-absent-reason"
	SystemOperationOutcomeCode = "http://terminology.hl7.org/CodeSystem/operation-outcome"
)

// Encounter.class codes (v3 ActCode).
const (
	EncounterClassAmbulatory   = "AMB"
	EncounterClassEmergency    = "EMER"
	EncounterClassInpatient    = "IMP"
	EncounterClassShortStay    = "SS"
	EncounterClassVirtual      = "VR"
	EncounterClassHomeHealth   = "HH"
	EncounterClassObstetric    = "OBSENC"
	EncounterClassAcute        = "ACUTE"
	EncounterClassNonAcute     = "NONAC"
	EncounterClassPreAdmission = "PRENC"
	EncounterClassField        = "FLD"
)

// Encounter.participant.type codes (v3 ParticipationType).
const (
	ParticipantAttender   = "ATND"
	ParticipantAdmitter   = "ADM"
	ParticipantConsultant = "CON"
	ParticipantReferrer   = "REF"
	ParticipantSecondary  = "SPRF"
	ParticipantPrimary    = "PPRF"
	ParticipantDischarger = "DIS"
)

// Observation.category codes.
const (
	ObsCategoryVitalSigns    = "vital-signs"
	ObsCategoryLaboratory    = "laboratory"
	ObsCategoryImaging       = "imaging"
	ObsCategorySocialHistory = "social-history"
	ObsCategorySurvey        = "survey"
	ObsCategoryExam          = "exam"
	ObsCategoryProcedure     = "procedure"
	ObsCategoryActivity      = "activity"
	ObsCategoryTherapy       = "therapy"
)

// Condition.clinicalStatus codes.
const (
	ConditionActive     = "active"
	ConditionRecurrence = "recurrence"
	ConditionRelapse    = "relapse"
	ConditionInactive   = "inactive"
	ConditionRemission  = "remission"
	ConditionResolved   = "resolved"
)

// Condition.verificationStatus codes.
const (
	ConditionUnconfirmed    = "unconfirmed"
	ConditionProvisional    = "provisional"
	ConditionDifferential   = "differential"
	ConditionConfirmed      = "confirmed"
	ConditionRefuted        = "refuted"
	ConditionEnteredInError = "entered-in-error"
)

// NewCoding returns a Coding for code in system. An empty display is left
// unset.
func NewCoding(system, code, display string) *Coding {
	c := &Coding{System: Ptr(system), Code: Ptr(code)}
	if display != "" {
		c.Display = Ptr(display)
	}
	return c
}

// NewCodeableConcept wraps a single coding.
func NewCodeableConcept(system, code, display string) *CodeableConcept {
	return &CodeableConcept{Coding: []Coding{*NewCoding(system, code, display)}}
}

// HasCoding reports whether cc carries a coding with the given system and
// code.
func (cc *CodeableConcept) HasCoding(system, code string) bool {
	if cc == nil {
		return false
	}
	for _, c := range cc.Coding {
		if deref(c.System) == system && deref(c.Code) == code {
			return true
		}
	}
	return false
}

// EncounterClassCoding returns the Encounter.class coding for an ActCode.
func EncounterClassCoding(code string) *Coding {
	return NewCoding(SystemActCode, code, "")
}

// ObservationCategory returns the Observation.category concept for code.
func ObservationCategory(code string) *CodeableConcept {
	return NewCodeableConcept(SystemObservationCategory, code, "")
}

// ConditionClinicalStatus returns the Condition.clinicalStatus concept for
// code.
func ConditionClinicalStatus(code string) *CodeableConcept {
	return NewCodeableConcept(SystemConditionClinical, code, "")
}
