package fhirmodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodeableConcept(t *testing.T) {
	cc := ObservationCategory(ObsCategoryVitalSigns)
	require.Len(t, cc.Coding, 1)
	assert.Equal(t, SystemObservationCategory, *cc.Coding[0].System)
	assert.Equal(t, "vital-signs", *cc.Coding[0].Code)
	assert.Nil(t, cc.Coding[0].Display)

	assert.True(t, cc.HasCoding(SystemObservationCategory, ObsCategoryVitalSigns))
	assert.False(t, cc.HasCoding(SystemObservationCategory, ObsCategoryLaboratory))

	var none *CodeableConcept
	assert.False(t, none.HasCoding(SystemLOINC, "1234-5"))
}

func TestCodingDisplay(t *testing.T) {
	c := NewCoding(SystemLOINC, "8867-4", "Heart rate")
	out, err := Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"system":"http://loinc.org","code":"8867-4","display":"Heart rate"}`, string(out))
}

func TestEncounterClassCoding(t *testing.T) {
	enc := Encounter{
		Status: Ptr(EncounterStatusInProgress),
		Class:  EncounterClassCoding(EncounterClassAmbulatory),
	}
	out, err := Marshal(enc)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"resourceType": "Encounter",
		"status": "in-progress",
		"class": {"system": "http://terminology.hl7.org/CodeSystem/v3-ActCode", "code": "AMB"}
	}`, string(out))
}

func TestConditionClinicalStatus(t *testing.T) {
	c := Condition{ClinicalStatus: ConditionClinicalStatus(ConditionActive)}
	out, err := Marshal(c)
	require.NoError(t, err)

	back, err := Decode[Condition](out)
	require.NoError(t, err)
	assert.True(t, back.ClinicalStatus.HasCoding(SystemConditionClinical, ConditionActive))
}
