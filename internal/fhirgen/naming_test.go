package fhirgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportName(t *testing.T) {
	tests := map[string]string{
		"type":         "Type",
		"versionId":    "VersionID",
		"udiCarrier":   "UDICarrier",
		"base64Binary": "Base64Binary",
		"url":          "URL",
		"linkId":       "LinkID",
		"GET":          "GET",
	}
	for in, want := range tests {
		assert.Equal(t, want, exportName(in), in)
	}
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "ClaimDiagnosis", typeName("Claim_Diagnosis"))
	assert.Equal(t, "BundleEntryRequest", typeName("Bundle_Entry_Request"))
	assert.Equal(t, "Patient", typeName("Patient"))
}

func TestConstName(t *testing.T) {
	tests := []struct {
		vs, code, override string
		want               string
	}{
		{"AddressUse", "home", "", "AddressUseHome"},
		{"EncounterStatus", "entered-in-error", "", "EncounterStatusEnteredInError"},
		{"QuantityComparator", "<=", "", "QuantityComparatorLessOrEqual"},
		{"FHIRVersion", "4.0.1", "", "FHIRVersion4_0_1"},
		{"AddressUse", "old", "Former", "AddressUseFormer"},
	}
	for _, tt := range tests {
		got, err := constName(tt.vs, tt.code, tt.override)
		require.NoError(t, err, tt.code)
		assert.Equal(t, tt.want, got)
	}

	_, err := constName("Odd", "---", "")
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "explanation_of_benefit.go", fileName("ExplanationOfBenefit"))
	assert.Equal(t, "patient.go", fileName("Patient"))
}

func TestWirePath(t *testing.T) {
	assert.Equal(t, "Claim.diagnosis", wirePath("Claim_Diagnosis"))
	assert.Equal(t, "Bundle.entry.request", wirePath("Bundle_Entry_Request"))
}
