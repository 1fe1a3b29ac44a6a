package fhirgen

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBuiltinSchema(t *testing.T) {
	m, err := Load(Schema())
	require.NoError(t, err)
	files, err := Render(m)
	require.NoError(t, err)

	for _, name := range []string{
		"patient.go", "claim.go", "explanation_of_benefit.go",
		valueSetsFile, choicesFile, registryFile, valueSetsTestFile, typesTestFile,
	} {
		assert.Contains(t, files, name)
	}
	assert.NotContains(t, files, "claim_diagnosis.go")

	for name, src := range files {
		assert.True(t, bytes.HasPrefix(src, []byte(Header)), "%s lacks the generated header", name)
		assert.True(t, bytes.Contains(src, []byte("\npackage "+PackageName+"\n")), name)
	}

	patient := string(files["patient.go"])
	assert.Contains(t, patient, "type Patient struct {")
	assert.Contains(t, patient, "func (v *Patient) UnmarshalJSON(data []byte) error {")
	assert.Contains(t, patient, "func (v Patient) MarshalJSON() ([]byte, error) {")
	assert.Contains(t, patient, "func (v *Patient) ResourceType() string {")
	assert.Contains(t, patient, "type PatientDeceased interface {")
	assert.Contains(t, patient, "type PatientContact struct {")

	assert.Regexp(t, regexp.MustCompile(`AddressUseHome\s+AddressUse = "home"`), string(files[valueSetsFile]))
	assert.Contains(t, string(files[registryFile]), `case "Claim_Diagnosis":`)
}

func TestRenderIsDeterministic(t *testing.T) {
	m, err := Load(Schema())
	require.NoError(t, err)
	first, err := Render(m)
	require.NoError(t, err)
	second, err := Render(m)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderSplitsWideMarkerMethods(t *testing.T) {
	m, err := Load(Schema())
	require.NoError(t, err)
	files, err := Render(m)
	require.NoError(t, err)

	// The header is exactly oneLineFuncMax wide; gofmt moves the brace.
	header := "func (*Quantity) isMedicationKnowledgeAdministrationGuidelinesPatientCharacteristicsCharacteristic()"
	require.Len(t, header, oneLineFuncMax)
	src := string(files["medication_knowledge.go"])
	assert.Contains(t, src, header+" {\n}\n")
	assert.NotContains(t, src, header+" {}")
}

func TestCheckedInModelIsCurrent(t *testing.T) {
	m, err := Load(Schema())
	require.NoError(t, err)
	files, err := Render(m)
	require.NoError(t, err)

	changed, err := Diff("../../pkg/fhirmodels", files)
	require.NoError(t, err)
	assert.Empty(t, changed, "run go generate ./pkg/fhirmodels")
}
