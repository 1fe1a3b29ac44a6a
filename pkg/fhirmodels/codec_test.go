package fhirmodels

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressDecode(t *testing.T) {
	a := roundTrip[Address](t, `{"use":"home","city":"Boston"}`)
	require.NotNil(t, a.Use)
	assert.Equal(t, AddressUseHome, *a.Use)
	assert.Equal(t, "Boston", *a.City)
	assert.Nil(t, a.Line)
	assert.Nil(t, a.PostalCode)
	assert.Nil(t, a.Period)
}

func TestAddressUnknownUse(t *testing.T) {
	de := decodeErr[Address](t, `{"use":"bogus"}`)
	assert.Equal(t, UnknownEnumValue, de.Kind)
	assert.Equal(t, "use", de.Path)
	assert.Equal(t, "bogus", de.Value)
	assert.ErrorIs(t, de, ErrUnknownEnumValue)
	assert.NotErrorIs(t, de, ErrTypeMismatch)
}

func TestEmptyObjectDecodes(t *testing.T) {
	a := roundTrip[Address](t, `{}`)
	assert.Equal(t, Address{}, *a)

	p, err := Decode[Patient]([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, Patient{}, *p)
}

func TestNullDecodesToZero(t *testing.T) {
	a, err := Decode[Address]([]byte(`null`))
	require.NoError(t, err)
	assert.Equal(t, Address{}, *a)
}

func TestConstructedValueEncodes(t *testing.T) {
	p := Patient{
		ID:        Ptr("123"),
		Gender:    Ptr(AdministrativeGenderFemale),
		BirthDate: Ptr("1974-12-25"),
		Name: []HumanName{{
			Use:    Ptr(NameUseOfficial),
			Family: Ptr("Chalmers"),
			Given:  []string{"Peter", "James"},
		}},
		Deceased: Boolean(false),
	}
	out, err := Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"resourceType": "Patient",
		"id": "123",
		"name": [{"use": "official", "family": "Chalmers", "given": ["Peter", "James"]}],
		"gender": "female",
		"birthDate": "1974-12-25",
		"deceasedBoolean": false
	}`, string(out))
	assert.True(t, strings.HasPrefix(string(out), `{"resourceType":"Patient"`))

	var back Patient
	require.NoError(t, Unmarshal(out, &back))
	assert.Equal(t, p, back)
}

func TestEmptyListIsKept(t *testing.T) {
	a := roundTrip[Address](t, `{"line":[]}`)
	require.NotNil(t, a.Line)
	assert.Empty(t, a.Line)

	b := roundTrip[Address](t, `{"city":"Oslo"}`)
	assert.Nil(t, b.Line)
}

func TestFieldOrderFollowsDeclaration(t *testing.T) {
	a, err := Decode[Address]([]byte(`{"country":"NO","city":"Oslo","use":"work"}`))
	require.NoError(t, err)
	out, err := Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, `{"use":"work","city":"Oslo","country":"NO"}`, string(out))
}

func TestHTMLIsNotEscaped(t *testing.T) {
	n := Narrative{
		Status: Ptr(NarrativeStatusGenerated),
		Div:    Ptr(`<div xmlns="http://www.w3.org/1999/xhtml">a &amp; b</div>`),
	}
	out, err := Marshal(n)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<div xmlns=\"http://www.w3.org/1999/xhtml\">a &amp; b</div>`)
	assert.NotContains(t, string(out), `\u003c`)
	assert.NotContains(t, string(out), `\u0026`)
}

func TestUnknownKeysAreIgnored(t *testing.T) {
	a, err := Decode[Address]([]byte(`{"city":"Rome","planet":"Earth"}`))
	require.NoError(t, err)
	assert.Equal(t, "Rome", *a.City)
}

func TestPrimitiveExtensionWithoutValue(t *testing.T) {
	doc := `{
		"resourceType": "Patient",
		"_birthDate": {
			"extension": [{
				"url": "http://hl7.org/fhir/StructureDefinition/data-absent-reason",
				"valueCode": "unknown"
			}]
		}
	}`
	p := roundTrip[Patient](t, doc)
	assert.Nil(t, p.BirthDate)
	require.NotNil(t, p.BirthDateExt)
	require.Len(t, p.BirthDateExt.Extension, 1)
	assert.Equal(t, Code("unknown"), p.BirthDateExt.Extension[0].Value)
}

func TestPrimitiveValueWithoutExtension(t *testing.T) {
	p := roundTrip[Patient](t, `{"resourceType":"Patient","birthDate":"1980-01-01"}`)
	assert.Equal(t, "1980-01-01", *p.BirthDate)
	assert.Nil(t, p.BirthDateExt)
}

func TestPrimitiveListExtensionsAlign(t *testing.T) {
	doc := `{"given":["Ann","Marie"],"_given":[null,{"id":"g2"}]}`
	n := roundTrip[HumanName](t, doc)
	require.Len(t, n.GivenExt, 2)
	assert.Nil(t, n.GivenExt[0])
	require.NotNil(t, n.GivenExt[1])
	assert.Equal(t, "g2", *n.GivenExt[1].ID)
}

func TestChoiceBoolean(t *testing.T) {
	p := roundTrip[DeviceRequestParameter](t, `{"valueBoolean":true}`)
	assert.Equal(t, Boolean(true), p.Value)
	assert.Nil(t, p.Code)
}

func TestChoiceComplex(t *testing.T) {
	p := roundTrip[DeviceRequestParameter](t, `{"valueQuantity":{"value":3,"unit":"mg"}}`)
	q, ok := p.Value.(*Quantity)
	require.True(t, ok, "value is %T", p.Value)
	assert.Equal(t, "mg", *q.Unit)
	assert.Equal(t, "3", q.Value.String())
}

func TestChoiceRejectsTwoAlternatives(t *testing.T) {
	de := decodeErr[DeviceRequestParameter](t, `{"valueBoolean":true,"valueQuantity":{"value":1}}`)
	assert.Equal(t, TypeMismatch, de.Kind)
	assert.Equal(t, "value[x]", de.Path)
}

func TestChoiceAlternativeTypeMismatch(t *testing.T) {
	de := decodeErr[DeviceRequestParameter](t, `{"valueBoolean":"yes"}`)
	assert.Equal(t, TypeMismatch, de.Kind)
	assert.Equal(t, "valueBoolean", de.Path)
}

func TestChoiceExtension(t *testing.T) {
	doc := `{"resourceType":"Observation","valueString":"high","_valueString":{"id":"v1"}}`
	o := roundTrip[Observation](t, doc)
	assert.Equal(t, String("high"), o.Value)
	require.NotNil(t, o.ValueExt)
	assert.Equal(t, "String", o.ValueExt.Type)
	assert.Equal(t, "v1", *o.ValueExt.ID)

	// the sibling survives without the value
	o = roundTrip[Observation](t, `{"resourceType":"Observation","_valueBoolean":{"id":"b"}}`)
	assert.Nil(t, o.Value)
	require.NotNil(t, o.ValueExt)
	assert.Equal(t, "Boolean", o.ValueExt.Type)
}

func TestOpenTypeChoice(t *testing.T) {
	doc := `{"url":"http://example.org/ext","valueHumanName":{"family":"Doe"}}`
	e := roundTrip[Extension](t, doc)
	n, ok := e.Value.(*HumanName)
	require.True(t, ok, "value is %T", e.Value)
	assert.Equal(t, "Doe", *n.Family)
}

func TestDecimalKeepsScale(t *testing.T) {
	doc := `{"resourceType":"Observation","valueQuantity":{"value":1.50,"unit":"mmol/L"}}`
	o, err := Decode[Observation]([]byte(doc))
	require.NoError(t, err)
	out, err := Marshal(o)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"value":1.50`)
}

func TestDecimalRejectsString(t *testing.T) {
	de := decodeErr[Quantity](t, `{"value":"1.5"}`)
	assert.Equal(t, TypeMismatch, de.Kind)
	assert.Equal(t, "value", de.Path)
}

func TestTypeMismatch(t *testing.T) {
	de := decodeErr[Address](t, `{"city":42}`)
	assert.Equal(t, TypeMismatch, de.Kind)
	assert.Equal(t, "city", de.Path)
	assert.ErrorIs(t, de, ErrTypeMismatch)

	de = decodeErr[Address](t, `["not","an","object"]`)
	assert.Equal(t, TypeMismatch, de.Kind)
}

func TestMalformedJSON(t *testing.T) {
	de := decodeErr[Address](t, `{"city":`)
	assert.Equal(t, MalformedJSON, de.Kind)
	assert.ErrorIs(t, de, ErrMalformedJSON)
}

func TestWrongResourceType(t *testing.T) {
	de := decodeErr[Patient](t, `{"resourceType":"Observation"}`)
	assert.Equal(t, TypeMismatch, de.Kind)
	assert.Equal(t, "resourceType", de.Path)
	assert.Equal(t, "Observation", de.Value)
}

func TestNestedErrorPath(t *testing.T) {
	doc := `{
		"resourceType": "Bundle",
		"type": "collection",
		"entry": [{
			"resource": {"resourceType": "Patient", "name": [{}, {"use": "bogus"}]}
		}]
	}`
	de := decodeErr[Bundle](t, doc)
	assert.Equal(t, UnknownEnumValue, de.Kind)
	assert.Equal(t, "entry[0].resource.name[1].use", de.Path)
	assert.Equal(t, "fhir: unknown enum value at entry[0].resource.name[1].use: bogus", de.Error())
}

func TestPolymorphicResource(t *testing.T) {
	doc := `{
		"resourceType": "Bundle",
		"type": "collection",
		"entry": [
			{"fullUrl": "urn:uuid:1", "resource": {"resourceType": "Patient", "id": "p1"}},
			{"resource": {"resourceType": "Observation", "status": "final"}}
		]
	}`
	b := roundTrip[Bundle](t, doc)
	require.Len(t, b.Entry, 2)
	p, ok := b.Entry[0].Resource.(*Patient)
	require.True(t, ok, "entry 0 is %T", b.Entry[0].Resource)
	assert.Equal(t, "p1", p.ResourceID())
	o, ok := b.Entry[1].Resource.(*Observation)
	require.True(t, ok, "entry 1 is %T", b.Entry[1].Resource)
	assert.Equal(t, ObservationStatusFinal, *o.Status)
}

func TestPolymorphicResourceErrors(t *testing.T) {
	de := decodeErr[Bundle](t, `{"resourceType":"Bundle","entry":[{"resource":{"id":"x"}}]}`)
	assert.Equal(t, MissingRequiredField, de.Kind)
	assert.Equal(t, "entry[0].resource.resourceType", de.Path)

	de = decodeErr[Bundle](t, `{"resourceType":"Bundle","entry":[{"resource":{"resourceType":"Spaceship"}}]}`)
	assert.Equal(t, UnknownEnumValue, de.Kind)
	assert.Equal(t, "entry[0].resource.resourceType", de.Path)
	assert.Equal(t, "Spaceship", de.Value)
}

func TestContainedResources(t *testing.T) {
	doc := `{
		"resourceType": "MedicationRequest",
		"contained": [{"resourceType": "Medication", "id": "med1"}],
		"status": "active",
		"intent": "order",
		"medicationReference": {"reference": "#med1"}
	}`
	mr := roundTrip[MedicationRequest](t, doc)
	require.Len(t, mr.Contained, 1)
	assert.Equal(t, "Medication", mr.Contained[0].ResourceType())
	ref, ok := mr.Medication.(*Reference)
	require.True(t, ok)
	assert.Equal(t, "#med1", *ref.Reference)
}

func TestUnmarshalResource(t *testing.T) {
	r, err := UnmarshalResource([]byte(`{"resourceType":"Organization","id":"o1","name":"ACME"}`))
	require.NoError(t, err)
	org, ok := r.(*Organization)
	require.True(t, ok)
	assert.Equal(t, "ACME", *org.Name)

	_, err = UnmarshalResource([]byte(`{"resourceType":`))
	assert.ErrorIs(t, err, ErrMalformedJSON)

	_, err = UnmarshalResource([]byte(`{"id":"o1"}`))
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

// deepConcepts builds a CodeSystem whose concept hierarchy is depth levels
// deep.
func deepConcepts(depth int) string {
	var b strings.Builder
	b.WriteString(`{"resourceType":"CodeSystem","status":"active","content":"complete","concept":[`)
	for i := 0; i < depth; i++ {
		if i > 0 {
			b.WriteString(`,"concept":[`)
		}
		fmt.Fprintf(&b, `{"code":"c%d"`, i)
	}
	for i := 0; i < depth; i++ {
		b.WriteString(`}]`)
	}
	b.WriteString(`}`)
	return b.String()
}

func TestDeepRecursion(t *testing.T) {
	const depth = 120
	cs := roundTrip[CodeSystem](t, deepConcepts(depth))

	levels := 0
	for c := cs.Concept; len(c) > 0; c = c[0].Concept {
		assert.Equal(t, fmt.Sprintf("c%d", levels), *c[0].Code)
		levels++
	}
	assert.Equal(t, depth, levels)
}

func TestRecursiveErrorPath(t *testing.T) {
	doc := `{"resourceType":"Questionnaire","item":[{"linkId":"1","item":[{"linkId":"1.1","type":"nonsense"}]}]}`
	de := decodeErr[Questionnaire](t, doc)
	assert.Equal(t, UnknownEnumValue, de.Kind)
	assert.Equal(t, "item[0].item[0].type", de.Path)
}
