package fhirmodels

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawResourceAccessors(t *testing.T) {
	raw := RawResource(`{"resourceType":"Patient","id":"p7","active":true}`)

	assert.Equal(t, "Patient", raw.ResourceType())
	assert.Equal(t, "p7", raw.ID())
	assert.JSONEq(t, `true`, string(raw.Get("active")))
	assert.Nil(t, raw.Get("missing"))
	require.NoError(t, raw.Validate())

	r, err := raw.Decode()
	require.NoError(t, err)
	p, ok := r.(*Patient)
	require.True(t, ok)
	assert.True(t, *p.Active)
}

func TestRawResourceValidate(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		kind ErrorKind
	}{
		{"not json", `{"resourceType":`, MalformedJSON},
		{"array", `[1,2]`, TypeMismatch},
		{"null", `null`, TypeMismatch},
		{"no resourceType", `{"id":"x"}`, MissingRequiredField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RawResource(tt.doc).Validate()
			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.kind, de.Kind)
		})
	}
}

func TestRawResourceNonStringMembers(t *testing.T) {
	raw := RawResource(`{"resourceType":42,"id":["x"]}`)
	assert.Empty(t, raw.ResourceType())
	assert.Empty(t, raw.ID())
}

func TestRawResourceJSON(t *testing.T) {
	var holder struct {
		Doc RawResource `json:"doc"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"doc":{"resourceType":"Basic"}}`), &holder))
	assert.Equal(t, "Basic", holder.Doc.ResourceType())

	out, err := json.Marshal(holder)
	require.NoError(t, err)
	assert.JSONEq(t, `{"doc":{"resourceType":"Basic"}}`, string(out))

	var empty RawResource
	out, err = empty.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestNewReference(t *testing.T) {
	p := &Patient{ID: Ptr("42")}
	ref := NewReference(p)
	assert.Equal(t, "Patient/42", *ref.Reference)
	assert.Equal(t, "Patient", *ref.Type)
	assert.Equal(t, "Observation/o-1", FormatReference("Observation", "o-1"))
}

func TestRegistry(t *testing.T) {
	names := TypeNames()
	assert.Contains(t, names, "Claim_Diagnosis")
	assert.Contains(t, names, "Address")
	assert.IsIncreasing(t, names)

	resources := ResourceTypes()
	assert.Contains(t, resources, "Patient")
	assert.Contains(t, resources, "Bundle")
	assert.NotContains(t, resources, "Address")
	assert.NotContains(t, resources, "Bundle_Entry")
	for _, name := range resources {
		v, ok := New(name)
		require.True(t, ok, name)
		r, ok := v.(Resource)
		require.True(t, ok, "%s does not implement Resource", name)
		assert.Equal(t, name, r.ResourceType())
	}

	_, ok := New("NoSuchType")
	assert.False(t, ok)
}
