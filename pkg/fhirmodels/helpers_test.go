package fhirmodels

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkCodes asserts that every code of a value set is valid, decodes to
// itself and that a foreign code is rejected.
func checkCodes[T interface {
	~string
	Valid() bool
}](t *testing.T, name string, codes []T) {
	t.Helper()
	require.NotEmpty(t, codes, name)
	seen := make(map[T]bool, len(codes))
	for _, c := range codes {
		assert.True(t, c.Valid(), "%s: %q should be valid", name, c)
		assert.False(t, seen[c], "%s: duplicate code %q", name, c)
		seen[c] = true

		raw, err := json.Marshal(string(c))
		require.NoError(t, err)
		var got T
		require.NoError(t, Unmarshal(raw, &got), "%s: %s", name, raw)
		assert.Equal(t, c, got, name)
	}

	var bad T
	err := Unmarshal([]byte(`"not-a-code"`), &bad)
	require.ErrorIs(t, err, ErrUnknownEnumValue, name)
	assert.Empty(t, bad, name)
	assert.False(t, T("").Valid(), "%s: empty code should be invalid", name)
}

// checkType asserts that the FHIR name is registered for T and that the
// sparsest possible document decodes and encodes back unchanged.
func checkType[T any](t *testing.T, name string) {
	t.Helper()
	v, ok := New(name)
	require.True(t, ok, "New(%q)", name)
	_, ok = v.(*T)
	require.True(t, ok, "New(%q) returned %T", name, v)

	got, err := Decode[T]([]byte(`{}`))
	require.NoError(t, err, name)
	out, err := Marshal(got)
	require.NoError(t, err, name)

	want := `{}`
	if r, ok := any(got).(Resource); ok {
		assert.Equal(t, name, r.ResourceType())
		assert.Empty(t, r.ResourceID())
		want = `{"resourceType":"` + name + `"}`
	}
	assert.JSONEq(t, want, string(out), name)
}

// roundTrip decodes doc into a T, encodes it again and asserts the result
// is the same JSON document.
func roundTrip[T any](t *testing.T, doc string) *T {
	t.Helper()
	v, err := Decode[T]([]byte(doc))
	require.NoError(t, err)
	out, err := Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, doc, string(out))
	return v
}

// decodeErr decodes doc into a T and returns the resulting *DecodeError.
func decodeErr[T any](t *testing.T, doc string) *DecodeError {
	t.Helper()
	_, err := Decode[T]([]byte(doc))
	require.Error(t, err)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	return de
}
